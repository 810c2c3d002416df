// Copyright (c) 2026 The HeatChain developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package node

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"github.com/heatchain/heat/api/utils"
	"github.com/heatchain/heat/ledger"
	"github.com/heatchain/heat/node"
)

// Status exposes the node's state snapshot.
type Status interface {
	State() node.State
}

type Node struct {
	nw    Status
	chain *ledger.Ledger
}

func New(nw Status, chain *ledger.Ledger) *Node {
	return &Node{nw, chain}
}

// RemoteHeightRequest reports a chain height observed elsewhere, e.g.
// by an operator watching another node.
type RemoteHeightRequest struct {
	Height uint64 `json:"height"`
}

func (n *Node) handleStatus(w http.ResponseWriter, _ *http.Request) error {
	state := n.nw.State()
	return utils.WriteJSON(w, &state)
}

func (n *Node) handleRemoteHeight(w http.ResponseWriter, req *http.Request) error {
	var body RemoteHeightRequest
	if err := utils.ParseJSON(req.Body, &body); err != nil {
		return utils.BadRequest(errors.WithMessage(err, "body"))
	}
	n.chain.NoteRemoteHeight(body.Height)
	return utils.WriteJSON(w, &utils.M{"remoteHeight": n.chain.RemoteHeight()})
}

func (n *Node) Mount(root *mux.Router, pathPrefix string) {
	sub := root.PathPrefix(pathPrefix).Subrouter()
	sub.Path("/status").
		Methods(http.MethodGet).
		Name("node_get_status").
		HandlerFunc(utils.WrapHandlerFunc(n.handleStatus))
	sub.Path("/remote-height").
		Methods(http.MethodPost).
		Name("node_post_remote_height").
		HandlerFunc(utils.WrapHandlerFunc(n.handleRemoteHeight))
}
