// Copyright (c) 2026 The HeatChain developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package transactions

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"github.com/heatchain/heat/api/utils"
	"github.com/heatchain/heat/heat"
	"github.com/heatchain/heat/ledger"
	"github.com/heatchain/heat/txpool"
)

type Transactions struct {
	ledger *ledger.Ledger
	pool   *txpool.TxPool
}

func New(ld *ledger.Ledger, pool *txpool.TxPool) *Transactions {
	return &Transactions{ld, pool}
}

func (t *Transactions) handleSendTransaction(w http.ResponseWriter, req *http.Request) error {
	var raw RawTx
	if err := utils.ParseJSON(req.Body, &raw); err != nil {
		return utils.BadRequest(errors.WithMessage(err, "body"))
	}
	trx, err := raw.decode()
	if err != nil {
		return utils.BadRequest(err)
	}
	if err := t.pool.Add(trx); err != nil {
		return utils.BadRequest(err)
	}
	w.Header().Set("Content-Type", utils.JSONContentType)
	w.WriteHeader(http.StatusCreated)
	return utils.WriteJSON(w, &utils.M{"id": trx.Hash()})
}

func (t *Transactions) handleGetTransaction(w http.ResponseWriter, req *http.Request) error {
	hash, err := heat.ParseBytes32(mux.Vars(req)["hash"])
	if err != nil {
		return utils.BadRequest(errors.WithMessage(err, "hash"))
	}

	status, err := t.ledger.TxStatus(hash)
	if err != nil {
		if errors.Is(err, ledger.ErrNotFound) {
			return utils.NotFound(errors.New("tx not found"))
		}
		return err
	}

	// a pending tx is still in the pool and carries its full body
	if pooled := t.pool.Get(hash); pooled != nil {
		return utils.WriteJSON(w, buildJSONTx(pooled, status))
	}
	return utils.WriteJSON(w, &JSONTransaction{Hash: hash, Status: status})
}

func (t *Transactions) Mount(root *mux.Router, pathPrefix string) {
	sub := root.PathPrefix(pathPrefix).Subrouter()
	sub.Path("").
		Methods(http.MethodPost).
		Name("transactions_send_tx").
		HandlerFunc(utils.WrapHandlerFunc(t.handleSendTransaction))
	sub.Path("/{hash}").
		Methods(http.MethodGet).
		Name("transactions_get_tx").
		HandlerFunc(utils.WrapHandlerFunc(t.handleGetTransaction))
}
