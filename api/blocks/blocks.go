// Copyright (c) 2026 The HeatChain developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package blocks

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"github.com/heatchain/heat/api/utils"
	"github.com/heatchain/heat/block"
	"github.com/heatchain/heat/heat"
	"github.com/heatchain/heat/ledger"
)

type Blocks struct {
	ledger *ledger.Ledger
}

func New(ld *ledger.Ledger) *Blocks {
	return &Blocks{ld}
}

func (b *Blocks) handleGetBlock(w http.ResponseWriter, req *http.Request) error {
	blk, err := b.blockByRevision(mux.Vars(req)["revision"])
	if err != nil {
		if errors.Is(err, ledger.ErrNotFound) {
			return utils.NotFound(errors.New("block not found"))
		}
		return err
	}
	return utils.WriteJSON(w, ConvertBlock(blk))
}

// blockByRevision resolves "best", a block height, or a 0x block hash.
func (b *Blocks) blockByRevision(revision string) (*block.Block, error) {
	if revision == "" || revision == "best" {
		return b.ledger.BestBlock(), nil
	}
	if strings.HasPrefix(revision, "0x") {
		hash, err := heat.ParseBytes32(revision)
		if err != nil {
			return nil, utils.BadRequest(errors.WithMessage(err, "revision"))
		}
		return b.ledger.BlockByHash(hash)
	}
	height, err := strconv.ParseUint(revision, 10, 64)
	if err != nil {
		return nil, utils.BadRequest(errors.WithMessage(err, "revision"))
	}
	return b.ledger.BlockByHeight(height)
}

func (b *Blocks) Mount(root *mux.Router, pathPrefix string) {
	sub := root.PathPrefix(pathPrefix).Subrouter()
	sub.Path("/{revision}").
		Methods(http.MethodGet).
		Name("blocks_get_block").
		HandlerFunc(utils.WrapHandlerFunc(b.handleGetBlock))
}
