// Copyright (c) 2026 The HeatChain developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package api assembles the node's public HTTP surface.
package api

import (
	"net/http"
	"strings"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	apiBridge "github.com/heatchain/heat/api/bridge"
	"github.com/heatchain/heat/api/blocks"
	apiNode "github.com/heatchain/heat/api/node"
	"github.com/heatchain/heat/api/subscriptions"
	"github.com/heatchain/heat/api/transactions"
	"github.com/heatchain/heat/api/validators"
	"github.com/heatchain/heat/bridge"
	"github.com/heatchain/heat/ledger"
	"github.com/heatchain/heat/staker"
	"github.com/heatchain/heat/txpool"
)

// Options tunes the public API surface.
type Options struct {
	AllowedOrigins string
	SlashPercent   uint64 // default penalty applied by the slash endpoint
}

// New returns the public API handler.
func New(
	ld *ledger.Ledger,
	registry *staker.Registry,
	bridgeLedger *bridge.Ledger,
	pool *txpool.TxPool,
	nw apiNode.Status,
	source subscriptions.BlockSource,
	opts Options,
) http.Handler {
	origins := strings.Split(strings.TrimSpace(opts.AllowedOrigins), ",")
	for i, o := range origins {
		origins[i] = strings.ToLower(strings.TrimSpace(o))
	}

	router := mux.NewRouter()
	blocks.New(ld).Mount(router, "/blocks")
	transactions.New(ld, pool).Mount(router, "/transactions")
	validators.New(registry, opts.SlashPercent).Mount(router, "/validators")
	apiBridge.New(bridgeLedger, ld).Mount(router, "/bridge")
	apiNode.New(nw, ld).Mount(router, "/node")
	subscriptions.New(source).Mount(router, "/subscriptions")

	handler := handlers.CompressHandler(router)
	handler = handlers.CORS(
		handlers.AllowedOrigins(origins),
		handlers.AllowedHeaders([]string{"content-type"}),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost}),
	)(handler)
	return handler
}
