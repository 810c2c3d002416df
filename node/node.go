// Copyright (c) 2026 The HeatChain developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package node owns the periodic tasks that drive the chain: block
// sync, mining, bridge monitoring, merge-mining and L1 fee monitoring.
// Each task runs on its own goroutine with its own interval; shared
// state is only touched through the ledger, registry and bridge locks.
package node

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/ethereum/go-ethereum/event"

	"github.com/heatchain/heat/anchorclient"
	"github.com/heatchain/heat/block"
	"github.com/heatchain/heat/bridge"
	"github.com/heatchain/heat/co"
	"github.com/heatchain/heat/heat"
	"github.com/heatchain/heat/ledger"
	"github.com/heatchain/heat/log"
	"github.com/heatchain/heat/mergemine"
	"github.com/heatchain/heat/packer"
	"github.com/heatchain/heat/proof"
	"github.com/heatchain/heat/staker"
	"github.com/heatchain/heat/txpool"
)

var logger = log.WithContext("pkg", "node")

// Options tunes the node's periodic tasks.
type Options struct {
	Producer   heat.Address
	GasLimit   uint64
	Difficulty uint64
	MaxNonce   uint64

	SyncInterval      time.Duration
	MiningInterval    time.Duration
	BridgeInterval    time.Duration
	MergeMineInterval time.Duration
	FeeInterval       time.Duration
}

func (o *Options) withDefaults() Options {
	opts := *o
	if opts.MaxNonce == 0 {
		opts.MaxNonce = heat.MaxSearchNonce
	}
	blockInterval := time.Duration(heat.BlockInterval) * time.Second
	if opts.SyncInterval == 0 {
		opts.SyncInterval = blockInterval / 2
	}
	if opts.MiningInterval == 0 {
		opts.MiningInterval = blockInterval
	}
	if opts.BridgeInterval == 0 {
		opts.BridgeInterval = blockInterval
	}
	if opts.MergeMineInterval == 0 {
		opts.MergeMineInterval = blockInterval
	}
	if opts.FeeInterval == 0 {
		opts.FeeInterval = blockInterval * 3
	}
	return opts
}

// Node wires the chain state to its periodic tasks.
type Node struct {
	goes    co.Goes
	options Options

	ledger    *ledger.Ledger
	registry  *staker.Registry
	bridge    *bridge.Ledger
	pool      *txpool.TxPool
	packer    *packer.Packer
	mergeMine *mergemine.Coordinator
	anchor    *anchorclient.Client
	engine    proof.Engine

	bestBlockFeed event.Feed
	scope         event.SubscriptionScope

	anchorGasPrice uint64 // atomic
	blocksMined    uint64 // atomic
	roundsExhaust  uint64 // atomic

	// test hook; defaults to time.NewTicker
	newTicker func(time.Duration) (<-chan time.Time, func())
}

// New assembles a node over its collaborators.
func New(
	ld *ledger.Ledger,
	registry *staker.Registry,
	bridgeLedger *bridge.Ledger,
	pool *txpool.TxPool,
	mergeMine *mergemine.Coordinator,
	anchor *anchorclient.Client,
	engine proof.Engine,
	options Options,
) *Node {
	opts := options.withDefaults()
	return &Node{
		options:   opts,
		ledger:    ld,
		registry:  registry,
		bridge:    bridgeLedger,
		pool:      pool,
		packer:    packer.New(ld, opts.Producer, opts.GasLimit),
		mergeMine: mergeMine,
		anchor:    anchor,
		engine:    engine,
		newTicker: func(d time.Duration) (<-chan time.Time, func()) {
			t := time.NewTicker(d)
			return t.C, t.Stop
		},
	}
}

// Run starts all periodic tasks and blocks until the context is
// cancelled and every task has exited.
func (n *Node) Run(ctx context.Context) error {
	logger.Info("node started",
		"producer", n.options.Producer,
		"difficulty", n.options.Difficulty,
		"settlement", n.engine.Mode())

	n.goes.Go(func() { n.syncLoop(ctx) })
	n.goes.Go(func() { n.miningLoop(ctx) })
	n.goes.Go(func() { n.bridgeLoop(ctx) })
	n.goes.Go(func() { n.mergeMineLoop(ctx) })
	n.goes.Go(func() { n.feeLoop(ctx) })
	n.goes.Go(func() { n.houseKeeping(ctx) })

	n.goes.Wait()
	n.scope.Close()
	logger.Info("node stopped")
	return ctx.Err()
}

// SubscribeBestBlock registers a channel to receive newly mined blocks.
func (n *Node) SubscribeBestBlock(ch chan *block.Block) event.Subscription {
	return n.scope.Track(n.bestBlockFeed.Subscribe(ch))
}

// AnchorGasPrice returns the last observed anchor-chain gas price.
func (n *Node) AnchorGasPrice() uint64 {
	return atomic.LoadUint64(&n.anchorGasPrice)
}

// State is the node status snapshot served by the API.
type State struct {
	Height         uint64          `json:"height"`
	BestBlockHash  heat.Bytes32    `json:"bestBlockHash"`
	RemoteHeight   uint64          `json:"remoteHeight"`
	PendingTxCount int             `json:"pendingTxCount"`
	BlocksMined    uint64          `json:"blocksMined"`
	RoundsExhaust  uint64          `json:"roundsExhausted"`
	AnchorGasPrice uint64          `json:"anchorGasPrice"`
	MergeMining    mergemine.Stats `json:"mergeMining"`
	SettlementMode string          `json:"settlementMode"`
}

// State snapshots the node for the status endpoint.
func (n *Node) State() State {
	best := n.ledger.BestBlock().Header()
	return State{
		Height:         best.Height(),
		BestBlockHash:  best.Hash(),
		RemoteHeight:   n.ledger.RemoteHeight(),
		PendingTxCount: n.pool.Len(),
		BlocksMined:    atomic.LoadUint64(&n.blocksMined),
		RoundsExhaust:  atomic.LoadUint64(&n.roundsExhaust),
		AnchorGasPrice: n.AnchorGasPrice(),
		MergeMining:    n.mergeMine.Stats(),
		SettlementMode: n.engine.Mode().String(),
	}
}
