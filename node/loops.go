// Copyright (c) 2026 The HeatChain developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package node

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/heatchain/heat/block"
	"github.com/heatchain/heat/consensus"
	"github.com/heatchain/heat/metrics"
	"github.com/heatchain/heat/packer"
	"github.com/heatchain/heat/pow"
)

var (
	metricBlocksMined  = metrics.Counter("node_block_mined_total")
	metricPowExhausted = metrics.Counter("node_pow_exhausted_total")
	metricAnchorFee    = metrics.Gauge("node_anchor_gas_price_gauge")
)

// syncLoop watches the remote-height pointer, fed by the node API's
// remote-height call. Full block sync has no transport yet; the
// contract honored here is that the local height pointer never
// decreases and a lagging node is visible in the logs.
func (n *Node) syncLoop(ctx context.Context) {
	logger.Debug("enter sync loop")
	defer logger.Debug("leave sync loop")

	ticker, stop := n.newTicker(n.options.SyncInterval)
	defer stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker:
			local := n.ledger.Height()
			if remote := n.ledger.RemoteHeight(); remote > local {
				logger.Warn("chain behind network", "local", local, "remote", remote)
			}
		}
	}
}

// miningLoop produces native blocks. The proof-of-work search runs on
// this goroutine without holding any lock; all other tasks stay live
// while it grinds.
func (n *Node) miningLoop(ctx context.Context) {
	logger.Debug("enter mining loop")
	defer logger.Debug("leave mining loop")

	ticker, stop := n.newTicker(n.options.MiningInterval)
	defer stop()

	quit := make(chan struct{})
	go func() {
		<-ctx.Done()
		close(quit)
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker:
			if err := n.mineRound(quit); err != nil {
				logger.Warn("mining round failed", "err", err)
			}
		}
	}
}

func (n *Node) mineRound(quit <-chan struct{}) error {
	parent := n.ledger.BestBlock()
	flow := n.packer.Prepare(parent, uint64(time.Now().Unix()))

	for _, pendingTx := range n.pool.Dump() {
		if err := flow.Adopt(pendingTx); err != nil {
			if packer.IsGasLimitReached(err) {
				break
			}
			logger.Debug("tx not adopted", "id", pendingTx.Hash(), "err", err)
		}
	}

	candidate := flow.Pack(n.ledger.AnchorHeight(), nil)
	nonce, hash, ok := pow.Search(candidate.Header(), n.options.Difficulty, n.options.MaxNonce, quit)
	if !ok {
		// no block this round, retry next interval
		atomic.AddUint64(&n.roundsExhaust, 1)
		metricPowExhausted.Add(1)
		logger.Debug("pow search exhausted", "maxNonce", n.options.MaxNonce)
		return nil
	}

	sealed := candidate.WithSeal(nonce, n.options.Difficulty)
	artifact, err := n.engine.Generate(sealed.Header().Hash(), sealed.Header().Height())
	if err != nil {
		return err
	}
	final := block.Compose(sealed.Header(), sealed.Transactions(), artifact)

	if err := consensus.Validate(final, parent.Header()); err != nil {
		return err
	}
	if err := n.ledger.AddBlock(final); err != nil {
		return err
	}

	n.ledger.AddGasFees(flow.TotalFees())
	if err := n.registry.RecordProduction(n.options.Producer, final.Header().Height()); err != nil {
		logger.Debug("producer not in validator set", "producer", n.options.Producer)
	}
	if amount := n.ledger.DrainRewards(); amount > 0 {
		n.registry.DistributeRewards(amount)
	}
	n.pool.Wash()

	atomic.AddUint64(&n.blocksMined, 1)
	metricBlocksMined.Add(1)
	n.bestBlockFeed.Send(final)

	logger.Info("block mined",
		"height", final.Header().Height(),
		"hash", hash,
		"nonce", nonce,
		"txs", len(final.Transactions()))
	return nil
}

// bridgeLoop advances bridge confirmations as the anchor chain grows.
func (n *Node) bridgeLoop(ctx context.Context) {
	logger.Debug("enter bridge loop")
	defer logger.Debug("leave bridge loop")

	ticker, stop := n.newTicker(n.options.BridgeInterval)
	defer stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker:
			tip, err := n.anchor.Tip(ctx)
			if err != nil {
				logger.Warn("bridge monitor: anchor tip unavailable", "err", err)
				continue
			}
			if confirmed := n.bridge.AdvanceL1(tip.Height); confirmed > 0 {
				logger.Info("bridge txs confirmed", "count", confirmed, "l1Height", tip.Height)
			}
		}
	}
}

// mergeMineLoop runs the merge-mining cycle.
func (n *Node) mergeMineLoop(ctx context.Context) {
	logger.Debug("enter merge-mine loop")
	defer logger.Debug("leave merge-mine loop")

	ticker, stop := n.newTicker(n.options.MergeMineInterval)
	defer stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker:
			if _, err := n.mergeMine.Poll(ctx); err != nil {
				logger.Warn("merge-mining poll failed", "err", err)
			}
		}
	}
}

// feeLoop tracks the anchor chain's fee level for settlement costing.
func (n *Node) feeLoop(ctx context.Context) {
	logger.Debug("enter fee loop")
	defer logger.Debug("leave fee loop")

	ticker, stop := n.newTicker(n.options.FeeInterval)
	defer stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker:
			fee, err := n.anchor.EstimateFee(ctx)
			if err != nil {
				logger.Warn("fee monitor: estimate unavailable", "err", err)
				continue
			}
			atomic.StoreUint64(&n.anchorGasPrice, fee.GasPrice)
			metricAnchorFee.Set(int64(fee.GasPrice))
		}
	}
}
