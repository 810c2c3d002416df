// Copyright (c) 2026 The HeatChain developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package txpool maintains the set of submitted transactions waiting to
// be packed into a block.
package txpool

import (
	"sync"

	"github.com/ethereum/go-ethereum/event"

	"github.com/heatchain/heat/heat"
	"github.com/heatchain/heat/ledger"
	"github.com/heatchain/heat/log"
	"github.com/heatchain/heat/metrics"
	"github.com/heatchain/heat/tx"
)

var logger = log.WithContext("pkg", "txpool")

var metricPoolSize = metrics.Gauge("txpool_size_gauge")

// Options options for tx pool.
type Options struct {
	Limit int
}

// TxPool maintains unprocessed transactions.
type TxPool struct {
	options Options
	ledger  *ledger.Ledger

	mu    sync.RWMutex
	all   map[heat.Bytes32]*tx.Transaction
	order []heat.Bytes32

	txFeed event.Feed
	scope  event.SubscriptionScope
}

// New create a tx pool attached to the chain state.
func New(ld *ledger.Ledger, options Options) *TxPool {
	return &TxPool{
		options: options,
		ledger:  ld,
		all:     make(map[heat.Bytes32]*tx.Transaction),
	}
}

// Close stops the pool's event fan-out.
func (p *TxPool) Close() {
	p.scope.Close()
	logger.Debug("closed")
}

// SubscribeNewTx registers a channel to receive newly added txs.
func (p *TxPool) SubscribeNewTx(ch chan *tx.Transaction) event.Subscription {
	return p.scope.Track(p.txFeed.Subscribe(ch))
}

// Add enqueues a transaction. Permanently invalid txs fail with an
// error matched by IsBadTx; txs unacceptable under current pool
// conditions fail with one matched by IsTxRejected.
func (p *TxPool) Add(newTx *tx.Transaction) error {
	if err := p.validate(newTx); err != nil {
		return err
	}

	p.mu.Lock()
	if _, found := p.all[newTx.Hash()]; found {
		p.mu.Unlock()
		return txRejectedError{"known tx"}
	}
	if len(p.all) >= p.options.Limit {
		p.mu.Unlock()
		return txRejectedError{"pool is full"}
	}
	p.all[newTx.Hash()] = newTx
	p.order = append(p.order, newTx.Hash())
	size := len(p.all)
	p.mu.Unlock()

	p.ledger.MarkTxPending(newTx.Hash())
	metricPoolSize.Set(int64(size))
	p.txFeed.Send(newTx)

	logger.Debug("tx added", "id", newTx.Hash(), "poolSize", size)
	return nil
}

func (p *TxPool) validate(newTx *tx.Transaction) error {
	if newTx.Size() > heat.MaxTxSize {
		return txRejectedError{"size too large"}
	}
	if newTx.Gas() < heat.TxGas {
		return badTxError{"intrinsic gas exceeds provided gas"}
	}
	if status, err := p.ledger.TxStatus(newTx.Hash()); err == nil && status == tx.StatusConfirmed {
		return badTxError{"already confirmed"}
	}
	return nil
}

// Get returns the pooled tx with the given hash, or nil.
func (p *TxPool) Get(hash heat.Bytes32) *tx.Transaction {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.all[hash]
}

// Dump returns all pooled txs in submission order.
func (p *TxPool) Dump() tx.Transactions {
	p.mu.RLock()
	defer p.mu.RUnlock()
	txs := make(tx.Transactions, 0, len(p.order))
	for _, hash := range p.order {
		txs = append(txs, p.all[hash])
	}
	return txs
}

// Len returns the number of pooled txs.
func (p *TxPool) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.all)
}

// Remove drops a tx from the pool. Returns false if not found.
func (p *TxPool) Remove(hash heat.Bytes32) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, found := p.all[hash]; !found {
		return false
	}
	delete(p.all, hash)
	for i, h := range p.order {
		if h == hash {
			p.order = append(p.order[:i], p.order[i+1:]...)
			break
		}
	}
	metricPoolSize.Set(int64(len(p.all)))
	return true
}

// Wash drops every pooled tx that has been confirmed on chain. Called
// after a block is accepted.
func (p *TxPool) Wash() {
	p.mu.Lock()
	defer p.mu.Unlock()

	var kept []heat.Bytes32
	for _, hash := range p.order {
		if status, err := p.ledger.TxStatus(hash); err == nil && status == tx.StatusConfirmed {
			delete(p.all, hash)
			continue
		}
		kept = append(kept, hash)
	}
	washed := len(p.order) - len(kept)
	p.order = kept
	metricPoolSize.Set(int64(len(p.all)))
	if washed > 0 {
		logger.Debug("washed confirmed txs", "count", washed)
	}
}
