// Copyright (c) 2026 The HeatChain developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package ledger maintains the canonical chain state: block store, best
// block pointer, confirmed anchor height, transaction statuses and the
// mining-reward accumulator. All cross-field invariants are guarded by a
// single lock.
package ledger

import (
	"sync"

	lru "github.com/hashicorp/golang-lru"
	"github.com/pkg/errors"

	"github.com/heatchain/heat/block"
	"github.com/heatchain/heat/heat"
	"github.com/heatchain/heat/kv"
	"github.com/heatchain/heat/log"
	"github.com/heatchain/heat/metrics"
	"github.com/heatchain/heat/tx"
)

var logger = log.WithContext("pkg", "ledger")

var (
	metricBestHeight = metrics.Gauge("ledger_best_height_gauge")
	metricBlockCount = metrics.Counter("ledger_block_added_total")
)

const blockCacheSize = 512

var (
	// ErrNotFound block or tx unknown to the ledger.
	ErrNotFound = errors.New("not found")
	// ErrNotExtend the block does not extend the best block.
	ErrNotExtend = errors.New("block does not extend best block")
)

// Ledger the canonical chain state.
type Ledger struct {
	store kv.GetPutter

	mu           sync.RWMutex
	bestBlock    *block.Block
	genesisID    heat.Bytes32
	cache        *lru.Cache // height -> *block.Block
	txStatus     map[heat.Bytes32]tx.Status
	anchorHeight uint64 // confirmed anchor-chain height
	remoteHeight uint64 // best height heard from peers
	rewards      RewardAccumulator
}

// New opens the ledger over the given store. If the store is empty the
// genesis block is written; otherwise the chain state is restored and
// the stored genesis must match.
func New(store kv.GetPutter, genesis *block.Block) (*Ledger, error) {
	if genesis.Header().Height() != 0 {
		return nil, errors.New("genesis block must have height 0")
	}
	cache, _ := lru.New(blockCacheSize)
	l := &Ledger{
		store:     store,
		genesisID: genesis.Header().Hash(),
		cache:     cache,
		txStatus:  make(map[heat.Bytes32]tx.Status),
	}

	bestHeight, err := loadBestHeight(store)
	if err != nil {
		if !store.IsNotFound(err) {
			return nil, err
		}
		// fresh store
		if err := saveBlock(store, genesis); err != nil {
			return nil, err
		}
		l.bestBlock = genesis
	} else {
		stored, err := loadBlock(store, 0)
		if err != nil {
			return nil, errors.Wrap(err, "load stored genesis")
		}
		if stored.Header().Hash() != l.genesisID {
			return nil, errors.New("store genesis mismatch")
		}
		best, err := loadBlock(store, bestHeight)
		if err != nil {
			return nil, errors.Wrap(err, "load best block")
		}
		l.bestBlock = best
		for _, t := range best.Transactions() {
			l.txStatus[t.Hash()] = tx.StatusConfirmed
		}
		logger.Info("chain state restored", "height", bestHeight, "best", best.Header().Hash())
	}

	l.cache.Add(l.bestBlock.Header().Height(), l.bestBlock)
	metricBestHeight.Set(int64(l.bestBlock.Header().Height()))
	return l, nil
}

// GenesisID returns the genesis block hash.
func (l *Ledger) GenesisID() heat.Bytes32 {
	return l.genesisID
}

// BestBlock returns the current best block.
func (l *Ledger) BestBlock() *block.Block {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.bestBlock
}

// Height returns the current chain height.
func (l *Ledger) Height() uint64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.bestBlock.Header().Height()
}

// AddBlock appends a validated block to the chain. The block must
// directly extend the best block. Transactions inside the block
// transition to Confirmed as part of the same state change.
func (l *Ledger) AddBlock(b *block.Block) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	best := l.bestBlock.Header()
	if b.Header().Height() != best.Height()+1 || b.Header().ParentHash() != best.Hash() {
		return errors.WithMessagef(ErrNotExtend,
			"height %v parent %v", b.Header().Height(), b.Header().ParentHash())
	}
	if err := saveBlock(l.store, b); err != nil {
		return err
	}
	l.bestBlock = b
	l.cache.Add(b.Header().Height(), b)
	for _, t := range b.Transactions() {
		l.txStatus[t.Hash()] = tx.StatusConfirmed
	}

	metricBestHeight.Set(int64(b.Header().Height()))
	metricBlockCount.Add(1)
	return nil
}

// BlockByHeight returns the block at the given height, or ErrNotFound.
func (l *Ledger) BlockByHeight(height uint64) (*block.Block, error) {
	l.mu.RLock()
	if height > l.bestBlock.Header().Height() {
		l.mu.RUnlock()
		return nil, ErrNotFound
	}
	if cached, ok := l.cache.Get(height); ok {
		l.mu.RUnlock()
		return cached.(*block.Block), nil
	}
	l.mu.RUnlock()

	b, err := loadBlock(l.store, height)
	if err != nil {
		if l.store.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	l.cache.Add(height, b)
	return b, nil
}

// BlockByHash returns the block with the given header hash, or
// ErrNotFound.
func (l *Ledger) BlockByHash(hash heat.Bytes32) (*block.Block, error) {
	height, err := loadHeightByHash(l.store, hash)
	if err != nil {
		if l.store.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return l.BlockByHeight(height)
}

// TxStatus reports the tracked status of a transaction. Unknown
// transactions return ErrNotFound.
func (l *Ledger) TxStatus(hash heat.Bytes32) (tx.Status, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	status, ok := l.txStatus[hash]
	if !ok {
		return 0, ErrNotFound
	}
	return status, nil
}

// MarkTxPending registers a freshly submitted transaction.
func (l *Ledger) MarkTxPending(hash heat.Bytes32) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.txStatus[hash]; !ok {
		l.txStatus[hash] = tx.StatusPending
	}
}

// MarkTxFailed marks a transaction as failed unless it has already been
// confirmed.
func (l *Ledger) MarkTxFailed(hash heat.Bytes32) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.txStatus[hash] != tx.StatusConfirmed {
		l.txStatus[hash] = tx.StatusFailed
	}
}

// NoteRemoteHeight records the best chain height heard from the network.
// The pointer never decreases.
func (l *Ledger) NoteRemoteHeight(height uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if height > l.remoteHeight {
		l.remoteHeight = height
	}
}

// RemoteHeight returns the best known remote chain height.
func (l *Ledger) RemoteHeight() uint64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.remoteHeight
}

// SetAnchorHeight records the confirmed anchor-chain height. The value
// never decreases; stale observations are ignored.
func (l *Ledger) SetAnchorHeight(height uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if height > l.anchorHeight {
		l.anchorHeight = height
	}
}

// AnchorHeight returns the confirmed anchor-chain height.
func (l *Ledger) AnchorHeight() uint64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.anchorHeight
}

// AddAnchorReward credits a merge-mining reward to the accumulator.
func (l *Ledger) AddAnchorReward(amount uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.rewards.addAnchorReward(amount)
}

// AddGasFees credits collected gas fees to the accumulator.
func (l *Ledger) AddGasFees(amount uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.rewards.addGasFees(amount)
}

// Rewards returns a snapshot of the reward accumulator.
func (l *Ledger) Rewards() RewardAccumulator {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.rewards
}

// DrainRewards returns the distributable amount and resets the
// accumulator. Used by the reward-distribution step.
func (l *Ledger) DrainRewards() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	amount := l.rewards.distributable()
	l.rewards.reset()
	return amount
}
