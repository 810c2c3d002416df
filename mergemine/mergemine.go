// Copyright (c) 2026 The HeatChain developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package mergemine earns anchor-chain rewards alongside native block
// production. Each round it polls the anchor chain's tip; a previously
// unseen tip yields an aux proof binding the native best block to it
// and credits a fixed reward. Native mining and merge-mining are
// independent award streams.
package mergemine

import (
	"context"
	"sync"

	lru "github.com/hashicorp/golang-lru"

	"github.com/heatchain/heat/anchorclient"
	"github.com/heatchain/heat/heat"
	"github.com/heatchain/heat/ledger"
	"github.com/heatchain/heat/log"
	"github.com/heatchain/heat/metrics"
)

var logger = log.WithContext("pkg", "mergemine")

var (
	metricAnchorBlocks = metrics.Counter("mergemine_anchor_block_total")
	metricAnchorTip    = metrics.Gauge("mergemine_anchor_tip_gauge")
)

const recordCacheSize = 1024

// AnchorBlockRecord a newly observed anchor block together with the aux
// proof that binds a native block to it.
type AnchorBlockRecord struct {
	Height    uint64       `json:"height"`
	Hash      heat.Bytes32 `json:"hash"`
	Timestamp uint64       `json:"timestamp"`
	AuxPow    []byte       `json:"auxPow"`
}

// AnchorReader reads the anchor chain's tip.
type AnchorReader interface {
	Tip(ctx context.Context) (*anchorclient.Tip, error)
}

// Coordinator drives the per-round merge-mining cycle.
type Coordinator struct {
	anchor AnchorReader
	ledger *ledger.Ledger
	reward uint64

	mu         sync.Mutex
	lastHeight uint64
	records    *lru.Cache // anchor height -> *AnchorBlockRecord
}

// New creates a coordinator crediting the given reward per anchor block.
func New(anchor AnchorReader, ld *ledger.Ledger, reward uint64) *Coordinator {
	records, _ := lru.New(recordCacheSize)
	return &Coordinator{
		anchor:  anchor,
		ledger:  ld,
		reward:  reward,
		records: records,
	}
}

// Poll runs one merge-mining round: queries the anchor tip and, if it
// advanced past the last recorded height, stores an anchor block record
// and credits the reward. Returns nil with no error when the tip has
// not advanced. Re-observing an already recorded height is a no-op.
func (c *Coordinator) Poll(ctx context.Context) (*AnchorBlockRecord, error) {
	tip, err := c.anchor.Tip(ctx)
	if err != nil {
		return nil, err
	}
	metricAnchorTip.Set(int64(tip.Height))

	c.mu.Lock()
	defer c.mu.Unlock()

	if tip.Height <= c.lastHeight {
		return nil, nil
	}
	if _, seen := c.records.Get(tip.Height); seen {
		return nil, nil
	}

	nativeHash := c.ledger.BestBlock().Header().Hash()
	proof := &AuxProof{
		NativeHash:   nativeHash,
		AnchorHash:   tip.Hash,
		AnchorHeight: tip.Height,
	}
	record := &AnchorBlockRecord{
		Height:    tip.Height,
		Hash:      tip.Hash,
		Timestamp: tip.Timestamp,
		AuxPow:    proof.Encode(),
	}
	c.records.Add(tip.Height, record)
	c.lastHeight = tip.Height

	c.ledger.AddAnchorReward(c.reward)
	c.ledger.SetAnchorHeight(tip.Height)
	metricAnchorBlocks.Add(1)

	logger.Info("anchor block merged",
		"height", tip.Height, "anchor", tip.Hash, "native", nativeHash)
	return record, nil
}

// Record returns the stored record for the given anchor height, or nil.
func (c *Coordinator) Record(height uint64) *AnchorBlockRecord {
	c.mu.Lock()
	defer c.mu.Unlock()
	if v, ok := c.records.Get(height); ok {
		return v.(*AnchorBlockRecord)
	}
	return nil
}

// LastHeight returns the highest anchor height recorded so far.
func (c *Coordinator) LastHeight() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastHeight
}

// Stats summarizes merge-mining progress.
type Stats struct {
	LastAnchorHeight uint64 `json:"lastAnchorHeight"`
	RecordedBlocks   int    `json:"recordedBlocks"`
	RewardPerBlock   uint64 `json:"rewardPerBlock"`
}

// Stats returns a snapshot of merge-mining progress.
func (c *Coordinator) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Stats{
		LastAnchorHeight: c.lastHeight,
		RecordedBlocks:   c.records.Len(),
		RewardPerBlock:   c.reward,
	}
}
