// Copyright (c) 2026 The HeatChain developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package bridge tracks deposits and withdrawals through their settlement
// lifecycle against the L1 bridge contract, including L1 confirmation
// depth and the fraud-proof challenge window.
package bridge

import (
	"sync"
	"time"

	"github.com/heatchain/heat/heat"
	"github.com/heatchain/heat/log"
	"github.com/heatchain/heat/metrics"
	"github.com/pkg/errors"
)

var logger = log.WithContext("pkg", "bridge")

var (
	metricDeposits    = metrics.Counter("bridge_deposit_total")
	metricWithdrawals = metrics.Counter("bridge_withdrawal_total")
	metricPending     = metrics.Gauge("bridge_pending_count")
	metricFraudProofs = metrics.Counter("bridge_fraud_proof_total")
)

// FraudVerifier checks a fraud proof blob against a block height.
type FraudVerifier interface {
	VerifyFraudProof(blockHeight uint64, proof []byte) bool
}

// History receives bridge transactions as they reach a terminal status.
type History interface {
	Save(tx *Transaction) error
}

// Config parameters for the settlement ledger.
type Config struct {
	L1Confirmations uint64
	ChallengePeriod uint64        // seconds
	Verifier        FraudVerifier // optional
	History         History       // optional
	Now             func() uint64 // optional, unix seconds
}

// Ledger the settlement ledger. All methods are safe for concurrent use.
type Ledger struct {
	mu          sync.RWMutex
	txs         map[heat.Bytes32]*Transaction
	order       []heat.Bytes32
	seq         uint64
	pendingN    int
	confirmedL1 uint64
	disputed    map[uint64]int // block height -> proof count

	requiredConfs   uint64
	challengePeriod uint64
	verifier        FraudVerifier
	history         History
	nowFn           func() uint64
}

// New creates a settlement ledger.
func New(config Config) *Ledger {
	nowFn := config.Now
	if nowFn == nil {
		nowFn = func() uint64 { return uint64(time.Now().Unix()) }
	}
	return &Ledger{
		txs:             make(map[heat.Bytes32]*Transaction),
		disputed:        make(map[uint64]int),
		requiredConfs:   config.L1Confirmations,
		challengePeriod: config.ChallengePeriod,
		verifier:        config.Verifier,
		history:         config.History,
		nowFn:           nowFn,
	}
}

// RecordDeposit registers an inbound transfer observed on L1. It starts
// in Pending until the originating L1 block is buried deep enough.
func (l *Ledger) RecordDeposit(sender, recipient heat.Address, amount, l1Height uint64) *Transaction {
	metricDeposits.Add(1)
	return l.record(Deposit, sender, recipient, amount, l1Height)
}

// RecordWithdrawal registers an outbound transfer destined for L1.
func (l *Ledger) RecordWithdrawal(sender, recipient heat.Address, amount, l1Height uint64) *Transaction {
	metricWithdrawals.Add(1)
	return l.record(Withdrawal, sender, recipient, amount, l1Height)
}

func (l *Ledger) record(dir Direction, sender, recipient heat.Address, amount, l1Height uint64) *Transaction {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.nowFn()
	l.seq++
	tx := &Transaction{
		TxID:      txID(dir, sender, recipient, amount, now, l.seq),
		Direction: dir,
		Sender:    sender,
		Recipient: recipient,
		Amount:    amount,
		Status:    Pending,
		L1Height:  l1Height,
		CreatedAt: now,
	}
	l.txs[tx.TxID] = tx
	l.order = append(l.order, tx.TxID)
	l.pendingN++
	metricPending.Add(1)

	logger.Debug("recorded bridge tx",
		"id", tx.TxID, "dir", dir, "amount", amount, "l1Height", l1Height)
	return tx.copy()
}

// AdvanceL1 observes the current L1 tip and moves the confirmed height
// forward to tip minus the required confirmation depth (saturating).
// The confirmed height never decreases; a stale observation is ignored.
// Pending transactions whose originating block is at or below the
// confirmed height become Confirmed. Returns the number of newly
// confirmed transactions.
func (l *Ledger) AdvanceL1(l1Height uint64) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	var confirmedHeight uint64
	if l1Height > l.requiredConfs {
		confirmedHeight = l1Height - l.requiredConfs
	}
	if confirmedHeight < l.confirmedL1 {
		return 0
	}
	l.confirmedL1 = confirmedHeight

	var confirmed int
	for _, id := range l.order {
		tx := l.txs[id]
		if tx.Status != Pending {
			continue
		}
		if tx.L1Height <= l.confirmedL1 {
			tx.Status = Confirmed
			confirmed++
		}
	}
	if confirmed > 0 {
		l.pendingN -= confirmed
		metricPending.Add(int64(-confirmed))
		logger.Debug("confirmed bridge txs", "count", confirmed, "l1Height", l1Height)
	}
	return confirmed
}

// Complete marks a transaction as settled. Valid from Pending or
// Confirmed only.
func (l *Ledger) Complete(id heat.Bytes32) error {
	return l.finalize(id, Completed, "")
}

// Fail marks a transaction as failed with a reason. Valid from Pending
// or Confirmed only.
func (l *Ledger) Fail(id heat.Bytes32, reason string) error {
	return l.finalize(id, Failed, reason)
}

func (l *Ledger) finalize(id heat.Bytes32, status Status, reason string) error {
	l.mu.Lock()
	tx, ok := l.txs[id]
	if !ok {
		l.mu.Unlock()
		return ErrNotFound
	}
	if tx.Status.terminal() {
		l.mu.Unlock()
		return errors.WithMessagef(ErrInvalidTransition, "%v -> %v", tx.Status, status)
	}
	if tx.Status == Pending {
		l.pendingN--
		metricPending.Add(-1)
	}
	tx.Status = status
	tx.FailReason = reason
	cpy := tx.copy()
	l.mu.Unlock()

	if l.history != nil {
		if err := l.history.Save(cpy); err != nil {
			logger.Warn("failed to persist bridge tx", "id", id, "err", err)
		}
	}
	return nil
}

// SubmitFraudProof challenges the block at the given height. The proof
// is only admissible while the challenge period measured from the block
// timestamp has not elapsed.
func (l *Ledger) SubmitFraudProof(blockHeight, blockTimestamp uint64, proof []byte) error {
	now := l.nowFn()
	if now >= blockTimestamp && now-blockTimestamp >= l.challengePeriod {
		return ErrChallengeElapsed
	}
	if l.verifier != nil && !l.verifier.VerifyFraudProof(blockHeight, proof) {
		return ErrBadProof
	}

	l.mu.Lock()
	l.disputed[blockHeight]++
	count := l.disputed[blockHeight]
	l.mu.Unlock()

	metricFraudProofs.Add(1)
	logger.Info("fraud proof accepted", "height", blockHeight, "count", count)
	return nil
}

// Get returns a copy of the transaction, or nil if unknown.
func (l *Ledger) Get(id heat.Bytes32) *Transaction {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if tx, ok := l.txs[id]; ok {
		return tx.copy()
	}
	return nil
}

// List returns copies of all transactions in creation order.
func (l *Ledger) List() []*Transaction {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]*Transaction, 0, len(l.order))
	for _, id := range l.order {
		out = append(out, l.txs[id].copy())
	}
	return out
}

// ListByStatus returns copies of the transactions at the given
// lifecycle stage, in creation order.
func (l *Ledger) ListByStatus(status Status) []*Transaction {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]*Transaction, 0)
	for _, id := range l.order {
		if tx := l.txs[id]; tx.Status == status {
			out = append(out, tx.copy())
		}
	}
	return out
}

// PendingCount returns the number of transactions still Pending.
func (l *Ledger) PendingCount() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.pendingN
}

// ConfirmedL1Height returns the confirmed L1 height, the highest
// observed tip minus the required confirmation depth.
func (l *Ledger) ConfirmedL1Height() uint64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.confirmedL1
}

// DisputeCount returns the number of accepted fraud proofs against the
// block at the given height.
func (l *Ledger) DisputeCount(blockHeight uint64) int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.disputed[blockHeight]
}
