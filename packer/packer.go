// Copyright (c) 2026 The HeatChain developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package packer builds block candidates from pooled transactions.
package packer

import (
	"github.com/heatchain/heat/block"
	"github.com/heatchain/heat/heat"
	"github.com/heatchain/heat/ledger"
	"github.com/heatchain/heat/tx"
)

// Packer packs txs and builds new block candidates ready for the
// proof-of-work seal.
type Packer struct {
	ledger   *ledger.Ledger
	producer heat.Address
	gasLimit uint64
}

// New creates a packer producing blocks on behalf of the given address.
// If gasLimit is zero the parent's gas limit is inherited.
func New(ld *ledger.Ledger, producer heat.Address, gasLimit uint64) *Packer {
	return &Packer{
		ledger:   ld,
		producer: producer,
		gasLimit: gasLimit,
	}
}

// Prepare starts a packing flow on top of the parent block. The
// candidate's timestamp is aligned to the block interval after the
// parent, never earlier than nowTimestamp allows.
func (p *Packer) Prepare(parent *block.Block, nowTimestamp uint64) *Flow {
	timestamp := parent.Header().Timestamp() + heat.BlockInterval
	if timestamp < nowTimestamp {
		timestamp = nowTimestamp
	}
	gasLimit := p.gasLimit
	if gasLimit == 0 {
		gasLimit = parent.Header().GasLimit()
	}
	return &Flow{
		packer:       p,
		parentHeader: parent.Header(),
		timestamp:    timestamp,
		gasLimit:     gasLimit,
		adopted:      make(map[heat.Bytes32]bool),
	}
}

// Flow the flow of packing a new block.
type Flow struct {
	packer       *Packer
	parentHeader *block.Header
	timestamp    uint64
	gasLimit     uint64
	gasUsed      uint64
	adopted      map[heat.Bytes32]bool
	txs          tx.Transactions
}

// ParentHeader returns parent block header.
func (f *Flow) ParentHeader() *block.Header {
	return f.parentHeader
}

// When the target timestamp of the block being packed.
func (f *Flow) When() uint64 {
	return f.timestamp
}

// TotalFees the gas fees collected by the adopted txs so far.
func (f *Flow) TotalFees() uint64 {
	var fees uint64
	for _, t := range f.txs {
		fees += t.Fee()
	}
	return fees
}

// Adopt adds the given transaction to the block being packed.
func (f *Flow) Adopt(t *tx.Transaction) error {
	switch {
	case t.Size() > heat.MaxTxSize:
		return badTxError{"size too large"}
	case t.Gas() < heat.TxGas:
		return badTxError{"intrinsic gas exceeds provided gas"}
	case f.gasUsed+t.Gas() > f.gasLimit:
		return errGasLimitReached
	}

	if f.adopted[t.Hash()] {
		return errKnownTx
	}
	if status, err := f.packer.ledger.TxStatus(t.Hash()); err == nil && status == tx.StatusConfirmed {
		return errKnownTx
	}

	f.gasUsed += t.Gas()
	f.adopted[t.Hash()] = true
	f.txs = append(f.txs, t)
	return nil
}

// Pack assembles the unsealed block candidate. Nonce and difficulty are
// left zero; the proof-of-work seal is applied separately.
func (f *Flow) Pack(anchorHeight uint64, settlementProof []byte) *block.Block {
	builder := new(block.Builder).
		Height(f.parentHeader.Height() + 1).
		ParentHash(f.parentHeader.Hash()).
		Timestamp(f.timestamp).
		Producer(f.packer.producer).
		GasUsed(f.gasUsed).
		GasLimit(f.gasLimit).
		AnchorHeight(anchorHeight).
		SettlementProof(settlementProof)
	for _, t := range f.txs {
		builder = builder.Transaction(t)
	}
	return builder.Build()
}
