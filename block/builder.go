// Copyright (c) 2026 The HeatChain developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package block

import (
	"github.com/heatchain/heat/heat"
	"github.com/heatchain/heat/tx"
)

// Builder to make it easy to build a block candidate. Nonce and difficulty
// stay zero until the proof-of-work seal is found.
type Builder struct {
	header          headerBody
	txs             tx.Transactions
	settlementProof []byte
}

// Height set block height.
func (b *Builder) Height(height uint64) *Builder {
	b.header.Height = height
	return b
}

// ParentHash set parent hash.
func (b *Builder) ParentHash(hash heat.Bytes32) *Builder {
	b.header.ParentHash = hash
	return b
}

// Timestamp set timestamp.
func (b *Builder) Timestamp(ts uint64) *Builder {
	b.header.Timestamp = ts
	return b
}

// Producer set the block producer address.
func (b *Builder) Producer(addr heat.Address) *Builder {
	b.header.Producer = addr
	return b
}

// GasUsed set gas used.
func (b *Builder) GasUsed(used uint64) *Builder {
	b.header.GasUsed = used
	return b
}

// GasLimit set gas limit.
func (b *Builder) GasLimit(limit uint64) *Builder {
	b.header.GasLimit = limit
	return b
}

// AnchorHeight set the observed anchor-chain height.
func (b *Builder) AnchorHeight(height uint64) *Builder {
	b.header.AnchorHeight = height
	return b
}

// Transaction add a transaction.
func (b *Builder) Transaction(tx *tx.Transaction) *Builder {
	b.txs = append(b.txs, tx)
	return b
}

// SettlementProof attach a settlement artifact.
func (b *Builder) SettlementProof(proof []byte) *Builder {
	b.settlementProof = append([]byte(nil), proof...)
	return b
}

// Build build a block object. The merkle root is derived from the
// transactions added so far.
func (b *Builder) Build() *Block {
	header := b.header
	header.MerkleRoot = b.txs.MerkleRoot()

	return &Block{
		header:          &Header{body: header},
		txs:             b.txs.Copy(),
		settlementProof: b.settlementProof,
	}
}
