// Copyright (c) 2026 The HeatChain developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package block

import (
	"fmt"
	"io"

	"github.com/ethereum/go-ethereum/rlp"

	"github.com/heatchain/heat/tx"
)

// Block is an immutable block type. Once accepted by the ledger it's owned
// by the ledger and never mutated.
type Block struct {
	header *Header
	txs    tx.Transactions

	// settlementProof is the optional settlement artifact carried by the
	// block: a fraud-proof commitment or a zk proof blob, depending on the
	// node's settlement mode. Empty when none.
	settlementProof []byte
}

// Compose compose a block with all needed components.
// The merkle root of txs must already match the header.
func Compose(header *Header, txs tx.Transactions, settlementProof []byte) *Block {
	return &Block{
		header:          header,
		txs:             txs.Copy(),
		settlementProof: settlementProof,
	}
}

// Header returns the block header.
func (b *Block) Header() *Header {
	return b.header
}

// Transactions returns a copy of transactions.
func (b *Block) Transactions() tx.Transactions {
	return b.txs.Copy()
}

// SettlementProof returns the attached settlement artifact, or nil.
func (b *Block) SettlementProof() []byte {
	if len(b.settlementProof) == 0 {
		return nil
	}
	return append([]byte(nil), b.settlementProof...)
}

// WithSeal create a new block with the same body but a sealed header.
func (b *Block) WithSeal(nonce, difficulty uint64) *Block {
	return &Block{
		header:          b.header.WithSeal(nonce, difficulty),
		txs:             b.txs,
		settlementProof: b.settlementProof,
	}
}

// EncodeRLP implements rlp.Encoder.
func (b *Block) EncodeRLP(w io.Writer) error {
	return rlp.Encode(w, []any{
		b.header,
		b.txs,
		b.settlementProof,
	})
}

// DecodeRLP implements rlp.Decoder.
func (b *Block) DecodeRLP(s *rlp.Stream) error {
	payload := struct {
		Header          Header
		Txs             tx.Transactions
		SettlementProof []byte
	}{}
	if err := s.Decode(&payload); err != nil {
		return err
	}
	*b = Block{
		header:          &payload.Header,
		txs:             payload.Txs,
		settlementProof: payload.SettlementProof,
	}
	return nil
}

func (b *Block) String() string {
	return fmt.Sprintf(`Block(%v)
%v
Transactions: %v`, b.header.Hash(), b.header, len(b.txs))
}
