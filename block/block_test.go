// Copyright (c) 2026 The HeatChain developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package block

import (
	"testing"

	"github.com/ethereum/go-ethereum/rlp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heatchain/heat/heat"
	"github.com/heatchain/heat/tx"
)

func newTestBlock() *Block {
	trx := new(tx.Builder).
		From(heat.BytesToAddress([]byte("sender"))).
		To(heat.BytesToAddress([]byte("recipient"))).
		Value(10).
		Gas(heat.TxGas).
		Build()

	return new(Builder).
		Height(1).
		ParentHash(heat.Blake2b([]byte("parent"))).
		Timestamp(1700000000).
		Producer(heat.BytesToAddress([]byte("producer"))).
		GasUsed(heat.TxGas).
		GasLimit(heat.InitialGasLimit).
		AnchorHeight(99).
		Transaction(trx).
		Build()
}

func TestBuilderDerivesMerkleRoot(t *testing.T) {
	b := newTestBlock()
	assert.Equal(t, b.Transactions().MerkleRoot(), b.Header().MerkleRoot())
}

func TestHeaderAccessors(t *testing.T) {
	h := newTestBlock().Header()

	assert.Equal(t, uint64(1), h.Height())
	assert.Equal(t, heat.Blake2b([]byte("parent")), h.ParentHash())
	assert.Equal(t, uint64(1700000000), h.Timestamp())
	assert.Equal(t, heat.BytesToAddress([]byte("producer")), h.Producer())
	assert.Equal(t, heat.TxGas, h.GasUsed())
	assert.Equal(t, heat.InitialGasLimit, h.GasLimit())
	assert.Equal(t, uint64(99), h.AnchorHeight())
	assert.Equal(t, uint64(0), h.Nonce())
	assert.Equal(t, uint64(0), h.Difficulty())
}

func TestWithSeal(t *testing.T) {
	b := newTestBlock()
	sealed := b.WithSeal(12345, 1)

	assert.Equal(t, uint64(12345), sealed.Header().Nonce())
	assert.Equal(t, uint64(1), sealed.Header().Difficulty())
	// seal doesn't change the signing hash
	assert.Equal(t, b.Header().SigningHash(), sealed.Header().SigningHash())
	// the sealed hash equals the probe hash of the candidate
	assert.Equal(t, b.Header().HashWithNonce(12345), sealed.Header().Hash())
	// candidate is untouched
	assert.Equal(t, uint64(0), b.Header().Nonce())
}

func TestBlockRLPRoundTrip(t *testing.T) {
	b := newTestBlock().WithSeal(7, 1)

	data, err := rlp.EncodeToBytes(b)
	require.NoError(t, err)

	var decoded Block
	require.NoError(t, rlp.DecodeBytes(data, &decoded))

	assert.Equal(t, b.Header().Hash(), decoded.Header().Hash())
	assert.Equal(t, b.Header().MerkleRoot(), decoded.Header().MerkleRoot())
	assert.Equal(t, len(b.Transactions()), len(decoded.Transactions()))
}

func TestSettlementProofRoundTrip(t *testing.T) {
	proof := []byte("fraud-proof-commitment")

	b := new(Builder).
		Height(2).
		SettlementProof(proof).
		Build()
	assert.Equal(t, proof, b.SettlementProof())

	data, err := rlp.EncodeToBytes(b)
	require.NoError(t, err)

	var decoded Block
	require.NoError(t, rlp.DecodeBytes(data, &decoded))
	assert.Equal(t, proof, decoded.SettlementProof())

	empty := new(Builder).Height(3).Build()
	assert.Nil(t, empty.SettlementProof())
}
