// Copyright (c) 2026 The HeatChain developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package consensus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heatchain/heat/block"
	"github.com/heatchain/heat/genesis"
	"github.com/heatchain/heat/heat"
	"github.com/heatchain/heat/pow"
	"github.com/heatchain/heat/tx"
)

func sealedChild(parent *block.Header, txs tx.Transactions, difficulty uint64) *block.Block {
	b := new(block.Builder).
		Height(parent.Height() + 1).
		ParentHash(parent.Hash()).
		Timestamp(parent.Timestamp() + heat.BlockInterval).
		GasLimit(heat.InitialGasLimit)
	for _, t := range txs {
		b = b.Transaction(t)
	}
	candidate := b.Build()
	if difficulty == 0 {
		return candidate.WithSeal(0, 0)
	}
	nonce, _, ok := pow.Search(candidate.Header(), difficulty, heat.MaxSearchNonce, nil)
	if !ok {
		panic("pow search exhausted in test")
	}
	return candidate.WithSeal(nonce, difficulty)
}

func TestValidateOK(t *testing.T) {
	parent := genesis.Devnet.Build().Header()

	trx := new(tx.Builder).Value(5).Gas(heat.TxGas).Build()
	blk := sealedChild(parent, tx.Transactions{trx}, 1)
	assert.NoError(t, Validate(blk, parent))
}

func TestValidateHeight(t *testing.T) {
	parent := genesis.Devnet.Build().Header()

	blk := new(block.Builder).
		Height(parent.Height() + 2).
		ParentHash(parent.Hash()).
		Timestamp(parent.Timestamp() + 1).
		Build().WithSeal(0, 0)
	err := Validate(blk, parent)
	require.Error(t, err)
	assert.True(t, IsConsensusError(err))
	assert.Contains(t, err.Error(), "height")
}

func TestValidateParentHash(t *testing.T) {
	parent := genesis.Devnet.Build().Header()

	blk := new(block.Builder).
		Height(parent.Height() + 1).
		ParentHash(heat.Bytes32{0xba, 0xd0}).
		Timestamp(parent.Timestamp() + 1).
		Build().WithSeal(0, 0)
	err := Validate(blk, parent)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parent hash")
}

func TestValidateTimestamp(t *testing.T) {
	parent := genesis.Devnet.Build().Header()

	blk := new(block.Builder).
		Height(parent.Height() + 1).
		ParentHash(parent.Hash()).
		Timestamp(parent.Timestamp()).
		Build().WithSeal(0, 0)
	err := Validate(blk, parent)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "timestamp")
}

func TestValidateMerkleRoot(t *testing.T) {
	parent := genesis.Devnet.Build().Header()

	// header built without the tx, then recomposed with it
	empty := sealedChild(parent, nil, 0)
	trx := new(tx.Builder).Value(5).Gas(heat.TxGas).Build()
	tampered := block.Compose(empty.Header(), tx.Transactions{trx}, nil)

	err := Validate(tampered, parent)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "merkle root")
}

func TestValidatePoW(t *testing.T) {
	parent := genesis.Devnet.Build().Header()

	candidate := new(block.Builder).
		Height(parent.Height() + 1).
		ParentHash(parent.Hash()).
		Timestamp(parent.Timestamp() + 1).
		Build()

	// find a valid nonce, then claim a stricter difficulty than sealed
	nonce, hash, ok := pow.Search(candidate.Header(), 1, heat.MaxSearchNonce, nil)
	require.True(t, ok)
	require.True(t, pow.Check(hash, 1))

	blk := candidate.WithSeal(nonce, 1)
	assert.NoError(t, Validate(blk, parent))

	// brute-force a nonce that fails difficulty 1, then seal with it
	var badNonce uint64
	for ; ; badNonce++ {
		if !pow.Check(candidate.Header().HashWithNonce(badNonce), 1) {
			break
		}
	}
	bad := candidate.WithSeal(badNonce, 1)
	err := Validate(bad, parent)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "proof of work")
}

func TestValidateFailFastOrder(t *testing.T) {
	parent := genesis.Devnet.Build().Header()

	// violates height, parent hash and timestamp; height reported first
	blk := new(block.Builder).Height(9).Build().WithSeal(0, 0)
	err := Validate(blk, parent)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "height")
}
