// Copyright (c) 2026 The HeatChain developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package tx

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/heatchain/heat/heat"
)

func newTx(nonce uint64) *Transaction {
	return new(Builder).
		From(heat.BytesToAddress([]byte("sender"))).
		To(heat.BytesToAddress([]byte("recipient"))).
		Value(100).
		GasPrice(1).
		Gas(heat.TxGas).
		Nonce(nonce).
		Build()
}

func TestMerkleRootEmpty(t *testing.T) {
	assert.Equal(t, heat.Bytes32{}, Transactions(nil).MerkleRoot())
	assert.Equal(t, heat.Bytes32{}, Transactions{}.MerkleRoot())
}

func TestMerkleRootDeterministic(t *testing.T) {
	txs := Transactions{newTx(0), newTx(1), newTx(2)}
	assert.Equal(t, txs.MerkleRoot(), txs.MerkleRoot())
}

func TestMerkleRootOrderSensitive(t *testing.T) {
	a, b := newTx(0), newTx(1)
	assert.NotEqual(t,
		Transactions{a, b}.MerkleRoot(),
		Transactions{b, a}.MerkleRoot())
}

func TestMerkleRootSingleLeaf(t *testing.T) {
	a := newTx(0)
	// a single leaf is the root itself
	assert.Equal(t, a.Hash(), Transactions{a}.MerkleRoot())
}

func TestMerkleRootOddLeafPairedWithItself(t *testing.T) {
	a, b, c := newTx(0), newTx(1), newTx(2)

	ab := heat.Blake2b(a.Hash().Bytes(), b.Hash().Bytes())
	cc := heat.Blake2b(c.Hash().Bytes(), c.Hash().Bytes())
	want := heat.Blake2b(ab.Bytes(), cc.Bytes())

	assert.Equal(t, want, Transactions{a, b, c}.MerkleRoot())
}
