// Copyright (c) 2026 The HeatChain developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package txpool

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heatchain/heat/block"
	"github.com/heatchain/heat/genesis"
	"github.com/heatchain/heat/heat"
	"github.com/heatchain/heat/ledger"
	"github.com/heatchain/heat/lvldb"
	"github.com/heatchain/heat/tx"
)

func newTestPool(t *testing.T, limit int) (*TxPool, *ledger.Ledger) {
	db, err := lvldb.NewMem()
	require.NoError(t, err)
	ld, err := ledger.New(db, genesis.Devnet.Build())
	require.NoError(t, err)
	pool := New(ld, Options{Limit: limit})
	t.Cleanup(pool.Close)
	return pool, ld
}

func newTestTx(nonce uint64) *tx.Transaction {
	return new(tx.Builder).Value(100).Gas(heat.TxGas).Nonce(nonce).Build()
}

func TestAddAndGet(t *testing.T) {
	pool, ld := newTestPool(t, 10)

	trx := newTestTx(0)
	require.NoError(t, pool.Add(trx))
	assert.Equal(t, 1, pool.Len())
	assert.Equal(t, trx, pool.Get(trx.Hash()))
	assert.Nil(t, pool.Get(heat.Bytes32{1}))

	status, err := ld.TxStatus(trx.Hash())
	require.NoError(t, err)
	assert.Equal(t, tx.StatusPending, status)
}

func TestAddKnown(t *testing.T) {
	pool, _ := newTestPool(t, 10)

	trx := newTestTx(0)
	require.NoError(t, pool.Add(trx))
	err := pool.Add(trx)
	assert.True(t, IsTxRejected(err))
}

func TestAddPoolFull(t *testing.T) {
	pool, _ := newTestPool(t, 2)

	require.NoError(t, pool.Add(newTestTx(0)))
	require.NoError(t, pool.Add(newTestTx(1)))
	err := pool.Add(newTestTx(2))
	assert.True(t, IsTxRejected(err))
	assert.Equal(t, 2, pool.Len())
}

func TestAddBadTx(t *testing.T) {
	pool, _ := newTestPool(t, 10)

	underpriced := new(tx.Builder).Gas(heat.TxGas - 1).Build()
	assert.True(t, IsBadTx(pool.Add(underpriced)))

	oversize := new(tx.Builder).Gas(heat.TxGas).Payload(make([]byte, heat.MaxTxSize+1)).Build()
	assert.True(t, IsTxRejected(pool.Add(oversize)))
}

func TestDumpOrder(t *testing.T) {
	pool, _ := newTestPool(t, 10)

	a, b, c := newTestTx(0), newTestTx(1), newTestTx(2)
	for _, trx := range []*tx.Transaction{a, b, c} {
		require.NoError(t, pool.Add(trx))
	}
	dump := pool.Dump()
	require.Len(t, dump, 3)
	assert.Equal(t, a.Hash(), dump[0].Hash())
	assert.Equal(t, c.Hash(), dump[2].Hash())
}

func TestRemove(t *testing.T) {
	pool, _ := newTestPool(t, 10)

	trx := newTestTx(0)
	require.NoError(t, pool.Add(trx))
	assert.True(t, pool.Remove(trx.Hash()))
	assert.False(t, pool.Remove(trx.Hash()))
	assert.Equal(t, 0, pool.Len())
}

func TestWash(t *testing.T) {
	pool, ld := newTestPool(t, 10)

	confirmed := newTestTx(0)
	pending := newTestTx(1)
	require.NoError(t, pool.Add(confirmed))
	require.NoError(t, pool.Add(pending))

	b1 := new(block.Builder).
		Height(1).
		ParentHash(ld.BestBlock().Header().Hash()).
		Timestamp(ld.BestBlock().Header().Timestamp() + heat.BlockInterval).
		GasLimit(heat.InitialGasLimit).
		Transaction(confirmed).
		Build().WithSeal(1, 0)
	require.NoError(t, ld.AddBlock(b1))

	pool.Wash()
	assert.Equal(t, 1, pool.Len())
	assert.Nil(t, pool.Get(confirmed.Hash()))
	assert.NotNil(t, pool.Get(pending.Hash()))

	// a confirmed tx can no longer be re-added
	assert.True(t, IsBadTx(pool.Add(confirmed)))
}

func TestSubscribeNewTx(t *testing.T) {
	pool, _ := newTestPool(t, 10)

	ch := make(chan *tx.Transaction, 1)
	sub := pool.SubscribeNewTx(ch)
	defer sub.Unsubscribe()

	trx := newTestTx(0)
	require.NoError(t, pool.Add(trx))

	select {
	case got := <-ch:
		assert.Equal(t, trx.Hash(), got.Hash())
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for tx event")
	}
}
