// Copyright (c) 2026 The HeatChain developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package bridgedb_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heatchain/heat/bridge"
	"github.com/heatchain/heat/bridgedb"
	"github.com/heatchain/heat/heat"
)

func newTx(seed byte, status bridge.Status, createdAt uint64) *bridge.Transaction {
	return &bridge.Transaction{
		TxID:      heat.Blake2b([]byte{seed}),
		Direction: bridge.Deposit,
		Sender:    heat.BytesToAddress([]byte{seed}),
		Recipient: heat.BytesToAddress([]byte{seed + 1}),
		Amount:    uint64(seed) * 100,
		Status:    status,
		L1Height:  uint64(seed),
		CreatedAt: createdAt,
	}
}

func TestSaveAndGet(t *testing.T) {
	db, err := bridgedb.NewMem()
	require.NoError(t, err)
	defer db.Close()

	tx := newTx(1, bridge.Completed, 100)
	require.NoError(t, db.Save(tx))

	got, err := db.Get(context.Background(), tx.TxID)
	require.NoError(t, err)
	assert.Equal(t, tx, got)

	missing, err := db.Get(context.Background(), heat.Bytes32{0xff})
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestSaveUpsert(t *testing.T) {
	db, err := bridgedb.NewMem()
	require.NoError(t, err)
	defer db.Close()

	tx := newTx(1, bridge.Completed, 100)
	require.NoError(t, db.Save(tx))

	tx.Status = bridge.Failed
	tx.FailReason = "rolled back"
	require.NoError(t, db.Save(tx))

	got, err := db.Get(context.Background(), tx.TxID)
	require.NoError(t, err)
	assert.Equal(t, bridge.Failed, got.Status)
	assert.Equal(t, "rolled back", got.FailReason)
}

func TestQuery(t *testing.T) {
	db, err := bridgedb.NewMem()
	require.NoError(t, err)
	defer db.Close()

	a := newTx(1, bridge.Completed, 100)
	b := newTx(2, bridge.Failed, 200)
	c := newTx(3, bridge.Completed, 300)
	for _, tx := range []*bridge.Transaction{c, a, b} {
		require.NoError(t, db.Save(tx))
	}

	// all, oldest first
	all, err := db.Query(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, a.TxID, all[0].TxID)
	assert.Equal(t, c.TxID, all[2].TxID)

	// by status
	status := bridge.Failed
	failed, err := db.Query(context.Background(), &bridgedb.Filter{Status: &status})
	require.NoError(t, err)
	require.Len(t, failed, 1)
	assert.Equal(t, b.TxID, failed[0].TxID)

	// by address, matching sender or recipient
	addr := heat.BytesToAddress([]byte{2})
	byAddr, err := db.Query(context.Background(), &bridgedb.Filter{Address: &addr})
	require.NoError(t, err)
	require.Len(t, byAddr, 2) // recipient of a, sender of b

	// paging
	page, err := db.Query(context.Background(), &bridgedb.Filter{Offset: 1, Limit: 1})
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, b.TxID, page[0].TxID)
}
