// Copyright (c) 2026 The HeatChain developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package bridgedb persists settled bridge transactions to sqlite for
// historical queries that outlive the in-memory settlement ledger.
package bridgedb

import (
	"context"
	"database/sql"

	_ "github.com/mattn/go-sqlite3"

	"github.com/heatchain/heat/bridge"
	"github.com/heatchain/heat/heat"
)

const settlementTableSchema = `CREATE TABLE IF NOT EXISTS settlement (
	txID BLOB PRIMARY KEY,
	direction INTEGER NOT NULL,
	sender BLOB NOT NULL,
	recipient BLOB NOT NULL,
	amount INTEGER NOT NULL,
	status INTEGER NOT NULL,
	failReason TEXT NOT NULL,
	l1Height INTEGER NOT NULL,
	createdAt INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS settlement_i1 ON settlement(sender);
CREATE INDEX IF NOT EXISTS settlement_i2 ON settlement(recipient);
CREATE INDEX IF NOT EXISTS settlement_i3 ON settlement(createdAt);`

type BridgeDB struct {
	path string
	db   *sql.DB
}

// New create or open bridge db at given path.
func New(path string) (bridgeDB *BridgeDB, err error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if bridgeDB == nil {
			db.Close()
		}
	}()
	if _, err := db.Exec(settlementTableSchema); err != nil {
		return nil, err
	}
	return &BridgeDB{path, db}, nil
}

// NewMem create a bridge db in ram.
func NewMem() (*BridgeDB, error) {
	return New("file::memory:?cache=shared")
}

// Close close the bridge db.
func (db *BridgeDB) Close() {
	db.db.Close()
}

func (db *BridgeDB) Path() string {
	return db.path
}

// Save upserts a settled transaction. Implements bridge.History.
func (db *BridgeDB) Save(tx *bridge.Transaction) error {
	_, err := db.db.Exec(
		`INSERT OR REPLACE INTO settlement
			(txID, direction, sender, recipient, amount, status, failReason, l1Height, createdAt)
			VALUES (?,?,?,?,?,?,?,?,?)`,
		tx.TxID.Bytes(),
		tx.Direction,
		tx.Sender.Bytes(),
		tx.Recipient.Bytes(),
		tx.Amount,
		tx.Status,
		tx.FailReason,
		tx.L1Height,
		tx.CreatedAt,
	)
	return err
}

// Get loads a settled transaction by id, or nil if unknown.
func (db *BridgeDB) Get(ctx context.Context, id heat.Bytes32) (*bridge.Transaction, error) {
	txs, err := db.query(ctx, "SELECT * FROM settlement WHERE txID = ?", id.Bytes())
	if err != nil {
		return nil, err
	}
	if len(txs) == 0 {
		return nil, nil
	}
	return txs[0], nil
}

// Filter criteria for settled transaction queries. Zero-value fields
// are ignored.
type Filter struct {
	Address *heat.Address // matches sender or recipient
	Status  *bridge.Status
	Offset  uint64
	Limit   uint64
}

// Query returns settled transactions matching the filter, oldest first.
func (db *BridgeDB) Query(ctx context.Context, filter *Filter) ([]*bridge.Transaction, error) {
	stmt := "SELECT * FROM settlement WHERE 1"
	var args []interface{}
	if filter != nil {
		if filter.Address != nil {
			args = append(args, filter.Address.Bytes(), filter.Address.Bytes())
			stmt += " AND (sender = ? OR recipient = ?)"
		}
		if filter.Status != nil {
			args = append(args, *filter.Status)
			stmt += " AND status = ?"
		}
	}
	stmt += " ORDER BY createdAt ASC, txID ASC"
	if filter != nil && filter.Limit > 0 {
		args = append(args, filter.Offset, filter.Limit)
		stmt += " LIMIT ?, ?"
	}
	return db.query(ctx, stmt, args...)
}

func (db *BridgeDB) query(ctx context.Context, stmt string, args ...interface{}) ([]*bridge.Transaction, error) {
	rows, err := db.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var txs []*bridge.Transaction
	for rows.Next() {
		var (
			tx        bridge.Transaction
			txID      []byte
			sender    []byte
			recipient []byte
		)
		if err := rows.Scan(
			&txID,
			&tx.Direction,
			&sender,
			&recipient,
			&tx.Amount,
			&tx.Status,
			&tx.FailReason,
			&tx.L1Height,
			&tx.CreatedAt,
		); err != nil {
			return nil, err
		}
		tx.TxID = heat.BytesToBytes32(txID)
		tx.Sender = heat.BytesToAddress(sender)
		tx.Recipient = heat.BytesToAddress(recipient)
		txs = append(txs, &tx)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return txs, nil
}
