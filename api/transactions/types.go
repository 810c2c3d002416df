// Copyright (c) 2026 The HeatChain developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package transactions

import (
	"encoding/hex"
	"strings"

	"github.com/pkg/errors"

	"github.com/heatchain/heat/heat"
	"github.com/heatchain/heat/tx"
)

// RawTx the submission body of a transaction.
type RawTx struct {
	From     heat.Address `json:"from"`
	To       heat.Address `json:"to"`
	Value    uint64       `json:"value"`
	GasPrice uint64       `json:"gasPrice"`
	Gas      uint64       `json:"gas"`
	Nonce    uint64       `json:"nonce"`
	Payload  string       `json:"payload,omitempty"` // 0x hex
}

func (r *RawTx) decode() (*tx.Transaction, error) {
	builder := new(tx.Builder).
		From(r.From).
		To(r.To).
		Value(r.Value).
		GasPrice(r.GasPrice).
		Gas(r.Gas).
		Nonce(r.Nonce)
	if r.Payload != "" {
		payload, err := hex.DecodeString(strings.TrimPrefix(r.Payload, "0x"))
		if err != nil {
			return nil, errors.WithMessage(err, "payload")
		}
		builder = builder.Payload(payload)
	}
	return builder.Build(), nil
}

// JSONTransaction the API representation of a transaction. Body fields
// are only present while the tx is in the pool.
type JSONTransaction struct {
	Hash     heat.Bytes32 `json:"hash"`
	From     heat.Address `json:"from"`
	To       heat.Address `json:"to"`
	Value    uint64       `json:"value"`
	GasPrice uint64       `json:"gasPrice"`
	Gas      uint64       `json:"gas"`
	Nonce    uint64       `json:"nonce"`
	Status   tx.Status    `json:"status"`
}

func buildJSONTx(trx *tx.Transaction, status tx.Status) *JSONTransaction {
	return &JSONTransaction{
		Hash:     trx.Hash(),
		From:     trx.From(),
		To:       trx.To(),
		Value:    trx.Value(),
		GasPrice: trx.GasPrice(),
		Gas:      trx.Gas(),
		Nonce:    trx.Nonce(),
		Status:   status,
	}
}
