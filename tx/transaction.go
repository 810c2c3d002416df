// Copyright (c) 2026 The HeatChain developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package tx

import (
	"io"
	"sync/atomic"

	"github.com/ethereum/go-ethereum/rlp"

	"github.com/heatchain/heat/heat"
)

// Transaction is an immutable tx type. Execution status is tracked by the
// ledger, not by the transaction itself.
type Transaction struct {
	body body

	cache struct {
		hash atomic.Value
		size atomic.Value
	}
}

// body describes details of a tx.
type body struct {
	From      heat.Address
	To        heat.Address
	Value     uint64
	GasPrice  uint64
	Gas       uint64
	Nonce     uint64
	Payload   []byte
	Signature []byte
}

// Hash returns hash of tx.
func (t *Transaction) Hash() (hash heat.Bytes32) {
	if cached := t.cache.hash.Load(); cached != nil {
		return cached.(heat.Bytes32)
	}
	defer func() { t.cache.hash.Store(hash) }()

	return heat.Blake2bFn(func(w io.Writer) {
		rlp.Encode(w, &t.body)
	})
}

// From returns the sender address.
func (t *Transaction) From() heat.Address { return t.body.From }

// To returns the recipient address.
func (t *Transaction) To() heat.Address { return t.body.To }

// Value returns the transferred amount.
func (t *Transaction) Value() uint64 { return t.body.Value }

// GasPrice returns gas price.
func (t *Transaction) GasPrice() uint64 { return t.body.GasPrice }

// Gas returns the gas limit provided for execution.
func (t *Transaction) Gas() uint64 { return t.body.Gas }

// Nonce returns the sender-chosen nonce.
func (t *Transaction) Nonce() uint64 { return t.body.Nonce }

// Payload returns a copy of the call payload.
func (t *Transaction) Payload() []byte {
	return append([]byte(nil), t.body.Payload...)
}

// Signature returns a copy of the signature.
func (t *Transaction) Signature() []byte {
	return append([]byte(nil), t.body.Signature...)
}

// Fee returns gasPrice * gas, the max fee the sender pays.
func (t *Transaction) Fee() uint64 {
	return t.body.GasPrice * t.body.Gas
}

// Size returns the encoded size of the tx.
func (t *Transaction) Size() int {
	if cached := t.cache.size.Load(); cached != nil {
		return cached.(int)
	}
	data, _ := rlp.EncodeToBytes(&t.body)
	size := len(data)
	t.cache.size.Store(size)
	return size
}

// EncodeRLP implements rlp.Encoder.
func (t *Transaction) EncodeRLP(w io.Writer) error {
	return rlp.Encode(w, &t.body)
}

// DecodeRLP implements rlp.Decoder.
func (t *Transaction) DecodeRLP(s *rlp.Stream) error {
	var body body
	if err := s.Decode(&body); err != nil {
		return err
	}
	*t = Transaction{body: body}
	return nil
}
