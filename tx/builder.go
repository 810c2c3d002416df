// Copyright (c) 2026 The HeatChain developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package tx

import "github.com/heatchain/heat/heat"

// Builder to make it easy to build a transaction.
type Builder struct {
	body body
}

// From set the sender address.
func (b *Builder) From(addr heat.Address) *Builder {
	b.body.From = addr
	return b
}

// To set the recipient address.
func (b *Builder) To(addr heat.Address) *Builder {
	b.body.To = addr
	return b
}

// Value set transferred amount.
func (b *Builder) Value(v uint64) *Builder {
	b.body.Value = v
	return b
}

// GasPrice set gas price.
func (b *Builder) GasPrice(price uint64) *Builder {
	b.body.GasPrice = price
	return b
}

// Gas set gas provision for the tx.
func (b *Builder) Gas(gas uint64) *Builder {
	b.body.Gas = gas
	return b
}

// Nonce set nonce.
func (b *Builder) Nonce(nonce uint64) *Builder {
	b.body.Nonce = nonce
	return b
}

// Payload set call payload.
func (b *Builder) Payload(payload []byte) *Builder {
	b.body.Payload = append([]byte(nil), payload...)
	return b
}

// Signature set signature blob.
func (b *Builder) Signature(sig []byte) *Builder {
	b.body.Signature = append([]byte(nil), sig...)
	return b
}

// Build build tx object.
func (b *Builder) Build() *Transaction {
	return &Transaction{body: b.body}
}
