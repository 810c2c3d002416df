// Copyright (c) 2026 The HeatChain developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package tx

import "github.com/heatchain/heat/heat"

// Transactions a slice of transactions.
type Transactions []*Transaction

// Copy returns a shallow copy.
func (txs Transactions) Copy() Transactions {
	return append(Transactions(nil), txs...)
}

// Hashes returns hashes of all transactions.
func (txs Transactions) Hashes() []heat.Bytes32 {
	hashes := make([]heat.Bytes32, len(txs))
	for i, tx := range txs {
		hashes[i] = tx.Hash()
	}
	return hashes
}

// MerkleRoot computes the binary merkle root over transaction hashes.
// An odd node at any level is paired with itself. The root of an empty
// list is the all-zero hash.
func (txs Transactions) MerkleRoot() heat.Bytes32 {
	if len(txs) == 0 {
		return heat.Bytes32{}
	}

	level := txs.Hashes()
	for len(level) > 1 {
		next := make([]heat.Bytes32, 0, (len(level)+1)/2)
		for i := 0; i < len(level); i += 2 {
			left := level[i]
			right := left
			if i+1 < len(level) {
				right = level[i+1]
			}
			next = append(next, heat.Blake2b(left.Bytes(), right.Bytes()))
		}
		level = next
	}
	return level[0]
}
