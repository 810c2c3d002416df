// Copyright (c) 2026 The HeatChain developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package pow implements the proof-of-work nonce search and target check.
// The search operates on an immutable header snapshot and holds no locks,
// so it can run for a full mining interval without stalling other tasks.
package pow

import (
	"github.com/heatchain/heat/block"
	"github.com/heatchain/heat/heat"
)

// checkInterval how many nonces to try between quit-channel polls.
const checkInterval = 1 << 14

// Check reports whether the hash satisfies the difficulty, i.e. carries at
// least `difficulty` leading zero bytes. Difficulty 0 accepts any hash.
func Check(hash heat.Bytes32, difficulty uint64) bool {
	if difficulty > 32 {
		difficulty = 32
	}
	for i := uint64(0); i < difficulty; i++ {
		if hash[i] != 0 {
			return false
		}
	}
	return true
}

// Search scans nonces 0..maxNonce-1 for one whose block hash satisfies the
// difficulty. It returns ok=false when the bound is exhausted or quit is
// closed; exhaustion means "no block this round", not an error.
func Search(candidate *block.Header, difficulty, maxNonce uint64, quit <-chan struct{}) (nonce uint64, hash heat.Bytes32, ok bool) {
	// force the expensive part of the probe to be computed once
	candidate.SigningHash()

	for nonce = range maxNonce {
		if nonce%checkInterval == 0 && quit != nil {
			select {
			case <-quit:
				return 0, heat.Bytes32{}, false
			default:
			}
		}
		hash = candidate.HashWithNonce(nonce)
		if Check(hash, difficulty) {
			return nonce, hash, true
		}
	}
	return 0, heat.Bytes32{}, false
}
