// Copyright (c) 2026 The HeatChain developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package pow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heatchain/heat/block"
	"github.com/heatchain/heat/heat"
)

func newCandidate() *block.Header {
	return new(block.Builder).
		Height(1).
		ParentHash(heat.Blake2b([]byte("genesis"))).
		Timestamp(1700000000).
		Producer(heat.BytesToAddress([]byte("miner"))).
		GasLimit(heat.InitialGasLimit).
		Build().
		Header()
}

func TestCheck(t *testing.T) {
	assert.True(t, Check(heat.Bytes32{1}, 0))
	assert.True(t, Check(heat.Bytes32{0, 1}, 1))
	assert.False(t, Check(heat.Bytes32{1}, 1))
	assert.True(t, Check(heat.Bytes32{}, 32))
	// difficulty beyond hash length clamps
	assert.True(t, Check(heat.Bytes32{}, 100))
	assert.False(t, Check(heat.Bytes32{31: 1}, 100))
}

func TestSearchFindsValidNonce(t *testing.T) {
	candidate := newCandidate()

	nonce, hash, ok := Search(candidate, 1, heat.MaxSearchNonce, nil)
	require.True(t, ok, "difficulty 1 must be solved within the bound")
	assert.True(t, Check(hash, 1))
	assert.Equal(t, candidate.HashWithNonce(nonce), hash)

	// search is deterministic: the same candidate yields the same nonce
	nonce2, hash2, ok2 := Search(candidate, 1, heat.MaxSearchNonce, nil)
	require.True(t, ok2)
	assert.Equal(t, nonce, nonce2)
	assert.Equal(t, hash, hash2)
}

func TestSearchExhaustion(t *testing.T) {
	candidate := newCandidate()

	// an impossible target within a tiny bound reports "not found"
	_, _, ok := Search(candidate, 32, 10, nil)
	assert.False(t, ok)
}

func TestSearchQuit(t *testing.T) {
	candidate := newCandidate()

	quit := make(chan struct{})
	close(quit)

	_, _, ok := Search(candidate, 32, heat.MaxSearchNonce, quit)
	assert.False(t, ok)
}

func TestSearchLeavesCandidateUnsealed(t *testing.T) {
	candidate := newCandidate()
	_, _, ok := Search(candidate, 1, heat.MaxSearchNonce, nil)
	require.True(t, ok)
	assert.Equal(t, uint64(0), candidate.Nonce())
}
