// Copyright (c) 2026 The HeatChain developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package proof

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heatchain/heat/heat"
)

func TestParseMode(t *testing.T) {
	m, err := ParseMode("fraud-proof")
	require.NoError(t, err)
	assert.Equal(t, FraudProof, m)

	m, err = ParseMode("zk-proof")
	require.NoError(t, err)
	assert.Equal(t, ZkProof, m)

	_, err = ParseMode("optimistic")
	assert.Error(t, err)
}

func TestSimulatedRoundTrip(t *testing.T) {
	engine := NewSimulated(FraudProof)
	hash := heat.Blake2b([]byte("block"))

	blob, err := engine.Generate(hash, 7)
	require.NoError(t, err)
	assert.True(t, engine.Verify(hash, 7, blob))

	// wrong block, height, or tampered blob
	assert.False(t, engine.Verify(heat.Blake2b([]byte("other")), 7, blob))
	assert.False(t, engine.Verify(hash, 8, blob))
	tampered := append([]byte{}, blob...)
	tampered[len(tampered)-1] ^= 1
	assert.False(t, engine.Verify(hash, 7, tampered))
	assert.False(t, engine.Verify(hash, 7, nil))
}

func TestModeBinding(t *testing.T) {
	hash := heat.Blake2b([]byte("block"))

	fraud := NewSimulated(FraudProof)
	zk := NewSimulated(ZkProof)

	blob, err := fraud.Generate(hash, 1)
	require.NoError(t, err)
	assert.False(t, zk.Verify(hash, 1, blob))
}

func TestVerifyFraudProof(t *testing.T) {
	engine := NewSimulated(FraudProof)
	assert.True(t, engine.VerifyFraudProof(1, []byte("evidence")))
	assert.False(t, engine.VerifyFraudProof(1, nil))
}
