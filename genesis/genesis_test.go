// Copyright (c) 2026 The HeatChain developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package genesis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/heatchain/heat/heat"
)

func TestGenesisDeterministic(t *testing.T) {
	assert.Equal(t, Devnet.Build().Header().Hash(), Devnet.Build().Header().Hash())
	assert.Equal(t, Devnet.ID(), Devnet.Build().Header().Hash())
}

func TestGenesisShape(t *testing.T) {
	b := Devnet.Build()
	assert.Equal(t, uint64(0), b.Header().Height())
	assert.Empty(t, b.Transactions())
	assert.Equal(t, heat.Bytes32{}, b.Header().MerkleRoot())
	assert.Equal(t, heat.InitialGasLimit, b.Header().GasLimit())
}

func TestNetworksDiffer(t *testing.T) {
	assert.NotEqual(t, Mainnet.ID(), Devnet.ID())
}
