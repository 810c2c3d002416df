// Copyright (c) 2026 The HeatChain developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package genesis

import (
	"github.com/heatchain/heat/block"
	"github.com/heatchain/heat/heat"
)

// Mainnet the production network genesis.
var Mainnet = &Genesis{
	launchTime: 1767225600, // '2026-01-01T00:00:00.000Z'
	extra:      "heat-mainnet",
}

// Devnet genesis for test & dev.
var Devnet = &Genesis{
	launchTime: 1700000000,
	extra:      "heat-devnet",
}

// Genesis describes a network's block 0.
type Genesis struct {
	launchTime uint64
	extra      string
}

// LaunchTime returns the genesis timestamp.
func (g *Genesis) LaunchTime() uint64 {
	return g.launchTime
}

// Build builds the genesis block: height 0, zero parent, no transactions.
// It's fully deterministic for a given network.
func (g *Genesis) Build() *block.Block {
	return new(block.Builder).
		Height(0).
		ParentHash(heat.Blake2b([]byte(g.extra))).
		Timestamp(g.launchTime).
		GasLimit(heat.InitialGasLimit).
		Build()
}

// ID returns the genesis block hash, which doubles as the network identity.
func (g *Genesis) ID() heat.Bytes32 {
	return g.Build().Header().Hash()
}
