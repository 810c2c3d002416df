// Copyright (c) 2026 The HeatChain developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package staker

import "github.com/heatchain/heat/heat"

// Validator a staked block producer. Records are never physically deleted;
// a fully unstaked or fully slashed validator stays with stake 0 and
// active=false.
type Validator struct {
	Address          heat.Address `json:"address"`
	Stake            uint64       `json:"stake"`
	Active           bool         `json:"active"`
	LastActiveHeight uint64       `json:"lastActiveHeight"`
	TotalRewards     uint64       `json:"totalRewards"`
	BlocksProduced   uint64       `json:"blocksProduced"`
}

// copy returns a snapshot handed to callers outside the lock.
func (v *Validator) copy() *Validator {
	cpy := *v
	return &cpy
}
