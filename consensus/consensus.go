// Copyright (c) 2026 The HeatChain developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package consensus validates blocks before they enter the chain state.
package consensus

import (
	"fmt"

	"github.com/heatchain/heat/block"
	"github.com/heatchain/heat/pow"
)

type consensusError string

func (err consensusError) Error() string {
	return string(err)
}

// IsConsensusError reports whether the error marks a block that
// violates a consensus rule, as opposed to a transient failure.
func IsConsensusError(err error) bool {
	_, ok := err.(consensusError)
	return ok
}

// Validate checks a block against its parent. Rules are checked in a
// fixed order and validation stops at the first violation; an invalid
// block is never partially applied.
func Validate(blk *block.Block, parent *block.Header) error {
	header := blk.Header()

	if header.Height() != parent.Height()+1 {
		return consensusError(fmt.Sprintf(
			"block height invalid: parent %v, have %v", parent.Height(), header.Height()))
	}
	if header.ParentHash() != parent.Hash() {
		return consensusError(fmt.Sprintf(
			"block parent hash invalid: want %v, have %v", parent.Hash(), header.ParentHash()))
	}
	if header.Timestamp() <= parent.Timestamp() {
		return consensusError(fmt.Sprintf(
			"block timestamp behind parent: parent %v, have %v", parent.Timestamp(), header.Timestamp()))
	}
	if want, have := blk.Transactions().MerkleRoot(), header.MerkleRoot(); want != have {
		return consensusError(fmt.Sprintf(
			"block merkle root mismatch: want %v, have %v", want, have))
	}
	if header.GasUsed() > header.GasLimit() {
		return consensusError(fmt.Sprintf(
			"block gas used exceeds limit: limit %v, used %v", header.GasLimit(), header.GasUsed()))
	}
	if !pow.Check(header.Hash(), header.Difficulty()) {
		return consensusError(fmt.Sprintf(
			"block proof of work invalid: difficulty %v, hash %v", header.Difficulty(), header.Hash()))
	}
	return nil
}
