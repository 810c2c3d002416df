// Copyright (c) 2026 The HeatChain developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package staker

import "github.com/pkg/errors"

var (
	// ErrBelowMinimum the stake amount is below the configured minimum.
	ErrBelowMinimum = errors.New("stake below minimum")
	// ErrSetFull the active validator set reached its bound.
	ErrSetFull = errors.New("validator set full")
	// ErrNotFound no validator record for the address.
	ErrNotFound = errors.New("validator not found")
	// ErrInsufficientStake unstake amount exceeds the staked balance.
	ErrInsufficientStake = errors.New("insufficient stake")
)
