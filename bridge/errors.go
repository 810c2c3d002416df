// Copyright (c) 2026 The HeatChain developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package bridge

import "github.com/pkg/errors"

var (
	ErrNotFound          = errors.New("bridge tx not found")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrChallengeElapsed  = errors.New("challenge period elapsed")
	ErrBadProof          = errors.New("fraud proof rejected")
)
