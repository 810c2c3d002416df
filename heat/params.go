// Copyright (c) 2026 The HeatChain developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package heat

// Constants of block chain.
const (
	BlockInterval uint64 = 10 // time interval between two consecutive blocks.

	MinGasLimit     uint64 = 1000 * 1000
	InitialGasLimit uint64 = 10 * 1000 * 1000 // gas limit value in genesis block.

	TxGas     uint64 = 5000
	MaxTxSize        = 32 * 1024 // max size of a transaction accepted by the pool.

	// InitialDifficulty number of leading zero bytes a block hash must carry.
	InitialDifficulty uint64 = 1

	// MaxSearchNonce upper bound of the proof-of-work nonce search per round.
	MaxSearchNonce uint64 = 10_000_000

	// AnchorBlockReward reward credited for each newly observed anchor block (in wei-HEAT).
	AnchorBlockReward uint64 = 5e9
)

// Staking parameters.
const (
	InitialMinStake      uint64 = 1000e9 // 1000 HEAT expressed in gwei-HEAT.
	InitialMaxValidators        = 101
	InitialSlashPercent  uint64 = 10
)

// Bridge parameters.
const (
	InitialL1Confirmations uint64 = 6
	ChallengePeriodSeconds uint64 = 60 * 60 * 24 * 7 // 7 days
)
