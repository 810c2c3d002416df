// Copyright (c) 2026 The HeatChain developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package heat

import "time"

// Config carries the resolved node parameters. Flag/env wiring lives in cmd;
// everything below this layer consumes the already-resolved values.
type Config struct {
	DataDir   string `yaml:"dataDir"`
	APIAddr   string `yaml:"apiAddr"`
	APICors   string `yaml:"apiCors"`
	AdminAddr string `yaml:"adminAddr"`
	AnchorURL string `yaml:"anchorURL"`

	BlockInterval uint64 `yaml:"blockInterval"` // seconds between mining rounds
	Difficulty    uint64 `yaml:"difficulty"`    // leading zero bytes required of a block hash
	MaxNonce      uint64 `yaml:"maxNonce"`      // nonce search bound per mining round

	MinStake      uint64 `yaml:"minStake"`
	MaxValidators int    `yaml:"maxValidators"`
	SlashPercent  uint64 `yaml:"slashPercent"`

	L1Confirmations uint64 `yaml:"l1Confirmations"`
	ChallengePeriod uint64 `yaml:"challengePeriod"` // seconds
	AnchorReward    uint64 `yaml:"anchorReward"`

	SettlementMode string `yaml:"settlementMode"` // "fraud" or "zk"
}

// DefaultConfig returns config with chain defaults filled in.
func DefaultConfig() Config {
	return Config{
		APIAddr:         "localhost:8668",
		AdminAddr:       "localhost:2113",
		BlockInterval:   BlockInterval,
		Difficulty:      InitialDifficulty,
		MaxNonce:        MaxSearchNonce,
		MinStake:        InitialMinStake,
		MaxValidators:   InitialMaxValidators,
		SlashPercent:    InitialSlashPercent,
		L1Confirmations: InitialL1Confirmations,
		ChallengePeriod: ChallengePeriodSeconds,
		AnchorReward:    AnchorBlockReward,
		SettlementMode:  "fraud",
	}
}

// BlockIntervalDuration block interval as duration.
func (c *Config) BlockIntervalDuration() time.Duration {
	return time.Duration(c.BlockInterval) * time.Second
}
