// Copyright (c) 2026 The HeatChain developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	cli "gopkg.in/urfave/cli.v1"

	"github.com/heatchain/heat/heat"
)

var (
	networkFlag = cli.StringFlag{
		Name:  "network",
		Value: "main",
		Usage: "the network to join (main|dev)",
	}
	configFileFlag = cli.StringFlag{
		Name:  "config-file",
		Usage: "YAML config file, flags take precedence over its values",
	}
	dataDirFlag = cli.StringFlag{
		Name:  "data-dir",
		Value: defaultDataDir(),
		Usage: "directory for block-chain databases",
	}
	apiAddrFlag = cli.StringFlag{
		Name:  "api-addr",
		Value: "localhost:8668",
		Usage: "API service listening address",
	}
	apiCorsFlag = cli.StringFlag{
		Name:  "api-cors",
		Value: "",
		Usage: "comma separated list of domains from which to accept cross origin requests to API",
	}
	adminAddrFlag = cli.StringFlag{
		Name:  "admin-addr",
		Value: "localhost:2113",
		Usage: "admin service (metrics, health, log level) listening address",
	}
	enableMetricsFlag = cli.BoolFlag{
		Name:  "enable-metrics",
		Usage: "enables metrics collection",
	}
	anchorURLFlag = cli.StringFlag{
		Name:  "anchor-url",
		Value: "http://localhost:8332",
		Usage: "base URL of the anchor chain daemon",
	}
	blockIntervalFlag = cli.Uint64Flag{
		Name:  "block-interval",
		Value: heat.BlockInterval,
		Usage: "seconds between mining rounds",
	}
	producerFlag = cli.StringFlag{
		Name:  "producer",
		Usage: "address credited as block producer",
	}
	difficultyFlag = cli.Uint64Flag{
		Name:  "difficulty",
		Value: heat.InitialDifficulty,
		Usage: "number of leading zero bytes required of a block hash",
	}
	maxNonceFlag = cli.Uint64Flag{
		Name:  "max-nonce",
		Value: heat.MaxSearchNonce,
		Usage: "nonce search bound per mining round",
	}
	minStakeFlag = cli.Uint64Flag{
		Name:  "min-stake",
		Value: heat.InitialMinStake,
		Usage: "minimum stake for an active validator",
	}
	maxValidatorsFlag = cli.IntFlag{
		Name:  "max-validators",
		Value: heat.InitialMaxValidators,
		Usage: "upper bound of the active validator set",
	}
	slashPercentFlag = cli.Uint64Flag{
		Name:  "slash-percent",
		Value: heat.InitialSlashPercent,
		Usage: "default penalty percent applied by the slash endpoint",
	}
	l1ConfirmationsFlag = cli.Uint64Flag{
		Name:  "l1-confirmations",
		Value: heat.InitialL1Confirmations,
		Usage: "L1 confirmation depth before a bridge tx is confirmed",
	}
	challengePeriodFlag = cli.Uint64Flag{
		Name:  "challenge-period",
		Value: heat.ChallengePeriodSeconds,
		Usage: "fraud proof challenge window in seconds",
	}
	anchorRewardFlag = cli.Uint64Flag{
		Name:  "anchor-reward",
		Value: heat.AnchorBlockReward,
		Usage: "reward credited per anchor block found",
	}
	settlementModeFlag = cli.StringFlag{
		Name:  "settlement-mode",
		Value: "fraud",
		Usage: "settlement proof mode (fraud|zk)",
	}
	verbosityFlag = cli.StringFlag{
		Name:  "verbosity",
		Value: "info",
		Usage: "log verbosity (trace|debug|info|warn|error)",
	}
)
