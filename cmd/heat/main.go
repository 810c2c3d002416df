// Copyright (c) 2026 The HeatChain developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/pkg/errors"
	cli "gopkg.in/urfave/cli.v1"

	"github.com/heatchain/heat/anchorclient"
	"github.com/heatchain/heat/api"
	"github.com/heatchain/heat/bridge"
	"github.com/heatchain/heat/heat"
	"github.com/heatchain/heat/ledger"
	"github.com/heatchain/heat/log"
	"github.com/heatchain/heat/mergemine"
	"github.com/heatchain/heat/metrics"
	"github.com/heatchain/heat/node"
	"github.com/heatchain/heat/proof"
	"github.com/heatchain/heat/staker"
	"github.com/heatchain/heat/txpool"
)

var (
	version   string
	gitCommit string
	gitTag    string

	logger = log.WithContext("pkg", "main")
)

func fullVersion() string {
	versionMeta := "release"
	if gitTag == "" {
		versionMeta = "dev"
	}
	return fmt.Sprintf("%s-%s-%s", version, gitCommit, versionMeta)
}

func main() {
	app := cli.App{
		Version:   fullVersion(),
		Name:      "Heat",
		Usage:     "Node of the HeatChain rollup",
		Copyright: "2026 The HeatChain developers",
		Flags: []cli.Flag{
			networkFlag,
			configFileFlag,
			dataDirFlag,
			apiAddrFlag,
			apiCorsFlag,
			adminAddrFlag,
			enableMetricsFlag,
			anchorURLFlag,
			producerFlag,
			blockIntervalFlag,
			difficultyFlag,
			maxNonceFlag,
			minStakeFlag,
			maxValidatorsFlag,
			slashPercentFlag,
			l1ConfirmationsFlag,
			challengePeriodFlag,
			anchorRewardFlag,
			settlementModeFlag,
			verbosityFlag,
		},
		Action: defaultAction,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func defaultAction(ctx *cli.Context) error {
	defer func() { logger.Info("exited") }()

	logLevel := initLogger(ctx)
	if ctx.Bool(enableMetricsFlag.Name) {
		metrics.InitializePrometheusMetrics()
	}
	cfg := resolveConfig(ctx)
	gene := selectGenesis(ctx)
	instanceDir := makeInstanceDir(&cfg, gene)

	mainDB := openMainDB(instanceDir)
	defer func() { logger.Info("closing main database..."); mainDB.Close() }()

	bridgeDB := openBridgeDB(instanceDir)
	defer func() { logger.Info("closing bridge database..."); bridgeDB.Close() }()

	ld, err := ledger.New(mainDB, gene.Build())
	if err != nil {
		fatalf("initialize ledger: %v", err)
	}

	mode, err := proof.ParseMode(cfg.SettlementMode)
	if err != nil {
		fatal(err)
	}
	engine := proof.NewSimulated(mode)

	registry := staker.NewRegistry(cfg.MinStake, cfg.MaxValidators)
	bridgeLedger := bridge.New(bridge.Config{
		L1Confirmations: cfg.L1Confirmations,
		ChallengePeriod: cfg.ChallengePeriod,
		Verifier:        engine,
		History:         bridgeDB,
	})

	pool := txpool.New(ld, txpool.Options{Limit: 10000})
	defer func() { logger.Info("closing tx pool..."); pool.Close() }()

	anchor := anchorclient.New(cfg.AnchorURL)
	mergeMine := mergemine.New(anchor, ld, cfg.AnchorReward)

	producer := parseProducer(ctx)
	nd := node.New(ld, registry, bridgeLedger, pool, mergeMine, anchor, engine, node.Options{
		Producer:       producer,
		GasLimit:       heat.InitialGasLimit,
		Difficulty:     cfg.Difficulty,
		MaxNonce:       cfg.MaxNonce,
		MiningInterval: cfg.BlockIntervalDuration(),
	})

	apiHandler := api.New(ld, registry, bridgeLedger, pool, nd, nd, api.Options{
		AllowedOrigins: cfg.APICors,
		SlashPercent:   cfg.SlashPercent,
	})
	apiURL, closeAPI, err := startAPIServer(cfg.APIAddr, apiHandler)
	if err != nil {
		fatal(err)
	}
	defer func() { logger.Info("stopping API server..."); closeAPI() }()

	adminURL, closeAdmin, err := api.StartAdminServer(cfg.AdminAddr, logLevel)
	if err != nil {
		fatal(err)
	}
	defer func() { logger.Info("stopping admin server..."); closeAdmin() }()

	printStartupMessage(gene, &cfg, instanceDir, apiURL, adminURL, producer)

	if err := nd.Run(handleExitSignal()); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
