// Copyright (c) 2026 The HeatChain developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"
	"time"

	isatty "github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	cli "gopkg.in/urfave/cli.v1"
	"gopkg.in/yaml.v3"

	"github.com/heatchain/heat/co"
	"github.com/heatchain/heat/genesis"
	"github.com/heatchain/heat/heat"
	"github.com/heatchain/heat/log"
)

func fatal(args ...interface{}) {
	var w io.Writer
	if runtime.GOOS == "windows" {
		// The SameFile check below doesn't work on Windows.
		// stdout is unlikely to get redirected though, so just print there.
		w = os.Stdout
	} else {
		outf, _ := os.Stdout.Stat()
		errf, _ := os.Stderr.Stat()
		if outf != nil && errf != nil && os.SameFile(outf, errf) {
			w = os.Stderr
		} else {
			w = io.MultiWriter(os.Stdout, os.Stderr)
		}
	}
	fmt.Fprint(w, "Fatal: ")
	fmt.Fprintln(w, args...)
	os.Exit(1)
}

func fatalf(format string, args ...interface{}) {
	fatal(fmt.Sprintf(format, args...))
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "HeatChain")
	case "windows":
		return filepath.Join(home, "AppData", "Roaming", "HeatChain")
	default:
		return filepath.Join(home, ".heatchain")
	}
}

func initLogger(ctx *cli.Context) *slog.LevelVar {
	logLevel := new(slog.LevelVar)
	level, err := parseVerbosity(ctx.String(verbosityFlag.Name))
	if err != nil {
		fatal(err)
	}
	logLevel.Set(level)

	useColor := isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
	log.SetDefault(log.NewTerminalHandlerWithLevel(os.Stderr, logLevel, useColor))
	return logLevel
}

func parseVerbosity(s string) (slog.Level, error) {
	switch s {
	case "trace":
		return log.LevelTrace, nil
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, errors.Errorf("unknown verbosity %q", s)
	}
}

func selectGenesis(ctx *cli.Context) *genesis.Genesis {
	switch network := ctx.String(networkFlag.Name); network {
	case "main":
		return genesis.Mainnet
	case "dev":
		return genesis.Devnet
	default:
		fatalf("unknown network %q, use -%s to specify main|dev", network, networkFlag.Name)
		return nil
	}
}

// resolveConfig layers the YAML config file (if any) over built-in
// defaults, then applies command line flags on top.
func resolveConfig(ctx *cli.Context) heat.Config {
	cfg := heat.DefaultConfig()

	if file := ctx.String(configFileFlag.Name); file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			fatalf("read config file: %v", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			fatalf("parse config file '%v': %v", file, err)
		}
	}

	overrideString(ctx, dataDirFlag.Name, &cfg.DataDir)
	overrideString(ctx, apiAddrFlag.Name, &cfg.APIAddr)
	overrideString(ctx, apiCorsFlag.Name, &cfg.APICors)
	overrideString(ctx, adminAddrFlag.Name, &cfg.AdminAddr)
	overrideString(ctx, anchorURLFlag.Name, &cfg.AnchorURL)
	overrideString(ctx, settlementModeFlag.Name, &cfg.SettlementMode)
	overrideUint64(ctx, blockIntervalFlag.Name, &cfg.BlockInterval)
	overrideUint64(ctx, difficultyFlag.Name, &cfg.Difficulty)
	overrideUint64(ctx, maxNonceFlag.Name, &cfg.MaxNonce)
	overrideUint64(ctx, minStakeFlag.Name, &cfg.MinStake)
	overrideUint64(ctx, slashPercentFlag.Name, &cfg.SlashPercent)
	overrideUint64(ctx, l1ConfirmationsFlag.Name, &cfg.L1Confirmations)
	overrideUint64(ctx, challengePeriodFlag.Name, &cfg.ChallengePeriod)
	overrideUint64(ctx, anchorRewardFlag.Name, &cfg.AnchorReward)
	if ctx.IsSet(maxValidatorsFlag.Name) || cfg.MaxValidators == 0 {
		cfg.MaxValidators = ctx.Int(maxValidatorsFlag.Name)
	}
	return cfg
}

func overrideString(ctx *cli.Context, name string, dst *string) {
	if ctx.IsSet(name) || *dst == "" {
		*dst = ctx.String(name)
	}
}

func overrideUint64(ctx *cli.Context, name string, dst *uint64) {
	if ctx.IsSet(name) || *dst == 0 {
		*dst = ctx.Uint64(name)
	}
}

func parseProducer(ctx *cli.Context) heat.Address {
	producer := ctx.String(producerFlag.Name)
	if producer == "" {
		return heat.Address{}
	}
	addr, err := heat.ParseAddress(producer)
	if err != nil {
		fatalf("invalid producer address '%v': %v", producer, err)
	}
	return addr
}

func makeInstanceDir(cfg *heat.Config, gene *genesis.Genesis) string {
	if cfg.DataDir == "" {
		fatalf("unable to infer default data dir, use -%s to specify one", dataDirFlag.Name)
	}
	instanceDir := filepath.Join(cfg.DataDir, fmt.Sprintf("instance-%x", gene.ID().Bytes()[28:]))
	if err := os.MkdirAll(instanceDir, 0700); err != nil {
		fatalf("create instance dir at '%v': %v", instanceDir, err)
	}
	return instanceDir
}

func startAPIServer(addr string, handler http.Handler) (string, func(), error) {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return "", nil, errors.Wrapf(err, "listen API addr [%v]", addr)
	}
	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: time.Second,
		ReadTimeout:       10 * time.Second,
	}
	var goes co.Goes
	goes.Go(func() {
		if err := srv.Serve(listener); err != http.ErrServerClosed {
			logger.Warn("API server stopped", "err", err)
		}
	})
	return "http://" + listener.Addr().String(), func() {
		srv.Close()
		goes.Wait()
	}, nil
}

func handleExitSignal() context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		exitSignalCh := make(chan os.Signal, 1)
		signal.Notify(exitSignalCh, os.Interrupt, syscall.SIGTERM)

		sig := <-exitSignalCh
		logger.Info("exit signal received", "signal", sig)
		cancel()
	}()
	return ctx
}

func printStartupMessage(gene *genesis.Genesis, cfg *heat.Config, instanceDir, apiURL, adminURL string, producer heat.Address) {
	fmt.Printf(`Starting %v
    Network      [ %v ]
    Instance dir [ %v ]
    API portal   [ %v ]
    Admin portal [ %v ]
    Producer     [ %v ]
    Settlement   [ %v ]
    Anchor chain [ %v ]
`,
		"HeatChain",
		gene.ID(),
		instanceDir,
		apiURL,
		adminURL,
		producer,
		cfg.SettlementMode,
		cfg.AnchorURL)
}
