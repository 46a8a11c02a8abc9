// Package main is the CLI entrypoint for the JobMetric showcase site. It
// wires the serve and export subcommands, loads configuration, and
// initializes logging.
package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"jobmetric.dev/internal/config"
	"jobmetric.dev/pkg/logger"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "site",
		Short: "JobMetric showcase site",
	}

	// cobra does not expose flags before command execution, so the config
	// path is parsed with the standard flag package; the cobra flag below
	// only keeps cobra's own parsing happy.
	rootCmd.PersistentFlags().StringP("config", "c", "config.yml", "Config File Path")

	configPath := flag.String("c", "config.yml", "The config file path")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("could not load config file: ", err)
	}

	logger.Setup(cfg.Environment)

	ctx := context.Background()

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			_ = logger.Get(ctx).Sync()

			panic(p)
		}
	}()

	rootCmd.AddCommand(
		serveCommand(cfg),
		exportCommand(cfg),
	)

	err = rootCmd.Execute()
	_ = logger.Get(ctx).Sync()
	if err != nil {
		os.Exit(1) //nolint: gocritic
	}
}
