package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gyeh/eircode/internal/db"
	"github.com/gyeh/eircode/internal/exitcode"
	"github.com/gyeh/eircode/internal/load"
	"github.com/gyeh/eircode/internal/logging"
)

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Validate a Parquet address file and load it into the database",
	RunE:  runLoad,
}

func init() {
	f := loadCmd.Flags()
	f.StringVar(&cfg.FilePath, "file", "", "Path to Parquet file (required)")
	f.BoolVar(&cfg.Force, "force", false, "Reload even if the file SHA was already loaded")
	modeFlags(loadCmd)
	_ = loadCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(loadCmd)
}

func runLoad(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat)
	ctx := context.Background()

	if err := cfg.ValidateWithDSN(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}

	pool, err := db.NewPool(ctx, cfg.DSN)
	if err != nil {
		log.Error().Err(err).Msg("database connection failed")
		os.Exit(exitcode.DBConnError)
	}
	defer pool.Close()

	summary, err := load.Run(ctx, pool, log, &cfg)
	if err != nil {
		var pe *load.PipelineError
		if errors.As(err, &pe) {
			log.Error().Err(pe.Err).Str("phase", pe.Phase).Msg("load failed")
			pool.Close()
			switch pe.Phase {
			case load.PhasePreflight:
				os.Exit(exitcode.ValidationError)
			case load.PhaseStage:
				os.Exit(exitcode.CopyError)
			default:
				os.Exit(exitcode.LoadError)
			}
		}
		log.Error().Err(err).Msg("load failed")
		os.Exit(exitcode.LoadError)
	}

	if summary.AlreadyLoaded {
		fmt.Fprintf(cmd.OutOrStdout(), "Already loaded as source file %d\n", summary.SourceFileID)
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(),
		"Load complete: %d rows read, %d loaded, %d rejected, %d filtered (%.1fs)\n",
		summary.RowsRead, summary.RowsLoaded, summary.RowsRejected, summary.RowsFiltered,
		summary.DurationTotal.Seconds())
	return nil
}
