package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/gyeh/eircode"
	"github.com/gyeh/eircode/internal/config"
	"github.com/gyeh/eircode/internal/exitcode"
	"github.com/gyeh/eircode/internal/load"
	"github.com/gyeh/eircode/internal/logging"
	"github.com/gyeh/eircode/internal/model"
	"github.com/gyeh/eircode/internal/normalize"
	"github.com/gyeh/eircode/internal/parquetread"
)

const planTopRoutingKeys = 10

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Dry-run validation and stats (no writes)",
	RunE:  runPlan,
}

func init() {
	planCmd.Flags().StringVar(&cfg.FilePath, "file", "", "Path to Parquet file (required)")
	modeFlags(planCmd)
	_ = planCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(planCmd)
}

// planStats is the outcome of validating every row of a file.
type planStats struct {
	Rows      int64
	Valid     int64
	Invalid   int64
	Missing   int64
	Filtered  int64
	ByRouting map[string]int64
}

func runPlan(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat)

	if err := cfg.Validate(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}
	opts, _ := cfg.Options()

	sha, err := normalize.FileHash(cfg.FilePath)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash file")
		os.Exit(exitcode.ValidationError)
	}

	reader, err := parquetread.Open(cfg.FilePath)
	if err != nil {
		log.Error().Err(err).Msg("failed to open parquet file")
		os.Exit(exitcode.ValidationError)
	}
	defer reader.Close()

	if err := parquetread.ValidateSchema(reader.Schema()); err != nil {
		log.Error().Err(err).Msg("schema validation failed")
		os.Exit(exitcode.ValidationError)
	}

	stats, err := collectPlanStats(reader, &cfg, opts)
	if err != nil {
		log.Error().Err(err).Msg("failed to read rows")
		os.Exit(exitcode.ValidationError)
	}

	printPlan(cmd.OutOrStdout(), cfg.FilePath, sha, load.ModeName(opts), stats)
	return nil
}

// rowReader is the subset of parquetread.Reader used by collectPlanStats.
type rowReader interface {
	Read(rows []model.AddressRow) (int, error)
}

func collectPlanStats(r rowReader, c *config.Config, opts eircode.Options) (*planStats, error) {
	stats := &planStats{ByRouting: make(map[string]int64)}
	buf := make([]model.AddressRow, 256)

	for {
		n, readErr := r.Read(buf)
		for i := 0; i < n; i++ {
			stats.Rows++
			rec, err := normalize.ToAddressRecord(&buf[i], uuid.Nil, 0, stats.Rows, opts)
			switch {
			case errors.Is(err, normalize.ErrMissingEircode):
				stats.Missing++
			case errors.Is(err, eircode.ErrInvalidEircode):
				stats.Invalid++
			case err != nil:
				return nil, err
			case !c.AllowsRoutingKey(rec.RoutingKey):
				stats.Filtered++
			default:
				stats.Valid++
				stats.ByRouting[rec.RoutingKey]++
			}
		}
		if readErr == io.EOF {
			return stats, nil
		}
		if readErr != nil {
			return nil, readErr
		}
	}
}

func printPlan(w io.Writer, path, sha, mode string, s *planStats) {
	fmt.Fprintln(w, "=== eircode plan ===")
	fmt.Fprintf(w, "File:       %s\n", path)
	fmt.Fprintf(w, "SHA-256:    %s\n", sha)
	fmt.Fprintf(w, "Mode:       %s\n", mode)
	fmt.Fprintf(w, "Total rows: %d\n", s.Rows)
	fmt.Fprintf(w, "Valid:      %d\n", s.Valid)
	fmt.Fprintf(w, "Invalid:    %d\n", s.Invalid)
	fmt.Fprintf(w, "Missing:    %d\n", s.Missing)
	fmt.Fprintf(w, "Filtered:   %d\n", s.Filtered)

	keys := make([]string, 0, len(s.ByRouting))
	for k := range s.ByRouting {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if s.ByRouting[keys[i]] != s.ByRouting[keys[j]] {
			return s.ByRouting[keys[i]] > s.ByRouting[keys[j]]
		}
		return keys[i] < keys[j]
	})
	if len(keys) > planTopRoutingKeys {
		keys = keys[:planTopRoutingKeys]
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Top routing keys:")
	for _, k := range keys {
		fmt.Fprintf(w, "  %-5s %d\n", k, s.ByRouting[k])
	}
}
