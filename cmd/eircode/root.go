package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gyeh/eircode/internal/config"
	"github.com/gyeh/eircode/internal/exitcode"
	"github.com/gyeh/eircode/internal/logging"
)

var (
	cfg        config.Config
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "eircode",
	Short: "Validate and normalise Irish Eircodes",
	Long: "Checks, normalises and splits Eircodes, and bulk-loads address files " +
		"with validated Eircodes into Postgres via the COPY protocol.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if configPath == "" {
			return nil
		}
		if err := cfg.LoadFromFile(configPath); err != nil {
			log := logging.Setup(cfg.LogFormat)
			log.Error().Err(err).Str("config", configPath).Msg("config load failed")
			os.Exit(exitcode.UsageError)
		}
		return nil
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfg.DSN, "dsn", os.Getenv("EIRCODE_DB_URL"), "Postgres connection string (or set EIRCODE_DB_URL)")
	pf.StringVar(&cfg.LogFormat, "log-format", "text", "Log format: text or json")
	pf.StringVar(&configPath, "config", "", "Path to YAML config file (mode, routing_keys)")
}

// modeFlags registers --strict and --lax on cmd.
func modeFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.BoolVar(&cfg.Strict, "strict", false, "Case-sensitive: lowercase letters fail")
	f.BoolVar(&cfg.Lax, "lax", false, "Ignore spaces: the separator is optional")
}

// inputs returns args, or the non-blank lines of r when args is empty.
func inputs(args []string, r io.Reader) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if line := strings.TrimRight(sc.Text(), "\r"); strings.TrimSpace(line) != "" {
			out = append(out, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	return out, nil
}
