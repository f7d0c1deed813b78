package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/gyeh/eircode"
	"github.com/gyeh/eircode/internal/exitcode"
	"github.com/gyeh/eircode/internal/logging"
)

var normaliseCmd = &cobra.Command{
	Use:     "normalise [eircode...]",
	Aliases: []string{"normalize"},
	Short:   `Print each Eircode in canonical "RRR UUUU" form`,
	RunE:    runNormalise,
}

var splitCmd = &cobra.Command{
	Use:   "split [eircode...]",
	Short: "Print the routing key and unique identifier of each Eircode",
	RunE:  runSplit,
}

func init() {
	rootCmd.AddCommand(normaliseCmd)
	rootCmd.AddCommand(splitCmd)
}

func runNormalise(cmd *cobra.Command, args []string) error {
	return runEach(cmd, args, func(w io.Writer, code string) error {
		s, err := eircode.Normalise(code)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, s)
		return nil
	})
}

func runSplit(cmd *cobra.Command, args []string) error {
	return runEach(cmd, args, func(w io.Writer, code string) error {
		rk, uid, err := eircode.Split(code)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%s\n", rk, uid)
		return nil
	})
}

// runEach applies fn to every input, logging invalid ones, and exits with
// ValidationError if any failed.
func runEach(cmd *cobra.Command, args []string, fn func(io.Writer, string) error) error {
	log := logging.Setup(cfg.LogFormat)

	codes, err := inputs(args, cmd.InOrStdin())
	if err != nil {
		log.Error().Err(err).Msg("failed to read input")
		os.Exit(exitcode.UsageError)
	}

	if failed := applyAll(cmd.OutOrStdout(), log, codes, fn); failed > 0 {
		os.Exit(exitcode.ValidationError)
	}
	return nil
}

func applyAll(w io.Writer, log zerolog.Logger, codes []string, fn func(io.Writer, string) error) int {
	failed := 0
	for _, c := range codes {
		if err := fn(w, c); err != nil {
			if !errors.Is(err, eircode.ErrInvalidEircode) {
				log.Error().Err(err).Str("input", c).Msg("unexpected error")
			} else {
				log.Warn().Str("input", c).Msg("invalid eircode")
			}
			failed++
		}
	}
	return failed
}
