package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/gyeh/eircode"
	"github.com/gyeh/eircode/internal/exitcode"
	"github.com/gyeh/eircode/internal/logging"
)

var checkCmd = &cobra.Command{
	Use:   "check [eircode...]",
	Short: "Report whether each Eircode is well-formed",
	Long: "Checks each argument (or each stdin line when no arguments are given). " +
		"Exits non-zero if any input is invalid.",
	RunE: runCheck,
}

func init() {
	modeFlags(checkCmd)
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat)

	opts, err := cfg.Options()
	if err != nil {
		log.Error().Err(err).Msg("invalid options")
		os.Exit(exitcode.UsageError)
	}

	codes, err := inputs(args, cmd.InOrStdin())
	if err != nil {
		log.Error().Err(err).Msg("failed to read input")
		os.Exit(exitcode.UsageError)
	}

	invalid, err := checkAll(cmd.OutOrStdout(), codes, opts)
	if err != nil {
		log.Error().Err(err).Msg("check failed")
		os.Exit(exitcode.UsageError)
	}
	if invalid > 0 {
		log.Debug().Int("invalid", invalid).Int("total", len(codes)).Msg("invalid eircodes found")
		os.Exit(exitcode.ValidationError)
	}
	return nil
}

// checkAll writes "<input>\tvalid|invalid" for each code and returns the
// number of invalid ones.
func checkAll(w io.Writer, codes []string, opts eircode.Options) (int, error) {
	invalid := 0
	for _, c := range codes {
		ok, err := eircode.Check(c, opts)
		if err != nil {
			return invalid, err
		}
		verdict := "valid"
		if !ok {
			verdict = "invalid"
			invalid++
		}
		fmt.Fprintf(w, "%s\t%s\n", c, verdict)
	}
	return invalid, nil
}
