package cmd

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vippsas/parencheck"
	"github.com/vippsas/parencheck/scanner"
)

var (
	rootCmd = &cobra.Command{
		Use:           "parencheck",
		Short:         "parencheck",
		SilenceUsage:  true,
		SilenceErrors: true,
		Long: `Reports unbalanced parentheses in the script blocks of HTML (or other) documents,
ignoring parentheses inside string literals and comments.`,
	}

	cfgFile string
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

// ExitCode maps the error returned by Execute to the process exit code:
// 2 when strict mode found an imbalance, 1 for anything else.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var imbalance parencheck.ImbalanceError
	if errors.As(err, &imbalance) {
		return 2
	}
	return 1
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default: ./"+configName+".yaml if present)")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.Bool("debug", false, "shorthand for --log-level=debug")
	flags.String("start-marker", scanner.DefaultStartMarker, "line marker opening a region")
	flags.String("end-marker", scanner.DefaultEndMarker, "line marker closing a region")
	flags.Bool("marker-regexp", false, "treat the markers as regular expressions")
	flags.Bool("all-regions", false, "check every region, not only the first one")
	flags.String("dialect", scanner.JavaScript.Name, "syntax of the embedded code ("+strings.Join(scanner.DialectNames(), ", ")+")")

	bindFlag("log.level", flags, "log-level")
	bindFlag("debug", flags, "debug")
	bindFlag("start_marker", flags, "start-marker")
	bindFlag("end_marker", flags, "end-marker")
	bindFlag("marker_regexp", flags, "marker-regexp")
	bindFlag("all_regions", flags, "all-regions")
	bindFlag("dialect", flags, "dialect")
}
