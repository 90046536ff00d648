package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/vippsas/parencheck"
	"github.com/vippsas/parencheck/format"
)

var (
	checkCmd = &cobra.Command{
		Use:   "check [path...]",
		Short: "Check the parentheses in the script blocks of the given files and directories (default " + parencheck.DefaultFile + ")",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, opts, err := setup(cmd)
			if err != nil {
				return err
			}
			useColor, err := cfg.UseColor(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			exporter, err := format.Lookup(cfg.Format, useColor)
			if err != nil {
				return err
			}
			reports, err := parencheck.CheckPaths(cmd.Context(), opts, paths(args)...)
			if err != nil {
				return err
			}
			summary := parencheck.Summarize(reports)
			if err := exporter.Export(cmd.OutOrStdout(), summary); err != nil {
				return err
			}
			if cfg.Strict {
				return summary.Imbalance()
			}
			return nil
		},
	}
)

func init() {
	flags := checkCmd.Flags()
	flags.String("range", "", "range of interest, e.g. 4650-4660; highlighted in the report and dumped verbatim")
	flags.Int("max-unclosed", parencheck.DefaultMaxUnclosed, "number of unclosed parentheses to list, most recent first (at least 1, negative lists all)")
	flags.StringSlice("ext", parencheck.DefaultExtensions, "file extensions checked when walking directories")
	flags.String("format", "text", "output format ("+strings.Join(format.Names(), ", ")+")")
	flags.String("color", "auto", "color the text report (auto, always, never)")
	flags.Bool("strict", false, "exit with status 2 when any imbalance is found")
	flags.Int("concurrency", parencheck.DefaultConcurrency, "number of files checked in parallel")

	bindFlag("range_of_interest", flags, "range")
	bindFlag("max_unclosed", flags, "max-unclosed")
	bindFlag("extensions", flags, "ext")
	bindFlag("format", flags, "format")
	bindFlag("color", flags, "color")
	bindFlag("strict", flags, "strict")
	bindFlag("concurrency", flags, "concurrency")

	rootCmd.AddCommand(checkCmd)
}
