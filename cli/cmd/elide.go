package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vippsas/parencheck/scanner"
)

var (
	elideCmd = &cobra.Command{
		Use:   "elide <path>",
		Short: "Dump the region text the scanner sees, with literals and comments removed, to stdout",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				_ = cmd.Help()
				return errors.New("need to specify argument <path>")
			}
			_, opts, err := setup(cmd)
			if err != nil {
				return err
			}
			docs, err := load(opts, args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, doc := range docs {
				for _, r := range scanner.FindRegions(doc, opts.Markers, opts.AllRegions) {
					fmt.Fprintf(out, "=== %s %s ===\n", doc.File, r)
					for _, line := range scanner.ElideRegion(doc, r, opts.Dialect) {
						if line.CommentOnly {
							continue
						}
						fmt.Fprintf(out, "%d: %s\n", line.Line, line.Text)
					}
				}
			}
			return nil
		},
	}
)

func init() {
	rootCmd.AddCommand(elideCmd)
}
