package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vippsas/parencheck/scanner"
)

var (
	regionsCmd = &cobra.Command{
		Use:   "regions [path...]",
		Short: "List the regions between start and end markers that check would scan",
		RunE: func(cmd *cobra.Command, args []string) error {
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
				regions := scanner.FindRegions(doc, opts.Markers, opts.AllRegions)
				if len(regions) == 0 {
					fmt.Fprintf(out, "%s: no region found\n", doc.File)
					continue
				}
				for _, r := range regions {
					if r.Terminated {
						fmt.Fprintf(out, "%s: %s (markers on lines %d and %d)\n", doc.File, r, r.StartMarker, r.EndMarker)
					} else {
						fmt.Fprintf(out, "%s: %s (marker on line %d)\n", doc.File, r, r.StartMarker)
					}
				}
			}
			return nil
		},
	}
)

func init() {
	rootCmd.AddCommand(regionsCmd)
}
