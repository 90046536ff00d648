package cmd

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	showConfigCmd = &cobra.Command{
		Use:   "show-config",
		Short: "Print the effective configuration as " + configName + ".yaml",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, _, err := setup(cmd); err != nil {
				return err
			}
			encoder := yaml.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent(2)
			if err := encoder.Encode(config.AllSettings()); err != nil {
				return err
			}
			return encoder.Close()
		},
	}
)

func init() {
	rootCmd.AddCommand(showConfigCmd)
}
