package cmd

import (
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check FILE...",
	Short: "Parse files and report diagnostics",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := newDriver(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		if !d.compiler.Check(args) {
			return d.failed()
		}

		d.log.Info("check passed", "files", len(args))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
