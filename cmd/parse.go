package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var parseFormat string

var parseCmd = &cobra.Command{
	Use:   "parse FILE",
	Short: "Print the syntax tree of a file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := checkFormat(parseFormat); err != nil {
			return err
		}

		d, err := newDriver(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		srcFile := d.compiler.ParseFile(args[0])
		if srcFile == nil {
			return d.failed()
		}

		out := cmd.OutOrStdout()
		if parseFormat == "yaml" {
			enc := yaml.NewEncoder(out)
			enc.SetIndent(2)
			if err := enc.Encode(srcFile.Program); err != nil {
				return fmt.Errorf("encode syntax tree: %w", err)
			}
			return enc.Close()
		}

		srcFile.Program.Dump(out)
		return nil
	},
}

func init() {
	parseCmd.Flags().StringVarP(&parseFormat, "format", "f", "text", "output format: text or yaml")
	rootCmd.AddCommand(parseCmd)
}

func checkFormat(format string) error {
	switch format {
	case "text", "yaml":
		return nil
	default:
		return fmt.Errorf("unknown format %q (want text or yaml)", format)
	}
}
