package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"propanec/syntax"
)

var (
	tokensFormat string
	tokensAll    bool
)

var tokensCmd = &cobra.Command{
	Use:   "tokens FILE",
	Short: "Print the token stream of a file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := checkFormat(tokensFormat); err != nil {
			return err
		}

		d, err := newDriver(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		srcFile, toks := d.compiler.Tokens(args[0], tokensAll)
		if srcFile == nil {
			return d.failed()
		}

		return writeTokens(cmd.OutOrStdout(), tokensFormat, srcFile.Text, toks)
	},
}

func init() {
	tokensCmd.Flags().StringVarP(&tokensFormat, "format", "f", "text", "output format: text or yaml")
	tokensCmd.Flags().BoolVarP(&tokensAll, "all", "a", false, "include whitespace and comments")
	rootCmd.AddCommand(tokensCmd)
}

type tokenRecord struct {
	Kind         string `yaml:"kind"`
	Span         [2]int `yaml:"span,flow"`
	Text         string `yaml:"text"`
	Unterminated bool   `yaml:"unterminated,omitempty"`
}

func writeTokens(w io.Writer, format, src string, toks []syntax.Token) error {
	if format == "yaml" {
		records := make([]tokenRecord, 0, len(toks))
		for _, tok := range toks {
			records = append(records, tokenRecord{
				Kind:         tok.Kind.String(),
				Span:         [2]int{tok.Span.Start, tok.Span.End},
				Text:         tok.Text(src),
				Unterminated: tok.Unterminated,
			})
		}

		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(records); err != nil {
			return fmt.Errorf("encode tokens: %w", err)
		}
		return enc.Close()
	}

	for _, tok := range toks {
		suffix := ""
		if tok.Unterminated {
			suffix = " (unterminated)"
		}

		if _, err := fmt.Fprintf(w, "%-8s %-12s %q%s\n", tok.Span, tok.Kind, tok.Text(src), suffix); err != nil {
			return err
		}
	}

	return nil
}
