package main

import (
	"fmt"
	"os"

	"github.com/dhamidi/kombu/arith"
	"github.com/dhamidi/kombu/format"
	"github.com/spf13/cobra"
)

func newParseCmd() *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "parse <expr>",
		Short: "Parse an expression and dump the raw result sequence",
		Long: `Parse an expression and dump the raw result sequence.

Unlike eval, parse does not require the whole input to be consumed: each
result shows the parsed value next to the input left over after it. An
empty sequence means the expression did not parse at all.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := arith.Parse(args[0])
			if err != nil {
				return err
			}
			results := format.Results(raw)

			var encoder format.Encoder
			switch outputFormat {
			case "json":
				encoder = format.NewJSONEncoder(os.Stdout)
			case "text":
				encoder = format.NewTextEncoder(os.Stdout)
			default:
				return fmt.Errorf("unknown format: %s", outputFormat)
			}

			if err := encoder.Encode(results); err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "json", "output format (json, text)")

	return cmd
}
