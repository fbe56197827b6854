package main

import (
	"fmt"

	"github.com/dhamidi/kombu/arith"
	"github.com/spf13/cobra"
)

func newEvalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eval <expr>",
		Short: "Evaluate an arithmetic expression",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := arith.Eval(args[0])
			if err != nil {
				return err
			}
			fmt.Println(value)
			return nil
		},
	}
}
