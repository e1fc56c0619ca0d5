package main

import (
	"fmt"
	"os"

	"github.com/dhamidi/declcheck/lang/parser"
	"github.com/spf13/cobra"
)

func newTokensCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens <file>",
		Short: "Print the token stream of a program",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read source: %w", err)
			}

			lexer := parser.NewLexer(data)
			for {
				tok := lexer.NextToken()
				fmt.Println(tok.String())
				if tok.Kind == parser.TokenDone {
					return nil
				}
			}
		},
	}
}
