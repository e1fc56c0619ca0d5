package main

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/dhamidi/declcheck/lang/grammar"
	"github.com/spf13/cobra"
)

func newGrammarCmd() *cobra.Command {
	var verify bool

	cmd := &cobra.Command{
		Use:           "grammar",
		Short:         "Print or verify the EBNF grammar of the language",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !verify {
				fmt.Print(grammar.Source())
				return nil
			}

			if err := grammar.Verify(); err != nil {
				printErrors(err)
				return err
			}
			names, err := grammar.Nonterminals()
			if err != nil {
				return err
			}
			fmt.Printf("ok: %d productions reachable from %s\n", len(names), grammar.Start)
			return nil
		},
	}

	cmd.Flags().BoolVar(&verify, "verify", false, "verify the grammar instead of printing it")

	return cmd
}

func printErrors(err error) {
	if inner := errors.Unwrap(err); inner != nil {
		err = inner
	}
	v := reflect.ValueOf(err)
	if v.Kind() == reflect.Slice {
		for i := 0; i < v.Len(); i++ {
			fmt.Println(v.Index(i).Interface())
		}
	} else {
		fmt.Println(err)
	}
}
