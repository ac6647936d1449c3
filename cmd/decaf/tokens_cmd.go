package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/decaflang/decaf/lexer"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens [file]",
	Short: "Print the token stream for Decaf source",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		source, err := readSource(cmd, args)
		if err != nil {
			return err
		}
		queue, err := lexer.Tokenize(source)
		if err != nil {
			printDiagnostic(err)
			return err
		}
		kindColor := color.New(color.FgYellow)
		for !queue.IsEmpty() {
			tok := queue.Remove()
			kind := fmt.Sprintf("%-10s", string(tok.Type))
			if useColor() {
				kind = kindColor.Sprint(kind)
			}
			fmt.Printf("%s %-24q line %d\n", kind, tok.Literal, tok.Line)
		}
		return nil
	},
}

func init() {
	tokensCmd.Flags().StringP("code", "c", "", "code to tokenize")
	rootCmd.AddCommand(tokensCmd)
}
