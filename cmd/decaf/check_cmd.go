package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/decaflang/decaf/ast"
	"github.com/decaflang/decaf/parser"
)

var checkCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Check Decaf source for syntax errors",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		source, err := readSource(cmd, args)
		if err != nil {
			return err
		}
		start := time.Now()
		program, err := parser.Parse(source, parserOptions()...)
		if err != nil {
			printDiagnostic(err)
			return err
		}
		log.Debug().Dur("elapsed", time.Since(start)).Msg("parse complete")

		var nodes int
		ast.Inspect(program, func(ast.Node) bool {
			nodes++
			return true
		})

		ok := "ok"
		if useColor() {
			ok = color.New(color.FgGreen, color.Bold).Sprint(ok)
		}
		fmt.Printf("%s  %d declarations, %d functions, %d nodes\n",
			ok, len(program.Variables()), len(program.Functions()), nodes)
		return nil
	},
}

func init() {
	checkCmd.Flags().StringP("code", "c", "", "code to check")
	rootCmd.AddCommand(checkCmd)
}
