package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/decaflang/decaf/parser"
)

// readSource returns the source text for a command: the -c flag if set, then
// a file argument ("-" for stdin), then stdin when piped.
func readSource(cmd *cobra.Command, args []string) (string, error) {
	if code, err := cmd.Flags().GetString("code"); err == nil && code != "" {
		return code, nil
	}
	if len(args) > 0 && args[0] != "-" {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	if len(args) > 0 || !isatty.IsTerminal(os.Stdin.Fd()) {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	return "", fmt.Errorf("no input: pass a file, use -c, or pipe source on stdin")
}

// useColor reports whether output should be colorized.
func useColor() bool {
	if viper.GetBool("no-color") || os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd())
}

// printDiagnostic writes a parse or lex failure to stderr, colorized when
// the terminal supports it.
func printDiagnostic(err error) {
	prefix := "syntax error:"
	if useColor() {
		prefix = color.New(color.FgRed, color.Bold).Sprint(prefix)
	}
	fmt.Fprintf(os.Stderr, "%s %s\n", prefix, err.Error())
}

// parserOptions builds parser options from configuration.
func parserOptions() []parser.Option {
	var opts []parser.Option
	if depth := viper.GetInt("max-depth"); depth > 0 {
		opts = append(opts, parser.WithMaxDepth(depth))
	}
	return opts
}
