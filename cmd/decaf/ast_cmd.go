package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/hokaccha/go-prettyjson"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/decaflang/decaf/ast"
	"github.com/decaflang/decaf/parser"
)

var astCmd = &cobra.Command{
	Use:   "ast [file]",
	Short: "Parse Decaf source and print its syntax tree",
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

		if viper.GetString("output") == "json" {
			return printASTJSON(program)
		}
		printAST(program)
		return nil
	},
}

func init() {
	astCmd.Flags().StringP("code", "c", "", "code to parse")
	astCmd.Flags().StringP("output", "o", "text", "output format (text or json)")
	viper.BindPFlag("output", astCmd.Flags().Lookup("output"))
	rootCmd.AddCommand(astCmd)
}

// jsonNode is the JSON shape of one AST node.
type jsonNode struct {
	Type     string      `json:"type"`
	Value    interface{} `json:"value,omitempty"`
	Line     int         `json:"line,omitempty"`
	Children []*jsonNode `json:"children,omitempty"`
}

func printASTJSON(program *ast.Program) error {
	root := nodeToJSON(program)
	if useColor() {
		out, err := prettyjson.Marshal(root)
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(root)
}

func nodeToJSON(node ast.Node) *jsonNode {
	if node == nil {
		return nil
	}
	result := &jsonNode{Type: nodeName(node), Line: node.Line()}

	switch n := node.(type) {
	case *ast.Program:
		for _, decl := range n.Variables() {
			result.Children = append(result.Children, nodeToJSON(decl))
		}
		for _, fn := range n.Functions() {
			result.Children = append(result.Children, nodeToJSON(fn))
		}
	case *ast.VarDecl:
		result.Value = fmt.Sprintf("%s %s", n.Type(), n.Name())
	case *ast.FuncDecl:
		params := make([]string, 0, len(n.Parameters()))
		for _, p := range n.Parameters() {
			params = append(params, p.String())
		}
		result.Value = fmt.Sprintf("def %s %s(%s)", n.ReturnType(), n.Name(), strings.Join(params, ", "))
		result.Children = append(result.Children, nodeToJSON(n.Body()))
	case *ast.Block:
		for _, decl := range n.Variables() {
			result.Children = append(result.Children, nodeToJSON(decl))
		}
		for _, stmt := range n.Statements() {
			result.Children = append(result.Children, nodeToJSON(stmt))
		}
	case *ast.Assignment:
		result.Value = n.Target().Name()
		result.Children = append(result.Children, nodeToJSON(n.Value()))
	case *ast.Conditional:
		result.Children = append(result.Children, nodeToJSON(n.Condition()))
		result.Children = append(result.Children, nodeToJSON(n.IfBody()))
		if n.ElseBody() != nil {
			result.Children = append(result.Children, nodeToJSON(n.ElseBody()))
		}
	case *ast.Return:
		if n.Value() != nil {
			result.Children = append(result.Children, nodeToJSON(n.Value()))
		}
	case *ast.BinaryOp:
		result.Value = n.Operator().String()
		result.Children = append(result.Children, nodeToJSON(n.Left()))
		result.Children = append(result.Children, nodeToJSON(n.Right()))
	case *ast.UnaryOp:
		result.Value = n.Operator().String()
		result.Children = append(result.Children, nodeToJSON(n.Operand()))
	case *ast.Location:
		result.Value = n.Name()
	case *ast.IntLit:
		result.Value = n.Value()
	case *ast.BoolLit:
		result.Value = n.Value()
	case *ast.StringLit:
		result.Value = n.Value()
	}
	return result
}

// nodeName returns a display name for a node's concrete type.
func nodeName(node ast.Node) string {
	switch node.(type) {
	case *ast.Program:
		return "Program"
	case *ast.VarDecl:
		return "VarDecl"
	case *ast.FuncDecl:
		return "FuncDecl"
	case *ast.Block:
		return "Block"
	case *ast.Assignment:
		return "Assignment"
	case *ast.Conditional:
		return "Conditional"
	case *ast.Break:
		return "Break"
	case *ast.Continue:
		return "Continue"
	case *ast.Return:
		return "Return"
	case *ast.BinaryOp:
		return "BinaryOp"
	case *ast.UnaryOp:
		return "UnaryOp"
	case *ast.Location:
		return "Location"
	case *ast.IntLit:
		return "IntLit"
	case *ast.BoolLit:
		return "BoolLit"
	case *ast.StringLit:
		return "StringLit"
	default:
		return "Node"
	}
}

// printAST writes an indented text rendering of the tree to stdout.
func printAST(program *ast.Program) {
	printNode(nodeToJSON(program), 0)
}

func printNode(node *jsonNode, depth int) {
	if node == nil {
		return
	}
	indent := strings.Repeat("  ", depth)
	name := node.Type
	if useColor() {
		name = color.New(color.FgCyan).Sprint(name)
	}
	if node.Value != nil {
		fmt.Printf("%s%s %v [line %d]\n", indent, name, node.Value, node.Line)
	} else {
		fmt.Printf("%s%s [line %d]\n", indent, name, node.Line)
	}
	for _, child := range node.Children {
		printNode(child, depth+1)
	}
}
