package ast

import (
	"bytes"
	"fmt"
)

// Program is the root of the syntax tree. It holds the top-level variable
// declarations and the function declarations, each in source order.
type Program struct {
	variables []*VarDecl
	functions []*FuncDecl
}

// NewProgram creates a new Program node.
func NewProgram(variables []*VarDecl, functions []*FuncDecl) *Program {
	return &Program{variables: variables, functions: functions}
}

func (p *Program) Variables() []*VarDecl { return p.variables }

func (p *Program) Functions() []*FuncDecl { return p.functions }

func (p *Program) Line() int {
	if len(p.variables) > 0 {
		return p.variables[0].Line()
	}
	if len(p.functions) > 0 {
		return p.functions[0].Line()
	}
	return 1
}

func (p *Program) String() string {
	var out bytes.Buffer
	for _, v := range p.variables {
		out.WriteString(v.String())
		out.WriteString("\n")
	}
	for _, f := range p.functions {
		out.WriteString(f.String())
		out.WriteString("\n")
	}
	return out.String()
}

// VarDecl is a variable declaration, either at the top level of a program or
// local to a block. The array fields exist for later language subsets; the
// current grammar only produces scalar declarations (isArray false, length 1).
type VarDecl struct {
	name     string
	typ      Type
	isArray  bool
	arrayLen int
	line     int
}

// NewVarDecl creates a new VarDecl node.
func NewVarDecl(name string, typ Type, isArray bool, arrayLen int, line int) *VarDecl {
	return &VarDecl{name: name, typ: typ, isArray: isArray, arrayLen: arrayLen, line: line}
}

func (d *VarDecl) stmtNode() {}

func (d *VarDecl) Name() string { return d.name }

func (d *VarDecl) Type() Type { return d.typ }

func (d *VarDecl) IsArray() bool { return d.isArray }

func (d *VarDecl) ArrayLen() int { return d.arrayLen }

func (d *VarDecl) Line() int { return d.line }

func (d *VarDecl) String() string {
	if d.isArray {
		return fmt.Sprintf("%s %s[%d];", d.typ, d.name, d.arrayLen)
	}
	return fmt.Sprintf("%s %s;", d.typ, d.name)
}

// Parameter is a single name/type entry in a function's parameter list.
type Parameter struct {
	name string
	typ  Type
}

// NewParameter creates a new Parameter entry.
func NewParameter(name string, typ Type) *Parameter {
	return &Parameter{name: name, typ: typ}
}

func (p *Parameter) Name() string { return p.name }

func (p *Parameter) Type() Type { return p.typ }

func (p *Parameter) String() string {
	return fmt.Sprintf("%s %s", p.typ, p.name)
}

// FuncDecl is a function declaration: name, return type, parameters, and the
// body block.
type FuncDecl struct {
	name       string
	returnType Type
	params     []*Parameter
	body       *Block
	line       int
}

// NewFuncDecl creates a new FuncDecl node.
func NewFuncDecl(name string, returnType Type, params []*Parameter, body *Block, line int) *FuncDecl {
	return &FuncDecl{name: name, returnType: returnType, params: params, body: body, line: line}
}

func (d *FuncDecl) stmtNode() {}

func (d *FuncDecl) Name() string { return d.name }

func (d *FuncDecl) ReturnType() Type { return d.returnType }

func (d *FuncDecl) Parameters() []*Parameter { return d.params }

func (d *FuncDecl) Body() *Block { return d.body }

func (d *FuncDecl) Line() int { return d.line }

func (d *FuncDecl) String() string {
	var out bytes.Buffer
	out.WriteString("def ")
	out.WriteString(d.returnType.String())
	out.WriteString(" ")
	out.WriteString(d.name)
	out.WriteString("(")
	for i, p := range d.params {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(p.String())
	}
	out.WriteString(") ")
	out.WriteString(d.body.String())
	return out.String()
}
