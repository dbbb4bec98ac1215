// Copyright © 2026 The escope authors

package scope

import (
	"fmt"

	"github.com/estools-go/escope/ast"
)

// DefKind classifies how a variable came to be declared.
type DefKind int

// Definition kinds, in rough order of how often they appear.
const (
	DefVariable DefKind = iota
	DefParameter
	DefFunctionName
	DefClassName
	DefImportBinding
	DefCatchClause
	DefImplicitGlobal
)

var defKindNames = []string{
	DefVariable:       "variable",
	DefParameter:      "parameter",
	DefFunctionName:   "function-name",
	DefClassName:      "class-name",
	DefImportBinding:  "import-binding",
	DefCatchClause:    "catch-clause",
	DefImplicitGlobal: "implicit-global",
}

func (k DefKind) String() string {
	if k < 0 || int(k) >= len(defKindNames) {
		return fmt.Sprintf("invalid-defkind-%d", int(k))
	}
	return defKindNames[k]
}

// A Definition records one declaration site of a variable.
type Definition struct {
	Kind DefKind

	// Name is the declared identifier leaf. For destructured
	// declarations each leaf gets its own definition.
	Name *ast.Identifier

	// Node is the declaring construct: the VariableDeclarator, function
	// or class node, import specifier, or catch clause. For implicit
	// globals it is the assignment or loop that created the binding.
	Node ast.Node

	// Parent is the enclosing declaration statement when one exists
	// (the VariableDeclaration or ImportDeclaration), nil otherwise.
	Parent ast.Node

	// Index is the declarator or parameter position, -1 when the
	// definition is not positional.
	Index int

	// DeclKind carries the var/let/const qualifier for DefVariable
	// definitions, empty otherwise.
	DeclKind ast.DeclarationKind

	// Rest marks parameters bound through a rest element.
	Rest bool
}

// A Variable is a named binding in a single scope. It accumulates every
// declaration that contributes to the binding and, once the scope graph
// is complete, every reference that resolved to it.
type Variable struct {
	Name string

	// Scope is the scope the variable is defined in.
	Scope *Scope

	// Definitions lists the declaration sites in the order the walk
	// found them.
	Definitions []*Definition

	// References lists references resolved to this variable, in
	// resolution order.
	References []*Reference
}
