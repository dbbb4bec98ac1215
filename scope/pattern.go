// Copyright © 2026 The escope authors

package scope

import "github.com/estools-go/escope/ast"

// patternInfo describes one leaf target found inside a binding or
// assignment pattern.
type patternInfo struct {
	// topLevel is true when the leaf is the whole pattern.
	topLevel bool

	// rest is true when the leaf is a rest element's argument.
	rest bool

	// assignments holds the enclosing default-value patterns and
	// assignment expressions, outermost first. Valid only during the
	// callback.
	assignments []ast.Node
}

// patternVisitor walks a pattern, reporting each leaf identifier and
// collecting the sub-expressions that are ordinary code rather than
// binding structure: default values, computed keys, member objects,
// call arguments. It never touches scopes itself.
type patternVisitor struct {
	root         ast.Node
	callback     func(*ast.Identifier, patternInfo)
	assignments  []ast.Node
	rightHand    []ast.Node
	restElements []*ast.RestElement
}

func (v *patternVisitor) visit(node ast.Node) {
	switch n := node.(type) {
	case *ast.Identifier:
		rest := false
		if len(v.restElements) > 0 {
			last := v.restElements[len(v.restElements)-1]
			rest = ast.Node(last.Argument) == node
		}
		v.callback(n, patternInfo{
			topLevel:    node == v.root,
			rest:        rest,
			assignments: v.assignments,
		})
	case *ast.ObjectPattern:
		for _, p := range n.Properties {
			if p != nil {
				v.visit(p)
			}
		}
	case *ast.Property:
		if n.Computed {
			v.rightHand = append(v.rightHand, n.Key)
		}
		v.visit(n.Value)
	case *ast.ArrayPattern:
		for _, el := range n.Elements {
			if el != nil {
				v.visit(el)
			}
		}
	case *ast.ArrayExpression:
		for _, el := range n.Elements {
			if el != nil {
				v.visit(el)
			}
		}
	case *ast.AssignmentPattern:
		v.assignments = append(v.assignments, n)
		v.visit(n.Left)
		v.rightHand = append(v.rightHand, n.Right)
		v.assignments = v.assignments[:len(v.assignments)-1]
	case *ast.AssignmentExpression:
		v.assignments = append(v.assignments, n)
		v.visit(n.Left)
		v.rightHand = append(v.rightHand, n.Right)
		v.assignments = v.assignments[:len(v.assignments)-1]
	case *ast.RestElement:
		v.restElements = append(v.restElements, n)
		v.visit(n.Argument)
		v.restElements = v.restElements[:len(v.restElements)-1]
	case *ast.SpreadElement:
		v.visit(n.Argument)
	case *ast.MemberExpression:
		// Assignment targets like [a.b] = c bind nothing; the parts
		// are plain expressions.
		if n.Computed {
			v.rightHand = append(v.rightHand, n.Property)
		}
		v.rightHand = append(v.rightHand, n.Object)
	case *ast.CallExpression:
		for _, a := range n.Arguments {
			if a != nil {
				v.rightHand = append(v.rightHand, a)
			}
		}
		v.visit(n.Callee)
	}
}
