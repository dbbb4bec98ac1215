// Copyright © 2026 The escope authors

// Package scope builds lexical scope graphs for ESTree syntax trees.
//
// Analyze walks a parsed program once and returns a Manager holding
// every scope the program introduces, the variables declared in each,
// and every identifier reference resolved against the declarations that
// are actually visible to it. Resolution respects hoisting: names bind
// by scope containment, never by textual order.
package scope

import (
	"fmt"

	"github.com/estools-go/escope/ast"
)

// Kind identifies the construct class that introduced a scope.
type Kind int

const (
	Global Kind = iota
	Module
	Function
	FunctionExpressionName
	Block
	Switch
	Catch
	With
	Class
	For
)

var kindNames = []string{
	Global:                 "global",
	Module:                 "module",
	Function:               "function",
	FunctionExpressionName: "function-expression-name",
	Block:                  "block",
	Switch:                 "switch",
	Catch:                  "catch",
	With:                   "with",
	Class:                  "class",
	For:                    "for",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("invalid-kind-%d", int(k))
	}
	return kindNames[k]
}

// A Scope is one region of the program with its own name bindings.
type Scope struct {
	Kind Kind

	// Block is the construct that introduced the scope. A named
	// function expression's name scope and function scope share one
	// block node.
	Block ast.Node

	// Upper is the lexically enclosing scope, nil for Global.
	Upper *Scope

	// VariableScope is the nearest enclosing Global, Module, or
	// Function scope, the scope itself included. var declarations
	// hoist to it; this and direct-eval findings land on it.
	VariableScope *Scope

	// Children holds directly nested scopes in creation order.
	Children []*Scope

	// Variables lists the scope's own bindings in insertion order.
	Variables []*Variable

	// References lists references that occur in this scope, in the
	// order the walk recorded them.
	References []*Reference

	// Through lists references that escaped this scope unresolved.
	Through []*Reference

	// Implicit lists variables created by implicit-global writes.
	// Populated only on the Global scope.
	Implicit []*Variable

	IsStrict bool

	// UsesThis records a this expression under this variable scope.
	UsesThis bool

	// ContainsDirectEval records a direct eval call under this variable
	// scope. The scope's names may be extended at runtime; this is a
	// finding, not a change in resolution behavior.
	ContainsDirectEval bool

	mgr *Manager
	set map[string]*Variable

	// left holds references still waiting for resolution: the scope's
	// own plus those delegated upward by closing children.
	left []*Reference

	// exit ends the tracer span opened when the scope was nested.
	exit func()
}

// Lookup finds name in this scope or any enclosing scope.
func (s *Scope) Lookup(name string) *Variable {
	for cur := s; cur != nil; cur = cur.Upper {
		if v := cur.set[name]; v != nil {
			return v
		}
	}
	return nil
}

// LookupLocal finds name in this scope only.
func (s *Scope) LookupLocal(name string) *Variable {
	return s.set[name]
}

// defineName returns the scope's variable for name, creating it on
// first use.
func (s *Scope) defineName(name string) *Variable {
	v := s.set[name]
	if v == nil {
		v = &Variable{Name: name, Scope: s}
		s.set[name] = v
		s.Variables = append(s.Variables, v)
	}
	return v
}

func (s *Scope) define(ident *ast.Identifier, def *Definition) {
	if ident == nil {
		return
	}
	v := s.defineName(ident.Name)
	if def != nil {
		v.Definitions = append(v.Definitions, def)
		s.mgr.registerDeclaredVariable(def.Node, v)
		s.mgr.registerDeclaredVariable(def.Parent, v)
	}
}

// addReference records a use of ident in this scope. candidate is the
// node that would declare an implicit global for an unresolved write;
// it is dropped here when the scope is strict, so candidacy is fixed at
// creation time.
func (s *Scope) addReference(ident *ast.Identifier, access Access, writeExpr, candidate ast.Node, partial, init bool) {
	if ident == nil || ident.Name == "super" {
		return
	}
	if s.IsStrict {
		candidate = nil
	}
	ref := &Reference{
		Identifier:              ident,
		From:                    s,
		Access:                  access,
		WriteExpr:               writeExpr,
		Partial:                 partial,
		Init:                    init,
		ImplicitGlobalCandidate: candidate,
	}
	s.References = append(s.References, ref)
	s.left = append(s.left, ref)
}

// close resolves the scope's pending references, publishes its
// variables, and returns the enclosing scope.
func (s *Scope) close(m *Manager) *Scope {
	switch s.Kind {
	case Global:
		s.closeGlobal(m)
	case With:
		// with extends its names from a runtime object, so nothing
		// inside it resolves statically. Every pending reference
		// escapes through all enclosing scopes.
		for _, ref := range s.left {
			for cur := s; cur != nil; cur = cur.Upper {
				cur.Through = append(cur.Through, ref)
			}
		}
	default:
		for _, ref := range s.left {
			s.closeStaticRef(ref)
		}
	}
	s.left = nil
	m.Variables = append(m.Variables, s.Variables...)
	if s.exit != nil {
		s.exit()
		s.exit = nil
	}
	return s.Upper
}

// closeGlobal turns non-strict unresolved writes into implicit global
// variables, then resolves statically. The implicit bindings live in
// Implicit only; their references stay unresolved and flow into
// Through with the other free names.
func (s *Scope) closeGlobal(m *Manager) {
	var implicitSet map[string]*Variable
	for _, ref := range s.left {
		if ref.ImplicitGlobalCandidate == nil || s.set[ref.Identifier.Name] != nil {
			continue
		}
		if implicitSet == nil {
			implicitSet = make(map[string]*Variable)
		}
		name := ref.Identifier.Name
		v := implicitSet[name]
		if v == nil {
			v = &Variable{Name: name, Scope: s}
			implicitSet[name] = v
			s.Implicit = append(s.Implicit, v)
		}
		def := &Definition{
			Kind:  DefImplicitGlobal,
			Name:  ref.Identifier,
			Node:  ref.ImplicitGlobalCandidate,
			Index: -1,
		}
		v.Definitions = append(v.Definitions, def)
		m.registerDeclaredVariable(def.Node, v)
	}
	for _, ref := range s.left {
		s.closeStaticRef(ref)
	}
}

func (s *Scope) closeStaticRef(ref *Reference) {
	if s.resolve(ref) {
		return
	}
	s.Through = append(s.Through, ref)
	if s.Upper != nil {
		s.Upper.left = append(s.Upper.left, ref)
	}
}

func (s *Scope) resolve(ref *Reference) bool {
	v := s.set[ref.Identifier.Name]
	if v == nil || !s.isValidResolution(ref, v) {
		return false
	}
	v.References = append(v.References, ref)
	ref.Resolved = v
	return true
}

// isValidResolution rejects a function-scope match when the reference
// sits in the parameter segment while every definition of the variable
// sits in the body. Parameter defaults must not see body-only vars:
//
//	function f(a = x) { var x; }
//
// leaves a unresolved against x. The check compares source offsets and
// is inert when the tree carries none.
func (s *Scope) isValidResolution(ref *Reference, v *Variable) bool {
	if s.Kind != Function {
		return true
	}
	var body ast.Node
	switch fn := s.Block.(type) {
	case *ast.FunctionDeclaration:
		if fn.Body == nil {
			return true
		}
		body = fn.Body
	case *ast.FunctionExpression:
		if fn.Body == nil {
			return true
		}
		body = fn.Body
	case *ast.ArrowFunctionExpression:
		if fn.Body == nil {
			return true
		}
		body = fn.Body
	default:
		// The host-wrapper function closes over a whole Program.
		return true
	}
	bodyStart, _ := body.Span()
	if bodyStart == 0 {
		return true
	}
	refStart, _ := ref.Identifier.Span()
	if v.Scope != s || refStart >= bodyStart {
		return true
	}
	for _, def := range v.Definitions {
		if def.Name == nil {
			return true
		}
		nameStart, _ := def.Name.Span()
		if nameStart < bodyStart {
			return true
		}
	}
	return false
}

// computeStrict decides a new scope's initial strictness. Class and
// Module scopes are always strict, Block and Switch never add
// strictness of their own, and Function and Global scopes scan their
// directive prologue. Strictness always inherits downward.
func computeStrict(s *Scope, isMethodDefinition bool) bool {
	if s.Upper != nil && s.Upper.IsStrict {
		return true
	}
	if isMethodDefinition {
		return true
	}
	switch s.Kind {
	case Class, Module:
		return true
	case Block, Switch:
		return false
	}

	var stmts []ast.Statement
	switch s.Kind {
	case Function:
		switch fn := s.Block.(type) {
		case *ast.ArrowFunctionExpression:
			blk, ok := fn.Body.(*ast.BlockStatement)
			if !ok {
				return false
			}
			stmts = blk.Body
		case *ast.FunctionDeclaration:
			if fn.Body == nil {
				return false
			}
			stmts = fn.Body.Body
		case *ast.FunctionExpression:
			if fn.Body == nil {
				return false
			}
			stmts = fn.Body.Body
		case *ast.Program:
			// Host wrapper: the program prologue governs the wrapper.
			stmts = fn.Body
		default:
			return false
		}
	case Global:
		prog, ok := s.Block.(*ast.Program)
		if !ok {
			return false
		}
		stmts = prog.Body
	default:
		return false
	}
	return hasUseStrict(stmts)
}

// hasUseStrict scans a directive prologue. A statement that is not a
// string expression statement ends the prologue.
func hasUseStrict(stmts []ast.Statement) bool {
	for _, st := range stmts {
		es, ok := st.(*ast.ExpressionStatement)
		if !ok {
			break
		}
		if es.Directive != "" {
			if es.Directive == "use strict" {
				return true
			}
			continue
		}
		lit, ok := es.Expression.(*ast.Literal)
		if !ok {
			break
		}
		val, isString := lit.StringValue()
		if !isString {
			break
		}
		if lit.Raw != "" {
			if lit.Raw == `"use strict"` || lit.Raw == `'use strict'` {
				return true
			}
		} else if val == "use strict" {
			return true
		}
	}
	return false
}
