// Copyright © 2026 The escope authors

package scope

import (
	"fmt"

	"github.com/estools-go/escope/ast"
)

// SourceType selects how the program's top level is treated.
type SourceType string

const (
	// SourceScript analyzes the program as a classic script.
	SourceScript SourceType = "script"
	// SourceModule analyzes the program as an ES module: a Module scope
	// under the Global scope, strict throughout, import bindings legal.
	SourceModule SourceType = "module"
)

// DefaultEcmaVersion is used when Options.EcmaVersion is zero.
const DefaultEcmaVersion = 6

// A Tracer observes scope lifecycle events during analysis.
type Tracer interface {
	// EnterScope is called when a scope opens. The returned function
	// runs when the scope closes, after its references resolved.
	EnterScope(s *Scope) func()
}

// A Problem records an input-shape violation. The offending subtree is
// skipped and analysis continues.
type Problem struct {
	Node    ast.Node
	Message string
}

// Options configure an analysis run. The zero value analyzes a script
// with the default language edition.
type Options struct {
	// EcmaVersion gates edition-dependent scoping. Versions below 6
	// create no Block or Switch scopes and ignore strict directives
	// below 5. Zero means DefaultEcmaVersion; years (2015 and up) are
	// accepted and normalized.
	EcmaVersion int

	// SourceType selects script or module analysis. Empty means follow
	// the program's own SourceType field, defaulting to script.
	SourceType SourceType

	// NodejsScope wraps the program in an implicit function scope, the
	// way CommonJS module wrappers do. Top-level var declarations then
	// land on that wrapper instead of the global scope.
	NodejsScope bool

	// IgnoreEval disables direct-eval tracking.
	IgnoreEval bool

	// ImpliedStrict treats the program as already strict, as inside a
	// class body or an ES module bundle.
	ImpliedStrict bool

	// Tracer, when set, observes scope opens and closes.
	Tracer Tracer
}

func (o Options) ecmaVersion() int {
	v := o.EcmaVersion
	if v == 0 {
		return DefaultEcmaVersion
	}
	if v >= 2015 {
		return v - 2009
	}
	return v
}

// A Manager holds the finished scope graph of one analyzed program.
type Manager struct {
	// Scopes lists every scope in creation order; the Global scope is
	// first.
	Scopes []*Scope

	// GlobalScope is the root of the scope tree.
	GlobalScope *Scope

	// Variables aggregates every scope's variables, appended as scopes
	// close (inner scopes first).
	Variables []*Variable

	// Problems lists input-shape violations found during the walk.
	Problems []Problem

	opts              Options
	current           *Scope
	nodeToScope       map[ast.Node][]*Scope
	declaredVariables map[ast.Node][]*Variable
}

// NewManager returns an empty manager ready for one analysis run.
func NewManager(opts Options) *Manager {
	return &Manager{
		opts:              opts,
		nodeToScope:       make(map[ast.Node][]*Scope),
		declaredVariables: make(map[ast.Node][]*Variable),
	}
}

// Analyze builds the scope graph for program. A nil opts analyzes with
// defaults.
func Analyze(program *ast.Program, opts *Options) *Manager {
	var o Options
	if opts != nil {
		o = *opts
	}
	if o.SourceType == "" {
		o.SourceType = SourceScript
		if program != nil && program.SourceType == ast.SourceTypeModule {
			o.SourceType = SourceModule
		}
	}
	m := NewManager(o)
	if program == nil {
		return m
	}
	r := &referencer{mgr: m}
	r.visit(program)
	if m.current != nil {
		panic(fmt.Sprintf("scope: %s scope still open after analysis", m.current.Kind))
	}
	return m
}

// ScopeOf returns the outermost scope attached to node, or nil when the
// node introduces none. A named function expression yields its name
// scope here; use InnermostScopeOf for the function scope itself.
func (m *Manager) ScopeOf(node ast.Node) *Scope {
	scopes := m.nodeToScope[node]
	if len(scopes) == 0 {
		return nil
	}
	return scopes[0]
}

// InnermostScopeOf returns the innermost scope attached to node, or
// nil.
func (m *Manager) InnermostScopeOf(node ast.Node) *Scope {
	scopes := m.nodeToScope[node]
	if len(scopes) == 0 {
		return nil
	}
	return scopes[len(scopes)-1]
}

// DeclaredVariables returns the variables introduced by a declaring
// node: a VariableDeclaration or its declarator, a function or class,
// an import declaration or specifier, or a catch clause.
func (m *Manager) DeclaredVariables(node ast.Node) []*Variable {
	return m.declaredVariables[node]
}

func (m *Manager) registerDeclaredVariable(node ast.Node, v *Variable) {
	if node == nil {
		return
	}
	vars := m.declaredVariables[node]
	for _, existing := range vars {
		if existing == v {
			return
		}
	}
	m.declaredVariables[node] = append(vars, v)
}

func (m *Manager) es6() bool             { return m.opts.ecmaVersion() >= 6 }
func (m *Manager) strictSupported() bool { return m.opts.ecmaVersion() >= 5 }
func (m *Manager) isModule() bool        { return m.opts.SourceType == SourceModule }
func (m *Manager) trackEval() bool       { return !m.opts.IgnoreEval }

func (m *Manager) currentScope() *Scope {
	if m.current == nil {
		panic("scope: no scope is open")
	}
	return m.current
}

// newScope opens a scope for block and makes it current.
func (m *Manager) newScope(kind Kind, block ast.Node, isMethodDefinition bool) *Scope {
	if kind == Global && m.current != nil {
		panic("scope: global scope nested inside another scope")
	}
	s := &Scope{
		Kind:  kind,
		Block: block,
		Upper: m.current,
		mgr:   m,
		set:   make(map[string]*Variable),
	}
	switch kind {
	case Global, Module, Function:
		s.VariableScope = s
	default:
		s.VariableScope = s.Upper.VariableScope
	}
	if m.strictSupported() {
		s.IsStrict = computeStrict(s, isMethodDefinition)
	}
	if s.Upper != nil {
		s.Upper.Children = append(s.Upper.Children, s)
	}
	if kind == Global {
		m.GlobalScope = s
	}
	m.Scopes = append(m.Scopes, s)
	m.nodeToScope[block] = append(m.nodeToScope[block], s)
	m.current = s
	if kind == Function {
		if _, arrow := block.(*ast.ArrowFunctionExpression); !arrow {
			s.defineName("arguments")
		}
	}
	if m.opts.Tracer != nil {
		s.exit = m.opts.Tracer.EnterScope(s)
	}
	return s
}

// closeScope closes every open scope whose block is the given
// construct. A named function expression closes both its function scope
// and its name scope here. Closing with no open scope, or against the
// wrong construct, is a programmer error.
func (m *Manager) closeScope(block ast.Node) {
	if m.current == nil {
		panic(fmt.Sprintf("scope: close of %T with no open scope", block))
	}
	if m.current.Block != block {
		panic(fmt.Sprintf("scope: close of %T does not match the open %s scope", block, m.current.Kind))
	}
	for m.current != nil && m.current.Block == block {
		m.current = m.current.close(m)
	}
}

func (m *Manager) addProblem(node ast.Node, format string, args ...any) {
	m.Problems = append(m.Problems, Problem{Node: node, Message: fmt.Sprintf(format, args...)})
}
