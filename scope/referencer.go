// Copyright © 2026 The escope authors

package scope

import "github.com/estools-go/escope/ast"

// referencer performs the single analysis walk: it opens and closes
// scopes, defines variables, and records references. Everything else
// (resolution, implicit globals) happens at scope close.
type referencer struct {
	mgr *Manager

	// isInnerMethodDefinition is true while visiting a method
	// definition's value, whose function scope is strict regardless of
	// directives.
	isInnerMethodDefinition bool
}

func (r *referencer) visit(node ast.Node) {
	if node == nil {
		return
	}
	switch n := node.(type) {
	case *ast.Program:
		r.program(n)
	case *ast.Identifier:
		r.mgr.currentScope().addReference(n, Read, nil, nil, false, false)
	case *ast.PrivateIdentifier, *ast.Super, *ast.MetaProperty:
		// Not references.
	case *ast.ThisExpression:
		r.mgr.currentScope().VariableScope.UsesThis = true
	case *ast.FunctionDeclaration:
		r.function(n)
	case *ast.FunctionExpression:
		r.function(n)
	case *ast.ArrowFunctionExpression:
		r.function(n)
	case *ast.ClassDeclaration:
		r.class(n)
	case *ast.ClassExpression:
		r.class(n)
	case *ast.MethodDefinition:
		r.property(n.Key, n.Computed, n.Value, true)
	case *ast.PropertyDefinition:
		r.property(n.Key, n.Computed, n.Value, false)
	case *ast.Property:
		r.property(n.Key, n.Computed, n.Value, false)
	case *ast.BlockStatement:
		r.block(n)
	case *ast.SwitchStatement:
		r.switchStmt(n)
	case *ast.CatchClause:
		r.catchClause(n)
	case *ast.WithStatement:
		r.withStmt(n)
	case *ast.ForStatement:
		r.forStmt(n)
	case *ast.ForInStatement:
		r.forIn(n, n.Left, n.Right, n.Body)
	case *ast.ForOfStatement:
		r.forIn(n, n.Left, n.Right, n.Body)
	case *ast.VariableDeclaration:
		r.variableDeclaration(n)
	case *ast.AssignmentExpression:
		r.assignment(n)
	case *ast.UpdateExpression:
		r.update(n)
	case *ast.MemberExpression:
		r.visit(n.Object)
		if n.Computed {
			r.visit(n.Property)
		}
	case *ast.CallExpression:
		r.call(n)
	case *ast.LabeledStatement:
		// The label names a statement, not a variable.
		r.visit(n.Body)
	case *ast.BreakStatement, *ast.ContinueStatement:
		// Label operands are not references.
	case *ast.ImportDeclaration:
		r.importDeclaration(n)
	case *ast.ExportNamedDeclaration:
		r.exportNamed(n)
	case *ast.ExportDefaultDeclaration:
		r.visit(n.Declaration)
	case *ast.ExportAllDeclaration:
		// Re-export; binds nothing here.
	default:
		r.visitChildren(node)
	}
}

func (r *referencer) visitChildren(node ast.Node) {
	ast.EachChild(node, r.visit)
}

func (r *referencer) program(node *ast.Program) {
	m := r.mgr
	m.newScope(Global, node, false)

	if m.opts.NodejsScope {
		// A CommonJS-style host wraps the file in a function. The
		// wrapper, not the global scope, owns the prologue directives.
		m.GlobalScope.IsStrict = false
		m.newScope(Function, node, false)
	}
	if m.es6() && m.isModule() {
		m.newScope(Module, node, false)
	}
	if m.strictSupported() && m.opts.ImpliedStrict {
		m.currentScope().IsStrict = true
	}

	r.visitChildren(node)
	m.closeScope(node)
}

// function handles declarations, expressions, and arrows. The
// declaration's name binds in the enclosing scope; a named function
// expression gets a dedicated scope binding the name to the function
// itself, nested outside the function scope so parameters and locals
// shadow it.
func (r *referencer) function(node ast.Node) {
	m := r.mgr

	if fn, ok := node.(*ast.FunctionDeclaration); ok && fn.ID != nil {
		m.currentScope().define(fn.ID, &Definition{
			Kind:  DefFunctionName,
			Name:  fn.ID,
			Node:  fn,
			Index: -1,
		})
	}
	if fn, ok := node.(*ast.FunctionExpression); ok && fn.ID != nil {
		m.newScope(FunctionExpressionName, node, false)
		m.currentScope().define(fn.ID, &Definition{
			Kind:  DefFunctionName,
			Name:  fn.ID,
			Node:  fn,
			Index: -1,
		})
	}

	m.newScope(Function, node, r.isInnerMethodDefinition)
	fnScope := m.currentScope()

	params, body := functionParts(node)
	for i, param := range params {
		if param == nil {
			continue
		}
		r.visitPattern(param, true, func(leaf *ast.Identifier, info patternInfo) {
			fnScope.define(leaf, &Definition{
				Kind:  DefParameter,
				Name:  leaf,
				Node:  node,
				Index: i,
				Rest:  info.rest,
			})
			r.referencingDefaultValues(leaf, info.assignments, nil, true)
		})
	}

	// A block body introduces no extra Block scope; an arrow's
	// expression body is ordinary code.
	switch b := body.(type) {
	case *ast.BlockStatement:
		r.visitChildren(b)
	case nil:
	default:
		r.visit(body)
	}

	m.closeScope(node)
}

func functionParts(node ast.Node) ([]ast.Pattern, ast.Node) {
	switch fn := node.(type) {
	case *ast.FunctionDeclaration:
		if fn.Body == nil {
			return fn.Params, nil
		}
		return fn.Params, fn.Body
	case *ast.FunctionExpression:
		if fn.Body == nil {
			return fn.Params, nil
		}
		return fn.Params, fn.Body
	case *ast.ArrowFunctionExpression:
		return fn.Params, fn.Body
	}
	return nil, nil
}

func (r *referencer) class(node ast.Node) {
	m := r.mgr

	var id *ast.Identifier
	var superClass ast.Expression
	var body *ast.ClassBody
	switch c := node.(type) {
	case *ast.ClassDeclaration:
		id, superClass, body = c.ID, c.SuperClass, c.Body
		if c.ID != nil {
			m.currentScope().define(c.ID, &Definition{
				Kind:  DefClassName,
				Name:  c.ID,
				Node:  c,
				Index: -1,
			})
		}
	case *ast.ClassExpression:
		id, superClass, body = c.ID, c.SuperClass, c.Body
	}

	// The superclass expression cannot see the class's inner
	// self-binding.
	r.visit(superClass)

	m.newScope(Class, node, false)
	if id != nil {
		m.currentScope().define(id, &Definition{
			Kind:  DefClassName,
			Name:  id,
			Node:  node,
			Index: -1,
		})
	}
	if body != nil {
		r.visitChildren(body)
	}
	m.closeScope(node)
}

// property covers object properties, method definitions, and class
// fields. Only computed keys are code; method values run strict.
func (r *referencer) property(key ast.Expression, computed bool, value ast.Node, isMethod bool) {
	if computed {
		r.visit(key)
	}
	if !isMethod {
		r.visit(value)
		return
	}
	prev := r.isInnerMethodDefinition
	r.isInnerMethodDefinition = true
	r.visit(value)
	r.isInnerMethodDefinition = prev
}

func (r *referencer) block(node *ast.BlockStatement) {
	m := r.mgr
	if !m.es6() {
		r.visitChildren(node)
		return
	}
	m.newScope(Block, node, false)
	r.visitChildren(node)
	m.closeScope(node)
}

func (r *referencer) switchStmt(node *ast.SwitchStatement) {
	m := r.mgr
	r.visit(node.Discriminant)
	nested := false
	if m.es6() {
		m.newScope(Switch, node, false)
		nested = true
	}
	for _, c := range node.Cases {
		if c != nil {
			r.visit(c)
		}
	}
	if nested {
		m.closeScope(node)
	}
}

func (r *referencer) catchClause(node *ast.CatchClause) {
	m := r.mgr
	m.newScope(Catch, node, false)
	catchScope := m.currentScope()
	if node.Param != nil {
		r.visitPattern(node.Param, true, func(leaf *ast.Identifier, info patternInfo) {
			catchScope.define(leaf, &Definition{
				Kind:  DefCatchClause,
				Name:  leaf,
				Node:  node,
				Index: -1,
			})
			r.referencingDefaultValues(leaf, info.assignments, nil, true)
		})
	}
	r.visit(node.Body)
	m.closeScope(node)
}

func (r *referencer) withStmt(node *ast.WithStatement) {
	m := r.mgr
	r.visit(node.Object)
	m.newScope(With, node, false)
	r.visit(node.Body)
	m.closeScope(node)
}

func (r *referencer) forStmt(node *ast.ForStatement) {
	m := r.mgr
	nested := false
	if decl, ok := node.Init.(*ast.VariableDeclaration); ok && decl.Kind.BlockScoped() {
		m.newScope(For, node, false)
		nested = true
	}
	r.visitChildren(node)
	if nested {
		m.closeScope(node)
	}
}

func (r *referencer) forIn(node ast.Node, left ast.Node, right ast.Expression, body ast.Statement) {
	m := r.mgr
	nested := false
	if decl, ok := left.(*ast.VariableDeclaration); ok && decl.Kind.BlockScoped() {
		m.newScope(For, node, false)
		nested = true
	}

	if decl, ok := left.(*ast.VariableDeclaration); ok {
		r.visit(decl)
		// Re-walk the declared pattern to record the per-iteration
		// write from the iterated expression.
		if len(decl.Declarations) > 0 && decl.Declarations[0] != nil {
			r.visitPattern(decl.Declarations[0].ID, false, func(leaf *ast.Identifier, info patternInfo) {
				m.currentScope().addReference(leaf, Write, right, nil, true, true)
			})
		}
	} else {
		r.visitPattern(left, true, func(leaf *ast.Identifier, info patternInfo) {
			r.referencingDefaultValues(leaf, info.assignments, node, false)
			m.currentScope().addReference(leaf, Write, right, node, true, false)
		})
	}

	r.visit(right)
	r.visit(body)
	if nested {
		m.closeScope(node)
	}
}

func (r *referencer) variableDeclaration(node *ast.VariableDeclaration) {
	m := r.mgr
	target := m.currentScope()
	if !node.Kind.BlockScoped() {
		target = target.VariableScope
	}
	for i, decl := range node.Declarations {
		if decl == nil {
			continue
		}
		r.visitDeclarator(target, node, decl, i)
		if decl.Init != nil {
			r.visit(decl.Init)
		}
	}
}

func (r *referencer) visitDeclarator(target *Scope, node *ast.VariableDeclaration, decl *ast.VariableDeclarator, index int) {
	init := decl.Init
	r.visitPattern(decl.ID, true, func(leaf *ast.Identifier, info patternInfo) {
		target.define(leaf, &Definition{
			Kind:     DefVariable,
			Name:     leaf,
			Node:     decl,
			Parent:   node,
			Index:    index,
			DeclKind: node.Kind,
		})
		r.referencingDefaultValues(leaf, info.assignments, nil, true)
		if init != nil {
			r.mgr.currentScope().addReference(leaf, Write, init, nil, !info.topLevel, true)
		}
	})
}

func (r *referencer) assignment(node *ast.AssignmentExpression) {
	if ast.IsPattern(node.Left) {
		if node.Operator == "=" {
			r.visitPattern(node.Left, true, func(leaf *ast.Identifier, info patternInfo) {
				r.referencingDefaultValues(leaf, info.assignments, node, false)
				r.mgr.currentScope().addReference(leaf, Write, node.Right, node, !info.topLevel, false)
			})
		} else if id, ok := node.Left.(*ast.Identifier); ok {
			r.mgr.currentScope().addReference(id, ReadWrite, node.Right, nil, false, false)
		}
	} else {
		r.visit(node.Left)
	}
	r.visit(node.Right)
}

func (r *referencer) update(node *ast.UpdateExpression) {
	if ast.IsPattern(node.Argument) {
		if id, ok := node.Argument.(*ast.Identifier); ok {
			r.mgr.currentScope().addReference(id, ReadWrite, nil, nil, false, false)
		}
		return
	}
	r.visitChildren(node)
}

func (r *referencer) call(node *ast.CallExpression) {
	if r.mgr.trackEval() {
		if id, ok := node.Callee.(*ast.Identifier); ok && id.Name == "eval" {
			r.mgr.currentScope().VariableScope.ContainsDirectEval = true
		}
	}
	r.visitChildren(node)
}

func (r *referencer) importDeclaration(node *ast.ImportDeclaration) {
	m := r.mgr
	if !m.es6() || !m.isModule() {
		m.addProblem(node, "import declaration outside a module")
		return
	}
	moduleScope := m.currentScope()
	for _, spec := range node.Specifiers {
		var local *ast.Identifier
		switch s := spec.(type) {
		case *ast.ImportSpecifier:
			local = s.Local
		case *ast.ImportDefaultSpecifier:
			local = s.Local
		case *ast.ImportNamespaceSpecifier:
			local = s.Local
		default:
			continue
		}
		if local == nil {
			continue
		}
		moduleScope.define(local, &Definition{
			Kind:   DefImportBinding,
			Name:   local,
			Node:   spec,
			Parent: node,
			Index:  -1,
		})
	}
}

func (r *referencer) exportNamed(node *ast.ExportNamedDeclaration) {
	if node.Source != nil {
		// Re-export; the names live in the other module.
		return
	}
	if node.Declaration != nil {
		r.visit(node.Declaration)
		return
	}
	for _, spec := range node.Specifiers {
		if spec != nil {
			r.visit(spec.Local)
		}
	}
}

// referencingDefaultValues records one initializing write per enclosing
// default-value pattern, sourced from that default's right side.
func (r *referencer) referencingDefaultValues(leaf *ast.Identifier, assignments []ast.Node, candidate ast.Node, init bool) {
	scope := r.mgr.currentScope()
	for _, assignment := range assignments {
		var left, right ast.Node
		switch a := assignment.(type) {
		case *ast.AssignmentPattern:
			left, right = a.Left, a.Right
		case *ast.AssignmentExpression:
			left, right = a.Left, a.Right
		default:
			continue
		}
		scope.addReference(leaf, Write, right, candidate, ast.Node(leaf) != left, init)
	}
}

// visitPattern decomposes a binding or assignment pattern, invoking cb
// per leaf target. With processRightHand set, the collected right-hand
// expressions are visited afterward as ordinary code, so defaults
// resolve in the scope that owns the bindings.
func (r *referencer) visitPattern(node ast.Node, processRightHand bool, cb func(*ast.Identifier, patternInfo)) {
	if node == nil {
		return
	}
	v := &patternVisitor{root: node, callback: cb}
	v.visit(node)
	if processRightHand {
		for _, rh := range v.rightHand {
			r.visit(rh)
		}
	}
}
