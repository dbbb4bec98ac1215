// Copyright © 2026 The escope authors

package ast

// EachChild calls fn for each direct child of n in source order. Nil
// children (elisions, absent clauses) are skipped. Unknown or leaf
// nodes have no children.
func EachChild(n Node, fn func(Node)) {
	switch n := n.(type) {
	case *Program:
		for _, s := range n.Body {
			if s != nil {
				fn(s)
			}
		}
	case *ExpressionStatement:
		if n.Expression != nil {
			fn(n.Expression)
		}
	case *BlockStatement:
		for _, s := range n.Body {
			if s != nil {
				fn(s)
			}
		}
	case *ReturnStatement:
		if n.Argument != nil {
			fn(n.Argument)
		}
	case *IfStatement:
		fn(n.Test)
		fn(n.Consequent)
		if n.Alternate != nil {
			fn(n.Alternate)
		}
	case *LabeledStatement:
		if n.Label != nil {
			fn(n.Label)
		}
		fn(n.Body)
	case *BreakStatement:
		if n.Label != nil {
			fn(n.Label)
		}
	case *ContinueStatement:
		if n.Label != nil {
			fn(n.Label)
		}
	case *WithStatement:
		fn(n.Object)
		fn(n.Body)
	case *SwitchStatement:
		fn(n.Discriminant)
		for _, c := range n.Cases {
			if c != nil {
				fn(c)
			}
		}
	case *SwitchCase:
		if n.Test != nil {
			fn(n.Test)
		}
		for _, s := range n.Consequent {
			if s != nil {
				fn(s)
			}
		}
	case *ThrowStatement:
		fn(n.Argument)
	case *TryStatement:
		fn(n.Block)
		if n.Handler != nil {
			fn(n.Handler)
		}
		if n.Finalizer != nil {
			fn(n.Finalizer)
		}
	case *CatchClause:
		if n.Param != nil {
			fn(n.Param)
		}
		fn(n.Body)
	case *WhileStatement:
		fn(n.Test)
		fn(n.Body)
	case *DoWhileStatement:
		fn(n.Body)
		fn(n.Test)
	case *ForStatement:
		if n.Init != nil {
			fn(n.Init)
		}
		if n.Test != nil {
			fn(n.Test)
		}
		if n.Update != nil {
			fn(n.Update)
		}
		fn(n.Body)
	case *ForInStatement:
		fn(n.Left)
		fn(n.Right)
		fn(n.Body)
	case *ForOfStatement:
		fn(n.Left)
		fn(n.Right)
		fn(n.Body)
	case *FunctionDeclaration:
		if n.ID != nil {
			fn(n.ID)
		}
		for _, p := range n.Params {
			if p != nil {
				fn(p)
			}
		}
		if n.Body != nil {
			fn(n.Body)
		}
	case *VariableDeclaration:
		for _, d := range n.Declarations {
			if d != nil {
				fn(d)
			}
		}
	case *VariableDeclarator:
		fn(n.ID)
		if n.Init != nil {
			fn(n.Init)
		}
	case *ClassDeclaration:
		if n.ID != nil {
			fn(n.ID)
		}
		if n.SuperClass != nil {
			fn(n.SuperClass)
		}
		if n.Body != nil {
			fn(n.Body)
		}
	case *ClassBody:
		for _, m := range n.Body {
			if m != nil {
				fn(m)
			}
		}
	case *MethodDefinition:
		fn(n.Key)
		if n.Value != nil {
			fn(n.Value)
		}
	case *PropertyDefinition:
		fn(n.Key)
		if n.Value != nil {
			fn(n.Value)
		}
	case *ImportDeclaration:
		for _, s := range n.Specifiers {
			if s != nil {
				fn(s)
			}
		}
		if n.Source != nil {
			fn(n.Source)
		}
	case *ImportSpecifier:
		if n.Imported != nil {
			fn(n.Imported)
		}
		if n.Local != nil {
			fn(n.Local)
		}
	case *ImportDefaultSpecifier:
		if n.Local != nil {
			fn(n.Local)
		}
	case *ImportNamespaceSpecifier:
		if n.Local != nil {
			fn(n.Local)
		}
	case *ExportNamedDeclaration:
		if n.Declaration != nil {
			fn(n.Declaration)
		}
		for _, s := range n.Specifiers {
			if s != nil {
				fn(s)
			}
		}
		if n.Source != nil {
			fn(n.Source)
		}
	case *ExportSpecifier:
		if n.Local != nil {
			fn(n.Local)
		}
		if n.Exported != nil {
			fn(n.Exported)
		}
	case *ExportDefaultDeclaration:
		fn(n.Declaration)
	case *ExportAllDeclaration:
		if n.Exported != nil {
			fn(n.Exported)
		}
		if n.Source != nil {
			fn(n.Source)
		}
	case *ArrayExpression:
		for _, e := range n.Elements {
			if e != nil {
				fn(e)
			}
		}
	case *ObjectExpression:
		for _, p := range n.Properties {
			if p != nil {
				fn(p)
			}
		}
	case *Property:
		fn(n.Key)
		if n.Value != nil {
			fn(n.Value)
		}
	case *FunctionExpression:
		if n.ID != nil {
			fn(n.ID)
		}
		for _, p := range n.Params {
			if p != nil {
				fn(p)
			}
		}
		if n.Body != nil {
			fn(n.Body)
		}
	case *ArrowFunctionExpression:
		for _, p := range n.Params {
			if p != nil {
				fn(p)
			}
		}
		if n.Body != nil {
			fn(n.Body)
		}
	case *ClassExpression:
		if n.ID != nil {
			fn(n.ID)
		}
		if n.SuperClass != nil {
			fn(n.SuperClass)
		}
		if n.Body != nil {
			fn(n.Body)
		}
	case *UnaryExpression:
		fn(n.Argument)
	case *UpdateExpression:
		fn(n.Argument)
	case *BinaryExpression:
		fn(n.Left)
		fn(n.Right)
	case *LogicalExpression:
		fn(n.Left)
		fn(n.Right)
	case *AssignmentExpression:
		fn(n.Left)
		fn(n.Right)
	case *ConditionalExpression:
		fn(n.Test)
		fn(n.Consequent)
		fn(n.Alternate)
	case *CallExpression:
		fn(n.Callee)
		for _, a := range n.Arguments {
			if a != nil {
				fn(a)
			}
		}
	case *NewExpression:
		fn(n.Callee)
		for _, a := range n.Arguments {
			if a != nil {
				fn(a)
			}
		}
	case *MemberExpression:
		fn(n.Object)
		fn(n.Property)
	case *SequenceExpression:
		for _, e := range n.Expressions {
			if e != nil {
				fn(e)
			}
		}
	case *SpreadElement:
		fn(n.Argument)
	case *TemplateLiteral:
		for _, q := range n.Quasis {
			if q != nil {
				fn(q)
			}
		}
		for _, e := range n.Expressions {
			if e != nil {
				fn(e)
			}
		}
	case *TaggedTemplateExpression:
		fn(n.Tag)
		fn(n.Quasi)
	case *YieldExpression:
		if n.Argument != nil {
			fn(n.Argument)
		}
	case *AwaitExpression:
		fn(n.Argument)
	case *ChainExpression:
		fn(n.Expression)
	case *ObjectPattern:
		for _, p := range n.Properties {
			if p != nil {
				fn(p)
			}
		}
	case *ArrayPattern:
		for _, e := range n.Elements {
			if e != nil {
				fn(e)
			}
		}
	case *AssignmentPattern:
		fn(n.Left)
		fn(n.Right)
	case *RestElement:
		fn(n.Argument)
	}
}

// Walk traverses the tree rooted at n in depth-first order. It calls
// fn(n) on entry; if fn returns false the node's children are skipped.
// After visiting a node's children it calls fn(nil) so callers can
// maintain depth or stack state.
func Walk(n Node, fn func(Node) bool) {
	if n == nil {
		return
	}
	if !fn(n) {
		return
	}
	EachChild(n, func(c Node) { Walk(c, fn) })
	fn(nil)
}
