// Copyright © 2026 The escope authors

// Package ast defines a typed representation of the ESTree syntax tree
// shape produced by ECMAScript parsers such as espree and acorn.
//
// The package performs no parsing. Trees are either decoded from a
// parser's JSON output (see DecodeProgram) or constructed directly by
// tooling and tests. Every node carries the byte offsets reported by the
// parser plus an optional line/column block; both may be absent on
// hand-built trees, and consumers must not rely on them being set.
package ast

// Position is a line/column pair as reported by ESTree parsers.
// Line is 1-based and Column is 0-based.
type Position struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// SourceLocation is the loc block attached to a node by parsers invoked
// with location tracking enabled.
type SourceLocation struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
}

// NodeInfo carries the source extent present on every node: 0-based byte
// offsets and an optional line/column block. It is embedded by every
// node type.
type NodeInfo struct {
	Start int
	End   int
	Loc   *SourceLocation
}

// Span returns the node's byte offsets within the original source.
func (n *NodeInfo) Span() (start, end int) { return n.Start, n.End }

// Location returns the node's line/column block, or nil when the parser
// did not provide one.
func (n *NodeInfo) Location() *SourceLocation { return n.Loc }

// Node is implemented by all syntax tree nodes.
type Node interface {
	Span() (start, end int)
	Location() *SourceLocation
}

// Statement is implemented by all statement nodes, including declaration
// forms that appear in statement position.
type Statement interface {
	Node
	stmt()
}

// Expression is implemented by all expression nodes.
type Expression interface {
	Node
	expr()
}

// Pattern is implemented by nodes that can appear in binding position:
// identifiers, destructuring patterns, defaults, rest elements, and
// member expressions used as assignment targets.
type Pattern interface {
	Node
	pattern()
}

// DeclarationKind is the qualifier of a variable declaration.
type DeclarationKind string

// Variable declaration qualifiers.
const (
	DeclVar   DeclarationKind = "var"
	DeclLet   DeclarationKind = "let"
	DeclConst DeclarationKind = "const"
)

// BlockScoped reports whether the qualifier binds in the innermost
// lexical scope rather than hoisting to the nearest variable scope.
func (k DeclarationKind) BlockScoped() bool { return k != DeclVar }

// SourceTypeOf values appear in Program.SourceType.
const (
	SourceTypeScript = "script"
	SourceTypeModule = "module"
)

// A Program is the root of a parsed file.
type Program struct {
	NodeInfo
	SourceType string // "script" or "module", as reported by the parser
	Body       []Statement
}

// --- statements ---

// An ExpressionStatement is an expression in statement position.
// Directive holds the unescaped directive text ("use strict") when the
// statement is part of a directive prologue.
type ExpressionStatement struct {
	NodeInfo
	Expression Expression
	Directive  string
}

// A BlockStatement is a braced statement list.
type BlockStatement struct {
	NodeInfo
	Body []Statement
}

// An EmptyStatement is a lone semicolon.
type EmptyStatement struct {
	NodeInfo
}

// A DebuggerStatement is the debugger keyword.
type DebuggerStatement struct {
	NodeInfo
}

// A ReturnStatement returns Argument (nil for a bare return).
type ReturnStatement struct {
	NodeInfo
	Argument Expression
}

// An IfStatement with optional Alternate.
type IfStatement struct {
	NodeInfo
	Test       Expression
	Consequent Statement
	Alternate  Statement
}

// A LabeledStatement attaches Label to Body. The label is not an
// identifier reference.
type LabeledStatement struct {
	NodeInfo
	Label *Identifier
	Body  Statement
}

// A BreakStatement with optional label.
type BreakStatement struct {
	NodeInfo
	Label *Identifier
}

// A ContinueStatement with optional label.
type ContinueStatement struct {
	NodeInfo
	Label *Identifier
}

// A WithStatement evaluates Object and runs Body with the object's
// properties spliced into the name lookup chain.
type WithStatement struct {
	NodeInfo
	Object Expression
	Body   Statement
}

// A SwitchStatement with its cases.
type SwitchStatement struct {
	NodeInfo
	Discriminant Expression
	Cases        []*SwitchCase
}

// A SwitchCase is one case (or default, when Test is nil) clause.
type SwitchCase struct {
	NodeInfo
	Test       Expression
	Consequent []Statement
}

// A ThrowStatement.
type ThrowStatement struct {
	NodeInfo
	Argument Expression
}

// A TryStatement; Handler and Finalizer may each be nil.
type TryStatement struct {
	NodeInfo
	Block     *BlockStatement
	Handler   *CatchClause
	Finalizer *BlockStatement
}

// A CatchClause; Param is nil for the bindingless catch form.
type CatchClause struct {
	NodeInfo
	Param Pattern
	Body  *BlockStatement
}

// A WhileStatement.
type WhileStatement struct {
	NodeInfo
	Test Expression
	Body Statement
}

// A DoWhileStatement.
type DoWhileStatement struct {
	NodeInfo
	Body Statement
	Test Expression
}

// A ForStatement. Init is a *VariableDeclaration, an Expression, or nil.
type ForStatement struct {
	NodeInfo
	Init   Node
	Test   Expression
	Update Expression
	Body   Statement
}

// A ForInStatement. Left is a *VariableDeclaration or a Pattern.
type ForInStatement struct {
	NodeInfo
	Left  Node
	Right Expression
	Body  Statement
}

// A ForOfStatement. Left is a *VariableDeclaration or a Pattern.
type ForOfStatement struct {
	NodeInfo
	Left  Node
	Right Expression
	Body  Statement
	Await bool
}

// A FunctionDeclaration. ID is nil only for export-default functions.
type FunctionDeclaration struct {
	NodeInfo
	ID        *Identifier
	Params    []Pattern
	Body      *BlockStatement
	Generator bool
	Async     bool
}

// A VariableDeclaration groups declarators under one qualifier.
type VariableDeclaration struct {
	NodeInfo
	Kind         DeclarationKind
	Declarations []*VariableDeclarator
}

// A VariableDeclarator binds ID, optionally initialized from Init.
type VariableDeclarator struct {
	NodeInfo
	ID   Pattern
	Init Expression
}

// A ClassDeclaration. ID is nil only for export-default classes.
type ClassDeclaration struct {
	NodeInfo
	ID         *Identifier
	SuperClass Expression
	Body       *ClassBody
}

// A ClassBody holds *MethodDefinition and *PropertyDefinition members.
type ClassBody struct {
	NodeInfo
	Body []Node
}

// A MethodDefinition is a method, getter, setter, or constructor.
type MethodDefinition struct {
	NodeInfo
	Key      Expression
	Value    *FunctionExpression
	Kind     string // "constructor", "method", "get", or "set"
	Computed bool
	Static   bool
}

// A PropertyDefinition is a class field; Value may be nil.
type PropertyDefinition struct {
	NodeInfo
	Key      Expression
	Value    Expression
	Computed bool
	Static   bool
}

// An ImportDeclaration. Specifiers holds *ImportSpecifier,
// *ImportDefaultSpecifier, and *ImportNamespaceSpecifier nodes.
type ImportDeclaration struct {
	NodeInfo
	Specifiers []Node
	Source     *Literal
}

// An ImportSpecifier binds Local to the Imported name.
type ImportSpecifier struct {
	NodeInfo
	Imported Node // *Identifier, or *Literal for string import names
	Local    *Identifier
}

// An ImportDefaultSpecifier binds Local to the default export.
type ImportDefaultSpecifier struct {
	NodeInfo
	Local *Identifier
}

// An ImportNamespaceSpecifier binds Local to the whole module namespace.
type ImportNamespaceSpecifier struct {
	NodeInfo
	Local *Identifier
}

// An ExportNamedDeclaration: either a wrapped declaration, or a
// specifier list optionally re-exported from Source.
type ExportNamedDeclaration struct {
	NodeInfo
	Declaration Statement
	Specifiers  []*ExportSpecifier
	Source      *Literal
}

// An ExportSpecifier exports Local under the Exported name.
type ExportSpecifier struct {
	NodeInfo
	Local    Node // *Identifier, or *Literal for string export names
	Exported Node
}

// An ExportDefaultDeclaration wraps a declaration or an expression.
type ExportDefaultDeclaration struct {
	NodeInfo
	Declaration Node
}

// An ExportAllDeclaration re-exports everything from Source.
type ExportAllDeclaration struct {
	NodeInfo
	Exported Node // nil unless the export * as ns form
	Source   *Literal
}

func (*ExpressionStatement) stmt()      {}
func (*BlockStatement) stmt()           {}
func (*EmptyStatement) stmt()           {}
func (*DebuggerStatement) stmt()        {}
func (*ReturnStatement) stmt()          {}
func (*IfStatement) stmt()              {}
func (*LabeledStatement) stmt()         {}
func (*BreakStatement) stmt()           {}
func (*ContinueStatement) stmt()        {}
func (*WithStatement) stmt()            {}
func (*SwitchStatement) stmt()          {}
func (*ThrowStatement) stmt()           {}
func (*TryStatement) stmt()             {}
func (*WhileStatement) stmt()           {}
func (*DoWhileStatement) stmt()         {}
func (*ForStatement) stmt()             {}
func (*ForInStatement) stmt()           {}
func (*ForOfStatement) stmt()           {}
func (*FunctionDeclaration) stmt()      {}
func (*VariableDeclaration) stmt()      {}
func (*ClassDeclaration) stmt()         {}
func (*ImportDeclaration) stmt()        {}
func (*ExportNamedDeclaration) stmt()   {}
func (*ExportDefaultDeclaration) stmt() {}
func (*ExportAllDeclaration) stmt()     {}

// --- expressions ---

// An Identifier names a variable, property, or label.
type Identifier struct {
	NodeInfo
	Name string
}

// A PrivateIdentifier is a #name class element reference.
type PrivateIdentifier struct {
	NodeInfo
	Name string
}

// A Literal is any literal token. Value is nil, bool, float64, or
// string; regular expressions carry only Raw.
type Literal struct {
	NodeInfo
	Value any
	Raw   string
}

// StringValue returns the literal's string value when it is a string
// literal.
func (l *Literal) StringValue() (string, bool) {
	s, ok := l.Value.(string)
	return s, ok
}

// A ThisExpression is the this keyword.
type ThisExpression struct {
	NodeInfo
}

// A Super is the super keyword in callee or member-object position.
type Super struct {
	NodeInfo
}

// An ArrayExpression; nil elements are elisions.
type ArrayExpression struct {
	NodeInfo
	Elements []Expression
}

// An ObjectExpression holds *Property and *SpreadElement nodes.
type ObjectExpression struct {
	NodeInfo
	Properties []Node
}

// A Property is one member of an object expression or object pattern.
// In pattern position Value is itself a Pattern.
type Property struct {
	NodeInfo
	Key       Expression
	Value     Node
	Kind      string // "init", "get", or "set"
	Method    bool
	Shorthand bool
	Computed  bool
}

// A FunctionExpression; a non-nil ID names the function inside its own
// body only.
type FunctionExpression struct {
	NodeInfo
	ID        *Identifier
	Params    []Pattern
	Body      *BlockStatement
	Generator bool
	Async     bool
}

// An ArrowFunctionExpression. Body is a *BlockStatement or an
// Expression.
type ArrowFunctionExpression struct {
	NodeInfo
	Params []Pattern
	Body   Node
	Async  bool
}

// A ClassExpression.
type ClassExpression struct {
	NodeInfo
	ID         *Identifier
	SuperClass Expression
	Body       *ClassBody
}

// A UnaryExpression (delete, void, typeof, +, -, ~, !).
type UnaryExpression struct {
	NodeInfo
	Operator string
	Prefix   bool
	Argument Expression
}

// An UpdateExpression (++ or --).
type UpdateExpression struct {
	NodeInfo
	Operator string
	Prefix   bool
	Argument Expression
}

// A BinaryExpression. Left may be a *PrivateIdentifier for the
// #field in obj form.
type BinaryExpression struct {
	NodeInfo
	Operator string
	Left     Expression
	Right    Expression
}

// A LogicalExpression (&&, ||, ??).
type LogicalExpression struct {
	NodeInfo
	Operator string
	Left     Expression
	Right    Expression
}

// An AssignmentExpression. Left is a Pattern or an Expression target.
type AssignmentExpression struct {
	NodeInfo
	Operator string
	Left     Node
	Right    Expression
}

// A ConditionalExpression (?:).
type ConditionalExpression struct {
	NodeInfo
	Test       Expression
	Consequent Expression
	Alternate  Expression
}

// A CallExpression. Callee may be a *Super.
type CallExpression struct {
	NodeInfo
	Callee    Expression
	Arguments []Expression
	Optional  bool
}

// A NewExpression.
type NewExpression struct {
	NodeInfo
	Callee    Expression
	Arguments []Expression
}

// A MemberExpression. Property is an arbitrary expression when
// Computed, otherwise a static *Identifier or *PrivateIdentifier.
type MemberExpression struct {
	NodeInfo
	Object   Expression
	Property Expression
	Computed bool
	Optional bool
}

// A SequenceExpression (comma operator).
type SequenceExpression struct {
	NodeInfo
	Expressions []Expression
}

// A SpreadElement in call or array position.
type SpreadElement struct {
	NodeInfo
	Argument Expression
}

// A TemplateLiteral alternates quasis and substitution expressions.
type TemplateLiteral struct {
	NodeInfo
	Quasis      []*TemplateElement
	Expressions []Expression
}

// A TemplateElement is one literal chunk of a template.
type TemplateElement struct {
	NodeInfo
	Raw    string
	Cooked string
	Tail   bool
}

// A TaggedTemplateExpression applies Tag to Quasi.
type TaggedTemplateExpression struct {
	NodeInfo
	Tag   Expression
	Quasi *TemplateLiteral
}

// A YieldExpression.
type YieldExpression struct {
	NodeInfo
	Argument Expression
	Delegate bool
}

// An AwaitExpression.
type AwaitExpression struct {
	NodeInfo
	Argument Expression
}

// A MetaProperty such as new.target or import.meta.
type MetaProperty struct {
	NodeInfo
	Meta     *Identifier
	Property *Identifier
}

// A ChainExpression wraps an optional-chaining member/call chain.
type ChainExpression struct {
	NodeInfo
	Expression Expression
}

func (*Identifier) expr()               {}
func (*PrivateIdentifier) expr()        {}
func (*Literal) expr()                  {}
func (*ThisExpression) expr()           {}
func (*Super) expr()                    {}
func (*ArrayExpression) expr()          {}
func (*ObjectExpression) expr()         {}
func (*FunctionExpression) expr()       {}
func (*ArrowFunctionExpression) expr()  {}
func (*ClassExpression) expr()          {}
func (*UnaryExpression) expr()          {}
func (*UpdateExpression) expr()         {}
func (*BinaryExpression) expr()         {}
func (*LogicalExpression) expr()        {}
func (*AssignmentExpression) expr()     {}
func (*ConditionalExpression) expr()    {}
func (*CallExpression) expr()           {}
func (*NewExpression) expr()            {}
func (*MemberExpression) expr()         {}
func (*SequenceExpression) expr()       {}
func (*SpreadElement) expr()            {}
func (*TemplateLiteral) expr()          {}
func (*TaggedTemplateExpression) expr() {}
func (*YieldExpression) expr()          {}
func (*AwaitExpression) expr()          {}
func (*MetaProperty) expr()             {}
func (*ChainExpression) expr()          {}

// --- patterns ---

// An ObjectPattern holds *Property and *RestElement nodes.
type ObjectPattern struct {
	NodeInfo
	Properties []Node
}

// An ArrayPattern; nil elements are elisions.
type ArrayPattern struct {
	NodeInfo
	Elements []Pattern
}

// An AssignmentPattern supplies a default for Left.
type AssignmentPattern struct {
	NodeInfo
	Left  Pattern
	Right Expression
}

// A RestElement collects remaining elements into Argument.
type RestElement struct {
	NodeInfo
	Argument Pattern
}

func (*Identifier) pattern()        {}
func (*MemberExpression) pattern()  {}
func (*ObjectPattern) pattern()     {}
func (*ArrayPattern) pattern()      {}
func (*AssignmentPattern) pattern() {}
func (*RestElement) pattern()       {}

// IsPattern reports whether a node can act as a destructuring target
// during pattern decomposition. Member expressions are assignable but
// are not decomposed, so they are excluded here.
func IsPattern(n Node) bool {
	switch n.(type) {
	case *Identifier, *ObjectPattern, *ArrayPattern, *SpreadElement, *RestElement, *AssignmentPattern:
		return true
	}
	return false
}
