// Copyright © 2026 The escope authors

package ast

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// DecodeProgram decodes an ESTree JSON document, as emitted by espree or
// acorn, into a typed tree. The document root must be a Program node.
func DecodeProgram(data []byte) (*Program, error) {
	n, err := decodeNode(data)
	if err != nil {
		return nil, err
	}
	prog, ok := n.(*Program)
	if !ok {
		return nil, fmt.Errorf("estree: document root is %T, want Program", n)
	}
	return prog, nil
}

// rawNode is the union of every field the supported node set uses.
// Polymorphic fields stay raw and are re-decoded per node type.
type rawNode struct {
	Type  string          `json:"type"`
	Start *int            `json:"start"`
	End   *int            `json:"end"`
	Range []int           `json:"range"`
	Loc   *SourceLocation `json:"loc"`

	Name         string            `json:"name"`
	Value        json.RawMessage   `json:"value"`
	Raw          string            `json:"raw"`
	SourceType   string            `json:"sourceType"`
	Body         json.RawMessage   `json:"body"`
	Expression   json.RawMessage   `json:"expression"`
	Directive    string            `json:"directive"`
	Argument     json.RawMessage   `json:"argument"`
	Test         json.RawMessage   `json:"test"`
	Consequent   json.RawMessage   `json:"consequent"`
	Alternate    json.RawMessage   `json:"alternate"`
	Label        json.RawMessage   `json:"label"`
	Object       json.RawMessage   `json:"object"`
	Discriminant json.RawMessage   `json:"discriminant"`
	Cases        []json.RawMessage `json:"cases"`
	Block        json.RawMessage   `json:"block"`
	Handler      json.RawMessage   `json:"handler"`
	Finalizer    json.RawMessage   `json:"finalizer"`
	Param        json.RawMessage   `json:"param"`
	Init         json.RawMessage   `json:"init"`
	Update       json.RawMessage   `json:"update"`
	Left         json.RawMessage   `json:"left"`
	Right        json.RawMessage   `json:"right"`
	Await        bool              `json:"await"`
	ID           json.RawMessage   `json:"id"`
	Params       []json.RawMessage `json:"params"`
	Generator    bool              `json:"generator"`
	Async        bool              `json:"async"`
	Kind         string            `json:"kind"`
	Declarations []json.RawMessage `json:"declarations"`
	SuperClass   json.RawMessage   `json:"superClass"`
	Specifiers   []json.RawMessage `json:"specifiers"`
	Source       json.RawMessage   `json:"source"`
	Imported     json.RawMessage   `json:"imported"`
	Local        json.RawMessage   `json:"local"`
	Exported     json.RawMessage   `json:"exported"`
	Declaration  json.RawMessage   `json:"declaration"`
	Elements     []json.RawMessage `json:"elements"`
	Properties   []json.RawMessage `json:"properties"`
	Key          json.RawMessage   `json:"key"`
	Method       bool              `json:"method"`
	Shorthand    bool              `json:"shorthand"`
	Computed     bool              `json:"computed"`
	Static       bool              `json:"static"`
	Operator     string            `json:"operator"`
	Prefix       bool              `json:"prefix"`
	Callee       json.RawMessage   `json:"callee"`
	Arguments    []json.RawMessage `json:"arguments"`
	Optional     bool              `json:"optional"`
	Expressions  []json.RawMessage `json:"expressions"`
	Quasis       []json.RawMessage `json:"quasis"`
	Quasi        json.RawMessage   `json:"quasi"`
	Tag          json.RawMessage   `json:"tag"`
	Delegate     bool              `json:"delegate"`
	Meta         json.RawMessage   `json:"meta"`
	Tail         bool              `json:"tail"`
	Property     json.RawMessage   `json:"property"`
}

func (r *rawNode) info() NodeInfo {
	ni := NodeInfo{Loc: r.Loc}
	switch {
	case r.Start != nil:
		ni.Start = *r.Start
		if r.End != nil {
			ni.End = *r.End
		}
	case len(r.Range) == 2:
		ni.Start, ni.End = r.Range[0], r.Range[1]
	}
	return ni
}

func isNull(raw json.RawMessage) bool {
	return len(raw) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

func decodeNode(data json.RawMessage) (Node, error) {
	if isNull(data) {
		return nil, nil
	}
	var r rawNode
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("estree: %w", err)
	}
	if r.Type == "" {
		return nil, fmt.Errorf("estree: node object has no type tag")
	}
	return buildNode(&r)
}

func buildNode(r *rawNode) (Node, error) {
	switch r.Type {
	case "Program":
		body, err := decodeStmtList(r.Body)
		if err != nil {
			return nil, err
		}
		return &Program{NodeInfo: r.info(), SourceType: r.SourceType, Body: body}, nil

	case "ExpressionStatement":
		e, err := decodeExpr(r.Expression)
		if err != nil {
			return nil, err
		}
		return &ExpressionStatement{NodeInfo: r.info(), Expression: e, Directive: r.Directive}, nil

	case "BlockStatement":
		body, err := decodeStmtList(r.Body)
		if err != nil {
			return nil, err
		}
		return &BlockStatement{NodeInfo: r.info(), Body: body}, nil

	case "EmptyStatement":
		return &EmptyStatement{NodeInfo: r.info()}, nil

	case "DebuggerStatement":
		return &DebuggerStatement{NodeInfo: r.info()}, nil

	case "ReturnStatement":
		arg, err := decodeExpr(r.Argument)
		if err != nil {
			return nil, err
		}
		return &ReturnStatement{NodeInfo: r.info(), Argument: arg}, nil

	case "IfStatement":
		test, err := decodeExpr(r.Test)
		if err != nil {
			return nil, err
		}
		cons, err := decodeStmt(r.Consequent)
		if err != nil {
			return nil, err
		}
		alt, err := decodeStmt(r.Alternate)
		if err != nil {
			return nil, err
		}
		return &IfStatement{NodeInfo: r.info(), Test: test, Consequent: cons, Alternate: alt}, nil

	case "LabeledStatement":
		label, err := decodeIdent(r.Label)
		if err != nil {
			return nil, err
		}
		body, err := decodeStmt(r.Body)
		if err != nil {
			return nil, err
		}
		return &LabeledStatement{NodeInfo: r.info(), Label: label, Body: body}, nil

	case "BreakStatement":
		label, err := decodeIdent(r.Label)
		if err != nil {
			return nil, err
		}
		return &BreakStatement{NodeInfo: r.info(), Label: label}, nil

	case "ContinueStatement":
		label, err := decodeIdent(r.Label)
		if err != nil {
			return nil, err
		}
		return &ContinueStatement{NodeInfo: r.info(), Label: label}, nil

	case "WithStatement":
		obj, err := decodeExpr(r.Object)
		if err != nil {
			return nil, err
		}
		body, err := decodeStmt(r.Body)
		if err != nil {
			return nil, err
		}
		return &WithStatement{NodeInfo: r.info(), Object: obj, Body: body}, nil

	case "SwitchStatement":
		disc, err := decodeExpr(r.Discriminant)
		if err != nil {
			return nil, err
		}
		cases, err := decodeList[*SwitchCase](r.Cases, "switch case")
		if err != nil {
			return nil, err
		}
		return &SwitchStatement{NodeInfo: r.info(), Discriminant: disc, Cases: cases}, nil

	case "SwitchCase":
		test, err := decodeExpr(r.Test)
		if err != nil {
			return nil, err
		}
		cons, err := decodeStmtList(r.Consequent)
		if err != nil {
			return nil, err
		}
		return &SwitchCase{NodeInfo: r.info(), Test: test, Consequent: cons}, nil

	case "ThrowStatement":
		arg, err := decodeExpr(r.Argument)
		if err != nil {
			return nil, err
		}
		return &ThrowStatement{NodeInfo: r.info(), Argument: arg}, nil

	case "TryStatement":
		block, err := decodeBlock(r.Block)
		if err != nil {
			return nil, err
		}
		var handler *CatchClause
		if !isNull(r.Handler) {
			n, err := decodeNode(r.Handler)
			if err != nil {
				return nil, err
			}
			c, ok := n.(*CatchClause)
			if !ok {
				return nil, fmt.Errorf("estree: try handler is %T, want CatchClause", n)
			}
			handler = c
		}
		finalizer, err := decodeBlock(r.Finalizer)
		if err != nil {
			return nil, err
		}
		return &TryStatement{NodeInfo: r.info(), Block: block, Handler: handler, Finalizer: finalizer}, nil

	case "CatchClause":
		param, err := decodePattern(r.Param)
		if err != nil {
			return nil, err
		}
		body, err := decodeBlock(r.Body)
		if err != nil {
			return nil, err
		}
		return &CatchClause{NodeInfo: r.info(), Param: param, Body: body}, nil

	case "WhileStatement":
		test, err := decodeExpr(r.Test)
		if err != nil {
			return nil, err
		}
		body, err := decodeStmt(r.Body)
		if err != nil {
			return nil, err
		}
		return &WhileStatement{NodeInfo: r.info(), Test: test, Body: body}, nil

	case "DoWhileStatement":
		body, err := decodeStmt(r.Body)
		if err != nil {
			return nil, err
		}
		test, err := decodeExpr(r.Test)
		if err != nil {
			return nil, err
		}
		return &DoWhileStatement{NodeInfo: r.info(), Body: body, Test: test}, nil

	case "ForStatement":
		init, err := decodeNode(r.Init)
		if err != nil {
			return nil, err
		}
		test, err := decodeExpr(r.Test)
		if err != nil {
			return nil, err
		}
		update, err := decodeExpr(r.Update)
		if err != nil {
			return nil, err
		}
		body, err := decodeStmt(r.Body)
		if err != nil {
			return nil, err
		}
		return &ForStatement{NodeInfo: r.info(), Init: init, Test: test, Update: update, Body: body}, nil

	case "ForInStatement", "ForOfStatement":
		left, err := decodeNode(r.Left)
		if err != nil {
			return nil, err
		}
		right, err := decodeExpr(r.Right)
		if err != nil {
			return nil, err
		}
		body, err := decodeStmt(r.Body)
		if err != nil {
			return nil, err
		}
		if r.Type == "ForInStatement" {
			return &ForInStatement{NodeInfo: r.info(), Left: left, Right: right, Body: body}, nil
		}
		return &ForOfStatement{NodeInfo: r.info(), Left: left, Right: right, Body: body, Await: r.Await}, nil

	case "FunctionDeclaration":
		id, err := decodeIdent(r.ID)
		if err != nil {
			return nil, err
		}
		params, err := decodePatternList(r.Params)
		if err != nil {
			return nil, err
		}
		body, err := decodeBlock(r.Body)
		if err != nil {
			return nil, err
		}
		return &FunctionDeclaration{NodeInfo: r.info(), ID: id, Params: params, Body: body, Generator: r.Generator, Async: r.Async}, nil

	case "VariableDeclaration":
		decls, err := decodeList[*VariableDeclarator](r.Declarations, "declarator")
		if err != nil {
			return nil, err
		}
		return &VariableDeclaration{NodeInfo: r.info(), Kind: DeclarationKind(r.Kind), Declarations: decls}, nil

	case "VariableDeclarator":
		id, err := decodePattern(r.ID)
		if err != nil {
			return nil, err
		}
		init, err := decodeExpr(r.Init)
		if err != nil {
			return nil, err
		}
		return &VariableDeclarator{NodeInfo: r.info(), ID: id, Init: init}, nil

	case "ClassDeclaration", "ClassExpression":
		id, err := decodeIdent(r.ID)
		if err != nil {
			return nil, err
		}
		super, err := decodeExpr(r.SuperClass)
		if err != nil {
			return nil, err
		}
		body, err := decodeClassBody(r.Body)
		if err != nil {
			return nil, err
		}
		if r.Type == "ClassDeclaration" {
			return &ClassDeclaration{NodeInfo: r.info(), ID: id, SuperClass: super, Body: body}, nil
		}
		return &ClassExpression{NodeInfo: r.info(), ID: id, SuperClass: super, Body: body}, nil

	case "ClassBody":
		var members []json.RawMessage
		if !isNull(r.Body) {
			if err := json.Unmarshal(r.Body, &members); err != nil {
				return nil, fmt.Errorf("estree: class body: %w", err)
			}
		}
		body, err := decodeNodeList(members)
		if err != nil {
			return nil, err
		}
		return &ClassBody{NodeInfo: r.info(), Body: body}, nil

	case "MethodDefinition":
		key, err := decodeExpr(r.Key)
		if err != nil {
			return nil, err
		}
		n, err := decodeNode(r.Value)
		if err != nil {
			return nil, err
		}
		fn, ok := n.(*FunctionExpression)
		if !ok {
			return nil, fmt.Errorf("estree: method value is %T, want FunctionExpression", n)
		}
		return &MethodDefinition{NodeInfo: r.info(), Key: key, Value: fn, Kind: r.Kind, Computed: r.Computed, Static: r.Static}, nil

	case "PropertyDefinition":
		key, err := decodeExpr(r.Key)
		if err != nil {
			return nil, err
		}
		value, err := decodeExpr(r.Value)
		if err != nil {
			return nil, err
		}
		return &PropertyDefinition{NodeInfo: r.info(), Key: key, Value: value, Computed: r.Computed, Static: r.Static}, nil

	case "ImportDeclaration":
		specs, err := decodeNodeList(r.Specifiers)
		if err != nil {
			return nil, err
		}
		src, err := decodeLiteral(r.Source)
		if err != nil {
			return nil, err
		}
		return &ImportDeclaration{NodeInfo: r.info(), Specifiers: specs, Source: src}, nil

	case "ImportSpecifier":
		imported, err := decodeNode(r.Imported)
		if err != nil {
			return nil, err
		}
		local, err := decodeIdent(r.Local)
		if err != nil {
			return nil, err
		}
		return &ImportSpecifier{NodeInfo: r.info(), Imported: imported, Local: local}, nil

	case "ImportDefaultSpecifier":
		local, err := decodeIdent(r.Local)
		if err != nil {
			return nil, err
		}
		return &ImportDefaultSpecifier{NodeInfo: r.info(), Local: local}, nil

	case "ImportNamespaceSpecifier":
		local, err := decodeIdent(r.Local)
		if err != nil {
			return nil, err
		}
		return &ImportNamespaceSpecifier{NodeInfo: r.info(), Local: local}, nil

	case "ExportNamedDeclaration":
		var decl Statement
		if !isNull(r.Declaration) {
			d, err := decodeStmt(r.Declaration)
			if err != nil {
				return nil, err
			}
			decl = d
		}
		specs, err := decodeList[*ExportSpecifier](r.Specifiers, "export specifier")
		if err != nil {
			return nil, err
		}
		src, err := decodeLiteral(r.Source)
		if err != nil {
			return nil, err
		}
		return &ExportNamedDeclaration{NodeInfo: r.info(), Declaration: decl, Specifiers: specs, Source: src}, nil

	case "ExportSpecifier":
		local, err := decodeNode(r.Local)
		if err != nil {
			return nil, err
		}
		exported, err := decodeNode(r.Exported)
		if err != nil {
			return nil, err
		}
		return &ExportSpecifier{NodeInfo: r.info(), Local: local, Exported: exported}, nil

	case "ExportDefaultDeclaration":
		decl, err := decodeNode(r.Declaration)
		if err != nil {
			return nil, err
		}
		return &ExportDefaultDeclaration{NodeInfo: r.info(), Declaration: decl}, nil

	case "ExportAllDeclaration":
		exported, err := decodeNode(r.Exported)
		if err != nil {
			return nil, err
		}
		src, err := decodeLiteral(r.Source)
		if err != nil {
			return nil, err
		}
		return &ExportAllDeclaration{NodeInfo: r.info(), Exported: exported, Source: src}, nil

	case "Identifier":
		return &Identifier{NodeInfo: r.info(), Name: r.Name}, nil

	case "PrivateIdentifier":
		return &PrivateIdentifier{NodeInfo: r.info(), Name: r.Name}, nil

	case "Literal":
		var value any
		if !isNull(r.Value) {
			if err := json.Unmarshal(r.Value, &value); err != nil {
				return nil, fmt.Errorf("estree: literal value: %w", err)
			}
			// Regex literal values arrive as empty objects; only Raw is
			// meaningful for them.
			if _, ok := value.(map[string]any); ok {
				value = nil
			}
		}
		return &Literal{NodeInfo: r.info(), Value: value, Raw: r.Raw}, nil

	case "ThisExpression":
		return &ThisExpression{NodeInfo: r.info()}, nil

	case "Super":
		return &Super{NodeInfo: r.info()}, nil

	case "ArrayExpression":
		elems, err := decodeExprList(r.Elements)
		if err != nil {
			return nil, err
		}
		return &ArrayExpression{NodeInfo: r.info(), Elements: elems}, nil

	case "ObjectExpression":
		props, err := decodeNodeList(r.Properties)
		if err != nil {
			return nil, err
		}
		return &ObjectExpression{NodeInfo: r.info(), Properties: props}, nil

	case "Property":
		key, err := decodeExpr(r.Key)
		if err != nil {
			return nil, err
		}
		value, err := decodeNode(r.Value)
		if err != nil {
			return nil, err
		}
		return &Property{NodeInfo: r.info(), Key: key, Value: value, Kind: r.Kind, Method: r.Method, Shorthand: r.Shorthand, Computed: r.Computed}, nil

	case "FunctionExpression":
		id, err := decodeIdent(r.ID)
		if err != nil {
			return nil, err
		}
		params, err := decodePatternList(r.Params)
		if err != nil {
			return nil, err
		}
		body, err := decodeBlock(r.Body)
		if err != nil {
			return nil, err
		}
		return &FunctionExpression{NodeInfo: r.info(), ID: id, Params: params, Body: body, Generator: r.Generator, Async: r.Async}, nil

	case "ArrowFunctionExpression":
		params, err := decodePatternList(r.Params)
		if err != nil {
			return nil, err
		}
		body, err := decodeNode(r.Body)
		if err != nil {
			return nil, err
		}
		return &ArrowFunctionExpression{NodeInfo: r.info(), Params: params, Body: body, Async: r.Async}, nil

	case "UnaryExpression":
		arg, err := decodeExpr(r.Argument)
		if err != nil {
			return nil, err
		}
		return &UnaryExpression{NodeInfo: r.info(), Operator: r.Operator, Prefix: r.Prefix, Argument: arg}, nil

	case "UpdateExpression":
		arg, err := decodeExpr(r.Argument)
		if err != nil {
			return nil, err
		}
		return &UpdateExpression{NodeInfo: r.info(), Operator: r.Operator, Prefix: r.Prefix, Argument: arg}, nil

	case "BinaryExpression", "LogicalExpression":
		left, err := decodeExpr(r.Left)
		if err != nil {
			return nil, err
		}
		right, err := decodeExpr(r.Right)
		if err != nil {
			return nil, err
		}
		if r.Type == "BinaryExpression" {
			return &BinaryExpression{NodeInfo: r.info(), Operator: r.Operator, Left: left, Right: right}, nil
		}
		return &LogicalExpression{NodeInfo: r.info(), Operator: r.Operator, Left: left, Right: right}, nil

	case "AssignmentExpression":
		left, err := decodeNode(r.Left)
		if err != nil {
			return nil, err
		}
		right, err := decodeExpr(r.Right)
		if err != nil {
			return nil, err
		}
		return &AssignmentExpression{NodeInfo: r.info(), Operator: r.Operator, Left: left, Right: right}, nil

	case "ConditionalExpression":
		test, err := decodeExpr(r.Test)
		if err != nil {
			return nil, err
		}
		cons, err := decodeExpr(r.Consequent)
		if err != nil {
			return nil, err
		}
		alt, err := decodeExpr(r.Alternate)
		if err != nil {
			return nil, err
		}
		return &ConditionalExpression{NodeInfo: r.info(), Test: test, Consequent: cons, Alternate: alt}, nil

	case "CallExpression":
		callee, err := decodeExpr(r.Callee)
		if err != nil {
			return nil, err
		}
		args, err := decodeExprList(r.Arguments)
		if err != nil {
			return nil, err
		}
		return &CallExpression{NodeInfo: r.info(), Callee: callee, Arguments: args, Optional: r.Optional}, nil

	case "NewExpression":
		callee, err := decodeExpr(r.Callee)
		if err != nil {
			return nil, err
		}
		args, err := decodeExprList(r.Arguments)
		if err != nil {
			return nil, err
		}
		return &NewExpression{NodeInfo: r.info(), Callee: callee, Arguments: args}, nil

	case "MemberExpression":
		obj, err := decodeExpr(r.Object)
		if err != nil {
			return nil, err
		}
		prop, err := decodeExpr(r.Property)
		if err != nil {
			return nil, err
		}
		return &MemberExpression{NodeInfo: r.info(), Object: obj, Property: prop, Computed: r.Computed, Optional: r.Optional}, nil

	case "SequenceExpression":
		exprs, err := decodeExprList(r.Expressions)
		if err != nil {
			return nil, err
		}
		return &SequenceExpression{NodeInfo: r.info(), Expressions: exprs}, nil

	case "SpreadElement":
		arg, err := decodeExpr(r.Argument)
		if err != nil {
			return nil, err
		}
		return &SpreadElement{NodeInfo: r.info(), Argument: arg}, nil

	case "TemplateLiteral":
		quasis, err := decodeList[*TemplateElement](r.Quasis, "template element")
		if err != nil {
			return nil, err
		}
		exprs, err := decodeExprList(r.Expressions)
		if err != nil {
			return nil, err
		}
		return &TemplateLiteral{NodeInfo: r.info(), Quasis: quasis, Expressions: exprs}, nil

	case "TemplateElement":
		var value struct {
			Raw    string `json:"raw"`
			Cooked string `json:"cooked"`
		}
		if !isNull(r.Value) {
			if err := json.Unmarshal(r.Value, &value); err != nil {
				return nil, fmt.Errorf("estree: template element value: %w", err)
			}
		}
		return &TemplateElement{NodeInfo: r.info(), Raw: value.Raw, Cooked: value.Cooked, Tail: r.Tail}, nil

	case "TaggedTemplateExpression":
		tag, err := decodeExpr(r.Tag)
		if err != nil {
			return nil, err
		}
		n, err := decodeNode(r.Quasi)
		if err != nil {
			return nil, err
		}
		quasi, ok := n.(*TemplateLiteral)
		if !ok {
			return nil, fmt.Errorf("estree: tagged template quasi is %T, want TemplateLiteral", n)
		}
		return &TaggedTemplateExpression{NodeInfo: r.info(), Tag: tag, Quasi: quasi}, nil

	case "YieldExpression":
		arg, err := decodeExpr(r.Argument)
		if err != nil {
			return nil, err
		}
		return &YieldExpression{NodeInfo: r.info(), Argument: arg, Delegate: r.Delegate}, nil

	case "AwaitExpression":
		arg, err := decodeExpr(r.Argument)
		if err != nil {
			return nil, err
		}
		return &AwaitExpression{NodeInfo: r.info(), Argument: arg}, nil

	case "MetaProperty":
		meta, err := decodeIdent(r.Meta)
		if err != nil {
			return nil, err
		}
		prop, err := decodeIdent(r.Property)
		if err != nil {
			return nil, err
		}
		return &MetaProperty{NodeInfo: r.info(), Meta: meta, Property: prop}, nil

	case "ChainExpression":
		e, err := decodeExpr(r.Expression)
		if err != nil {
			return nil, err
		}
		return &ChainExpression{NodeInfo: r.info(), Expression: e}, nil

	case "ObjectPattern":
		props, err := decodeNodeList(r.Properties)
		if err != nil {
			return nil, err
		}
		return &ObjectPattern{NodeInfo: r.info(), Properties: props}, nil

	case "ArrayPattern":
		elems, err := decodePatternList(r.Elements)
		if err != nil {
			return nil, err
		}
		return &ArrayPattern{NodeInfo: r.info(), Elements: elems}, nil

	case "AssignmentPattern":
		left, err := decodePattern(r.Left)
		if err != nil {
			return nil, err
		}
		right, err := decodeExpr(r.Right)
		if err != nil {
			return nil, err
		}
		return &AssignmentPattern{NodeInfo: r.info(), Left: left, Right: right}, nil

	case "RestElement":
		arg, err := decodePattern(r.Argument)
		if err != nil {
			return nil, err
		}
		return &RestElement{NodeInfo: r.info(), Argument: arg}, nil
	}
	return nil, fmt.Errorf("estree: unsupported node type %q", r.Type)
}

func decodeExpr(raw json.RawMessage) (Expression, error) {
	n, err := decodeNode(raw)
	if err != nil || n == nil {
		return nil, err
	}
	e, ok := n.(Expression)
	if !ok {
		return nil, fmt.Errorf("estree: %T is not an expression", n)
	}
	return e, nil
}

func decodeStmt(raw json.RawMessage) (Statement, error) {
	n, err := decodeNode(raw)
	if err != nil || n == nil {
		return nil, err
	}
	s, ok := n.(Statement)
	if !ok {
		return nil, fmt.Errorf("estree: %T is not a statement", n)
	}
	return s, nil
}

func decodePattern(raw json.RawMessage) (Pattern, error) {
	n, err := decodeNode(raw)
	if err != nil || n == nil {
		return nil, err
	}
	p, ok := n.(Pattern)
	if !ok {
		return nil, fmt.Errorf("estree: %T is not a binding pattern", n)
	}
	return p, nil
}

func decodeIdent(raw json.RawMessage) (*Identifier, error) {
	n, err := decodeNode(raw)
	if err != nil || n == nil {
		return nil, err
	}
	id, ok := n.(*Identifier)
	if !ok {
		return nil, fmt.Errorf("estree: %T is not an identifier", n)
	}
	return id, nil
}

func decodeLiteral(raw json.RawMessage) (*Literal, error) {
	n, err := decodeNode(raw)
	if err != nil || n == nil {
		return nil, err
	}
	lit, ok := n.(*Literal)
	if !ok {
		return nil, fmt.Errorf("estree: %T is not a literal", n)
	}
	return lit, nil
}

func decodeBlock(raw json.RawMessage) (*BlockStatement, error) {
	n, err := decodeNode(raw)
	if err != nil || n == nil {
		return nil, err
	}
	b, ok := n.(*BlockStatement)
	if !ok {
		return nil, fmt.Errorf("estree: %T is not a block statement", n)
	}
	return b, nil
}

func decodeClassBody(raw json.RawMessage) (*ClassBody, error) {
	n, err := decodeNode(raw)
	if err != nil || n == nil {
		return nil, err
	}
	b, ok := n.(*ClassBody)
	if !ok {
		return nil, fmt.Errorf("estree: %T is not a class body", n)
	}
	return b, nil
}

// decodeList decodes a homogeneous node list, preserving nil holes.
func decodeList[T Node](raws []json.RawMessage, what string) ([]T, error) {
	if raws == nil {
		return nil, nil
	}
	out := make([]T, len(raws))
	for i, raw := range raws {
		if isNull(raw) {
			continue
		}
		n, err := decodeNode(raw)
		if err != nil {
			return nil, err
		}
		v, ok := n.(T)
		if !ok {
			return nil, fmt.Errorf("estree: %T is not a %s", n, what)
		}
		out[i] = v
	}
	return out, nil
}

func decodeNodeList(raws []json.RawMessage) ([]Node, error) {
	return decodeList[Node](raws, "node")
}

func decodeStmtList(raw json.RawMessage) ([]Statement, error) {
	if isNull(raw) {
		return nil, nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("estree: statement list: %w", err)
	}
	return decodeList[Statement](items, "statement")
}

func decodeExprList(raws []json.RawMessage) ([]Expression, error) {
	return decodeList[Expression](raws, "expression")
}

func decodePatternList(raws []json.RawMessage) ([]Pattern, error) {
	return decodeList[Pattern](raws, "binding pattern")
}
