// Copyright © 2026 The escope authors

package lint

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/estools-go/escope/ast"
	"github.com/estools-go/escope/scope"
)

func ident(name string) *ast.Identifier { return &ast.Identifier{Name: name} }

// identAt attaches a loc block so diagnostics carry line numbers.
func identAt(name string, line, col int) *ast.Identifier {
	return &ast.Identifier{
		NodeInfo: ast.NodeInfo{Loc: &ast.SourceLocation{
			Start: ast.Position{Line: line, Column: col},
			End:   ast.Position{Line: line, Column: col + len(name)},
		}},
		Name: name,
	}
}

func num(v float64) *ast.Literal {
	return &ast.Literal{Value: v, Raw: fmt.Sprintf("%g", v)}
}

func exprStmt(e ast.Expression) *ast.ExpressionStatement {
	return &ast.ExpressionStatement{Expression: e}
}

func script(stmts ...ast.Statement) *ast.Program {
	return &ast.Program{SourceType: ast.SourceTypeScript, Body: stmts}
}

func moduleProgram(stmts ...ast.Statement) *ast.Program {
	return &ast.Program{SourceType: ast.SourceTypeModule, Body: stmts}
}

func declarator(id ast.Pattern, init ast.Expression) *ast.VariableDeclarator {
	return &ast.VariableDeclarator{ID: id, Init: init}
}

func varDecl(kind ast.DeclarationKind, decls ...*ast.VariableDeclarator) *ast.VariableDeclaration {
	return &ast.VariableDeclaration{Kind: kind, Declarations: decls}
}

func fnDecl(name *ast.Identifier, params []ast.Pattern, body ...ast.Statement) *ast.FunctionDeclaration {
	return &ast.FunctionDeclaration{ID: name, Params: params, Body: &ast.BlockStatement{Body: body}}
}

func call(callee ast.Expression, args ...ast.Expression) *ast.CallExpression {
	return &ast.CallExpression{Callee: callee, Arguments: args}
}

func assign(left ast.Node, right ast.Expression) *ast.AssignmentExpression {
	return &ast.AssignmentExpression{Operator: "=", Left: left, Right: right}
}

// lintProgram runs all default analyzers over a built tree.
func lintProgram(t *testing.T, program *ast.Program) []Diagnostic {
	t.Helper()
	l := &Linter{Analyzers: DefaultAnalyzers()}
	diags, err := l.LintProgram(program, "test.js")
	require.NoError(t, err)
	return diags
}

// lintCheck runs a single analyzer over a built tree.
func lintCheck(t *testing.T, analyzer *Analyzer, program *ast.Program) []Diagnostic {
	t.Helper()
	l := &Linter{Analyzers: []*Analyzer{analyzer}}
	diags, err := l.LintProgram(program, "test.js")
	require.NoError(t, err)
	return diags
}

// lintCheckCfg runs a single analyzer with a configuration applied.
func lintCheckCfg(t *testing.T, analyzer *Analyzer, cfg *Config, program *ast.Program) []Diagnostic {
	t.Helper()
	globals, err := cfg.GlobalSet()
	require.NoError(t, err)
	l := &Linter{Analyzers: []*Analyzer{analyzer}, config: cfg, globals: globals}
	diags, err := l.LintProgram(program, "test.js")
	require.NoError(t, err)
	return diags
}

// assertHasDiag checks that at least one diagnostic contains the given substring.
func assertHasDiag(t *testing.T, diags []Diagnostic, substr string) {
	t.Helper()
	for _, d := range diags {
		if strings.Contains(d.Message, substr) {
			return
		}
	}
	var msgs []string
	for _, d := range diags {
		msgs = append(msgs, d.String())
	}
	t.Errorf("expected diagnostic containing %q, got: %v", substr, msgs)
}

// assertNoDiags checks that there are no diagnostics.
func assertNoDiags(t *testing.T, diags []Diagnostic) {
	t.Helper()
	if len(diags) > 0 {
		var msgs []string
		for _, d := range diags {
			msgs = append(msgs, d.String())
		}
		t.Errorf("expected no diagnostics, got %d: %v", len(diags), msgs)
	}
}

// assertDiagOnLine checks that a diagnostic exists on the given line with the given substring.
func assertDiagOnLine(t *testing.T, diags []Diagnostic, line int, substr string) {
	t.Helper()
	for _, d := range diags {
		if d.Pos.Line == line && strings.Contains(d.Message, substr) {
			return
		}
	}
	var msgs []string
	for _, d := range diags {
		msgs = append(msgs, fmt.Sprintf("line %d: %s", d.Pos.Line, d.Message))
	}
	t.Errorf("expected diagnostic on line %d containing %q, got: %v", line, substr, msgs)
}

// --- Position.String() ---

func TestPosition_String_FileOnly(t *testing.T) {
	p := Position{File: "test.js"}
	assert.Equal(t, "test.js", p.String())
}

func TestPosition_String_FileLine(t *testing.T) {
	p := Position{File: "test.js", Line: 10}
	assert.Equal(t, "test.js:10", p.String())
}

func TestPosition_String_FileLineCol(t *testing.T) {
	p := Position{File: "test.js", Line: 10, Col: 5}
	assert.Equal(t, "test.js:10:5", p.String())
}

// --- Diagnostic.String() ---

func TestDiagnostic_String(t *testing.T) {
	d := Diagnostic{
		Pos:      Position{File: "test.js", Line: 10},
		Message:  "'x' is not declared",
		Analyzer: "no-undef",
	}
	assert.Equal(t, "test.js:10: 'x' is not declared (no-undef)", d.String())
}

func TestDiagnostic_String_WithNotes(t *testing.T) {
	d := Diagnostic{
		Pos:      Position{File: "test.js", Line: 3, Col: 1},
		Message:  "'x' is already declared",
		Analyzer: "no-redeclare",
		Notes:    []string{"first declared on line 1"},
	}
	assert.Equal(t, "test.js:3:1: 'x' is already declared (no-redeclare)\n  = note: first declared on line 1", d.String())
}

// --- Severity ---

func TestSeverity_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(SeverityError)
	require.NoError(t, err)
	assert.Equal(t, `"error"`, string(data))

	data, err = json.Marshal(severityUnset)
	require.NoError(t, err)
	assert.Equal(t, `"warning"`, string(data))
}

func TestSeverity_UnmarshalJSON(t *testing.T) {
	var s Severity
	require.NoError(t, json.Unmarshal([]byte(`"info"`), &s))
	assert.Equal(t, SeverityInfo, s)

	assert.Error(t, json.Unmarshal([]byte(`"fatal"`), &s))
}

// --- Analyzer error propagation ---

func TestLintProgram_AnalyzerError(t *testing.T) {
	errAnalyzer := &Analyzer{
		Name: "fail",
		Doc:  "Always fails.",
		Run: func(pass *Pass) error {
			return fmt.Errorf("intentional failure")
		},
	}
	l := &Linter{Analyzers: []*Analyzer{errAnalyzer}}
	_, err := l.LintProgram(script(), "test.js")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "intentional failure")
	assert.Contains(t, err.Error(), "fail")
}

// --- no-undef ---

func TestNoUndef_Positive_UnresolvedRead(t *testing.T) {
	program := script(exprStmt(identAt("missing", 1, 0)))
	diags := lintCheck(t, AnalyzerNoUndef, program)
	require.Len(t, diags, 1)
	assertHasDiag(t, diags, "'missing' is not declared")
	assert.Equal(t, "test.js", diags[0].Pos.File)
	assert.Equal(t, 1, diags[0].Pos.Line)
	assert.Equal(t, SeverityError, diags[0].Severity)
}

func TestNoUndef_Positive_UpdateOfUndeclared(t *testing.T) {
	program := script(exprStmt(&ast.UpdateExpression{Operator: "++", Argument: ident("count")}))
	diags := lintCheck(t, AnalyzerNoUndef, program)
	require.Len(t, diags, 1)
	assertHasDiag(t, diags, "'count' is not declared")
}

func TestNoUndef_Negative_Declared(t *testing.T) {
	program := script(
		varDecl(ast.DeclVar, declarator(ident("x"), num(1))),
		exprStmt(ident("x")),
	)
	assertNoDiags(t, lintCheck(t, AnalyzerNoUndef, program))
}

func TestNoUndef_Negative_Builtin(t *testing.T) {
	program := script(exprStmt(ident("Math")))
	assertNoDiags(t, lintCheck(t, AnalyzerNoUndef, program))
}

func TestNoUndef_Negative_WriteOnly(t *testing.T) {
	// Undeclared writes are no-implicit-globals territory.
	program := script(exprStmt(assign(ident("x"), num(1))))
	assertNoDiags(t, lintCheck(t, AnalyzerNoUndef, program))
}

func TestNoUndef_Negative_ConfiguredGlobal(t *testing.T) {
	program := script(exprStmt(ident("myGlobal")))
	cfg := &Config{Globals: []string{"myGlobal"}}
	assertNoDiags(t, lintCheckCfg(t, AnalyzerNoUndef, cfg, program))
}

func TestNoUndef_EnvPreset(t *testing.T) {
	program := script(exprStmt(ident("document")))

	diags := lintCheck(t, AnalyzerNoUndef, program)
	assert.Len(t, diags, 1)

	cfg := &Config{Envs: []string{"browser"}}
	assertNoDiags(t, lintCheckCfg(t, AnalyzerNoUndef, cfg, program))
}

// --- no-implicit-globals ---

func TestNoImplicitGlobals_Positive_Assignment(t *testing.T) {
	program := script(exprStmt(assign(identAt("x", 2, 0), num(1))))
	diags := lintCheck(t, AnalyzerNoImplicitGlobals, program)
	require.Len(t, diags, 1)
	assertHasDiag(t, diags, "implicit global")
	assert.Equal(t, 2, diags[0].Pos.Line)
	assert.NotEmpty(t, diags[0].Notes)
}

func TestNoImplicitGlobals_Positive_TopLevelVar(t *testing.T) {
	program := script(varDecl(ast.DeclVar, declarator(ident("x"), num(1))))
	diags := lintCheck(t, AnalyzerNoImplicitGlobals, program)
	require.Len(t, diags, 1)
	assertHasDiag(t, diags, "top-level var 'x'")
}

func TestNoImplicitGlobals_Positive_TopLevelFunction(t *testing.T) {
	program := script(fnDecl(ident("f"), nil))
	diags := lintCheck(t, AnalyzerNoImplicitGlobals, program)
	require.Len(t, diags, 1)
	assertHasDiag(t, diags, "top-level function 'f'")
}

func TestNoImplicitGlobals_Negative_LexicalDeclaration(t *testing.T) {
	program := script(varDecl(ast.DeclLet, declarator(ident("y"), num(1))))
	assertNoDiags(t, lintCheck(t, AnalyzerNoImplicitGlobals, program))
}

func TestNoImplicitGlobals_Negative_Module(t *testing.T) {
	program := moduleProgram(varDecl(ast.DeclVar, declarator(ident("x"), num(1))))
	assertNoDiags(t, lintCheck(t, AnalyzerNoImplicitGlobals, program))
}

func TestNoImplicitGlobals_Negative_FunctionLocal(t *testing.T) {
	program := script(
		fnDecl(ident("f"), nil,
			varDecl(ast.DeclVar, declarator(ident("local"), num(1))),
			exprStmt(assign(ident("local"), num(2))),
		),
		exprStmt(call(ident("f"))),
	)
	diags := lintCheck(t, AnalyzerNoImplicitGlobals, program)
	// Only the top-level f itself leaks.
	require.Len(t, diags, 1)
	assertHasDiag(t, diags, "'f'")
}

func TestNoImplicitGlobals_Negative_StrictMode(t *testing.T) {
	program := script(
		&ast.ExpressionStatement{
			Expression: &ast.Literal{Value: "use strict", Raw: `"use strict"`},
			Directive:  "use strict",
		},
		exprStmt(assign(ident("x"), num(1))),
	)
	assertNoDiags(t, lintCheck(t, AnalyzerNoImplicitGlobals, program))
}

// --- no-unused-vars ---

func TestNoUnusedVars_Positive_NeverUsed(t *testing.T) {
	program := script(varDecl(ast.DeclVar, declarator(identAt("x", 1, 4), num(1))))
	diags := lintCheck(t, AnalyzerNoUnusedVars, program)
	require.Len(t, diags, 1)
	assertHasDiag(t, diags, "'x' is declared but never used")
	assert.Equal(t, 1, diags[0].Pos.Line)
}

func TestNoUnusedVars_Positive_AssignedNeverRead(t *testing.T) {
	program := script(
		varDecl(ast.DeclVar, declarator(ident("x"), nil)),
		exprStmt(assign(ident("x"), num(2))),
	)
	diags := lintCheck(t, AnalyzerNoUnusedVars, program)
	require.Len(t, diags, 1)
	assertHasDiag(t, diags, "'x' is assigned but never read")
}

func TestNoUnusedVars_Positive_UnusedParameter(t *testing.T) {
	program := script(
		fnDecl(ident("f"), []ast.Pattern{ident("a"), ident("b")},
			&ast.ReturnStatement{Argument: ident("a")},
		),
		exprStmt(call(ident("f"))),
	)
	diags := lintCheck(t, AnalyzerNoUnusedVars, program)
	require.Len(t, diags, 1)
	assertHasDiag(t, diags, "'b' is declared but never used")
}

func TestNoUnusedVars_Positive_UnusedCatchBinding(t *testing.T) {
	program := script(&ast.TryStatement{
		Block:   &ast.BlockStatement{},
		Handler: &ast.CatchClause{Param: ident("e"), Body: &ast.BlockStatement{}},
	})
	diags := lintCheck(t, AnalyzerNoUnusedVars, program)
	require.Len(t, diags, 1)
	assertHasDiag(t, diags, "'e' is declared but never used")
}

func TestNoUnusedVars_Negative_Read(t *testing.T) {
	program := script(
		varDecl(ast.DeclVar, declarator(ident("x"), num(1))),
		exprStmt(ident("x")),
	)
	assertNoDiags(t, lintCheck(t, AnalyzerNoUnusedVars, program))
}

func TestNoUnusedVars_Negative_CalledFunction(t *testing.T) {
	program := script(
		fnDecl(ident("g"), nil),
		exprStmt(call(ident("g"))),
	)
	assertNoDiags(t, lintCheck(t, AnalyzerNoUnusedVars, program))
}

func TestNoUnusedVars_Negative_IgnoreParameters(t *testing.T) {
	program := script(
		fnDecl(ident("f"), []ast.Pattern{ident("unused")}),
		exprStmt(call(ident("f"))),
	)
	cfg := &Config{Unused: UnusedConfig{IgnoreParameters: true}}
	assertNoDiags(t, lintCheckCfg(t, AnalyzerNoUnusedVars, cfg, program))
}

func TestNoUnusedVars_Negative_UnderscorePrefix(t *testing.T) {
	program := script(varDecl(ast.DeclLet, declarator(ident("_ignored"), num(1))))

	diags := lintCheck(t, AnalyzerNoUnusedVars, program)
	assert.Len(t, diags, 1)

	cfg := &Config{Unused: UnusedConfig{IgnoreUnderscorePrefix: true}}
	assertNoDiags(t, lintCheckCfg(t, AnalyzerNoUnusedVars, cfg, program))
}

func TestNoUnusedVars_Negative_ExportedVar(t *testing.T) {
	program := moduleProgram(&ast.ExportNamedDeclaration{
		Declaration: varDecl(ast.DeclVar, declarator(ident("x"), num(1))),
	})
	assertNoDiags(t, lintCheck(t, AnalyzerNoUnusedVars, program))
}

func TestNoUnusedVars_Negative_ExportDefaultFunction(t *testing.T) {
	program := moduleProgram(&ast.ExportDefaultDeclaration{
		Declaration: fnDecl(ident("main"), nil),
	})
	assertNoDiags(t, lintCheck(t, AnalyzerNoUnusedVars, program))
}

func TestNoUnusedVars_Negative_FunctionExpressionName(t *testing.T) {
	program := script(exprStmt(call(&ast.FunctionExpression{
		ID:   ident("rec"),
		Body: &ast.BlockStatement{},
	})))
	assertNoDiags(t, lintCheck(t, AnalyzerNoUnusedVars, program))
}

func TestNoUnusedVars_ClassReportedOnce(t *testing.T) {
	// The outer class binding is unused; its inner self-binding must not
	// produce a second finding.
	program := script(&ast.ClassDeclaration{ID: ident("C"), Body: &ast.ClassBody{}})
	diags := lintCheck(t, AnalyzerNoUnusedVars, program)
	require.Len(t, diags, 1)
	assertHasDiag(t, diags, "'C' is declared but never used")
}

// --- no-shadow ---

func TestNoShadow_Positive_FunctionLocal(t *testing.T) {
	program := script(
		varDecl(ast.DeclVar, declarator(identAt("x", 1, 4), nil)),
		fnDecl(ident("f"), nil,
			varDecl(ast.DeclVar, declarator(identAt("x", 3, 6), num(1))),
		),
	)
	diags := lintCheck(t, AnalyzerNoShadow, program)
	require.Len(t, diags, 1)
	assertHasDiag(t, diags, "'x' shadows a declaration in the enclosing global scope")
	assert.Equal(t, 3, diags[0].Pos.Line)
	require.NotEmpty(t, diags[0].Notes)
	assert.Contains(t, diags[0].Notes[0], "line 1")
}

func TestNoShadow_Positive_Parameter(t *testing.T) {
	program := script(
		varDecl(ast.DeclVar, declarator(ident("y"), nil)),
		fnDecl(ident("g"), []ast.Pattern{ident("y")}),
	)
	diags := lintCheck(t, AnalyzerNoShadow, program)
	require.Len(t, diags, 1)
	assertHasDiag(t, diags, "'y' shadows")
}

func TestNoShadow_Positive_BlockScope(t *testing.T) {
	program := script(
		varDecl(ast.DeclLet, declarator(ident("a"), nil)),
		&ast.BlockStatement{Body: []ast.Statement{
			varDecl(ast.DeclLet, declarator(ident("a"), nil)),
		}},
	)
	diags := lintCheck(t, AnalyzerNoShadow, program)
	require.Len(t, diags, 1)
	assertHasDiag(t, diags, "enclosing global scope")
}

func TestNoShadow_Negative_ClassSelfBinding(t *testing.T) {
	program := script(&ast.ClassDeclaration{ID: ident("C"), Body: &ast.ClassBody{}})
	assertNoDiags(t, lintCheck(t, AnalyzerNoShadow, program))
}

func TestNoShadow_Negative_FunctionExpressionNameParam(t *testing.T) {
	// function f(f) {} introduces both bindings from one declaration.
	program := script(exprStmt(&ast.FunctionExpression{
		ID:     ident("f"),
		Params: []ast.Pattern{ident("f")},
		Body:   &ast.BlockStatement{},
	}))
	assertNoDiags(t, lintCheck(t, AnalyzerNoShadow, program))
}

func TestNoShadow_Negative_ImplicitArguments(t *testing.T) {
	program := script(
		fnDecl(ident("outer"), nil,
			fnDecl(ident("inner"), []ast.Pattern{ident("arguments")}),
		),
	)
	assertNoDiags(t, lintCheck(t, AnalyzerNoShadow, program))
}

func TestNoShadow_Negative_DistinctNames(t *testing.T) {
	program := script(
		varDecl(ast.DeclVar, declarator(ident("x"), nil)),
		fnDecl(ident("f"), nil,
			varDecl(ast.DeclVar, declarator(ident("y"), num(1))),
		),
	)
	assertNoDiags(t, lintCheck(t, AnalyzerNoShadow, program))
}

// --- no-redeclare ---

func TestNoRedeclare_Positive_VarVar(t *testing.T) {
	program := script(
		varDecl(ast.DeclVar, declarator(identAt("x", 1, 4), nil)),
		varDecl(ast.DeclVar, declarator(identAt("x", 2, 4), nil)),
	)
	diags := lintCheck(t, AnalyzerNoRedeclare, program)
	require.Len(t, diags, 1)
	assertHasDiag(t, diags, "'x' is already declared")
	assert.Equal(t, 2, diags[0].Pos.Line)
	require.NotEmpty(t, diags[0].Notes)
	assert.Contains(t, diags[0].Notes[0], "line 1")
}

func TestNoRedeclare_Positive_FunctionThenVar(t *testing.T) {
	program := script(
		fnDecl(ident("f"), nil),
		varDecl(ast.DeclVar, declarator(ident("f"), nil)),
	)
	diags := lintCheck(t, AnalyzerNoRedeclare, program)
	require.Len(t, diags, 1)
	assertHasDiag(t, diags, "'f' is already declared")
}

func TestNoRedeclare_Positive_DuplicateParams(t *testing.T) {
	program := script(fnDecl(ident("g"), []ast.Pattern{ident("a"), ident("a")}))
	diags := lintCheck(t, AnalyzerNoRedeclare, program)
	require.Len(t, diags, 1)
	assertHasDiag(t, diags, "'a' is already declared")
}

func TestNoRedeclare_Negative_ShadowIsNotRedeclare(t *testing.T) {
	program := script(
		varDecl(ast.DeclLet, declarator(ident("x"), nil)),
		&ast.BlockStatement{Body: []ast.Statement{
			varDecl(ast.DeclLet, declarator(ident("x"), nil)),
		}},
	)
	assertNoDiags(t, lintCheck(t, AnalyzerNoRedeclare, program))
}

// --- no-eval ---

func TestNoEval_Positive_Global(t *testing.T) {
	program := script(exprStmt(call(ident("eval"), &ast.Literal{Value: "x", Raw: `"x"`})))
	diags := lintCheck(t, AnalyzerNoEval, program)
	require.Len(t, diags, 1)
	assertHasDiag(t, diags, "direct eval can extend the global scope")
}

func TestNoEval_Positive_FunctionScope(t *testing.T) {
	program := script(
		fnDecl(ident("f"), nil,
			exprStmt(call(ident("eval"), &ast.Literal{Value: "x", Raw: `"x"`})),
		),
		exprStmt(call(ident("f"))),
	)
	diags := lintCheck(t, AnalyzerNoEval, program)
	require.Len(t, diags, 1)
	assertHasDiag(t, diags, "function scope")
}

func TestNoEval_Negative_MemberCall(t *testing.T) {
	program := script(
		varDecl(ast.DeclVar, declarator(ident("obj"), nil)),
		exprStmt(call(&ast.MemberExpression{Object: ident("obj"), Property: ident("eval")})),
	)
	assertNoDiags(t, lintCheck(t, AnalyzerNoEval, program))
}

func TestNoEval_Negative_TrackingDisabled(t *testing.T) {
	program := script(exprStmt(call(ident("eval"), &ast.Literal{Value: "x", Raw: `"x"`})))
	l := &Linter{
		Analyzers:    []*Analyzer{AnalyzerNoEval},
		ScopeOptions: &scope.Options{IgnoreEval: true},
	}
	diags, err := l.LintProgram(program, "test.js")
	require.NoError(t, err)
	assertNoDiags(t, diags)
}

// --- scope problems surface as diagnostics ---

func TestLintProgram_ScopeProblem(t *testing.T) {
	program := script(&ast.ImportDeclaration{
		Specifiers: []ast.Node{&ast.ImportDefaultSpecifier{Local: ident("d")}},
		Source:     &ast.Literal{Value: "mod", Raw: `"mod"`},
	})
	diags := lintProgram(t, program)
	require.Len(t, diags, 1)
	assert.Equal(t, "scope", diags[0].Analyzer)
	assert.Equal(t, SeverityError, diags[0].Severity)
	assert.Contains(t, diags[0].Message, "module")
}

// --- configuration ---

func TestParseConfig(t *testing.T) {
	cfg, err := ParseConfig([]byte(`
envs: [node]
globals:
  - myGlobal
analyzers:
  no-shadow:
    enabled: false
  no-eval:
    severity: error
unused:
  ignore-parameters: true
`))
	require.NoError(t, err)

	require.Contains(t, cfg.Analyzers, "no-shadow")
	require.NotNil(t, cfg.Analyzers["no-shadow"].Enabled)
	assert.False(t, *cfg.Analyzers["no-shadow"].Enabled)
	assert.Equal(t, SeverityError, cfg.Analyzers["no-eval"].Severity)
	assert.Equal(t, []string{"node"}, cfg.Envs)
	assert.Equal(t, []string{"myGlobal"}, cfg.Globals)
	assert.True(t, cfg.Unused.IgnoreParameters)
	assert.False(t, cfg.Unused.IgnoreUnderscorePrefix)
}

func TestParseConfig_BadSeverity(t *testing.T) {
	_, err := ParseConfig([]byte("analyzers:\n  no-eval:\n    severity: fatal\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown severity")
}

func TestConfig_GlobalSet(t *testing.T) {
	cfg := &Config{Envs: []string{"node"}, Globals: []string{"myGlobal"}}
	set, err := cfg.GlobalSet()
	require.NoError(t, err)
	assert.True(t, set["Math"])
	assert.True(t, set["process"])
	assert.True(t, set["myGlobal"])
	assert.False(t, set["document"])
}

func TestConfig_GlobalSet_UnknownEnv(t *testing.T) {
	cfg := &Config{Envs: []string{"dos"}}
	_, err := cfg.GlobalSet()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown environment "dos"`)
}

func TestEnvNames(t *testing.T) {
	assert.Equal(t, []string{"browser", "builtin", "node"}, EnvNames())
}

func TestNew_DisableAnalyzer(t *testing.T) {
	off := false
	l, err := New(&Config{Analyzers: map[string]AnalyzerConfig{
		"no-shadow": {Enabled: &off},
	}})
	require.NoError(t, err)
	assert.Len(t, l.Analyzers, 5)
	for _, a := range l.Analyzers {
		assert.NotEqual(t, "no-shadow", a.Name)
	}
}

func TestNew_SeverityOverrideCopies(t *testing.T) {
	l, err := New(&Config{Analyzers: map[string]AnalyzerConfig{
		"no-eval": {Severity: SeverityError},
	}})
	require.NoError(t, err)

	var overridden *Analyzer
	for _, a := range l.Analyzers {
		if a.Name == "no-eval" {
			overridden = a
		}
	}
	require.NotNil(t, overridden)
	assert.Equal(t, SeverityError, overridden.Severity)
	// The shared default must not have been mutated.
	assert.Equal(t, severityUnset, AnalyzerNoEval.Severity)
}

func TestNew_UnknownAnalyzer(t *testing.T) {
	_, err := New(&Config{Analyzers: map[string]AnalyzerConfig{"no-undeff": {}}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown analyzer")
}

func TestNew_NilConfig(t *testing.T) {
	l, err := New(nil)
	require.NoError(t, err)
	assert.Len(t, l.Analyzers, 6)
}

// --- LintSource ---

func TestLintSource(t *testing.T) {
	source := `{
		"type": "Program",
		"sourceType": "script",
		"body": [
			{
				"type": "ExpressionStatement",
				"expression": {
					"type": "Identifier",
					"name": "mystery",
					"loc": {"start": {"line": 1, "column": 0}, "end": {"line": 1, "column": 7}}
				}
			}
		]
	}`
	l, err := New(nil)
	require.NoError(t, err)
	diags, err := l.LintSource([]byte(source), "input.js")
	require.NoError(t, err)
	require.Len(t, diags, 1)
	assert.Equal(t, "no-undef", diags[0].Analyzer)
	assert.Equal(t, "input.js", diags[0].Pos.File)
	assert.Equal(t, 1, diags[0].Pos.Line)
}

func TestLintSource_DecodeError(t *testing.T) {
	l, err := New(nil)
	require.NoError(t, err)
	_, err = l.LintSource([]byte("{not json"), "bad.js")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad.js")
}

// --- output formatting ---

func TestFormatText(t *testing.T) {
	diags := []Diagnostic{
		{Pos: Position{File: "test.js", Line: 10}, Message: "'x' is not declared", Analyzer: "no-undef"},
		{Pos: Position{File: "test.js", Line: 20}, Message: "'y' is never used", Analyzer: "no-unused-vars"},
	}
	var buf bytes.Buffer
	FormatText(&buf, diags)
	output := buf.String()
	assert.Contains(t, output, "test.js:10: 'x' is not declared (no-undef)")
	assert.Contains(t, output, "test.js:20: 'y' is never used (no-unused-vars)")
}

func TestFormatJSON(t *testing.T) {
	diags := []Diagnostic{
		{Pos: Position{File: "test.js", Line: 10}, Message: "'x' is not declared", Analyzer: "no-undef", Severity: SeverityWarning},
	}
	var buf bytes.Buffer
	err := FormatJSON(&buf, diags)
	require.NoError(t, err)

	var parsed []Diagnostic
	err = json.Unmarshal(buf.Bytes(), &parsed)
	require.NoError(t, err)
	assert.Equal(t, diags, parsed)
}

// --- integration ---

func TestIntegration_SortedByLine(t *testing.T) {
	program := script(
		exprStmt(identAt("mystery", 1, 0)),
		varDecl(ast.DeclLet, declarator(identAt("dead", 5, 4), num(1))),
	)
	diags := lintProgram(t, program)
	assert.GreaterOrEqual(t, len(diags), 2)
	for i := 1; i < len(diags); i++ {
		assert.LessOrEqual(t, diags[i-1].Pos.Line, diags[i].Pos.Line,
			"diagnostics should be sorted by line")
	}
	assertDiagOnLine(t, diags, 1, "'mystery' is not declared")
	assertDiagOnLine(t, diags, 5, "'dead' is declared but never used")
}

func TestIntegration_CleanModule(t *testing.T) {
	program := moduleProgram(
		varDecl(ast.DeclConst, declarator(ident("limit"), num(10))),
		&ast.ExportNamedDeclaration{
			Declaration: fnDecl(ident("clamp"), []ast.Pattern{ident("n")},
				&ast.ReturnStatement{Argument: &ast.BinaryExpression{
					Operator: "+", Left: ident("n"), Right: ident("limit"),
				}},
			),
		},
	)
	assertNoDiags(t, lintProgram(t, program))
}

func TestEmptyProgram(t *testing.T) {
	assertNoDiags(t, lintProgram(t, script()))
}

// --- analyzer registry ---

func TestDefaultAnalyzers(t *testing.T) {
	analyzers := DefaultAnalyzers()
	assert.Len(t, analyzers, 6)
	names := AnalyzerNames()
	assert.Equal(t, []string{
		"no-eval",
		"no-implicit-globals",
		"no-redeclare",
		"no-shadow",
		"no-undef",
		"no-unused-vars",
	}, names)
}

func TestAnalyzerDoc(t *testing.T) {
	doc := AnalyzerDoc()
	assert.Contains(t, doc, "no-undef")
	assert.Contains(t, doc, "no-eval")
	assert.NotEmpty(t, doc)
}
