// Copyright © 2026 The escope authors

package lint

import (
	"fmt"
	"sort"
	"strings"

	"github.com/estools-go/escope/ast"
	"github.com/estools-go/escope/scope"
)

// AnalyzerNoUndef reports reads of names that never resolve to a
// declaration. Unresolved writes are left to no-implicit-globals so a
// single undeclared assignment does not produce two findings.
var AnalyzerNoUndef = &Analyzer{
	Name:     "no-undef",
	Doc:      "Report reads of undeclared variables.\n\nA reference that escapes every scope unresolved names a variable the program never declares. Reads of such names throw a ReferenceError at runtime unless the host environment happens to provide them. Declare the name, or list it under `globals` or an `envs` preset in the configuration if the environment supplies it.",
	Severity: SeverityError,
	Run: func(pass *Pass) error {
		global := pass.Scopes.GlobalScope
		if global == nil {
			return nil
		}
		for _, ref := range global.Through {
			if !ref.IsRead() {
				continue
			}
			if pass.Globals[ref.Identifier.Name] {
				continue
			}
			pass.Reportf(ref.Identifier, "'%s' is not declared", ref.Identifier.Name)
		}
		return nil
	},
}

// AnalyzerNoImplicitGlobals reports bindings that leak onto the global
// object: assignments to undeclared names and script-level var or
// function declarations.
var AnalyzerNoImplicitGlobals = &Analyzer{
	Name: "no-implicit-globals",
	Doc:  "Report bindings that become properties of the global object.\n\nAssigning to an undeclared name in sloppy mode creates a global variable as a side effect. Top-level `var` and `function` declarations in a script do the same. Both patterns make state visible to every other script on the page and are a common source of cross-file interference. Wrap the code in a module or a function, or declare the binding with `let` or `const`.",
	Run: func(pass *Pass) error {
		global := pass.Scopes.GlobalScope
		if global == nil {
			return nil
		}
		for _, v := range global.Implicit {
			for _, def := range v.Definitions {
				pass.ReportWithNotes(Diagnostic{
					Pos:     positionOf(def.Name),
					Message: fmt.Sprintf("assignment to undeclared name '%s' creates an implicit global", v.Name),
				}, "declare it with let, const, or var")
			}
		}
		for _, v := range global.Variables {
			for _, def := range v.Definitions {
				switch {
				case isVarDeclaration(def):
					pass.Reportf(def.Name, "top-level var '%s' becomes a global object property", v.Name)
				case def.Kind == scope.DefFunctionName:
					pass.Reportf(def.Name, "top-level function '%s' becomes a global object property", v.Name)
				}
			}
		}
		return nil
	},
}

// AnalyzerNoUnusedVars reports variables that are declared but never
// read. Write-only variables count as unused.
var AnalyzerNoUnusedVars = &Analyzer{
	Name: "no-unused-vars",
	Doc:  "Report variables that are never read.\n\nA binding with no read references is dead weight: either the code that was meant to use it is missing, or the declaration should be removed. Assignments alone do not count as use. Exported module bindings are exempt, as are names matching the configured ignore rules (`unused.ignore-parameters`, `unused.ignore-underscore-prefix`).",
	Run: func(pass *Pass) error {
		exported := exportedDeclNodes(pass.Program)
		cfg := pass.Config.Unused
		for _, v := range pass.Scopes.Variables {
			if len(v.Definitions) == 0 {
				continue // the implicit arguments binding
			}
			if v.Scope.Kind == scope.FunctionExpressionName || v.Scope.Kind == scope.Class {
				continue // self-name bindings mirror an outer declaration
			}
			if cfg.IgnoreUnderscorePrefix && strings.HasPrefix(v.Name, "_") {
				continue
			}
			if cfg.IgnoreParameters && allParameters(v) {
				continue
			}
			if isExported(v, exported) {
				continue
			}
			read := false
			written := false
			for _, ref := range v.References {
				if ref.IsRead() {
					read = true
					break
				}
				if ref.IsWrite() && !ref.Init {
					written = true
				}
			}
			if read {
				continue
			}
			def := v.Definitions[0]
			if written {
				pass.Reportf(def.Name, "'%s' is assigned but never read", v.Name)
			} else {
				pass.Reportf(def.Name, "'%s' is declared but never used", v.Name)
			}
		}
		return nil
	},
}

// AnalyzerNoShadow reports inner declarations that hide an outer
// binding of the same name.
var AnalyzerNoShadow = &Analyzer{
	Name: "no-shadow",
	Doc:  "Report declarations that shadow an outer binding.\n\nWhen an inner scope declares a name that an enclosing scope also declares, references inside the inner scope silently bind to the inner variable. Readers expecting the outer binding get the wrong one, and the outer value becomes unreachable in that region. Rename one of the two. Bindings introduced by the same declaration, such as a class name and its inner self-binding, are not reported against each other.",
	Run: func(pass *Pass) error {
		for _, s := range pass.Scopes.Scopes {
			if s.Upper == nil {
				continue
			}
			for _, v := range s.Variables {
				if len(v.Definitions) == 0 {
					continue
				}
				outer := s.Upper.Lookup(v.Name)
				if outer == nil || len(outer.Definitions) == 0 {
					continue
				}
				if sameDeclaration(v, outer) {
					continue
				}
				def := v.Definitions[0]
				d := Diagnostic{
					Pos:     positionOf(def.Name),
					Message: fmt.Sprintf("'%s' shadows a declaration in the enclosing %s scope", v.Name, outer.Scope.Kind),
				}
				if pos := positionOf(outer.Definitions[0].Name); pos.Line > 0 {
					pass.ReportWithNotes(d, fmt.Sprintf("shadowed declaration is on line %d", pos.Line))
				} else {
					pass.Report(d)
				}
			}
		}
		return nil
	},
}

// AnalyzerNoRedeclare reports names declared more than once in the same
// scope.
var AnalyzerNoRedeclare = &Analyzer{
	Name: "no-redeclare",
	Doc:  "Report variables declared more than once in one scope.\n\nRepeated `var` declarations, a `function` followed by a `var` of the same name, or duplicate parameters all collapse into a single binding. The later declarations add nothing and usually indicate a copy-paste mistake or two unrelated uses of one name.",
	Run: func(pass *Pass) error {
		for _, v := range pass.Scopes.Variables {
			if len(v.Definitions) < 2 {
				continue
			}
			first := positionOf(v.Definitions[0].Name)
			for _, def := range v.Definitions[1:] {
				d := Diagnostic{
					Pos:     positionOf(def.Name),
					Message: fmt.Sprintf("'%s' is already declared", v.Name),
				}
				if first.Line > 0 {
					pass.ReportWithNotes(d, fmt.Sprintf("first declared on line %d", first.Line))
				} else {
					pass.Report(d)
				}
			}
		}
		return nil
	},
}

// AnalyzerNoEval reports scopes whose name set can change at runtime
// because of a direct eval call.
var AnalyzerNoEval = &Analyzer{
	Name: "no-eval",
	Doc:  "Report scopes made dynamic by direct eval.\n\nA direct `eval` call can declare new variables in the calling function's scope, so no static analysis of that scope is sound: resolution results, unused findings, and shadowing reports may all be wrong there. It also blocks engine optimizations. Use an indirect call `(0, eval)(code)` if global evaluation is really needed.",
	Run: func(pass *Pass) error {
		for _, s := range pass.Scopes.Scopes {
			if !s.ContainsDirectEval {
				continue
			}
			pass.Reportf(s.Block, "direct eval can extend the %s scope at runtime", s.Kind)
		}
		return nil
	},
}

func isVarDeclaration(def *scope.Definition) bool {
	return def.Kind == scope.DefVariable && def.DeclKind == ast.DeclVar
}

func allParameters(v *scope.Variable) bool {
	for _, def := range v.Definitions {
		if def.Kind != scope.DefParameter {
			return false
		}
	}
	return true
}

// sameDeclaration reports whether the two variables share a declaring
// node, as a class name and its inner self-binding do.
func sameDeclaration(a, b *scope.Variable) bool {
	for _, da := range a.Definitions {
		for _, db := range b.Definitions {
			if da.Node != nil && da.Node == db.Node {
				return true
			}
		}
	}
	return false
}

// exportedDeclNodes collects the declaration nodes named by export
// statements so no-unused-vars can exempt their bindings.
func exportedDeclNodes(program *ast.Program) map[ast.Node]bool {
	if program == nil {
		return nil
	}
	var exported map[ast.Node]bool
	mark := func(n ast.Node) {
		if n == nil {
			return
		}
		if exported == nil {
			exported = make(map[ast.Node]bool)
		}
		exported[n] = true
	}
	for _, st := range program.Body {
		switch decl := st.(type) {
		case *ast.ExportNamedDeclaration:
			if decl.Declaration != nil {
				mark(decl.Declaration)
			}
		case *ast.ExportDefaultDeclaration:
			mark(decl.Declaration)
		}
	}
	return exported
}

func isExported(v *scope.Variable, exported map[ast.Node]bool) bool {
	if exported == nil {
		return false
	}
	for _, def := range v.Definitions {
		if exported[def.Node] || exported[def.Parent] {
			return true
		}
	}
	return false
}

// AnalyzerNames returns a sorted list of all default analyzer names.
func AnalyzerNames() []string {
	analyzers := DefaultAnalyzers()
	names := make([]string, len(analyzers))
	for i, a := range analyzers {
		names[i] = a.Name
	}
	sort.Strings(names)
	return names
}

// AnalyzerDoc returns a formatted documentation string for all analyzers.
func AnalyzerDoc() string {
	var b strings.Builder
	for _, a := range DefaultAnalyzers() {
		fmt.Fprintf(&b, "  %s\n", a.Name)
		lines := strings.Split(a.Doc, "\n")
		fmt.Fprintf(&b, "    %s\n\n", lines[0])
	}
	return b.String()
}
