// Copyright © 2026 The escope authors

// Package lint provides static analysis for JavaScript scope graphs.
//
// The linter is modeled after go vet: each check is an independent Analyzer
// that receives an analyzed program and reports diagnostics. The framework
// handles decoding, scope analysis, running analyzers, collecting results,
// and formatting output.
//
// Analyzers are composable and extensible: embedders can define custom
// checks alongside the built-in set.
package lint

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/estools-go/escope/ast"
	"github.com/estools-go/escope/scope"
)

// Severity indicates the severity level of a lint diagnostic.
type Severity int

const (
	severityUnset Severity = iota // zero value means "use the analyzer default"
	SeverityError
	SeverityWarning
	SeverityInfo
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityInfo:
		return "info"
	default:
		return "unknown"
	}
}

// MarshalJSON serializes the severity as a JSON string. An unset severity
// marshals as "warning".
func (s Severity) MarshalJSON() ([]byte, error) {
	if s == severityUnset {
		return json.Marshal("warning")
	}
	return json.Marshal(s.String())
}

// UnmarshalJSON deserializes a severity from a JSON string.
func (s *Severity) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	return s.set(str)
}

func (s *Severity) set(str string) error {
	switch str {
	case "error":
		*s = SeverityError
	case "warning":
		*s = SeverityWarning
	case "info":
		*s = SeverityInfo
	default:
		return fmt.Errorf("unknown severity: %q", str)
	}
	return nil
}

// Analyzer defines a single lint check.
type Analyzer struct {
	// Name is a short identifier for this check (e.g. "no-undef").
	Name string

	// Doc is a human-readable description. The first line is a short summary.
	Doc string

	// Severity is the default severity for diagnostics from this analyzer.
	Severity Severity

	// Run executes the check. It should call pass.Report() for each finding.
	Run func(pass *Pass) error
}

// Pass provides context to a running analyzer.
type Pass struct {
	// Analyzer is the currently running check.
	Analyzer *Analyzer

	// Filename is the source file being analyzed.
	Filename string

	// Program is the decoded syntax tree.
	Program *ast.Program

	// Scopes is the resolved scope graph for Program.
	Scopes *scope.Manager

	// Globals holds the names the configuration declares as ambient.
	Globals map[string]bool

	// Config is the linter configuration. Never nil during a run.
	Config *Config

	// diagnostics collects reported findings.
	diagnostics []Diagnostic
}

// Report records a diagnostic finding.
func (p *Pass) Report(d Diagnostic) {
	d.Analyzer = p.Analyzer.Name
	if d.Severity == severityUnset {
		d.Severity = p.Analyzer.Severity
	}
	p.diagnostics = append(p.diagnostics, d)
}

// ReportWithNotes records a diagnostic with additional hint text.
func (p *Pass) ReportWithNotes(d Diagnostic, notes ...string) {
	d.Notes = append(d.Notes, notes...)
	p.Report(d)
}

// Reportf is a convenience for reporting a diagnostic at a node.
func (p *Pass) Reportf(node ast.Node, format string, args ...interface{}) {
	p.Report(Diagnostic{
		Pos:     positionOf(node),
		Message: fmt.Sprintf(format, args...),
	})
}

// positionOf extracts a display position from a node's loc block. Trees
// decoded without location tracking yield a file-only position.
func positionOf(node ast.Node) Position {
	if node == nil {
		return Position{}
	}
	loc := node.Location()
	if loc == nil {
		return Position{}
	}
	return Position{Line: loc.Start.Line, Col: loc.Start.Column + 1}
}

// Diagnostic is a single reported problem.
type Diagnostic struct {
	// Pos is the source location of the problem.
	Pos Position `json:"pos"`

	// Message is a human-readable description of the problem.
	Message string `json:"message"`

	// Analyzer is the name of the check that found this problem.
	Analyzer string `json:"analyzer"`

	// Severity is the severity level of the diagnostic.
	Severity Severity `json:"severity"`

	// Notes are optional hint text lines for the user.
	Notes []string `json:"notes,omitempty"`
}

// Position identifies a location in source code.
type Position struct {
	File string `json:"file"`
	Line int    `json:"line"`
	Col  int    `json:"col,omitempty"`
}

// String returns the position in file:line:col format.
func (p Position) String() string {
	if p.Line == 0 {
		return p.File
	}
	if p.Col > 0 {
		return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Col)
	}
	return fmt.Sprintf("%s:%d", p.File, p.Line)
}

// String returns the diagnostic in go vet style: file:line: message (analyzer)
// with optional note lines appended.
func (d Diagnostic) String() string {
	s := fmt.Sprintf("%s: %s (%s)", d.Pos, d.Message, d.Analyzer)
	for _, n := range d.Notes {
		s += "\n  = note: " + n
	}
	return s
}

// Linter runs a set of analyzers over ESTree documents.
type Linter struct {
	Analyzers []*Analyzer

	// ScopeOptions configures the scope analysis performed before the
	// analyzers run. Nil analyzes with defaults.
	ScopeOptions *scope.Options

	config  *Config
	globals map[string]bool
}

// New builds a linter from cfg: the default analyzers filtered and
// re-levelled per the configuration, with the configured global names
// resolved. A nil cfg enables every default analyzer.
func New(cfg *Config) (*Linter, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	globals, err := cfg.GlobalSet()
	if err != nil {
		return nil, err
	}
	defaults := DefaultAnalyzers()
	known := make(map[string]bool, len(defaults))
	for _, a := range defaults {
		known[a.Name] = true
	}
	for name := range cfg.Analyzers {
		if !known[name] {
			return nil, fmt.Errorf("unknown analyzer: %q", name)
		}
	}
	var enabled []*Analyzer
	for _, a := range defaults {
		ac := cfg.Analyzers[a.Name]
		if ac.Enabled != nil && !*ac.Enabled {
			continue
		}
		if ac.Severity != severityUnset {
			// Copy before overriding so the shared defaults stay intact.
			override := *a
			override.Severity = ac.Severity
			a = &override
		}
		enabled = append(enabled, a)
	}
	return &Linter{Analyzers: enabled, config: cfg, globals: globals}, nil
}

// LintSource decodes an ESTree JSON document and lints it.
func (l *Linter) LintSource(source []byte, filename string) ([]Diagnostic, error) {
	program, err := ast.DecodeProgram(source)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return l.LintProgram(program, filename)
}

// LintProgram analyzes a decoded program and returns all diagnostics.
func (l *Linter) LintProgram(program *ast.Program, filename string) ([]Diagnostic, error) {
	manager := scope.Analyze(program, l.ScopeOptions)

	var all []Diagnostic

	// Structural problems found during scope analysis surface ahead of
	// any analyzer findings.
	for _, problem := range manager.Problems {
		all = append(all, Diagnostic{
			Pos:      positionOf(problem.Node),
			Message:  problem.Message,
			Analyzer: "scope",
			Severity: SeverityError,
		})
	}

	cfg := l.config
	if cfg == nil {
		cfg = &Config{}
	}
	globals := l.globals
	if globals == nil {
		globals = builtinGlobalSet()
	}
	for _, analyzer := range l.Analyzers {
		pass := &Pass{
			Analyzer: analyzer,
			Filename: filename,
			Program:  program,
			Scopes:   manager,
			Globals:  globals,
			Config:   cfg,
		}
		if err := analyzer.Run(pass); err != nil {
			return nil, fmt.Errorf("%s: analyzer %s: %w", filename, analyzer.Name, err)
		}
		all = append(all, pass.diagnostics...)
	}

	// Set file on diagnostics that don't have one
	for i := range all {
		if all[i].Pos.File == "" {
			all[i].Pos.File = filename
		}
	}

	// Sort by file, then line
	sort.SliceStable(all, func(i, j int) bool {
		if all[i].Pos.File != all[j].Pos.File {
			return all[i].Pos.File < all[j].Pos.File
		}
		return all[i].Pos.Line < all[j].Pos.Line
	})

	return all, nil
}

// FormatText writes diagnostics in go vet text format.
func FormatText(w io.Writer, diags []Diagnostic) {
	for _, d := range diags {
		fmt.Fprintln(w, d.String())
	}
}

// FormatJSON writes diagnostics as JSON.
func FormatJSON(w io.Writer, diags []Diagnostic) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(diags)
}

// DefaultAnalyzers returns the built-in set of lint checks.
func DefaultAnalyzers() []*Analyzer {
	return []*Analyzer{
		AnalyzerNoUndef,
		AnalyzerNoImplicitGlobals,
		AnalyzerNoUnusedVars,
		AnalyzerNoShadow,
		AnalyzerNoRedeclare,
		AnalyzerNoEval,
	}
}
