// Copyright © 2026 The escope authors

package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/estools-go/escope/diagnostic"
	"github.com/estools-go/escope/lint"
)

func colorMode() diagnostic.ColorMode {
	mode, err := diagnostic.ParseColorMode(viper.GetString("color"))
	if err != nil {
		return diagnostic.ColorAuto
	}
	return mode
}

func newRenderer() *diagnostic.Renderer {
	return &diagnostic.Renderer{
		Color: colorMode(),
		// Positions in an ESTree document refer to the source it was
		// parsed from, never to the document itself. Refusing .json here
		// drops the excerpt instead of quoting serialized AST.
		SourceReader: func(name string) ([]byte, error) {
			if filepath.Ext(name) == ".json" {
				return nil, fmt.Errorf("%s: not a source file", name)
			}
			return os.ReadFile(name) //nolint:gosec // reads user-specified source files for display
		},
	}
}

// severityOf maps lint severities onto renderer severities.
func severityOf(s lint.Severity) diagnostic.Severity {
	switch s {
	case lint.SeverityError:
		return diagnostic.SeverityError
	case lint.SeverityInfo:
		return diagnostic.SeverityNote
	default:
		return diagnostic.SeverityWarning
	}
}

// lintDiagToDiagnostic converts a lint.Diagnostic for annotated rendering.
func lintDiagToDiagnostic(ld lint.Diagnostic) diagnostic.Diagnostic {
	d := diagnostic.Diagnostic{
		Severity: severityOf(ld.Severity),
		Message:  ld.Message + " (" + ld.Analyzer + ")",
	}
	if ld.Pos.Line > 0 {
		d.Spans = append(d.Spans, diagnostic.Span{
			File: sourceFileFor(ld.Pos.File),
			Line: ld.Pos.Line,
			Col:  ld.Pos.Col,
		})
	}
	d.Notes = append(d.Notes, ld.Notes...)
	return d
}

// sourceFileFor maps an ESTree document path to the source file it was
// parsed from, when a sibling with a source extension exists. Positions
// in the document refer to that source, so excerpts must come from it
// rather than from the serialized AST.
func sourceFileFor(path string) string {
	base := strings.TrimSuffix(path, filepath.Ext(path))
	for _, ext := range []string{".js", ".mjs", ".cjs", ".jsx", ".ts", ".tsx"} {
		if _, err := os.Stat(base + ext); err == nil {
			return base + ext
		}
	}
	return path
}

// renderDiagnostics renders lint diagnostics with annotated source
// excerpts to stderr.
func renderDiagnostics(diags []lint.Diagnostic) {
	ds := make([]diagnostic.Diagnostic, 0, len(diags))
	for _, ld := range diags {
		ds = append(ds, lintDiagToDiagnostic(ld))
	}
	r := newRenderer()
	_ = r.RenderAll(os.Stderr, ds)
}
