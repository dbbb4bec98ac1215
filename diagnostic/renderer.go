// Copyright © 2026 The escope authors

package diagnostic

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Renderer formats diagnostics as Rust-style annotated source snippets.
type Renderer struct {
	// Color controls ANSI color output. Default is ColorAuto.
	Color ColorMode

	// SourceReader reads source file contents. If nil, os.ReadFile is used.
	SourceReader func(string) ([]byte, error)
}

// Render writes a single diagnostic to w.
func (r *Renderer) Render(w io.Writer, d Diagnostic) error {
	p := choosePalette(r.Color, fileFromWriter(w))
	bw := bufio.NewWriter(w)
	ew := &errWriter{w: bw}

	// Header: "error: message" or "warning: message"
	r.writeHeader(ew, d, p)

	// Source spans
	for _, span := range d.Spans {
		r.writeSpan(ew, span, p)
	}

	// Notes
	for _, note := range d.Notes {
		ew.printf("   %s=%s note: %s\n", p.boldCyan, p.reset, note)
	}

	if ew.err != nil {
		return ew.err
	}
	return bw.Flush()
}

// RenderAll writes all diagnostics to w separated by blank lines.
func (r *Renderer) RenderAll(w io.Writer, diags []Diagnostic) error {
	for i, d := range diags {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		if err := r.Render(w, d); err != nil {
			return err
		}
	}
	return nil
}

// errWriter wraps a writer and captures the first error, short-circuiting
// subsequent writes. This avoids checking every fmt.Fprintf return value.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, a ...interface{}) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, a...)
}

func (ew *errWriter) print(s string) {
	if ew.err != nil {
		return
	}
	_, ew.err = io.WriteString(ew.w, s)
}

func (r *Renderer) writeHeader(ew *errWriter, d Diagnostic, p palette) {
	var sevColor, sevText string
	switch d.Severity {
	case SeverityError:
		sevColor = p.boldRed
		sevText = "error"
	case SeverityWarning:
		sevColor = p.yellow
		sevText = "warning"
	case SeverityNote:
		sevColor = p.boldCyan
		sevText = "note"
	}
	ew.printf("%s%s%s%s:%s %s%s%s\n",
		sevColor, p.bold, sevText, p.reset,
		p.reset,
		p.bold, d.Message, p.reset)
}

func (r *Renderer) writeSpan(ew *errWriter, span Span, p palette) {
	// Location line: "  --> file:line:col"
	loc := span.File
	if span.Line > 0 {
		loc = fmt.Sprintf("%s:%d", span.File, span.Line)
		if span.Col > 0 {
			loc = fmt.Sprintf("%s:%d:%d", span.File, span.Line, span.Col)
		}
	}
	ew.printf("  %s-->%s %s\n", p.boldBlue, p.reset, loc)

	// Try to read and display the source line
	source := r.readSourceLine(span.File, span.Line)
	if source == "" {
		// No source available, just show the location line with a gutter
		ew.printf("   %s|%s\n", p.boldBlue, p.reset)
		return
	}

	// A span ending on a later line pads the gutter for the widest line
	// number it will print.
	lastLine := span.Line
	if span.EndLine > span.Line {
		lastLine = span.EndLine
	}
	pad := strings.Repeat(" ", len(strconv.Itoa(lastLine)))

	col := span.Col
	if col <= 0 {
		col = 1
	}

	ew.printf(" %s%s |%s\n", p.boldBlue, pad, p.reset)

	if span.EndLine > span.Line {
		r.writeMultiLine(ew, span, p, pad, source, col)
	} else {
		r.writeSingleLine(ew, span, p, pad, source, col)
	}

	// Trailing gutter
	ew.printf(" %s%s |%s\n", p.boldBlue, pad, p.reset)
}

func (r *Renderer) writeSingleLine(ew *errWriter, span Span, p palette, pad, source string, col int) {
	r.writeSourceLine(ew, p, pad, span.Line, source)

	endCol := span.EndCol
	if endCol <= 0 {
		endCol = r.detectEndCol(source, col)
	}
	r.writeUnderline(ew, p, pad, source, col, endCol, span.Label)
}

// writeMultiLine renders a span that crosses lines: the start line
// underlined to its end, an ellipsis row, then the end line underlined
// up to EndCol.
func (r *Renderer) writeMultiLine(ew *errWriter, span Span, p palette, pad, source string, col int) {
	r.writeSourceLine(ew, p, pad, span.Line, source)
	r.writeUnderline(ew, p, pad, source, col, lineEndCol(source, col), "")

	ew.printf("%s...%s\n", p.boldBlue, p.reset)

	endSource := r.readSourceLine(span.File, span.EndLine)
	if endSource == "" {
		return
	}
	r.writeSourceLine(ew, p, pad, span.EndLine, endSource)

	endCol := span.EndCol
	if endCol <= 0 {
		endCol = lineEndCol(endSource, 1)
	}
	r.writeUnderline(ew, p, pad, endSource, 1, endCol, span.Label)
}

// writeSourceLine prints one numbered source line with tabs expanded
// for consistent alignment.
func (r *Renderer) writeSourceLine(ew *errWriter, p palette, pad string, line int, source string) {
	displaySource := strings.ReplaceAll(source, "\t", "    ")
	ew.printf(" %s%*d |%s  %s\n", p.boldBlue, len(pad), line, p.reset, displaySource)
}

func (r *Renderer) writeUnderline(ew *errWriter, p palette, pad, source string, col, endCol int, label string) {
	if endCol < col {
		endCol = col
	}
	underLen := endCol - col + 1

	// Account for tab expansion in positioning
	prefix := ""
	if col > 1 && col-1 <= len(source) {
		prefix = source[:col-1]
	}
	displayCol := displayWidth(prefix)

	underPad := strings.Repeat(" ", displayCol)
	underline := strings.Repeat("^", underLen)

	ew.printf(" %s%s |%s  %s%s%s%s", p.boldBlue, pad, p.reset, underPad, p.boldRed, underline, p.reset)
	if label != "" {
		ew.printf(" %s%s%s", p.boldRed, label, p.reset)
	}
	ew.print("\n")
}

func (r *Renderer) readSourceLine(file string, line int) string {
	if line <= 0 || file == "" || file == "-" {
		return ""
	}
	reader := r.SourceReader
	if reader == nil {
		reader = func(name string) ([]byte, error) {
			return os.ReadFile(name) //nolint:gosec // reads user-specified source files for display
		}
	}
	data, err := reader(file)
	if err != nil {
		return ""
	}
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for i := 1; scanner.Scan(); i++ {
		if i == line {
			return scanner.Text()
		}
	}
	return ""
}

// detectEndCol scans from col to the end of the identifier there, so a
// span built without an explicit end still underlines the whole name.
func (r *Renderer) detectEndCol(source string, col int) int {
	if col <= 0 || col > len(source) {
		return col
	}
	end := col - 1 // 0-based
	for end < len(source) {
		ch, size := utf8.DecodeRuneInString(source[end:])
		if !isIdentRune(ch) {
			break
		}
		end += size
	}
	if end == col-1 {
		return col // single character
	}
	return end // convert back to 1-based end column
}

// isIdentRune follows the JavaScript identifier alphabet.
func isIdentRune(ch rune) bool {
	return ch == '_' || ch == '$' || unicode.IsLetter(ch) || unicode.IsDigit(ch)
}

// lineEndCol returns the 1-based column of the last non-blank character,
// at least col.
func lineEndCol(source string, col int) int {
	end := utf8.RuneCountInString(strings.TrimRight(source, " \t"))
	if end < col {
		return col
	}
	return end
}

// displayWidth returns the display width of a string, expanding tabs to 4 spaces.
func displayWidth(s string) int {
	w := 0
	for _, ch := range s {
		if ch == '\t' {
			w += 4
		} else {
			w++
		}
	}
	return w
}

// fileFromWriter attempts to extract an *os.File from a writer for terminal
// detection. Returns nil if the writer is not backed by a file.
func fileFromWriter(w io.Writer) *os.File {
	if f, ok := w.(*os.File); ok {
		return f
	}
	return nil
}
