// Copyright © 2026 The escope authors

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/estools-go/escope/ast"
	"github.com/estools-go/escope/scope"
)

var scopesJSON bool

var scopesCmd = &cobra.Command{
	Use:   "scopes [flags] [file]",
	Short: "Print the resolved scope tree of a parsed program",
	Long: `Print the resolved scope tree of a parsed ECMAScript program.

Reads one ESTree JSON document (stdin with no argument) and prints every
scope with its variables, their declaration kinds and reference counts,
and the names that escape the scope unresolved.

The text form is for people; --json emits the same tree for tools.

Examples:
  escope scopes app.json
  escope scopes --json app.json | jq '.children[].kind'
  acorn --locations app.js | escope scopes`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) > 1 {
			_ = cmd.Help()
			os.Exit(2)
		}

		name := "-"
		var src []byte
		var err error
		if len(args) == 1 && args[0] != "-" {
			name = args[0]
			src, err = os.ReadFile(name) //nolint:gosec // CLI tool reads user-specified files
		} else {
			src, err = io.ReadAll(os.Stdin)
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}

		program, err := ast.DecodeProgram(src)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", name, err)
			os.Exit(2)
		}
		opts, err := scopeOptions()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}

		manager := scope.Analyze(program, opts)
		for _, problem := range manager.Problems {
			fmt.Fprintf(os.Stderr, "%s: %s\n", name, problem.Message)
		}

		if scopesJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(scopeTree(manager.GlobalScope)); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			return
		}
		writeScopeText(os.Stdout, manager.GlobalScope, 0)
	},
}

func writeScopeText(w io.Writer, s *scope.Scope, depth int) {
	indent := strings.Repeat("  ", depth)
	fmt.Fprintf(w, "%s%s%s\n", indent, scopeHeading(s), scopeFlags(s))
	for _, v := range s.Variables {
		fmt.Fprintf(w, "%s  %s\n", indent, variableLine(v))
	}
	for _, v := range s.Implicit {
		fmt.Fprintf(w, "%s  %s\n", indent, variableLine(v))
	}
	if names := throughNames(s); len(names) > 0 {
		fmt.Fprintf(w, "%s  through: %s\n", indent, strings.Join(names, " "))
	}
	for _, child := range s.Children {
		writeScopeText(w, child, depth+1)
	}
}

func scopeHeading(s *scope.Scope) string {
	if name := blockName(s.Block); name != "" {
		return fmt.Sprintf("%s %s", s.Kind, name)
	}
	return s.Kind.String()
}

func scopeFlags(s *scope.Scope) string {
	var flags string
	if s.IsStrict {
		flags += " [strict]"
	}
	if s.ContainsDirectEval {
		flags += " [direct-eval]"
	}
	if s.UsesThis {
		flags += " [uses-this]"
	}
	return flags
}

// blockName extracts the declared name of the construct that introduced
// a scope, when it has one.
func blockName(node ast.Node) string {
	switch n := node.(type) {
	case *ast.FunctionDeclaration:
		if n.ID != nil {
			return n.ID.Name
		}
	case *ast.FunctionExpression:
		if n.ID != nil {
			return n.ID.Name
		}
	case *ast.ClassDeclaration:
		if n.ID != nil {
			return n.ID.Name
		}
	case *ast.ClassExpression:
		if n.ID != nil {
			return n.ID.Name
		}
	}
	return ""
}

func variableLine(v *scope.Variable) string {
	line := v.Name
	if kinds := definitionKinds(v); kinds != "" {
		line += ": " + kinds
	}
	reads, writes := referenceCounts(v)
	if reads+writes > 0 {
		line += fmt.Sprintf(" (reads: %d, writes: %d)", reads, writes)
	}
	return line
}

func definitionKinds(v *scope.Variable) string {
	var kinds []string
	seen := make(map[scope.DefKind]bool)
	for _, def := range v.Definitions {
		if seen[def.Kind] {
			continue
		}
		seen[def.Kind] = true
		kinds = append(kinds, def.Kind.String())
	}
	return strings.Join(kinds, ", ")
}

func referenceCounts(v *scope.Variable) (reads, writes int) {
	for _, ref := range v.References {
		if ref.IsRead() {
			reads++
		}
		if ref.IsWrite() {
			writes++
		}
	}
	return reads, writes
}

func throughNames(s *scope.Scope) []string {
	var names []string
	seen := make(map[string]bool)
	for _, ref := range s.Through {
		if seen[ref.Identifier.Name] {
			continue
		}
		seen[ref.Identifier.Name] = true
		names = append(names, ref.Identifier.Name)
	}
	return names
}

// scopeNode is the JSON shape of one scope in the dumped tree.
type scopeNode struct {
	Kind       string      `json:"kind"`
	Name       string      `json:"name,omitempty"`
	Strict     bool        `json:"strict,omitempty"`
	DirectEval bool        `json:"directEval,omitempty"`
	UsesThis   bool        `json:"usesThis,omitempty"`
	Variables  []scopeVar  `json:"variables,omitempty"`
	Implicit   []scopeVar  `json:"implicit,omitempty"`
	Through    []string    `json:"through,omitempty"`
	Children   []scopeNode `json:"children,omitempty"`
}

type scopeVar struct {
	Name        string   `json:"name"`
	Definitions []string `json:"definitions,omitempty"`
	Reads       int      `json:"reads"`
	Writes      int      `json:"writes"`
}

func scopeTree(s *scope.Scope) scopeNode {
	node := scopeNode{
		Kind:       s.Kind.String(),
		Name:       blockName(s.Block),
		Strict:     s.IsStrict,
		DirectEval: s.ContainsDirectEval,
		UsesThis:   s.UsesThis,
		Through:    throughNames(s),
	}
	for _, v := range s.Variables {
		node.Variables = append(node.Variables, scopeVarOf(v))
	}
	for _, v := range s.Implicit {
		node.Implicit = append(node.Implicit, scopeVarOf(v))
	}
	for _, child := range s.Children {
		node.Children = append(node.Children, scopeTree(child))
	}
	return node
}

func scopeVarOf(v *scope.Variable) scopeVar {
	reads, writes := referenceCounts(v)
	sv := scopeVar{Name: v.Name, Reads: reads, Writes: writes}
	for _, def := range v.Definitions {
		sv.Definitions = append(sv.Definitions, def.Kind.String())
	}
	return sv
}

func init() {
	rootCmd.AddCommand(scopesCmd)

	scopesCmd.Flags().BoolVar(&scopesJSON, "json", false,
		"Output the scope tree as JSON.")
}
