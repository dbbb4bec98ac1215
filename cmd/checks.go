// Copyright © 2026 The escope authors

package cmd

import (
	"fmt"
	"strings"

	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
	"github.com/spf13/cobra"

	"github.com/estools-go/escope/lint"
)

var checksCmd = &cobra.Command{
	Use:   "checks",
	Short: "Describe the available analysis checks",
	Long: `Describe the available analysis checks.

Prints each check's name with its full documentation, wrapped for the
terminal. Pass a comma-separated subset to "escope check --checks" to
run specific checks only.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Print(renderChecks())
	},
}

func renderChecks() string {
	var sb strings.Builder
	for i, a := range lint.DefaultAnalyzers() {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(a.Name + "\n")
		doc := indent.String(wordwrap.String(a.Doc, 72), 2)
		sb.WriteString(strings.TrimSuffix(doc, "\n") + "\n")
	}
	return sb.String()
}

func init() {
	rootCmd.AddCommand(checksCmd)
}
