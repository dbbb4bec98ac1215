// Copyright © 2026 The escope authors

package cmd

import (
	"fmt"

	"github.com/muesli/reflow/wordwrap"
	"github.com/spf13/cobra"

	"github.com/estools-go/escope/docs"
)

var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "Print the escope user guide",
	Long: `Print the escope user guide.

Covers producing ESTree input with a parser, the analysis options, the
rules file format, and how to read the scope tree output.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Print(wordwrap.String(docs.Guide, 78))
	},
}

func init() {
	rootCmd.AddCommand(docsCmd)
}
