// Copyright © 2026 The escope authors

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is overridden at build time:
//
//	go build -ldflags "-X github.com/estools-go/escope/cmd.version=v1.2.3"
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the escope version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("escope %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
