// Copyright © 2026 The escope authors

package main

import "github.com/estools-go/escope/cmd"

func main() {
	cmd.Execute()
}
