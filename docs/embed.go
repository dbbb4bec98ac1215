// Copyright © 2026 The escope authors

// Package docs embeds the escope user guide for use by the CLI.
package docs

import _ "embed"

//go:embed guide.md
var Guide string
