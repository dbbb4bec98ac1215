// Copyright © 2026 The escope authors

package docs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGuide(t *testing.T) {
	assert.NotEmpty(t, Guide)
	assert.Contains(t, Guide, "escope check")
	assert.Contains(t, Guide, "escope scopes")
	assert.Contains(t, Guide, "--ecma-version")
}
