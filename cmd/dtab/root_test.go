package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUsageTemplateHeadings(t *testing.T) {
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs([]string{"--help"})
	require.NoError(t, rootCmd.Execute())

	// The custom usage template upcases section headings via the
	// boldUpper template func; outside a terminal the bolding is a
	// no-op but the uppercasing still shows.
	out := buf.String()
	assert.Contains(t, out, "USAGE:")
	assert.Contains(t, out, "AVAILABLE COMMANDS:")
	assert.Contains(t, out, "FLAGS:")
	assert.Contains(t, out, "dtab [command] --help")
}
