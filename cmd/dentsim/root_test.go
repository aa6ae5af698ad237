package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestVersionCommand(t *testing.T) {
	assert.Contains(t, run(t, "version"), "dentsim version ")
}

func TestCatalogCommand(t *testing.T) {
	assert.Contains(t, run(t, "catalog"), "Attempts allowed: 2.")
}

func TestReplayRequiresScript(t *testing.T) {
	rootCmd.SetArgs([]string{"replay"})
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	assert.Error(t, rootCmd.Execute())
}

func TestValidateCommand(t *testing.T) {
	assert.Contains(t, run(t, "validate"), "OK")
}
