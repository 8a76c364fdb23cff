package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/lingopop/internal/testutil"
)

func TestNewLookupCommand_blankTerm(t *testing.T) {
	tmpDir := t.TempDir()
	setConfigFile(t, testutil.SetupTestConfig(t, tmpDir))

	cmd := newLookupCommand()
	cmd.SetArgs([]string{"   "})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "enter a word or phrase")
}

func TestNewLookupCommand_InvalidConfig(t *testing.T) {
	setConfigFile(t, setupBrokenConfigFile(t))

	cmd := newLookupCommand()
	cmd.SetArgs([]string{"hola"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "configuration")
}
