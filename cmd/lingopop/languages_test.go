package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/lingopop/internal/language"
	"github.com/at-ishikawa/lingopop/internal/testutil"
)

func TestNewLanguagesCommand_List(t *testing.T) {
	tmpDir := t.TempDir()
	setConfigFile(t, testutil.SetupTestConfig(t, tmpDir))

	var out bytes.Buffer
	cmd := newLanguagesCommand()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.Execute())

	output := out.String()
	assert.Contains(t, output, "Learning 🇪🇸 Spanish from 🇺🇸 English")
	for _, lang := range language.SupportedLanguages {
		assert.Contains(t, output, lang.Name)
	}
}

func TestNewLanguagesCommand_Swap(t *testing.T) {
	tmpDir := t.TempDir()
	setConfigFile(t, testutil.SetupTestConfig(t, tmpDir))
	statePath := filepath.Join(tmpDir, "notebooks", "languages.yml")

	var out bytes.Buffer
	cmd := newLanguagesCommand()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"swap"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "Now learning 🇺🇸 English from 🇪🇸 Spanish")

	// The swap persists across invocations.
	selection, err := language.LoadSelection(statePath, "en", "es")
	require.NoError(t, err)
	native, target := selection.Languages()
	assert.Equal(t, "es", native.Code)
	assert.Equal(t, "en", target.Code)
}

func TestNewLanguagesCommand_SwapFlag(t *testing.T) {
	tmpDir := t.TempDir()
	setConfigFile(t, testutil.SetupTestConfig(t, tmpDir))
	statePath := filepath.Join(tmpDir, "notebooks", "languages.yml")

	var out bytes.Buffer
	cmd := newLanguagesCommand()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--swap"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "Learning 🇺🇸 English from 🇪🇸 Spanish")

	selection, err := language.LoadSelection(statePath, "en", "es")
	require.NoError(t, err)
	native, _ := selection.Languages()
	assert.Equal(t, "es", native.Code)
}

func TestNewLanguagesCommand_Set(t *testing.T) {
	tmpDir := t.TempDir()
	setConfigFile(t, testutil.SetupTestConfig(t, tmpDir))
	statePath := filepath.Join(tmpDir, "notebooks", "languages.yml")

	var out bytes.Buffer
	cmd := newLanguagesCommand()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"set", "ja", "ko"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "Now learning 🇰🇷 Korean from 🇯🇵 Japanese")

	selection, err := language.LoadSelection(statePath, "en", "es")
	require.NoError(t, err)
	native, target := selection.Languages()
	assert.Equal(t, "ja", native.Code)
	assert.Equal(t, "ko", target.Code)
}

func TestNewLanguagesCommand_Set_invalid(t *testing.T) {
	tmpDir := t.TempDir()
	setConfigFile(t, testutil.SetupTestConfig(t, tmpDir))

	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{
			name:    "unknown native code",
			args:    []string{"set", "xx", "es"},
			wantErr: `unsupported language code "xx"`,
		},
		{
			name:    "unknown target code",
			args:    []string{"set", "en", "yy"},
			wantErr: `unsupported language code "yy"`,
		},
		{
			name:    "identical languages",
			args:    []string{"set", "en", "en"},
			wantErr: "must differ",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := newLanguagesCommand()
			cmd.SetArgs(tt.args)
			err := cmd.Execute()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
