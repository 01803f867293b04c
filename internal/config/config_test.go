// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/chatboard-tui/internal/storage"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	require.Equal(t, storage.DefaultFileName, cfg.DataFile)
	require.Empty(t, cfg.DefaultUsername)
	require.True(t, cfg.Color)
	require.NoError(t, cfg.Validate())
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
data_file = "/tmp/my_board.json"
default_username = "alice"
color = false
log_level = "debug"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, "/tmp/my_board.json", cfg.DataFile)
	require.Equal(t, "alice", cfg.DefaultUsername)
	require.False(t, cfg.Color)
	require.Equal(t, zerolog.DebugLevel, cfg.Level())
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
}

func TestLoadFile_PartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`default_username = "bob"`), 0644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, "bob", cfg.DefaultUsername)
	require.Equal(t, storage.DefaultFileName, cfg.DataFile)
	require.True(t, cfg.Color)
}

func TestEnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`data_file = "from_file.json"`), 0644))

	t.Setenv("CHATBOARD_DATA_FILE", "from_env.json")
	t.Setenv("CHATBOARD_USERNAME", "carol")

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, "from_env.json", cfg.DataFile, "environment must win over the file")
	require.Equal(t, "carol", cfg.DefaultUsername)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.DataFile = ""
	require.Error(t, cfg.Validate())

	cfg = Default()
	cfg.LogLevel = "shouting"
	require.Error(t, cfg.Validate())
}

func TestLevel(t *testing.T) {
	tests := []struct {
		name string
		want zerolog.Level
	}{
		{"", zerolog.WarnLevel},
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
	}
	for _, tc := range tests {
		cfg := Default()
		cfg.LogLevel = tc.name
		require.Equal(t, tc.want, cfg.Level(), "log_level %q", tc.name)
	}
}
