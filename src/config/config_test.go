// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv(FileEnv, "")
	t.Setenv(ColorEnv, "")
	t.Setenv(DumpCoreEnv, "")
}

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, DefaultCapacity, cfg.Reporter.Capacity)
	assert.Equal(t, ColorAuto, cfg.Reporter.Color)
	assert.False(t, cfg.Reporter.DumpCore)
}

func TestLoadFormats(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{
			name:    "json",
			file:    "lab.json",
			content: `{"reporter":{"capacity":64,"color":"off"},"io":{"readSize":16,"termSize":8},"output":{"json":true}}`,
		},
		{
			name: "yaml",
			file: "lab.YML",
			content: `reporter:
  capacity: 64
  color: "off"
io:
  readSize: 16
  termSize: 8
output:
  json: true
`,
		},
		{
			name: "toml",
			file: "lab.toml",
			content: `[reporter]
capacity = 64
color = "off"

[io]
readSize = 16
termSize = 8

[output]
json = true
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			cfg, err := Load(writeConfig(t, tt.file, tt.content))
			require.NoError(t, err)

			assert.Equal(t, 64, cfg.Reporter.Capacity)
			assert.Equal(t, ColorOff, cfg.Reporter.Color)
			assert.Equal(t, IO{ReadSize: 16, TermSize: 8}, cfg.IO)
			assert.True(t, cfg.Output.JSON)
		})
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(writeConfig(t, "lab.yaml", "io:\n  readSize: 4096\n"))
	require.NoError(t, err)

	assert.Equal(t, 4096, cfg.IO.ReadSize)
	assert.Equal(t, DefaultTermSize, cfg.IO.TermSize)
	assert.Equal(t, DefaultCapacity, cfg.Reporter.Capacity)
}

func TestLoadFromEnvironment(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "lab.json", `{"reporter":{"capacity":32,"color":"on"}}`)
	t.Setenv(FileEnv, path)
	t.Setenv(ColorEnv, "OFF")
	t.Setenv(DumpCoreEnv, "1")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 32, cfg.Reporter.Capacity)
	assert.Equal(t, ColorOff, cfg.Reporter.Color)
	assert.True(t, cfg.Reporter.DumpCore)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name     string
		path     func(t *testing.T) string
		testFunc func(t *testing.T, err error)
	}{
		{
			name: "missing file",
			path: func(t *testing.T) string { return filepath.Join(t.TempDir(), "absent.json") },
			testFunc: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, os.ErrNotExist)
			},
		},
		{
			name: "malformed toml",
			path: func(t *testing.T) string { return writeConfig(t, "bad.toml", "[reporter\n") },
			testFunc: func(t *testing.T, err error) {
				assert.ErrorContains(t, err, "failed to parse TOML")
			},
		},
		{
			name: "malformed json",
			path: func(t *testing.T) string { return writeConfig(t, "bad.json", "{") },
			testFunc: func(t *testing.T, err error) {
				assert.ErrorContains(t, err, "failed to parse JSON")
			},
		},
		{
			name: "unknown color",
			path: func(t *testing.T) string {
				return writeConfig(t, "bad.yaml", "reporter:\n  color: purple\n")
			},
			testFunc: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrInvalid)
				assert.ErrorContains(t, err, "color")
			},
		},
		{
			name: "zero capacity",
			path: func(t *testing.T) string {
				return writeConfig(t, "bad.json", `{"reporter":{"capacity":0,"color":"auto"}}`)
			},
			testFunc: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrInvalid)
				assert.ErrorContains(t, err, "capacity")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			cfg, err := Load(tt.path(t))
			require.Error(t, err)
			assert.Nil(t, cfg)
			tt.testFunc(t, err)
		})
	}
}

func TestDetectConfigFormat(t *testing.T) {
	assert.Equal(t, configFormatYAML, detectConfigFormat("a.yaml"))
	assert.Equal(t, configFormatYAML, detectConfigFormat("a.yml"))
	assert.Equal(t, configFormatTOML, detectConfigFormat("A.TOML"))
	assert.Equal(t, configFormatJSON, detectConfigFormat("a.json"))
	assert.Equal(t, configFormatJSON, detectConfigFormat("noext"))
}
