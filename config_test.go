// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, "output.txt", cfg.Bench.OutputFile)
	assert.True(t, cfg.Bench.ShowProgress)
}

func TestLoadConfigOverrides(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	yaml := `
bench:
  output_file: results.csv
  seed: 17
  baselines: [btree]
log:
  level: debug
`
	require.NoError(t, os.WriteFile(filepath.Join(home, configFileName), []byte(yaml), 0644))

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "results.csv", cfg.Bench.OutputFile)
	assert.Equal(t, uint64(17), cfg.Bench.Seed)
	assert.Equal(t, []string{"btree"}, cfg.Bench.Baselines)
	assert.Equal(t, "debug", cfg.Log.Level)
	// keys absent from the file keep their defaults
	assert.True(t, cfg.Bench.ShowProgress)
}

func TestLoadConfigInvalid(t *testing.T) {
	tcs := []struct {
		name string
		yaml string
	}{
		{"bad yaml", "bench: [unterminated"},
		{"unknown baseline", "bench:\n  baselines: [skiplist]\n"},
		{"bad log level", "log:\n  level: chatty\n"},
		{"empty output", "bench:\n  output_file: \"\"\n"},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			home := t.TempDir()
			t.Setenv("HOME", home)
			require.NoError(t, os.WriteFile(filepath.Join(home, configFileName), []byte(tc.yaml), 0644))

			_, err := LoadConfig()
			assert.Error(t, err)
		})
	}
}

func TestCreateDefaultConfigFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	require.NoError(t, createDefaultConfigFile())
	_, err := os.Stat(filepath.Join(home, configFileName))
	require.NoError(t, err)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}
