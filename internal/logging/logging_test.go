// Copyright 2025 go-highway Authors
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

package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"":      slog.LevelInfo,
		"INFO":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}
	for in, want := range tests {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseLevel("loud")
	assert.Error(t, err)
}

func TestNewText(t *testing.T) {
	var buf bytes.Buffer
	log, closer, err := New(&buf, Options{Level: "warn"})
	require.NoError(t, err)
	defer closer.Close()

	log.Info("hidden")
	log.Warn("priced", "options", 4)
	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "msg=priced")
	assert.Contains(t, out, "options=4")
}

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	log, closer, err := New(&buf, Options{Level: "debug", Format: "json"})
	require.NoError(t, err)
	defer closer.Close()

	log.Debug("compare", "engine", "vector")
	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "compare", rec["msg"])
	assert.Equal(t, "vector", rec["engine"])
	assert.Equal(t, "DEBUG", rec["level"])
}

func TestNewFileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "fop.log")
	var buf bytes.Buffer
	log, closer, err := New(&buf, Options{Output: "both", FilePath: path, MaxSizeMB: 1})
	require.NoError(t, err)

	log.Info("written twice")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "written twice")
	assert.Contains(t, buf.String(), "written twice")
}

func TestNewRejectsBadOptions(t *testing.T) {
	for name, opts := range map[string]Options{
		"level":     {Level: "loud"},
		"format":    {Format: "xml"},
		"output":    {Output: "syslog"},
		"stdout":    {Output: "stdout"},
		"file path": {Output: "file"},
	} {
		_, _, err := New(&bytes.Buffer{}, opts)
		assert.Error(t, err, name)
	}
}
