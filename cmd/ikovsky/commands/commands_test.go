package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Conceptual-Machines/ikovsky-api/internal/score"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func writeTestFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func inspectFile(t *testing.T, path string) *score.Summary {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	summary, err := score.Inspect(f)
	require.NoError(t, err)
	return summary
}

func TestGenerateDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "song.mid")

	out, err := runCmd(t, "generate", "-o", path, "--seed", "42")
	require.NoError(t, err)
	assert.Contains(t, out, "file: "+path)
	assert.Contains(t, out, "seed: 42")

	summary := inspectFile(t, path)
	assert.InDelta(t, 120.0, summary.Tempo, 0.01)
	assert.Equal(t, "4/4", summary.Meter)
	assert.Equal(t, score.TicksPerBeat, summary.TicksPerBeat)
	assert.NotEmpty(t, summary.Parts)
}

func TestGenerateSeedIsReproducible(t *testing.T) {
	dir := t.TempDir()
	a, b := filepath.Join(dir, "a.mid"), filepath.Join(dir, "b.mid")

	_, err := runCmd(t, "generate", "-o", a, "--seed", "9", "--key", "AM")
	require.NoError(t, err)
	_, err = runCmd(t, "generate", "-o", b, "--seed", "9", "--key", "AM")
	require.NoError(t, err)

	da, err := os.ReadFile(a)
	require.NoError(t, err)
	db, err := os.ReadFile(b)
	require.NoError(t, err)
	assert.Equal(t, da, db)
}

func TestGenerateFromRequestFile(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"yaml", "request.yaml", "key: D\ntempo: 90\ntimeSig: 3/4\nseed: 5\n"},
		{"json", "request.json", `{"key":"D","tempo":"90","timeSig":"3/4","seed":"5"}`},
		{"no extension", "request", "key: D\ntempo: \"90\"\ntimeSig: 3/4\nseed: 5\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := writeTestFile(t, tt.file, tt.content)
			path := filepath.Join(t.TempDir(), "out.mid")

			out, err := runCmd(t, "generate", "-f", req, "-o", path)
			require.NoError(t, err)
			assert.Contains(t, out, "seed: 5")

			summary := inspectFile(t, path)
			assert.InDelta(t, 90.0, summary.Tempo, 0.01)
			assert.Equal(t, "3/4", summary.Meter)
		})
	}
}

func TestGenerateFlagsOverrideFile(t *testing.T) {
	req := writeTestFile(t, "request.yaml", "tempo: \"90\"\ntimeSig: 3/4\n")
	path := filepath.Join(t.TempDir(), "out.mid")

	_, err := runCmd(t, "generate", "-f", req, "-o", path, "--tempo", "150", "--seed", "1")
	require.NoError(t, err)

	summary := inspectFile(t, path)
	assert.InDelta(t, 150.0, summary.Tempo, 0.01)
	assert.Equal(t, "3/4", summary.Meter)
}

func TestGenerateInvalidParameter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.mid")

	_, err := runCmd(t, "generate", "-o", path, "--key", "H")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "key")

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "no file is written for a rejected request")
}

func TestGenerateMissingRequestFile(t *testing.T) {
	_, err := runCmd(t, "generate", "-f", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestInspect(t *testing.T) {
	path := filepath.Join(t.TempDir(), "song.mid")
	_, err := runCmd(t, "generate", "-o", path, "--seed", "3", "--time-sig", "6/8")
	require.NoError(t, err)

	t.Run("yaml", func(t *testing.T) {
		out, err := runCmd(t, "inspect", path)
		require.NoError(t, err)
		assert.Contains(t, out, "meter: 12/8")
		assert.Contains(t, out, "parts:")
	})

	t.Run("json", func(t *testing.T) {
		out, err := runCmd(t, "inspect", path, "--format", "json")
		require.NoError(t, err)

		var summary score.Summary
		require.NoError(t, json.Unmarshal([]byte(out), &summary))
		assert.Equal(t, "12/8", summary.Meter, "a 6/8 bar spans six quarter notes")
		for _, p := range summary.Parts {
			assert.True(t, strings.HasPrefix(p.Name, "part "), p.Name)
		}
	})

	t.Run("unknown format", func(t *testing.T) {
		_, err := runCmd(t, "inspect", path, "--format", "xml")
		assert.Error(t, err)
	})

	t.Run("needs a file", func(t *testing.T) {
		_, err := runCmd(t, "inspect")
		assert.Error(t, err)
	})
}

func TestFileName(t *testing.T) {
	tests := map[string]string{
		"Quietly Blue Fox": "quietly-blue-fox.mid",
		"Untitled":         "untitled.mid",
		"  ":               "song.mid",
	}
	for in, want := range tests {
		assert.Equal(t, want, fileName(in))
	}
}
