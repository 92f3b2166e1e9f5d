package script

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/driftstore/pkg/errors"
	"github.com/go-drift/driftstore/pkg/store"
)

const counterScript = `
version: v1.2.0
name: counter
state:
  count: 0
actions:
  - type: INCREMENT
    field: count
  - type: "@@RENAME_STORE"
    name: x
`

func TestParse(t *testing.T) {
	s, err := Parse([]byte(counterScript))
	require.NoError(t, err)

	assert.Equal(t, "counter", s.Name)
	assert.Equal(t, map[string]any{"count": 0}, s.State)

	want := []store.Action{
		{Type: "INCREMENT", Payload: map[string]any{"field": "count"}},
		store.RenameAction("x"),
	}
	if diff := cmp.Diff(want, s.StoreActions()); diff != "" {
		t.Errorf("StoreActions() mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_Versions(t *testing.T) {
	tests := []struct {
		version string
		wantErr bool
	}{
		{"v1.0.0", false},
		{"1.4.2", false},
		{"v1", false},
		{"v2.0.0", true},
		{"", true},
		{"banana", true},
	}
	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			_, err := Parse([]byte("version: " + tt.version + "\n"))
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			var storeErr *errors.StoreError
			require.ErrorAs(t, err, &storeErr)
			assert.Equal(t, errors.KindScript, storeErr.Kind)
		})
	}
}

func TestParse_ActionWithoutType(t *testing.T) {
	_, err := Parse([]byte("version: v1.0.0\nactions:\n  - field: count\n"))
	assert.ErrorContains(t, err, "action 0 has no type")
}

func TestParse_InvalidYAML(t *testing.T) {
	_, err := Parse([]byte("version: [\n"))
	assert.ErrorContains(t, err, "invalid YAML")
}

func TestParse_DefaultsEmptyState(t *testing.T) {
	s, err := Parse([]byte("version: v1.0.0\n"))
	require.NoError(t, err)
	assert.NotNil(t, s.State)
	assert.Empty(t, s.StoreActions())
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "counter.yaml")
	require.NoError(t, os.WriteFile(path, []byte(counterScript), 0o644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, s.Actions, 2)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read script")
}
