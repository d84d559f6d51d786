package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type registro struct {
	ID   int    `json:"id"`
	Nome string `json:"nome"`
}

func TestSaveLoadRoundTrip(t *testing.T) {
	st, err := New(t.TempDir())
	require.NoError(t, err)

	entrada := []registro{{ID: 1, Nome: "Maria"}, {ID: 2, Nome: "José"}}
	require.NoError(t, st.Save("clientes", entrada))

	var saida []registro
	require.NoError(t, st.Load("clientes", &saida))
	assert.Equal(t, entrada, saida)
}

func TestLoadMissingFileYieldsEmpty(t *testing.T) {
	st, err := New(t.TempDir())
	require.NoError(t, err)

	saida := []registro{}
	require.NoError(t, st.Load("inexistente", &saida))
	assert.Empty(t, saida)
}

func TestLoadCorruptFileYieldsEmpty(t *testing.T) {
	dir := t.TempDir()
	st, err := New(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "clientes.json"), []byte("{corrompido"), 0o644))

	saida := []registro{}
	require.NoError(t, st.Load("clientes", &saida))
	assert.Empty(t, saida)
}

func TestSaveReplacesWholeFile(t *testing.T) {
	st, err := New(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, st.Save("clientes", []registro{{ID: 1, Nome: "Maria"}, {ID: 2, Nome: "José"}}))
	require.NoError(t, st.Save("clientes", []registro{{ID: 2, Nome: "José"}}))

	var saida []registro
	require.NoError(t, st.Load("clientes", &saida))
	require.Len(t, saida, 1)
	assert.Equal(t, 2, saida[0].ID)
}

// The file on disk must always be valid JSON: writes go to a temp file that
// is renamed over the target.
func TestSaveLeavesValidJSONOnDisk(t *testing.T) {
	dir := t.TempDir()
	st, err := New(dir)
	require.NoError(t, err)

	require.NoError(t, st.Save("produtos", []registro{{ID: 1000, Nome: "Armação X"}}))

	raw, err := os.ReadFile(filepath.Join(dir, "produtos.json"))
	require.NoError(t, err)
	assert.True(t, json.Valid(raw))

	// No leftover temp files after a successful write.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "produtos.json", entries[0].Name())
}

func TestExists(t *testing.T) {
	st, err := New(t.TempDir())
	require.NoError(t, err)

	assert.False(t, st.Exists("clientes"))
	require.NoError(t, st.Save("clientes", []registro{}))
	assert.True(t, st.Exists("clientes"))
}
