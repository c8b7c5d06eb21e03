package agent

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDoc(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestLoadDocuments(t *testing.T) {
	dir := t.TempDir()
	writeDoc(t, dir, "flight.txt", "Flight EZY1234 departs 10:00 AM")
	writeDoc(t, dir, "car_rental.txt", "Europcar pickup at Geneva airport")
	writeDoc(t, dir, "notes.md", "not a text document")

	store, err := LoadDocuments(dir)
	require.NoError(t, err)

	assert.Equal(t, 2, store.Len())

	content, ok := store.Get("flight")
	require.True(t, ok)
	assert.Equal(t, "Flight EZY1234 departs 10:00 AM", content)

	_, ok = store.Get("notes")
	assert.False(t, ok, "non-txt files must be skipped")
}

func TestLoadDocuments_SortedKeyOrder(t *testing.T) {
	dir := t.TempDir()
	writeDoc(t, dir, "routes_to_aosta.txt", "a")
	writeDoc(t, dir, "aosta_valley.txt", "b")
	writeDoc(t, dir, "chamonix.txt", "c")

	store, err := LoadDocuments(dir)
	require.NoError(t, err)

	assert.Equal(t, []string{"aosta_valley", "chamonix", "routes_to_aosta"}, store.Keys())
}

func TestLoadDocuments_MissingDir(t *testing.T) {
	_, err := LoadDocuments(filepath.Join(t.TempDir(), "does-not-exist"))
	assert.Error(t, err)
}

func TestLoadDocuments_EmptyDir(t *testing.T) {
	_, err := LoadDocuments(t.TempDir())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no .txt documents")
}

func TestNewDocumentStore_PreservesGivenOrder(t *testing.T) {
	store := NewDocumentStore(
		[]string{"flight", "car_rental"},
		map[string]string{"flight": "f", "car_rental": "c"},
	)

	assert.Equal(t, []string{"flight", "car_rental"}, store.Keys())
}
