package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeFilename(t *testing.T) {
	name := normalizeFilename("my week of jan 5.html")
	assert.True(t, strings.HasPrefix(name, "my_week_of_jan_5_"))
	assert.True(t, strings.HasSuffix(name, ".html"))
	assert.NotContains(t, name, " ")

	// Hostile names collapse to a safe default.
	name = normalizeFilename("../../etc/passwd")
	assert.False(t, strings.Contains(name, "/"))
	assert.False(t, strings.Contains(name, ".."))
}

func TestLocalStorageSaveExport(t *testing.T) {
	dir := t.TempDir()
	ls := NewLocalStorage(dir, "http://localhost:8080/exports")

	url, err := ls.SaveExport("week of jan 5", []byte("<html></html>"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "http://localhost:8080/exports/"))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	contents, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	require.NoError(t, err)
	assert.Equal(t, "<html></html>", string(contents))
}

func TestLocalStorageSaveExportWithoutBaseURL(t *testing.T) {
	dir := t.TempDir()
	ls := NewLocalStorage(dir, "")

	path, err := ls.SaveExport("calendar", []byte("x"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(path, dir))
}

func TestContentType(t *testing.T) {
	assert.Equal(t, "text/html; charset=utf-8", contentType("a.html"))
	assert.Equal(t, "application/json", contentType("a.json"))
	assert.Equal(t, "application/octet-stream", contentType("a.bin"))
}
