// file: internal/sidecar/sidecar_test.go
// version: 1.0.0
// guid: 9f0a1b2c-3d4e-5f6a-7b8c-9d0e1f2a3b4c

package sidecar

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdfalk/audiobook-curator/internal/models"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	in := models.BookMetadata{
		Title:    "The Left Hand of Darkness",
		Author:   "Ursula K. Le Guin",
		Narrator: "George Guidall",
		Genres:   []string{"Science Fiction"},
		Year:     "1969",
		Series:   "Hainish Cycle",
		Sequence: "4",
	}
	require.NoError(t, Save(dir, &in))

	out, ok, err := Load(dir)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, in, out)

	// No temp file left behind.
	_, err = os.Stat(Path(dir) + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestLoadMissing(t *testing.T) {
	_, ok, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLoadCorrupt(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(Path(dir), []byte("{{{"), 0o644))
	_, ok, err := Load(dir)
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestSaveOverwrites(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Save(dir, &models.BookMetadata{Title: "First"}))
	require.NoError(t, Save(dir, &models.BookMetadata{Title: "Second"}))

	out, ok, err := Load(dir)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Second", out.Title)
}

func TestPath(t *testing.T) {
	assert.Equal(t, filepath.Join("/lib/book", Filename), Path("/lib/book"))
}
