package i18nimport

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeMessageFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	writeMessageFile(t, dir, "active.en.toml", `
[button.save]
description = "Save button text"
other = "Save"

[button.cancel]
other = "Cancel"
`)
	writeMessageFile(t, dir, "active.es.toml", `
[button.save]
other = "Guardar"
`)

	files, err := LoadDir(dir)
	require.NoError(t, err)
	require.Len(t, files, 2)

	en := files[0]
	assert.Equal(t, "en", en.Language)
	require.Len(t, en.Messages, 2)
	// Messages are sorted by id.
	assert.Equal(t, "button.cancel", en.Messages[0].ID)
	assert.Equal(t, "Cancel", en.Messages[0].Value)
	assert.Equal(t, "button.save", en.Messages[1].ID)
	assert.Equal(t, "Save", en.Messages[1].Value)
	assert.Equal(t, "Save button text", en.Messages[1].Description)

	es := files[1]
	assert.Equal(t, "es", es.Language)
	require.Len(t, es.Messages, 1)
	assert.Equal(t, "Guardar", es.Messages[0].Value)
}

func TestLoadDir_NoFiles(t *testing.T) {
	_, err := LoadDir(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no active.*.toml files")
}
