// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package document

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeDocx writes a minimal OOXML word-processing package.
func writeDocx(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	zw := zip.NewWriter(f)
	for _, name := range []string{"[Content_Types].xml", "word/document.xml"} {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte("<?xml version=\"1.0\"?><x/>"))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestHasDocumentExt(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"report.docx", true},
		{"REPORT.DOC", true},
		{"notes.odt", true},
		{"letter.rtf", true},
		{"scan.pdf", false},
		{"README", false},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, HasDocumentExt(tt.path))
		})
	}
}

func TestIsDocument(t *testing.T) {
	dir := t.TempDir()

	docx := filepath.Join(dir, "a.docx")
	writeDocx(t, docx)
	assert.True(t, IsDocument(docx))

	rtf := filepath.Join(dir, "b.rtf")
	writeFile(t, rtf, `{\rtf1\ansi hello}`)
	assert.True(t, IsDocument(rtf))

	renamed := filepath.Join(dir, "c.docx")
	writeFile(t, renamed, "just some text")
	assert.False(t, IsDocument(renamed), "plain text with a .docx name is not a document")

	lock := filepath.Join(dir, "~$a.docx")
	writeDocx(t, lock)
	assert.False(t, IsDocument(lock), "Word lock files are skipped")

	assert.False(t, IsDocument(filepath.Join(dir, "missing.docx")))
}

func TestCollect(t *testing.T) {
	dir := t.TempDir()
	folder := filepath.Join(dir, "batch")
	writeDocx(t, filepath.Join(folder, "b.docx"))
	writeDocx(t, filepath.Join(folder, "nested", "c.docx"))
	writeFile(t, filepath.Join(folder, "notes.txt"), "skip me")
	writeDocx(t, filepath.Join(folder, "a.docx"))

	single := filepath.Join(dir, "picked.anything")
	writeFile(t, single, "explicit picks are kept")

	got, err := Collect([]string{single, folder})
	require.NoError(t, err)
	assert.Equal(t, []string{
		single,
		filepath.Join(folder, "a.docx"),
		filepath.Join(folder, "b.docx"),
		filepath.Join(folder, "nested", "c.docx"),
	}, got)
}

func TestCollectMissingPath(t *testing.T) {
	_, err := Collect([]string{filepath.Join(t.TempDir(), "gone")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading")
}
