// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package document finds the word-processing documents among user selected
// paths. Folders are expanded recursively; files picked one by one are kept
// as chosen.
package document

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// Extensions lists the file extensions offered in the file picker and
// accepted during folder expansion.
var Extensions = []string{".doc", ".docx", ".docm", ".dot", ".dotx", ".odt", ".rtf"}

// contentTypes are the detected MIME types a document may carry. The zip
// and OLE containers cover files whose inner layout mimetype cannot pin down.
var contentTypes = []string{
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	"application/msword",
	"application/vnd.oasis.opendocument.text",
	"text/rtf",
	"application/zip",
	"application/x-ole-storage",
}

// lockPrefix marks the owner files Word leaves next to open documents.
const lockPrefix = "~$"

// HasDocumentExt reports whether path carries one of Extensions.
func HasDocumentExt(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range Extensions {
		if ext == e {
			return true
		}
	}
	return false
}

// IsDocument reports whether path has a document extension and content that
// matches one of the document types.
func IsDocument(path string) bool {
	if !HasDocumentExt(path) || strings.HasPrefix(filepath.Base(path), lockPrefix) {
		return false
	}
	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		return false
	}
	for m := mtype; m != nil; m = m.Parent() {
		for _, ct := range contentTypes {
			if m.Is(ct) {
				return true
			}
		}
	}
	return false
}

// Collect expands paths into documents. Regular files are returned as given;
// directories contribute every document found beneath them in lexical
// order. A path that cannot be read is an error.
func Collect(paths []string) ([]string, error) {
	var out []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", p, err)
		}
		if !info.IsDir() {
			out = append(out, p)
			continue
		}
		err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			if IsDocument(path) {
				out = append(out, path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("scanning %s: %w", p, err)
		}
	}
	return out, nil
}
