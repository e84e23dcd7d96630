// Package loader reads Delphi sources from disk or memory and enumerates
// the files of a search path.
package loader

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"dgrok/internal/names"
)

// DiskLoader reads files from the file system. UTF-8 (with or without a
// BOM) is passed through; anything else is decoded as Windows-1252, the
// code page older Delphi sources are written in.
type DiskLoader struct{}

// ExpandFileName resolves fileName against currentDir unless it is
// absolute. Backslashes are treated as separators.
func (DiskLoader) ExpandFileName(currentDir, fileName string) string {
	fileName = filepath.FromSlash(strings.ReplaceAll(fileName, `\`, "/"))
	if filepath.IsAbs(fileName) || currentDir == "" {
		return fileName
	}
	return filepath.Join(currentDir, fileName)
}

// Load reads and decodes fileName.
func (DiskLoader) Load(fileName string) (string, error) {
	data, err := os.ReadFile(fileName)
	if err != nil {
		return "", err
	}
	return Decode(data)
}

// Decode turns raw file bytes into text.
func Decode(data []byte) (string, error) {
	if len(data) >= 3 && data[0] == 0xEF && data[1] == 0xBB && data[2] == 0xBF {
		return string(data[3:]), nil
	}
	if utf8.Valid(data) {
		return string(data), nil
	}
	text, err := charmap.Windows1252.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("decode windows-1252: %w", err)
	}
	return string(text), nil
}

// MemoryLoader serves files from a map; names ignore case. It is safe for
// concurrent use.
type MemoryLoader struct {
	mu    sync.RWMutex
	files map[string]string
}

// NewMemoryLoader creates a loader holding files (name to text).
func NewMemoryLoader(files map[string]string) *MemoryLoader {
	m := &MemoryLoader{files: make(map[string]string, len(files))}
	for name, text := range files {
		m.files[names.Fold(name)] = text
	}
	return m
}

// Add stores or replaces a file.
func (m *MemoryLoader) Add(name, text string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[names.Fold(name)] = text
}

// ExpandFileName ignores the directory; memory files have flat names.
func (m *MemoryLoader) ExpandFileName(_, fileName string) string { return fileName }

// Load returns the stored text or an fs.ErrNotExist error.
func (m *MemoryLoader) Load(fileName string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	text, ok := m.files[names.Fold(fileName)]
	if !ok {
		return "", &fs.PathError{Op: "open", Path: fileName, Err: fs.ErrNotExist}
	}
	return text, nil
}
