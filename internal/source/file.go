package source

import (
	"fmt"
	"sync"

	"fortio.org/safecast"
)

// FileFlags encodes metadata about a source file.
type FileFlags uint8

const (
	// FileHadBOM indicates a UTF-8 byte order mark was stripped from the content.
	FileHadBOM FileFlags = 1 << iota
	// FileDecoded indicates the content was transcoded from a legacy code page.
	FileDecoded
)

// File is the text of one source file together with a lazily built line index.
type File struct {
	Path    string
	Content string
	Flags   FileFlags

	once    sync.Once
	lineIdx []uint32
}

// NewFile wraps text under the given path, stripping a leading BOM.
func NewFile(path, text string) *File {
	content, hadBOM := removeBOM(text)
	f := &File{Path: path, Content: content}
	if hadBOM {
		f.Flags |= FileHadBOM
	}
	return f
}

// Len returns the content length as a uint32 offset bound.
func (f *File) Len() uint32 {
	n, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(fmt.Errorf("file %s too large: %w", f.Path, err))
	}
	return n
}

// LineCol resolves a byte offset; the line index is built on first call.
func (f *File) LineCol(off uint32) LineCol {
	f.once.Do(func() { f.lineIdx = buildLineIndex(f.Content) })
	return toLineCol(f.lineIdx, off)
}

// Line возвращает строку с заданным номером (1-based) без перевода строки.
func (f *File) Line(lineNum uint32) string {
	if lineNum == 0 {
		return ""
	}
	f.once.Do(func() { f.lineIdx = buildLineIndex(f.Content) })

	lenLineIdx, err := safecast.Conv[uint32](len(f.lineIdx))
	if err != nil {
		panic(fmt.Errorf("line index length overflow: %w", err))
	}
	var start, end uint32
	switch {
	case lineNum == 1:
		start = 0
	case lineNum-2 < lenLineIdx:
		start = f.lineIdx[lineNum-2] + 1
	default:
		return ""
	}
	if lineNum-1 < lenLineIdx {
		end = f.lineIdx[lineNum-1]
	} else {
		end = f.Len()
	}
	if start > end {
		return ""
	}
	line := f.Content[start:end]
	if n := len(line); n > 0 && line[n-1] == '\r' {
		line = line[:n-1]
	}
	return line
}

// LineCol represents a human-readable position in a source file.
type LineCol struct {
	Line uint32 // 1-based
	Col  uint32 // 1-based
}
