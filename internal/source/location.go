package source

import "fmt"

// Location points at a byte offset inside a File.
type Location struct {
	File   *File
	Offset uint32
}

// At builds a Location for off in f.
func At(f *File, off uint32) Location {
	return Location{File: f, Offset: off}
}

// FileName returns the path of the file, or "" for a zero Location.
func (l Location) FileName() string {
	if l.File == nil {
		return ""
	}
	return l.File.Path
}

// LineCol converts the offset into a 1-based line and column.
func (l Location) LineCol() LineCol {
	if l.File == nil {
		return LineCol{Line: 1, Col: l.Offset + 1}
	}
	return l.File.LineCol(l.Offset)
}

// IsValid reports whether the location refers to a file.
func (l Location) IsValid() bool { return l.File != nil }

func (l Location) String() string {
	if l.File == nil {
		return fmt.Sprintf("offset %d", l.Offset)
	}
	lc := l.LineCol()
	return fmt.Sprintf("%s:%d:%d", l.File.Path, lc.Line, lc.Col)
}
