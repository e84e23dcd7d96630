package codebase

import (
	"slices"
	"strings"

	"dgrok/internal/ast"
	"dgrok/internal/names"
	"dgrok/internal/source"
)

// NamedContent is one catalog entry: the path a file was added under, the
// logical name it is cataloged by, and the payload (a tree or an error).
type NamedContent[T any] struct {
	FileName string
	Name     string
	Content  T
}

// catalog maps case-folded keys to entries.
type catalog[T any] map[string]NamedContent[T]

func (c catalog[T]) sorted() []NamedContent[T] {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, names.Compare)
	out := make([]NamedContent[T], len(keys))
	for i, k := range keys {
		out[i] = c[k]
	}
	return out
}

func (c catalog[T]) lookup(name string) (T, bool) {
	e, ok := c[names.Fold(name)]
	return e.Content, ok
}

// LogicalName returns the name a tree is cataloged under: the declared
// unit, program, library or package name, with dotted names joined by '.'.
// Trees without a declared name fall back to the file's stem.
func LogicalName(fileName string, tree ast.Node) string {
	var declared ast.Node
	switch n := tree.(type) {
	case *ast.UnitNode:
		declared = n.UnitName
	case *ast.ProgramNode:
		declared = n.Name
	case *ast.LibraryNode:
		declared = n.Name
	case *ast.PackageNode:
		declared = n.Name
	}
	if ast.IsAbsent(declared) {
		return source.StemName(fileName)
	}
	var sb strings.Builder
	for _, t := range ast.Tokens(declared) {
		sb.WriteString(t.Text)
	}
	if sb.Len() == 0 {
		return source.StemName(fileName)
	}
	return sb.String()
}
