package diagfmt

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/vmihailenco/msgpack/v5"

	"dgrok/internal/ast"
)

// TreeFormat selects how a syntax tree is written.
type TreeFormat string

const (
	TreeFormatTree    TreeFormat = "tree"
	TreeFormatJSON    TreeFormat = "json"
	TreeFormatMsgpack TreeFormat = "msgpack"
)

// ParseTreeFormat validates a --format value.
func ParseTreeFormat(s string) (TreeFormat, error) {
	switch f := TreeFormat(strings.ToLower(s)); f {
	case TreeFormatTree, TreeFormatJSON, TreeFormatMsgpack:
		return f, nil
	}
	return "", fmt.Errorf("unknown tree format %q (want tree, json or msgpack)", s)
}

// FileTree is one exported tree together with the file it came from.
type FileTree struct {
	File string    `json:"file"           msgpack:"file"`
	Name string    `json:"name,omitempty" msgpack:"name,omitempty"`
	Tree *ast.Dump `json:"tree"           msgpack:"tree"`

	node ast.Node
}

// NewFileTree converts a parsed tree for export.
func NewFileTree(fileName, name string, n ast.Node) FileTree {
	return FileTree{File: fileName, Name: name, Tree: ast.ToDump(n), node: n}
}

// WriteTree пишет дерево в текстовом виде с заголовком файла.
func WriteTree(w io.Writer, fileName string, n ast.Node) error {
	if _, err := fmt.Fprintf(w, "== %s\n", fileName); err != nil {
		return err
	}
	_, err := io.WriteString(w, ast.Print(n)+"\n")
	return err
}

// WriteTrees writes trees in format. JSON is one array; msgpack is a
// stream of FileTree values, one per file.
func WriteTrees(w io.Writer, format TreeFormat, trees []FileTree) error {
	switch format {
	case TreeFormatTree:
		for _, t := range trees {
			if err := WriteTree(w, t.File, t.node); err != nil {
				return err
			}
		}
		return nil
	case TreeFormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(trees)
	case TreeFormatMsgpack:
		enc := msgpack.NewEncoder(w)
		for _, t := range trees {
			if err := enc.Encode(t); err != nil {
				return err
			}
		}
		return nil
	}
	return fmt.Errorf("unknown tree format %q", format)
}

// ReadMsgpackTrees decodes a stream written by WriteTrees.
func ReadMsgpackTrees(r io.Reader) ([]FileTree, error) {
	dec := msgpack.NewDecoder(r)
	var out []FileTree
	for {
		var t FileTree
		if err := dec.Decode(&t); err != nil {
			if errors.Is(err, io.EOF) {
				return out, nil
			}
			return out, err
		}
		out = append(out, t)
	}
}
