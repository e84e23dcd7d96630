package ast

import (
	"strconv"
	"strings"
)

// Print renders the structural form of a tree, one slot per line:
//
//	ArrayTypeNode
//	  Array: ArrayKeyword |array|
//	  OpenBracket: (none)
//	  ...
//
// Tokens print as "Kind |text|", absent slots as "(none)", and list items
// as "Items[i]". The output is stable and is what the tests compare.
func Print(n Node) string {
	var b strings.Builder
	Walk(n, func(depth int, name string, n Node) bool {
		if depth > 0 {
			b.WriteString(strings.Repeat("  ", depth))
			b.WriteString(name)
			b.WriteString(": ")
		}
		b.WriteString(header(n))
		b.WriteByte('\n')
		return true
	})
	return strings.TrimSuffix(b.String(), "\n")
}

func header(n Node) string {
	if IsAbsent(n) {
		return "(none)"
	}
	if t, ok := n.(*Token); ok {
		return t.Describe()
	}
	return n.NodeKind().String()
}

func itemName(i int) string {
	return "Items[" + strconv.Itoa(i) + "]"
}
