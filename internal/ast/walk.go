package ast

// Inspect traverses the tree in depth-first order, calling fn for every
// present node. If fn returns false the children of that node are skipped.
func Inspect(n Node, fn func(Node) bool) {
	if IsAbsent(n) || !fn(n) {
		return
	}
	for _, c := range n.Children() {
		if c.Node != nil {
			Inspect(c.Node, fn)
		}
	}
}

// Walk visits n and then every slot below it in slot order, absent slots
// included (n is nil for them). depth is 0 for the root; name is the slot
// name. Returning false skips the children of a node.
func Walk(n Node, fn func(depth int, name string, n Node) bool) {
	walk(n, "", 0, fn)
}

func walk(n Node, name string, depth int, fn func(int, string, Node) bool) {
	if !fn(depth, name, n) || IsAbsent(n) {
		return
	}
	for _, c := range n.Children() {
		walk(c.Node, c.Name, depth+1, fn)
	}
}

// Tokens returns the terminals of a tree in source order.
func Tokens(n Node) []*Token {
	var out []*Token
	Inspect(n, func(n Node) bool {
		if t, ok := n.(*Token); ok {
			out = append(out, t)
		}
		return true
	})
	return out
}

// FirstToken returns the leftmost terminal of a tree, or nil for a tree
// without tokens.
func FirstToken(n Node) *Token {
	var first *Token
	Inspect(n, func(n Node) bool {
		if first != nil {
			return false
		}
		if t, ok := n.(*Token); ok {
			first = t
			return false
		}
		return true
	})
	return first
}

// Count returns the number of present nodes, tokens included.
func Count(n Node) int {
	total := 0
	Inspect(n, func(Node) bool {
		total++
		return true
	})
	return total
}
