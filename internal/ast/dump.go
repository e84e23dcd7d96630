package ast

// Dump is a plain, serialisable copy of a tree for JSON and msgpack export.
type Dump struct {
	Kind     string      `json:"kind"               msgpack:"kind"`
	Text     string      `json:"text,omitempty"     msgpack:"text,omitempty"`
	Line     uint32      `json:"line,omitempty"     msgpack:"line,omitempty"`
	Col      uint32      `json:"col,omitempty"      msgpack:"col,omitempty"`
	Children []DumpChild `json:"children,omitempty" msgpack:"children,omitempty"`
}

// DumpChild is a named slot of a Dump; Node is nil for an absent slot.
type DumpChild struct {
	Name string `json:"name"           msgpack:"name"`
	Node *Dump  `json:"node,omitempty" msgpack:"node,omitempty"`
}

// ToDump converts a tree. Tokens carry their kind name, text and position.
func ToDump(n Node) *Dump {
	if IsAbsent(n) {
		return nil
	}
	if t, ok := n.(*Token); ok {
		lc := t.Loc.LineCol()
		return &Dump{Kind: t.Kind.String(), Text: t.Text, Line: lc.Line, Col: lc.Col}
	}
	d := &Dump{Kind: n.NodeKind().String()}
	for _, c := range n.Children() {
		d.Children = append(d.Children, DumpChild{Name: c.Name, Node: ToDump(c.Node)})
	}
	return d
}
