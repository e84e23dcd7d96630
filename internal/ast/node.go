// Package ast defines the concrete syntax tree produced by the parser.
//
// Every grammar construct is its own node type with a fixed, ordered set of
// named slots. A slot holds a child node, a terminal *Token or a *ListNode;
// an absent optional slot is nil, which is distinct from an empty list.
// Children exposes the slots generically so that traversal and printing do
// not need per-type code.
package ast

import (
	"reflect"

	"dgrok/internal/token"
)

// Node is implemented by every tree element.
type Node interface {
	NodeKind() Kind
	Children() []Child
}

// Child is one named slot of a node. Node is nil when the slot is absent.
type Child struct {
	Name string
	Node Node
}

func slot(name string, n Node) Child {
	if IsAbsent(n) {
		return Child{Name: name}
	}
	return Child{Name: name, Node: n}
}

// IsAbsent reports whether n is nil, including a nil pointer stored in the
// interface.
func IsAbsent(n Node) bool {
	if n == nil {
		return true
	}
	v := reflect.ValueOf(n)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

// Token is a terminal: one token taken verbatim from the filtered stream.
type Token struct {
	token.Token
}

// NewToken wraps a scanned token as a leaf node.
func NewToken(t token.Token) *Token { return &Token{Token: t} }

func (t *Token) NodeKind() Kind { return KindToken }
func (t *Token) Children() []Child { return nil }

// ListNode is an ordered sequence of items of one type.
type ListNode[T Node] struct {
	Items []T
}

// NewList builds a list; a nil slice yields an empty, present list.
func NewList[T Node](items []T) *ListNode[T] {
	return &ListNode[T]{Items: items}
}

func (l *ListNode[T]) NodeKind() Kind { return KindList }

// Len returns the number of items.
func (l *ListNode[T]) Len() int {
	if l == nil {
		return 0
	}
	return len(l.Items)
}

func (l *ListNode[T]) Children() []Child {
	out := make([]Child, len(l.Items))
	for i, item := range l.Items {
		out[i] = slot(itemName(i), item)
	}
	return out
}

// DelimitedItemNode pairs a list item with the separator that follows it.
// Either half may be absent: a bare ";" in a statement list is an item with
// no statement, and the last item of a list usually has no delimiter.
type DelimitedItemNode[T Node] struct {
	Item      T
	Delimiter *Token
}

func (d *DelimitedItemNode[T]) NodeKind() Kind { return KindDelimitedItem }

func (d *DelimitedItemNode[T]) Children() []Child {
	return []Child{
		slot("Item", d.Item),
		slot("Delimiter", d.Delimiter),
	}
}

// Items returns the non-absent items of a delimited list in order.
func Items[T Node](l *ListNode[*DelimitedItemNode[T]]) []T {
	if l == nil {
		return nil
	}
	out := make([]T, 0, len(l.Items))
	for _, d := range l.Items {
		if !IsAbsent(d.Item) {
			out = append(out, d.Item)
		}
	}
	return out
}
