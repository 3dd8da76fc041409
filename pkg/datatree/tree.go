// Package datatree stores schema-typed configuration and state snapshots.
//
// Trees are arena-backed: nodes live in one flat slice and refer to each
// other by index, so parent back-references never form ownership cycles and
// a snapshot can be read concurrently without locking. A tree is built once
// (see bind.go) and is immutable afterwards.
package datatree

import (
	"strings"

	"github.com/yangsh/yangsh/pkg/schema"
)

// NodeID identifies a node within one Tree's arena.
type NodeID int32

const (
	// None is the null node id.
	None NodeID = -1
	// RootID is the synthetic root. It has no parent and is never rendered.
	RootID NodeID = 0
)

// Node is one data node. Kind, default-ness and key-ness come from the
// schema at bind time; they are facts here, not computed.
type Node struct {
	Name      string
	Kind      schema.NodeKind
	Value     string
	IsDefault bool
	Parent    NodeID
	Children  []NodeID
}

// Tree is an arena-stored data tree.
type Tree struct {
	nodes []Node
}

// New returns a tree containing only the root node.
func New() *Tree {
	return &Tree{nodes: []Node{{Kind: schema.KindOther, Parent: None}}}
}

// Node returns the node for id. The pointer is valid until the next Add.
func (t *Tree) Node(id NodeID) *Node {
	return &t.nodes[id]
}

// Len returns the number of nodes, root included.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Add appends n as the last child of parent and returns its id.
func (t *Tree) Add(parent NodeID, n Node) NodeID {
	id := NodeID(len(t.nodes))
	n.Parent = parent
	t.nodes = append(t.nodes, n)
	p := &t.nodes[parent]
	p.Children = append(p.Children, id)
	return id
}

// Walk visits every descendant of from in document (pre-order) order,
// excluding from itself. Returning false from fn stops the walk.
func (t *Tree) Walk(from NodeID, fn func(id NodeID) bool) {
	t.walk(from, fn)
}

func (t *Tree) walk(id NodeID, fn func(id NodeID) bool) bool {
	for _, c := range t.nodes[id].Children {
		if !fn(c) {
			return false
		}
		if !t.walk(c, fn) {
			return false
		}
	}
	return true
}

// ChildNamed returns the first child of id named name, or None.
func (t *Tree) ChildNamed(id NodeID, name string) NodeID {
	for _, c := range t.nodes[id].Children {
		if t.nodes[c].Name == name {
			return c
		}
	}
	return None
}

// ChildOptValue returns the canonical value of the named child, if present.
func (t *Tree) ChildOptValue(id NodeID, name string) (string, bool) {
	c := t.ChildNamed(id, name)
	if c == None {
		return "", false
	}
	return t.nodes[c].Value, true
}

// ChildValue returns the canonical value of the named child, or "-" when the
// child is absent. Display helpers rely on the placeholder.
func (t *Tree) ChildValue(id NodeID, name string) string {
	if v, ok := t.ChildOptValue(id, name); ok {
		return v
	}
	return "-"
}

// FindAll descends a slash-separated path of node names from id and returns
// every matching node, in document order. List levels fan out over all
// entries; callers filter by key values via ChildValue.
func (t *Tree) FindAll(id NodeID, path string) []NodeID {
	current := []NodeID{id}
	for _, name := range strings.Split(strings.Trim(path, "/"), "/") {
		if name == "" {
			continue
		}
		var next []NodeID
		for _, n := range current {
			for _, c := range t.nodes[n].Children {
				if t.nodes[c].Name == name {
					next = append(next, c)
				}
			}
		}
		current = next
		if len(current) == 0 {
			break
		}
	}
	return current
}

// ListKeys returns the key children of a list entry, in schema key order.
// Key leaves always precede non-key children, so this is a prefix scan.
func (t *Tree) ListKeys(id NodeID) []NodeID {
	var keys []NodeID
	for _, c := range t.nodes[id].Children {
		if t.nodes[c].Kind != schema.KindListKeyLeaf {
			break
		}
		keys = append(keys, c)
	}
	return keys
}
