package datatree

import (
	"strings"

	"github.com/yangsh/yangsh/pkg/schema"
)

// Flatten renders the subtree under root as canonical command lines, the
// inverse of how the shell would parse configuration commands into a tree.
//
// One line is emitted per presence container, non-key leaf, leaf-list entry
// and list entry, in document order. Each line is indented one space per
// enclosing list level, list entries are preceded by a "!" separator at the
// same indentation, and the output always ends with a final "!" marker.
//
// Flatten never mutates the tree; identical inputs produce byte-identical
// output, so two snapshots flattened with the same includeDefaults policy
// are directly comparable.
func (t *Tree) Flatten(root NodeID, includeDefaults bool) string {
	var b strings.Builder

	t.Walk(root, func(id NodeID) bool {
		n := t.Node(id)
		switch n.Kind {
		case schema.KindContainer, schema.KindLeaf, schema.KindLeafList, schema.KindList:
		case schema.KindNonPresenceContainer, schema.KindListKeyLeaf, schema.KindOther:
			// Not a user-typed command line.
			return true
		}
		if !includeDefaults && n.IsDefault {
			return true
		}

		// One indentation unit per strict list ancestor.
		indent := 0
		for p := n.Parent; p != None; p = t.Node(p).Parent {
			if t.Node(p).Kind == schema.KindList {
				indent++
			}
		}

		// Local path: the node and its ancestors up to, but not including,
		// the nearest enclosing list. The node itself never stops the walk.
		var path []NodeID
		for cur := id; cur != None; cur = t.Node(cur).Parent {
			if cur != id && t.Node(cur).Kind == schema.KindList {
				break
			}
			if t.Node(cur).Parent == None {
				break // never include the root
			}
			path = append(path, cur)
		}

		var tokens []string
		for i := len(path) - 1; i >= 0; i-- {
			pn := t.Node(path[i])
			tokens = append(tokens, pn.Name)
			if pn.Kind == schema.KindList {
				for _, k := range t.ListKeys(path[i]) {
					tokens = append(tokens, t.Node(k).Value)
				}
			} else if hasValue(pn.Kind) {
				tokens = append(tokens, pn.Value)
			}
		}

		pad := strings.Repeat(" ", indent)
		if n.Kind == schema.KindList {
			// Entry separator goes immediately before the entry's own line.
			b.WriteString(pad)
			b.WriteString("!\n")
		}
		b.WriteString(pad)
		b.WriteString(strings.Join(tokens, " "))
		b.WriteByte('\n')
		return true
	})

	// End-of-configuration marker, even for an empty tree.
	b.WriteString("!\n")
	return b.String()
}

func hasValue(k schema.NodeKind) bool {
	switch k {
	case schema.KindLeaf, schema.KindListKeyLeaf, schema.KindLeafList:
		return true
	case schema.KindContainer, schema.KindNonPresenceContainer, schema.KindList, schema.KindOther:
		return false
	}
	return false
}
