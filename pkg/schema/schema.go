// Package schema defines the device data model consumed by the console.
//
// Node kinds, list keys and leaf defaults are supplied facts: they are loaded
// from schema documents (YAML), never derived from data. The embedded base
// model covers the standard device hierarchy; additional modules can be
// merged on top of it.
package schema

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// NodeKind is the structural category of a schema node. It governs how a
// data node of that schema is rendered and which children it may carry.
type NodeKind int

const (
	KindOther NodeKind = iota
	KindContainer
	KindNonPresenceContainer
	KindLeaf
	KindListKeyLeaf
	KindLeafList
	KindList
)

// String returns the schema-document spelling of the kind.
func (k NodeKind) String() string {
	switch k {
	case KindContainer:
		return "container"
	case KindNonPresenceContainer:
		return "np-container"
	case KindLeaf:
		return "leaf"
	case KindListKeyLeaf:
		return "list-key"
	case KindLeafList:
		return "leaf-list"
	case KindList:
		return "list"
	case KindOther:
		return "other"
	}
	return fmt.Sprintf("NodeKind(%d)", int(k))
}

// SNode is one node of the device schema.
type SNode struct {
	Name     string
	Kind     NodeKind
	Desc     string
	Default  string // canonical default value; leaves only
	Keys     []string
	Parent   *SNode
	Children []*SNode
}

// Child returns the named child, or nil.
func (s *SNode) Child(name string) *SNode {
	for _, c := range s.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// IsListKey reports whether this node is a key leaf of its parent list.
func (s *SNode) IsListKey() bool {
	return s.Kind == KindListKeyLeaf
}

// Path returns the slash-separated schema path from the root, e.g.
// "/interfaces/interface/mtu".
func (s *SNode) Path() string {
	if s.Parent == nil {
		return "/"
	}
	var names []string
	for n := s; n.Parent != nil; n = n.Parent {
		names = append(names, n.Name)
	}
	var b strings.Builder
	for i := len(names) - 1; i >= 0; i-- {
		b.WriteByte('/')
		b.WriteString(names[i])
	}
	return b.String()
}

// Module records the provenance of one loaded schema document.
type Module struct {
	Name        string
	Revision    string
	Namespace   string
	Implemented bool
}

// Schema is the merged device model: a synthetic root whose children are the
// top-level nodes of every loaded module.
type Schema struct {
	Root    *SNode
	Modules []Module
}

type yamlModule struct {
	Name      string      `yaml:"name"`
	Revision  string      `yaml:"revision"`
	Namespace string      `yaml:"namespace"`
	Nodes     []*yamlNode `yaml:"nodes"`
}

type yamlNode struct {
	Name     string      `yaml:"name"`
	Kind     string      `yaml:"kind"`
	Desc     string      `yaml:"desc"`
	Default  string      `yaml:"default"`
	Keys     []string    `yaml:"keys"`
	Children []*yamlNode `yaml:"children"`
}

type yamlDoc struct {
	Modules []*yamlModule `yaml:"modules"`
}

// Parse reads one schema document and merges it into a new Schema.
func Parse(data []byte) (*Schema, error) {
	s := &Schema{Root: &SNode{Kind: KindOther}}
	if err := s.Merge(data); err != nil {
		return nil, err
	}
	return s, nil
}

// Merge loads an additional schema document into s. Top-level nodes with new
// names are appended; duplicate names are rejected.
func (s *Schema) Merge(data []byte) error {
	var doc yamlDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse schema: %w", err)
	}
	for _, m := range doc.Modules {
		if m.Name == "" {
			return fmt.Errorf("parse schema: module without a name")
		}
		for _, yn := range m.Nodes {
			if s.Root.Child(yn.Name) != nil {
				return fmt.Errorf("parse schema: duplicate top-level node %q", yn.Name)
			}
			sn, err := buildNode(yn, s.Root)
			if err != nil {
				return fmt.Errorf("module %s: %w", m.Name, err)
			}
			s.Root.Children = append(s.Root.Children, sn)
		}
		s.Modules = append(s.Modules, Module{
			Name:        m.Name,
			Revision:    m.Revision,
			Namespace:   m.Namespace,
			Implemented: true,
		})
	}
	return nil
}

func buildNode(yn *yamlNode, parent *SNode) (*SNode, error) {
	if yn.Name == "" {
		return nil, fmt.Errorf("node without a name under %q", parent.Name)
	}
	kind, err := parseKind(yn.Kind)
	if err != nil {
		return nil, fmt.Errorf("node %q: %w", yn.Name, err)
	}

	sn := &SNode{
		Name:    yn.Name,
		Kind:    kind,
		Desc:    yn.Desc,
		Default: yn.Default,
		Keys:    append([]string(nil), yn.Keys...),
		Parent:  parent,
	}

	switch kind {
	case KindLeaf, KindLeafList:
		if len(yn.Children) > 0 {
			return nil, fmt.Errorf("node %q: %s cannot have children", yn.Name, kind)
		}
	case KindList:
		if len(yn.Keys) == 0 {
			return nil, fmt.Errorf("list %q: no keys declared", yn.Name)
		}
	case KindContainer, KindNonPresenceContainer, KindOther:
	case KindListKeyLeaf:
		return nil, fmt.Errorf("node %q: list-key kind is assigned from the parent list, not declared", yn.Name)
	}

	for _, yc := range yn.Children {
		c, err := buildNode(yc, sn)
		if err != nil {
			return nil, err
		}
		sn.Children = append(sn.Children, c)
	}

	if kind == KindList {
		if err := normalizeListKeys(sn); err != nil {
			return nil, err
		}
	}
	return sn, nil
}

// normalizeListKeys marks the declared key children as KindListKeyLeaf and
// moves them to the front of the child order, in declared key order. Key
// leaves always precede non-key children.
func normalizeListKeys(list *SNode) error {
	keyed := make([]*SNode, 0, len(list.Keys))
	for _, keyName := range list.Keys {
		kc := list.Child(keyName)
		if kc == nil {
			return fmt.Errorf("list %q: key %q is not a child", list.Name, keyName)
		}
		if kc.Kind != KindLeaf {
			return fmt.Errorf("list %q: key %q must be a leaf, is %s", list.Name, keyName, kc.Kind)
		}
		kc.Kind = KindListKeyLeaf
		keyed = append(keyed, kc)
	}
	rest := make([]*SNode, 0, len(list.Children)-len(keyed))
	for _, c := range list.Children {
		if c.Kind != KindListKeyLeaf {
			rest = append(rest, c)
		}
	}
	list.Children = append(keyed, rest...)
	return nil
}

func parseKind(s string) (NodeKind, error) {
	switch s {
	case "container":
		return KindContainer, nil
	case "np-container":
		return KindNonPresenceContainer, nil
	case "leaf":
		return KindLeaf, nil
	case "leaf-list":
		return KindLeafList, nil
	case "list":
		return KindList, nil
	case "", "other":
		return KindOther, nil
	}
	return KindOther, fmt.Errorf("unknown kind %q", s)
}
