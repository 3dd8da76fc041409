package datatree

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/beevik/etree"

	"github.com/yangsh/yangsh/pkg/schema"
)

// BindXML builds a typed tree from an XML snapshot, guided by the schema.
// Child order follows the schema; sibling list entries keep their document
// order. Leaves that are absent but carry a schema default materialize as
// IsDefault nodes inside every bound container and list entry.
func BindXML(sc *schema.Schema, data []byte) (*Tree, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("parse snapshot: %w", err)
	}
	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("parse snapshot: no root element")
	}

	t := New()
	if err := bindXMLChildren(t, RootID, sc.Root, root); err != nil {
		return nil, err
	}
	return t, nil
}

func bindXMLChildren(t *Tree, parent NodeID, sn *schema.SNode, el *etree.Element) error {
	for _, cs := range sn.Children {
		elems := el.SelectElements(cs.Name)
		switch cs.Kind {
		case schema.KindLeaf, schema.KindListKeyLeaf:
			if len(elems) > 0 {
				t.Add(parent, Node{
					Name:  cs.Name,
					Kind:  cs.Kind,
					Value: strings.TrimSpace(elems[0].Text()),
				})
			} else if cs.Default != "" {
				t.Add(parent, Node{
					Name:      cs.Name,
					Kind:      cs.Kind,
					Value:     cs.Default,
					IsDefault: true,
				})
			} else if cs.Kind == schema.KindListKeyLeaf {
				return fmt.Errorf("list %q entry: missing key %q", sn.Name, cs.Name)
			}

		case schema.KindLeafList:
			for _, e := range elems {
				t.Add(parent, Node{
					Name:  cs.Name,
					Kind:  cs.Kind,
					Value: strings.TrimSpace(e.Text()),
				})
			}

		case schema.KindContainer, schema.KindNonPresenceContainer:
			if len(elems) == 0 {
				continue
			}
			id := t.Add(parent, Node{Name: cs.Name, Kind: cs.Kind})
			if err := bindXMLChildren(t, id, cs, elems[0]); err != nil {
				return err
			}

		case schema.KindList:
			for _, e := range elems {
				id := t.Add(parent, Node{Name: cs.Name, Kind: cs.Kind})
				if err := bindXMLChildren(t, id, cs, e); err != nil {
					return err
				}
			}

		case schema.KindOther:
		}
	}
	return nil
}

// BindJSON builds a typed tree from a JSON object snapshot. Semantics match
// BindXML; scalar values are canonicalized (numbers keep their literal form,
// booleans render as "true"/"false").
func BindJSON(sc *schema.Schema, data []byte) (*Tree, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var top map[string]any
	if err := dec.Decode(&top); err != nil {
		return nil, fmt.Errorf("parse snapshot: %w", err)
	}

	t := New()
	if err := bindJSONChildren(t, RootID, sc.Root, top); err != nil {
		return nil, err
	}
	return t, nil
}

func bindJSONChildren(t *Tree, parent NodeID, sn *schema.SNode, obj map[string]any) error {
	for _, cs := range sn.Children {
		raw, present := obj[cs.Name]
		switch cs.Kind {
		case schema.KindLeaf, schema.KindListKeyLeaf:
			if present {
				v, err := canonicalScalar(raw)
				if err != nil {
					return fmt.Errorf("leaf %q: %w", cs.Name, err)
				}
				t.Add(parent, Node{Name: cs.Name, Kind: cs.Kind, Value: v})
			} else if cs.Default != "" {
				t.Add(parent, Node{Name: cs.Name, Kind: cs.Kind, Value: cs.Default, IsDefault: true})
			} else if cs.Kind == schema.KindListKeyLeaf {
				return fmt.Errorf("list %q entry: missing key %q", sn.Name, cs.Name)
			}

		case schema.KindLeafList:
			if !present {
				continue
			}
			arr, ok := raw.([]any)
			if !ok {
				return fmt.Errorf("leaf-list %q: expected array", cs.Name)
			}
			for _, item := range arr {
				v, err := canonicalScalar(item)
				if err != nil {
					return fmt.Errorf("leaf-list %q: %w", cs.Name, err)
				}
				t.Add(parent, Node{Name: cs.Name, Kind: cs.Kind, Value: v})
			}

		case schema.KindContainer, schema.KindNonPresenceContainer:
			if !present {
				continue
			}
			child, ok := raw.(map[string]any)
			if !ok {
				return fmt.Errorf("container %q: expected object", cs.Name)
			}
			id := t.Add(parent, Node{Name: cs.Name, Kind: cs.Kind})
			if err := bindJSONChildren(t, id, cs, child); err != nil {
				return err
			}

		case schema.KindList:
			if !present {
				continue
			}
			arr, ok := raw.([]any)
			if !ok {
				return fmt.Errorf("list %q: expected array", cs.Name)
			}
			for _, item := range arr {
				entry, ok := item.(map[string]any)
				if !ok {
					return fmt.Errorf("list %q: expected array of objects", cs.Name)
				}
				id := t.Add(parent, Node{Name: cs.Name, Kind: cs.Kind})
				if err := bindJSONChildren(t, id, cs, entry); err != nil {
					return err
				}
			}

		case schema.KindOther:
		}
	}
	return nil
}

func canonicalScalar(v any) (string, error) {
	switch x := v.(type) {
	case string:
		return x, nil
	case json.Number:
		return x.String(), nil
	case bool:
		if x {
			return "true", nil
		}
		return "false", nil
	case nil:
		return "", nil
	}
	return "", fmt.Errorf("unsupported scalar %T", v)
}
