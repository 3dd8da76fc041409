package cmdtree

import (
	"github.com/yangsh/yangsh/pkg/schema"
)

// BuildConfigCommands derives the configure-mode command vocabulary from the
// device schema and attaches it under ConfigRoot. Every schema node that can
// appear in a configuration command contributes tokens, and every nesting
// level (containers and list entries) is recorded so a configure-mode
// nesting path can select its sub-root.
func (c *Commands) BuildConfigCommands(sc *schema.Schema) {
	c.buildSchemaNode(c.ConfigRoot, sc.Root)
}

func (c *Commands) buildSchemaNode(parent TokenID, sn *schema.SNode) {
	for _, cs := range sn.Children {
		switch cs.Kind {
		case schema.KindContainer:
			// Typing the container name alone configures its presence.
			id := c.SetAction(c.AddWord(parent, cs.Name, cs.Desc), ActionSet)
			c.configNodes[cs.Path()] = id
			c.buildSchemaNode(id, cs)

		case schema.KindNonPresenceContainer:
			id := c.AddWord(parent, cs.Name, cs.Desc)
			c.configNodes[cs.Path()] = id
			c.buildSchemaNode(id, cs)

		case schema.KindLeaf, schema.KindLeafList:
			id := c.AddWord(parent, cs.Name, cs.Desc)
			c.SetAction(c.AddKeyword(id, "value", cs.Desc), ActionSet)

		case schema.KindList:
			cur := c.AddWord(parent, cs.Name, cs.Desc)
			for _, key := range cs.Keys {
				desc := ""
				if kc := cs.Child(key); kc != nil {
					desc = kc.Desc
				}
				cur = c.AddKeyword(cur, key, desc)
			}
			// A fully keyed entry is an edit target; its children hang off
			// the last key token.
			c.SetAction(cur, ActionEdit)
			c.configNodes[cs.Path()] = cur
			c.buildSchemaNode(cur, cs)

		case schema.KindListKeyLeaf:
			// Represented by the key tokens above.

		case schema.KindOther:
		}
	}
}
