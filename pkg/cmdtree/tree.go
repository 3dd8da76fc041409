// Package cmdtree defines the canonical command-token trees for yangsh.
//
// This is the single source of truth for the shell's command vocabulary:
// dispatch, tab completion, ? help, and the "list" command all read the
// same arena. Tokens are stored flat and refer to each other by index, and
// children keep registration order, so enumeration output is reproducible
// across runs for the same tree construction.
package cmdtree

import (
	"strings"
)

// TokenID identifies a token within one Commands arena.
type TokenID int32

// None is the null token id.
const None TokenID = -1

// TokenKind distinguishes the two vocabularies of a command path.
//
// Word tokens are fixed literal subcommands the operator types verbatim;
// listings render them unchanged. Keyword tokens are parameter slots named
// for the value they accept; listings render the name upper-cased to mark
// where the operator substitutes a concrete value.
type TokenKind int

const (
	Word TokenKind = iota
	Keyword
)

// Token is one node of the command trie. A token with a non-empty Action is
// a valid command endpoint; it may still have children for longer commands.
type Token struct {
	Name     string
	Kind     TokenKind
	Desc     string
	Action   string // action id; empty means purely structural
	Multi    bool   // Keyword only: captures all remaining input fields
	Parent   TokenID
	Children []TokenID
}

// Commands holds the command trie arena and its well-known roots.
type Commands struct {
	arena []Token

	// ExecRoot is the operational-mode command root.
	ExecRoot TokenID
	// ConfigDflt holds the built-in default configuration commands
	// (commit, discard, validate, ...).
	ConfigDflt TokenID
	// ConfigInternal holds the built-in configuration-root commands
	// (exit, end, list, pwd, ...).
	ConfigInternal TokenID
	// ConfigRoot is the schema-derived configuration command root.
	ConfigRoot TokenID

	// configNodes maps a schema path to the token subtree for that nesting
	// level, so a configure-mode nesting path selects its own sub-root.
	configNodes map[string]TokenID
}

// New returns a Commands with the four structural roots allocated.
func New() *Commands {
	c := &Commands{configNodes: make(map[string]TokenID)}
	c.ExecRoot = c.addRoot()
	c.ConfigDflt = c.addRoot()
	c.ConfigInternal = c.addRoot()
	c.ConfigRoot = c.addRoot()
	c.configNodes["/"] = c.ConfigRoot
	return c
}

func (c *Commands) addRoot() TokenID {
	id := TokenID(len(c.arena))
	c.arena = append(c.arena, Token{Parent: None})
	return id
}

// Token returns the token for id. The pointer is valid until the next Add.
func (c *Commands) Token(id TokenID) *Token {
	return &c.arena[id]
}

// Add appends tok as the last child of parent, preserving registration order.
func (c *Commands) Add(parent TokenID, tok Token) TokenID {
	id := TokenID(len(c.arena))
	tok.Parent = parent
	c.arena = append(c.arena, tok)
	p := &c.arena[parent]
	p.Children = append(p.Children, id)
	return id
}

// AddWord registers a literal subcommand token.
func (c *Commands) AddWord(parent TokenID, name, desc string) TokenID {
	return c.Add(parent, Token{Name: name, Kind: Word, Desc: desc})
}

// AddKeyword registers a parameter token. name is also the argument name the
// resolver captures the typed value under.
func (c *Commands) AddKeyword(parent TokenID, name, desc string) TokenID {
	return c.Add(parent, Token{Name: name, Kind: Keyword, Desc: desc})
}

// SetAction marks id as a valid command endpoint handled by action.
func (c *Commands) SetAction(id TokenID, action string) TokenID {
	c.arena[id].Action = action
	return id
}

// ConfigNode returns the config-command sub-root for a schema path
// ("/" or "" selects the top level), or None.
func (c *Commands) ConfigNode(path string) TokenID {
	if path == "" {
		path = "/"
	}
	if id, ok := c.configNodes[path]; ok {
		return id
	}
	return None
}

// Enumerate walks every descendant of root in registration order and calls
// fn once per executable command path, rendered as space-joined tokens with
// a trailing space. Keyword tokens render upper-cased, Word tokens verbatim.
// Each call re-walks from scratch; returning false from fn stops the walk.
func (c *Commands) Enumerate(root TokenID, fn func(line string) bool) {
	c.walk(root, func(id TokenID) bool {
		if c.arena[id].Action == "" {
			return true
		}
		return fn(c.renderPath(root, id))
	})
}

// List collects the Enumerate output into a slice.
func (c *Commands) List(root TokenID) []string {
	var lines []string
	c.Enumerate(root, func(line string) bool {
		lines = append(lines, line)
		return true
	})
	return lines
}

func (c *Commands) walk(id TokenID, fn func(id TokenID) bool) bool {
	for _, child := range c.arena[id].Children {
		if !fn(child) {
			return false
		}
		if !c.walk(child, fn) {
			return false
		}
	}
	return true
}

// renderPath rebuilds the command string for id by walking parent links up
// to, but not including, root. The walk stops on root identity, so it is
// correct regardless of the order tokens were inserted in.
func (c *Commands) renderPath(root, id TokenID) string {
	var ids []TokenID
	for cur := id; cur != root && cur != None; cur = c.arena[cur].Parent {
		ids = append(ids, cur)
	}

	var b strings.Builder
	for i := len(ids) - 1; i >= 0; i-- {
		tok := &c.arena[ids[i]]
		switch tok.Kind {
		case Keyword:
			b.WriteString(strings.ToUpper(tok.Name))
		case Word:
			b.WriteString(tok.Name)
		}
		b.WriteByte(' ')
	}
	return b.String()
}
