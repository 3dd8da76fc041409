package cmdtree

import (
	"fmt"
	"strings"
)

// Arg is one matched token of a resolved command. Literal args record that a
// fixed subcommand was present; parameter args carry the typed value.
type Arg struct {
	Name    string
	Value   string
	Literal bool
}

// Args holds the matched tokens of a resolved command, in input order.
type Args []Arg

// Has reports whether any matched token has the given name.
func (a Args) Has(name string) bool {
	for _, arg := range a {
		if arg.Name == name {
			return true
		}
	}
	return false
}

// Value returns the typed value of the named parameter, if present.
func (a Args) Value(name string) (string, bool) {
	for _, arg := range a {
		if arg.Name == name && !arg.Literal {
			return arg.Value, true
		}
	}
	return "", false
}

// ValueOr returns the typed value of the named parameter or def.
func (a Args) ValueOr(name, def string) string {
	if v, ok := a.Value(name); ok {
		return v
	}
	return def
}

// Tokens returns the command path as daemon path tokens: literal names for
// Word matches, typed values for Keyword matches.
func (a Args) Tokens() []string {
	toks := make([]string, 0, len(a))
	for _, arg := range a {
		if arg.Literal {
			toks = append(toks, arg.Name)
		} else {
			toks = append(toks, arg.Value)
		}
	}
	return toks
}

// Resolve matches fields against the trie under root and returns the action
// id of the matched endpoint together with the matched arguments.
//
// Word children match their name exactly, or by unique prefix. When no Word
// child matches, the first Keyword child captures the field as a parameter;
// a Multi keyword captures all remaining fields at once.
func (c *Commands) Resolve(root TokenID, fields []string) (string, Args, error) {
	cur := root
	var args Args

	for i := 0; i < len(fields); i++ {
		field := fields[i]
		next, tok := c.matchChild(cur, field)
		if next == None {
			return "", nil, fmt.Errorf("unknown command: %s", strings.Join(fields[:i+1], " "))
		}

		switch tok.Kind {
		case Word:
			args = append(args, Arg{Name: tok.Name, Value: tok.Name, Literal: true})
		case Keyword:
			if tok.Multi {
				args = append(args, Arg{Name: tok.Name, Value: strings.Join(fields[i:], " ")})
				i = len(fields) - 1
			} else {
				args = append(args, Arg{Name: tok.Name, Value: field})
			}
		}
		cur = next
	}

	if cur == root {
		return "", nil, fmt.Errorf("empty command")
	}
	if action := c.arena[cur].Action; action != "" {
		return action, args, nil
	}
	return "", nil, fmt.Errorf("incomplete command: %s", strings.Join(fields, " "))
}

// matchChild picks the child of cur that accepts field: an exact Word match
// wins, then a unique Word prefix match, then the first Keyword child.
func (c *Commands) matchChild(cur TokenID, field string) (TokenID, *Token) {
	var prefix TokenID = None
	ambiguous := false
	var keyword TokenID = None

	for _, child := range c.arena[cur].Children {
		tok := &c.arena[child]
		switch tok.Kind {
		case Word:
			if tok.Name == field {
				return child, tok
			}
			if strings.HasPrefix(tok.Name, field) {
				if prefix != None {
					ambiguous = true
				}
				prefix = child
			}
		case Keyword:
			if keyword == None {
				keyword = child
			}
		}
	}

	if prefix != None && !ambiguous {
		return prefix, &c.arena[prefix]
	}
	if keyword != None {
		return keyword, &c.arena[keyword]
	}
	return None, nil
}

// Candidates returns the completion candidates under root after the given
// complete words, filtered by the partial word being typed.
func (c *Commands) Candidates(root TokenID, words []string, partial string) []Candidate {
	cur := root
	for _, w := range words {
		next, _ := c.matchChild(cur, w)
		if next == None {
			return nil
		}
		cur = next
	}

	var out []Candidate
	for _, child := range c.arena[cur].Children {
		tok := &c.arena[child]
		name := tok.Name
		if tok.Kind == Keyword {
			name = strings.ToUpper(tok.Name)
			if partial != "" {
				continue // parameters are typed, not completed
			}
		} else if !strings.HasPrefix(name, partial) {
			continue
		}
		out = append(out, Candidate{Name: name, Desc: tok.Desc})
	}
	return out
}
