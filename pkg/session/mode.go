package session

import "strings"

// Mode is the shell's interaction mode. The two implementations below are
// the only ones; handlers switch exhaustively over them.
type Mode interface {
	mode()
}

// Operational is the read-only default mode.
type Operational struct{}

func (Operational) mode() {}

// Configure is configuration mode, positioned at a nesting path inside the
// configuration hierarchy. An empty path is the top level.
type Configure struct {
	Steps []PathStep
}

func (Configure) mode() {}

// PathStep is one nesting level of a configuration path: a schema node name
// plus, for list entries, the entry's key values.
type PathStep struct {
	Name string
	Keys []string
}

// SchemaPath renders the slash-separated schema path of the nesting
// position, without key values. The top level renders as "/".
func (m Configure) SchemaPath() string {
	if len(m.Steps) == 0 {
		return "/"
	}
	var b strings.Builder
	for _, st := range m.Steps {
		b.WriteByte('/')
		b.WriteString(st.Name)
	}
	return b.String()
}

// Tokens flattens the nesting path into command tokens, keys included.
func (m Configure) Tokens() []string {
	var toks []string
	for _, st := range m.Steps {
		toks = append(toks, st.Name)
		toks = append(toks, st.Keys...)
	}
	return toks
}

// Display renders the nesting path for the "[edit ...]" prompt banner.
func (m Configure) Display() string {
	return strings.Join(m.Tokens(), " ")
}

// Up returns the mode one nesting level higher. At the top level it returns
// the top level unchanged.
func (m Configure) Up() Configure {
	if len(m.Steps) == 0 {
		return m
	}
	return Configure{Steps: m.Steps[:len(m.Steps)-1]}
}
