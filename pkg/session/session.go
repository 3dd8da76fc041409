// Package session holds the per-connection console state: the daemon client,
// the loaded schema, the interaction mode and the output path (pager or
// direct print).
package session

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/yangsh/yangsh/pkg/client"
	"github.com/yangsh/yangsh/pkg/datatree"
	"github.com/yangsh/yangsh/pkg/schema"
)

// Session is one interactive console session.
type Session struct {
	Client   *client.Client
	Schema   *schema.Schema
	Mode     Mode
	Hostname string
	Username string

	usePager bool
}

// New returns a session in operational mode.
func New(c *client.Client, sc *schema.Schema, hostname, username string, usePager bool) *Session {
	return &Session{
		Client:   c,
		Schema:   sc,
		Mode:     Operational{},
		Hostname: hostname,
		Username: username,
		usePager: usePager,
	}
}

// Config fetches the given configuration datastore and binds it to a typed
// tree. Defaults always materialize in the tree; rendering decides whether
// to show them.
func (s *Session) Config(t client.ConfigType) (*datatree.Tree, error) {
	data, err := s.Client.GetConfig(t, client.FormatXML, true)
	if err != nil {
		return nil, err
	}
	return datatree.BindXML(s.Schema, []byte(data))
}

// State fetches state data, optionally limited to a subtree, and binds it.
func (s *Session) State(xpath string) (*datatree.Tree, error) {
	data, err := s.Client.GetState(xpath, client.FormatXML)
	if err != nil {
		return nil, err
	}
	return datatree.BindXML(s.Schema, []byte(data))
}

// UpdateHostname changes the prompt hostname for the rest of the session.
func (s *Session) UpdateHostname(name string) {
	slog.Info("hostname changed", "old", s.Hostname, "new", name)
	s.Hostname = name
}

// Prompt renders the mode-dependent prompt.
func (s *Session) Prompt() string {
	switch m := s.Mode.(type) {
	case Configure:
		banner := "[edit]"
		if d := m.Display(); d != "" {
			banner = "[edit " + d + "]"
		}
		return fmt.Sprintf("%s\n%s@%s# ", banner, s.Username, s.Hostname)
	default:
		return fmt.Sprintf("%s@%s> ", s.Username, s.Hostname)
	}
}

// pagerEnabled reports whether output should go through the pager.
func (s *Session) pagerEnabled() bool {
	return s.usePager && isatty.IsTerminal(os.Stdout.Fd())
}
