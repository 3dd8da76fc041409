package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yangsh/yangsh/pkg/client"
	"github.com/yangsh/yangsh/pkg/cmdtree"
	"github.com/yangsh/yangsh/pkg/datatree"
	"github.com/yangsh/yangsh/pkg/schema"
	"github.com/yangsh/yangsh/pkg/session"
)

func defaultHandlers() map[string]handler {
	return map[string]handler{
		cmdtree.ActionConfigure: handleConfigure,
		cmdtree.ActionExit:      handleExit,
		cmdtree.ActionEnd:       handleEnd,
		cmdtree.ActionList:      handleList,
		cmdtree.ActionPwd:       handlePwd,
		cmdtree.ActionHostname:  handleHostname,
		cmdtree.ActionEdit:      handleEdit,
		cmdtree.ActionUp:        handleUp,
		cmdtree.ActionTop:       handleTop,
		cmdtree.ActionCommit:    handleCommit,
		cmdtree.ActionDiscard:   handleDiscard,
		cmdtree.ActionValidate:  handleValidate,
		cmdtree.ActionSet:       handleSet,
		cmdtree.ActionDelete:    handleDelete,

		cmdtree.ActionShowConfig:  handleShowConfig,
		cmdtree.ActionShowChanges: handleShowChanges,
		cmdtree.ActionShowState:   handleShowState,
		cmdtree.ActionShowModules: handleShowModules,
		cmdtree.ActionShowLog:     handleShowLog,

		cmdtree.ActionShowOspfIface:    handleShowOspfInterface,
		cmdtree.ActionShowOspfIfaceDet: handleShowOspfInterfaceDetail,
		cmdtree.ActionShowOspfNbr:      handleShowOspfNeighbor,
		cmdtree.ActionShowOspfNbrDet:   handleShowOspfNeighborDetail,
		cmdtree.ActionShowOspfRoute:    handleShowOspfRoute,
	}
}

func handleConfigure(s *Shell, args cmdtree.Args) error {
	s.sess.Mode = session.Configure{}
	fmt.Println("Entering configuration mode")
	fmt.Println("[edit]")
	return nil
}

func handleExit(s *Shell, args cmdtree.Args) error {
	if _, ok := s.sess.Mode.(session.Configure); ok {
		s.leaveConfigure()
		return nil
	}
	return errExit
}

func handleEnd(s *Shell, args cmdtree.Args) error {
	s.sess.Mode = session.Operational{}
	fmt.Println("Exiting configuration mode")
	return nil
}

func handleList(s *Shell, args cmdtree.Args) error {
	var roots []cmdtree.TokenID
	if m, ok := s.sess.Mode.(session.Configure); ok {
		roots = s.configRoots(m)
	} else {
		roots = []cmdtree.TokenID{s.cmds.ExecRoot}
	}

	var b strings.Builder
	for i, root := range roots {
		if i > 0 {
			b.WriteString("---\n")
		}
		for _, line := range s.cmds.List(root) {
			b.WriteString(line)
			b.WriteByte('\n')
		}
	}
	s.sess.Page(b.String())
	return nil
}

func handlePwd(s *Shell, args cmdtree.Args) error {
	m, ok := s.sess.Mode.(session.Configure)
	if !ok {
		return nil
	}
	if d := m.Display(); d != "" {
		fmt.Printf("[edit %s]\n", d)
	} else {
		fmt.Println("[edit]")
	}
	return nil
}

func handleHostname(s *Shell, args cmdtree.Args) error {
	name, ok := args.Value("hostname")
	if !ok || name == "" {
		return fmt.Errorf("hostname: missing name")
	}
	s.sess.UpdateHostname(name)
	return nil
}

func handleEdit(s *Shell, args cmdtree.Args) error {
	m, ok := s.sess.Mode.(session.Configure)
	if !ok {
		return fmt.Errorf("edit: not in configuration mode")
	}
	next, err := descend(s.sess.Schema, m, editTokens(args))
	if err != nil {
		return err
	}
	s.sess.Mode = next
	return nil
}

// editTokens extracts the nesting path from a resolved edit command: either
// the freeform path of the built-in edit command, or the schema-derived
// tokens of a fully keyed list entry.
func editTokens(args cmdtree.Args) []string {
	if v, ok := args.Value("path"); ok {
		return strings.Fields(v)
	}
	return args.Tokens()
}

// descend extends the nesting path by the given tokens, validating each
// level against the schema and consuming list key values.
func descend(sc *schema.Schema, m session.Configure, tokens []string) (session.Configure, error) {
	sn := sc.Root
	for _, st := range m.Steps {
		sn = sn.Child(st.Name)
		if sn == nil {
			return m, fmt.Errorf("invalid configuration position: %s", m.SchemaPath())
		}
	}

	steps := append([]session.PathStep(nil), m.Steps...)
	for i := 0; i < len(tokens); i++ {
		c := sn.Child(tokens[i])
		if c == nil {
			return m, fmt.Errorf("unknown configuration node: %s", tokens[i])
		}
		step := session.PathStep{Name: c.Name}
		switch c.Kind {
		case schema.KindList:
			if len(tokens)-i-1 < len(c.Keys) {
				return m, fmt.Errorf("list %s: expected %d key value(s)", c.Name, len(c.Keys))
			}
			step.Keys = append(step.Keys, tokens[i+1:i+1+len(c.Keys)]...)
			i += len(c.Keys)
		case schema.KindContainer, schema.KindNonPresenceContainer:
		default:
			return m, fmt.Errorf("%s is not a configuration hierarchy", c.Name)
		}
		steps = append(steps, step)
		sn = c
	}
	return session.Configure{Steps: steps}, nil
}

func handleUp(s *Shell, args cmdtree.Args) error {
	if m, ok := s.sess.Mode.(session.Configure); ok {
		s.sess.Mode = m.Up()
	}
	return nil
}

func handleTop(s *Shell, args cmdtree.Args) error {
	if _, ok := s.sess.Mode.(session.Configure); ok {
		s.sess.Mode = session.Configure{}
	}
	return nil
}

func handleCommit(s *Shell, args cmdtree.Args) error {
	if err := s.sess.Client.Commit(args.ValueOr("comment", "")); err != nil {
		return err
	}
	fmt.Println("commit complete")
	return nil
}

func handleDiscard(s *Shell, args cmdtree.Args) error {
	if err := s.sess.Client.Discard(); err != nil {
		return err
	}
	fmt.Println("changes discarded")
	return nil
}

func handleValidate(s *Shell, args cmdtree.Args) error {
	if err := s.sess.Client.Validate(); err != nil {
		return err
	}
	fmt.Println("validation complete")
	return nil
}

func handleSet(s *Shell, args cmdtree.Args) error {
	path, err := s.fullPath(args)
	if err != nil {
		return err
	}
	return s.sess.Client.Set(path)
}

func handleDelete(s *Shell, args cmdtree.Args) error {
	path, err := s.fullPath(args)
	if err != nil {
		return err
	}
	return s.sess.Client.Delete(path)
}

// fullPath builds the absolute configuration path of a set/delete command:
// the current nesting position plus the typed path tokens.
func (s *Shell) fullPath(args cmdtree.Args) ([]string, error) {
	m, ok := s.sess.Mode.(session.Configure)
	if !ok {
		return nil, fmt.Errorf("not in configuration mode")
	}

	var tokens []string
	if v, ok := args.Value("path"); ok {
		tokens = strings.Fields(v)
	} else {
		tokens = trimCommandWords(args.Tokens())
	}
	if len(tokens) == 0 {
		return nil, fmt.Errorf("missing configuration path")
	}
	return append(m.Tokens(), tokens...), nil
}

// trimCommandWords drops a leading set/delete verb left over from the
// built-in command trees.
func trimCommandWords(tokens []string) []string {
	if len(tokens) > 0 && (tokens[0] == "set" || tokens[0] == "delete") {
		return tokens[1:]
	}
	return tokens
}

func handleShowConfig(s *Shell, args cmdtree.Args) error {
	ct := client.ConfigCandidate
	if args.Has("running") {
		ct = client.ConfigRunning
	}
	withDefaults := args.Has("with-defaults")

	if name, ok := args.Value("format"); ok {
		f, err := client.ParseFormat(name)
		if err != nil {
			return err
		}
		out, err := s.sess.Client.GetConfig(ct, f, withDefaults)
		if err != nil {
			return err
		}
		s.sess.Page(out)
		return nil
	}

	t, err := s.sess.Config(ct)
	if err != nil {
		return err
	}
	s.sess.Page(t.Flatten(datatree.RootID, withDefaults))
	return nil
}

func handleShowChanges(s *Shell, args cmdtree.Args) error {
	running, err := s.sess.Config(client.ConfigRunning)
	if err != nil {
		return err
	}
	candidate, err := s.sess.Config(client.ConfigCandidate)
	if err != nil {
		return err
	}
	diff, err := datatree.DiffConfigs(running, candidate)
	if err != nil {
		return err
	}
	s.sess.Page(diff)
	return nil
}

func handleShowState(s *Shell, args cmdtree.Args) error {
	f := client.FormatXML
	if name, ok := args.Value("format"); ok {
		parsed, err := client.ParseFormat(name)
		if err != nil {
			return err
		}
		f = parsed
	}
	out, err := s.sess.Client.GetState(args.ValueOr("xpath", ""), f)
	if err != nil {
		return err
	}
	s.sess.Page(out)
	return nil
}

func handleShowLog(s *Shell, args cmdtree.Args) error {
	n := 0
	if v, ok := args.Value("count"); ok {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 1 {
			return fmt.Errorf("invalid count: %s", v)
		}
		n = parsed
	}
	lines := s.ring.Tail(n)
	if len(lines) == 0 {
		return nil
	}
	s.sess.Page(strings.Join(lines, "\n") + "\n")
	return nil
}
