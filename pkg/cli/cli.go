// Package cli implements the interactive yangsh shell.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/chzyer/readline"

	"github.com/yangsh/yangsh/pkg/cmdtree"
	"github.com/yangsh/yangsh/pkg/logging"
	"github.com/yangsh/yangsh/pkg/session"
)

// Shell is the interactive command shell.
type Shell struct {
	rl   *readline.Instance
	sess *session.Session
	cmds *cmdtree.Commands
	ring *logging.Ring

	handlers map[string]handler
}

type handler func(s *Shell, args cmdtree.Args) error

// New builds a shell over an established session. ring feeds "show log".
func New(sess *session.Session, cmds *cmdtree.Commands, ring *logging.Ring) *Shell {
	s := &Shell{
		sess: sess,
		cmds: cmds,
		ring: ring,
	}
	s.handlers = defaultHandlers()
	return s
}

// Run starts the interactive loop and blocks until the operator exits.
func (s *Shell) Run() error {
	var err error
	s.rl, err = readline.NewEx(&readline.Config{
		Prompt:          s.sess.Prompt(),
		HistoryFile:     historyFile(),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		AutoComplete:    &completer{shell: s},
		Listener:        readline.FuncListener(s.helpListener),
	})
	if err != nil {
		return fmt.Errorf("readline init: %w", err)
	}
	defer s.rl.Close()

	fmt.Printf("yangsh — connected to %s\n", s.sess.Hostname)
	fmt.Println("Type '?' for help")
	fmt.Println()

	for {
		line, err := s.rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				continue
			}
			if err == io.EOF {
				// Ctrl-D leaves configuration mode first, then the shell.
				if _, ok := s.sess.Mode.(session.Configure); ok {
					s.leaveConfigure()
					continue
				}
				break
			}
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if err := s.dispatch(line); err != nil {
			if err == errExit {
				return nil
			}
			fmt.Printf("%% %v\n", err)
		}
		s.rl.SetPrompt(s.sess.Prompt())
	}
	return nil
}

var errExit = fmt.Errorf("exit")

// RunCommand executes one command line without the interactive loop.
func (s *Shell) RunCommand(line string) error {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}
	if err := s.dispatch(line); err != nil && err != errExit {
		return err
	}
	return nil
}

func historyFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "/tmp/yangsh_history"
	}
	return home + "/.yangsh_history"
}

// dispatch resolves and executes one input line against the current mode.
func (s *Shell) dispatch(line string) error {
	start := time.Now()
	fields := strings.Fields(line)

	action, args, err := s.resolve(fields)
	if err != nil {
		commandErrors.Inc()
		return err
	}

	h, ok := s.handlers[action]
	if !ok {
		commandErrors.Inc()
		return fmt.Errorf("no handler for command: %s", line)
	}

	commandsTotal.WithLabelValues(action).Inc()
	err = h(s, args)
	commandSeconds.Observe(time.Since(start).Seconds())
	if err != nil && err != errExit {
		commandErrors.Inc()
		slog.Debug("command failed", "command", line, "error", err)
	}
	return err
}

// resolve picks the command roots for the current mode and matches fields
// against them in order.
func (s *Shell) resolve(fields []string) (string, cmdtree.Args, error) {
	m, configure := s.sess.Mode.(session.Configure)
	if !configure {
		return s.cmds.Resolve(s.cmds.ExecRoot, fields)
	}

	// "run <command>" executes an operational command without leaving
	// configuration mode.
	if fields[0] == "run" {
		if len(fields) < 2 {
			return "", nil, fmt.Errorf("run: missing command")
		}
		return s.cmds.Resolve(s.cmds.ExecRoot, fields[1:])
	}

	for _, root := range s.configRoots(m) {
		action, args, err := s.cmds.Resolve(root, fields)
		if err == nil {
			return action, args, nil
		}
	}
	return "", nil, fmt.Errorf("unknown command: %s", strings.Join(fields, " "))
}

// configRoots returns the command roots visible at the current nesting
// level, in resolution order.
func (s *Shell) configRoots(m session.Configure) []cmdtree.TokenID {
	roots := []cmdtree.TokenID{s.cmds.ConfigDflt, s.cmds.ConfigInternal}
	if node := s.cmds.ConfigNode(m.SchemaPath()); node != cmdtree.None {
		roots = append(roots, node)
	}
	return roots
}

// leaveConfigure exits one nesting level, or configuration mode at the top.
func (s *Shell) leaveConfigure() {
	m, ok := s.sess.Mode.(session.Configure)
	if !ok {
		return
	}
	if len(m.Steps) == 0 {
		s.sess.Mode = session.Operational{}
		fmt.Println("Exiting configuration mode")
	} else {
		s.sess.Mode = m.Up()
	}
	if s.rl != nil {
		s.rl.SetPrompt(s.sess.Prompt())
	}
}
