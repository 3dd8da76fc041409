package cli

import (
	"fmt"
	"strings"

	"github.com/yangsh/yangsh/pkg/cmdtree"
	"github.com/yangsh/yangsh/pkg/session"
)

// completer implements readline.AutoCompleter over the command trees.
type completer struct {
	shell *Shell
}

// Do completes the partial word at the cursor. Parameter placeholders are
// shown by '?' help but never inserted.
func (c *completer) Do(line []rune, pos int) ([][]rune, int) {
	words, partial := splitInput(string(line[:pos]))

	var out [][]rune
	for _, cand := range c.shell.candidatesFor(words, partial) {
		if isPlaceholder(cand.Name) {
			continue
		}
		out = append(out, []rune(cand.Name[len(partial):]+" "))
	}
	return out, len(partial)
}

// splitInput separates completed words from the word being typed.
func splitInput(text string) (words []string, partial string) {
	words = strings.Fields(text)
	if len(words) > 0 && !strings.HasSuffix(text, " ") {
		partial = words[len(words)-1]
		words = words[:len(words)-1]
	}
	return words, partial
}

// isPlaceholder reports whether a candidate is a rendered parameter slot
// rather than a typable subcommand.
func isPlaceholder(name string) bool {
	return name != strings.ToLower(name)
}

// candidatesFor collects completion candidates from every command root
// visible in the current mode.
func (s *Shell) candidatesFor(words []string, partial string) []cmdtree.Candidate {
	m, configure := s.sess.Mode.(session.Configure)
	if !configure {
		return s.cmds.Candidates(s.cmds.ExecRoot, words, partial)
	}

	if len(words) > 0 && words[0] == "run" {
		return s.cmds.Candidates(s.cmds.ExecRoot, words[1:], partial)
	}

	var out []cmdtree.Candidate
	seen := make(map[string]bool)
	for _, root := range s.configRoots(m) {
		for _, cand := range s.cmds.Candidates(root, words, partial) {
			if seen[cand.Name] {
				continue
			}
			seen[cand.Name] = true
			out = append(out, cand)
		}
	}
	return out
}

// helpListener handles the '?' key: it strips the character readline already
// inserted and prints the completion candidates for the line so far.
func (s *Shell) helpListener(line []rune, pos int, key rune) ([]rune, int, bool) {
	if key != '?' || pos < 1 {
		return line, pos, false
	}

	// Strip the '?' that readline already inserted.
	cleanLine := make([]rune, 0, len(line)-1)
	cleanLine = append(cleanLine, line[:pos-1]...)
	cleanLine = append(cleanLine, line[pos:]...)
	text := string(cleanLine[:pos-1])

	words, partial := splitInput(text)
	candidates := s.candidatesFor(words, partial)
	if len(candidates) == 0 {
		fmt.Fprintln(s.rl.Stdout(), "  (no help available)")
		return cleanLine, pos - 1, true
	}
	cmdtree.WriteHelp(s.rl.Stdout(), candidates)
	return cleanLine, pos - 1, true
}
