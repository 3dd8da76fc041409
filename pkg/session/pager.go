package session

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
)

// Page sends output through the pager when one is appropriate, otherwise
// prints it directly. Empty output produces nothing. The pager process is
// scoped to this call: it is started, fed, and waited on before Page
// returns, on every path.
func (s *Session) Page(output string) {
	if output == "" {
		return
	}
	if !s.pagerEnabled() {
		fmt.Print(output)
		return
	}
	if err := runPager(output); err != nil {
		slog.Warn("pager failed, printing directly", "error", err)
		fmt.Print(output)
	}
}

// runPager pipes output through less. -F quits immediately when the output
// fits on one screen, -X keeps it on the terminal afterwards.
func runPager(output string) error {
	cmd := exec.Command("less", "-F", "-X")
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return err
	}
	if err := cmd.Start(); err != nil {
		return err
	}

	// The pager may exit (operator presses q) before everything is
	// written; a broken pipe here is normal termination.
	io.WriteString(stdin, output)
	stdin.Close()

	return cmd.Wait()
}
