// yangsh is the interactive management console for yangshd.
//
// It connects to the yangshd management API, derives its configuration
// command vocabulary from the device schema, and runs a mode-based shell
// with completion, '?' help and paged output.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/yangsh/yangsh/pkg/cli"
	"github.com/yangsh/yangsh/pkg/client"
	"github.com/yangsh/yangsh/pkg/cmdtree"
	"github.com/yangsh/yangsh/pkg/logging"
	"github.com/yangsh/yangsh/pkg/schema"
	"github.com/yangsh/yangsh/pkg/session"
)

var (
	addr        string
	schemaFiles []string
	noPager     bool
	metricsAddr string
	logLevel    string
	oneShot     string

	rootCmd = &cobra.Command{
		Use:           "yangsh",
		Short:         "Interactive management console for yangshd",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run()
		},
	}
)

func init() {
	rootCmd.Flags().StringVar(&addr, "addr", "127.0.0.1:8080", "yangshd API address")
	rootCmd.Flags().StringSliceVar(&schemaFiles, "schema", nil, "additional schema documents to merge")
	rootCmd.Flags().BoolVar(&noPager, "no-pager", false, "never page command output")
	rootCmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "expose Prometheus metrics on this address")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	rootCmd.Flags().StringVarP(&oneShot, "command", "c", "", "execute one command and exit")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "yangsh: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	level, err := parseLevel(logLevel)
	if err != nil {
		return err
	}
	ring := logging.Setup(level, 1024)

	sc, err := schema.LoadFiles(schemaFiles...)
	if err != nil {
		return err
	}

	c := client.New(addr)
	st, err := c.Status()
	if err != nil {
		return fmt.Errorf("cannot reach yangshd at %s: %w", addr, err)
	}
	slog.Info("connected", "addr", addr, "version", st.Version, "uptime", st.Uptime)

	cmds := cmdtree.Defaults()
	cmds.BuildConfigCommands(sc)

	hostname := st.Hostname
	if hostname == "" {
		hostname, _ = os.Hostname()
	}
	username := os.Getenv("USER")
	if username == "" {
		username = "operator"
	}

	sess := session.New(c, sc, hostname, username, !noPager)
	shell := cli.New(sess, cmds, ring)

	cli.ServeMetrics(metricsAddr)

	if oneShot != "" {
		return shell.RunCommand(oneShot)
	}
	return shell.Run()
}

func parseLevel(s string) (slog.Level, error) {
	switch s {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("unknown log level %q", s)
}
