package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ballsort/internal/config"
	"github.com/vovakirdan/ballsort/internal/core"
	"github.com/vovakirdan/ballsort/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own session starting at the home menu.
Results are stored per-server under the SSH user name.

Host key handling:
  - If --host-key (or server.host_key) is set, uses that key file
  - Otherwise, auto-generates a key at ~/.ballsort/host_key

Examples:
  ballsort serve                           # Listen on :23234 with auto-generated key
  ballsort serve --ssh :2222               # Listen on port 2222
  ballsort serve --host-key ./my_host_key  # Use specific host key
  ballsort serve --db ./results.db         # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port, or $"+config.EnvSSHAddr+")")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg := tui.SSHServerConfig{
		Address:     appConfig.Server.Address,
		HostKeyPath: appConfig.Server.HostKey,
		DBPath:      appConfig.Storage.DBPath,
		IdleTimeout: appConfig.IdleTimeout(),
		Runtime:     core.DefaultConfig(),
	}
	cfg.Runtime.TickRate = appConfig.Display.TickRate
	cfg.Runtime.NoticeDuration = appConfig.NoticeDuration()

	flags := cmd.Flags()
	if flags.Changed("ssh") {
		cfg.Address = flagSSHAddr
	}
	if flags.Changed("host-key") {
		cfg.HostKeyPath = flagHostKey
	}
	if flags.Changed("idle-timeout") {
		cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		return err
	}

	fmt.Printf("Starting ball sort SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return server.Run(ctx)
}
