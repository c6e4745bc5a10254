package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/ballsort/internal/core"
	"github.com/vovakirdan/ballsort/internal/storage"
)

// shutdownGrace bounds how long open sessions get to finish on shutdown.
const shutdownGrace = 10 * time.Second

// SSHServerConfig describes where and how the SSH server listens.
type SSHServerConfig struct {
	Address     string        // host:port, e.g. ":23234"
	HostKeyPath string        // empty: ~/.ballsort/host_key, generated on first start
	DBPath      string        // results database shared by all players
	IdleTimeout time.Duration // zero disables the idle timeout

	// Runtime is the base config of every session; screen size and seed
	// come from each connection.
	Runtime core.RuntimeConfig
}

// SSHServer serves the puzzle over SSH: every connection gets its own
// SessionModel, and solved puzzles land in one shared results store.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger
}

// NewSSHServer prepares the host key, the results store and the wish server.
// A results database that cannot be opened is logged and play continues
// without recording results.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "ballsort-ssh",
	})

	hostKeyPath, err := resolveHostKey(cfg.HostKeyPath)
	if err != nil {
		return nil, err
	}

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open results database", "error", err)
		store = nil
	}

	srv := &SSHServer{config: cfg, store: store, logger: logger}

	// Middleware runs last-to-first: log, require a terminal, then play.
	server, err := wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			activeterm.Middleware(),
			srv.loggingMiddleware,
		),
	)
	if err != nil {
		srv.closeStore()
		return nil, fmt.Errorf("tui: cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// resolveHostKey returns the host key location and makes sure its directory
// exists; wish generates the key itself when the file is missing.
func resolveHostKey(path string) (string, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("tui: cannot get home directory: %w", err)
		}
		path = filepath.Join(home, ".ballsort", "host_key")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return "", fmt.Errorf("tui: cannot create host key directory: %w", err)
	}
	return path, nil
}

// teaHandler creates the Bubble Tea program of one SSH session.
func (s *SSHServer) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := sess.Pty()

	cfg := s.config.Runtime
	cfg.ScreenW = pty.Window.Width
	cfg.ScreenH = pty.Window.Height
	cfg.Seed = time.Now().UnixNano()

	model, err := NewSessionModel(SessionOptions{
		Store:  s.store,
		Config: cfg,
		Player: sess.User(),
		Logger: s.logger.With("user", sess.User()),
	})
	if err != nil {
		s.logger.Error("cannot start session", "user", sess.User(), "error", err)
		return nil, nil
	}

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	}
}

// loggingMiddleware logs when sessions open and close.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		start := time.Now()
		s.logger.Info("session started", "user", sess.User(), "remote", sess.RemoteAddr().String())
		next(sess)
		s.logger.Info("session ended",
			"user", sess.User(),
			"remote", sess.RemoteAddr().String(),
			"duration", time.Since(start).Round(time.Second),
		)
	}
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *SSHServer) Run(ctx context.Context) error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	errc := make(chan error, 1)
	go func() {
		errc <- s.server.ListenAndServe()
	}()

	select {
	case err := <-errc:
		s.closeStore()
		if errors.Is(err, ssh.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("tui: SSH server: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("stopping SSH server")
	return s.Shutdown()
}

// Shutdown gracefully stops the server and closes the results store.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()

	defer s.closeStore()
	return s.server.Shutdown(ctx)
}

func (s *SSHServer) closeStore() {
	if s.store == nil {
		return
	}
	if err := s.store.Close(); err != nil {
		s.logger.Warn("closing results database", "error", err)
	}
	s.store = nil
}

// Addr returns the configured listen address.
func (s *SSHServer) Addr() string {
	return s.config.Address
}
