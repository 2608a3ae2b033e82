package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"
	"github.com/google/uuid"

	"github.com/vovakirdan/chicken-run/internal/assets"
	"github.com/vovakirdan/chicken-run/internal/config"
	"github.com/vovakirdan/chicken-run/internal/registry"
	"github.com/vovakirdan/chicken-run/internal/replay"
	"github.com/vovakirdan/chicken-run/internal/storage"
)

// sessionIDKey stores the per-connection id in the SSH context.
type sessionIDKey struct{}

// recordingKey stores the session's recording accessor in the SSH context.
type recordingKey struct{}

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.chickenrun/host_key.
	HostKeyPath string

	// DBPath is the path to the recordings database.
	// Empty disables recording.
	DBPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// Seed fixes the layout for every session; 0 seeds each session from the clock.
	Seed int64
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      "~/.chickenrun/recordings.db",
		IdleTimeout: 30 * time.Minute,
	}
}

// SSHServer hosts one independent game per SSH session.
type SSHServer struct {
	config   SSHServerConfig
	rules    config.Game
	textures assets.Set
	server   *ssh.Server
	store    *storage.Store
	logger   *log.Logger
}

// NewSSHServer creates a new SSH server. Textures are shared read-only by all
// sessions.
func NewSSHServer(cfg SSHServerConfig, rules config.Game, textures assets.Set, logger *log.Logger) (*SSHServer, error) {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "chickenrun-ssh",
		})
	}

	srv := &SSHServer{
		config:   cfg,
		rules:    rules,
		textures: textures,
		logger:   logger,
	}

	// Open storage
	if cfg.DBPath != "" {
		store, err := storage.Open(cfg.DBPath)
		if err != nil {
			logger.Warn("could not open recordings database", "error", err)
			// Continue without recording
		} else {
			srv.store = store
		}
	}

	// Resolve host key path
	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			srv.closeStore()
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".chickenrun", "host_key")
	}

	// Ensure host key directory exists
	hostKeyDir := filepath.Dir(hostKeyPath)
	if mkdirErr := os.MkdirAll(hostKeyDir, 0o700); mkdirErr != nil {
		srv.closeStore()
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	}

	server, err := wish.NewServer(opts...)
	if err != nil {
		srv.closeStore()
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a game model for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	id, _ := sshSession.Context().Value(sessionIDKey{}).(string)

	if _, _, ok := sshSession.Pty(); !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User(), "session", id)
		wish.Fatalln(sshSession, "chickenrun needs an interactive terminal (ssh -t)")
		return nil, nil
	}

	seed := s.config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	model := NewModel(registry.Session{
		Rules:    s.rules,
		Seed:     seed,
		Textures: s.textures,
		Logger:   s.logger.With("session", id),
	}, sshSession.User())
	// The recorder outlives the program, so a disconnect still gets saved.
	sshSession.Context().SetValue(recordingKey{}, model.Recording)

	s.logger.Info("game started", "user", sshSession.User(), "session", id, "seed", seed)

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// finishSession saves whatever the session's game recorded, however the
// program ended. Disconnects never deliver a quit event to the model.
func (s *SSHServer) finishSession(ctx context.Context, id string) {
	recording, ok := ctx.Value(recordingKey{}).(func() replay.Recording)
	if !ok {
		return
	}
	rec := recording()
	if len(rec.Frames) == 0 {
		return
	}
	s.saveRecording(id, rec)
}

// saveRecording persists a finished session's input. Failures are logged only.
func (s *SSHServer) saveRecording(id string, rec replay.Recording) {
	if s.store == nil {
		return
	}
	recID, err := s.store.SaveRecording(rec)
	if err != nil {
		s.logger.Warn("could not save recording", "session", id, "error", err)
		return
	}
	s.logger.Info("recording saved",
		"session", id,
		"recording", recID,
		"frames", len(rec.Frames),
	)
}

// loggingMiddleware tags each session with an id and logs its lifetime.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		id := uuid.NewString()
		sshSession.Context().SetValue(sessionIDKey{}, id)

		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
			"session", id,
		)
		next(sshSession)
		s.finishSession(sshSession.Context(), id)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
			"session", id,
		)
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	// Setup signal handling for graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()

	<-done
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := s.server.Shutdown(ctx)
	s.closeStore()
	return err
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

func (s *SSHServer) closeStore() {
	if s.store != nil {
		s.store.Close()
		s.store = nil
	}
}
