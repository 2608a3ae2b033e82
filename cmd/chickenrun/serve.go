package main

import (
	"fmt"
	"net"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/chicken-run/internal/assets"
	"github.com/vovakirdan/chicken-run/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Chicken Run SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own independent game. Games are
recorded to the database when the player quits.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.chickenrun/host_key

Examples:
  chickenrun serve                           # Listen on :23234 with auto-generated key
  chickenrun serve --ssh :2222               # Listen on port 2222
  chickenrun serve --host-key ./my_host_key  # Use specific host key
  chickenrun serve --db ./recordings.db      # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) error {
	logger, err := newLogger("chickenrun-ssh")
	if err != nil {
		return err
	}

	rules, err := loadRules()
	if err != nil {
		return err
	}
	textures := assets.NewLoader(flagAssets, logger).LoadSet(rules.Assets)

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		Seed:        flagSeed,
	}

	server, err := tui.NewSSHServer(cfg, rules, textures, logger)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	fmt.Printf("Starting Chicken Run SSH server on %s\n", server.Addr())
	fmt.Printf("Connect with: %s\n", connectHint(server.Addr()))
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// connectHint builds the ssh command line for a listen address. Wildcard
// hosts are shown as localhost.
func connectHint(addr string) string {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return "ssh -t " + addr
	}
	if ip := net.ParseIP(host); host == "" || (ip != nil && ip.IsUnspecified()) {
		host = "localhost"
	}
	return fmt.Sprintf("ssh -t %s -p %s", host, port)
}
