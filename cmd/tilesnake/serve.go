package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tilesnake/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the tilesnake SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own console and game.

Host key handling:
  - If --host-key (or server.host_key) is set, uses that key file
  - Otherwise, auto-generates a key at ~/.tilesnake/host_key

Examples:
  tilesnake serve                           # Listen on :23235 with auto-generated key
  tilesnake serve --ssh :2222               # Listen on port 2222
  tilesnake serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23235`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address host:port (overrides config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout in minutes (overrides config)")
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("ssh") {
		cfg.Server.Address = flagSSHAddr
	}
	if flags.Changed("host-key") {
		cfg.Server.HostKeyPath = flagHostKey
	}
	if flags.Changed("idle-timeout") {
		cfg.Server.IdleTimeout = flagIdleTimeout
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	server, err := tui.NewSSHServer(cfg, newLogger(os.Stderr, cfg, "tilesnake-ssh"))
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	fmt.Printf("Starting tilesnake SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	return nil
}
