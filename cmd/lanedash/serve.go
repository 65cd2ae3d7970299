package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/lane-dash/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagEnvFile     string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Lane Dash SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own game; the SSH user name is offered as the
nickname. Stats are stored per-server.

Settings may also come from the environment, optionally loaded from a
.env file: LANEDASH_SSH_ADDR, LANEDASH_HOST_KEY, LANEDASH_DB,
LANEDASH_IDLE_TIMEOUT (minutes). Flags win over the environment.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.lanedash/host_key

Examples:
  lanedash serve                           # Listen on :23234 with auto-generated key
  lanedash serve --ssh :2222               # Listen on port 2222
  lanedash serve --env-file ./prod.env     # Load settings from a file

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagEnvFile, "env-file", ".env", "Optional file with LANEDASH_* variables")
}

func runServe(cmd *cobra.Command, _ []string) error {
	logger, err := newLogger(os.Stderr, "lanedash-ssh")
	if err != nil {
		return err
	}

	// A missing .env file is fine
	if err := godotenv.Load(flagEnvFile); err == nil {
		logger.Info("loaded environment file", "path", flagEnvFile)
	} else if !os.IsNotExist(err) {
		logger.Warn("could not read environment file", "path", flagEnvFile, "err", err)
	}
	applyEnv(cmd)

	cfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}
	serverCfg := tui.DefaultSSHServerConfig()
	serverCfg.Address = flagSSHAddr
	serverCfg.HostKeyPath = flagHostKey
	serverCfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	serverCfg.TickRate = tickRate(cfg)

	server, err := tui.NewSSHServer(serverCfg, cfg, loadSprites(cfg, logger), store, logger)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	fmt.Printf("Starting Lane Dash SSH server on %s\n", serverCfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	return nil
}

// applyEnv fills flags the user did not set from LANEDASH_* variables.
func applyEnv(cmd *cobra.Command) {
	fromEnv := func(flag, env string, set func(string)) {
		if cmd.Flags().Changed(flag) {
			return
		}
		if v, ok := os.LookupEnv(env); ok && v != "" {
			set(v)
		}
	}

	fromEnv("ssh", "LANEDASH_SSH_ADDR", func(v string) { flagSSHAddr = v })
	fromEnv("host-key", "LANEDASH_HOST_KEY", func(v string) { flagHostKey = v })
	fromEnv("db", "LANEDASH_DB", func(v string) { flagDBPath = v })
	fromEnv("idle-timeout", "LANEDASH_IDLE_TIMEOUT", func(v string) {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			flagIdleTimeout = n
		}
	})
}
