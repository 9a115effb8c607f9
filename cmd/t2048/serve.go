package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
)

const connectTimeout = 5 * time.Second

var (
	flagServerConfig string
	flagSSHAddr      string
	flagHostKey      string
	flagRedisAddr    string
	flagIdleTimeout  time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the 2048 SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own session with the variant picker menu.
Progress is saved per SSH user name; scores share one leaderboard.

Settings come from the environment (a .env file is loaded if present),
an optional YAML file given with --server-config, and these flags:

  T2048_SSH_ADDR      --ssh           listen address (default :2048)
  T2048_HOST_KEY      --host-key      host key path, generated if missing
  T2048_DB                            scores database
  T2048_REDIS_ADDR    --redis         keep saved games in Redis
  T2048_IDLE_TIMEOUT  --idle-timeout  disconnect idle sessions
  T2048_LOG_LEVEL                     log level

Examples:
  t2048 serve
  t2048 serve --ssh :2222
  t2048 serve --redis localhost:6379
  T2048_HOST_KEY=./host_key t2048 serve

Users can connect with:
  ssh localhost -p 2048`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagServerConfig, "server-config", "", "Path to server YAML config")
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file")
	serveCmd.Flags().StringVar(&flagRedisAddr, "redis", "", "Redis address for saved games")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout before disconnecting")
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadServer(flagServerConfig)
	if err != nil {
		return err
	}

	// Flags win over the environment
	flags := cmd.Flags()
	if flags.Changed("ssh") {
		cfg.Addr = flagSSHAddr
	}
	if flags.Changed("host-key") {
		cfg.HostKeyPath = flagHostKey
	}
	if flags.Changed("redis") {
		cfg.RedisAddr = flagRedisAddr
	}
	if flags.Changed("idle-timeout") {
		cfg.IdleTimeout = flagIdleTimeout
	}
	if cmd.Root().PersistentFlags().Changed("db") {
		cfg.DBPath = flagDBPath
	}

	if !cmd.Root().PersistentFlags().Changed("log-level") {
		level, err := cfg.Level()
		if err != nil {
			return err
		}
		logger = newLogger(os.Stderr, level)
	}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	server, err := tui.NewSSHServer(ctx, cfg, rulesConf, logger)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	fmt.Printf("Starting 2048 SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe()
}
