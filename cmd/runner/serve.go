package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/platform/tui"
)

var serveFlags struct {
	addr    string
	hostKey string
	idle    time.Duration
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Host the games over SSH",
	Long: `Listen for SSH connections and give each one its own menu, run history
and games. Every player shares this server's run history and best-score
files. Connections without an interactive terminal are turned away.

The host key is read from --host-key, or generated on first start at
~/.runner/host_key.`,
	Example: `  runner serve
  runner serve --ssh :2222 --idle 10m
  runner serve --host-key ./host_key --db ./runs.db

  ssh -p 23234 localhost`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	defaults := tui.DefaultSSHServerConfig()
	f := serveCmd.Flags()
	f.StringVar(&serveFlags.addr, "ssh", defaults.Address, "Listen address (host:port)")
	f.StringVar(&serveFlags.hostKey, "host-key", "", "Host key file (generated when empty)")
	f.DurationVar(&serveFlags.idle, "idle", defaults.IdleTimeout, "Disconnect players idle this long")
}

func runServe(_ *cobra.Command, _ []string) error {
	server, err := tui.NewSSHServer(tui.SSHServerConfig{
		Address:     serveFlags.addr,
		HostKeyPath: serveFlags.hostKey,
		DBPath:      gf.dbPath,
		BestDir:     gf.bestDir,
		TickRate:    gf.fps,
		HoldTimeout: holdTimeout(),
		IdleTimeout: serveFlags.idle,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Serving runner on %s, Ctrl+C stops\n", server.Addr())
	return server.Serve(ctx)
}
