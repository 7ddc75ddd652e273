package cli

import (
	"context"
	"os"

	"github.com/charmbracelet/log"

	"github.com/seedtail/notefold/internal/bridge"
	"github.com/seedtail/notefold/internal/config"
)

// serveCommand runs the stdio JSON-RPC bridge until stdin closes.
func serveCommand(ctx context.Context, cfg *config.Config, logger *log.Logger) error {
	backend := bridge.NewBackend(cfg.ConfigDir, nil, logger)
	server := bridge.NewServer(logger)
	backend.Register(server)

	logger.Info("serving UI bridge", "config_dir", cfg.ConfigDir)
	return server.Serve(ctx, os.Stdin, os.Stdout)
}
