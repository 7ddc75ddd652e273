package cli

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/seedtail/notefold/internal/appconfig"
	"github.com/seedtail/notefold/internal/config"
	"github.com/seedtail/notefold/internal/icon"
	"github.com/seedtail/notefold/internal/migrate"
	"github.com/seedtail/notefold/internal/store"
	"github.com/seedtail/notefold/internal/ui"
)

// resolveDataPath picks the data directory for commands that need one:
// explicit flag, then runtime config override, then the application config.
func resolveDataPath(cfg *config.Config, logger *log.Logger, flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if cfg.DataDir != "" {
		return cfg.DataDir
	}
	return appconfig.NewStore(cfg.ConfigDir, logger).Load().DataPath
}

// configCommand prints the effective application configuration as JSON.
func configCommand(cfg *config.Config, logger *log.Logger, args []string) error {
	fs := flag.NewFlagSet("notefold config", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}

	appCfg := appconfig.NewStore(cfg.ConfigDir, logger).Load()
	data, err := json.MarshalIndent(appCfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

// todosCommand lists the todo index.
func todosCommand(cfg *config.Config, logger *log.Logger, args []string) error {
	fs := flag.NewFlagSet("notefold todos", flag.ContinueOnError)
	dataPath := fs.String("data-path", "", "Data directory (defaults to the configured one)")
	asJSON := fs.Bool("json", false, "Print raw JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}

	path := resolveDataPath(cfg, logger, *dataPath)
	todos := store.New(logger).Todos(path)

	if *asJSON {
		data, err := json.MarshalIndent(todos, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal todos: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	if len(todos) == 0 {
		fmt.Println("no todos")
		return nil
	}
	for _, t := range todos {
		fmt.Printf("[%s] %s  (%s)\n", t.Status, t.Title, t.FolderName)
	}
	return nil
}

// moveCommand relocates the data directory.
func moveCommand(cfg *config.Config, logger *log.Logger, args []string) error {
	fs := flag.NewFlagSet("notefold move", flag.ContinueOnError)
	updateConfig := fs.Bool("update-config", true, "Write the new path into the application config")
	if err := fs.Parse(args); err != nil {
		return err
	}

	rest := fs.Args()
	if len(rest) != 2 {
		return fmt.Errorf("usage: notefold move <old-path> <new-path>")
	}
	oldPath, newPath := rest[0], rest[1]

	if err := migrate.New(logger).Move(oldPath, newPath); err != nil {
		return err
	}
	logger.Info("data directory moved", "from", oldPath, "to", newPath)

	if *updateConfig {
		cfgStore := appconfig.NewStore(cfg.ConfigDir, logger)
		appCfg := cfgStore.Load()
		appCfg.DataPath = newPath
		if err := cfgStore.Save(appCfg); err != nil {
			return err
		}
	}
	return nil
}

// iconCommand prints the OS icon for a file extension.
func iconCommand(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: notefold icon <extension>")
	}
	b64 := icon.Lookup(args[0])
	if b64 == "" {
		fmt.Fprintln(os.Stderr, "no icon available")
		return nil
	}
	fmt.Println(b64)
	return nil
}

// tuiCommand opens the terminal todo viewer.
func tuiCommand(ctx context.Context, cfg *config.Config, logger *log.Logger, args []string) error {
	fs := flag.NewFlagSet("notefold tui", flag.ContinueOnError)
	dataPath := fs.String("data-path", "", "Data directory (defaults to the configured one)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	path := resolveDataPath(cfg, logger, *dataPath)
	return ui.Run(ctx, store.New(logger), path)
}
