// Package cli implements the CLI command structure for notefold.
package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/seedtail/notefold/internal/config"
	"github.com/seedtail/notefold/internal/logging"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Run executes the notefold CLI.
func Run(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("notefold", flag.ContinueOnError)
	fs.Usage = func() {
		printUsage(fs, os.Stderr)
	}
	help := fs.Bool("help", false, "Show help")
	fs.BoolVar(help, "h", false, "Show help")
	showVersion := fs.Bool("version", false, "Show version")
	fs.BoolVar(showVersion, "v", false, "Show version")

	cfg, err := config.Load(fs, args)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if *help {
		printUsage(fs, os.Stdout)
		return nil
	}
	if *showVersion {
		return versionCommand()
	}

	logger := logging.NewFromConfig(cfg.LogLevel, cfg.LogFormat, cfg.LogTimestamps)

	// Determine the subcommand; serving the UI bridge is the default.
	subcommand := "serve"
	remainingArgs := fs.Args()
	if len(remainingArgs) > 0 && !strings.HasPrefix(remainingArgs[0], "-") {
		subcommand = remainingArgs[0]
		remainingArgs = remainingArgs[1:]
	}

	switch subcommand {
	case "serve":
		return serveCommand(ctx, cfg, logger)
	case "config":
		return configCommand(cfg, logger, remainingArgs)
	case "todos":
		return todosCommand(cfg, logger, remainingArgs)
	case "move":
		return moveCommand(cfg, logger, remainingArgs)
	case "icon":
		return iconCommand(remainingArgs)
	case "tui":
		return tuiCommand(ctx, cfg, logger, remainingArgs)
	case "version", "--version", "-v":
		return versionCommand()
	case "help", "--help", "-h":
		printUsage(fs, os.Stdout)
		return nil
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", subcommand)
		printUsage(fs, os.Stderr)
		return fmt.Errorf("unknown command: %s", subcommand)
	}
}

func versionCommand() error {
	fmt.Printf("notefold %s (%s/%s)\n", Version, runtime.GOOS, runtime.GOARCH)
	return nil
}

func printUsage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintf(w, `notefold - filesystem backend for the notefold desktop app

Usage:
  notefold [flags] [command]

Commands:
  serve      Serve backend commands over stdio JSON-RPC (default)
  config     Print the effective application configuration
  todos      List the todo index
  move       Relocate the data directory: notefold move <old> <new>
  icon       Print the OS icon for an extension: notefold icon <ext>
  tui        Browse the todo index in the terminal
  version    Show version
  help       Show this help

Flags:
`)
	fs.SetOutput(w)
	fs.PrintDefaults()
}
