package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alexanderramin/quota/internal/cli"
	"github.com/alexanderramin/quota/internal/config"
	"github.com/alexanderramin/quota/internal/logger"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	interactive := func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// Log lines would tear the alt-screen, so the TUI only logs to a file.
	var out io.Writer = os.Stderr
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer f.Close()
		out = f
	} else if launchesTUI(os.Args[1:]) && interactive() {
		out = io.Discard
	}

	app := &cli.App{
		Config:        cfg,
		Logger:        logger.New(logger.Config{Level: cfg.LogLevel, Pretty: cfg.LogPretty, Out: out}),
		IsInteractive: interactive,
	}

	return cli.NewRootCmd(app).Execute()
}

// launchesTUI reports whether args run the interactive planner: either the
// tui subcommand or no subcommand at all.
func launchesTUI(args []string) bool {
	for i := 0; i < len(args); i++ {
		a := args[i]
		switch {
		case a == "tui":
			return true
		case a == "--seed-file" || a == "--seed" || a == "--total":
			i++
		case len(a) > 0 && a[0] == '-':
		default:
			return false
		}
	}
	return true
}
