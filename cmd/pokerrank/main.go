package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version  kong.VersionFlag `short:"v" help:"Show version"`
	LogLevel string           `default:"warn" enum:"debug,info,warn,error" help:"Log level (debug, info, warn, error)"`
	NoColor  bool             `help:"Disable colored output"`

	Rank     RankCmd     `cmd:"" help:"Rank a hand of 5 to 7 cards, or two hole cards"`
	Showdown ShowdownCmd `cmd:"" help:"Find the winning hands of a showdown"`
	Sim      SimCmd      `cmd:"" help:"Estimate equities by Monte Carlo simulation"`
	Games    GamesCmd    `cmd:"" help:"List supported games"`
}

// env carries what every command needs to run.
type env struct {
	ctx    context.Context
	out    io.Writer
	logger *log.Logger
}

func newLogger(w io.Writer, level string) *log.Logger {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.WarnLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:           lvl,
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          "pokerrank",
	})
}

// signalContext creates a context that is cancelled on interrupt signals
func signalContext(logger *log.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		select {
		case sig := <-sigChan:
			logger.Info("Received signal, shutting down", "signal", sig.String())
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(sigChan)
	}()

	return ctx, cancel
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("pokerrank"),
		kong.Description("Poker hand ranking, showdowns and equity simulation"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)

	if cli.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	logger := newLogger(os.Stderr, cli.LogLevel)
	runCtx, cancel := signalContext(logger)
	defer cancel()

	err := ctx.Run(&env{ctx: runCtx, out: os.Stdout, logger: logger})
	ctx.FatalIfErrorf(err)
}
