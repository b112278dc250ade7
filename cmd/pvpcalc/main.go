package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"github.com/rs/zerolog"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/ross1116/pvpcalc/internal/battle"
	"github.com/ross1116/pvpcalc/internal/config"
	fxmodules "github.com/ross1116/pvpcalc/internal/fx"
	"github.com/ross1116/pvpcalc/internal/gamemaster"
	"github.com/ross1116/pvpcalc/internal/logger"
	"github.com/ross1116/pvpcalc/internal/pokemon"
	"github.com/ross1116/pvpcalc/internal/stats"
)

type env struct {
	fx.In

	Config *config.Config
	Logger zerolog.Logger
	Store  *gamemaster.Store
	Calc   *stats.Calculator
	Engine *battle.Engine
	Canon  *pokemon.Canonicalizer
}

type command struct {
	summary string
	run     func(ctx context.Context, e *env, args []string, w io.Writer) error
}

var commands = map[string]command{
	"cp":            {"CP and stats of a pokemon at a level", runCP},
	"maxlevel":      {"highest level under a league's CP cap", runMaxLevel},
	"damage":        {"damage of one move between two pokemon", runDamage},
	"cycle":         {"fast move energy cycle for a charged move", runCycle},
	"moveset":       {"ranked-legal moveset of a species", runMoveset},
	"sweep":         {"rank all IV spreads of a species for a league", runSweep},
	"effectiveness": {"type effectiveness of an attacking type", runEffectiveness},
}

func main() {
	if len(os.Args) < 2 {
		usage(os.Stderr)
		os.Exit(2)
	}
	name := os.Args[1]
	if name == "-h" || name == "--help" || name == "help" {
		usage(os.Stdout)
		return
	}
	cmd, ok := commands[name]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown command %q\n", name)
		usage(os.Stderr)
		os.Exit(2)
	}

	var e env
	app := fx.New(
		fxmodules.Module,
		fx.WithLogger(func() fxevent.Logger { return fxevent.NopLogger }),
		fx.Populate(&e),
	)
	if err := app.Err(); err != nil {
		log := logger.New()
		log.Fatal().Err(err).Msg("failed to initialize")
	}

	ctx := setupSignalHandler(e.Logger)

	if err := cmd.run(ctx, &e, os.Args[2:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		e.Logger.Error().Err(err).Str("command", name).Msg("command failed")
		os.Exit(1)
	}
}

// setupSignalHandler cancels the returned context on the first SIGINT or
// SIGTERM and exits on the second.
func setupSignalHandler(logger zerolog.Logger) context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	sigChan := make(chan os.Signal, 2)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		logger.Info().Str("signal", sig.String()).Msg("interrupted, stopping")
		cancel()
		<-sigChan
		os.Exit(1)
	}()
	return ctx
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "usage: pvpcalc <command> [flags]")
	fmt.Fprintln(w, "\ncommands:")
	names := make([]string, 0, len(commands))
	for n := range commands {
		names = append(names, n)
	}
	sort.Strings(names)
	for _, n := range names {
		fmt.Fprintf(w, "  %-14s %s\n", n, commands[n].summary)
	}
	fmt.Fprintln(w, "\nrun 'pvpcalc <command> -h' for command flags")
}
