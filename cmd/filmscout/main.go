// Filmscout - Content-Based Film Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmscout

// Package main is the entry point for the filmscout command.
//
// Filmscout recommends films from a local catalog. Every film is turned into
// a weighted text document, the documents are indexed with TF-IDF, and
// recommendations are the catalog items closest to the centroid of the films
// a user has watched.
//
// # Commands
//
//	serve        run the HTTP API under a supervisor tree
//	recommend    recommend films similar to --watched ids
//	search       find films by title
//	info         show one film and its strongest index terms
//	stats        summarize the catalog
//	interactive  build a taste profile in the terminal
//	enrich       add OMDb metadata to a catalog file
//	sample       write a built-in enriched sample catalog
//	tmdb         convert a TMDB 5000 export into a catalog
//	doctor       check DNS and OMDb connectivity
//
// # Configuration
//
// Configuration is loaded via Koanf v2 with layered sources (highest priority wins):
//   - Environment variables (CATALOG_PATH, SERVER_PORT, OMDB_API_KEY, ...)
//   - Config file (--config, CONFIG_PATH, filmscout.yaml or config.yaml)
//   - Built-in defaults
//
// # Signal Handling
//
// Every command runs with a context canceled on SIGINT and SIGTERM. serve
// stops accepting connections and drains in-flight requests within
// server.shutdown_timeout; enrich saves a checkpoint so the next run with
// --resume continues where it stopped.
//
// # Example Usage
//
//	filmscout sample --size 100 --out movies.csv
//	filmscout recommend --watched 1,5,9 --k 5
//	filmscout search --q matrix --format json
//	filmscout serve --config filmscout.yaml
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
)

// env carries the process streams so commands can be driven from tests.
type env struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// command is one filmscout subcommand.
type command struct {
	summary string
	run     func(ctx context.Context, e *env, args []string) error
}

var commands = map[string]command{
	"serve":       {"run the HTTP API", runServe},
	"recommend":   {"recommend films similar to watched ids", runRecommend},
	"search":      {"find films by title", runSearch},
	"info":        {"show one film", runInfo},
	"stats":       {"summarize the catalog", runStats},
	"interactive": {"build a taste profile in the terminal", runInteractive},
	"enrich":      {"add OMDb metadata to a catalog file", runEnrich},
	"sample":      {"write a built-in sample catalog", runSample},
	"tmdb":        {"convert a TMDB 5000 export", runTMDB},
	"doctor":      {"check DNS and OMDb connectivity", runDoctor},
}

var (
	// errUsage marks invalid command lines.
	errUsage = errors.New("invalid usage")

	// errUsageShown is returned after the usage text was already printed.
	errUsageShown = fmt.Errorf("%w", errUsage)
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	e := &env{stdin: os.Stdin, stdout: os.Stdout, stderr: os.Stderr}
	if err := run(ctx, e, os.Args[1:]); err != nil {
		if !errors.Is(err, errUsageShown) && !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(e.stderr, "filmscout: %v\n", err)
		}
		stop()
		os.Exit(exitCode(err))
	}
}

// run dispatches args to a subcommand.
func run(ctx context.Context, e *env, args []string) error {
	if len(args) == 0 {
		usage(e.stderr)
		return errUsageShown
	}
	name := args[0]
	if name == "help" || name == "-h" || name == "--help" {
		usage(e.stdout)
		return nil
	}
	cmd, ok := commands[name]
	if !ok {
		fmt.Fprintf(e.stderr, "filmscout: unknown command %q\n\n", name)
		usage(e.stderr)
		return errUsageShown
	}
	return cmd.run(ctx, e, args[1:])
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "Usage: filmscout <command> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "  %-12s %s\n", name, commands[name].summary)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'filmscout <command> -h' for command flags.")
}

// parseFlags parses args and rejects positional arguments. The flag package
// has already printed its own message when parsing fails.
func parseFlags(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return errUsageShown
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("%w: unexpected argument %q", errUsage, fs.Arg(0))
	}
	return nil
}

// exitCode maps an error to the process exit status: 0 after -h, 2 for
// usage errors, 130 for interrupts and 1 otherwise.
func exitCode(err error) int {
	switch {
	case errors.Is(err, flag.ErrHelp):
		return 0
	case errors.Is(err, errUsage):
		return 2
	case errors.Is(err, context.Canceled):
		return 130
	default:
		return 1
	}
}
