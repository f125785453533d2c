package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/hopmate/hopmate/internal/client/api"
	"github.com/hopmate/hopmate/internal/client/cli"
	"github.com/hopmate/hopmate/internal/client/session"
	"github.com/hopmate/hopmate/internal/client/storage/boltdb"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", "http://localhost:8080", "Server URL")
	dbPath := flag.String("db", "hopmate-client.db", "Path to local database")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage()
		os.Exit(1)
	}

	command := args[0]
	ctx := context.Background()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	boltStorage, err := boltdb.New(ctx, *dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	apiClient := api.NewClient(*serverURL)
	sess := session.NewManager(logger, apiClient, boltStorage)

	// Pick up the persisted session before dispatching. A stored session
	// that the server no longer accepts is dropped here.
	if err := sess.Restore(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to restore session: %v\n", err)
		os.Exit(1)
	}

	cli.New(apiClient, sess).Run(ctx, command, args[1:])
}

func printVersion() {
	fmt.Printf("Hopmate Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
