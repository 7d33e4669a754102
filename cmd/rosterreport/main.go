package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rickgao/sleeper-roster/internal/api"
	"github.com/rickgao/sleeper-roster/internal/archive"
	"github.com/rickgao/sleeper-roster/internal/config"
	"github.com/rickgao/sleeper-roster/internal/database"
	"github.com/rickgao/sleeper-roster/internal/pipeline"
	"github.com/rickgao/sleeper-roster/internal/version"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "path to optional YAML config file")
	ownerID := flag.String("owner-id", config.DefaultOwnerID, "owner ID to analyze")
	output := flag.String("output", config.DefaultOutput, "output CSV filename")
	logLevel := flag.String("log-level", config.DefaultLogLevel, "log level (debug, info, warn, error)")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.String())
		return 0
	}

	cfg, err := config.LoadWithDefaults(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		return 1
	}

	// Flags given on the command line win over the file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "owner-id":
			cfg.OwnerID = *ownerID
		case "output":
			cfg.Output = *output
		case "log-level":
			cfg.Log.Level = *logLevel
		}
	})

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		return 1
	}

	// Set up structured logging
	level, _ := config.ParseLevel(cfg.Log.Level)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	logger.Info("starting roster report",
		"version", version.Version,
		"commit", version.Commit,
		"config", *configPath,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client := api.NewClient(
		cfg.API.BaseURL,
		api.WithLogger(logger),
		api.WithTimeout(cfg.API.Timeout),
		api.WithUserAgent(cfg.API.UserAgent),
	)

	opts := []pipeline.Option{
		pipeline.WithLogger(logger),
		pipeline.WithOutput(os.Stdout),
	}

	if cfg.Archive.Enabled {
		logger.Info("connecting to archive database",
			"host", cfg.Archive.Database.Host,
			"port", cfg.Archive.Database.Port,
			"database", cfg.Archive.Database.Name,
		)
		pool, err := database.Connect(ctx, cfg.Archive.Database)
		if err != nil {
			logger.Error("failed to connect to archive database", "error", err)
			return 1
		}
		defer pool.Close()

		arch := archive.New(pool, logger)
		if err := arch.EnsureSchema(ctx); err != nil {
			logger.Error("failed to prepare archive schema", "error", err)
			return 1
		}
		opts = append(opts, pipeline.WithArchiver(arch))
	}

	runner := pipeline.New(pipeline.Config{
		OwnerID:     cfg.OwnerID,
		Leagues:     cfg.Leagues,
		Sport:       cfg.API.Sport,
		Output:      cfg.Output,
		PreviewRows: cfg.Report.Previews(),
	}, client, opts...)

	_, err = runner.Run(ctx)
	return exitCode(logger, err)
}

// exitCode logs err and maps it to a process exit status.
func exitCode(logger *slog.Logger, err error) int {
	var fetchErr *pipeline.FetchError
	switch {
	case err == nil:
		return 0
	case errors.Is(err, pipeline.ErrNoPlayers):
		return 0
	case errors.As(err, &fetchErr):
		logger.Error("error fetching data", "resource", fetchErr.Resource, "error", fetchErr.Err)
		return 1
	default:
		logger.Error("roster report failed", "error", err)
		return 1
	}
}
