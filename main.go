// Package main provides the entry point for the marker tracker.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"marker-tracker/internal/config"
	"marker-tracker/internal/logger"
	"marker-tracker/internal/record"
	"marker-tracker/internal/tracker"
	"marker-tracker/internal/version"

	"github.com/rs/zerolog"
)

func main() {
	object := flag.String("object", "Ganesh", "Object to track: name or video number")
	dataDir := flag.String("data", "../data", "Directory holding obj0N.mp4; the annotated video is written here")
	recordDir := flag.String("records", ".", "Directory for the CSV record file")
	configPath := flag.String("config", "", "Optional JSON tuning file")
	sqlitePath := flag.String("sqlite", "", "Optional SQLite database for records")
	logLevel := flag.String("log-level", "info", "Log level: debug, info, warn, error")
	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println("markertrack", version.String())
		return
	}

	level, err := logger.ParseLevel(*logLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	log := logger.NewConsole(level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, log, *object, *dataDir, *recordDir, *configPath, *sqlitePath); err != nil {
		log.Error().Err(err).Msg("tracking failed")
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, log zerolog.Logger, object, dataDir, recordDir, configPath, sqlitePath string) error {
	n, err := config.ResolveObject(object)
	if err != nil {
		return err
	}

	var tuning *config.TuningConfig
	if configPath != "" {
		if tuning, err = config.Load(configPath); err != nil {
			return err
		}
		log.Info().Str("path", configPath).Msg("loaded tuning config")
	}

	cfg := tracker.NewConfig(n, config.PathsFor(dataDir, recordDir, n), tuning)

	csv, err := record.CreateCSV(cfg.Paths.Records)
	if err != nil {
		return err
	}
	sinks := record.MultiSink{csv}

	if sqlitePath != "" {
		db, err := record.OpenSQLite(sqlitePath, n, cfg.Paths.Input)
		if err != nil {
			csv.Close()
			return err
		}
		log.Info().Str("path", sqlitePath).Str("run", db.RunID()).Msg("recording to sqlite")
		sinks = append(sinks, db)
	}

	_, runErr := tracker.Run(ctx, cfg, sinks, log)
	if err := sinks.Close(); err != nil && runErr == nil {
		return err
	}
	return runErr
}
