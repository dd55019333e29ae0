package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"blzcheck/internal/api"
	"blzcheck/internal/bankdir"
	"blzcheck/internal/config"
	"blzcheck/internal/logging"
	"blzcheck/internal/lut"
)

func main() {
	configPath := flag.String("config", "", "Path to the TOML configuration file")
	addr := flag.String("addr", "", "Listen address (overrides the configuration file)")
	lutPath := flag.String("lut", "", "Path to the lookup table file (overrides the configuration file)")
	dbPath := flag.String("db", "", "Path to the bank metadata database (overrides the configuration file)")
	flag.Parse()

	cfg, err := config.LoadServer(*configPath)
	if err != nil {
		logger := logging.Init("blzcheck-server", "info")
		logger.Fatal().Err(err).Msg("load configuration")
	}
	if *addr != "" {
		cfg.Addr = *addr
	}
	if *lutPath != "" {
		cfg.LUTPath = *lutPath
	}
	if *dbPath != "" {
		cfg.DBPath = *dbPath
	}

	logger := logging.Init("blzcheck-server", cfg.LogLevel)

	dir := lut.NewDirectory(lut.FileSource(cfg.LUTPath))
	if dir.Loaded() {
		logger.Info().Str("path", cfg.LUTPath).Int("entries", dir.Len()).Msg("lookup table loaded")
	} else {
		// The server still runs; every routing-number lookup misses and
		// callers must pass the method explicitly.
		logger.Warn().Err(dir.Err()).Str("path", cfg.LUTPath).Msg("lookup table unavailable")
	}

	var db *sql.DB
	if cfg.DBPath != "" {
		db, err = bankdir.InitDB(cfg.DBPath)
		if err != nil {
			logger.Fatal().Err(err).Str("path", cfg.DBPath).Msg("open bank database")
		}
		defer db.Close()
	}

	server := api.NewServer(dir, db, logger)
	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: api.NewRouter(server),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info().Str("addr", cfg.Addr).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		logger.Info().Msg("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Fatal().Err(err).Msg("server failed")
	}
}
