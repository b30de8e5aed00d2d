package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/offersentry/offersentry/internal/api"
	"github.com/offersentry/offersentry/internal/config"
	"github.com/offersentry/offersentry/internal/database"
	"github.com/offersentry/offersentry/internal/decision"
	"github.com/offersentry/offersentry/internal/extractor"
	"github.com/offersentry/offersentry/internal/knowledge"
	"github.com/offersentry/offersentry/internal/learner"
	"github.com/offersentry/offersentry/internal/logging"
	"github.com/offersentry/offersentry/internal/pattern"
	"github.com/offersentry/offersentry/internal/pipeline"
	"github.com/offersentry/offersentry/internal/reputation"
	"github.com/offersentry/offersentry/internal/salarycheck"
	"github.com/offersentry/offersentry/internal/search"
	"github.com/offersentry/offersentry/internal/textclean"
)

const shutdownTimeout = 30 * time.Second

func main() {
	configPath := flag.String("config", "config.yml", "path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		os.Stderr.WriteString("failed to load configuration: " + err.Error() + "\n")
		os.Exit(1)
	}

	logger, err := logging.New(logging.Config{
		Level:       cfg.Logging.Level,
		Development: cfg.Service.Debug,
	})
	if err != nil {
		os.Stderr.WriteString("failed to create logger: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("starting offersentry",
		logging.String("version", cfg.Service.Version),
		logging.Int("port", cfg.Service.Port))

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		logger.Error("failed to open database", logging.Error(err))
		os.Exit(1)
	}
	defer db.Close()
	history := database.NewHistoryRepository(db)

	store, err := knowledge.NewStore(cfg.Knowledge.Dir, logger)
	if err != nil {
		logger.Error("failed to initialize knowledge store", logging.Error(err))
		os.Exit(1)
	}

	var searcher search.Searcher
	if cfg.Research.SearchEnabled {
		searcher = search.NewDuckDuckGo(&http.Client{Timeout: cfg.Research.SearchTimeout})
		logger.Info("web research enabled")
	} else {
		logger.Info("web research disabled, using offline verification only")
	}

	resolver := reputation.NewResolver(searcher, reputation.NewCache(), reputation.Config{
		SearchTimeout: cfg.Research.SearchTimeout,
		MaxResults:    cfg.Research.MaxResults,
	}, logger)

	lrn := learner.New(store, logger)

	pipe := pipeline.New(
		textclean.NewCleaner(),
		extractor.New(logger),
		resolver,
		pattern.NewMatcher(store, logger),
		salarycheck.New(logger),
		decision.New(logger),
		lrn,
		history,
		logger,
	)

	handler := api.NewHandler(pipe, store, lrn, history, cfg.Research.HistoryLimit, logger)
	server := api.NewServer(handler, api.ServerConfig{
		Port:  cfg.Service.Port,
		Debug: cfg.Service.Debug,
	}, logger)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- server.Start()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		logger.Error("server error", logging.Error(err))
		os.Exit(1)
	case sig := <-shutdown:
		logger.Info("shutdown signal received", logging.String("signal", sig.String()))

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			logger.Error("graceful shutdown failed", logging.Error(err))
			os.Exit(1)
		}
		logger.Info("server stopped gracefully")
	}
}
