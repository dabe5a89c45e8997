package main

import (
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/julienschmidt/httprouter"

	"playinsights.teamg8.org/internal/app"
	"playinsights.teamg8.org/internal/appconf"
	"playinsights.teamg8.org/internal/catalog"
	"playinsights.teamg8.org/internal/logging"
	"playinsights.teamg8.org/internal/restapi"
	"playinsights.teamg8.org/internal/webui"
)

func main() {
	// A .env file can pre-seed flag defaults; its absence is fine.
	_ = godotenv.Load()

	var cfg appconf.Config
	var envFlag string
	var apiKeysFlag string

	flag.IntVar(&cfg.Port, "port", 4000, "API server port")
	flag.StringVar(&envFlag, "env", envOrDefault("INSIGHTS_ENV", "development"), "Environment (development|test|production)")
	flag.StringVar(&apiKeysFlag, "api-keys", envOrDefault("INSIGHTS_API_KEYS", "test"), "Comma Separated API Keys (test, etc)")
	flag.StringVar(&cfg.DataPath, "data-path", envOrDefault("INSIGHTS_DATA_PATH", "data/apps.parquet"), "Path or URL of the parquet dataset")
	flag.StringVar(&cfg.DBPath, "db-path", envOrDefault("INSIGHTS_DB_PATH", ":memory:"), "Path of the SQLite catalog database")
	flag.IntVar(&cfg.RateLimit, "rate-limit", 100, "Requests per second allowed per API key")
	flag.BoolVar(&cfg.Verbose, "verbose", false, "Verbose logging")
	flag.Parse()

	cfg.Env = appconf.EnvFlagToEnvironment(envFlag)
	if apiKeysFlag != "" {
		cfg.ApiKeys = strings.Split(apiKeysFlag, ",")
		for i := range cfg.ApiKeys {
			cfg.ApiKeys[i] = strings.TrimSpace(cfg.ApiKeys[i])
		}
	}

	logger := logging.NewStructuredLogger(os.Stdout, slog.LevelInfo)

	catalogConfig := catalog.Config{
		DataPath: cfg.DataPath,
		DBPath:   cfg.DBPath,
		Env:      cfg.Env,
		Verbose:  cfg.Verbose,
	}

	catalogManager, err := catalog.InitManager(catalogConfig)
	if err != nil {
		// No catalog, no dashboard: refuse to serve anything.
		logger.Error("failed to initialize catalog manager", "error", err)
		os.Exit(1)
	}
	defer catalogManager.Shutdown()

	logger.Info("loaded dataset", "path", catalogManager.DataPath())

	if cfg.Verbose {
		catalogManager.PrintStatistics()
	}

	application := &app.Application{
		Config:        cfg,
		CatalogConfig: catalogConfig,
		Logger:        logger,
		Catalog:       catalogManager,
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      routes(application),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	logger.Info("starting server", "addr", srv.Addr, "env", cfg.Env.String())
	err = srv.ListenAndServe()
	logger.Error(err.Error())
	os.Exit(1)
}

func routes(application *app.Application) http.Handler {
	router := httprouter.New()

	api := restapi.NewRestAPI(application)
	api.SetRoutes(router)

	ui := webui.NewWebUI(application)
	ui.SetRoutes(router)

	var handler http.Handler = router
	handler = api.WithRateLimit(handler)
	handler = restapi.NewRequestLoggingMiddleware(application.Logger)(handler)
	handler = restapi.CompressionMiddleware(handler)
	handler = api.WithSecurityHeaders(handler)
	return handler
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
