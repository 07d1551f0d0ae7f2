// Kmapd is a keyword mapping daemon: it resolves Korean test-case phrases
// into UI automation actions and generated Groovy script lines.
//
// Configuration is loaded from a YAML file and environment variables. See
// internal/config for details.
//
// Usage:
//
//	# Start server with defaults
//	kmapd
//
//	# Configure via environment
//	SERVER_PORT=9120 LOGGING_LEVEL=debug kmapd
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/fyrsmithlabs/kmapd/internal/combiner"
	"github.com/fyrsmithlabs/kmapd/internal/config"
	"github.com/fyrsmithlabs/kmapd/internal/grammar"
	"github.com/fyrsmithlabs/kmapd/internal/groovy"
	"github.com/fyrsmithlabs/kmapd/internal/lexicon"
	"github.com/fyrsmithlabs/kmapd/internal/logging"
	"github.com/fyrsmithlabs/kmapd/internal/mapping"
	"github.com/fyrsmithlabs/kmapd/internal/resolver"
	"github.com/fyrsmithlabs/kmapd/internal/server"
	"github.com/fyrsmithlabs/kmapd/internal/testcase"
)

// Version information (set via ldflags during build)
var (
	version   = "dev"
	gitCommit = "unknown"
	buildDate = "unknown"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()
	args := flag.Args()

	if len(args) > 0 {
		switch args[0] {
		case "version":
			printVersion()
			os.Exit(0)
		default:
			fmt.Fprintf(os.Stderr, "Unknown command: %s\n", args[0])
			fmt.Fprintf(os.Stderr, "\nUsage:\n")
			fmt.Fprintf(os.Stderr, "  kmapd           Start the kmapd daemon\n")
			fmt.Fprintf(os.Stderr, "  kmapd version   Show version information\n")
			os.Exit(1)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigCh
		log.Printf("Received signal %v, shutting down gracefully...", sig)
		cancel()
	}()

	if err := run(ctx, *configPath); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("Server error: %v", err)
	}

	log.Println("Server shutdown complete")
}

func printVersion() {
	fmt.Printf("kmapd by Fyrsmith Labs\n")
	fmt.Printf("Version:    %s\n", version)
	fmt.Printf("Commit:     %s\n", gitCommit)
	fmt.Printf("Build Date: %s\n", buildDate)
}

// run starts the kmapd server and blocks until context cancellation.
//
// Initialization order:
//  1. Load and validate configuration
//  2. Initialize logger
//  3. Build the mapping table, classifier, and grammar analyzer
//  4. Wire the resolver and script generator
//  5. Start the HTTP server
//  6. Graceful shutdown on context cancellation
func run(ctx context.Context, configPath string) error {
	cfg, err := config.LoadWithFile(configPath)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger, err := logging.New(&cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() {
		_ = logging.Sync(logger)
	}()

	logger.Info("Starting kmapd",
		zap.String("version", version),
		zap.Int("port", cfg.Server.Port),
		zap.Duration("shutdown_timeout", cfg.Server.ShutdownTimeout))

	table := mapping.NewTable(
		mapping.PrimaryRecords(),
		mapping.SecondaryRecords(),
		mapping.DefaultCombinations(),
	)
	for _, path := range cfg.Mapping.ExtraTables {
		result, err := mapping.LoadFile(path, mapping.SourceSecondary)
		if err != nil {
			return fmt.Errorf("failed to load mapping table: %w", err)
		}
		table.Extend(result.Records)
		logger.Info("Loaded extra mapping table",
			zap.String("path", path),
			zap.Int("records", len(result.Records)),
			zap.Int("skipped", result.Skipped))
	}
	counts := table.CountBySource()
	logger.Info("Mapping table ready",
		zap.Int("records", table.Len()),
		zap.Int("primary", counts[mapping.SourcePrimary]),
		zap.Int("secondary", counts[mapping.SourceSecondary]),
		zap.Int("combination", counts[mapping.SourceCombination]))

	classifier := lexicon.NewClassifier(lexicon.DefaultVocabulary())
	analyzer := grammar.NewAnalyzer(grammar.DefaultCatalog(), classifier)
	engine := combiner.NewEngine(combiner.NewDecomposer(classifier, table))
	renderer := groovy.New()

	res, err := resolver.New(resolver.Options{
		Table:               table,
		Analyzer:            analyzer,
		Engine:              engine,
		Renderer:            renderer,
		Logger:              logger.Named("resolver"),
		Metrics:             resolver.NewMetrics(),
		CacheSize:           cfg.Resolver.CacheCapacity,
		SimilarityThreshold: cfg.Resolver.SimilarityThreshold,
		MaxSuggestions:      cfg.Resolver.MaxSuggestions,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize resolver: %w", err)
	}

	generator := testcase.NewGenerator(res, renderer, logger.Named("testcase"))

	srv, err := server.NewServer(res, generator, logger.Named("http"), &server.Config{
		Host: cfg.Server.Host,
		Port: cfg.Server.Port,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}

	srv.Echo().GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	logger.Info("Server configured",
		zap.String("health_endpoint", fmt.Sprintf("http://%s:%d/health", cfg.Server.Host, cfg.Server.Port)),
		zap.String("metrics_endpoint", "/metrics"))

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
