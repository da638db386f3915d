package main

import (
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/campusfound/campusfound/internal/api"
	"github.com/campusfound/campusfound/internal/db"
	"github.com/campusfound/campusfound/internal/logging"
	"github.com/campusfound/campusfound/internal/storage"
	"github.com/campusfound/campusfound/internal/store"
	"github.com/campusfound/campusfound/internal/web"
)

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	dbPath := flag.String("db", "campusfound.sqlite3", "path to SQLite database file")
	mock := flag.Bool("mock", false, "serve the built-in demo collection, no backend")
	flag.Parse()

	// Load .env before logging setup so LOG_LEVEL can come from it.
	// A missing file is fine: credentials can come from the environment
	// directly.
	envErr := godotenv.Load()
	logging.Setup()
	if envErr != nil {
		slog.Debug("no .env file found")
	}

	repo, submitter, cleanup, err := buildRepositories(*dbPath, *mock)
	if err != nil {
		slog.Error("failed to set up repositories", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	webRouter, err := web.NewRouter(repo, submitter)
	if err != nil {
		slog.Error("failed to set up web router", "error", err)
		os.Exit(1)
	}

	// API routes take priority, web routes handle the rest.
	apiRouter := api.NewRouter(repo, submitter)
	mux := http.NewServeMux()
	mux.Handle("/api/", apiRouter)
	mux.Handle("/metrics", apiRouter)
	mux.Handle("/", webRouter)

	handler := api.LoggingMiddleware(mux)

	fmt.Printf("Server listening on %s\n", *addr)
	if err := http.ListenAndServe(*addr, handler); err != nil {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
}

// buildRepositories wires either the demo collection or the persisted
// backend, returning the read repository, the submitter (nil when
// submissions are unavailable) and a cleanup function.
func buildRepositories(dbPath string, mock bool) (store.Repository, store.Submitter, func(), error) {
	if mock {
		slog.Info("running in mock mode, submissions disabled")
		return store.NewMemory(store.Fixtures()), nil, func() {}, nil
	}

	database, err := db.Open(dbPath)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("opening database: %w", err)
	}
	if err := db.Migrate(database); err != nil {
		database.Close()
		return nil, nil, nil, fmt.Errorf("migrating database: %w", err)
	}
	slog.Info("database ready", "path", dbPath)

	objects, err := objectStoreFromEnv()
	if err != nil {
		database.Close()
		return nil, nil, nil, err
	}
	if objects == nil {
		slog.Warn("object storage not configured, image uploads disabled")
	}

	repo := store.NewSQLite(database, objects)
	return repo, repo, func() { database.Close() }, nil
}

// objectStoreFromEnv connects to object storage when MINIO_ENDPOINT is
// set; otherwise it returns nil and images are rejected at submit time.
func objectStoreFromEnv() (store.ObjectStore, error) {
	endpoint := os.Getenv("MINIO_ENDPOINT")
	if endpoint == "" {
		return nil, nil
	}

	objects, err := storage.New(storage.Config{
		Endpoint:       endpoint,
		PublicEndpoint: os.Getenv("MINIO_PUBLIC_ENDPOINT"),
		AccessKey:      os.Getenv("MINIO_ACCESS_KEY"),
		SecretKey:      os.Getenv("MINIO_SECRET_KEY"),
		Bucket:         envOr("MINIO_BUCKET", "item-images"),
		UseSSL:         strings.EqualFold(os.Getenv("MINIO_USE_SSL"), "true"),
	})
	if err != nil {
		return nil, fmt.Errorf("connecting to object storage: %w", err)
	}
	return objects, nil
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
