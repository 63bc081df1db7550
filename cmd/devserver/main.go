package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/dmitrijs2005/coinkeeper/internal/devserver"
	"github.com/dmitrijs2005/coinkeeper/internal/devserver/storage"
	"github.com/dmitrijs2005/coinkeeper/internal/logging"
	"github.com/joho/godotenv"

	_ "modernc.org/sqlite"
)

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	// A missing .env is fine; environment variables still apply.
	_ = godotenv.Load()

	addr := getEnv("DEVSERVER_ADDR", ":3001")
	dbPath := getEnv("DEVSERVER_DB_PATH", "devserver.db")

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stdout, nil)))

	ctx := context.Background()
	store, db, err := storage.Open(ctx, dbPath)
	if err != nil {
		log.Fatalf("opening storage: %v", err)
	}
	defer db.Close()

	srv := devserver.NewServer(store, logger)

	logger.Info(ctx, "devserver listening", "addr", addr, "db", dbPath)
	if err := http.ListenAndServe(addr, srv.Handler()); err != nil {
		log.Fatalf("%v", err)
	}
}
