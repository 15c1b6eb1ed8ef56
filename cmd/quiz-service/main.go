package main

import (
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/gorilla/handlers"
	"github.com/joho/godotenv"

	"meeras-quiz/internal/content/sqldb"
	"meeras-quiz/internal/httpapi"
	"meeras-quiz/internal/scheduler"
)

func main() {
	_ = godotenv.Load()

	defaultAddr := os.Getenv("ADDR")
	if defaultAddr == "" {
		defaultAddr = ":8080"
	}

	addr := flag.String("addr", defaultAddr, "HTTP listen address")
	flag.Parse()

	store, err := sqldb.OpenFromEnv()
	if err != nil {
		log.Fatalf("failed to open content store: %v", err)
	}
	defer store.Close()

	registry := httpapi.NewSessionRegistry()

	janitor := scheduler.NewJanitor(registry, sessionTTL())
	janitor.Start()
	defer janitor.Stop()

	server := &http.Server{
		Addr:              *addr,
		Handler:           handlers.CombinedLoggingHandler(os.Stdout, httpapi.NewRouter(store, registry)),
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.Printf("quiz-service listening on %s", *addr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("server failed: %v", err)
	}
}

func sessionTTL() time.Duration {
	if value := os.Getenv("SESSION_TTL_MINUTES"); value != "" {
		if minutes, err := strconv.Atoi(value); err == nil && minutes > 0 {
			return time.Duration(minutes) * time.Minute
		}
	}
	return 30 * time.Minute
}
