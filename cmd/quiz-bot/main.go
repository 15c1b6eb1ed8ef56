package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"meeras-quiz/internal/bot"
	"meeras-quiz/internal/content/sqldb"
)

func main() {
	_ = godotenv.Load()

	token := os.Getenv("TELEGRAM_BOT_TOKEN")
	if token == "" {
		log.Fatal("TELEGRAM_BOT_TOKEN environment variable is not set")
	}

	store, err := sqldb.OpenFromEnv()
	if err != nil {
		log.Fatalf("failed to open content store: %v", err)
	}
	defer store.Close()

	b, err := bot.New(token, store)
	if err != nil {
		log.Fatalf("failed to create bot: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("shutting down...")
		cancel()
	}()

	b.Start(ctx)
}
