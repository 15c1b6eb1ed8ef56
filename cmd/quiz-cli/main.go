package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"meeras-quiz/internal/cli"
	"meeras-quiz/internal/content/sqldb"
)

func main() {
	_ = godotenv.Load()

	store, err := sqldb.OpenFromEnv()
	if err != nil {
		log.Fatalf("failed to open content store: %v", err)
	}
	defer store.Close()

	if err := cli.Run(context.Background(), os.Stdin, os.Stdout, store); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
