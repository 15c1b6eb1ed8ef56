package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"meeras-quiz/internal/userclient"
)

func main() {
	_ = godotenv.Load()

	defaultServer := os.Getenv("QUIZ_SERVER_URL")
	server := flag.String("server", defaultServer, "quiz-service base URL")
	flag.Parse()

	err := userclient.Run(context.Background(), os.Stdin, os.Stdout, userclient.Config{
		ServerURL: *server,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
