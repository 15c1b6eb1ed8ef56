package userclient

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

const (
	defaultServer      = "http://127.0.0.1:8080"
	defaultHTTPTimeout = 5 * time.Second
	maxAttempts        = 3
)

type Config struct {
	ServerURL   string
	HTTPTimeout time.Duration
}

// Run plays one quiz against a running quiz-service over HTTP: list
// categories, start a session, answer each question, print the review.
func Run(ctx context.Context, in io.Reader, out io.Writer, cfg Config) error {
	serverURL := strings.TrimSpace(cfg.ServerURL)
	if serverURL == "" {
		serverURL = defaultServer
	}
	timeout := cfg.HTTPTimeout
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}

	client := NewHTTPClient(serverURL, &http.Client{Timeout: timeout})
	reader := bufio.NewReader(in)

	categories, err := client.Categories(ctx)
	if err != nil {
		return err
	}
	if len(categories) == 0 {
		fmt.Fprintln(out, "No categories available.")
		return nil
	}

	fmt.Fprintln(out, "Categories:")
	for idx, category := range categories {
		fmt.Fprintf(out, "  %d. %s — %s\n", idx+1, category.Name, category.Description)
	}

	choice, ok := promptChoice(reader, out, len(categories))
	if !ok {
		return errors.New("no category chosen")
	}

	view, err := client.StartSession(ctx, categories[choice-1].ID)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnprocessableEntity {
			fmt.Fprintln(out, "No questions available in this category.")
			return nil
		}
		return err
	}

	sessionID := view.SessionID
	for {
		printQuestion(out, view)

		answerIndex, ok := promptAnswer(reader, out, len(view.Options))
		if !ok {
			fmt.Fprintln(out, "Leaving the quiz.")
			return client.Abandon(ctx, sessionID)
		}

		if _, err := client.Select(ctx, sessionID, view.Options[answerIndex].ID); err != nil {
			return err
		}
		submitted, err := client.Submit(ctx, sessionID)
		if err != nil {
			return err
		}
		printReveal(out, submitted)

		advanced, err := client.Advance(ctx, sessionID)
		if err != nil {
			return err
		}
		if advanced.Completed {
			break
		}
		view = *advanced.Next
	}

	results, err := client.Results(ctx, sessionID)
	if err != nil {
		return err
	}
	printResults(out, results)
	return nil
}

func promptChoice(reader *bufio.Reader, out io.Writer, count int) (int, bool) {
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		fmt.Fprintf(out, "\nChoose a category (1-%d): ", count)
		line, err := reader.ReadString('\n')
		if err != nil {
			return 0, false
		}

		choice, err := strconv.Atoi(strings.TrimSpace(line))
		if err == nil && choice >= 1 && choice <= count {
			return choice, true
		}
		if attempt < maxAttempts {
			fmt.Fprintln(out, "Invalid choice.")
		}
	}
	return 0, false
}
