package userclient

import (
	"bytes"
	"context"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"

	"meeras-quiz/internal/content"
	"meeras-quiz/internal/httpapi"
)

type serverStore struct {
	categories []content.Category
	questions  map[string][]content.Question
	options    map[string][]content.Option
}

func newServerStore() *serverStore {
	return &serverStore{
		categories: []content.Category{
			{ID: "cat-shares", Name: "Basic Shares", Description: "Fixed shares"},
			{ID: "cat-empty", Name: "Empty", Description: "Nothing yet"},
		},
		questions: map[string][]content.Question{
			"cat-shares": {
				{ID: "q1", CategoryID: "cat-shares", QuestionText: "Share of the wife?", OrderIndex: 0},
				{ID: "q2", CategoryID: "cat-shares", QuestionText: "Share of the mother?", OrderIndex: 1},
			},
		},
		options: map[string][]content.Option{
			"q1": {
				{ID: "q1-a", QuestionID: "q1", OptionText: "One half", OrderIndex: 0},
				{ID: "q1-b", QuestionID: "q1", OptionText: "One eighth", IsCorrect: true, OrderIndex: 1},
			},
			"q2": {
				{ID: "q2-a", QuestionID: "q2", OptionText: "One sixth", IsCorrect: true, OrderIndex: 0},
				{ID: "q2-b", QuestionID: "q2", OptionText: "One quarter", OrderIndex: 1},
			},
		},
	}
}

func (s *serverStore) Categories(_ context.Context) ([]content.Category, error) {
	return s.categories, nil
}

func (s *serverStore) QuestionsByCategory(_ context.Context, categoryID string) ([]content.Question, error) {
	return s.questions[categoryID], nil
}

func (s *serverStore) QuestionsByIDs(_ context.Context, ids []string) ([]content.Question, error) {
	wanted := make(map[string]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	matched := make([]content.Question, 0, len(ids))
	for _, questions := range s.questions {
		for _, question := range questions {
			if wanted[question.ID] {
				matched = append(matched, question)
			}
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].OrderIndex < matched[j].OrderIndex
	})
	return matched, nil
}

func (s *serverStore) OptionsByQuestions(_ context.Context, questionIDs []string) ([]content.Option, error) {
	flat := make([]content.Option, 0)
	for _, id := range questionIDs {
		flat = append(flat, s.options[id]...)
	}
	return flat, nil
}

func newQuizServer(t *testing.T) (*httptest.Server, *httpapi.SessionRegistry) {
	t.Helper()

	registry := httpapi.NewSessionRegistry()
	server := httptest.NewServer(httpapi.NewRouter(newServerStore(), registry))
	t.Cleanup(server.Close)
	return server, registry
}

func TestRunFullQuizOverHTTP(t *testing.T) {
	server, _ := newQuizServer(t)

	var out bytes.Buffer
	input := strings.NewReader("1\nA\nA\n")
	if err := Run(context.Background(), input, &out, Config{ServerURL: server.URL}); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	output := out.String()
	for _, want := range []string{
		"1. Basic Shares",
		"[Basic Shares] Question 1 of 2",
		"Share of the wife?",
		"Wrong. Correct answer was: One eighth",
		"[Basic Shares] Question 2 of 2",
		"Share of the mother?",
		"Correct!",
		"Final score: 1/2 (50%)",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q\n%s", want, output)
		}
	}
}

func TestRunEmptyCategoryOverHTTP(t *testing.T) {
	server, _ := newQuizServer(t)

	var out bytes.Buffer
	input := strings.NewReader("2\n")
	if err := Run(context.Background(), input, &out, Config{ServerURL: server.URL}); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !strings.Contains(out.String(), "No questions available in this category.") {
		t.Fatalf("missing empty-category notice:\n%s", out.String())
	}
}

func TestRunQuitAbandonsSession(t *testing.T) {
	server, registry := newQuizServer(t)

	var out bytes.Buffer
	input := strings.NewReader("1\nZ\nZ\nZ\n")
	if err := Run(context.Background(), input, &out, Config{ServerURL: server.URL}); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !strings.Contains(out.String(), "Leaving the quiz.") {
		t.Fatalf("missing quit notice:\n%s", out.String())
	}
	if registry.Len() != 0 {
		t.Fatalf("abandoned session still registered, Len() = %d", registry.Len())
	}
}

func TestRunServiceUnavailable(t *testing.T) {
	var out bytes.Buffer
	err := Run(context.Background(), strings.NewReader("1\n"), &out, Config{ServerURL: "http://127.0.0.1:1"})
	if err == nil {
		t.Fatalf("expected error when the service is down")
	}
}

func TestAPIErrorMessage(t *testing.T) {
	withMessage := &APIError{StatusCode: 404, Message: "session not found"}
	if withMessage.Error() != "session not found" {
		t.Fatalf("Error() = %q", withMessage.Error())
	}
	blank := &APIError{StatusCode: 502}
	if !strings.Contains(blank.Error(), "502") {
		t.Fatalf("Error() = %q, want status code mentioned", blank.Error())
	}
}
