package sqldb

import (
	"context"
	"path/filepath"
	"testing"

	"meeras-quiz/internal/content"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	store, err := Open(DriverSQLite, path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() {
		_ = store.Close()
	})
	return store
}

func seedBasicShares(t *testing.T, store *Store) {
	t.Helper()
	ctx := context.Background()

	categories := []content.Category{
		{ID: "cat-wills", Name: "Wills", Description: "Bequests", OrderIndex: 1},
		{ID: "cat-shares", Name: "Basic Shares", Description: "Fixed shares", OrderIndex: 0},
	}
	for _, category := range categories {
		if err := store.UpsertCategory(ctx, category); err != nil {
			t.Fatalf("UpsertCategory(%s) failed: %v", category.ID, err)
		}
	}

	questions := []content.Question{
		{ID: "q2", CategoryID: "cat-shares", QuestionText: "Q2", Explanation: "E2", OrderIndex: 1},
		{ID: "q1", CategoryID: "cat-shares", QuestionText: "Q1", Explanation: "E1", OrderIndex: 0},
		{ID: "q3", CategoryID: "cat-wills", QuestionText: "Q3", Explanation: "E3", OrderIndex: 0},
	}
	for _, question := range questions {
		if err := store.UpsertQuestion(ctx, question); err != nil {
			t.Fatalf("UpsertQuestion(%s) failed: %v", question.ID, err)
		}
	}

	options := []content.Option{
		{ID: "q1-b", QuestionID: "q1", OptionText: "B", IsCorrect: true, Explanation: "why", OrderIndex: 1},
		{ID: "q1-a", QuestionID: "q1", OptionText: "A", OrderIndex: 0},
		{ID: "q2-a", QuestionID: "q2", OptionText: "A", IsCorrect: true, OrderIndex: 0},
		{ID: "q3-a", QuestionID: "q3", OptionText: "A", IsCorrect: true, OrderIndex: 0},
	}
	for _, option := range options {
		if err := store.UpsertOption(ctx, option); err != nil {
			t.Fatalf("UpsertOption(%s) failed: %v", option.ID, err)
		}
	}
}

func TestCategoriesOrderedByOrderIndex(t *testing.T) {
	store := newTestStore(t)
	seedBasicShares(t, store)

	categories, err := store.Categories(context.Background())
	if err != nil {
		t.Fatalf("Categories failed: %v", err)
	}
	if len(categories) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(categories))
	}
	if categories[0].ID != "cat-shares" || categories[1].ID != "cat-wills" {
		t.Fatalf("categories out of order: %q, %q", categories[0].ID, categories[1].ID)
	}
	if categories[0].Name != "Basic Shares" || categories[0].Description != "Fixed shares" {
		t.Fatalf("category fields wrong: %+v", categories[0])
	}
}

func TestQuestionsByCategoryOrderedAndFiltered(t *testing.T) {
	store := newTestStore(t)
	seedBasicShares(t, store)

	questions, err := store.QuestionsByCategory(context.Background(), "cat-shares")
	if err != nil {
		t.Fatalf("QuestionsByCategory failed: %v", err)
	}
	if len(questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(questions))
	}
	if questions[0].ID != "q1" || questions[1].ID != "q2" {
		t.Fatalf("questions out of order: %q, %q", questions[0].ID, questions[1].ID)
	}
}

func TestQuestionsByCategoryUnknownIsEmpty(t *testing.T) {
	store := newTestStore(t)
	seedBasicShares(t, store)

	questions, err := store.QuestionsByCategory(context.Background(), "missing")
	if err != nil {
		t.Fatalf("QuestionsByCategory failed: %v", err)
	}
	if len(questions) != 0 {
		t.Fatalf("expected no questions, got %d", len(questions))
	}
}

func TestQuestionsByIDs(t *testing.T) {
	store := newTestStore(t)
	seedBasicShares(t, store)

	questions, err := store.QuestionsByIDs(context.Background(), []string{"q2", "q1"})
	if err != nil {
		t.Fatalf("QuestionsByIDs failed: %v", err)
	}
	if len(questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(questions))
	}
	if questions[0].ID != "q1" || questions[1].ID != "q2" {
		t.Fatalf("questions not ordered by order_index: %q, %q", questions[0].ID, questions[1].ID)
	}

	empty, err := store.QuestionsByIDs(context.Background(), nil)
	if err != nil {
		t.Fatalf("QuestionsByIDs(nil) failed: %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("expected empty result for no ids, got %d", len(empty))
	}
}

func TestOptionsByQuestions(t *testing.T) {
	store := newTestStore(t)
	seedBasicShares(t, store)

	options, err := store.OptionsByQuestions(context.Background(), []string{"q1", "q2"})
	if err != nil {
		t.Fatalf("OptionsByQuestions failed: %v", err)
	}
	if len(options) != 3 {
		t.Fatalf("expected 3 options, got %d", len(options))
	}

	grouped := content.GroupOptions(options)
	q1 := grouped["q1"]
	if len(q1) != 2 || q1[0].ID != "q1-a" || q1[1].ID != "q1-b" {
		t.Fatalf("q1 options wrong: %+v", q1)
	}
	if !q1[1].IsCorrect || q1[0].IsCorrect {
		t.Fatalf("correctness flags lost in round-trip: %+v", q1)
	}
	if q1[1].Explanation != "why" {
		t.Fatalf("option explanation lost: %+v", q1[1])
	}
}

func TestUpsertCategoryOverwrites(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	category := content.Category{ID: "cat-1", Name: "First", OrderIndex: 0}
	if err := store.UpsertCategory(ctx, category); err != nil {
		t.Fatalf("first upsert failed: %v", err)
	}

	category.Name = "Renamed"
	category.OrderIndex = 5
	if err := store.UpsertCategory(ctx, category); err != nil {
		t.Fatalf("second upsert failed: %v", err)
	}

	categories, err := store.Categories(ctx)
	if err != nil {
		t.Fatalf("Categories failed: %v", err)
	}
	if len(categories) != 1 {
		t.Fatalf("upsert duplicated the row: %d rows", len(categories))
	}
	if categories[0].Name != "Renamed" || categories[0].OrderIndex != 5 {
		t.Fatalf("upsert did not overwrite: %+v", categories[0])
	}
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	if _, err := Open("oracle", "dsn"); err == nil {
		t.Fatalf("expected error for unsupported driver")
	}
}

func TestOpenPostgresRequiresDSN(t *testing.T) {
	if _, err := Open(DriverPostgres, " "); err == nil {
		t.Fatalf("expected error for missing postgres dsn")
	}
}
