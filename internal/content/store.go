package content

import (
	"context"
	"errors"
)

var ErrCategoryNotFound = errors.New("category not found")

// Store is the read-only view of the content database. Every front-end takes
// it as an explicit dependency so tests can substitute an in-memory fake.
// Queries do a single round-trip each; callers surface failures without
// retrying and never render partial data.
type Store interface {
	// Categories returns all categories ordered by order_index ascending.
	Categories(ctx context.Context) ([]Category, error)

	// QuestionsByCategory returns a category's questions ordered by
	// order_index ascending. An unknown category yields an empty list, the
	// same as a category with no questions.
	QuestionsByCategory(ctx context.Context, categoryID string) ([]Question, error)

	// QuestionsByIDs returns the questions with the given ids ordered by
	// order_index ascending. Used by the results screen to re-fetch
	// authoritative records for the answered questions.
	QuestionsByIDs(ctx context.Context, ids []string) ([]Question, error)

	// OptionsByQuestions returns the options of all listed questions in one
	// flat fetch ordered by order_index ascending; group with GroupOptions.
	OptionsByQuestions(ctx context.Context, questionIDs []string) ([]Option, error)
}
