package sqldb

import (
	"context"
	"time"

	"meeras-quiz/internal/content"
)

// Upserts live on the concrete store only; the content.Store interface the
// front-ends consume stays read-only. The importer is the single writer.

func (s *Store) UpsertCategory(ctx context.Context, category content.Category) error {
	if category.CreatedAt.IsZero() {
		category.CreatedAt = time.Now().UTC()
	}
	query := s.db.Rebind(`
		INSERT INTO categories (id, name, description, order_index, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			description = excluded.description,
			order_index = excluded.order_index`)
	_, err := s.db.ExecContext(ctx, query,
		category.ID, category.Name, category.Description, category.OrderIndex, category.CreatedAt)
	return err
}

func (s *Store) UpsertQuestion(ctx context.Context, question content.Question) error {
	if question.CreatedAt.IsZero() {
		question.CreatedAt = time.Now().UTC()
	}
	query := s.db.Rebind(`
		INSERT INTO questions (id, category_id, question_text, explanation, order_index, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			category_id = excluded.category_id,
			question_text = excluded.question_text,
			explanation = excluded.explanation,
			order_index = excluded.order_index`)
	_, err := s.db.ExecContext(ctx, query,
		question.ID, question.CategoryID, question.QuestionText, question.Explanation,
		question.OrderIndex, question.CreatedAt)
	return err
}

func (s *Store) UpsertOption(ctx context.Context, option content.Option) error {
	if option.CreatedAt.IsZero() {
		option.CreatedAt = time.Now().UTC()
	}
	query := s.db.Rebind(`
		INSERT INTO options (id, question_id, option_text, is_correct, explanation, order_index, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			question_id = excluded.question_id,
			option_text = excluded.option_text,
			is_correct = excluded.is_correct,
			explanation = excluded.explanation,
			order_index = excluded.order_index`)
	_, err := s.db.ExecContext(ctx, query,
		option.ID, option.QuestionID, option.OptionText, option.IsCorrect,
		option.Explanation, option.OrderIndex, option.CreatedAt)
	return err
}
