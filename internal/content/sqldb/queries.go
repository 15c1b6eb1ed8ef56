package sqldb

import (
	"context"

	"github.com/jmoiron/sqlx"

	"meeras-quiz/internal/content"
)

func (s *Store) Categories(ctx context.Context) ([]content.Category, error) {
	categories := make([]content.Category, 0)
	err := s.db.SelectContext(ctx, &categories, `
		SELECT id, name, description, order_index, created_at
		FROM categories
		ORDER BY order_index ASC`)
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *Store) QuestionsByCategory(ctx context.Context, categoryID string) ([]content.Question, error) {
	questions := make([]content.Question, 0)
	query := s.db.Rebind(`
		SELECT id, category_id, question_text, explanation, order_index, created_at
		FROM questions
		WHERE category_id = ?
		ORDER BY order_index ASC`)
	if err := s.db.SelectContext(ctx, &questions, query, categoryID); err != nil {
		return nil, err
	}
	return questions, nil
}

func (s *Store) QuestionsByIDs(ctx context.Context, ids []string) ([]content.Question, error) {
	questions := make([]content.Question, 0)
	if len(ids) == 0 {
		return questions, nil
	}

	query, args, err := sqlx.In(`
		SELECT id, category_id, question_text, explanation, order_index, created_at
		FROM questions
		WHERE id IN (?)
		ORDER BY order_index ASC`, ids)
	if err != nil {
		return nil, err
	}
	if err := s.db.SelectContext(ctx, &questions, s.db.Rebind(query), args...); err != nil {
		return nil, err
	}
	return questions, nil
}

func (s *Store) OptionsByQuestions(ctx context.Context, questionIDs []string) ([]content.Option, error) {
	options := make([]content.Option, 0)
	if len(questionIDs) == 0 {
		return options, nil
	}

	query, args, err := sqlx.In(`
		SELECT id, question_id, option_text, is_correct, explanation, order_index, created_at
		FROM options
		WHERE question_id IN (?)
		ORDER BY order_index ASC`, questionIDs)
	if err != nil {
		return nil, err
	}
	if err := s.db.SelectContext(ctx, &options, s.db.Rebind(query), args...); err != nil {
		return nil, err
	}
	return options, nil
}
