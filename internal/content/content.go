package content

import "time"

// Category groups questions on one subtopic. Reference data, never mutated
// after load.
type Category struct {
	ID          string    `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Description string    `db:"description" json:"description"`
	OrderIndex  int       `db:"order_index" json:"order_index"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// Question belongs to exactly one category. Explanation holds the detailed
// background shown after the answer is revealed.
type Question struct {
	ID           string    `db:"id" json:"id"`
	CategoryID   string    `db:"category_id" json:"category_id"`
	QuestionText string    `db:"question_text" json:"question_text"`
	Explanation  string    `db:"explanation" json:"explanation"`
	OrderIndex   int       `db:"order_index" json:"order_index"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// Option is one selectable choice for a question. Exactly one option per
// question carries IsCorrect=true; the reconciler treats anything else as a
// data-integrity violation.
type Option struct {
	ID          string    `db:"id" json:"id"`
	QuestionID  string    `db:"question_id" json:"question_id"`
	OptionText  string    `db:"option_text" json:"option_text"`
	IsCorrect   bool      `db:"is_correct" json:"is_correct"`
	Explanation string    `db:"explanation" json:"explanation"`
	OrderIndex  int       `db:"order_index" json:"order_index"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// GroupOptions buckets a flat option fetch by question id, preserving the
// order the store returned (order_index ascending).
func GroupOptions(options []Option) map[string][]Option {
	grouped := make(map[string][]Option)
	for _, option := range options {
		grouped[option.QuestionID] = append(grouped[option.QuestionID], option)
	}
	return grouped
}

// QuestionIDs extracts ids in presentation order.
func QuestionIDs(questions []Question) []string {
	ids := make([]string, 0, len(questions))
	for _, question := range questions {
		ids = append(ids, question.ID)
	}
	return ids
}
