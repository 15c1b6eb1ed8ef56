package sqldb

func (s *Store) initSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS categories (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL UNIQUE,
			description TEXT NOT NULL DEFAULT '',
			order_index INTEGER NOT NULL DEFAULT 0,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		);`,
		`CREATE TABLE IF NOT EXISTS questions (
			id TEXT PRIMARY KEY,
			category_id TEXT NOT NULL,
			question_text TEXT NOT NULL,
			explanation TEXT NOT NULL DEFAULT '',
			order_index INTEGER NOT NULL DEFAULT 0,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (category_id) REFERENCES categories(id)
		);`,
		`CREATE TABLE IF NOT EXISTS options (
			id TEXT PRIMARY KEY,
			question_id TEXT NOT NULL,
			option_text TEXT NOT NULL,
			is_correct BOOLEAN NOT NULL DEFAULT false,
			explanation TEXT NOT NULL DEFAULT '',
			order_index INTEGER NOT NULL DEFAULT 0,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (question_id) REFERENCES questions(id)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_questions_category ON questions(category_id, order_index);`,
		`CREATE INDEX IF NOT EXISTS idx_options_question ON options(question_id, order_index);`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
