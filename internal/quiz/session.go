package quiz

import (
	"meeras-quiz/internal/content"
)

// Answer records the user's choice for one question. IsCorrect is copied from
// the selected option at submission time and never recomputed afterwards, so
// a mid-session content edit cannot silently rewrite history.
type Answer struct {
	QuestionID       string `json:"question_id"`
	SelectedOptionID string `json:"selected_option_id"`
	IsCorrect        bool   `json:"is_correct"`
}

// Session drives a single-question-at-a-time quiz over an immutable snapshot
// of one category's questions and options. The flow per question is
// Select -> Submit (reveal) -> Advance; exactly one Answer is accumulated per
// question, in question order. Sessions are single-goroutine state machines;
// callers that share one across goroutines must serialize access themselves.
type Session struct {
	category  content.Category
	questions []content.Question
	options   map[string][]content.Option

	current   int
	selected  string
	revealed  bool
	completed bool
	answers   []Answer
}

// NewSession snapshots the fetched questions and their grouped options.
// An empty question list is the terminal empty-category state.
func NewSession(category content.Category, questions []content.Question, options map[string][]content.Option) (*Session, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}
	if options == nil {
		options = make(map[string][]content.Option)
	}
	return &Session{
		category:  category,
		questions: questions,
		options:   options,
		answers:   make([]Answer, 0, len(questions)),
	}, nil
}

func (s *Session) Category() content.Category {
	return s.category
}

// Current returns the active question and its options in display order.
func (s *Session) Current() (content.Question, []content.Option) {
	question := s.questions[s.current]
	return question, s.options[question.ID]
}

// Progress reports the 1-based question number and the total count.
func (s *Session) Progress() (int, int) {
	return s.current + 1, len(s.questions)
}

func (s *Session) Revealed() bool {
	return s.revealed
}

func (s *Session) Completed() bool {
	return s.completed
}

func (s *Session) SelectedOptionID() string {
	return s.selected
}

// Select records the choice for the current question. Selection is freely
// replaceable before submission and locked after it: selecting while revealed
// is a silent no-op, matching the disabled option buttons on the quiz screen.
func (s *Session) Select(optionID string) error {
	if s.completed {
		return ErrSessionComplete
	}
	if s.revealed {
		return nil
	}

	question := s.questions[s.current]
	for _, option := range s.options[question.ID] {
		if option.ID == optionID {
			s.selected = optionID
			return nil
		}
	}
	return ErrUnknownOption
}

// Submit locks in the current selection, appends the Answer and reveals the
// explanation. With no selection the session state is left untouched and
// ErrNoSelection only signals that nothing happened.
func (s *Session) Submit() (Answer, error) {
	if s.completed {
		return Answer{}, ErrSessionComplete
	}
	if s.revealed {
		return Answer{}, ErrAlreadyRevealed
	}
	if s.selected == "" {
		return Answer{}, ErrNoSelection
	}

	question := s.questions[s.current]
	option, ok := findOption(s.options[question.ID], s.selected)
	if !ok {
		// Select validated membership, so this only happens if the snapshot
		// itself is inconsistent.
		return Answer{}, &IntegrityError{
			QuestionID: question.ID,
			Detail:     "selected option " + s.selected + " not found",
		}
	}

	answer := Answer{
		QuestionID:       question.ID,
		SelectedOptionID: option.ID,
		IsCorrect:        option.IsCorrect,
	}
	s.answers = append(s.answers, answer)
	s.revealed = true
	return answer, nil
}

// Advance moves to the next question, or completes the session when the
// current question is the last one. Completion is delivered exactly once:
// done=true on the final Advance, ErrSessionComplete afterwards.
func (s *Session) Advance() (bool, error) {
	if s.completed {
		return false, ErrSessionComplete
	}
	if !s.revealed {
		return false, ErrNotRevealed
	}

	if s.current == len(s.questions)-1 {
		s.completed = true
		return true, nil
	}

	s.current++
	s.selected = ""
	s.revealed = false
	return false, nil
}

// Answers returns a copy of the accumulated answers, one per submitted
// question in question order.
func (s *Session) Answers() []Answer {
	answers := make([]Answer, len(s.answers))
	copy(answers, s.answers)
	return answers
}

func findOption(options []content.Option, optionID string) (content.Option, bool) {
	for _, option := range options {
		if option.ID == optionID {
			return option, true
		}
	}
	return content.Option{}, false
}
