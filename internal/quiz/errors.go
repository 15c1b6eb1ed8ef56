package quiz

import (
	"errors"
	"fmt"
)

var (
	// ErrNoQuestions marks the terminal empty state: the chosen category has
	// no questions, so no session can start.
	ErrNoQuestions = errors.New("no questions available")

	ErrUnknownOption   = errors.New("option does not belong to the current question")
	ErrNoSelection     = errors.New("no option selected")
	ErrAlreadyRevealed = errors.New("answer already submitted")
	ErrNotRevealed     = errors.New("answer not submitted yet")
	ErrSessionComplete = errors.New("quiz already completed")

	// ErrDataIntegrity is the errors.Is target for every IntegrityError.
	ErrDataIntegrity = errors.New("content integrity violation")
)

// IntegrityError reports an answer or option that cannot be resolved against
// the authoritative content records. The reconciler fails the whole results
// view on it instead of patching over the missing record.
type IntegrityError struct {
	QuestionID string
	Detail     string
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("question %s: %s", e.QuestionID, e.Detail)
}

func (e *IntegrityError) Unwrap() error {
	return ErrDataIntegrity
}
