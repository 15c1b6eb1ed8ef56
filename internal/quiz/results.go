package quiz

import (
	"math"
	"sort"

	"meeras-quiz/internal/content"
)

// Result pairs one question with the user's selected option and the
// authoritative correct option. IsCorrect is taken from the stored Answer,
// not recomputed from the option records.
type Result struct {
	Question       content.Question `json:"question"`
	SelectedOption content.Option   `json:"selected_option"`
	CorrectOption  content.Option   `json:"correct_option"`
	IsCorrect      bool             `json:"is_correct"`
}

// Summary aggregates a finished quiz.
type Summary struct {
	Total      int `json:"total"`
	Correct    int `json:"correct"`
	Percentage int `json:"percentage"`
}

// BuildResults joins the accumulated answers with re-fetched question and
// option records into one Result per question, re-ordered by order_index.
// Any unresolvable record (missing answer, missing selected option, zero or
// multiple correct options) fails the whole view with an IntegrityError; a
// partially reconciled review is worse than an error.
func BuildResults(questions []content.Question, options map[string][]content.Option, answers []Answer) ([]Result, error) {
	ordered := make([]content.Question, len(questions))
	copy(ordered, questions)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].OrderIndex < ordered[j].OrderIndex
	})

	answerByQuestion := make(map[string]Answer, len(answers))
	for _, answer := range answers {
		answerByQuestion[answer.QuestionID] = answer
	}

	results := make([]Result, 0, len(ordered))
	for _, question := range ordered {
		answer, ok := answerByQuestion[question.ID]
		if !ok {
			return nil, &IntegrityError{
				QuestionID: question.ID,
				Detail:     "no recorded answer",
			}
		}

		questionOptions := options[question.ID]
		selected, ok := findOption(questionOptions, answer.SelectedOptionID)
		if !ok {
			return nil, &IntegrityError{
				QuestionID: question.ID,
				Detail:     "selected option " + answer.SelectedOptionID + " not found",
			}
		}

		correct, err := correctOption(question.ID, questionOptions)
		if err != nil {
			return nil, err
		}

		results = append(results, Result{
			Question:       question,
			SelectedOption: selected,
			CorrectOption:  correct,
			IsCorrect:      answer.IsCorrect,
		})
	}

	return results, nil
}

// Summarize counts correct results and computes the rounded percentage.
// Zero results is the guarded degenerate case: no division, zero percentage.
func Summarize(results []Result) Summary {
	summary := Summary{Total: len(results)}
	if summary.Total == 0 {
		return summary
	}

	for _, result := range results {
		if result.IsCorrect {
			summary.Correct++
		}
	}
	summary.Percentage = int(math.Round(100 * float64(summary.Correct) / float64(summary.Total)))
	return summary
}

func correctOption(questionID string, options []content.Option) (content.Option, error) {
	var (
		correct content.Option
		found   bool
	)
	for _, option := range options {
		if !option.IsCorrect {
			continue
		}
		if found {
			return content.Option{}, &IntegrityError{
				QuestionID: questionID,
				Detail:     "multiple options marked correct",
			}
		}
		correct = option
		found = true
	}
	if !found {
		return content.Option{}, &IntegrityError{
			QuestionID: questionID,
			Detail:     "no option marked correct",
		}
	}
	return correct, nil
}
