package quiz

import (
	"errors"
	"testing"

	"meeras-quiz/internal/content"
)

func TestBuildResultsBasicSharesScenario(t *testing.T) {
	questions, options := sampleQuizData()

	// A for Q1 (incorrect, correct is B) and A for Q2 (correct).
	answers := []Answer{
		{QuestionID: "q1", SelectedOptionID: "q1-a", IsCorrect: false},
		{QuestionID: "q2", SelectedOptionID: "q2-a", IsCorrect: true},
	}

	results, err := BuildResults(questions, options, answers)
	if err != nil {
		t.Fatalf("BuildResults failed: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}

	if results[0].IsCorrect {
		t.Fatalf("Q1 should be incorrect")
	}
	if results[0].SelectedOption.ID != "q1-a" {
		t.Fatalf("Q1 selected option = %q, want q1-a", results[0].SelectedOption.ID)
	}
	if results[0].CorrectOption.ID != "q1-b" {
		t.Fatalf("Q1 correct option = %q, want q1-b", results[0].CorrectOption.ID)
	}

	if !results[1].IsCorrect {
		t.Fatalf("Q2 should be correct")
	}
	if results[1].SelectedOption.ID != "q2-a" || results[1].CorrectOption.ID != "q2-a" {
		t.Fatalf("Q2 options wrong: %+v", results[1])
	}

	summary := Summarize(results)
	if summary.Total != 2 || summary.Correct != 1 || summary.Percentage != 50 {
		t.Fatalf("summary = %+v, want 1/2 = 50%%", summary)
	}
}

func TestBuildResultsReordersByOrderIndex(t *testing.T) {
	questions, options := sampleQuizData()
	// Store results may come back in any order; the reconciler re-orders.
	questions[0], questions[1] = questions[1], questions[0]

	answers := []Answer{
		{QuestionID: "q1", SelectedOptionID: "q1-b", IsCorrect: true},
		{QuestionID: "q2", SelectedOptionID: "q2-b", IsCorrect: false},
	}

	results, err := BuildResults(questions, options, answers)
	if err != nil {
		t.Fatalf("BuildResults failed: %v", err)
	}
	if results[0].Question.ID != "q1" || results[1].Question.ID != "q2" {
		t.Fatalf("results not in order_index order: %q, %q",
			results[0].Question.ID, results[1].Question.ID)
	}
}

func TestBuildResultsCopiesStoredCorrectness(t *testing.T) {
	questions, options := sampleQuizData()

	// Drifted content: the stored answer says correct although the option
	// record now disagrees. The stored flag wins; it is never recomputed.
	answers := []Answer{
		{QuestionID: "q1", SelectedOptionID: "q1-a", IsCorrect: true},
		{QuestionID: "q2", SelectedOptionID: "q2-a", IsCorrect: true},
	}

	results, err := BuildResults(questions, options, answers)
	if err != nil {
		t.Fatalf("BuildResults failed: %v", err)
	}
	if !results[0].IsCorrect {
		t.Fatalf("stored correctness flag must be preserved, not recomputed")
	}
}

func TestBuildResultsMissingAnswer(t *testing.T) {
	questions, options := sampleQuizData()

	answers := []Answer{
		{QuestionID: "q1", SelectedOptionID: "q1-a", IsCorrect: false},
	}

	_, err := BuildResults(questions, options, answers)
	if !errors.Is(err, ErrDataIntegrity) {
		t.Fatalf("expected data-integrity error, got %v", err)
	}
}

func TestBuildResultsMissingSelectedOption(t *testing.T) {
	questions, options := sampleQuizData()

	answers := []Answer{
		{QuestionID: "q1", SelectedOptionID: "deleted-option", IsCorrect: false},
		{QuestionID: "q2", SelectedOptionID: "q2-a", IsCorrect: true},
	}

	_, err := BuildResults(questions, options, answers)
	if !errors.Is(err, ErrDataIntegrity) {
		t.Fatalf("expected data-integrity error, got %v", err)
	}

	var integrity *IntegrityError
	if !errors.As(err, &integrity) || integrity.QuestionID != "q1" {
		t.Fatalf("expected IntegrityError for q1, got %v", err)
	}
}

func TestBuildResultsNoCorrectOption(t *testing.T) {
	questions, options := sampleQuizData()
	stripped := make([]content.Option, 0, len(options["q1"]))
	for _, option := range options["q1"] {
		option.IsCorrect = false
		stripped = append(stripped, option)
	}
	options["q1"] = stripped

	answers := []Answer{
		{QuestionID: "q1", SelectedOptionID: "q1-a", IsCorrect: false},
		{QuestionID: "q2", SelectedOptionID: "q2-a", IsCorrect: true},
	}

	if _, err := BuildResults(questions, options, answers); !errors.Is(err, ErrDataIntegrity) {
		t.Fatalf("expected data-integrity error for zero correct options, got %v", err)
	}
}

func TestBuildResultsMultipleCorrectOptions(t *testing.T) {
	questions, options := sampleQuizData()
	doubled := make([]content.Option, 0, len(options["q1"]))
	for _, option := range options["q1"] {
		option.IsCorrect = true
		doubled = append(doubled, option)
	}
	options["q1"] = doubled

	answers := []Answer{
		{QuestionID: "q1", SelectedOptionID: "q1-a", IsCorrect: true},
		{QuestionID: "q2", SelectedOptionID: "q2-a", IsCorrect: true},
	}

	if _, err := BuildResults(questions, options, answers); !errors.Is(err, ErrDataIntegrity) {
		t.Fatalf("expected data-integrity error for multiple correct options, got %v", err)
	}
}

func TestSummarizeRounding(t *testing.T) {
	cases := []struct {
		name    string
		correct int
		total   int
		want    int
	}{
		{"three of four", 3, 4, 75},
		{"one of three", 1, 3, 33},
		{"two of three", 2, 3, 67},
		{"all", 5, 5, 100},
		{"none", 0, 4, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			results := make([]Result, tc.total)
			for idx := 0; idx < tc.correct; idx++ {
				results[idx].IsCorrect = true
			}

			summary := Summarize(results)
			if summary.Correct != tc.correct || summary.Total != tc.total {
				t.Fatalf("summary counts = %d/%d, want %d/%d",
					summary.Correct, summary.Total, tc.correct, tc.total)
			}
			if summary.Percentage != tc.want {
				t.Fatalf("percentage = %d, want %d", summary.Percentage, tc.want)
			}
		})
	}
}

func TestSummarizeEmptyIsGuarded(t *testing.T) {
	summary := Summarize(nil)
	if summary.Total != 0 || summary.Correct != 0 || summary.Percentage != 0 {
		t.Fatalf("empty summary = %+v, want all zeros", summary)
	}
}
