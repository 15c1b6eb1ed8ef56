package httpapi

import (
	"meeras-quiz/internal/content"
	"meeras-quiz/internal/quiz"
)

type categoriesResponse struct {
	Categories []categoryResponse `json:"categories"`
}

type categoryResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	OrderIndex  int    `json:"order_index"`
}

type startSessionRequest struct {
	CategoryID string `json:"category_id"`
}

// optionView hides correctness and explanation until the answer is revealed,
// so the quiz screen cannot leak the right answer early.
type optionView struct {
	ID          string `json:"id"`
	OptionText  string `json:"option_text"`
	IsCorrect   *bool  `json:"is_correct,omitempty"`
	Explanation string `json:"explanation,omitempty"`
}

type questionView struct {
	SessionID        string       `json:"session_id"`
	CategoryID       string       `json:"category_id"`
	CategoryName     string       `json:"category_name"`
	QuestionNumber   int          `json:"question_number"`
	TotalQuestions   int          `json:"total_questions"`
	QuestionID       string       `json:"question_id"`
	QuestionText     string       `json:"question_text"`
	Options          []optionView `json:"options"`
	SelectedOptionID string       `json:"selected_option_id,omitempty"`
	Revealed         bool         `json:"revealed"`
	Completed        bool         `json:"completed"`
	// Explanation is the question's detailed background, present post-reveal.
	Explanation string `json:"explanation,omitempty"`
}

type submitResponse struct {
	questionView
	IsCorrect bool `json:"is_correct"`
}

type advanceResponse struct {
	SessionID string        `json:"session_id"`
	Completed bool          `json:"completed"`
	Answered  int           `json:"answered"`
	Next      *questionView `json:"next,omitempty"`
}

type resultView struct {
	Question       questionRecord `json:"question"`
	SelectedOption optionRecord   `json:"selected_option"`
	CorrectOption  optionRecord   `json:"correct_option"`
	IsCorrect      bool           `json:"is_correct"`
}

type questionRecord struct {
	ID           string `json:"id"`
	QuestionText string `json:"question_text"`
	Explanation  string `json:"explanation"`
}

type optionRecord struct {
	ID          string `json:"id"`
	OptionText  string `json:"option_text"`
	Explanation string `json:"explanation,omitempty"`
}

type resultsResponse struct {
	SessionID    string       `json:"session_id"`
	CategoryName string       `json:"category_name"`
	Results      []resultView `json:"results"`
	Summary      quiz.Summary `json:"summary"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func toCategoryResponses(categories []content.Category) []categoryResponse {
	out := make([]categoryResponse, 0, len(categories))
	for _, category := range categories {
		out = append(out, categoryResponse{
			ID:          category.ID,
			Name:        category.Name,
			Description: category.Description,
			OrderIndex:  category.OrderIndex,
		})
	}
	return out
}

func toResultViews(results []quiz.Result) []resultView {
	out := make([]resultView, 0, len(results))
	for _, result := range results {
		out = append(out, resultView{
			Question: questionRecord{
				ID:           result.Question.ID,
				QuestionText: result.Question.QuestionText,
				Explanation:  result.Question.Explanation,
			},
			SelectedOption: optionRecord{
				ID:          result.SelectedOption.ID,
				OptionText:  result.SelectedOption.OptionText,
				Explanation: result.SelectedOption.Explanation,
			},
			CorrectOption: optionRecord{
				ID:         result.CorrectOption.ID,
				OptionText: result.CorrectOption.OptionText,
			},
			IsCorrect: result.IsCorrect,
		})
	}
	return out
}
