package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"meeras-quiz/internal/content"
	"meeras-quiz/internal/quiz"
)

func writeJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeSessionNotFound(w http.ResponseWriter) {
	writeJSON(w, http.StatusNotFound, errorResponse{Error: "session not found"})
}

func writeEngineError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, content.ErrCategoryNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "category not found"})
	case errors.Is(err, quiz.ErrNoQuestions):
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: "no questions available in this category"})
	case errors.Is(err, quiz.ErrUnknownOption):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "option does not belong to the current question"})
	case errors.Is(err, quiz.ErrNoSelection):
		writeJSON(w, http.StatusConflict, errorResponse{Error: "no option selected"})
	case errors.Is(err, quiz.ErrAlreadyRevealed):
		writeJSON(w, http.StatusConflict, errorResponse{Error: "answer already submitted"})
	case errors.Is(err, quiz.ErrNotRevealed):
		writeJSON(w, http.StatusConflict, errorResponse{Error: "submit an answer before advancing"})
	case errors.Is(err, quiz.ErrSessionComplete):
		writeJSON(w, http.StatusConflict, errorResponse{Error: "quiz already completed"})
	case errors.Is(err, quiz.ErrDataIntegrity):
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
	default:
		writeJSON(w, http.StatusBadGateway, errorResponse{Error: "failed to load quiz content"})
	}
}

// currentQuestionView renders the session's active question. Correctness and
// explanations appear only once the answer is revealed.
func currentQuestionView(sessionID string, session *quiz.Session) questionView {
	question, options := session.Current()
	number, total := session.Progress()
	category := session.Category()

	view := questionView{
		SessionID:        sessionID,
		CategoryID:       category.ID,
		CategoryName:     category.Name,
		QuestionNumber:   number,
		TotalQuestions:   total,
		QuestionID:       question.ID,
		QuestionText:     question.QuestionText,
		SelectedOptionID: session.SelectedOptionID(),
		Revealed:         session.Revealed(),
		Completed:        session.Completed(),
	}

	view.Options = make([]optionView, 0, len(options))
	for _, option := range options {
		item := optionView{
			ID:         option.ID,
			OptionText: option.OptionText,
		}
		if view.Revealed {
			isCorrect := option.IsCorrect
			item.IsCorrect = &isCorrect
			item.Explanation = option.Explanation
		}
		view.Options = append(view.Options, item)
	}

	if view.Revealed {
		view.Explanation = question.Explanation
	}

	return view
}
