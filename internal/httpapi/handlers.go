package httpapi

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"meeras-quiz/internal/content"
	"meeras-quiz/internal/quiz"
)

func (a *API) HandleCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := a.store.Categories(r.Context())
	if err != nil {
		writeEngineError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, categoriesResponse{
		Categories: toCategoryResponses(categories),
	})
}

func (a *API) HandleStartSession(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var request startSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return
	}

	categoryID := strings.TrimSpace(request.CategoryID)
	if categoryID == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "category_id is required"})
		return
	}

	session, err := a.startSession(r, categoryID)
	if err != nil {
		writeEngineError(w, err)
		return
	}

	sessionID := a.sessions.Add(session)
	writeJSON(w, http.StatusCreated, currentQuestionView(sessionID, session))
}

// startSession runs the quiz screen's loading phase: questions first, then
// the options for exactly those question ids.
func (a *API) startSession(r *http.Request, categoryID string) (*quiz.Session, error) {
	categories, err := a.store.Categories(r.Context())
	if err != nil {
		return nil, err
	}

	var category content.Category
	found := false
	for _, candidate := range categories {
		if candidate.ID == categoryID {
			category = candidate
			found = true
			break
		}
	}
	if !found {
		return nil, content.ErrCategoryNotFound
	}

	questions, err := a.store.QuestionsByCategory(r.Context(), categoryID)
	if err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, quiz.ErrNoQuestions
	}

	options, err := a.store.OptionsByQuestions(r.Context(), content.QuestionIDs(questions))
	if err != nil {
		return nil, err
	}

	return quiz.NewSession(category, questions, content.GroupOptions(options))
}

func (a *API) HandleSession(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["session_id"]
	entry, ok := a.sessions.lookup(sessionID)
	if !ok {
		writeSessionNotFound(w)
		return
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()
	writeJSON(w, http.StatusOK, currentQuestionView(sessionID, entry.session))
}

func (a *API) HandleSelect(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["session_id"]
	entry, ok := a.sessions.lookup(sessionID)
	if !ok {
		writeSessionNotFound(w)
		return
	}

	defer r.Body.Close()
	var request struct {
		OptionID string `json:"option_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	if err := entry.session.Select(strings.TrimSpace(request.OptionID)); err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, currentQuestionView(sessionID, entry.session))
}

func (a *API) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["session_id"]
	entry, ok := a.sessions.lookup(sessionID)
	if !ok {
		writeSessionNotFound(w)
		return
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	answer, err := entry.session.Submit()
	if err != nil {
		writeEngineError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, submitResponse{
		questionView: currentQuestionView(sessionID, entry.session),
		IsCorrect:    answer.IsCorrect,
	})
}

func (a *API) HandleAdvance(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["session_id"]
	entry, ok := a.sessions.lookup(sessionID)
	if !ok {
		writeSessionNotFound(w)
		return
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	done, err := entry.session.Advance()
	if err != nil {
		writeEngineError(w, err)
		return
	}

	response := advanceResponse{
		SessionID: sessionID,
		Completed: done,
		Answered:  len(entry.session.Answers()),
	}
	if !done {
		next := currentQuestionView(sessionID, entry.session)
		response.Next = &next
	}
	writeJSON(w, http.StatusOK, response)
}

func (a *API) HandleResults(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["session_id"]
	entry, ok := a.sessions.lookup(sessionID)
	if !ok {
		writeSessionNotFound(w)
		return
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	if !entry.session.Completed() {
		writeJSON(w, http.StatusConflict, errorResponse{Error: "quiz not finished"})
		return
	}

	answers := entry.session.Answers()
	questionIDs := make([]string, 0, len(answers))
	for _, answer := range answers {
		questionIDs = append(questionIDs, answer.QuestionID)
	}

	// The review re-fetches authoritative records rather than trusting the
	// session snapshot, mirroring the separate results-screen load.
	questions, err := a.store.QuestionsByIDs(r.Context(), questionIDs)
	if err != nil {
		writeEngineError(w, err)
		return
	}
	options, err := a.store.OptionsByQuestions(r.Context(), questionIDs)
	if err != nil {
		writeEngineError(w, err)
		return
	}

	results, err := quiz.BuildResults(questions, content.GroupOptions(options), answers)
	if err != nil {
		writeEngineError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resultsResponse{
		SessionID:    sessionID,
		CategoryName: entry.session.Category().Name,
		Results:      toResultViews(results),
		Summary:      quiz.Summarize(results),
	})
}

func (a *API) HandleAbandonSession(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["session_id"]
	if !a.sessions.Remove(sessionID) {
		writeSessionNotFound(w)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
