package userclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

var ErrServiceUnavailable = errors.New("quiz service unavailable")

type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if strings.TrimSpace(e.Message) == "" {
		return fmt.Sprintf("request failed with status %d", e.StatusCode)
	}
	return e.Message
}

// DTOs mirror the httpapi JSON shapes.

type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type categoriesResponse struct {
	Categories []Category `json:"categories"`
}

type OptionView struct {
	ID          string `json:"id"`
	OptionText  string `json:"option_text"`
	IsCorrect   *bool  `json:"is_correct,omitempty"`
	Explanation string `json:"explanation,omitempty"`
}

type QuestionView struct {
	SessionID        string       `json:"session_id"`
	CategoryName     string       `json:"category_name"`
	QuestionNumber   int          `json:"question_number"`
	TotalQuestions   int          `json:"total_questions"`
	QuestionText     string       `json:"question_text"`
	Options          []OptionView `json:"options"`
	SelectedOptionID string       `json:"selected_option_id,omitempty"`
	Revealed         bool         `json:"revealed"`
	Explanation      string       `json:"explanation,omitempty"`
}

type SubmitView struct {
	QuestionView
	IsCorrect bool `json:"is_correct"`
}

type AdvanceView struct {
	Completed bool          `json:"completed"`
	Answered  int           `json:"answered"`
	Next      *QuestionView `json:"next,omitempty"`
}

type ResultView struct {
	Question struct {
		QuestionText string `json:"question_text"`
		Explanation  string `json:"explanation"`
	} `json:"question"`
	SelectedOption struct {
		OptionText  string `json:"option_text"`
		Explanation string `json:"explanation,omitempty"`
	} `json:"selected_option"`
	CorrectOption struct {
		OptionText string `json:"option_text"`
	} `json:"correct_option"`
	IsCorrect bool `json:"is_correct"`
}

type ResultsView struct {
	CategoryName string       `json:"category_name"`
	Results      []ResultView `json:"results"`
	Summary      struct {
		Total      int `json:"total"`
		Correct    int `json:"correct"`
		Percentage int `json:"percentage"`
	} `json:"summary"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewHTTPClient(baseURL string, httpClient *http.Client) *HTTPClient {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &HTTPClient{
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

func (c *HTTPClient) Categories(ctx context.Context) ([]Category, error) {
	var response categoriesResponse
	if err := c.do(ctx, http.MethodGet, "/categories", nil, &response); err != nil {
		return nil, err
	}
	return response.Categories, nil
}

func (c *HTTPClient) StartSession(ctx context.Context, categoryID string) (QuestionView, error) {
	var view QuestionView
	payload := map[string]string{"category_id": categoryID}
	err := c.do(ctx, http.MethodPost, "/sessions", payload, &view)
	return view, err
}

func (c *HTTPClient) Select(ctx context.Context, sessionID, optionID string) (QuestionView, error) {
	var view QuestionView
	payload := map[string]string{"option_id": optionID}
	err := c.do(ctx, http.MethodPost, "/sessions/"+sessionID+"/selection", payload, &view)
	return view, err
}

func (c *HTTPClient) Submit(ctx context.Context, sessionID string) (SubmitView, error) {
	var view SubmitView
	err := c.do(ctx, http.MethodPost, "/sessions/"+sessionID+"/answer", struct{}{}, &view)
	return view, err
}

func (c *HTTPClient) Advance(ctx context.Context, sessionID string) (AdvanceView, error) {
	var view AdvanceView
	err := c.do(ctx, http.MethodPost, "/sessions/"+sessionID+"/next", struct{}{}, &view)
	return view, err
}

func (c *HTTPClient) Results(ctx context.Context, sessionID string) (ResultsView, error) {
	var view ResultsView
	err := c.do(ctx, http.MethodGet, "/sessions/"+sessionID+"/results", nil, &view)
	return view, err
}

func (c *HTTPClient) Abandon(ctx context.Context, sessionID string) error {
	return c.do(ctx, http.MethodDelete, "/sessions/"+sessionID, nil, nil)
}

func (c *HTTPClient) do(ctx context.Context, method, path string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(encoded)
	}

	request, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if payload != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}
	defer response.Body.Close()

	if response.StatusCode >= 400 {
		var apiError errorResponse
		_ = json.NewDecoder(response.Body).Decode(&apiError)
		return &APIError{
			StatusCode: response.StatusCode,
			Message:    apiError.Error,
		}
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(response.Body).Decode(out)
}
