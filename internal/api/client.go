// Package api is the HTTP client for the quiz REST API.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/abhisek/quizmate/internal/quiz"
)

const (
	quizzesPath = "/api/quizzes"

	// DefaultBaseURL is used when no base URL is configured.
	DefaultBaseURL = "http://127.0.0.1:8080"
)

type quizListResponse struct {
	Quizzes []quiz.Quiz `json:"quizzes"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// HTTPClient talks to the quiz API.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewHTTPClient creates a client for baseURL. A nil httpClient uses
// http.DefaultClient.
func NewHTTPClient(baseURL string, httpClient *http.Client) *HTTPClient {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &HTTPClient{
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

// BaseURL returns the API root the client sends requests to.
func (c *HTTPClient) BaseURL() string {
	return c.baseURL
}

// ListQuizzes fetches the quiz collection.
func (c *HTTPClient) ListQuizzes(ctx context.Context) ([]quiz.Quiz, error) {
	var payload quizListResponse
	if err := c.getJSON(ctx, quizzesPath, "quiz-list", quizListSchema, &payload); err != nil {
		return nil, err
	}
	if payload.Quizzes == nil {
		return []quiz.Quiz{}, nil
	}
	return payload.Quizzes, nil
}

// GetQuiz fetches one quiz with its questions.
func (c *HTTPClient) GetQuiz(ctx context.Context, id quiz.ID) (*quiz.Detail, error) {
	if id.IsZero() {
		return nil, fmt.Errorf("quiz id is required")
	}
	path := quizzesPath + "/" + url.PathEscape(id.String())

	var detail quiz.Detail
	if err := c.getJSON(ctx, path, "quiz-detail", quizDetailSchema, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

func (c *HTTPClient) getJSON(ctx context.Context, path, schemaName string, schema map[string]any, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var payload errorResponse
		if err := json.Unmarshal(body, &payload); err == nil && strings.TrimSpace(payload.Error) != "" {
			apiErr.Message = payload.Error
		}
		if apiErr.Message == "" {
			apiErr.Message = http.StatusText(resp.StatusCode)
		}
		return apiErr
	}

	if err := validateBody(schemaName, schema, body); err != nil {
		return &ErrInvalidResponse{Path: path, Err: err}
	}
	if err := json.Unmarshal(body, out); err != nil {
		return &ErrInvalidResponse{Path: path, Err: err}
	}
	return nil
}
