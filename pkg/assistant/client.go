package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"tryvital.xyz/health-insights-service/pkg/common"
)

const (
	defaultBaseURL = "https://api.openai.com/v1"
	defaultModel   = "gpt-4o"
	defaultTimeout = 30 * time.Second

	answerMaxTokens        = 350
	answerTemperature      = 0.7
	suggestionsMaxTokens   = 250
	suggestionsTemperature = 0.8
)

// Client talks to an OpenAI-compatible chat-completions endpoint. The
// external call is untrusted for latency, so every request carries an
// explicit timeout.
type Client struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration

	httpClient *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{
		APIKey:     apiKey,
		BaseURL:    defaultBaseURL,
		Model:      defaultModel,
		Timeout:    defaultTimeout,
		httpClient: &http.Client{},
	}
}

func NewClientFromEnv() *Client {
	c := NewClient(os.Getenv(common.EnvKeyOpenAIAPIKey))
	if baseURL := strings.TrimSpace(os.Getenv(common.EnvKeyOpenAIBaseURL)); baseURL != "" {
		c.BaseURL = baseURL
	}
	if model := strings.TrimSpace(os.Getenv(common.EnvKeyOpenAIModel)); model != "" {
		c.Model = model
	}
	return c
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatRequest struct {
	Model          string          `json:"model"`
	Messages       []chatMessage   `json:"messages"`
	MaxTokens      int             `json:"max_tokens,omitempty"`
	Temperature    float64         `json:"temperature,omitempty"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (c *Client) complete(ctx context.Context, reqBody chatRequest) (string, error) {
	requestID := uuid.NewString()
	logger := common.GetLoggerWith(
		common.LoggerNameAssistant,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryChat),
		zap.String("requestID", requestID),
	)

	ctx, cancel := context.WithTimeout(ctx, c.Timeout)
	defer cancel()

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.APIKey)

	logger.Info("Sending completion request",
		zap.String("model", reqBody.Model),
		zap.Int("maxTokens", reqBody.MaxTokens))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return "", fmt.Errorf("completion request timeout after %v: %w", c.Timeout, err)
		}
		return "", fmt.Errorf("completion request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read completion response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var failed chatResponse
		if err := json.Unmarshal(body, &failed); err == nil && failed.Error != nil {
			return "", fmt.Errorf("completion service returned status %d: %s", resp.StatusCode, failed.Error.Message)
		}
		return "", fmt.Errorf("completion service returned status %d: %s", resp.StatusCode, string(body))
	}

	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("failed to parse completion response: %w", err)
	}

	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("completion response contained no choices")
	}

	logger.Info("Completion request finished",
		zap.Int("contentLength", len(parsed.Choices[0].Message.Content)))

	return parsed.Choices[0].Message.Content, nil
}

func (c *Client) AnswerQuestion(ctx context.Context, question string, studyName string, details StudyDetails) (string, error) {
	content, err := c.complete(ctx, chatRequest{
		Model: c.Model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt(studyName, details)},
			{Role: "user", Content: question},
		},
		MaxTokens:   answerMaxTokens,
		Temperature: answerTemperature,
	})
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(content) == "" {
		return EmptyAnswerText, nil
	}
	return content, nil
}

var numberedItemRe = regexp.MustCompile(`\d+\.\s+`)

func (c *Client) SuggestQuestions(ctx context.Context, studyName string, primaryMetric string, category string) ([]string, error) {
	content, err := c.complete(ctx, chatRequest{
		Model: c.Model,
		Messages: []chatMessage{
			{Role: "user", Content: suggestionsPrompt(studyName, primaryMetric, category)},
		},
		MaxTokens:      suggestionsMaxTokens,
		Temperature:    suggestionsTemperature,
		ResponseFormat: &responseFormat{Type: "json_object"},
	})
	if err != nil {
		return nil, err
	}

	var parsed struct {
		Questions []string `json:"questions"`
	}
	if err := json.Unmarshal([]byte(content), &parsed); err == nil && len(parsed.Questions) > 0 {
		return capQuestions(parsed.Questions), nil
	}

	// Not the JSON shape we asked for; salvage a numbered list from the text.
	return capQuestions(splitNumberedList(content)), nil
}

func splitNumberedList(text string) []string {
	parts := common.Mapper(numberedItemRe.Split(text, -1), strings.TrimSpace)
	return common.Filter(parts, func(q string) bool { return q != "" })
}

func capQuestions(questions []string) []string {
	if len(questions) > MaxSuggestedQuestions {
		return questions[:MaxSuggestedQuestions]
	}
	return questions
}
