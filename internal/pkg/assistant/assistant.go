package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"
)

// Assistant answers operations questions using the aggregated dashboard
// payload as read-only context. The engine never feeds answers back into
// any aggregate.
type Assistant interface {
	Ask(ctx context.Context, question string, contextPayload any) (string, error)
}

// OpenAICompatAssistant talks to any OpenAI-compatible chat completion API.
type OpenAICompatAssistant struct {
	BaseURL   string
	Model     string
	APIKey    string
	MaxTokens int
}

const systemPrompt = "You are the operations copilot for a pest-control " +
	"service company. Answer using only the JSON context provided: case " +
	"summaries, technician schedules, schedule gaps, utilization, provision " +
	"rollups and pricing patterns. Say so when the context does not cover " +
	"the question."

func (a OpenAICompatAssistant) Ask(ctx context.Context, question string, contextPayload any) (string, error) {
	if strings.TrimSpace(a.BaseURL) == "" {
		return "", fmt.Errorf("ASSISTANT_BASE_URL is not set")
	}
	if strings.TrimSpace(a.Model) == "" {
		return "", fmt.Errorf("ASSISTANT_MODEL is not set")
	}

	contextJSON, err := json.Marshal(contextPayload)
	if err != nil {
		return "", fmt.Errorf("failed to encode assistant context: %w", err)
	}

	type msg struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	}
	payload := struct {
		Model     string `json:"model"`
		MaxTokens int    `json:"max_tokens,omitempty"`
		Messages  []msg  `json:"messages"`
	}{
		Model:     a.Model,
		MaxTokens: a.MaxTokens,
		Messages: []msg{
			{Role: "system", Content: systemPrompt},
			{Role: "system", Content: "Context:\n" + string(contextJSON)},
			{Role: "user", Content: question},
		},
	}

	b, _ := json.Marshal(payload)
	url := strings.TrimRight(a.BaseURL, "/") + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	if strings.TrimSpace(a.APIKey) != "" {
		req.Header.Set("Authorization", "Bearer "+a.APIKey)
	}

	timeout := 45 * time.Second
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining > 0 && remaining < timeout {
			timeout = remaining
		}
	}
	client := &http.Client{Timeout: timeout}
	resp, err := client.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", fmt.Errorf("assistant request timed out")
		}
		var netErr net.Error
		if errors.As(err, &netErr) && netErr.Timeout() {
			return "", fmt.Errorf("assistant request timed out")
		}
		return "", fmt.Errorf("assistant request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errBody map[string]any
		_ = json.NewDecoder(resp.Body).Decode(&errBody)
		return "", fmt.Errorf("assistant http error: %s: %v", resp.Status, errBody)
	}

	var res struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return "", err
	}
	if len(res.Choices) == 0 {
		return "", fmt.Errorf("empty assistant response")
	}
	return res.Choices[0].Message.Content, nil
}
