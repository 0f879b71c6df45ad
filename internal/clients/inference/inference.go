package inference

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"remotesync/internal/lib"
)

// ErrUpstream marks inference provider failures so handlers can surface
// them as upstream errors instead of generic internals.
var ErrUpstream = errors.New("inference provider failure")

const summaryPrompt = `You are an assistant summarizing team member updates.
Input: %s

Task:
- Summarize into 2-3 bullet points
- Include what's done, what's in progress, any blockers
- Be concise and skip filler words

Output format:
- Completed: ...
- In Progress: ...
- Blocked: ...
`

// Client calls HuggingFace-style inference endpoints for speech-to-text
// and summarization.
type Client struct {
	whisperURL string
	llmURL     string
	token      string
	http       *http.Client
}

func New(whisperURL, llmURL, token string) *Client {
	return &Client{
		whisperURL: whisperURL,
		llmURL:     llmURL,
		token:      token,
		http:       &http.Client{Timeout: 60 * time.Second},
	}
}

// Transcribe sends raw audio bytes to the speech-to-text model.
func (c *Client) Transcribe(ctx context.Context, audio []byte) (string, error) {
	const op = "inference.Transcribe"

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.whisperURL, bytes.NewReader(audio))
	if err != nil {
		return "", lib.Err(op, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "audio/wav")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", lib.Err(op, fmt.Errorf("%w: %s", ErrUpstream, err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", lib.Err(op, fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode))
	}

	var out struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", lib.Err(op, fmt.Errorf("%w: %s", ErrUpstream, err))
	}

	return out.Text, nil
}

// Summarize asks the LLM for a short standup digest of the given text.
func (c *Client) Summarize(ctx context.Context, text string) (string, error) {
	const op = "inference.Summarize"

	payload, _ := json.Marshal(map[string]any{
		"inputs":     fmt.Sprintf(summaryPrompt, text),
		"parameters": map[string]any{"max_new_tokens": 120},
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.llmURL, bytes.NewReader(payload))
	if err != nil {
		return "", lib.Err(op, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", lib.Err(op, fmt.Errorf("%w: %s", ErrUpstream, err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", lib.Err(op, fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode))
	}

	var out struct {
		GeneratedText string `json:"generated_text"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", lib.Err(op, fmt.Errorf("%w: %s", ErrUpstream, err))
	}

	if out.GeneratedText == "" {
		return "", lib.Err(op, fmt.Errorf("%w: empty generation", ErrUpstream))
	}

	return out.GeneratedText, nil
}
