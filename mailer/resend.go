// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	resendBaseURL = "https://api.resend.com"

	// Outbound dispatch must never hang a request; a timeout is a failure
	sendTimeout = 10 * time.Second
)

var ErrMissingAPIKey = errors.New("resend api key is empty")

// ResendClient sends mail through the Resend HTTP API.
type ResendClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewResendClient returns a client with the default endpoint and a bounded
// request timeout.
func NewResendClient(apiKey string) *ResendClient {
	return &ResendClient{
		apiKey:  apiKey,
		baseURL: resendBaseURL,
		client:  &http.Client{Timeout: sendTimeout},
	}
}

// NewResendClientWithBaseURL is NewResendClient pointed at a different
// endpoint. Used by tests against a local server.
func NewResendClientWithBaseURL(apiKey, baseURL string) *ResendClient {
	c := NewResendClient(apiKey)
	c.baseURL = baseURL
	return c
}

type resendError struct {
	StatusCode int    `json:"statusCode"`
	Name       string `json:"name"`
	Message    string `json:"message"`
}

// Send posts the message to the Resend emails endpoint. All failure modes
// come back as errors; the caller decides how to surface them.
func (c *ResendClient) Send(ctx context.Context, msg Message) (*Receipt, error) {
	if c.apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/emails", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("resend request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("failed to read resend response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr resendError
		if json.Unmarshal(raw, &apiErr) == nil && apiErr.Message != "" {
			return nil, fmt.Errorf("resend api error: %s", apiErr.Message)
		}
		return nil, fmt.Errorf("resend api error: %s", resp.Status)
	}

	var receipt Receipt
	if err := json.Unmarshal(raw, &receipt); err != nil {
		return nil, fmt.Errorf("malformed resend response: %w", err)
	}
	return &receipt, nil
}
