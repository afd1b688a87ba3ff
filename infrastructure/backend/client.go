package backend

import (
	"aptiq-relay/errors"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const maxErrorBody = 512

// Client calls the AptiQ backend over HTTP.
type Client struct {
	http    *http.Client
	baseURL string
}

func NewClient(httpClient *http.Client, baseURL string, timeout time.Duration) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}
	return &Client{
		http:    httpClient,
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

type messageRequest struct {
	Content string `json:"content"`
}

type messageResponse struct {
	Reply string `json:"reply"`
}

// Login exchanges the service account credentials for a bearer token.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	var out loginResponse
	if err := c.post(ctx, "/login", "", loginRequest{Email: email, Password: password}, &out); err != nil {
		return "", fmt.Errorf("%w: %w", errors.ErrLoginFailed, err)
	}
	if out.Token == "" {
		return "", errors.ErrMissingToken
	}
	return out.Token, nil
}

// SendMessage forwards a prompt and returns the backend reply.
// The reply is empty when the backend answered without one.
// A 401 is reported as errors.ErrUnauthorized so the caller can log in again.
func (c *Client) SendMessage(ctx context.Context, token, content string) (string, error) {
	var out messageResponse
	if err := c.post(ctx, "/message", token, messageRequest{Content: content}, &out); err != nil {
		return "", err
	}
	return out.Reply, nil
}

func (c *Client) post(ctx context.Context, path, token string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal %s payload: %w", path, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("POST %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read %s response: %w", path, err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return errors.ErrUnauthorized
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return fmt.Errorf("%w: POST %s http %d: %s",
			errors.ErrBackendStatus, path, resp.StatusCode, excerpt(raw))
	}

	if len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}

// excerpt keeps at most maxErrorBody runes of an error body.
func excerpt(raw []byte) string {
	runes := []rune(strings.TrimSpace(string(raw)))
	if len(runes) > maxErrorBody {
		return string(runes[:maxErrorBody]) + "..."
	}
	return string(runes)
}
