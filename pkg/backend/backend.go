package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"

	"golang.org/x/oauth2"
)

type backendImpl struct {
	baseURL    string
	httpClient *http.Client
	onRefresh  func(*oauth2.Token)

	mu    sync.Mutex
	token *oauth2.Token
}

func newBackendImpl(cfg Config) *backendImpl {
	return &backendImpl{
		baseURL:    cfg.BaseURL,
		httpClient: cfg.HTTPClient,
		onRefresh:  cfg.OnRefresh,
		token:      cfg.Token,
	}
}

// Token returns a copy of the current credentials, or nil.
func (b *backendImpl) Token() *oauth2.Token {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.token == nil {
		return nil
	}
	t := *b.token
	return &t
}

// Do sends one request. A 401 triggers exactly one refresh and one retry.
func (b *backendImpl) Do(ctx context.Context, method, path string, body, out any) error {
	var payload []byte
	if body != nil {
		var err error
		if payload, err = json.Marshal(body); err != nil {
			return fmt.Errorf("backend: failed to marshal request: %w", err)
		}
	}

	used := b.Token()
	status, env, err := b.send(ctx, method, path, payload, used)
	if err != nil {
		return err
	}
	if status == http.StatusUnauthorized {
		if err := b.refresh(ctx, used); err != nil {
			return err
		}
		status, env, err = b.send(ctx, method, path, payload, b.Token())
		if err != nil {
			return err
		}
		if status == http.StatusUnauthorized {
			return ErrUnauthorized
		}
	}

	return decode(status, env, out)
}

func (b *backendImpl) send(ctx context.Context, method, path string, payload []byte, token *oauth2.Token) (int, envelope, error) {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, b.baseURL+path, reader)
	if err != nil {
		return 0, envelope{}, fmt.Errorf("backend: failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != nil && token.AccessToken != "" {
		token.SetAuthHeader(req)
	}

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return 0, envelope{}, fmt.Errorf("backend: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, envelope{}, fmt.Errorf("backend: failed to read response: %w", err)
	}

	var env envelope
	if len(bytes.TrimSpace(raw)) > 0 {
		if err := json.Unmarshal(raw, &env); err != nil && resp.StatusCode < 300 {
			return 0, envelope{}, fmt.Errorf("backend: failed to decode response: %w", err)
		}
	}
	return resp.StatusCode, env, nil
}

// refresh exchanges the refresh token once. When another request already
// replaced the token that failed, the new token is used as is.
func (b *backendImpl) refresh(ctx context.Context, failed *oauth2.Token) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.token == nil || b.token.RefreshToken == "" {
		b.token = nil
		return ErrUnauthorized
	}
	if failed == nil || b.token.AccessToken != failed.AccessToken {
		return nil
	}

	payload, err := json.Marshal(refreshRequest{RefreshToken: b.token.RefreshToken})
	if err != nil {
		return fmt.Errorf("backend: failed to marshal refresh: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.baseURL+RefreshPath, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("backend: failed to create refresh request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("backend: refresh: %w", err)
	}
	defer resp.Body.Close()

	var out refreshResponse
	if resp.StatusCode != http.StatusOK || json.NewDecoder(resp.Body).Decode(&out) != nil || out.Token == "" {
		b.token = nil
		return ErrUnauthorized
	}

	next := &oauth2.Token{AccessToken: out.Token, RefreshToken: out.RefreshToken}
	if next.RefreshToken == "" {
		next.RefreshToken = b.token.RefreshToken
	}
	b.token = next
	if b.onRefresh != nil {
		t := *next
		b.onRefresh(&t)
	}
	return nil
}

func decode(status int, env envelope, out any) error {
	if status < 200 || status >= 300 || !env.Success {
		msg := env.Error
		if msg == "" {
			msg = env.Message
		}
		if msg == "" {
			msg = fmt.Sprintf("HTTP Error: %d", status)
		}
		return &APIError{Status: status, Message: msg}
	}
	if out == nil || len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("backend: failed to decode data: %w", err)
	}
	return nil
}
