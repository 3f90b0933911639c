package backend_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"golang.org/x/oauth2"

	"life-balance-planner/pkg/backend"
)

type fakeServer struct {
	mu           sync.Mutex
	validToken   string
	refreshOK    bool
	alwaysReject bool
	refreshCalls atomic.Int32
	gotAuth      atomic.Value
}

func (f *fakeServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.URL.Path == "/api/v1/auth/refresh" {
		f.refreshCalls.Add(1)
		var req struct {
			RefreshToken string `json:"refreshToken"`
		}
		_ = json.NewDecoder(r.Body).Decode(&req)
		if !f.refreshOK || req.RefreshToken != "refresh-1" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		f.mu.Lock()
		f.validToken = "access-2"
		f.mu.Unlock()
		_, _ = w.Write([]byte(`{"token":"access-2","refreshToken":"refresh-2"}`))
		return
	}

	f.gotAuth.Store(r.Header.Get("Authorization"))
	f.mu.Lock()
	valid := "Bearer " + f.validToken
	f.mu.Unlock()
	if f.alwaysReject || r.Header.Get("Authorization") != valid {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"success":false,"error":"Unauthorized"}`))
		return
	}

	switch r.URL.Path {
	case "/api/v1/tasks":
		if r.Method == http.MethodPost {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"success":false,"error":"title is required"}`))
			return
		}
		if r.URL.Query().Get("completed") != "false" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		_, _ = w.Write([]byte(`{"success":true,"data":{"tasks":[{"id":"t1","title":"Essay","category":"academics","priority":"high"}],"total":1}}`))
	case "/api/v1/recommendations/today":
		_, _ = w.Write([]byte(`{"success":true,"data":{"id":"r1","recommendation":"Rest","priority":"low","confidence":0.7}}`))
	default:
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"success":false,"message":"route not found"}`))
	}
}

func newClient(t *testing.T, f *fakeServer, onRefresh func(*oauth2.Token)) backend.IBackend {
	t.Helper()
	ts := httptest.NewServer(f)
	t.Cleanup(ts.Close)
	c, err := backend.New(backend.Config{
		BaseURL:    ts.URL + "/api/v1/",
		Token:      &oauth2.Token{AccessToken: "access-1", RefreshToken: "refresh-1"},
		HTTPClient: ts.Client(),
		OnRefresh:  onRefresh,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

func TestDo(t *testing.T) {
	ctx := context.Background()
	open := false

	t.Run("bearer token and envelope data", func(t *testing.T) {
		f := &fakeServer{validToken: "access-1"}
		c := newClient(t, f, nil)

		list, err := c.ListTasks(ctx, &open)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if list.Total != 1 || list.Tasks[0].Title != "Essay" {
			t.Errorf("unexpected list: %+v", list)
		}
		if got := f.gotAuth.Load(); got != "Bearer access-1" {
			t.Errorf("Authorization = %v", got)
		}
		if f.refreshCalls.Load() != 0 {
			t.Errorf("unexpected refresh")
		}
	})

	t.Run("refreshes once on 401 and retries", func(t *testing.T) {
		f := &fakeServer{validToken: "stale", refreshOK: true}
		var refreshed *oauth2.Token
		c := newClient(t, f, func(tok *oauth2.Token) { refreshed = tok })

		rec, err := c.TodayRecommendation(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rec.Recommendation != "Rest" {
			t.Errorf("unexpected recommendation: %+v", rec)
		}
		if f.refreshCalls.Load() != 1 {
			t.Errorf("refresh calls = %d, want 1", f.refreshCalls.Load())
		}
		if tok := c.Token(); tok.AccessToken != "access-2" || tok.RefreshToken != "refresh-2" {
			t.Errorf("token = %+v", tok)
		}
		if refreshed == nil || refreshed.AccessToken != "access-2" {
			t.Errorf("OnRefresh not called with new token: %+v", refreshed)
		}
	})

	t.Run("still rejected after refresh", func(t *testing.T) {
		f := &fakeServer{refreshOK: true, alwaysReject: true}
		c := newClient(t, f, nil)

		if _, err := c.TodayRecommendation(ctx); !errors.Is(err, backend.ErrUnauthorized) {
			t.Errorf("expected ErrUnauthorized, got %v", err)
		}
		if f.refreshCalls.Load() != 1 {
			t.Errorf("refresh calls = %d, want exactly 1", f.refreshCalls.Load())
		}
	})

	t.Run("refresh rejected clears credentials", func(t *testing.T) {
		f := &fakeServer{validToken: "stale"}
		c := newClient(t, f, nil)

		if _, err := c.TodayRecommendation(ctx); !errors.Is(err, backend.ErrUnauthorized) {
			t.Errorf("expected ErrUnauthorized, got %v", err)
		}
		if c.Token() != nil {
			t.Errorf("token should be cleared")
		}
	})

	t.Run("failure envelope", func(t *testing.T) {
		f := &fakeServer{validToken: "access-1"}
		c := newClient(t, f, nil)

		_, err := c.AddTask(ctx, backend.AddTaskRequest{Category: "academics"})
		var apiErr *backend.APIError
		if !errors.As(err, &apiErr) {
			t.Fatalf("expected APIError, got %v", err)
		}
		if apiErr.Status != http.StatusBadRequest || apiErr.Message != "title is required" {
			t.Errorf("unexpected error: %+v", apiErr)
		}

		err = c.Do(ctx, http.MethodGet, "/nowhere", nil, nil)
		if !errors.As(err, &apiErr) || apiErr.Message != "route not found" {
			t.Errorf("expected message fallback, got %v", err)
		}
	})
}

func TestConfigValidate(t *testing.T) {
	if _, err := backend.New(backend.Config{BaseURL: "not a url"}); !errors.Is(err, backend.ErrInvalidBaseURL) {
		t.Errorf("expected ErrInvalidBaseURL, got %v", err)
	}
	if _, err := backend.New(backend.Config{}); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}
