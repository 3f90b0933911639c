package gcalendar_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"golang.org/x/oauth2"

	"life-balance-planner/pkg/gcalendar"
)

func TestAuthFlow(t *testing.T) {
	t.Run("rejects malformed credentials", func(t *testing.T) {
		if _, err := gcalendar.NewAuthFlow([]byte(`{"broken":true}`)); err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("consent URL requests offline calendar access", func(t *testing.T) {
		flow, err := gcalendar.NewAuthFlow([]byte(installedCreds))
		if err != nil {
			t.Fatalf("NewAuthFlow: %v", err)
		}
		url := flow.URL()
		for _, want := range []string{"access_type=offline", "client_id=test-client-id", "calendar"} {
			if !strings.Contains(url, want) {
				t.Errorf("URL %q missing %q", url, want)
			}
		}
	})
}

func TestSaveToken(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "token.json")
	tok := &oauth2.Token{
		AccessToken:  "access",
		RefreshToken: "refresh",
		TokenType:    "Bearer",
		Expiry:       time.Now().Add(time.Hour),
	}

	if err := gcalendar.SaveToken(path, tok); err != nil {
		t.Fatalf("SaveToken: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Errorf("perm = %o, want 600", perm)
	}

	credsPath := filepath.Join(dir, "creds.json")
	if err := os.WriteFile(credsPath, []byte(installedCreds), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg := gcalendar.Config{CredentialsPath: credsPath, TokenPath: path}
	if _, err := gcalendar.New(context.Background(), cfg); err != nil {
		t.Errorf("New with saved token: %v", err)
	}
}
