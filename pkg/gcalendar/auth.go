package gcalendar

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
)

// authState is echoed back by Google on the redirect. The desktop flow pastes
// the code by hand, so a fixed value is enough.
const authState = "life-balance-planner"

// AuthFlow walks an OAuth installed-app credential through the consent step
// and produces the token New reads from Config.TokenPath.
type AuthFlow struct {
	config *oauth2.Config
}

// NewAuthFlow parses installed-app credentials for calendar access.
func NewAuthFlow(credentialsJSON []byte) (*AuthFlow, error) {
	config, err := google.ConfigFromJSON(credentialsJSON, calendar.CalendarScope)
	if err != nil {
		return nil, fmt.Errorf("failed to parse OAuth credentials: %w", err)
	}
	return &AuthFlow{config: config}, nil
}

// URL is the consent page the user opens in a browser.
func (f *AuthFlow) URL() string {
	return f.config.AuthCodeURL(authState, oauth2.AccessTypeOffline)
}

// Exchange trades the pasted authorization code for a token.
func (f *AuthFlow) Exchange(ctx context.Context, code string) (*oauth2.Token, error) {
	tok, err := f.config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange authorization code: %w", err)
	}
	return tok, nil
}

// SaveToken writes tok to path with owner-only permissions.
func SaveToken(path string, tok *oauth2.Token) error {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("failed to create token file: %w", err)
	}
	defer f.Close()

	if err := json.NewEncoder(f).Encode(tok); err != nil {
		return fmt.Errorf("failed to write token file: %w", err)
	}
	return nil
}
