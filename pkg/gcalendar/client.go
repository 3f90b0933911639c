package gcalendar

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// ErrMissingToken is returned for installed-app credentials without a stored token.
var ErrMissingToken = errors.New("gcalendar: OAuth desktop credentials need a stored token")

// Client wraps the Google Calendar API service.
type Client struct {
	service    *calendar.Service
	calendarID string
	timezone   string
}

// New creates a Calendar client from cfg.
func New(ctx context.Context, cfg Config) (*Client, error) {
	data, err := os.ReadFile(cfg.CredentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}

	var token []byte
	if cfg.TokenPath != "" {
		// A missing token only matters for installed-app credentials.
		token, _ = os.ReadFile(cfg.TokenPath)
	}

	c, err := NewClientFromCredentialsJSON(ctx, data, token)
	if err != nil {
		return nil, err
	}
	return c.withDefaults(cfg.CalendarID, cfg.Timezone), nil
}

// NewClientFromCredentialsJSON creates a Calendar client from raw credentials.
// Service Account JSON is tried first, then installed-app JSON with tokenJSON.
func NewClientFromCredentialsJSON(ctx context.Context, credentialsJSON, tokenJSON []byte) (*Client, error) {
	config, err := google.JWTConfigFromJSON(credentialsJSON, calendar.CalendarScope)
	if err == nil {
		return newService(ctx, option.WithTokenSource(config.TokenSource(ctx)))
	}

	var oauthCreds struct {
		Installed struct {
			ClientID     string   `json:"client_id"`
			ClientSecret string   `json:"client_secret"`
			RedirectURIs []string `json:"redirect_uris"`
		} `json:"installed"`
	}
	if jsonErr := json.Unmarshal(credentialsJSON, &oauthCreds); jsonErr != nil || oauthCreds.Installed.ClientID == "" {
		return nil, fmt.Errorf("unsupported credentials format: %w", err)
	}

	if len(tokenJSON) == 0 {
		return nil, ErrMissingToken
	}
	var tok oauth2.Token
	if jsonErr := json.Unmarshal(tokenJSON, &tok); jsonErr != nil {
		return nil, fmt.Errorf("failed to parse token: %w", jsonErr)
	}

	oauthConfig := &oauth2.Config{
		ClientID:     oauthCreds.Installed.ClientID,
		ClientSecret: oauthCreds.Installed.ClientSecret,
		Scopes:       []string{calendar.CalendarScope},
		Endpoint:     google.Endpoint,
	}
	return newService(ctx, option.WithTokenSource(oauthConfig.TokenSource(ctx, &tok)))
}

// NewClientFromHTTP creates a Calendar client from a pre-configured HTTP client.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client, calendarID, timezone string) (*Client, error) {
	c, err := newService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, err
	}
	return c.withDefaults(calendarID, timezone), nil
}

func newService(ctx context.Context, opts ...option.ClientOption) (*Client, error) {
	svc, err := calendar.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &Client{service: svc, calendarID: DefaultCalendarID}, nil
}

func (c *Client) withDefaults(calendarID, timezone string) *Client {
	if calendarID != "" {
		c.calendarID = calendarID
	}
	c.timezone = timezone
	return c
}

// CreateEvent creates a new Google Calendar event.
func (c *Client) CreateEvent(ctx context.Context, req CreateEventRequest) (*Event, error) {
	tz := req.Timezone
	if tz == "" {
		tz = c.timezone
	}

	event := &calendar.Event{
		Summary:     req.Summary,
		Description: req.Description,
		Location:    req.Location,
		ColorId:     req.ColorID,
		Start: &calendar.EventDateTime{
			DateTime: req.StartTime.Format(time.RFC3339),
			TimeZone: tz,
		},
		End: &calendar.EventDateTime{
			DateTime: req.EndTime.Format(time.RFC3339),
			TimeZone: tz,
		},
	}

	created, err := c.service.Events.Insert(c.calendar(req.CalendarID), event).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar event: %w", err)
	}

	return &Event{
		ID:          created.Id,
		Summary:     created.Summary,
		Description: created.Description,
		HtmlLink:    created.HtmlLink,
		Location:    created.Location,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
	}, nil
}

// ListEvents returns single events between TimeMin and TimeMax ordered by start.
func (c *Client) ListEvents(ctx context.Context, req ListEventsRequest) ([]Event, error) {
	call := c.service.Events.List(c.calendar(req.CalendarID)).
		SingleEvents(true).
		OrderBy("startTime").
		Context(ctx)
	if !req.TimeMin.IsZero() {
		call = call.TimeMin(req.TimeMin.Format(time.RFC3339))
	}
	if !req.TimeMax.IsZero() {
		call = call.TimeMax(req.TimeMax.Format(time.RFC3339))
	}
	if req.MaxResults > 0 {
		call = call.MaxResults(req.MaxResults)
	}

	res, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list calendar events: %w", err)
	}

	out := make([]Event, 0, len(res.Items))
	for _, item := range res.Items {
		e := Event{
			ID:          item.Id,
			Summary:     item.Summary,
			Description: item.Description,
			HtmlLink:    item.HtmlLink,
			Location:    item.Location,
		}
		if item.Start != nil {
			e.StartTime, _ = time.Parse(time.RFC3339, item.Start.DateTime)
		}
		if item.End != nil {
			e.EndTime, _ = time.Parse(time.RFC3339, item.End.DateTime)
		}
		out = append(out, e)
	}
	return out, nil
}

func (c *Client) calendar(id string) string {
	if id != "" {
		return id
	}
	if c.calendarID != "" {
		return c.calendarID
	}
	return DefaultCalendarID
}
