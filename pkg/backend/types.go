package backend

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/oauth2"
)

// Config holds the client configuration.
type Config struct {
	BaseURL    string
	Token      *oauth2.Token
	HTTPClient *http.Client
	Timeout    time.Duration
	// OnRefresh is called with the new credentials after a refresh.
	OnRefresh func(*oauth2.Token)
}

// Validate checks the configuration and fills defaults.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ErrInvalidBaseURL
	}
	c.BaseURL = strings.TrimRight(c.BaseURL, "/")
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: c.Timeout}
	}
	return nil
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
	Message string          `json:"message,omitempty"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type refreshResponse struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken"`
}

// Task is a task as the API returns it.
type Task struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Category    string    `json:"category"`
	Priority    string    `json:"priority"`
	Completed   bool      `json:"completed"`
	DueDate     string    `json:"dueDate,omitempty"`
	Time        string    `json:"time,omitempty"`
	Duration    string    `json:"duration,omitempty"`
	EffortLevel int       `json:"effortLevel,omitempty"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

type TaskList struct {
	Tasks []Task `json:"tasks"`
	Total int    `json:"total"`
}

type AddTaskRequest struct {
	Title       string `json:"title"`
	Category    string `json:"category"`
	Priority    string `json:"priority,omitempty"`
	DueDate     string `json:"dueDate,omitempty"`
	Time        string `json:"time,omitempty"`
	Duration    string `json:"duration,omitempty"`
	EffortLevel int    `json:"effortLevel,omitempty"`
	Description string `json:"description,omitempty"`
}

type Balance struct {
	Status  string `json:"status"`
	Metrics struct {
		Energy      int    `json:"energy"`
		Stress      int    `json:"stress"`
		BurnoutRisk string `json:"burnoutRisk"`
	} `json:"metrics"`
	Counts struct {
		Academics int `json:"academics"`
		Work      int `json:"work"`
		Wellness  int `json:"wellness"`
		Social    int `json:"social"`
		Total     int `json:"total"`
	} `json:"counts"`
}

type ScheduleEvent struct {
	ID       string `json:"id"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Title    string `json:"title"`
	Category string `json:"category"`
	Duration string `json:"duration"`
	Color    string `json:"color"`
}

type Schedule struct {
	Date   string          `json:"date"`
	Events []ScheduleEvent `json:"events"`
}

type Recommendation struct {
	ID                string   `json:"id"`
	Recommendation    string   `json:"recommendation"`
	Priority          string   `json:"priority"`
	Confidence        float64  `json:"confidence"`
	Status            string   `json:"status"`
	ActionableSteps   []string `json:"actionableSteps"`
	EstimatedDuration string   `json:"estimatedDuration"`
	TopPriorityTask   string   `json:"topPriorityTask,omitempty"`
}

type Message struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

type MessageList struct {
	Messages []Message `json:"messages"`
	Total    int       `json:"total"`
}
