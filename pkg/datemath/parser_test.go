package datemath_test

import (
	"errors"
	"testing"
	"time"

	"life-balance-planner/pkg/datemath"
)

func TestNewParser(t *testing.T) {
	_, err := datemath.NewParser("Europe/London")
	if err != nil {
		t.Fatalf("unexpected error creating valid parser: %v", err)
	}

	_, err = datemath.NewParser("Invalid/Timezone")
	if err == nil {
		t.Fatalf("expected error for invalid timezone")
	}
}

func TestParse(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	baseTime := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC) // Wednesday, May 1, 2024
	startOfBase := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		value   string
		want    time.Time
		wantErr bool
	}{
		{name: "Today", value: "today", want: startOfBase},
		{name: "Tomorrow", value: "Tomorrow", want: startOfBase.AddDate(0, 0, 1)},
		{name: "Yesterday", value: "yesterday", want: startOfBase.AddDate(0, 0, -1)},
		{name: "In 3 days", value: "in 3 days", want: startOfBase.AddDate(0, 0, 3)},
		{name: "In 2 weeks", value: "in 2 weeks", want: startOfBase.AddDate(0, 0, 14)},
		{name: "In 1 month", value: "in 1 month", want: startOfBase.AddDate(0, 1, 0)},
		{name: "Invalid duration pattern", value: "in a few days", want: baseTime, wantErr: true},
		{name: "Next Monday (from Wed)", value: "next monday", want: startOfBase.AddDate(0, 0, 5)},
		{name: "Next Wednesday (from Wed)", value: "next wednesday", want: startOfBase.AddDate(0, 0, 7)},
		{name: "Invalid Next Weekday", value: "next funday", want: baseTime, wantErr: true},
		{name: "ISO date", value: "2024-05-10", want: time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)},
		{name: "RFC3339", value: "2024-05-10T13:00:00Z", want: time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)},
		{name: "Long month", value: "December 22, 2024", want: time.Date(2024, 12, 22, 0, 0, 0, 0, time.UTC)},
		{name: "Short month", value: "Dec 22, 2024", want: time.Date(2024, 12, 22, 0, 0, 0, 0, time.UTC)},
		{name: "Day first", value: "22 Dec 2024", want: time.Date(2024, 12, 22, 0, 0, 0, 0, time.UTC)},
		{name: "Yearless upcoming", value: "May 3", want: time.Date(2024, 5, 3, 0, 0, 0, 0, time.UTC)},
		{name: "Yearless rolls over", value: "April 30", want: time.Date(2025, 4, 30, 0, 0, 0, 0, time.UTC)},
		{name: "Unrecognized", value: "some random day", want: baseTime, wantErr: true},
		{name: "Empty", value: "  ", want: baseTime, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parser.Parse(tt.value, baseTime)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !got.Equal(tt.want) {
				t.Errorf("Parse() got = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseUnrecognizedIsTyped(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	_, err := parser.Parse("whenever", time.Now())
	if !errors.Is(err, datemath.ErrUnrecognized) {
		t.Errorf("expected ErrUnrecognized, got %v", err)
	}
}

func TestDaysUntil(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	base := time.Date(2024, 5, 1, 23, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		target time.Time
		want   int
	}{
		{"same day", time.Date(2024, 5, 1, 1, 0, 0, 0, time.UTC), 0},
		{"next day late night", time.Date(2024, 5, 2, 0, 30, 0, 0, time.UTC), 1},
		{"a week", time.Date(2024, 5, 8, 0, 0, 0, 0, time.UTC), 7},
		{"past", time.Date(2024, 4, 29, 0, 0, 0, 0, time.UTC), -2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parser.DaysUntil(tt.target, base); got != tt.want {
				t.Errorf("DaysUntil() = %d, want %d", got, tt.want)
			}
		})
	}
}
