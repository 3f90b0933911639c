package usecase

import (
	"fmt"

	"github.com/google/uuid"

	"life-balance-planner/internal/model"
)

var categoryColors = map[model.Category]string{
	model.CategoryAcademics: "#3B82F6",
	model.CategoryWellness:  "#22C997",
	model.CategoryWork:      "#9061F9",
	model.CategorySocial:    "#F97316",
	model.CategoryBreak:     "#9CA3AF",
}

// Google Calendar color ids closest to the category colors.
var calendarColorIDs = map[model.Category]string{
	model.CategoryAcademics: "9",
	model.CategoryWellness:  "2",
	model.CategoryWork:      "3",
	model.CategorySocial:    "6",
	model.CategoryBreak:     "8",
}

func newID() string {
	return uuid.New().String()
}

// CategoryColor returns the display color of a category.
func CategoryColor(c model.Category) string {
	return categoryColors[c]
}

// FormatClock renders minutes after midnight as "09:00 AM". Minutes are
// snapped to :00 or :30.
func FormatClock(minute int) string {
	minute = ((minute % (24 * 60)) + 24*60) % (24 * 60)
	hour := minute / 60
	mins := "00"
	if minute%60 >= 30 {
		mins = "30"
	}

	suffix := "AM"
	if hour >= 12 {
		suffix = "PM"
	}
	hour12 := hour % 12
	if hour12 == 0 {
		hour12 = 12
	}
	return fmt.Sprintf("%02d:%s %s", hour12, mins, suffix)
}

// FormatDuration renders a block length as "2h", "30m" or "1h 30m".
func FormatDuration(minutes int) string {
	h, m := minutes/60, minutes%60
	switch {
	case h == 0:
		return fmt.Sprintf("%dm", m)
	case m == 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%dh %dm", h, m)
	}
}
