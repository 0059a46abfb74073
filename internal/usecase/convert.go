package usecase

import (
	"strings"
	"time"
)

func strOrNil(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006-01-02 15:04:05-07",
	"2006-01-02 15:04:05",
}

// parseWhen accepts the handful of date shapes the UI and the store emit.
func parseWhen(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return &t
		}
	}
	return nil
}

// formatForInput renders a timestamp the fixed width a datetime-local
// field expects (local time, minute precision).
func formatForInput(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.In(time.Local).Format("2006-01-02T15:04")
}

// normalizeKey folds an item id for grouping: ids written by different
// clients disagree on case and stray whitespace.
func normalizeKey(id string) string {
	return strings.ReplaceAll(strings.TrimSpace(strings.ToLower(id)), " ", "")
}
