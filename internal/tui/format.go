package tui

import (
	"github.com/fieldsend/tend/internal/core/dates"
)

func dueLabel(d *dates.Date) string {
	return dates.FormatShort(d)
}

func isOverdue(d *dates.Date) bool {
	return dates.Overdue(d, nowFn())
}

func isDueSoon(d *dates.Date, days int) bool {
	return dates.DueWithin(d, nowFn(), days)
}

// truncate shortens s to max runes with an ellipsis.
func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max == 1 {
		return "…"
	}
	return string(runes[:max-1]) + "…"
}
