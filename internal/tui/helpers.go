package tui

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// formatTime renders a relative timestamp for list displays.
func formatTime(t time.Time) string {
	d := time.Since(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	}
}

// formatDeadline renders how long remains until a job's deadline.
func formatDeadline(deadline *time.Time) string {
	if deadline == nil {
		return "no deadline"
	}
	d := time.Until(*deadline)
	switch {
	case d < 0:
		return "closed"
	case d < 24*time.Hour:
		return "closes today"
	case d < 48*time.Hour:
		return "closes tomorrow"
	default:
		// Round up so a deadline 7 days out reads "7d left", not "6d".
		days := int((d + 24*time.Hour - 1) / (24 * time.Hour))
		return fmt.Sprintf("%dd left", days)
	}
}

// truncStr truncates a string to maxLen runes, appending an ellipsis if needed.
func truncStr(s string, maxLen int) string {
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	runes := []rune(s)
	return string(runes[:maxLen-1]) + "…"
}

// summarize collapses a multi-line description into a single line so list
// rows show meaningful content.
func summarize(raw string) string {
	s := strings.ReplaceAll(raw, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	parts := strings.Fields(s)
	return strings.Join(parts, " ")
}

// wrapText hard-wraps text at width for detail views. Long words break at
// the boundary.
func wrapText(s string, width int) string {
	if width <= 0 {
		return s
	}
	var out []string
	for _, para := range strings.Split(s, "\n") {
		if para == "" {
			out = append(out, "")
			continue
		}
		line := ""
		for _, word := range strings.Fields(para) {
			switch {
			case line == "":
				line = word
			case utf8.RuneCountInString(line)+1+utf8.RuneCountInString(word) <= width:
				line += " " + word
			default:
				out = append(out, line)
				line = word
			}
			for utf8.RuneCountInString(line) > width {
				runes := []rune(line)
				out = append(out, string(runes[:width]))
				line = string(runes[width:])
			}
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}
