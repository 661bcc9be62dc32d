// Package util holds small formatting helpers shared by the server and the CLI.
package util

import (
	"fmt"
	"time"
)

const day = 24 * time.Hour

// FormatBytes renders a size with binary units, e.g. "512 B" or "4.8 MB".
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}

	value := float64(bytes) / unit
	units := []byte("KMGTPE")
	i := 0
	for value >= unit && i < len(units)-1 {
		value /= unit
		i++
	}

	return fmt.Sprintf("%.1f %cB", value, units[i])
}

// FormatDuration renders how long a session stays valid, e.g. "45s", "2m30s",
// "1h30m" or "6d23h". Negative durations are reported as "expired".
func FormatDuration(d time.Duration) string {
	if d < 0 {
		return "expired"
	}
	d = d.Round(time.Second)

	switch {
	case d < time.Minute:
		return fmt.Sprintf("%ds", int(d.Seconds()))
	case d < time.Hour:
		return fmt.Sprintf("%dm%ds", int(d.Minutes()), int(d.Seconds())%60)
	case d < day:
		return fmt.Sprintf("%dh%dm", int(d.Hours()), int(d.Minutes())%60)
	default:
		return fmt.Sprintf("%dd%dh", int(d/day), int(d.Hours())%24)
	}
}

// FormatAge renders how long ago t was relative to now. Anything older than a
// week falls back to the calendar date.
func FormatAge(t, now time.Time) string {
	age := now.Sub(t)
	switch {
	case age < time.Minute:
		return "just now"
	case age < time.Hour:
		return fmt.Sprintf("%dm ago", int(age.Minutes()))
	case age < day:
		return fmt.Sprintf("%dh ago", int(age.Hours()))
	case age < 7*day:
		return fmt.Sprintf("%dd ago", int(age/day))
	default:
		return t.Format("Jan 2, 2006")
	}
}
