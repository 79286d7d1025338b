package format

import (
	"fmt"
	"time"
)

// RelativeTime renders a timestamp as a compact relative string for
// table cells ("just now", "5m ago", "2d ago"). A zero time renders
// as "-".
func RelativeTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	seconds := time.Since(t).Seconds()
	switch {
	case seconds < 60:
		return "just now"
	case seconds < 3600:
		return fmt.Sprintf("%dm ago", int(seconds/60))
	case seconds < 86400:
		return fmt.Sprintf("%dh ago", int(seconds/3600))
	case seconds < 604800:
		return fmt.Sprintf("%dd ago", int(seconds/86400))
	case seconds < 2592000:
		return fmt.Sprintf("%dw ago", int(seconds/604800))
	default:
		return fmt.Sprintf("%dmo ago", int(seconds/2592000))
	}
}
