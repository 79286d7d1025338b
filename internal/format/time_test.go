package format

import (
	"testing"
	"time"
)

func TestRelativeTime(t *testing.T) {
	t.Parallel()

	now := time.Now()
	tests := []struct {
		t    time.Time
		want string
	}{
		{time.Time{}, "-"},
		{now.Add(-30 * time.Second), "just now"},
		{now.Add(-5 * time.Minute), "5m ago"},
		{now.Add(-2 * time.Hour), "2h ago"},
		{now.Add(-3 * 24 * time.Hour), "3d ago"},
		{now.Add(-2 * 7 * 24 * time.Hour), "2w ago"},
		{now.Add(-65 * 24 * time.Hour), "2mo ago"},
	}

	for _, tt := range tests {
		if got := RelativeTime(tt.t); got != tt.want {
			t.Errorf("RelativeTime(%v) = %q, want %q", tt.t, got, tt.want)
		}
	}
}
