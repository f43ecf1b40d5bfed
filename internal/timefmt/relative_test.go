package timefmt

import (
	"testing"
	"time"
)

func TestRelative(t *testing.T) {
	base := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		from   time.Time
		style  Style
		approx bool
		want   string
	}{
		{
			name:  "same instant",
			from:  base,
			style: Long,
			want:  "now",
		},
		{
			name:   "same instant approx",
			from:   base,
			style:  Long,
			approx: true,
			want:   "today",
		},
		{
			name:  "seconds only",
			from:  base.Add(-42 * time.Second),
			style: Long,
			want:  "42 seconds",
		},
		{
			name:  "single units are singular",
			from:  base.Add(-1*time.Hour - 1*time.Minute - 1*time.Second),
			style: Long,
			want:  "1 hour, 1 minute, 1 second",
		},
		{
			name:  "mixed calendar span",
			from:  time.Date(2025, 6, 28, 10, 30, 0, 0, time.UTC),
			style: Long,
			want:  "1 year, 2 months, 3 days, 1 hour, 30 minutes",
		},
		{
			name:  "short style",
			from:  time.Date(2025, 6, 28, 10, 30, 0, 0, time.UTC),
			style: Short,
			want:  "1y, 2mo, 3d, 1h, 30m",
		},
		{
			name:  "raw style",
			from:  time.Date(2025, 6, 28, 10, 30, 0, 0, time.UTC),
			style: Raw,
			want:  "P1Y2M3DT1H30M",
		},
		{
			name:   "approx truncates to days",
			from:   time.Date(2026, 8, 29, 1, 0, 0, 0, time.UTC),
			style:  Long,
			approx: true,
			want:   "2 days",
		},
		{
			name:   "approx same day",
			from:   base.Add(-3 * time.Hour),
			style:  Long,
			approx: true,
			want:   "today",
		},
		{
			name:  "raw zero span",
			from:  base,
			style: Raw,
			want:  "PT0S",
		},
		{
			name:  "borrow across a month boundary",
			from:  time.Date(2026, 7, 30, 12, 0, 0, 0, time.UTC),
			style: Long,
			want:  "1 month, 1 day",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Relative(tt.from, base, tt.style, tt.approx); got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}
