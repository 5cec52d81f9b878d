package plan

import (
	"testing"
	"time"
)

func TestResolveDate(t *testing.T) {
	t.Parallel()
	// Monday 2025-03-10.
	now := time.Date(2025, time.March, 10, 15, 30, 0, 0, time.UTC)
	day := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}

	tests := []struct {
		name   string
		phrase string
		want   time.Time
		ok     bool
	}{
		{"today", "bugün", day(2025, time.March, 10), true},
		{"tomorrow", "yarın", day(2025, time.March, 11), true},
		{"tomorrow dative", "yarına", day(2025, time.March, 11), true},
		{"day after tomorrow", "öbür gün", day(2025, time.March, 12), true},
		{"weekday ahead", "perşembe", day(2025, time.March, 13), true},
		{"weekday dative suffix", "cumaya", day(2025, time.March, 14), true},
		{"same weekday jumps a week", "pazartesi", day(2025, time.March, 17), true},
		{"saturday wins over cuma prefix", "cumartesi", day(2025, time.March, 15), true},
		{"numeric with year", "15.01.2026", day(2026, time.January, 15), true},
		{"numeric past date rolls to next year", "15.01", day(2026, time.January, 15), true},
		{"numeric future date stays this year", "20.03", day(2025, time.March, 20), true},
		{"numeric slash form", "20/03", day(2025, time.March, 20), true},
		{"month name", "20 mart", day(2025, time.March, 20), true},
		{"month name past rolls to next year", "5 ocak", day(2026, time.January, 5), true},
		{"month name with year", "15 ocak 2027", day(2027, time.January, 15), true},
		{"mixed case input", "YARIN", day(2025, time.March, 11), true},
		{"invalid month", "10.13", time.Time{}, false},
		{"not a date", "makarna", time.Time{}, false},
		{"empty", "  ", time.Time{}, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := ResolveDate(tt.phrase, now)
			if ok != tt.ok {
				t.Fatalf("ResolveDate(%q) ok = %v, want %v", tt.phrase, ok, tt.ok)
			}
			if ok && !got.Equal(tt.want) {
				t.Errorf("ResolveDate(%q) = %v, want %v", tt.phrase, got, tt.want)
			}
		})
	}
}
