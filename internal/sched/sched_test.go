package sched

import (
	"context"
	"testing"
	"time"

	"github.com/yusufisl4m/pera-assistant/pkg/logx"
)

func TestParseHHMM(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in      string
		hour    int
		minute  int
		wantErr bool
	}{
		{"08:00", 8, 0, false},
		{"23:59", 23, 59, false},
		{"0:5", 0, 5, false},
		{" 12:30 ", 12, 30, false},
		{"24:00", 0, 0, true},
		{"12:60", 0, 0, true},
		{"noon", 0, 0, true},
		{"12", 0, 0, true},
		{"aa:bb", 0, 0, true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			h, m, err := parseHHMM(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseHHMM(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err == nil && (h != tt.hour || m != tt.minute) {
				t.Errorf("parseHHMM(%q) = %d:%d, want %d:%d", tt.in, h, m, tt.hour, tt.minute)
			}
		})
	}
}

func TestScheduleReplaceAndCancel(t *testing.T) {
	t.Parallel()
	s := New(time.UTC, logx.Nop())
	noop := func(context.Context) {}

	if err := s.Schedule("1", "08:00", nil, noop); err != nil {
		t.Fatalf("Schedule: %v", err)
	}
	if err := s.Schedule("2", "09:30", nil, noop); err != nil {
		t.Fatalf("Schedule: %v", err)
	}
	if got := s.Len(); got != 2 {
		t.Fatalf("Len = %d, want 2", got)
	}

	// Same id replaces, not duplicates.
	if err := s.Schedule("1", "10:00", nil, noop); err != nil {
		t.Fatalf("Schedule replace: %v", err)
	}
	if got := s.Len(); got != 2 {
		t.Fatalf("Len after replace = %d, want 2", got)
	}

	s.Cancel("1")
	if got := s.Len(); got != 1 {
		t.Fatalf("Len after cancel = %d, want 1", got)
	}

	// Unknown id is a no-op.
	s.Cancel("nope")
	if got := s.Len(); got != 1 {
		t.Fatalf("Len after unknown cancel = %d, want 1", got)
	}
}

func TestScheduleRejectsBadTime(t *testing.T) {
	t.Parallel()
	s := New(time.UTC, logx.Nop())
	if err := s.Schedule("1", "99:99", nil, func(context.Context) {}); err == nil {
		t.Fatal("Schedule accepted invalid time")
	}
	if got := s.Len(); got != 0 {
		t.Fatalf("Len = %d, want 0", got)
	}
}

func TestStartStopIdempotent(t *testing.T) {
	t.Parallel()
	s := New(time.UTC, logx.Nop())
	ctx := context.Background()

	s.Start(ctx)
	s.Start(ctx) // second call must not panic or double-start

	stopCtx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	s.Stop(stopCtx)
	s.Stop(stopCtx)
}
