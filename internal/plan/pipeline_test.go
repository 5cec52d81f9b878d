package plan

import (
	"errors"
	"testing"
	"time"
)

func TestBuildDraft(t *testing.T) {
	t.Parallel()
	now := time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC)
	p := NewPipeline(NewNormalizer([]string{"kahvaltı", "toplantı"}, 70), func() time.Time { return now })

	jobs, err := p.BuildDraft("08:00 Kahvaltı\n15:30 Toplantı yarına kadar")
	if err != nil {
		t.Fatalf("BuildDraft: %v", err)
	}
	if len(jobs) != 2 {
		t.Fatalf("got %d jobs, want 2", len(jobs))
	}

	if jobs[0].TimeOfDay != "08:00" || jobs[0].Description != "Kahvaltı" || jobs[0].EndDate != nil {
		t.Errorf("job[0] = %+v", jobs[0])
	}

	wantEnd := time.Date(2025, time.March, 11, 23, 59, 59, 0, time.UTC)
	if jobs[1].TimeOfDay != "15:30" || jobs[1].Description != "Toplantı" {
		t.Errorf("job[1] = %+v", jobs[1])
	}
	if jobs[1].EndDate == nil || !jobs[1].EndDate.Equal(wantEnd) {
		t.Errorf("job[1].EndDate = %v, want %v", jobs[1].EndDate, wantEnd)
	}
}

func TestBuildDraftNoTokens(t *testing.T) {
	t.Parallel()
	p := NewPipeline(NewNormalizer(nil, 70), nil)
	if _, err := p.BuildDraft("bugün hiçbir şey yapma"); !errors.Is(err, ErrNoTimeTokens) {
		t.Fatalf("err = %v, want ErrNoTimeTokens", err)
	}
}
