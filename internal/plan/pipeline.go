package plan

import (
	"errors"
	"time"
)

// ErrNoTimeTokens is returned when no line of the submitted text carries a
// recognizable time token. The caller reports a format error; no draft exists.
var ErrNoTimeTokens = errors.New("no time token found in input")

// Job is an unconfirmed draft reminder extracted from one input line.
type Job struct {
	TimeOfDay   string
	Description string
	EndDate     *time.Time
}

// Pipeline composes extractor, duration resolver and normalizer.
type Pipeline struct {
	norm *Normalizer
	now  func() time.Time
}

func NewPipeline(norm *Normalizer, now func() time.Time) *Pipeline {
	if now == nil {
		now = time.Now
	}
	return &Pipeline{norm: norm, now: now}
}

// Now reports the pipeline's current time (timezone-aware).
func (p *Pipeline) Now() time.Time { return p.now() }

// BuildDraft runs the full extraction pipeline over raw multi-line text.
// One job per matching line, in input order. Date-resolution misses degrade
// to "no end date"; only a fully tokenless input is an error.
func (p *Pipeline) BuildDraft(text string) ([]Job, error) {
	lines := ExtractLines(text)
	if len(lines) == 0 {
		return nil, ErrNoTimeTokens
	}
	now := p.now()
	jobs := make([]Job, 0, len(lines))
	for _, ln := range lines {
		desc, end := ParseDuration(ln.Rest, now)
		jobs = append(jobs, Job{
			TimeOfDay:   ln.TimeOfDay,
			Description: p.norm.Normalize(desc),
			EndDate:     end,
		})
	}
	return jobs, nil
}
