package plan

import (
	"strings"
	"time"
	"unicode"
)

// untilMarker is the Turkish "until" word that introduces an expiration clause.
const untilMarker = "kadar"

// daySuffixes are locale-specific qualifiers ("on the day of", "by the
// evening/morning of") stripped before date resolution.
var daySuffixes = []string{"gününe", "günü", "akşamına", "aksamina", "sabahına"}

// ParseDuration detects a trailing "<day phrase> kadar" clause in text and
// resolves it to an inclusive end date, normalized to 23:59:59 of that day.
//
// The fallback chain mirrors a best-effort heuristic, not a grammar: first the
// last two words before the marker are tried as a date phrase, then the last
// word alone (stripped, then raw). A resolution miss is not an error; the text
// is returned unchanged with a nil end date.
func ParseDuration(text string, now time.Time) (string, *time.Time) {
	lower := strings.ToLowerSpecial(unicode.TurkishCase, text)
	idx := strings.Index(lower, untilMarker)
	if idx < 0 {
		return text, nil
	}

	words := strings.Fields(strings.TrimSpace(lower[:idx]))

	if len(words) >= 2 {
		phrase := stripSuffixes(words[len(words)-2] + " " + words[len(words)-1])
		if d, ok := ResolveDate(phrase, now); ok {
			return strings.Join(words[:len(words)-2], " "), endOfDay(d)
		}
	}

	if len(words) >= 1 {
		last := words[len(words)-1]
		d, ok := ResolveDate(stripSuffixes(last), now)
		if !ok {
			d, ok = ResolveDate(last, now)
		}
		if ok {
			return strings.Join(words[:len(words)-1], " "), endOfDay(d)
		}
	}

	return text, nil
}

func stripSuffixes(s string) string {
	for _, suf := range daySuffixes {
		s = strings.ReplaceAll(s, suf, "")
	}
	return strings.TrimSpace(s)
}

func endOfDay(d time.Time) *time.Time {
	e := time.Date(d.Year(), d.Month(), d.Day(), 23, 59, 59, 0, d.Location())
	return &e
}
