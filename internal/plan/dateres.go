package plan

import (
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/goodsign/monday"
)

// dateres is a best-effort Turkish natural-language date resolver, biased
// toward future dates. It covers the subset the duration resolver feeds it:
// relative day words, weekday names (including suffixed forms), month-name
// dates and numeric dates. Unresolvable phrases simply report ok=false.

var weekdayNames = []struct {
	name string
	day  time.Weekday
}{
	// Longest first: "pazartesi" must win over "pazar", "cumartesi" over "cuma".
	{"pazartesi", time.Monday},
	{"cumartesi", time.Saturday},
	{"çarşamba", time.Wednesday},
	{"perşembe", time.Thursday},
	{"salı", time.Tuesday},
	{"cuma", time.Friday},
	{"pazar", time.Sunday},
}

var numericDateRe = regexp.MustCompile(`^(\d{1,2})[./](\d{1,2})(?:[./](\d{4}))?$`)

// ResolveDate resolves a natural-language day phrase to a calendar date
// (midnight, in now's location). ok is false when the phrase is not a date.
func ResolveDate(phrase string, now time.Time) (time.Time, bool) {
	p := strings.TrimSpace(strings.ToLowerSpecial(unicode.TurkishCase, phrase))
	if p == "" {
		return time.Time{}, false
	}
	today := midnight(now)

	switch p {
	case "bugün":
		return today, true
	case "yarın", "yarına":
		return today.AddDate(0, 0, 1), true
	case "öbür gün", "öbürgün":
		return today.AddDate(0, 0, 2), true
	}

	for _, wd := range weekdayNames {
		if strings.HasPrefix(p, wd.name) {
			ahead := int(wd.day-now.Weekday()+7) % 7
			if ahead == 0 {
				ahead = 7
			}
			return today.AddDate(0, 0, ahead), true
		}
	}

	if m := numericDateRe.FindStringSubmatch(p); m != nil {
		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		if month < 1 || month > 12 || day < 1 || day > 31 {
			return time.Time{}, false
		}
		if m[3] != "" {
			year, _ := strconv.Atoi(m[3])
			return time.Date(year, time.Month(month), day, 0, 0, 0, 0, now.Location()), true
		}
		d := time.Date(now.Year(), time.Month(month), day, 0, 0, 0, 0, now.Location())
		if !d.After(today) {
			d = d.AddDate(1, 0, 0)
		}
		return d, true
	}

	if d, ok := parseMonthName(p, now); ok {
		return d, true
	}
	return time.Time{}, false
}

// parseMonthName handles "15 ocak" and "15 ocak 2026" via the tr_TR locale.
func parseMonthName(p string, now time.Time) (time.Time, bool) {
	for _, layout := range []string{"2 January 2006", "2 January"} {
		// monday's month tables are capitalized; try both spellings.
		for _, v := range []string{p, titleWords(p)} {
			d, err := monday.ParseInLocation(layout, v, now.Location(), monday.LocaleTrTR)
			if err != nil {
				continue
			}
			if layout == "2 January" {
				d = time.Date(now.Year(), d.Month(), d.Day(), 0, 0, 0, 0, now.Location())
				if !d.After(midnight(now)) {
					d = d.AddDate(1, 0, 0)
				}
			}
			return d, true
		}
	}
	return time.Time{}, false
}

func titleWords(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.TurkishCase.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
