package plan

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// timeTokenRe matches a leading time-of-day token ("8:30", "08.30") followed
// by the rest of the line.
var timeTokenRe = regexp.MustCompile(`(\d{1,2})[:.](\d{2})\s+(.*)`)

// Line is one extracted (time, free text) pair.
type Line struct {
	// TimeOfDay is normalized to zero-padded 24-hour "HH:MM".
	TimeOfDay string
	// Rest is the free text following the time token.
	Rest string
}

// ExtractLines splits raw text into lines and extracts a time token and the
// remaining text from each. Lines without a valid token are silently dropped;
// output preserves input line order.
func ExtractLines(text string) []Line {
	var out []Line
	for _, raw := range strings.Split(text, "\n") {
		m := timeTokenRe.FindStringSubmatch(raw)
		if m == nil {
			continue
		}
		hour, _ := strconv.Atoi(m[1])
		minute, _ := strconv.Atoi(m[2])
		if hour > 23 || minute > 59 {
			continue
		}
		rest := strings.TrimSpace(m[3])
		if rest == "" {
			continue
		}
		out = append(out, Line{
			TimeOfDay: fmt.Sprintf("%02d:%02d", hour, minute),
			Rest:      rest,
		})
	}
	return out
}
