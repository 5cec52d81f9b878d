package plan

import (
	"strings"
	"sync"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Normalizer fuzzy-matches task descriptions against a known-activity
// vocabulary. A match above the threshold replaces the description with the
// canonical phrase; otherwise the user's wording is kept. Either way the
// result is title-cased (Turkish-aware).
//
// Safe for concurrent use; Apply() swaps vocabulary and threshold live.
type Normalizer struct {
	mu        sync.RWMutex
	vocab     []string
	threshold int

	titler cases.Caser
}

func NewNormalizer(vocab []string, threshold int) *Normalizer {
	n := &Normalizer{titler: cases.Title(language.Turkish)}
	n.Apply(vocab, threshold)
	return n
}

func (n *Normalizer) Apply(vocab []string, threshold int) {
	cp := append([]string(nil), vocab...)
	n.mu.Lock()
	n.vocab = cp
	n.threshold = threshold
	n.mu.Unlock()
}

func (n *Normalizer) Normalize(desc string) string {
	n.mu.RLock()
	vocab := n.vocab
	threshold := n.threshold
	n.mu.RUnlock()

	s := strings.TrimSpace(desc)
	if s == "" {
		return s
	}
	if len(vocab) > 0 {
		if best, err := fuzzy.ExtractOne(s, vocab); err == nil && best != nil && best.Score > threshold {
			s = best.Match
		}
	}
	return n.titler.String(s)
}
