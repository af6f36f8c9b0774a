package permutation

import (
	"strings"

	"github.com/haloscan/permtwist/pkg/dictionary"
	"github.com/haloscan/permtwist/pkg/psl"
)

// pslAll returns every baked public suffix, for the Tld generator.
func pslAll() []string {
	return psl.Global.All()
}

// QWERTYNeighbors returns the adjacent keys for an ASCII letter or digit, and
// whether the table has an entry for it at all.
func QWERTYNeighbors(b byte) (string, bool) {
	n, ok := dictionary.QWERTYNeighbors[b]
	return n, ok
}

// resultSet accumulates RawCandidates in first-seen order while deduping by
// (label, suffix) pair. The teacher's own generators (GeneratePermutations,
// GenerateTypoSquatting) dedupe through a plain map[string]struct{}, which
// drops insertion order; this keeps the same dedup shape but preserves
// order, since spec.md §8 property 3 requires deterministic emission.
type resultSet struct {
	seen  map[string]struct{}
	items []RawCandidate
}

func newResultSet() *resultSet {
	return &resultSet{seen: make(map[string]struct{})}
}

func (s *resultSet) add(label, suffix string) {
	key := label + "\x00" + suffix
	if _, ok := s.seen[key]; ok {
		return
	}
	s.seen[key] = struct{}{}
	s.items = append(s.items, RawCandidate{Label: label, Suffix: suffix})
}

const lowerAlphabet = "abcdefghijklmnopqrstuvwxyz"

func isAllowedLabelByte(b byte) bool {
	switch {
	case b >= 'a' && b <= 'z':
		return true
	case b >= '0' && b <= '9':
		return true
	case b == '-':
		return true
	default:
		return false
	}
}

func hasHyphenEdgeOrRun(label string) bool {
	if hasHyphenEdge(label) {
		return true
	}
	return strings.Contains(label, "--")
}

// hasHyphenEdge reports whether label begins or ends with '-', without
// regard to internal "--" runs. genSubdomain's discard rule (spec.md
// §4.5.9) is narrower than Hyphenation's own (§4.5.4): a side like
// "b--cdef" is a legal LDH label and must not be discarded just because it
// contains a hyphen run.
func hasHyphenEdge(label string) bool {
	return strings.HasPrefix(label, "-") || strings.HasSuffix(label, "-")
}
