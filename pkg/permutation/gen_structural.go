package permutation

import "strings"

// genHyphenation inserts a '-' at each internal label position, discarding
// any result that begins or ends with '-' or contains a "--" run.
func genHyphenation(label, suffix string) []RawCandidate {
	out := newResultSet()
	for i := 1; i < len(label); i++ {
		candidate := label[:i] + "-" + label[i:]
		if hasHyphenEdgeOrRun(candidate) {
			continue
		}
		out.add(candidate, suffix)
	}
	return out.items
}

// genHyphenationTldBoundary treats the boundary as the '.' between the
// registrable label and the leftmost suffix label, replacing it with a '-'.
// For a single-label suffix there is no leftmost-label boundary to collapse
// into, so the candidate's suffix comes back empty and is rejected by parser
// validation downstream (no public suffix matches); the generator still
// returns it rather than special-casing the empty result itself.
func genHyphenationTldBoundary(label, suffix string) []RawCandidate {
	out := newResultSet()
	dot := strings.IndexByte(suffix, '.')
	var firstSuffixLabel, rest string
	if dot < 0 {
		firstSuffixLabel, rest = suffix, ""
	} else {
		firstSuffixLabel, rest = suffix[:dot], suffix[dot+1:]
	}
	if firstSuffixLabel == "" {
		return nil
	}
	out.add(label+"-"+firstSuffixLabel, rest)
	return out.items
}

// genSubdomain splits the label in two at each internal position, turning
// the left half into a subdomain label ahead of the right half, which
// becomes the new registrable label. Candidates where either half is empty
// or begins/ends with '-' are discarded here, since the parser only
// validates the rightmost (registrable) label, not subdomain labels.
func genSubdomain(label, suffix string) []RawCandidate {
	out := newResultSet()
	for i := 1; i < len(label); i++ {
		left, right := label[:i], label[i:]
		if left == "" || right == "" {
			continue
		}
		if hasHyphenEdge(left) || hasHyphenEdge(right) {
			continue
		}
		out.add(left+"."+right, suffix)
	}
	return out.items
}

// genTld holds the label fixed and substitutes every other baked public
// suffix for it, skipping the input suffix itself.
func genTld(label, suffix string) []RawCandidate {
	out := newResultSet()
	for _, s := range pslAll() {
		if s == suffix {
			continue
		}
		out.add(label, s)
	}
	return out.items
}
