// Package dispatcher runs the permutation catalog over a parsed domain,
// validating and filtering each generator's raw output before it is handed
// back to the caller.
package dispatcher

import (
	"strings"

	"golang.org/x/net/idna"

	"github.com/haloscan/permtwist/pkg/domain"
	"github.com/haloscan/permtwist/pkg/filter"
	"github.com/haloscan/permtwist/pkg/obslog"
	"github.com/haloscan/permtwist/pkg/permutation"
)

// PermutationRef is the view VisitAll hands to its callback. Unlike
// permutation.Permutation it carries the reassembled FQDN as a []byte slice
// of a buffer VisitAll owns and reuses across iterations, the same
// view-not-copy idiom as bufio.Scanner.Bytes(): it is valid only for the
// duration of one callback invocation, and the dispatcher is free to
// overwrite it on the very next step. A caller that needs to retain it past
// the callback must copy (e.g. `append([]byte(nil), ref.FQDN...)` or
// `string(ref.FQDN)`).
type PermutationRef struct {
	FQDN []byte
	Kind permutation.Kind
}

// All generates every valid, filtered permutation of d across the full
// producible kind catalog, in deterministic kind-then-candidate order. A nil
// f is treated as filter.Permissive{}. Unlike VisitAll, All owns its
// results, so it parses and copies every emitted FQDN once.
func All(d domain.Domain, f filter.Filter) []permutation.Permutation {
	var out []permutation.Permutation
	VisitAll(d, f, func(ref PermutationRef) bool {
		parsed, err := domain.New(string(ref.FQDN))
		if err != nil {
			// VisitAll only yields FQDNs that already parsed once; a second
			// failure here would mean New is not idempotent.
			return true
		}
		out = append(out, permutation.Permutation{Domain: parsed, Kind: ref.Kind})
		return true
	})
	return out
}

// VisitAll is the streaming, allocation-light form of All: visit is called
// once per valid, filtered candidate, in the same deterministic order All
// uses. Returning false from visit stops the walk early. A nil f is treated
// as filter.Permissive{}.
//
// VisitAll reuses one label buffer (for Punycode-encoding a generator's raw
// label) and one FQDN buffer (for the reassembled candidate) across every
// candidate of every kind, instead of allocating a fresh owned string per
// step; both are reset with a [:0] slice, not reallocated, once their
// capacity has grown to cover the widest candidate seen so far.
func VisitAll(d domain.Domain, f filter.Filter, visit func(PermutationRef) bool) {
	if f == nil {
		f = filter.Permissive{}
	}
	base := d.Registrable()
	label, suffix := d.Label(), d.Suffix()

	var labelBuf, fqdnBuf []byte

	for _, kind := range permutation.Kinds {
		for _, raw := range permutation.Generate(kind, label, suffix) {
			labelBuf = labelBuf[:0]
			if !appendASCIILabel(&labelBuf, raw.Label) {
				obslog.Debugf("dispatcher: skipping %s candidate %q.%q: not representable as a DNS label", kind, raw.Label, raw.Suffix)
				continue
			}

			fqdnBuf = fqdnBuf[:0]
			fqdnBuf = append(fqdnBuf, labelBuf...)
			fqdnBuf = append(fqdnBuf, '.')
			fqdnBuf = append(fqdnBuf, raw.Suffix...)

			// domain.New needs a string to validate against the PSL table;
			// this conversion is the one unavoidable copy per candidate; the
			// buffer it copies from is still reused rather than rebuilt.
			candidateFQDN := string(fqdnBuf)
			if strings.EqualFold(candidateFQDN, base) {
				continue
			}

			parsed, err := domain.New(candidateFQDN)
			if err != nil {
				obslog.Debugf("dispatcher: skipping %s candidate %q: %v", kind, candidateFQDN, err)
				continue
			}
			if strings.EqualFold(parsed.Registrable(), base) {
				continue
			}

			if !f.Accept(filter.Candidate{FQDN: parsed.FQDN(), Kind: kind}) {
				continue
			}

			fqdnBuf = append(fqdnBuf[:0], parsed.FQDN()...)
			if !visit(PermutationRef{FQDN: fqdnBuf, Kind: kind}) {
				return
			}
		}
	}
}

// appendASCIILabel appends label's DNS-wire form to *buf: unchanged if
// label is pure ASCII, Punycode-encoded if it contains the Unicode
// homoglyphs genHomoglyph can produce. It operates on the whole candidate
// label (which may itself contain internal dots, from genSubdomain), since
// idna.ToASCII already encodes label-by-label. Reports false when label has
// no valid DNS-wire representation.
func appendASCIILabel(buf *[]byte, label string) bool {
	for i := 0; i < len(label); i++ {
		if label[i] > 127 {
			ascii, err := idna.ToASCII(label)
			if err != nil {
				return false
			}
			*buf = append(*buf, ascii...)
			return true
		}
	}
	*buf = append(*buf, label...)
	return true
}
