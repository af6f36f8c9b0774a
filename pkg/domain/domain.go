// Package domain parses fully-qualified domain names into the
// subdomain/registrable-label/public-suffix shape the permutation engine
// mutates, using the baked Public Suffix List snapshot in pkg/psl.
package domain

import (
	"regexp"
	"strings"

	"golang.org/x/net/idna"

	"github.com/haloscan/permtwist/pkg/psl"
)

// labelRE matches a single valid DNS label: letters, digits and internal
// hyphens (LDH), 1-63 characters, never starting or ending with a hyphen.
// Punycode labels ("xn--...") already satisfy this charset; New additionally
// verifies they decode cleanly.
var labelRE = regexp.MustCompile(`^[a-z0-9]([a-z0-9-]{0,61}[a-z0-9])?$`)

// Domain is a parsed FQDN. It is immutable after construction.
type Domain struct {
	fqdn      string
	subdomain string
	label     string
	suffix    string
}

// FQDN returns the canonical, lower-cased, www-stripped fully-qualified
// domain name, including any retained subdomain labels.
func (d Domain) FQDN() string { return d.fqdn }

// Subdomain returns the labels to the left of the registrable label, or ""
// when there are none. These labels are carried for re-assembly only; no
// generator mutates them.
func (d Domain) Subdomain() string { return d.subdomain }

// Label returns the registrable second-level label.
func (d Domain) Label() string { return d.label }

// Suffix returns the public suffix (possibly multi-label, e.g. "co.uk").
func (d Domain) Suffix() string { return d.suffix }

// Registrable returns label+"."+suffix, the domain a permutation generator
// actually mutates and reconstructs against.
func (d Domain) Registrable() string {
	return d.label + "." + d.suffix
}

// New performs a fully validating parse: it lower-cases the input, strips a
// single leading "www.", resolves the public suffix via the longest-match
// rule, and validates the remaining registrable label.
func New(fqdn string) (Domain, error) {
	trimmed := strings.TrimSpace(fqdn)
	if trimmed == "" {
		return Domain{}, newParseError(EmptyInput, fqdn, ErrEmptyInput)
	}

	lower := strings.ToLower(trimmed)
	for i := 0; i < len(lower); i++ {
		if lower[i] > 127 {
			return Domain{}, newParseError(InvalidLabel, fqdn, ErrInvalidLabel)
		}
	}

	lower = strings.TrimPrefix(lower, "www.")

	suffix, ok := psl.Global.LongestMatch(lower)
	if !ok {
		return Domain{}, newParseError(InvalidSuffix, fqdn, ErrInvalidSuffix)
	}

	rest := strings.TrimSuffix(lower, "."+suffix)
	if rest == lower || rest == "" {
		return Domain{}, newParseError(InvalidSuffix, fqdn, ErrInvalidSuffix)
	}

	labels := strings.Split(rest, ".")
	label := labels[len(labels)-1]
	subdomain := strings.Join(labels[:len(labels)-1], ".")

	if err := validateLabel(label); err != nil {
		return Domain{}, newParseError(InvalidLabel, fqdn, err)
	}

	full := label + "." + suffix
	if subdomain != "" {
		full = subdomain + "." + full
	}

	return Domain{fqdn: full, subdomain: subdomain, label: label, suffix: suffix}, nil
}

// Raw builds a Domain from an already-known label and suffix, skipping
// suffix-table and label-charset validation. It exists for callers that
// already trust their input. It only lower-cases its arguments; the result
// never carries a subdomain.
func Raw(label, suffix string) Domain {
	label = strings.ToLower(label)
	suffix = strings.ToLower(suffix)
	return Domain{fqdn: label + "." + suffix, label: label, suffix: suffix}
}

func validateLabel(label string) error {
	if label == "" || len(label) > 63 {
		return ErrInvalidLabel
	}
	if !labelRE.MatchString(label) {
		return ErrInvalidLabel
	}
	if strings.HasPrefix(label, "xn--") {
		if _, err := idna.Punycode.ToUnicode(label); err != nil {
			return ErrInvalidLabel
		}
	}
	return nil
}
