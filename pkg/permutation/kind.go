// Package permutation implements the closed catalog of registrable-label
// mutation generators: one finite, pure generator function per kind. Each
// generator builds and returns its whole candidate set as a slice at once;
// candidates are not produced lazily.
package permutation

import (
	"encoding/json"
	"fmt"
)

// Kind is the closed tag identifying which generator produced a candidate.
// It is a sealed enumeration: callers must not extend it, since its JSON
// wire form (the tag name) is a stability contract (spec.md §9).
type Kind int

const (
	Addition Kind = iota
	BitSquatting
	Homoglyph
	Hyphenation
	HyphenationTldBoundary
	Insertion
	Omission
	Repetition
	Replacement
	Subdomain
	Transposition
	VowelSwap
	VowelShuffle
	DoubleVowelInsertion
	Mapped
	Dictionary
	Tld

	// CertificateTransparency is reserved for an external producer that
	// tags candidates sourced from Certificate Transparency logs with a
	// matching JSON shape. The engine never constructs a generator for it.
	CertificateTransparency
)

// Kinds lists every kind a generator in this package can actually produce,
// in the fixed order the dispatcher enumerates them in.
var Kinds = []Kind{
	Addition,
	BitSquatting,
	Homoglyph,
	Hyphenation,
	HyphenationTldBoundary,
	Insertion,
	Omission,
	Repetition,
	Replacement,
	Subdomain,
	Transposition,
	VowelSwap,
	VowelShuffle,
	DoubleVowelInsertion,
	Mapped,
	Dictionary,
	Tld,
}

var kindNames = map[Kind]string{
	Addition:                "Addition",
	BitSquatting:            "BitSquatting",
	Homoglyph:               "Homoglyph",
	Hyphenation:             "Hyphenation",
	HyphenationTldBoundary:  "HyphenationTldBoundary",
	Insertion:               "Insertion",
	Omission:                "Omission",
	Repetition:              "Repetition",
	Replacement:             "Replacement",
	Subdomain:               "Subdomain",
	Transposition:           "Transposition",
	VowelSwap:               "VowelSwap",
	VowelShuffle:            "VowelShuffle",
	DoubleVowelInsertion:    "DoubleVowelInsertion",
	Mapped:                  "Mapped",
	Dictionary:              "Dictionary",
	Tld:                     "Tld",
	CertificateTransparency: "CertificateTransparency",
}

var namesToKind = func() map[string]Kind {
	m := make(map[string]Kind, len(kindNames))
	for k, v := range kindNames {
		m[v] = k
	}
	return m
}()

// String returns the kind's JSON tag name.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// MarshalJSON serializes the kind as its tag name string.
func (k Kind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// UnmarshalJSON parses a tag name string back into a Kind.
func (k *Kind) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	kind, ok := namesToKind[s]
	if !ok {
		return fmt.Errorf("permutation: unknown kind %q", s)
	}
	*k = kind
	return nil
}
