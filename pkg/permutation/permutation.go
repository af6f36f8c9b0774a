package permutation

import "github.com/haloscan/permtwist/pkg/domain"

// Permutation is one emitted candidate: a mutated Domain tagged with the
// generator kind that produced it.
type Permutation struct {
	Domain domain.Domain `json:"domain"`
	Kind   Kind          `json:"kind"`
}

// RawCandidate is a generator's raw output before parser validation and
// identity/filter checks are applied by the dispatcher. Most generators
// replace only the label and carry the suffix through unchanged (Subdomain's
// label holds an internal dot); Tld replaces only the suffix, and
// HyphenationTldBoundary changes both.
type RawCandidate struct {
	Label  string
	Suffix string
}

// FQDN reassembles the candidate's label and suffix.
func (c RawCandidate) FQDN() string { return c.Label + "." + c.Suffix }

// generatorFunc produces the full, deterministic set of raw candidates a
// single kind emits for a given registrable label and suffix.
type generatorFunc func(label, suffix string) []RawCandidate

// generators maps each producible Kind to its generator function.
var generators = map[Kind]generatorFunc{
	Addition:               genAddition,
	BitSquatting:           genBitSquatting,
	Homoglyph:              genHomoglyph,
	Hyphenation:            genHyphenation,
	HyphenationTldBoundary: genHyphenationTldBoundary,
	Insertion:              genInsertion,
	Omission:               genOmission,
	Repetition:             genRepetition,
	Replacement:            genReplacement,
	Subdomain:              genSubdomain,
	Transposition:          genTransposition,
	VowelSwap:              genVowelSwap,
	VowelShuffle:           genVowelShuffle,
	DoubleVowelInsertion:   genDoubleVowelInsertion,
	Mapped:                 genMapped,
	Dictionary:             genDictionary,
	Tld:                    genTld,
}

// Generate runs the generator for kind over label/suffix and returns its raw
// candidates, unfiltered and unvalidated against the parser or base domain.
// Callers normally go through the dispatcher package rather than calling
// this directly.
func Generate(kind Kind, label, suffix string) []RawCandidate {
	fn, ok := generators[kind]
	if !ok {
		return nil
	}
	return fn(label, suffix)
}
