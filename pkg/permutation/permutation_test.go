package permutation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// S3 - Tld generator preserves label.
func TestTldPreservesLabel(t *testing.T) {
	assert := require.New(t)

	out := Generate(Tld, "example", "com")
	assert.NotEmpty(out)
	for _, c := range out {
		assert.Equal("example", c.Label)
		assert.NotEqual("com", c.Suffix)
	}
}

// S4 - Mapped, single application: one emission is cluck.com, never clucl.com.
func TestMappedSingleApplication(t *testing.T) {
	assert := require.New(t)

	out := Generate(Mapped, "duck", "com")
	var fqdns []string
	for _, c := range out {
		fqdns = append(fqdns, c.FQDN())
	}
	assert.Contains(fqdns, "cluck.com")
	assert.NotContains(fqdns, "clucl.com")
}

// S7 - Hyphenation edge rule: "ab" has exactly one internal position, which
// yields the single valid candidate "a-b.com" and never "-ab.com"/"ab-.com".
func TestHyphenationEdgeRule(t *testing.T) {
	assert := require.New(t)

	out := Generate(Hyphenation, "ab", "com")
	assert.Len(out, 1)
	assert.Equal("a-b.com", out[0].FQDN())
}

// S8 - VowelShuffle bound: a label with 10 vowel positions still emits at
// most the configured ceiling.
func TestVowelShuffleBound(t *testing.T) {
	assert := require.New(t)

	label := "aeiouaeiou" // 10 vowel positions, 5^10 possible combinations
	out := Generate(VowelShuffle, label, "com")
	assert.LessOrEqual(len(out), vowelShuffleCeiling)
	assert.Equal(vowelShuffleCeiling, len(out))
}

func TestAdditionEmits26Candidates(t *testing.T) {
	assert := require.New(t)

	out := Generate(Addition, "example", "com")
	assert.Len(out, 26)
	assert.Equal("examplea.com", out[0].FQDN())
}

func TestBitSquattingOnlyEmitsAllowedBytes(t *testing.T) {
	assert := require.New(t)

	out := Generate(BitSquatting, "example", "com")
	assert.NotEmpty(out)
	for _, c := range out {
		for i := 0; i < len(c.Label); i++ {
			assert.True(isAllowedLabelByte(c.Label[i]))
		}
	}
}

func TestSubdomainDiscardsHyphenEdges(t *testing.T) {
	assert := require.New(t)

	out := Generate(Subdomain, "my-site", "com")
	for _, c := range out {
		for _, side := range strings.Split(c.Label, ".") {
			assert.False(hasHyphenEdge(side))
		}
	}
}

// spec.md §4.5.9 only discards a Subdomain candidate when a side is empty
// or begins/ends with '-'; an internal "--" run (legal under the LDH
// regex) must still be emitted.
func TestSubdomainKeepsInternalHyphenRun(t *testing.T) {
	assert := require.New(t)

	out := Generate(Subdomain, "ab--cdef", "com")
	var fqdns []string
	for _, c := range out {
		fqdns = append(fqdns, c.FQDN())
	}
	assert.Contains(fqdns, "a.b--cdef.com")
}

func TestHomoglyphSubstitutesBigrams(t *testing.T) {
	assert := require.New(t)

	out := Generate(Homoglyph, "corner", "com")
	var fqdns []string
	for _, c := range out {
		fqdns = append(fqdns, c.FQDN())
	}
	assert.Contains(fqdns, "comer.com")
}

func TestHyphenationTldBoundaryCollapsesFirstSuffixLabel(t *testing.T) {
	assert := require.New(t)

	out := Generate(HyphenationTldBoundary, "example", "co.uk")
	assert.Len(out, 1)
	assert.Equal("example-co", out[0].Label)
	assert.Equal("uk", out[0].Suffix)
}

func TestHyphenationTldBoundarySingleLabelSuffixEmptySuffix(t *testing.T) {
	assert := require.New(t)

	out := Generate(HyphenationTldBoundary, "example", "com")
	assert.Len(out, 1)
	assert.Equal("", out[0].Suffix)
}
