package dispatcher

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/haloscan/permtwist/pkg/domain"
	"github.com/haloscan/permtwist/pkg/filter"
	"github.com/haloscan/permtwist/pkg/permutation"
)

func mustDomain(t *testing.T, fqdn string) domain.Domain {
	t.Helper()
	d, err := domain.New(fqdn)
	require.NoError(t, err)
	return d
}

// universal property 1: the base domain never appears in its own output.
func TestAllNeverEmitsTheBaseDomain(t *testing.T) {
	assert := require.New(t)

	d := mustDomain(t, "example.com")
	base := d.Registrable()
	for _, p := range All(d, nil) {
		assert.False(strings.EqualFold(p.Domain.Registrable(), base), "emitted base domain as its own permutation: %s", p.Domain.FQDN())
	}
}

// universal property 2: every emission is itself a validly parsed domain.
func TestAllEmitsOnlyParseableDomains(t *testing.T) {
	assert := require.New(t)

	d := mustDomain(t, "example.com")
	for _, p := range All(d, nil) {
		_, err := domain.New(p.Domain.FQDN())
		assert.NoError(err, "emitted unparseable FQDN: %s", p.Domain.FQDN())
	}
}

// universal property 3: two runs over the same input produce the same order.
func TestAllIsDeterministic(t *testing.T) {
	assert := require.New(t)

	d := mustDomain(t, "example.com")
	first := All(d, nil)
	second := All(d, nil)
	assert.Equal(len(first), len(second))
	for i := range first {
		assert.Equal(first[i].Kind, second[i].Kind)
		assert.Equal(first[i].Domain.FQDN(), second[i].Domain.FQDN())
	}
}

// universal property 4: VisitAll's stream matches All's slice exactly.
func TestVisitAllMatchesAll(t *testing.T) {
	assert := require.New(t)

	d := mustDomain(t, "example.com")
	want := All(d, nil)

	var got []permutation.Permutation
	VisitAll(d, nil, func(ref PermutationRef) bool {
		parsed, err := domain.New(string(ref.FQDN))
		assert.NoError(err)
		got = append(got, permutation.Permutation{Domain: parsed, Kind: ref.Kind})
		return true
	})

	assert.Equal(len(want), len(got))
	for i := range want {
		assert.Equal(want[i].Kind, got[i].Kind)
		assert.Equal(want[i].Domain.FQDN(), got[i].Domain.FQDN())
	}
}

// universal property 5: Permissive{} is a superset of any restrictive filter.
func TestPermissiveIsASuperset(t *testing.T) {
	assert := require.New(t)

	d := mustDomain(t, "example.com")
	onlyAddition := filter.Func(func(c filter.Candidate) bool {
		return c.Kind == permutation.Addition
	})

	restricted := All(d, onlyAddition)
	permissive := All(d, filter.Permissive{})
	assert.LessOrEqual(len(restricted), len(permissive))

	permissiveSet := make(map[string]struct{}, len(permissive))
	for _, p := range permissive {
		permissiveSet[p.Domain.FQDN()] = struct{}{}
	}
	for _, p := range restricted {
		_, ok := permissiveSet[p.Domain.FQDN()]
		assert.True(ok, "restricted emission %s missing from permissive output", p.Domain.FQDN())
	}
}

// PermutationRef.FQDN is a borrowed view into a buffer VisitAll reuses
// across callbacks; retaining the slice itself past the callback is unsafe,
// but copying it (as every visit here does via string(ref.FQDN)) isn't.
func TestVisitAllFQDNBufferIsReusedAcrossCallbacks(t *testing.T) {
	assert := require.New(t)

	d := mustDomain(t, "example.com")
	var live [][]byte
	var copied []string
	VisitAll(d, nil, func(ref PermutationRef) bool {
		live = append(live, ref.FQDN)
		copied = append(copied, string(ref.FQDN))
		return len(live) < 2
	})

	assert.Len(copied, 2)
	assert.NotEqual(copied[0], copied[1], "expected distinct candidates")
	// live[0] and live[1] alias the same reused backing array: by the time
	// the walk has stopped, both now read back as the most recent write.
	assert.Equal(string(live[0]), string(live[1]))
}

func TestVisitAllStopsEarly(t *testing.T) {
	assert := require.New(t)

	d := mustDomain(t, "example.com")
	count := 0
	VisitAll(d, nil, func(ref PermutationRef) bool {
		count++
		return count < 3
	})
	assert.Equal(3, count)
}

func TestHyphenationTldBoundaryOnMultiLabelSuffix(t *testing.T) {
	assert := require.New(t)

	d := mustDomain(t, "example.co.uk")
	found := false
	for _, p := range All(d, nil) {
		if p.Kind == permutation.HyphenationTldBoundary {
			found = true
			assert.Equal("uk", p.Domain.Suffix())
			assert.Equal("example-co", p.Domain.Label())
		}
	}
	assert.True(found, "HyphenationTldBoundary produced nothing for a multi-label suffix")
}
