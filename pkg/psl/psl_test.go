package psl

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLongestMatchPrefersMultiLabelSuffix(t *testing.T) {
	assert := require.New(t)

	suffix, ok := Global.LongestMatch("ox.ac.uk")
	assert.True(ok)
	assert.Equal("ac.uk", suffix)
}

func TestLongestMatchSingleLabelSuffix(t *testing.T) {
	assert := require.New(t)

	suffix, ok := Global.LongestMatch("example.com")
	assert.True(ok)
	assert.Equal("com", suffix)
}

func TestLongestMatchNoMatch(t *testing.T) {
	assert := require.New(t)

	_, ok := Global.LongestMatch("example.doesnotexist")
	assert.False(ok)
}

func TestAllIsSortedAndNonEmpty(t *testing.T) {
	assert := require.New(t)

	all := Global.All()
	assert.NotEmpty(all)
	for i := 1; i < len(all); i++ {
		assert.LessOrEqual(all[i-1], all[i])
	}
}
