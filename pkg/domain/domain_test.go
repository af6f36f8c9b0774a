package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewShortMultiLabelSuffix(t *testing.T) {
	assert := require.New(t)

	// S1 - regression for 0.6.2: "ox.ac.uk" must parse as label=ox, suffix=ac.uk
	d, err := New("ox.ac.uk")
	assert.NoError(err)
	assert.Equal("ox", d.Label())
	assert.Equal("ac.uk", d.Suffix())
}

func TestNewStripsWWW(t *testing.T) {
	assert := require.New(t)

	// S2
	d, err := New("www.example.com")
	assert.NoError(err)
	assert.Equal("example.com", d.FQDN())
	assert.Equal("example", d.Label())
	assert.Equal("com", d.Suffix())
}

func TestNewRetainsDeeperSubdomain(t *testing.T) {
	assert := require.New(t)

	d, err := New("api.staging.example.com")
	assert.NoError(err)
	assert.Equal("example", d.Label())
	assert.Equal("com", d.Suffix())
	assert.Equal("api.staging", d.Subdomain())
	assert.Equal("api.staging.example.com", d.FQDN())
}

func TestNewEmptyInput(t *testing.T) {
	assert := require.New(t)

	_, err := New("   ")
	var perr *ParseError
	assert.True(errors.As(err, &perr))
	assert.Equal(EmptyInput, perr.Kind)
	assert.True(errors.Is(err, ErrEmptyInput))
}

func TestNewInvalidSuffix(t *testing.T) {
	assert := require.New(t)

	_, err := New("example.doesnotexist")
	var perr *ParseError
	assert.True(errors.As(err, &perr))
	assert.Equal(InvalidSuffix, perr.Kind)
}

func TestNewInvalidLabel(t *testing.T) {
	assert := require.New(t)

	_, err := New("-example.com")
	var perr *ParseError
	assert.True(errors.As(err, &perr))
	assert.Equal(InvalidLabel, perr.Kind)
}

func TestNewNonASCIIRejected(t *testing.T) {
	assert := require.New(t)

	_, err := New("exämple.com")
	assert.Error(err)
}

func TestRawSkipsValidation(t *testing.T) {
	assert := require.New(t)

	d := Raw("anything_at_all", "not-a-real-tld")
	assert.Equal("anything_at_all.not-a-real-tld", d.FQDN())
	assert.Equal("anything_at_all", d.Label())
}
