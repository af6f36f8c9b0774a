// Package filter defines the single predicate capability the dispatcher
// consults before yielding a candidate permutation.
package filter

import "github.com/haloscan/permtwist/pkg/permutation"

// Candidate is the view a Filter inspects: the mutated FQDN and the kind of
// generator that produced it. It mirrors dispatcher.PermutationRef without
// importing the dispatcher package, avoiding an import cycle.
type Candidate struct {
	FQDN string
	Kind permutation.Kind
}

// Filter is a pure, cheap predicate the dispatcher calls on its hot path
// immediately after generating and before yielding a candidate.
type Filter interface {
	Accept(c Candidate) bool
}

// Permissive accepts every candidate. It is the default filter.
type Permissive struct{}

// Accept always returns true.
func (Permissive) Accept(Candidate) bool { return true }

// Func adapts a plain function to the Filter interface, the same
// func-to-interface idiom as http.HandlerFunc.
type Func func(c Candidate) bool

// Accept calls f.
func (f Func) Accept(c Candidate) bool { return f(c) }
