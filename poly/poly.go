// Package poly implements a sparse univariate polynomial over float64
// coefficients, storing only the terms that were inserted.
//
// Two interchangeable term stores are provided: [Ordered] keeps its terms
// in a contiguous slice sorted by ascending exponent, while [Hashed] keeps
// them in a map keyed by exponent. Both satisfy the [TermStore] interface
// and behave identically except for the iteration order of Terms and the
// order of the monomials emitted by String.
package poly

import (
	"errors"

	"github.com/zeebo/blake3"
	"golang.org/x/exp/slices"
)

// Term is a single (coefficient, exponent) pair of a sparse polynomial.
// Within one polynomial the exponent uniquely identifies the term.
type Term struct {
	Coefficient float64
	Exponent    int
}

// ErrParse is wrapped by all errors returned when a polynomial expression
// contains a token that is neither a monomial nor a bare constant.
var ErrParse = errors.New("malformed polynomial expression")

// ErrTypeMismatch is wrapped by the error returned by Add when the two
// operands do not share the same term-store implementation.
var ErrTypeMismatch = errors.New("term-store type mismatch")

// TermStore is the contract shared by the two term-store implementations.
//
// AddTerm mutates the receiver in place and is the only mutating
// operation; no internal synchronization is provided, callers using a
// single store from multiple goroutines must serialize access.
type TermStore interface {
	// AddTerm accumulates coefficient onto the term with the given
	// exponent, inserting it if absent. A zero coefficient is a no-op:
	// it neither inserts a term nor touches an existing one. A term
	// whose accumulated coefficient reaches exactly zero stays stored.
	AddTerm(coefficient float64, exponent int)

	// Coefficient returns the coefficient of the term with the given
	// exponent, or 0 if no such term is stored.
	Coefficient(exponent int) float64

	// CoefficientOK is like Coefficient but also reports whether the
	// term is actually stored.
	CoefficientOK(exponent int) (float64, bool)

	// Evaluate returns the value of the polynomial at x.
	Evaluate(x float64) float64

	// Add returns a new polynomial equal to the sum of the receiver and
	// other, leaving both operands untouched. It fails with an error
	// wrapping ErrTypeMismatch if other is a different term-store
	// implementation than the receiver.
	Add(other TermStore) (TermStore, error)

	// Terms returns a copy of the stored terms. Ordered returns them in
	// ascending exponent order; Hashed in unspecified order.
	Terms() []Term

	// Len returns the number of stored terms.
	Len() int

	// Degree returns the highest stored exponent, or -1 if the
	// polynomial is empty.
	Degree() int

	// String renders the polynomial as " + "-joined monomials.
	String() string
}

// Equal reports whether a and b hold the same multiset of
// (exponent, coefficient) pairs, irrespective of their term-store
// implementations.
func Equal(a, b TermStore) bool {
	return slices.Equal(ascending(a), ascending(b))
}

// Digest returns the blake3 digest of the canonical binary encoding of p.
// Two polynomials holding the same terms share a digest, whichever
// term store backs them.
func Digest(p TermStore) (digest [32]byte, err error) {
	terms := ascending(p)
	data, err := marshalTerms(terms)
	if err != nil {
		return digest, err
	}
	return blake3.Sum256(data), nil
}

// ascending returns the terms of p sorted by ascending exponent.
func ascending(p TermStore) []Term {
	terms := p.Terms()
	slices.SortFunc(terms, func(a, b Term) bool {
		return a.Exponent < b.Exponent
	})
	return terms
}
