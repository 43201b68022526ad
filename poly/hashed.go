package poly

import (
	"fmt"
	"math"

	"golang.org/x/exp/maps"
)

// Hashed is a term store backed by an exponent-keyed map. Insertions and
// lookups are O(1) expected, at the cost of any ordering guarantee on
// iteration.
type Hashed struct {
	terms map[int]float64
}

// NewHashed returns an empty map-backed polynomial.
func NewHashed() *Hashed {
	return &Hashed{terms: map[int]float64{}}
}

// ParseHashed parses a polynomial expression into a map-backed
// polynomial. See ParseOrdered for the accepted grammar.
func ParseHashed(expression string) (*Hashed, error) {
	p := NewHashed()
	if err := parseInto(expression, p); err != nil {
		return nil, err
	}
	return p, nil
}

// CopyNew returns a deep copy of the polynomial.
func (p *Hashed) CopyNew() *Hashed {
	return &Hashed{terms: maps.Clone(p.terms)}
}

// AddTerm accumulates coefficient onto the term with the given exponent.
func (p *Hashed) AddTerm(coefficient float64, exponent int) {
	if coefficient == 0 {
		return
	}
	p.terms[exponent] += coefficient
}

// Coefficient returns the coefficient of the term with the given
// exponent, or 0 if no such term is stored.
func (p *Hashed) Coefficient(exponent int) float64 {
	return p.terms[exponent]
}

// CoefficientOK is like Coefficient but also reports whether the term is
// actually stored.
func (p *Hashed) CoefficientOK(exponent int) (float64, bool) {
	coefficient, ok := p.terms[exponent]
	return coefficient, ok
}

// Evaluate returns the value of the polynomial at x.
func (p *Hashed) Evaluate(x float64) (y float64) {
	for exponent, coefficient := range p.terms {
		y += coefficient * math.Pow(x, float64(exponent))
	}
	return
}

// Add returns a new polynomial equal to the sum of p and other, built by
// re-inserting every term of both operands into a fresh store so that
// duplicate exponents accumulate through AddTerm.
func (p *Hashed) Add(other TermStore) (TermStore, error) {
	q, ok := other.(*Hashed)
	if !ok {
		return nil, fmt.Errorf("cannot Add: %w: expected *Hashed but other is %T", ErrTypeMismatch, other)
	}

	r := NewHashed()
	for exponent, coefficient := range p.terms {
		r.AddTerm(coefficient, exponent)
	}
	for exponent, coefficient := range q.terms {
		r.AddTerm(coefficient, exponent)
	}

	return r, nil
}

// Terms returns a copy of the stored terms in unspecified order.
func (p *Hashed) Terms() []Term {
	terms := make([]Term, 0, len(p.terms))
	for exponent, coefficient := range p.terms {
		terms = append(terms, Term{Coefficient: coefficient, Exponent: exponent})
	}
	return terms
}

// Len returns the number of stored terms.
func (p *Hashed) Len() int {
	return len(p.terms)
}

// Degree returns the highest stored exponent, or -1 if the polynomial is
// empty.
func (p *Hashed) Degree() int {
	degree := -1
	for exponent := range p.terms {
		if exponent > degree {
			degree = exponent
		}
	}
	return degree
}
