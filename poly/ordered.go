package poly

import (
	"fmt"
	"math"

	"golang.org/x/exp/slices"
)

// Ordered is a term store backed by a contiguous slice kept in strictly
// ascending exponent order after every mutation, enabling binary-search
// lookups and a linear merge on Add.
type Ordered struct {
	terms []Term
}

// NewOrdered returns an empty slice-backed polynomial.
func NewOrdered() *Ordered {
	return &Ordered{}
}

// ParseOrdered parses a polynomial expression into a slice-backed
// polynomial. The expression is a sequence of '+'/'-' separated
// monomials of the shape [sign][coefficient]x[^exponent] or bare
// constants, e.g. "2.1x^8 + 30x^9 + 3x + 10". It fails with an error
// wrapping ErrParse on the first token matching neither form.
func ParseOrdered(expression string) (*Ordered, error) {
	p := NewOrdered()
	if err := parseInto(expression, p); err != nil {
		return nil, err
	}
	return p, nil
}

// CopyNew returns a deep copy of the polynomial.
func (p *Ordered) CopyNew() *Ordered {
	return &Ordered{terms: slices.Clone(p.terms)}
}

// AddTerm accumulates coefficient onto the term with the given exponent.
// The slot is located with a binary search; inserting a new term shifts
// the terms above it, which is O(n) but fine for the small term counts
// a sparse polynomial holds.
func (p *Ordered) AddTerm(coefficient float64, exponent int) {
	if coefficient == 0 {
		return
	}

	i, found := slices.BinarySearchFunc(p.terms, exponent, compareTermExponent)
	if found {
		p.terms[i].Coefficient += coefficient
		return
	}

	p.terms = slices.Insert(p.terms, i, Term{Coefficient: coefficient, Exponent: exponent})
}

// Coefficient returns the coefficient of the term with the given
// exponent, or 0 if no such term is stored.
func (p *Ordered) Coefficient(exponent int) float64 {
	coefficient, _ := p.CoefficientOK(exponent)
	return coefficient
}

// CoefficientOK is like Coefficient but also reports whether the term is
// actually stored.
func (p *Ordered) CoefficientOK(exponent int) (float64, bool) {
	i, found := slices.BinarySearchFunc(p.terms, exponent, compareTermExponent)
	if !found {
		return 0, false
	}
	return p.terms[i].Coefficient, true
}

// Evaluate returns the value of the polynomial at x.
func (p *Ordered) Evaluate(x float64) (y float64) {
	for _, t := range p.terms {
		y += t.Coefficient * math.Pow(x, float64(t.Exponent))
	}
	return
}

// Add returns a new polynomial equal to the sum of p and other, computed
// as a two-pointer merge over the two ascending term slices in O(n+m).
// Terms with matching exponents are summed without pruning a zero sum;
// once one side is exhausted the remainder of the other is appended
// unchanged.
func (p *Ordered) Add(other TermStore) (TermStore, error) {
	q, ok := other.(*Ordered)
	if !ok {
		return nil, fmt.Errorf("cannot Add: %w: expected *Ordered but other is %T", ErrTypeMismatch, other)
	}

	r := &Ordered{terms: make([]Term, 0, len(p.terms)+len(q.terms))}

	var i, j int
	for i < len(p.terms) && j < len(q.terms) {
		a, b := p.terms[i], q.terms[j]
		switch {
		case a.Exponent == b.Exponent:
			r.terms = append(r.terms, Term{Coefficient: a.Coefficient + b.Coefficient, Exponent: a.Exponent})
			i++
			j++
		case a.Exponent < b.Exponent:
			r.terms = append(r.terms, a)
			i++
		default:
			r.terms = append(r.terms, b)
			j++
		}
	}

	r.terms = append(r.terms, p.terms[i:]...)
	r.terms = append(r.terms, q.terms[j:]...)

	return r, nil
}

// Terms returns a copy of the stored terms in ascending exponent order.
func (p *Ordered) Terms() []Term {
	return slices.Clone(p.terms)
}

// Len returns the number of stored terms.
func (p *Ordered) Len() int {
	return len(p.terms)
}

// Degree returns the highest stored exponent, or -1 if the polynomial is
// empty.
func (p *Ordered) Degree() int {
	if len(p.terms) == 0 {
		return -1
	}
	return p.terms[len(p.terms)-1].Exponent
}

func compareTermExponent(t Term, exponent int) int {
	return t.Exponent - exponent
}
