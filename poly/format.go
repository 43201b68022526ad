package poly

import (
	"strconv"
	"strings"
)

// String renders the polynomial as " + "-joined monomials in descending
// exponent order, i.e. reversed from the internal ascending storage.
func (p *Ordered) String() string {
	monomials := make([]string, 0, len(p.terms))
	for i := len(p.terms) - 1; i >= 0; i-- {
		monomials = append(monomials, formatTerm(p.terms[i]))
	}
	return strings.Join(monomials, " + ")
}

// String renders the polynomial as " + "-joined monomials in the order
// the underlying map iterates, which is unspecified and may vary between
// calls.
func (p *Hashed) String() string {
	monomials := make([]string, 0, len(p.terms))
	for exponent, coefficient := range p.terms {
		monomials = append(monomials, formatTerm(Term{Coefficient: coefficient, Exponent: exponent}))
	}
	return strings.Join(monomials, " + ")
}

// formatTerm renders a term as "coefficient" for exponent 0 and
// "coefficientx^exponent" otherwise. Coefficient 1 and exponent 1 are
// rendered like any other value, with no stylistic elision.
func formatTerm(t Term) string {
	coefficient := strconv.FormatFloat(t.Coefficient, 'g', -1, 64)
	if t.Exponent == 0 {
		return coefficient
	}
	return coefficient + "x^" + strconv.Itoa(t.Exponent)
}
