package poly

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// termPattern matches a monomial token anchored at its start: an optional
// signed decimal coefficient, the variable x, and an optional exponent.
// Like the grammar it is deliberately a prefix match, trailing garbage
// after a well-formed monomial is ignored.
var termPattern = regexp.MustCompile(`^([-+]?\d*(?:\.\d+)?)x\^?(\d*)`)

// parseInto feeds the terms of expression into p via AddTerm, so repeated
// exponents across the input accumulate per the term-store contract. It
// fails on the first malformed token, leaving p partially filled; the
// Parse constructors discard p in that case so that no partial polynomial
// escapes.
func parseInto(expression string, p TermStore) error {
	expression = strings.ReplaceAll(expression, " ", "")
	for _, token := range splitTerms(expression) {
		coefficient, exponent, err := parseTerm(token)
		if err != nil {
			return err
		}
		p.AddTerm(coefficient, exponent)
	}
	return nil
}

// splitTerms splits the expression at every position immediately
// preceding a '+' or '-', keeping each sign attached to the token that
// follows it. A sign at position zero starts the first token rather than
// producing an empty one.
func splitTerms(expression string) (tokens []string) {
	start := 0
	for i := 1; i < len(expression); i++ {
		if expression[i] == '+' || expression[i] == '-' {
			tokens = append(tokens, expression[start:i])
			start = i
		}
	}
	if start < len(expression) {
		tokens = append(tokens, expression[start:])
	}
	return
}

// parseTerm parses a single token of the shape [sign][coefficient]x[^exponent]
// or a bare constant. A token with x but no coefficient digits defaults
// to a coefficient of 1 honoring the sign; a missing ^exponent defaults
// the exponent to 1; a bare constant has exponent 0.
func parseTerm(token string) (coefficient float64, exponent int, err error) {
	match := termPattern.FindStringSubmatch(token)
	if match == nil {
		// No x in the token: a bare constant.
		if coefficient, err = strconv.ParseFloat(token, 64); err != nil {
			return 0, 0, fmt.Errorf("cannot parse %q: %w", token, ErrParse)
		}
		return coefficient, 0, nil
	}

	switch match[1] {
	case "", "+":
		coefficient = 1
	case "-":
		coefficient = -1
	default:
		if coefficient, err = strconv.ParseFloat(match[1], 64); err != nil {
			return 0, 0, fmt.Errorf("cannot parse %q: %w", token, ErrParse)
		}
	}

	exponent = 1
	if match[2] != "" {
		if exponent, err = strconv.Atoi(match[2]); err != nil {
			return 0, 0, fmt.Errorf("cannot parse %q: %w", token, ErrParse)
		}
	}

	return coefficient, exponent, nil
}
