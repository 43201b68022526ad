package poly

import (
	"bufio"
	"fmt"
	"io"

	"github.com/termlab/sparsepoly/utils"
	"github.com/termlab/sparsepoly/utils/buffer"
)

// The binary layout is canonical for both term stores: the term count as
// a uint64, then each term in ascending exponent order as a uint64
// exponent followed by a float64 coefficient.

// BinarySize returns the serialized size of the polynomial in bytes.
func (p *Ordered) BinarySize() int {
	return 8 + 16*len(p.terms)
}

// WriteTo writes the polynomial on w. It implements the io.WriterTo
// interface and writes exactly BinarySize() bytes.
//
// Unless w implements the buffer.Writer interface, it will be wrapped
// into a bufio.Writer.
func (p *Ordered) WriteTo(w io.Writer) (n int64, err error) {
	switch w := w.(type) {
	case buffer.Writer:
		if n, err = writeTerms(w, p.terms); err != nil {
			return
		}
		return n, w.Flush()
	default:
		return p.WriteTo(bufio.NewWriter(w))
	}
}

// ReadFrom reads the polynomial from r, replacing the receiver's terms.
// It implements the io.ReaderFrom interface.
//
// Unless r implements the buffer.Reader interface, it will be wrapped
// into a bufio.Reader.
func (p *Ordered) ReadFrom(r io.Reader) (n int64, err error) {
	switch r := r.(type) {
	case buffer.Reader:
		var terms []Term
		if terms, n, err = readTerms(r); err != nil {
			return
		}
		for i := 1; i < len(terms); i++ {
			if terms[i-1].Exponent >= terms[i].Exponent {
				return n, fmt.Errorf("cannot ReadFrom: exponents are not strictly ascending")
			}
		}
		p.terms = terms
		return
	default:
		return p.ReadFrom(bufio.NewReader(r))
	}
}

// MarshalBinary encodes the polynomial into a byte slice.
func (p *Ordered) MarshalBinary() (data []byte, err error) {
	return marshalTerms(p.terms)
}

// UnmarshalBinary decodes a byte slice generated by MarshalBinary.
func (p *Ordered) UnmarshalBinary(data []byte) (err error) {
	_, err = p.ReadFrom(buffer.NewBuffer(data))
	return
}

// BinarySize returns the serialized size of the polynomial in bytes.
func (p *Hashed) BinarySize() int {
	return 8 + 16*len(p.terms)
}

// WriteTo writes the polynomial on w in canonical ascending exponent
// order. It implements the io.WriterTo interface and writes exactly
// BinarySize() bytes.
//
// Unless w implements the buffer.Writer interface, it will be wrapped
// into a bufio.Writer.
func (p *Hashed) WriteTo(w io.Writer) (n int64, err error) {
	switch w := w.(type) {
	case buffer.Writer:
		if n, err = writeTerms(w, p.sortedTerms()); err != nil {
			return
		}
		return n, w.Flush()
	default:
		return p.WriteTo(bufio.NewWriter(w))
	}
}

// ReadFrom reads the polynomial from r, replacing the receiver's terms.
// It implements the io.ReaderFrom interface.
//
// Unless r implements the buffer.Reader interface, it will be wrapped
// into a bufio.Reader.
func (p *Hashed) ReadFrom(r io.Reader) (n int64, err error) {
	switch r := r.(type) {
	case buffer.Reader:
		var terms []Term
		if terms, n, err = readTerms(r); err != nil {
			return
		}
		p.terms = make(map[int]float64, len(terms))
		for _, t := range terms {
			p.terms[t.Exponent] = t.Coefficient
		}
		return
	default:
		return p.ReadFrom(bufio.NewReader(r))
	}
}

// MarshalBinary encodes the polynomial into a byte slice in canonical
// ascending exponent order.
func (p *Hashed) MarshalBinary() (data []byte, err error) {
	return marshalTerms(p.sortedTerms())
}

// UnmarshalBinary decodes a byte slice generated by MarshalBinary.
func (p *Hashed) UnmarshalBinary(data []byte) (err error) {
	_, err = p.ReadFrom(buffer.NewBuffer(data))
	return
}

// sortedTerms returns the stored terms in ascending exponent order.
func (p *Hashed) sortedTerms() []Term {
	terms := make([]Term, 0, len(p.terms))
	for _, exponent := range utils.GetSortedKeys(p.terms) {
		terms = append(terms, Term{Coefficient: p.terms[exponent], Exponent: exponent})
	}
	return terms
}

func writeTerms(w buffer.Writer, terms []Term) (n int64, err error) {

	var inc int64

	if inc, err = buffer.WriteUint64(w, uint64(len(terms))); err != nil {
		return n + inc, err
	}
	n += inc

	for _, t := range terms {
		if inc, err = buffer.WriteUint64(w, uint64(t.Exponent)); err != nil {
			return n + inc, err
		}
		n += inc

		if inc, err = buffer.WriteFloat64(w, t.Coefficient); err != nil {
			return n + inc, err
		}
		n += inc
	}

	return
}

func readTerms(r buffer.Reader) (terms []Term, n int64, err error) {

	var inc int

	var count uint64
	if inc, err = buffer.ReadUint64(r, &count); err != nil {
		return nil, n + int64(inc), err
	}
	n += int64(inc)

	for k := uint64(0); k < count; k++ {

		var exponent uint64
		if inc, err = buffer.ReadUint64(r, &exponent); err != nil {
			return nil, n + int64(inc), err
		}
		n += int64(inc)

		var coefficient float64
		if inc, err = buffer.ReadFloat64(r, &coefficient); err != nil {
			return nil, n + int64(inc), err
		}
		n += int64(inc)

		terms = append(terms, Term{Coefficient: coefficient, Exponent: int(exponent)})
	}

	return
}

func marshalTerms(terms []Term) (data []byte, err error) {
	buf := buffer.NewBufferSize(8 + 16*len(terms))
	if _, err = writeTerms(buf, terms); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
