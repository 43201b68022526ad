package poly

import (
	"bytes"
	"encoding"
	"fmt"
	"io"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
	"github.com/termlab/sparsepoly/utils/sampling"
)

var testKey = []byte{0x49, 0x0a, 0x42, 0x3d, 0x97, 0x9d, 0xc1, 0x07, 0xa1, 0xd7, 0xe9, 0x7b, 0x3b, 0xce, 0xa1, 0xdb,
	0x42, 0xf3, 0xa6, 0xd5, 0x75, 0xd2, 0x0c, 0x92, 0xb7, 0x35, 0xce, 0x0c, 0xee, 0x09, 0x7c, 0x98}

const scenario = "2.1x^8 + 30x^9 + 3x + 10 + 10x^9 + 1 - 10"

type strategy struct {
	name  string
	new   func() TermStore
	parse func(string) (TermStore, error)
}

var strategies = []strategy{
	{
		name: "Ordered",
		new:  func() TermStore { return NewOrdered() },
		parse: func(s string) (TermStore, error) {
			p, err := ParseOrdered(s)
			if err != nil {
				return nil, err
			}
			return p, nil
		},
	},
	{
		name: "Hashed",
		new:  func() TermStore { return NewHashed() },
		parse: func(s string) (TermStore, error) {
			p, err := ParseHashed(s)
			if err != nil {
				return nil, err
			}
			return p, nil
		},
	},
}

func TestTermStore(t *testing.T) {
	for _, s := range strategies {
		s := s

		t.Run(s.name+"/Empty", func(t *testing.T) {
			p := s.new()
			require.Equal(t, 0, p.Len())
			require.Equal(t, -1, p.Degree())
			require.Equal(t, 0.0, p.Coefficient(3))
			require.Equal(t, "", p.String())
			for _, x := range []float64{0, 1, -1, 3.5, 1e6} {
				require.Equal(t, 0.0, p.Evaluate(x))
			}
		})

		t.Run(s.name+"/AddTerm/Accumulate", func(t *testing.T) {
			p := s.new()
			p.AddTerm(2, 3)
			p.AddTerm(3.5, 3)
			require.Equal(t, 1, p.Len())
			require.Equal(t, 5.5, p.Coefficient(3))
		})

		t.Run(s.name+"/AddTerm/ZeroGuard", func(t *testing.T) {
			p := s.new()
			p.AddTerm(0, 4)
			require.Equal(t, 0, p.Len())
			_, ok := p.CoefficientOK(4)
			require.False(t, ok)
		})

		t.Run(s.name+"/AddTerm/ZeroSumRetained", func(t *testing.T) {
			// The zero guard only rejects an incoming zero coefficient;
			// a term accumulated to exactly zero stays stored.
			p := s.new()
			p.AddTerm(2, 3)
			p.AddTerm(-2, 3)
			require.Equal(t, 1, p.Len())
			c, ok := p.CoefficientOK(3)
			require.True(t, ok)
			require.Equal(t, 0.0, c)
		})

		t.Run(s.name+"/AddTerm/DistinctExponents", func(t *testing.T) {
			prng, err := sampling.NewKeyedPRNG(testKey)
			require.NoError(t, err)

			p := s.new()
			reference := map[int]float64{}
			for i := 0; i < 512; i++ {
				coefficient := sampling.RandFloat64(prng, -10, 10)
				exponent := sampling.RandInt(prng, 64)
				p.AddTerm(coefficient, exponent)
				reference[exponent] += coefficient
			}

			seen := map[int]bool{}
			for _, term := range p.Terms() {
				require.False(t, seen[term.Exponent])
				seen[term.Exponent] = true
			}

			require.Equal(t, len(reference), p.Len())
			for exponent, coefficient := range reference {
				require.Equal(t, coefficient, p.Coefficient(exponent))
			}
		})

		t.Run(s.name+"/Evaluate", func(t *testing.T) {
			prng, err := sampling.NewKeyedPRNG(testKey)
			require.NoError(t, err)

			p := s.new()
			for i := 0; i < 32; i++ {
				p.AddTerm(sampling.RandFloat64(prng, -10, 10), sampling.RandInt(prng, 16))
			}

			for i := 0; i < 16; i++ {
				x := sampling.RandFloat64(prng, -1.5, 1.5)
				var want float64
				for _, term := range p.Terms() {
					want += term.Coefficient * math.Pow(x, float64(term.Exponent))
				}
				require.InDelta(t, want, p.Evaluate(x), 1e-8)
			}

			var sum float64
			for _, term := range p.Terms() {
				sum += term.Coefficient
			}
			require.InDelta(t, sum, p.Evaluate(1), 1e-9)
			require.InDelta(t, p.Coefficient(0), p.Evaluate(0), 1e-12)
		})

		t.Run(s.name+"/Add/Commutative", func(t *testing.T) {
			prng, err := sampling.NewKeyedPRNG(testKey)
			require.NoError(t, err)

			a := randomStore(prng, s.new(), 24)
			b := randomStore(prng, s.new(), 24)

			ab, err := a.Add(b)
			require.NoError(t, err)
			ba, err := b.Add(a)
			require.NoError(t, err)

			require.Empty(t, cmp.Diff(ascending(ab), ascending(ba)))
			require.True(t, Equal(ab, ba))
		})

		t.Run(s.name+"/Add/Associative", func(t *testing.T) {
			prng, err := sampling.NewKeyedPRNG(testKey)
			require.NoError(t, err)

			a := randomStore(prng, s.new(), 24)
			b := randomStore(prng, s.new(), 24)
			c := randomStore(prng, s.new(), 24)

			ab, err := a.Add(b)
			require.NoError(t, err)
			left, err := ab.Add(c)
			require.NoError(t, err)

			bc, err := b.Add(c)
			require.NoError(t, err)
			right, err := a.Add(bc)
			require.NoError(t, err)

			lhs, rhs := ascending(left), ascending(right)
			require.Equal(t, len(lhs), len(rhs))
			for i := range lhs {
				require.Equal(t, lhs[i].Exponent, rhs[i].Exponent)
				require.InDelta(t, lhs[i].Coefficient, rhs[i].Coefficient, 1e-9)
			}
		})

		t.Run(s.name+"/Add/LeavesOperandsUntouched", func(t *testing.T) {
			a := s.new()
			a.AddTerm(1, 2)
			b := s.new()
			b.AddTerm(3, 2)

			_, err := a.Add(b)
			require.NoError(t, err)
			require.Equal(t, 1.0, a.Coefficient(2))
			require.Equal(t, 3.0, b.Coefficient(2))
		})

		t.Run(s.name+"/Parse/Scenario", func(t *testing.T) {
			p, err := s.parse(scenario)
			require.NoError(t, err)

			want := []Term{
				{Coefficient: 1, Exponent: 0},
				{Coefficient: 3, Exponent: 1},
				{Coefficient: 2.1, Exponent: 8},
				{Coefficient: 40, Exponent: 9},
			}
			require.Equal(t, want, ascending(p))
			require.Equal(t, 40.0, p.Coefficient(9))
			require.Equal(t, 1.0, p.Evaluate(0))
			require.Equal(t, 9, p.Degree())
		})

		t.Run(s.name+"/Parse/Defaults", func(t *testing.T) {
			for _, tc := range []struct {
				expression string
				want       []Term
			}{
				{"x", []Term{{Coefficient: 1, Exponent: 1}}},
				{"-x", []Term{{Coefficient: -1, Exponent: 1}}},
				{"3x", []Term{{Coefficient: 3, Exponent: 1}}},
				{"-x^3", []Term{{Coefficient: -1, Exponent: 3}}},
				{"7", []Term{{Coefficient: 7, Exponent: 0}}},
				{"-7.5", []Term{{Coefficient: -7.5, Exponent: 0}}},
				{"x + x", []Term{{Coefficient: 2, Exponent: 1}}},
				{"", nil},
			} {
				p, err := s.parse(tc.expression)
				require.NoError(t, err, tc.expression)
				require.Empty(t, cmp.Diff(tc.want, ascending(p), cmpopts.EquateEmpty()), tc.expression)
			}
		})

		t.Run(s.name+"/Parse/Errors", func(t *testing.T) {
			for _, expression := range []string{
				"abc",
				"2.1y^8",
				"2.x",
				"3x + oops",
				"1 + + 2",
			} {
				p, err := s.parse(expression)
				require.Error(t, err, expression)
				require.ErrorIs(t, err, ErrParse, expression)
				require.Nil(t, p, expression)
			}
		})

		t.Run(s.name+"/Format/RoundTrip", func(t *testing.T) {
			p, err := s.parse(scenario)
			require.NoError(t, err)

			q, err := s.parse(p.String())
			require.NoError(t, err)
			require.True(t, Equal(p, q))
		})

		t.Run(s.name+"/Serialization", func(t *testing.T) {
			prng, err := sampling.NewKeyedPRNG(testKey)
			require.NoError(t, err)

			p := randomStore(prng, s.new(), 48)

			data, err := p.(encoding.BinaryMarshaler).MarshalBinary()
			require.NoError(t, err)
			require.Equal(t, p.(interface{ BinarySize() int }).BinarySize(), len(data))

			q := s.new()
			require.NoError(t, q.(encoding.BinaryUnmarshaler).UnmarshalBinary(data))
			require.True(t, Equal(p, q))
		})
	}
}

func TestAddTypeMismatch(t *testing.T) {
	ordered := NewOrdered()
	ordered.AddTerm(1, 2)
	hashed := NewHashed()
	hashed.AddTerm(1, 2)

	sum, err := ordered.Add(hashed)
	require.ErrorIs(t, err, ErrTypeMismatch)
	require.Nil(t, sum)

	sum, err = hashed.Add(ordered)
	require.ErrorIs(t, err, ErrTypeMismatch)
	require.Nil(t, sum)
}

func TestEqualAcrossStores(t *testing.T) {
	a, err := ParseOrdered(scenario)
	require.NoError(t, err)
	b, err := ParseHashed(scenario)
	require.NoError(t, err)

	require.True(t, Equal(a, b))

	b.AddTerm(1, 100)
	require.False(t, Equal(a, b))
}

func TestDigest(t *testing.T) {
	a, err := ParseOrdered(scenario)
	require.NoError(t, err)
	b, err := ParseHashed(scenario)
	require.NoError(t, err)

	da, err := Digest(a)
	require.NoError(t, err)
	db, err := Digest(b)
	require.NoError(t, err)
	require.Equal(t, da, db)

	b.AddTerm(1, 100)
	db, err = Digest(b)
	require.NoError(t, err)
	require.NotEqual(t, da, db)
}

func TestCopyNew(t *testing.T) {
	t.Run("Ordered", func(t *testing.T) {
		p, err := ParseOrdered(scenario)
		require.NoError(t, err)

		q := p.CopyNew()
		require.True(t, Equal(p, q))

		q.AddTerm(1, 100)
		require.False(t, Equal(p, q))
		require.Equal(t, 0.0, p.Coefficient(100))
	})

	t.Run("Hashed", func(t *testing.T) {
		p, err := ParseHashed(scenario)
		require.NoError(t, err)

		q := p.CopyNew()
		require.True(t, Equal(p, q))

		q.AddTerm(1, 100)
		require.False(t, Equal(p, q))
		require.Equal(t, 0.0, p.Coefficient(100))
	})
}

func TestOrderedInvariant(t *testing.T) {
	prng, err := sampling.NewKeyedPRNG(testKey)
	require.NoError(t, err)

	p := NewOrdered()
	for i := 0; i < 512; i++ {
		p.AddTerm(sampling.RandFloat64(prng, -10, 10), sampling.RandInt(prng, 64))

		for j := 1; j < len(p.terms); j++ {
			require.Less(t, p.terms[j-1].Exponent, p.terms[j].Exponent)
		}
	}
}

func TestOrderedString(t *testing.T) {
	p, err := ParseOrdered(scenario)
	require.NoError(t, err)
	require.Equal(t, "40x^9 + 2.1x^8 + 3x^1 + 1", p.String())
}

func TestSerializationStream(t *testing.T) {
	for _, s := range strategies {
		s := s

		t.Run(s.name, func(t *testing.T) {
			p, err := s.parse(scenario)
			require.NoError(t, err)

			w := new(bytes.Buffer)
			n, err := p.(io.WriterTo).WriteTo(w)
			require.NoError(t, err)
			require.Equal(t, int64(w.Len()), n)

			q := s.new()
			m, err := q.(io.ReaderFrom).ReadFrom(bytes.NewReader(w.Bytes()))
			require.NoError(t, err)
			require.Equal(t, n, m)
			require.True(t, Equal(p, q))
		})
	}
}

func randomStore(prng sampling.PRNG, p TermStore, n int) TermStore {
	for i := 0; i < n; i++ {
		p.AddTerm(sampling.RandFloat64(prng, -10, 10), sampling.RandInt(prng, 32))
	}
	return p
}

func ExampleParseOrdered() {
	p, err := ParseOrdered(scenario)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Println(p)
	fmt.Println(p.Coefficient(9))
	// Output:
	// 40x^9 + 2.1x^8 + 3x^1 + 1
	// 40
}
