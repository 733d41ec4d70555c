package belnap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLiftBinaryWorkedExample walks the possible-worlds derivation spelled
// out in the package documentation: conjoining "could be Neither or False"
// with "could be True or Both" reaches and(N,T)=N, and(N,B)=F, and(F,T)=F,
// and(F,B)=F, so the result could be Neither or False.
func TestLiftBinaryWorkedExample(t *testing.T) {
	got := LiftBinary(Truth.And, UnknownNF.Extended(), UnknownTB.Extended())
	assert.Equal(t, UnknownNF.Extended(), got)
}

func TestLiftBinarySingletonsMatchBase(t *testing.T) {
	ops := []BinaryOp{
		Truth.And, Truth.Or, Truth.Xor,
		Truth.Superposition, Truth.Annihilation, Truth.Eq,
	}
	for _, op := range ops {
		for _, a := range allTruths {
			for _, b := range allTruths {
				want := Known(op(a, b))
				assert.Equal(t, want, LiftBinary(op, Known(a), Known(b)))
			}
		}
	}
}

// TestLiftBinaryClosure checks that lifting a total operator over any pair
// of 15-valued operands yields a valid 15-valued result whose possible
// values are all reachable outcomes.
func TestLiftBinaryClosure(t *testing.T) {
	for _, x := range AllExtended {
		for _, y := range AllExtended {
			got := LiftBinary(Truth.And, x, y)
			require.False(t, got.Set().IsEmpty())

			// Every member of the result is the image of some world pair.
			got.Set().IterateValues(func(r Truth) {
				found := false
				x.Set().IterateValues(func(a Truth) {
					y.Set().IterateValues(func(b Truth) {
						if a.And(b) == r {
							found = true
						}
					})
				})
				assert.True(t, found, "unreachable result %v in lift(%v, %v)", r, x, y)
			})
		}
	}
}

func TestLiftUnaryNot(t *testing.T) {
	for _, x := range AllExtended {
		got := LiftUnary(Truth.Not, x)
		assert.Equal(t, x.Set().Count(), got.Set().Count(),
			"negation permutes the base values, preserving cardinality")
		assert.Equal(t, x, LiftUnary(Truth.Not, got), "involution at %v", x)
	}

	assert.Equal(t, UnknownNT.Extended(), LiftUnary(Truth.Not, UnknownNF.Extended()))
	assert.Equal(t, Known(False), LiftUnary(Truth.Not, Known(True)))
}
