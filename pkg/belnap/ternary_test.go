package belnap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allTernaries = []Ternary{TernaryFalse, TernaryTrue, TernaryUnknown}

// ternaryGrid asserts a full 3x3 operation table, indexed [a][b] in
// declaration order (False, True, Unknown).
func ternaryGrid(t *testing.T, op func(a, b Ternary) Ternary, want [3][3]Ternary) {
	t.Helper()
	for _, a := range allTernaries {
		for _, b := range allTernaries {
			assert.Equal(t, want[a][b], op(a, b), "op(%v, %v)", a, b)
		}
	}
}

func TestTernaryAnd(t *testing.T) {
	ternaryGrid(t, Ternary.And, [3][3]Ternary{
		{TernaryFalse, TernaryFalse, TernaryFalse},
		{TernaryFalse, TernaryTrue, TernaryUnknown},
		{TernaryFalse, TernaryUnknown, TernaryUnknown},
	})
}

func TestTernaryOr(t *testing.T) {
	ternaryGrid(t, Ternary.Or, [3][3]Ternary{
		{TernaryFalse, TernaryTrue, TernaryUnknown},
		{TernaryTrue, TernaryTrue, TernaryTrue},
		{TernaryUnknown, TernaryTrue, TernaryUnknown},
	})
}

func TestTernaryXor(t *testing.T) {
	// XOR never short-circuits: a single known operand cannot force the
	// result, so Unknown always dominates.
	ternaryGrid(t, Ternary.Xor, [3][3]Ternary{
		{TernaryFalse, TernaryTrue, TernaryUnknown},
		{TernaryTrue, TernaryFalse, TernaryUnknown},
		{TernaryUnknown, TernaryUnknown, TernaryUnknown},
	})
}

func TestTernaryEq(t *testing.T) {
	ternaryGrid(t, Ternary.Eq, [3][3]Ternary{
		{TernaryTrue, TernaryFalse, TernaryUnknown},
		{TernaryFalse, TernaryTrue, TernaryUnknown},
		{TernaryUnknown, TernaryUnknown, TernaryUnknown},
	})
}

func TestTernaryNot(t *testing.T) {
	assert.Equal(t, TernaryTrue, TernaryFalse.Not())
	assert.Equal(t, TernaryFalse, TernaryTrue.Not())
	assert.Equal(t, TernaryUnknown, TernaryUnknown.Not())

	for _, a := range allTernaries {
		assert.Equal(t, a, a.Not().Not(), "Not is an involution at %v", a)
	}
}

func TestTernaryCommutativity(t *testing.T) {
	ops := map[string]func(a, b Ternary) Ternary{
		"And": Ternary.And,
		"Or":  Ternary.Or,
		"Xor": Ternary.Xor,
		"Eq":  Ternary.Eq,
	}
	for name, op := range ops {
		for _, a := range allTernaries {
			for _, b := range allTernaries {
				assert.Equal(t, op(b, a), op(a, b), "%s(%v, %v)", name, a, b)
			}
		}
	}
}

func TestTernaryIsUnknown(t *testing.T) {
	assert.False(t, TernaryFalse.IsUnknown())
	assert.False(t, TernaryTrue.IsUnknown())
	assert.True(t, TernaryUnknown.IsUnknown())
}

func TestTernaryFromBool(t *testing.T) {
	assert.Equal(t, TernaryFalse, TernaryFromBool(false))
	assert.Equal(t, TernaryTrue, TernaryFromBool(true))
}

func TestTernaryBool(t *testing.T) {
	got, ok := TernaryFalse.Bool()
	require.True(t, ok)
	assert.False(t, got)

	got, ok = TernaryTrue.Bool()
	require.True(t, ok)
	assert.True(t, got)

	_, ok = TernaryUnknown.Bool()
	assert.False(t, ok)
}

func TestTernaryTruth(t *testing.T) {
	got, ok := TernaryFalse.Truth()
	require.True(t, ok)
	assert.Equal(t, False, got)

	got, ok = TernaryTrue.Truth()
	require.True(t, ok)
	assert.Equal(t, True, got)

	_, ok = TernaryUnknown.Truth()
	assert.False(t, ok)
}

func TestTernaryExtended(t *testing.T) {
	assert.Equal(t, Known(False), TernaryFalse.Extended())
	assert.Equal(t, Known(True), TernaryTrue.Extended())
	assert.Equal(t, UnknownFT.Extended(), TernaryUnknown.Extended())
}

func TestTernaryString(t *testing.T) {
	assert.Equal(t, "False", TernaryFalse.String())
	assert.Equal(t, "True", TernaryTrue.String())
	assert.Equal(t, "Unknown", TernaryUnknown.String())
	assert.Equal(t, "Invalid", Ternary(9).String())
}
