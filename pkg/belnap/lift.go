package belnap

// BinaryOp is a binary operator over the base 4-valued domain.
type BinaryOp func(a, b Truth) Truth

// UnaryOp is a unary operator over the base 4-valued domain.
type UnaryOp func(a Truth) Truth

// LiftBinary extends a base binary operator to the 15-valued domain by
// possible-worlds semantics: op is applied to every combination of a
// possible value of x with a possible value of y, and the set of reachable
// results is canonicalized. A total base operator over non-empty operands
// always yields a non-empty result, so the canonicalization cannot fail.
//
// Method expressions supply the base operators directly, e.g.
// LiftBinary(Truth.And, x, y). The precomputed tables behind the Extended
// operators are exhaustive applications of this function; calling it
// directly costs at most 16 base operations and is only needed for
// operators the tables do not cover.
func LiftBinary(op BinaryOp, x, y Extended) Extended {
	var result TruthSet
	x.Set().IterateValues(func(a Truth) {
		y.Set().IterateValues(func(b Truth) {
			result = result.Add(op(a, b))
		})
	})
	return Canonicalize(result)
}

// LiftUnary extends a base unary operator to the 15-valued domain: the
// result is the set of images of the possible values of x.
func LiftUnary(op UnaryOp, x Extended) Extended {
	var result TruthSet
	x.Set().IterateValues(func(a Truth) {
		result = result.Add(op(a))
	})
	return Canonicalize(result)
}
