package belnap

// Truth is a truth value in Belnap's 4-valued logic.
//
// The declaration order (Neither, False, True, Both) is the canonical
// element order of the logic: membership vectors, canonical display
// patterns, and the generated operation tables all depend on it.
type Truth uint8

const (
	// Neither marks propositions to which no classical truth value can be
	// assigned, typically because they are ill-formed or self-contradictory.
	Neither Truth = iota
	False
	True
	// Both marks propositions that hold True and False in superposition,
	// such as propositions independent of the current set of axioms.
	Both
)

// String returns the name of the truth value.
func (t Truth) String() string {
	switch t {
	case Neither:
		return "Neither"
	case False:
		return "False"
	case True:
		return "True"
	case Both:
		return "Both"
	}
	return "Invalid"
}

// And returns the 4-valued conjunction of t and other.
// False dominates; the conflicting pair Neither/Both collapses to False;
// then Neither dominates, then Both. Commutative and total.
func (t Truth) And(other Truth) Truth {
	switch {
	case t == False || other == False:
		return False
	case t == Neither && other == Both, t == Both && other == Neither:
		return False
	case t == Neither || other == Neither:
		return Neither
	case t == Both || other == Both:
		return Both
	default:
		return True
	}
}

// Or returns the 4-valued disjunction of t and other.
// True dominates; the conflicting pair Neither/Both collapses to True;
// then Both dominates, then Neither. Commutative and total.
func (t Truth) Or(other Truth) Truth {
	switch {
	case t == True || other == True:
		return True
	case t == Neither && other == Both, t == Both && other == Neither:
		return True
	case t == Both || other == Both:
		return Both
	case t == Neither || other == Neither:
		return Neither
	default:
		return False
	}
}

// Not returns the self-dual negation: True and False swap, Neither and Both
// are fixed points. Not is an involution.
func (t Truth) Not() Truth {
	switch t {
	case False:
		return True
	case True:
		return False
	}
	return t
}

// Xor returns the exclusive disjunction of t and other.
//
// XOR does not generalize uniquely to the 4-valued logic: the classically
// equivalent propositions (a OR b) AND NOT (a AND b) and
// (a AND NOT b) OR (NOT a AND b) have different 4-valued tables. This
// implementation uses the latter, which is closer to the natural-language
// reading of "exclusive or".
func (t Truth) Xor(other Truth) Truth {
	return t.And(other.Not()).Or(t.Not().And(other))
}

// Superposition merges two independent pieces of evidence about the same
// proposition. Neither (no evidence) is the identity, Both absorbs, and
// conflicting True/False evidence yields Both: the combined evidence now
// supports both classical values at once.
func (t Truth) Superposition(other Truth) Truth {
	switch {
	case t == Both || other == Both:
		return Both
	case t == True && other == False, t == False && other == True:
		return Both
	case t == True || other == True:
		return True
	case t == False || other == False:
		return False
	default:
		return Neither
	}
}

// Annihilation is the dual merge operator, used to detect contradictions.
// Both is the identity, Neither absorbs, and conflicting True/False values
// cancel to Neither. Matching values reinforce each other.
func (t Truth) Annihilation(other Truth) Truth {
	switch {
	case t == Neither || other == Neither:
		return Neither
	case t == True && other == False, t == False && other == True:
		return Neither
	case t == False || other == False:
		return False
	case t == True || other == True:
		return True
	default:
		return Both
	}
}

// Eq is the classical equality test expressed inside the logic: it returns
// True when t and other are the same truth value and False otherwise. The
// lifted form over Extended values is where it becomes interesting, since
// equality of uncertain values may itself be uncertain.
func (t Truth) Eq(other Truth) Truth {
	if t == other {
		return True
	}
	return False
}

// TruthFromBool converts a classical boolean to its Belnap value.
func TruthFromBool(b bool) Truth {
	if b {
		return True
	}
	return False
}

// Bool reports the classical boolean for t. The second return value is
// false when t is Neither or Both, which have no classical counterpart.
func (t Truth) Bool() (bool, bool) {
	switch t {
	case False:
		return false, true
	case True:
		return true, true
	}
	return false, false
}

// Ternary converts t to the 3-valued domain. The second return value is
// false when t is Neither or Both, which the 3-valued logic cannot express.
func (t Truth) Ternary() (Ternary, bool) {
	switch t {
	case False:
		return TernaryFalse, true
	case True:
		return TernaryTrue, true
	}
	return TernaryUnknown, false
}
