package belnap

// Extended is a value of the 15-valued extended Belnap logic: either a
// known Belnap truth value or one of the 11 named Unknown sets.
//
// An Extended denotes the non-empty set of truth values the real value
// could be — Known values denote singletons, Unknowns denote their sets —
// and is represented directly by that set's membership vector. Values are
// immutable and compared with ==; the zero value is invalid (it would be
// the empty set, which no total operation can produce).
//
// All binary operators are constant-time lookups into tables generated from
// the base 4-valued algebra by possible-worlds lifting (see LiftBinary and
// cmd/gen-tables). The tables are plain read-only data, safe for
// unsynchronized concurrent use. Mixed operands are uniform: a Truth
// operand enters as Known(v), whose singleton row of the 15x15 table is the
// 4x15 mixed table.
type Extended uint8

// AllExtended lists the 15 values of the extended domain in canonical
// vector order. The slice must not be modified.
var AllExtended = []Extended{
	Known(Neither), Known(False), UnknownNF.Extended(), Known(True),
	UnknownNT.Extended(), UnknownFT.Extended(), UnknownNFT.Extended(),
	Known(Both), UnknownNB.Extended(), UnknownFB.Extended(),
	UnknownNFB.Extended(), UnknownTB.Extended(), UnknownNTB.Extended(),
	UnknownFTB.Extended(), UnknownNFTB.Extended(),
}

// Known returns the Extended value representing certain knowledge of t.
func Known(t Truth) Extended {
	return Extended(TruthSet(0).Add(t))
}

// IsKnown reports whether e is a known truth value.
func (e Extended) IsKnown() bool {
	return e.Set().IsSingleton()
}

// IsUnknown reports whether e is one of the Unknown values.
func (e Extended) IsUnknown() bool {
	return e.Set().IsUnknown()
}

// Set returns the set of truth values e could be.
func (e Extended) Set() TruthSet {
	return TruthSet(e)
}

// Truth returns the known truth value of e. The second return value is
// false when e is an Unknown.
func (e Extended) Truth() (Truth, bool) {
	if !e.IsKnown() {
		return Neither, false
	}
	return e.Set().SingletonValue(), true
}

// Unknown returns the uncertainty value of e. The second return value is
// false when e is a known value.
func (e Extended) Unknown() (Unknown, bool) {
	return UnknownFromSet(e.Set())
}

// And returns the 15-valued conjunction of e and other.
func (e Extended) And(other Extended) Extended {
	return andTable[e][other]
}

// Or returns the 15-valued disjunction of e and other.
func (e Extended) Or(other Extended) Extended {
	return orTable[e][other]
}

// Xor returns the 15-valued exclusive disjunction of e and other, the lift
// of the 4-valued Xor (see Truth.Xor for the choice of XOR reading).
func (e Extended) Xor(other Extended) Extended {
	return xorTable[e][other]
}

// Not returns the negation of e: the set of negations of its possible
// values. Not is an involution.
func (e Extended) Not() Extended {
	return notTable[e]
}

// Superposition merges two independent pieces of evidence under
// uncertainty. See Truth.Superposition for the base semantics.
func (e Extended) Superposition(other Extended) Extended {
	return superpositionTable[e][other]
}

// Annihilation merges two values contradiction-detectingly under
// uncertainty. See Truth.Annihilation for the base semantics.
func (e Extended) Annihilation(other Extended) Extended {
	return annihilationTable[e][other]
}

// Eq compares e and other inside the logic. Two values with no common
// possible truth value are certainly unequal (Known False); otherwise the
// comparison is itself uncertain and the result is an Unknown over
// {False, True} — except for two identical known values, which compare
// Known True.
func (e Extended) Eq(other Extended) Extended {
	return eqTable[e][other]
}

// CouldBeNeither reports whether Neither is a possible value of e.
func (e Extended) CouldBeNeither() bool { return e.Set().Has(Neither) }

// CouldBeFalse reports whether False is a possible value of e.
func (e Extended) CouldBeFalse() bool { return e.Set().Has(False) }

// CouldBeTrue reports whether True is a possible value of e.
func (e Extended) CouldBeTrue() bool { return e.Set().Has(True) }

// CouldBeBoth reports whether Both is a possible value of e.
func (e Extended) CouldBeBoth() bool { return e.Set().Has(Both) }

// ExtendedFromBool converts a classical boolean to a known Extended value.
func ExtendedFromBool(b bool) Extended {
	return Known(TruthFromBool(b))
}

// Bool reports the classical boolean for e. The second return value is
// false unless e is Known(False) or Known(True).
func (e Extended) Bool() (bool, bool) {
	t, ok := e.Truth()
	if !ok {
		return false, false
	}
	return t.Bool()
}

// Ternary converts e to the 3-valued domain. Only Known(False),
// Known(True) and the {False, True} Unknown have 3-valued counterparts;
// for every other value the second return value is false.
func (e Extended) Ternary() (Ternary, bool) {
	switch e {
	case Known(False):
		return TernaryFalse, true
	case Known(True):
		return TernaryTrue, true
	case UnknownFT.Extended():
		return TernaryUnknown, true
	}
	return TernaryUnknown, false
}

// String returns the canonical 4-character membership pattern of e,
// e.g. "__T_" for Known(True) and "NF__" for UnknownNF.
func (e Extended) String() string {
	return e.Set().String()
}
