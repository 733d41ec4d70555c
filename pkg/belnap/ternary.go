package belnap

// Ternary is a truth value in 3-valued logic: False, True, or Unknown.
//
// Unknown denotes subjective not-knowing — the proposition has one of the
// two classical truth values, the observer just cannot tell which. This is
// a different notion from the objective Neither/Both values of the 4-valued
// logic, and the Ternary algebra is independent of it.
//
// Implication connectives are deliberately not provided: they are where
// 3-valued systems (Kleene, RM3, Łukasiewicz) diverge from each other.
type Ternary uint8

const (
	TernaryFalse Ternary = iota
	TernaryTrue
	TernaryUnknown
)

// String returns the name of the ternary value.
func (t Ternary) String() string {
	switch t {
	case TernaryFalse:
		return "False"
	case TernaryTrue:
		return "True"
	case TernaryUnknown:
		return "Unknown"
	}
	return "Invalid"
}

// And returns the 3-valued conjunction. A False operand forces the result;
// otherwise any Unknown operand makes the result Unknown.
func (t Ternary) And(other Ternary) Ternary {
	switch {
	case t == TernaryFalse || other == TernaryFalse:
		return TernaryFalse
	case t == TernaryUnknown || other == TernaryUnknown:
		return TernaryUnknown
	default:
		return TernaryTrue
	}
}

// Or returns the 3-valued disjunction. A True operand forces the result;
// otherwise any Unknown operand makes the result Unknown.
func (t Ternary) Or(other Ternary) Ternary {
	switch {
	case t == TernaryTrue || other == TernaryTrue:
		return TernaryTrue
	case t == TernaryUnknown || other == TernaryUnknown:
		return TernaryUnknown
	default:
		return TernaryFalse
	}
}

// Xor returns the 3-valued exclusive disjunction. No single known operand
// can force an XOR result, so any Unknown operand makes the result Unknown.
func (t Ternary) Xor(other Ternary) Ternary {
	switch {
	case t == TernaryUnknown || other == TernaryUnknown:
		return TernaryUnknown
	case t == other:
		return TernaryFalse
	default:
		return TernaryTrue
	}
}

// Not swaps True and False and leaves Unknown unchanged.
func (t Ternary) Not() Ternary {
	switch t {
	case TernaryFalse:
		return TernaryTrue
	case TernaryTrue:
		return TernaryFalse
	}
	return TernaryUnknown
}

// Eq is the equality test expressed inside the logic: two equal known
// values are True, two distinct known values are False, and any Unknown
// operand makes the comparison Unknown.
func (t Ternary) Eq(other Ternary) Ternary {
	switch {
	case t == TernaryUnknown || other == TernaryUnknown:
		return TernaryUnknown
	case t == other:
		return TernaryTrue
	default:
		return TernaryFalse
	}
}

// IsUnknown reports whether t is the Unknown value.
func (t Ternary) IsUnknown() bool {
	return t == TernaryUnknown
}

// TernaryFromBool converts a classical boolean to its ternary value.
func TernaryFromBool(b bool) Ternary {
	if b {
		return TernaryTrue
	}
	return TernaryFalse
}

// Bool reports the classical boolean for t. The second return value is
// false when t is Unknown.
func (t Ternary) Bool() (bool, bool) {
	switch t {
	case TernaryFalse:
		return false, true
	case TernaryTrue:
		return true, true
	}
	return false, false
}

// Truth converts t to the 4-valued domain. The second return value is
// false when t is Unknown: subjective not-knowing is not an objective
// truth value (it maps to an Unknown set in the 15-valued domain instead,
// see Extended).
func (t Ternary) Truth() (Truth, bool) {
	switch t {
	case TernaryFalse:
		return False, true
	case TernaryTrue:
		return True, true
	}
	return Neither, false
}

// Extended converts t to the 15-valued domain. Known values map to
// themselves and Unknown maps to the {False, True} set: a classical
// proposition whose truth value we do not know.
func (t Ternary) Extended() Extended {
	switch t {
	case TernaryFalse:
		return Known(False)
	case TernaryTrue:
		return Known(True)
	}
	return UnknownFT.Extended()
}
