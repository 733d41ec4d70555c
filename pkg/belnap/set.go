package belnap

import (
	"math/bits"
	"strings"
)

// TruthSet is a subset of the four Belnap truth values, represented as a
// 4-bit membership vector with one bit per value in canonical order
// (Neither, False, True, Both). The zero value is the empty set.
//
// TruthSet covers the full power set, including the empty set and the
// singletons; the Unknown and Extended types carve out the subsets that are
// meaningful as logic values. Sets are immutable values — operations return
// new sets — and can be compared with ==.
type TruthSet uint8

// truthSetAll is the full set {Neither, False, True, Both}.
const truthSetAll TruthSet = 0b1111

// NewTruthSet returns the set containing the given truth values.
func NewTruthSet(values ...Truth) TruthSet {
	var s TruthSet
	for _, v := range values {
		s = s.Add(v)
	}
	return s
}

// Has reports whether v is a member of the set.
func (s TruthSet) Has(v Truth) bool {
	return s&(1<<v) != 0
}

// Add returns a new set with v included.
func (s TruthSet) Add(v Truth) TruthSet {
	return s | 1<<v
}

// Union returns the set of values present in either set.
func (s TruthSet) Union(other TruthSet) TruthSet {
	return s | other
}

// Count returns the number of values in the set.
func (s TruthSet) Count() int {
	return bits.OnesCount8(uint8(s))
}

// IsEmpty reports whether the set has no members. An empty set never arises
// from lifting a total operator; reaching one indicates a defect in the
// operator definitions (see Canonicalize).
func (s TruthSet) IsEmpty() bool {
	return s == 0
}

// IsSingleton reports whether the set contains exactly one value.
// Singleton sets are exactly the known values of the 15-valued domain.
func (s TruthSet) IsSingleton() bool {
	return s.Count() == 1
}

// SingletonValue returns the single member of a singleton set.
func (s TruthSet) SingletonValue() Truth {
	if !s.IsSingleton() {
		panic("belnap: SingletonValue called on non-singleton truth set")
	}
	return Truth(bits.TrailingZeros8(uint8(s)))
}

// IsUnknown reports whether the set leaves the actual truth value uncertain,
// i.e. contains two or more values.
func (s TruthSet) IsUnknown() bool {
	return s.Count() >= 2
}

// CouldBeNeither reports whether Neither is a possible value.
func (s TruthSet) CouldBeNeither() bool { return s.Has(Neither) }

// CouldBeFalse reports whether False is a possible value.
func (s TruthSet) CouldBeFalse() bool { return s.Has(False) }

// CouldBeTrue reports whether True is a possible value.
func (s TruthSet) CouldBeTrue() bool { return s.Has(True) }

// CouldBeBoth reports whether Both is a possible value.
func (s TruthSet) CouldBeBoth() bool { return s.Has(Both) }

// IterateValues calls f for each member of the set in canonical order.
func (s TruthSet) IterateValues(f func(Truth)) {
	for v := Neither; v <= Both; v++ {
		if s.Has(v) {
			f(v)
		}
	}
}

// String returns the canonical 4-character membership pattern: one position
// per value in canonical order, the value's initial if present and '_' if
// absent. For example {Neither, False} is "NF__" and the full set is "NFTB".
// The 15 non-empty patterns are pairwise distinct and name the values of
// the 15-valued domain.
func (s TruthSet) String() string {
	const initials = "NFTB"
	var b strings.Builder
	for v := Neither; v <= Both; v++ {
		if s.Has(v) {
			b.WriteByte(initials[v])
		} else {
			b.WriteByte('_')
		}
	}
	return b.String()
}

// Unknown is one of the 11 named uncertainty values of the 15-valued logic:
// the subsets of the Belnap truth values with two or more members. It
// represents objective knowledge that the real truth value lies somewhere
// in the set, without knowing where.
//
// An Unknown is represented by its membership vector, so the constant names
// below spell out their members in canonical order and conversion to and
// from TruthSet is a bijection on the valid values.
type Unknown uint8

const (
	// UnknownNF could be Neither or False.
	UnknownNF Unknown = 1<<Neither | 1<<False
	// UnknownNT could be Neither or True.
	UnknownNT Unknown = 1<<Neither | 1<<True
	// UnknownFT could be False or True. This is the counterpart of the
	// 3-valued Unknown: a classical proposition with an unknown value.
	UnknownFT Unknown = 1<<False | 1<<True
	// UnknownNFT could be Neither, False or True.
	UnknownNFT Unknown = 1<<Neither | 1<<False | 1<<True
	// UnknownNB could be Neither or Both.
	UnknownNB Unknown = 1<<Neither | 1<<Both
	// UnknownFB could be False or Both.
	UnknownFB Unknown = 1<<False | 1<<Both
	// UnknownNFB could be Neither, False or Both.
	UnknownNFB Unknown = 1<<Neither | 1<<False | 1<<Both
	// UnknownTB could be True or Both.
	UnknownTB Unknown = 1<<True | 1<<Both
	// UnknownNTB could be Neither, True or Both.
	UnknownNTB Unknown = 1<<Neither | 1<<True | 1<<Both
	// UnknownFTB could be False, True or Both.
	UnknownFTB Unknown = 1<<False | 1<<True | 1<<Both
	// UnknownNFTB could be any of the four truth values: total ignorance.
	UnknownNFTB Unknown = 1<<Neither | 1<<False | 1<<True | 1<<Both
)

// AllUnknowns lists the 11 Unknown values in canonical vector order.
// The slice must not be modified.
var AllUnknowns = []Unknown{
	UnknownNF, UnknownNT, UnknownFT, UnknownNFT,
	UnknownNB, UnknownFB, UnknownNFB,
	UnknownTB, UnknownNTB, UnknownFTB, UnknownNFTB,
}

// UnknownFromSet returns the Unknown naming the given set. The second
// return value is false when s is empty or a singleton, which are not
// uncertainty values.
func UnknownFromSet(s TruthSet) (Unknown, bool) {
	if s.Count() < 2 {
		return 0, false
	}
	return Unknown(s), true
}

// Set returns the membership vector of u.
func (u Unknown) Set() TruthSet {
	return TruthSet(u)
}

// Extended embeds u into the 15-valued domain.
func (u Unknown) Extended() Extended {
	return Extended(u)
}

// Not returns the negation of u. Negation permutes the base values, so it
// maps uncertainty sets to uncertainty sets of the same size.
func (u Unknown) Not() Unknown {
	return Unknown(notTable[u])
}

// CouldBeNeither reports whether Neither is a possible value.
func (u Unknown) CouldBeNeither() bool { return u.Set().Has(Neither) }

// CouldBeFalse reports whether False is a possible value.
func (u Unknown) CouldBeFalse() bool { return u.Set().Has(False) }

// CouldBeTrue reports whether True is a possible value.
func (u Unknown) CouldBeTrue() bool { return u.Set().Has(True) }

// CouldBeBoth reports whether Both is a possible value.
func (u Unknown) CouldBeBoth() bool { return u.Set().Has(Both) }

// String returns the canonical membership pattern of u, e.g. "NF__".
func (u Unknown) String() string {
	return u.Set().String()
}

// Canonicalize reduces a non-empty set of possible truth values to its
// unique 15-valued representative: singletons collapse to the known value,
// larger sets become the Unknown naming them.
//
// Canonicalize panics on the empty set. The base operators are total, so a
// correctly lifted operation can never produce an empty set; reaching one
// is a programmer error in an operator definition, not a runtime condition
// callers can cause or handle.
func Canonicalize(s TruthSet) Extended {
	if s.IsEmpty() {
		panic("belnap: cannot canonicalize the empty truth set")
	}
	return Extended(s)
}
