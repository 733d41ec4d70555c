// Package belnap provides value types and total operations for
// multiple-valued logics: a 3-valued logic of subjective knowledge, Belnap's
// 4-valued logic, and a 15-valued extension combining the two.
//
// The package is a building-block library, not an inference engine. It
// defines the truth values themselves and the algebraic operations over
// them; it does not parse formulas, prove theorems, or weight uncertainty
// probabilistically.
//
// # 3-valued logic
//
// Ternary adds an Unknown value to classical True and False. Unknown here
// expresses subjective not-knowing: the proposition has a classical truth
// value, we just do not know which one. The operators use the standard
// don't-know semantics — a known operand that forces the result regardless
// of the other operand decides it, otherwise the result is Unknown.
//
// # Belnap's 4-valued logic
//
// Truth extends classical logic with Neither (no classical truth value can
// be assigned, as with ill-formed or self-contradictory propositions) and
// Both (a superposition of True and False, as with propositions independent
// of the current axioms). Besides And, Or, Xor and Not, two merge operators
// are provided: Superposition combines independent evidence (Neither is
// neutral, Both absorbs) and Annihilation detects contradictions (Both is
// neutral, Neither absorbs).
//
// # 15-valued extended logic
//
// Once there are four objective truth values, ignorance is no longer a
// single extra value: an observer may know only that the real value lies in
// some subset of the four. Extended represents every non-empty subset of
// the Belnap values — the four singletons are the known values, and the
// remaining eleven subsets are the named Unknown values. Operators extend
// to these sets by possible-worlds semantics: apply the base operator to
// every combination of possible operand values and collect the possible
// results. All 15x15 operator tables are precomputed (see tables.go), so
// every operation on Extended is a constant-time lookup.
package belnap

//go:generate go run github.com/gitrdm/gobelnap/cmd/gen-tables -o tables.go
