// Package adjust implements the Adjuster: the fallback that forces any
// vertex the Matcher and ReserveMatcher could not place into its target
// modular class by mutating one random channel byte of one random
// sample directly, accepting the resulting visual cost.
//
// Unlike every earlier stage, the random draw here is not seeded by the
// embedding's deterministic permutation — the channel mutation reproduces
// the required mod class regardless of which sample or channel was
// picked, so extraction never needs to reproduce the Adjuster's choices.
package adjust
