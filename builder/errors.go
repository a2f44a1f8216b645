// SPDX-License-Identifier: MIT
// Package: mindeg/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using `%w`.
//   • Constructors MUST NOT panic at runtime; validation panics are confined
//     to option constructor functions (WithX...).

package builder

import "errors"

// ErrTooFewVertices indicates that a numeric parameter (e.g., n, rows, cols, degree)
// is smaller than the allowed minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates that a probability value is outside the
// closed interval [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires a non-nil
// *rand.Rand in the resolved builderConfig (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that the builder exhausted permitted strategies
// or attempts (e.g., stub-matching retries for RandomRegular) or produced a
// sketch the CSR layer rejected.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrBadWeight indicates a vertex weight generator returned a weight below 1.
var ErrBadWeight = errors.New("builder: vertex weight must be >= 1")

// --- Implementation Notes ----------------------------------------------------
//
// Priority (tie-break guidance when multiple validations fail):
//   • ErrTooFewVertices     - size/domain checks first (n, rows, cols, degree).
//   • ErrInvalidProbability - then probability ranges.
//   • ErrNeedRandSource     - then RNG presence for stochastic builders.
//   • ErrConstructFailed    - only after all retries/strategies are exhausted.
//   • ErrBadWeight          - reported while freezing the sketch.
