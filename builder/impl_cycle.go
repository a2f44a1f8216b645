// SPDX-License-Identifier: MIT
// Package: mindeg/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Emits (i-1)-i for i=1..n-1, then the closing edge (n-1)-0.
//
// Complexity:
//   - Time: O(n). Space: O(1) extra.

package builder

// Cycle returns a Constructor that builds a simple cycle C_n.
func Cycle(n int) Constructor {
	return func(s *sketch, _ builderConfig) error {
		if err := validateMin(MethodCycle, "n", n, MinCycleNodes); err != nil {
			return err
		}
		base := s.grow(n)
		for i := 1; i < n; i++ {
			s.link(base+i-1, base+i)
		}
		// Closing edge last keeps emission order stable.
		s.link(base+n-1, base)

		return nil
	}
}
