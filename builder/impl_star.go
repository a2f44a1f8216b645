// SPDX-License-Identifier: MIT
// Package: mindeg/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2; hub is base+0, leaves base+1..base+n-1, spokes in increasing
//     leaf order.
//   - Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   - Time: O(n). Space: O(1) extra.

package builder

// Star returns a Constructor that builds a star with one hub and n-1 leaves.
func Star(n int) Constructor {
	return func(s *sketch, _ builderConfig) error {
		if err := validateMin(MethodStar, "n", n, MinStarNodes); err != nil {
			return err
		}
		hub := s.grow(n)
		for i := 1; i < n; i++ {
			s.link(hub, hub+i)
		}

		return nil
	}
}
