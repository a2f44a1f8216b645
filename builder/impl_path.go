// SPDX-License-Identifier: MIT
// Package: mindeg/builder
//
// impl_path.go - implementation of Path(n) and Isolated(n).
//
// Contract:
//   - Path: n ≥ 2, edges (i-1)-i for i=1..n-1 in increasing order.
//   - Isolated: n ≥ 1, vertices only.
//   - Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   - Time: O(n). Space: O(1) extra.

package builder

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(s *sketch, _ builderConfig) error {
		if err := validateMin(MethodPath, "n", n, MinPathNodes); err != nil {
			return err
		}
		base := s.grow(n)
		for i := 1; i < n; i++ {
			s.link(base+i-1, base+i)
		}

		return nil
	}
}

// Isolated returns a Constructor that adds n vertices without edges.
func Isolated(n int) Constructor {
	return func(s *sketch, _ builderConfig) error {
		if err := validateMin(MethodIsolated, "n", n, MinIsolatedNodes); err != nil {
			return err
		}
		s.grow(n)

		return nil
	}
}
