// SPDX-License-Identifier: MIT
// Package: mindeg/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   - n ≥ 1; every unordered pair {i,j}, i<j, in lexicographic order.
//   - Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   - Time: O(n²). Space: O(1) extra.

package builder

// Complete returns a Constructor that builds the complete graph K_n.
func Complete(n int) Constructor {
	return func(s *sketch, _ builderConfig) error {
		if err := validateMin(MethodComplete, "n", n, MinCompleteNodes); err != nil {
			return err
		}
		base := s.grow(n)
		addCompleteEdges(s, base, n)

		return nil
	}
}
