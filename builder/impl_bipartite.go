// SPDX-License-Identifier: MIT
// Package: mindeg/builder
//
// impl_bipartite.go - implementation of CompleteBipartite(n1, n2) constructor.
//
// Contract:
//   - n1, n2 ≥ 1 (else ErrTooFewVertices).
//   - Left side base..base+n1-1, right side right after it; every left-right
//     pair is emitted, left index major.
//
// Complexity:
//   - Time: O(n1·n2). Space: O(1) extra.

package builder

// CompleteBipartite returns a Constructor that builds K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(s *sketch, _ builderConfig) error {
		if err := validateMin(MethodCompleteBipartite, "n1", n1, MinPartition); err != nil {
			return err
		}
		if err := validateMin(MethodCompleteBipartite, "n2", n2, MinPartition); err != nil {
			return err
		}
		left := s.grow(n1 + n2)
		right := left + n1
		for i := 0; i < n1; i++ {
			for j := 0; j < n2; j++ {
				s.link(left+i, right+j)
			}
		}

		return nil
	}
}
