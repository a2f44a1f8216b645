// SPDX-License-Identifier: MIT

package builder

// addCompleteEdges connects every unordered pair of [base, base+n).
// Complexity: O(n²) time, O(1) extra space.
func addCompleteEdges(s *sketch, base, n int) {
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			s.link(base+i, base+j)
		}
	}
}
