// SPDX-License-Identifier: MIT
// Package: mindeg/builder
//
// impl_wheel.go - implementation of Wheel(n) constructor.
//
// Contract:
//   - n ≥ 4 (else ErrTooFewVertices).
//   - Rim cycle over base+0..base+n-2, hub base+n-1; rim edges first, then
//     spokes in increasing rim order.
//
// Complexity:
//   - Time: O(n). Space: O(1) extra.

package builder

// Wheel returns a Constructor that builds a rim of n-1 vertices plus a hub.
func Wheel(n int) Constructor {
	return func(s *sketch, _ builderConfig) error {
		if err := validateMin(MethodWheel, "n", n, MinWheelNodes); err != nil {
			return err
		}
		base := s.grow(n)
		rim, hub := n-1, base+n-1
		for i := 0; i < rim; i++ {
			s.link(base+i, base+(i+1)%rim)
		}
		for i := 0; i < rim; i++ {
			s.link(hub, base+i)
		}

		return nil
	}
}
