// SPDX-License-Identifier: MIT

package qgraph

import "fmt"

// Status tags the three states a vertex can be in.
type Status uint8

const (
	// Principal vertices are live entities: a variable (supernode) while not
	// eliminated, an element afterwards.
	Principal Status = iota

	// Absorbed vertices were merged into Link.To: a compressed supernode
	// member, or an element swallowed by a newer element.
	Absorbed

	// Outmatched vertices are live variables deferred until Link.To is
	// eliminated; their reachable set contains that of Link.To.
	Outmatched
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case Principal:
		return "principal"
	case Absorbed:
		return "absorbed"
	case Outmatched:
		return "outmatched"
	default:
		return fmt.Sprintf("Status(%d)", uint8(s))
	}
}

// Link is the tagged parent pointer of a vertex. To equals the vertex itself
// when Kind is Principal.
type Link struct {
	Kind Status
	To   int
}

// UpdateResult receives the output of Update. Both slices are truncated and
// refilled on every call so callers can reuse one value across the whole
// ordering.
type UpdateResult struct {
	// Updated lists principal variables whose external degree was recomputed;
	// read it back with ExternalDegree.
	Updated []int

	// Removed lists vertices that stopped being principal variables during the
	// update (compressed into another supernode, or outmatched).
	Removed []int
}

// Stats holds diagnostic counters. All counters are cumulative.
type Stats struct {
	Eliminations       int // successful EliminateSupernode calls
	Eliminated         int // vertices numbered so far (supernode members included)
	Compressions       int // supernodes merged into an indistinguishable one
	Outmatches         int // variables deferred plus elements absorbed by set difference
	ElementAbsorptions int // elements swallowed while forming a new element
	Defrags            int // store compactions
	Updates            int // successful Update calls
	StampResets        int // generation-marker wraparound clears
	MaxSpace           int // store capacity
	FreeSpace          int // first unused store slot
}
