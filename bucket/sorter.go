// SPDX-License-Identifier: MIT

package bucket

// None is the sentinel returned when a bucket is empty, an item has no
// successor or an item is not stored.
const None = -1

// Sorter groups items into buckets.
type Sorter struct {
	head   []int // bucket -> first item or None
	next   []int // item -> successor or None
	prev   []int // item -> predecessor or None
	bucket []int // item -> bucket or None
	size   int   // number of stored items
}

// New allocates a Sorter for items [0,nItems) and buckets [0,nBuckets).
// Panics when nBuckets < 1 or nItems < 0 (programmer error).
//
// Complexity: O(nItems + nBuckets).
func New(nItems, nBuckets int) *Sorter {
	if nItems < 0 {
		panic("bucket: New(nItems<0)")
	}
	if nBuckets < 1 {
		panic("bucket: New(nBuckets<1)")
	}
	s := &Sorter{
		head:   make([]int, nBuckets),
		next:   make([]int, nItems),
		prev:   make([]int, nItems),
		bucket: make([]int, nItems),
	}
	for b := range s.head {
		s.head[b] = None
	}
	for i := range s.bucket {
		s.next[i], s.prev[i], s.bucket[i] = None, None, None
	}

	return s
}

// NumBuckets returns the number of buckets.
func (s *Sorter) NumBuckets() int { return len(s.head) }

// NumItems returns the item capacity.
func (s *Sorter) NumItems() int { return len(s.bucket) }

// Len returns the number of stored items.
func (s *Sorter) Len() int { return s.size }

// Fold maps an arbitrary hash onto a bucket id in [0, NumBuckets()).
func (s *Sorter) Fold(hash int) int {
	b := hash % len(s.head)
	if b < 0 {
		b += len(s.head)
	}

	return b
}

// Insert stores item in the bucket Fold(hash), at the bucket head.
// An item already stored elsewhere is moved. O(1).
func (s *Sorter) Insert(hash, item int) {
	if s.bucket[item] != None {
		s.Remove(item)
	}
	b := s.Fold(hash)
	first := s.head[b]
	s.next[item] = first
	s.prev[item] = None
	if first != None {
		s.prev[first] = item
	}
	s.head[b] = item
	s.bucket[item] = b
	s.size++
}

// Remove unlinks item from its bucket; a no-op when item is not stored.
// The forward link of item is preserved so an iteration positioned on item
// can continue with Next. O(1).
func (s *Sorter) Remove(item int) {
	b := s.bucket[item]
	if b == None {
		return
	}
	p, nx := s.prev[item], s.next[item]
	if p != None {
		s.next[p] = nx
	} else {
		s.head[b] = nx
	}
	if nx != None {
		s.prev[nx] = p
	}
	s.prev[item] = None
	s.bucket[item] = None
	s.size--
}

// Bucket returns the bucket holding item, or None.
func (s *Sorter) Bucket(item int) int { return s.bucket[item] }

// Contains reports whether item is stored.
func (s *Sorter) Contains(item int) bool { return s.bucket[item] != None }

// First returns the head item of bucket b, or None.
func (s *Sorter) First(b int) int { return s.head[b] }

// Empty reports whether bucket b holds no items.
func (s *Sorter) Empty(b int) bool { return s.head[b] == None }

// Next returns the successor of item in its bucket, or None.
func (s *Sorter) Next(item int) int { return s.next[item] }

// Clear empties every bucket. O(nItems + nBuckets).
func (s *Sorter) Clear() {
	for b := range s.head {
		s.head[b] = None
	}
	for i := range s.bucket {
		s.next[i], s.prev[i], s.bucket[i] = None, None, None
	}
	s.size = 0
}
