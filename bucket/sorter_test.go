package bucket_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mindeg/bucket"
)

// collect returns the items of bucket b in iteration order.
func collect(s *bucket.Sorter, b int) []int {
	var out []int
	for x := s.First(b); x != bucket.None; x = s.Next(x) {
		out = append(out, x)
	}

	return out
}

func TestSorter_InsertQuery(t *testing.T) {
	s := bucket.New(6, 4)
	s.Insert(1, 0)
	s.Insert(5, 2) // folds to bucket 1
	s.Insert(-3, 4)
	s.Insert(2, 3)

	assert.Equal(t, 4, s.Len())
	assert.Equal(t, 1, s.Bucket(0))
	assert.Equal(t, 1, s.Bucket(2))
	assert.Equal(t, 1, s.Bucket(4)) // -3 mod 4 == 1
	assert.Equal(t, 2, s.Bucket(3))
	assert.Equal(t, bucket.None, s.Bucket(5))
	assert.False(t, s.Contains(5))
	assert.True(t, s.Empty(0))
	assert.Equal(t, bucket.None, s.First(0))

	// head insertion: last inserted first
	assert.Equal(t, []int{4, 2, 0}, collect(s, 1))
}

func TestSorter_MoveBetweenBuckets(t *testing.T) {
	s := bucket.New(3, 3)
	s.Insert(0, 1)
	s.Insert(0, 2)
	s.Insert(2, 1) // move item 1 into bucket 2

	assert.Equal(t, 2, s.Len())
	assert.Equal(t, []int{2}, collect(s, 0))
	assert.Equal(t, []int{1}, collect(s, 2))
}

func TestSorter_RemoveCurrentDuringIteration(t *testing.T) {
	s := bucket.New(5, 1)
	for i := 0; i < 5; i++ {
		s.Insert(0, i)
	}
	// bucket order: 4 3 2 1 0; remove every item as it is visited
	var seen []int
	for x := s.First(0); x != bucket.None; x = s.Next(x) {
		seen = append(seen, x)
		s.Remove(x)
	}
	assert.Equal(t, []int{4, 3, 2, 1, 0}, seen)
	assert.Equal(t, 0, s.Len())
	assert.True(t, s.Empty(0))
}

func TestSorter_RemoveOtherDuringIteration(t *testing.T) {
	s := bucket.New(6, 1)
	for i := 0; i < 6; i++ {
		s.Insert(0, i)
	}
	// order: 5 4 3 2 1 0; when visiting 5 remove 3 and 4 (a merge), then keep going
	var seen []int
	for x := s.First(0); x != bucket.None; {
		nx := s.Next(x)
		seen = append(seen, x)
		if x == 5 {
			s.Remove(4)
			s.Remove(3)
			nx = s.Next(x)
		}
		s.Remove(x)
		x = nx
	}
	assert.Equal(t, []int{5, 2, 1, 0}, seen)
}

func TestSorter_RemoveAbsentIsNoop(t *testing.T) {
	s := bucket.New(2, 2)
	s.Remove(1)
	assert.Equal(t, 0, s.Len())
	s.Insert(0, 1)
	s.Remove(1)
	s.Remove(1)
	assert.Equal(t, 0, s.Len())
}

func TestSorter_Clear(t *testing.T) {
	s := bucket.New(4, 2)
	for i := 0; i < 4; i++ {
		s.Insert(i, i)
	}
	s.Clear()
	assert.Equal(t, 0, s.Len())
	for b := 0; b < s.NumBuckets(); b++ {
		assert.True(t, s.Empty(b))
	}
	require.Equal(t, 4, s.NumItems())
}

func TestSorter_PanicsOnBadShape(t *testing.T) {
	assert.Panics(t, func() { bucket.New(1, 0) })
	assert.Panics(t, func() { bucket.New(-1, 1) })
}
