package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_KeySet_Copy_isIndependent(t *testing.T) {
	s := KeySetOf([]int{1, 2, 3})
	cp := s.Copy()
	cp.Add(4)

	assert.False(t, s.Has(4), "mutating a copy must not affect the original")
	assert.True(t, cp.Has(4))
}

func Test_KeySet_SetOps(t *testing.T) {
	a := KeySetOf([]string{"a", "b", "c"})
	b := KeySetOf([]string{"b", "c", "d"})

	assert.True(t, a.Union(b).Equal(KeySetOf([]string{"a", "b", "c", "d"})))
	assert.True(t, a.Intersection(b).Equal(KeySetOf([]string{"b", "c"})))
	assert.True(t, a.Difference(b).Equal(KeySetOf([]string{"a"})))
	assert.False(t, a.DisjointWith(b))
	assert.True(t, KeySetOf([]string{"x"}).DisjointWith(KeySetOf([]string{"y"})))
}

func Test_KeySet_Empty(t *testing.T) {
	assert.True(t, NewKeySet[int]().Empty())
	assert.False(t, KeySetOf([]int{1}).Empty())
}
