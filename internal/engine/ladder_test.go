package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKHalvingRange(t *testing.T) {
	assert.Equal(t, []int{8, 4, 2}, KHalvingRange(8, 2))
	assert.Equal(t, []int{4, 2}, KHalvingRange(4, 2))
	assert.Equal(t, []int{2}, KHalvingRange(2, 2))
	assert.Equal(t, []int{16, 8, 4}, KHalvingRange(16, 3), "stops before dropping below the floor")
}

func TestKHalvingRange_NonPowerOfTwo(t *testing.T) {
	// Integer halving: 10 -> 5 -> 2.
	assert.Equal(t, []int{10, 5, 2}, KHalvingRange(10, 2))
	// 7 -> 3 stops at the floor of 3.
	assert.Equal(t, []int{7, 3}, KHalvingRange(7, 3))
}

func TestKHalvingRange_Degenerate(t *testing.T) {
	assert.Empty(t, KHalvingRange(1, 2), "max below min yields an empty ladder")
	assert.Empty(t, KHalvingRange(0, 2))
	assert.Equal(t, []int{5}, KHalvingRange(5, 4))
}
