package images

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllocate_NeverZero(t *testing.T) {
	for i := 0; i < 1000; i++ {
		assert.NotZero(t, Allocate())
	}
}

func TestAllocate_ProducesDistinctIdsAcrossCalls(t *testing.T) {
	seen := make(map[uint32]bool)
	for i := 0; i < 100; i++ {
		seen[Allocate()] = true
	}
	assert.Greater(t, len(seen), 90)
}
