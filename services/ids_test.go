package services

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllocateIDNeverRepeats(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	existing := make(map[uint32]struct{})

	for i := 0; i < 5000; i++ {
		id := AllocateID(rng, existing)
		_, taken := existing[id]
		assert.False(t, taken, "allocated id %d twice", id)
		existing[id] = struct{}{}
	}
}

func TestAllocateIDRetriesOnCollision(t *testing.T) {
	// Two identically seeded sources draw the same first value; pre-occupying
	// it forces the allocator through its retry path.
	first := uint32(rand.New(rand.NewSource(7)).Int63())
	existing := map[uint32]struct{}{first: {}}

	id := AllocateID(rand.New(rand.NewSource(7)), existing)
	assert.NotEqual(t, first, id)
}

func TestAllocateIDDeterministicForSeed(t *testing.T) {
	a := AllocateID(rand.New(rand.NewSource(99)), nil)
	b := AllocateID(rand.New(rand.NewSource(99)), nil)
	assert.Equal(t, a, b)
}
