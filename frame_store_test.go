package reorderable

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrameStoreDropsUnusedEntries(t *testing.T) {
	s := NewFrameStore[int]()
	s.Advance(1)
	*s.Get(1, 10) += 5
	s.Get(2, 20)

	s.Advance(2)
	assert.Equal(t, 15, *s.Get(1, 0), "state survives while used")
	assert.Equal(t, 2, s.Len())

	s.Advance(3)
	assert.Equal(t, 1, s.Len(), "entry 2 was not used in frame 2")
	assert.Nil(t, s.GetIfExists(2))
	assert.NotNil(t, s.GetIfExists(1))

	s.Advance(4)
	assert.Zero(t, s.Len(), "GetIfExists does not keep an entry alive")
}
