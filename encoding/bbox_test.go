package encoding

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBbox(t *testing.T) {

	b, err := ParseBbox("-130.5, -129, 57,58.25")
	require.NoError(t, err)
	assert.Equal(t, orb.Point{-130.5, 57}, b.Min)
	assert.Equal(t, orb.Point{-129, 58.25}, b.Max)
	assert.True(t, b.Contains(orb.Point{-129.8, 57.3}))

	for _, bad := range []string{"", "1,2,3", "1,2,3,4,5", "a,2,3,4", "1,2,3,x", "-129,-130,57,58", "-130,-129,58,57"} {
		_, err := ParseBbox(bad)
		assert.Error(t, err, bad)
	}
}
