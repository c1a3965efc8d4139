package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProjection(t *testing.T) {

	p, err := NewProjection(9, " v")
	require.NoError(t, err)
	assert.Equal(t, 9, p.Zone)
	assert.Equal(t, "V", p.Band)
	assert.Equal(t, "+proj=utm +zone=9V +ellps=WGS84 +datum=WGS84 +units=m", p.String())

	for _, tc := range []struct {
		zone int
		band string
	}{
		{0, "V"},
		{61, "V"},
		{9, ""},
		{9, "I"},
		{9, "O"},
		{9, "VW"},
	} {
		_, err := NewProjection(tc.zone, tc.band)
		assert.Error(t, err, "zone %d band %q", tc.zone, tc.band)
	}
}

func TestProjection_Inverse(t *testing.T) {

	p, err := NewProjection(9, "V")
	require.NoError(t, err)

	//the central meridian of zone 9 is 129W
	lat, lon, err := p.Inverse(500000, 6350000)
	require.NoError(t, err)
	assert.InDelta(t, -129.0, lon, 1e-6)
	assert.True(t, lat > 57 && lat < 58, "lat %v", lat)

	//west of the central meridian
	_, west, err := p.Inverse(450000, 6350000)
	require.NoError(t, err)
	assert.Less(t, west, lon)
}
