package geometry

import (
	"math"
	"testing"

	"github.com/earthrise-media/drillviz/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-9

func assertVec(t *testing.T, want, got model.Vec3) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, eps, "x")
	assert.InDelta(t, want.Y, got.Y, eps, "y")
	assert.InDelta(t, want.Z, got.Z, eps, "z")
}

func testRow() *model.Row {
	return &model.Row{
		Hole:          "DDH-01",
		Easting:       452310,
		Northing:      6351870,
		Elevation:     1180,
		Azimuth:       135,
		Dip:           -55,
		Length:        240,
		Zone:          "Upper",
		IntervalStart: 60,
		IntervalEnd:   84.5,
		NiEq:          2.4,
		Over:          24.5,
	}
}

func testProjection(t *testing.T) *Projection {
	p, err := NewProjection(9, "V")
	require.NoError(t, err)
	return p
}

func TestRadians(t *testing.T) {
	assert.InDelta(t, math.Pi, Radians(180), eps)
	assert.InDelta(t, -math.Pi/2, Radians(-90), eps)
	assert.Equal(t, 0.0, Radians(0))
}

func TestStartPoint(t *testing.T) {
	assertVec(t, model.Vec3{X: 1000}, StartPoint(1000, 0, 0))
	assertVec(t, model.Vec3{Y: 1000}, StartPoint(1000, 0, math.Pi/2))
	assertVec(t, model.Vec3{Z: 1000}, StartPoint(1000, math.Pi/2, 0))
}

func TestDelta(t *testing.T) {
	//flat hole pointing north
	assertVec(t, model.Vec3{Y: 100}, Delta(100, 0, 0))
	//flat hole pointing east
	assertVec(t, model.Vec3{X: 100}, Delta(100, Radians(90), 0))
	//vertical hole
	assertVec(t, model.Vec3{Z: -100}, Delta(100, 0, Radians(-90)))
}

func TestDerive_FlatNorthHole(t *testing.T) {

	row := testRow()
	row.Azimuth = 0
	row.Dip = 0

	require.NoError(t, Derive(row, testProjection(t)))
	d := row.Derived
	require.NotNil(t, d)

	assertVec(t, d.HoleStart.Add(model.Vec3{Y: row.Length}), d.HoleEnd)
}

func TestDerive_IntervalsLieOnHole(t *testing.T) {

	row := testRow()
	require.NoError(t, Derive(row, testProjection(t)))
	d := row.Derived

	hole := d.HoleEnd.Sub(d.HoleStart)
	assertVec(t, d.HoleStart.Add(hole.Scale(row.IntervalStart/row.Length)), d.IntervalStart)
	assertVec(t, d.HoleStart.Add(hole.Scale(row.IntervalEnd/row.Length)), d.IntervalEnd)
}

func TestDerive_Radians(t *testing.T) {

	row := testRow()
	require.NoError(t, Derive(row, testProjection(t)))
	d := row.Derived

	assert.InDelta(t, Radians(d.Lat), d.LatRad, eps)
	assert.InDelta(t, Radians(d.Lon), d.LonRad, eps)
	assert.InDelta(t, Radians(135), d.AzRad, eps)
	assert.InDelta(t, Radians(-55), d.DipRad, eps)
	assertVec(t, StartPoint(row.Elevation, d.LatRad, d.LonRad), d.HoleStart)
}

func TestDerive_Deterministic(t *testing.T) {

	proj := testProjection(t)
	a, b := testRow(), testRow()
	require.NoError(t, Derive(a, proj))
	require.NoError(t, Derive(b, proj))
	assert.Equal(t, *a.Derived, *b.Derived)
}

func TestDeriveAll(t *testing.T) {

	rows := []*model.Row{testRow(), testRow(), testRow()}
	rows[1].Hole = "DDH-02"
	rows[1].Easting = 452900

	require.NoError(t, DeriveAll(rows, testProjection(t)))
	for _, r := range rows {
		assert.NotNil(t, r.Derived)
	}
	assert.Equal(t, "DDH-02", rows[1].Hole)
	assert.NotEqual(t, rows[0].Derived.Lon, rows[1].Derived.Lon)
}
