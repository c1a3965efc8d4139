package geometry

import (
	"math"

	"github.com/earthrise-media/drillviz/model"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180.0
}

// StartPoint places the collar at distance elevation from the origin along the
// (lat, lon) direction. This is a local approximation for plotting, not ECEF.
func StartPoint(elevation, latRad, lonRad float64) model.Vec3 {
	return model.Vec3{
		X: elevation * math.Cos(latRad) * math.Cos(lonRad),
		Y: elevation * math.Cos(latRad) * math.Sin(lonRad),
		Z: elevation * math.Sin(latRad),
	}
}

// Delta is the offset travelled after distance d down a hole with the given
// azimuth and dip.
func Delta(d, azRad, dipRad float64) model.Vec3 {
	return model.Vec3{
		X: d * math.Sin(azRad) * math.Cos(dipRad),
		Y: d * math.Cos(azRad) * math.Cos(dipRad),
		Z: d * math.Sin(dipRad),
	}
}

// Derive computes every derived column of a row.
func Derive(row *model.Row, proj *Projection) error {

	lat, lon, err := proj.Inverse(row.Easting, row.Northing)
	if err != nil {
		return errors.Wrapf(err, "hole %s", row.Hole)
	}

	d := model.Derived{
		Lat:    lat,
		Lon:    lon,
		LatRad: Radians(lat),
		LonRad: Radians(lon),
		AzRad:  Radians(row.Azimuth),
		DipRad: Radians(row.Dip),
	}
	d.HoleStart = StartPoint(row.Elevation, d.LatRad, d.LonRad)
	d.HoleEnd = d.HoleStart.Add(Delta(row.Length, d.AzRad, d.DipRad))
	d.IntervalStart = d.HoleStart.Add(Delta(row.IntervalStart, d.AzRad, d.DipRad))
	d.IntervalEnd = d.HoleStart.Add(Delta(row.IntervalEnd, d.AzRad, d.DipRad))

	row.Derived = &d
	return nil
}

// DeriveAll derives rows in place, stopping at the first failure.
func DeriveAll(rows []*model.Row, proj *Projection) error {

	for _, row := range rows {
		if err := Derive(row, proj); err != nil {
			return err
		}
	}
	zap.L().Debug("derived coordinates", zap.Int("rows", len(rows)), zap.String("projection", proj.String()))
	return nil
}
