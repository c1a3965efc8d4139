package model

import (
	"github.com/paulmach/orb"
)

//column names expected in the survey csv
const (
	ColHole          = "Hole"
	ColEasting       = "Easting"
	ColNorthing      = "Northing"
	ColElevation     = "Elevation"
	ColAzimuth       = "Azimuth"
	ColDip           = "Dip"
	ColLength        = "Length"
	ColZone          = "Zone"
	ColIntervalStart = "IntervalStart"
	ColIntervalEnd   = "IntervalEnd"
	ColNiEq          = "NiEq"
	ColOver          = "Over"
)

//RequiredColumns lists every column a survey file has to carry
var RequiredColumns = []string{
	ColHole, ColEasting, ColNorthing, ColElevation, ColAzimuth, ColDip,
	ColLength, ColZone, ColIntervalStart, ColIntervalEnd, ColNiEq, ColOver,
}

//Vec3 is a point or offset in the local cartesian frame
type Vec3 struct {
	X, Y, Z float64
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

// Scale returns v * s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

//Row is one line of the survey file: the hole collar and survey plus one assay interval
type Row struct {
	Hole      string
	Easting   float64
	Northing  float64
	Elevation float64
	Azimuth   float64
	Dip       float64
	Length    float64
	Zone      string

	IntervalStart float64
	IntervalEnd   float64
	NiEq          float64
	Over          float64

	Derived *Derived
}

//Derived holds the computed columns for a row
type Derived struct {
	Lat    float64
	Lon    float64
	LatRad float64
	LonRad float64
	AzRad  float64
	DipRad float64

	HoleStart     Vec3
	HoleEnd       Vec3
	IntervalStart Vec3
	IntervalEnd   Vec3
}

//Collar returns the hole location as lon/lat, nil until the row is derived
func (r *Row) Collar() *orb.Point {
	if r.Derived == nil {
		return nil
	}
	return &orb.Point{r.Derived.Lon, r.Derived.Lat}
}

//Breakpoint is one grade range of a colour table, both ends exclusive
type Breakpoint struct {
	Low    float64
	High   float64
	Colour string
}

type Swatch []Breakpoint
