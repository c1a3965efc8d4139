package model

import (
	"math"
	"strconv"
)

const (
	TraceScatter3d = "scatter3d"
	ModeMarkers    = "markers"
	ModeLines      = "lines"
)

//Line styles a trace drawn as a line
type Line struct {
	Color string  `json:"color"`
	Width float64 `json:"width"`
}

//Trace is a single plotly trace, field names follow the plotly.js schema
type Trace struct {
	Type          string    `json:"type"`
	Name          string    `json:"name,omitempty"`
	LegendGroup   string    `json:"legendgroup,omitempty"`
	Mode          string    `json:"mode,omitempty"`
	ShowLegend    *bool     `json:"showlegend,omitempty"`
	X             Coords    `json:"x"`
	Y             Coords    `json:"y"`
	Z             Coords    `json:"z"`
	Line          *Line     `json:"line,omitempty"`
	HoverInfo     string    `json:"hoverinfo,omitempty"`
	HoverTemplate string    `json:"hovertemplate,omitempty"`
}

//Layout is the subset of the plotly layout the figure sets
type Layout struct {
	Title string `json:"title,omitempty"`
}

type Figure struct {
	Data   []*Trace `json:"data"`
	Layout Layout   `json:"layout"`
}

//AddTrace appends a trace, keeping emission order
func (f *Figure) AddTrace(t *Trace) {
	f.Data = append(f.Data, t)
}

//Coords is a coordinate array, NaN and infinities encode as null the way plotly expects
type Coords []float64

func (c Coords) MarshalJSON() ([]byte, error) {
	if c == nil {
		return []byte("null"), nil
	}
	buf := make([]byte, 0, 2+len(c)*20)
	buf = append(buf, '[')
	for i, f := range c {
		if i > 0 {
			buf = append(buf, ',')
		}
		if math.IsNaN(f) || math.IsInf(f, 0) {
			buf = append(buf, "null"...)
			continue
		}
		buf = strconv.AppendFloat(buf, f, 'g', -1, 64)
	}
	return append(buf, ']'), nil
}
