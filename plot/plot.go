package plot

import (
	"fmt"
	"strconv"

	"github.com/earthrise-media/drillviz/colour"
	"github.com/earthrise-media/drillviz/model"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

//Options controls how traces are styled and which intervals are drawn
type Options struct {
	Swatch            model.Swatch
	EmptyColour       string
	Threshold         float64 //intervals at or below this grade are not drawn
	HoleLineColour    string
	HoleLineWidth     float64
	IntervalLineWidth float64
	Title             string
}

func DefaultOptions() Options {
	return Options{
		Swatch:            colour.Red,
		EmptyColour:       colour.EmptyColour,
		Threshold:         0.5,
		HoleLineColour:    "black",
		HoleLineWidth:     2,
		IntervalLineWidth: 15,
	}
}

//Build walks the rows in order and emits the figure traces.
//Rows must be derived and grouped by hole; a hole starts whenever the id changes.
func Build(rows []*model.Row, opts Options) (*model.Figure, error) {

	fig := &model.Figure{Data: make([]*model.Trace, 0, len(rows)), Layout: model.Layout{Title: opts.Title}}
	classifier := colour.NewClassifier(opts.Swatch, opts.EmptyColour)

	holes, intervals := 0, 0
	prevHole := ""
	first := true
	for i, row := range rows {
		if row.Derived == nil {
			return nil, errors.Errorf("row %d (hole %s) has no derived coordinates", i, row.Hole)
		}

		col := classifier.Classify(row.NiEq)

		if first || row.Hole != prevHole {
			first = false
			prevHole = row.Hole
			fig.AddTrace(collarTrace(row))
			fig.AddTrace(holeTrace(row, opts))
			holes++
		}

		if row.NiEq > opts.Threshold {
			fig.AddTrace(intervalTrace(row, col, opts))
			intervals++
		}
	}

	zap.L().Info("built figure", zap.Int("holes", holes), zap.Int("intervals", intervals), zap.Int("traces", len(fig.Data)))
	return fig, nil
}

func collarTrace(row *model.Row) *model.Trace {
	s := row.Derived.HoleStart
	return &model.Trace{
		Type:          model.TraceScatter3d,
		Name:          row.Hole,
		LegendGroup:   row.Hole,
		Mode:          model.ModeMarkers,
		X:             model.Coords{s.X},
		Y:             model.Coords{s.Y},
		Z:             model.Coords{s.Z},
		HoverInfo:     "text",
		HoverTemplate: holeHover(row),
	}
}

func holeTrace(row *model.Row, opts Options) *model.Trace {
	s, e := row.Derived.HoleStart, row.Derived.HoleEnd
	return &model.Trace{
		Type:          model.TraceScatter3d,
		Name:          row.Hole,
		LegendGroup:   row.Hole,
		Mode:          model.ModeLines,
		ShowLegend:    hidden(),
		X:             model.Coords{s.X, e.X},
		Y:             model.Coords{s.Y, e.Y},
		Z:             model.Coords{s.Z, e.Z},
		Line:          &model.Line{Color: opts.HoleLineColour, Width: opts.HoleLineWidth},
		HoverInfo:     "text",
		HoverTemplate: holeHover(row),
	}
}

//intervalTrace is a thick line standing in for a cylinder
func intervalTrace(row *model.Row, col string, opts Options) *model.Trace {
	s, e := row.Derived.IntervalStart, row.Derived.IntervalEnd
	return &model.Trace{
		Type:          model.TraceScatter3d,
		Name:          row.Hole,
		LegendGroup:   row.Hole,
		Mode:          model.ModeLines,
		ShowLegend:    hidden(),
		X:             model.Coords{s.X, e.X},
		Y:             model.Coords{s.Y, e.Y},
		Z:             model.Coords{s.Z, e.Z},
		Line:          &model.Line{Color: col, Width: opts.IntervalLineWidth},
		HoverInfo:     "text",
		HoverTemplate: fmt.Sprintf("%s<extra>%sm - (%s%%)</extra>", row.Hole, num(row.Over), num(row.NiEq)),
	}
}

func holeHover(row *model.Row) string {
	return fmt.Sprintf("%s<extra>%sm - (%s)</extra>", row.Hole, num(row.Length), row.Zone)
}

func num(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func hidden() *bool {
	b := false
	return &b
}
