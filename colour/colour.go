package colour

import (
	"sort"
	"strings"

	"github.com/earthrise-media/drillviz/model"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

//EmptyColour is the colour in effect before any grade has matched
const EmptyColour = "#FF0022"

//Nickel percent ranges, low and high are both exclusive
var (
	Blue = model.Swatch{
		{Low: 0.5, High: 1.5, Colour: "#D0E6F3"},
		{Low: 1.51, High: 3.0, Colour: "#8BC2E2"},
		{Low: 3.01, High: 4.5, Colour: "#459DD1"},
		{Low: 4.51, High: 6.0, Colour: "#0079C1"},
		{Low: 6.01, High: 7.5, Colour: "#00598D"},
		{Low: 7.51, High: 9.0, Colour: "#003758"},
		{Low: 9.01, High: 100, Colour: "#001624"},
	}

	Red = model.Swatch{
		{Low: 0.5, High: 1.5, Colour: "#99525A"},
		{Low: 1.51, High: 3.0, Colour: "#802731"},
		{Low: 3.01, High: 4.5, Colour: "#6A111B"},
		{Low: 4.51, High: 6.0, Colour: "#550E16"},
		{Low: 6.01, High: 7.5, Colour: "#400A10"},
		{Low: 7.51, High: 9.0, Colour: "#2B070B"},
		{Low: 9.01, High: 100, Colour: "#160406"},
	}
)

var swatches = map[string]model.Swatch{
	"red":  Red,
	"blue": Blue,
}

//Swatch looks up a built in swatch by name
func Swatch(name string) (model.Swatch, error) {
	s, ok := swatches[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, errors.Errorf("unknown swatch %q, expected one of %s", name, strings.Join(Names(), ", "))
	}
	return s, nil
}

//Names returns the built in swatch names in sorted order
func Names() []string {
	names := make([]string, 0, len(swatches))
	for k := range swatches {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

//Lookup returns the colour of the single range strictly containing grade.
//A grade on a boundary, outside every range, or inside overlapping ranges has no colour.
func Lookup(s model.Swatch, grade float64) (string, bool) {

	found := ""
	matches := 0
	for _, bp := range s {
		if bp.Low < grade && bp.High > grade {
			found = bp.Colour
			matches++
		}
	}
	return found, matches == 1
}

//Classifier colours grades in sequence, reusing the last colour when a grade has no match
type Classifier struct {
	swatch  model.Swatch
	current string
}

func NewClassifier(s model.Swatch, empty string) *Classifier {
	return &Classifier{swatch: s, current: empty}
}

//Classify updates and returns the current colour for grade
func (c *Classifier) Classify(grade float64) string {

	col, ok := Lookup(c.swatch, grade)
	if !ok {
		zap.L().Debug("no colour for grade, keeping previous", zap.Float64("grade", grade), zap.String("colour", c.current))
		return c.current
	}
	c.current = col
	return c.current
}

//Current is the colour most recently returned
func (c *Classifier) Current() string {
	return c.current
}
