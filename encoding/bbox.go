package encoding

import (
	"strconv"
	"strings"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

//ParseBbox reads "minlon,maxlon,minlat,maxlat" into a bound
func ParseBbox(bbox string) (*orb.Bound, error) {

	coords := strings.Split(bbox, ",")
	if len(coords) != 4 {
		return nil, errors.New("bbox does not have 4 elements")
	}

	var vals [4]float64
	for i, c := range coords {
		v, err := strconv.ParseFloat(strings.TrimSpace(c), 64)
		if err != nil {
			return nil, errors.Wrap(err, "unable to parse coordinates from bbox")
		}
		vals[i] = v
	}
	minlon, maxlon, minlat, maxlat := vals[0], vals[1], vals[2], vals[3]
	if minlon > maxlon || minlat > maxlat {
		return nil, errors.New("bbox minimum is greater than maximum")
	}

	return &orb.Bound{Min: orb.Point{minlon, minlat}, Max: orb.Point{maxlon, maxlat}}, nil

}
