package geometry

import (
	"fmt"
	"strings"

	"github.com/im7mortal/UTM"
	"github.com/pkg/errors"
)

const bands = "CDEFGHJKLMNPQRSTUVWX"

//Projection is an inverse UTM projection on WGS84 for one zone
type Projection struct {
	Zone int
	Band string
}

//NewProjection validates the zone number and latitude band
func NewProjection(zone int, band string) (*Projection, error) {

	if zone < 1 || zone > 60 {
		return nil, errors.Errorf("utm zone %d out of range 1-60", zone)
	}
	band = strings.ToUpper(strings.TrimSpace(band))
	if len(band) != 1 || !strings.Contains(bands, band) {
		return nil, errors.Errorf("invalid utm latitude band %q", band)
	}
	return &Projection{Zone: zone, Band: band}, nil
}

//Inverse converts easting/northing in metres to latitude/longitude in degrees
func (p *Projection) Inverse(easting, northing float64) (lat float64, lon float64, err error) {

	lat, lon, err = UTM.ToLatLon(easting, northing, p.Zone, p.Band)
	if err != nil {
		return 0, 0, errors.Wrapf(err, "unable to project %v,%v in zone %d%s", easting, northing, p.Zone, p.Band)
	}
	return lat, lon, nil
}

func (p *Projection) String() string {
	return fmt.Sprintf("+proj=utm +zone=%d%s +ellps=WGS84 +datum=WGS84 +units=m", p.Zone, p.Band)
}
