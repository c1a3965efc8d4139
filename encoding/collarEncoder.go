package encoding

import (
	"encoding/json"
	"os"

	"github.com/earthrise-media/drillviz/model"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

//CollarToGeoJsonFeature turns the first row of a hole into a point feature
func CollarToGeoJsonFeature(row *model.Row) (*geojson.Feature, error) {

	p := row.Collar()
	if p == nil {
		return nil, errors.Errorf("hole %s has no derived collar", row.Hole)
	}
	feat := geojson.NewFeature(*p)
	feat.ID = row.Hole
	feat.Properties = geojson.Properties{
		model.ColHole:      row.Hole,
		model.ColZone:      row.Zone,
		model.ColLength:    row.Length,
		model.ColElevation: row.Elevation,
		model.ColAzimuth:   row.Azimuth,
		model.ColDip:       row.Dip,
	}
	return feat, nil
}

//CollarsToFeatureCollection emits one feature per hole, holes are split the same way the plot splits them
func CollarsToFeatureCollection(rows []*model.Row) (*geojson.FeatureCollection, error) {

	fc := geojson.NewFeatureCollection()
	prev := ""
	for i, row := range rows {
		if i > 0 && row.Hole == prev {
			continue
		}
		prev = row.Hole
		feat, err := CollarToGeoJsonFeature(row)
		if err != nil {
			return nil, err
		}
		fc.Append(feat)
	}
	return fc, nil
}

//CollarBound is the lon/lat extent of all collars
func CollarBound(rows []*model.Row) orb.Bound {

	mp := make(orb.MultiPoint, 0, len(rows))
	for _, row := range rows {
		if p := row.Collar(); p != nil {
			mp = append(mp, *p)
		}
	}
	return mp.Bound()
}

//WriteCollars writes the collar feature collection to path
func WriteCollars(path string, rows []*model.Row) error {

	fc, err := CollarsToFeatureCollection(rows)
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(fc, "", "  ")
	if err != nil {
		return errors.Wrap(err, "unable to encode collars")
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, "unable to write %s", path)
	}
	zap.L().Info("wrote collars", zap.String("path", path), zap.Int("holes", len(fc.Features)))
	return nil
}
