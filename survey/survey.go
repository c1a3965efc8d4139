package survey

import (
	"encoding/csv"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/earthrise-media/drillviz/model"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

//Load opens a survey csv file and scans every line into a Row
func Load(path string) ([]*model.Row, error) {

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to open survey file %s", path)
	}
	defer f.Close()

	rows, err := Read(f)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to read survey file %s", path)
	}
	zap.L().Info("loaded survey", zap.String("path", path), zap.Int("rows", len(rows)))
	return rows, nil
}

//Read scans csv data into rows, keeping file order
func Read(r io.Reader) ([]*model.Row, error) {

	reader := csv.NewReader(r)
	headers, err := reader.Read()
	if err == io.EOF {
		return nil, errors.New("survey file is empty")
	}
	if err != nil {
		return nil, errors.Wrap(err, "unable to read header")
	}

	index, err := columnIndex(headers)
	if err != nil {
		return nil, err
	}

	var rows []*model.Row
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
		row, err := scanToRow(record, index)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

//columnIndex maps each required column to its position in the header
func columnIndex(headers []string) (map[string]int, error) {

	index := make(map[string]int, len(headers))
	for i, h := range headers {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		if _, seen := index[h]; !seen {
			index[h] = i
		}
	}

	var missing []string
	for _, col := range model.RequiredColumns {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, errors.Errorf("missing required columns: %s", strings.Join(missing, ", "))
	}
	return index, nil
}

//scanToRow does the column to field plumbing
func scanToRow(record []string, index map[string]int) (*model.Row, error) {

	s := scanner{record: record, index: index}
	row := model.Row{
		Hole:          s.text(model.ColHole),
		Easting:       s.number(model.ColEasting),
		Northing:      s.number(model.ColNorthing),
		Elevation:     s.number(model.ColElevation),
		Azimuth:       s.number(model.ColAzimuth),
		Dip:           s.number(model.ColDip),
		Length:        s.number(model.ColLength),
		Zone:          s.text(model.ColZone),
		IntervalStart: s.number(model.ColIntervalStart),
		IntervalEnd:   s.number(model.ColIntervalEnd),
		NiEq:          s.number(model.ColNiEq),
		Over:          s.number(model.ColOver),
	}
	if s.err != nil {
		return nil, s.err
	}
	return &row, nil
}

//scanner keeps the first error so a row can be scanned field by field
type scanner struct {
	record []string
	index  map[string]int
	err    error
}

func (s *scanner) text(col string) string {
	i := s.index[col]
	if i >= len(s.record) {
		return ""
	}
	return s.record[i]
}

//number parses a numeric cell, an empty cell reads as NaN
func (s *scanner) number(col string) float64 {
	if s.err != nil {
		return 0
	}
	val := strings.TrimSpace(s.text(col))
	if val == "" {
		return math.NaN()
	}
	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		s.err = errors.Wrapf(err, "column %s", col)
		return 0
	}
	return f
}
