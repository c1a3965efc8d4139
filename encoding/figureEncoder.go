package encoding

import (
	"bytes"
	"encoding/json"
	"html/template"
	"io"
	"os"

	"github.com/earthrise-media/drillviz/model"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

//DefaultPlotlyURL is the plotly.js bundle the page loads
const DefaultPlotlyURL = "https://cdn.plot.ly/plotly-2.27.0.min.js"

var page = template.Must(template.New("figure").Parse(`<html>
<head><meta charset="utf-8" />{{if .Title}}<title>{{.Title}}</title>{{end}}</head>
<body>
<div>
<script type="text/javascript" src="{{.PlotlyURL}}"></script>
<div id="drillviz-figure" class="plotly-graph-div" style="height:100%; width:100%;"></div>
<script type="text/javascript">
var figure = {{.Figure}};
Plotly.newPlot("drillviz-figure", figure.data, figure.layout, {"responsive": true});
</script>
</div>
</body>
</html>
`))

type pageData struct {
	Title     string
	PlotlyURL string
	Figure    template.JS
}

//FigureToJSON encodes the figure in the plotly.js {data, layout} shape
func FigureToJSON(fig *model.Figure) ([]byte, error) {

	data, err := json.Marshal(fig)
	if err != nil {
		return nil, errors.Wrap(err, "unable to encode figure")
	}
	return data, nil
}

//FigureToHTML renders a standalone page for the figure, output is deterministic for a given figure
func FigureToHTML(w io.Writer, fig *model.Figure, plotlyURL string) error {

	data, err := FigureToJSON(fig)
	if err != nil {
		return err
	}
	if plotlyURL == "" {
		plotlyURL = DefaultPlotlyURL
	}
	err = page.Execute(w, pageData{
		Title:     fig.Layout.Title,
		PlotlyURL: plotlyURL,
		Figure:    template.JS(data),
	})
	return errors.Wrap(err, "unable to render figure page")
}

//WriteFigure renders the figure page to path
func WriteFigure(path string, fig *model.Figure, plotlyURL string) error {

	var buf bytes.Buffer
	if err := FigureToHTML(&buf, fig, plotlyURL); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return errors.Wrapf(err, "unable to write %s", path)
	}
	zap.L().Info("wrote figure", zap.String("path", path), zap.Int("traces", len(fig.Data)))
	return nil
}
