package main

import (
	"fmt"
	"os"

	"github.com/earthrise-media/drillviz/colour"
	"github.com/earthrise-media/drillviz/config"
	"github.com/earthrise-media/drillviz/encoding"
	"github.com/earthrise-media/drillviz/geometry"
	"github.com/earthrise-media/drillviz/plot"
	"github.com/earthrise-media/drillviz/survey"
	"github.com/paulmach/orb"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:   "drillviz [survey.csv]",
	Short: "Render drill hole traces and assay intervals as an interactive 3D plot",
	Long: `drillviz reads a drill hole survey csv (Hole, Easting, Northing, Elevation,
Azimuth, Dip, Length, Zone, IntervalStart, IntervalEnd, NiEq, Over), projects the
collars out of UTM and writes a standalone plotly html page next to the input.

Every setting can also be given as an environment variable, e.g. SWATCH=blue.`,
	Args: cobra.MaximumNArgs(1),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Preflight()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
	SilenceUsage: true,
	RunE:         runRender,
}

var swatchesCmd = &cobra.Command{
	Use:   "swatches",
	Short: "Print the built in grade colour tables",
	Args:  cobra.NoArgs,
	RunE:  runSwatches,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringP("output", "o", "", "html output path (default: input with .html extension)")
	flags.String("swatch", "red", "grade colour table: red or blue")
	flags.Int("zone", 9, "utm zone of the easting/northing columns")
	flags.String("band", "V", "utm latitude band")
	flags.Float64("threshold", 0.5, "intervals at or below this grade are not drawn")
	flags.String("zones", "", "comma separated zones to keep")
	flags.String("bbox", "", "minlon,maxlon,minlat,maxlat collar filter")
	flags.String("geojson", "", "also write hole collars as geojson to this path")
	flags.String("title", "", "figure title")
	flags.String("log-level", "INFO", "DEBUG, INFO, WARN or ERROR")

	bind(config.Output, "output")
	bind(config.Swatch, "swatch")
	bind(config.UtmZone, "zone")
	bind(config.UtmBand, "band")
	bind(config.GradeThreshold, "threshold")
	bind(config.Zones, "zones")
	bind(config.Bbox, "bbox")
	bind(config.GeoJSONOutput, "geojson")
	bind(config.Title, "title")
	bind(config.LogLevel, "log-level")

	rootCmd.AddCommand(swatchesCmd)
}

func bind(key, flag string) {
	if err := viper.BindPFlag(key, rootCmd.PersistentFlags().Lookup(flag)); err != nil {
		panic(err)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		zap.L().Error("drillviz failed", zap.Error(err))
		os.Exit(1)
	}
}

func runRender(cmd *cobra.Command, args []string) error {

	j, err := newJob(args)
	if err != nil {
		return err
	}
	return j.run()
}

func runSwatches(cmd *cobra.Command, args []string) error {

	out := cmd.OutOrStdout()
	for _, name := range colour.Names() {
		s, err := colour.Swatch(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s\n", name)
		for _, bp := range s {
			fmt.Fprintf(out, "  %6.2f < NiEq < %6.2f  %s\n", bp.Low, bp.High, bp.Colour)
		}
	}
	return nil
}

//job is one render run, built from the viper settings
type job struct {
	input     string
	output    string
	geojson   string
	plotlyURL string
	proj      *geometry.Projection
	opts      plot.Options
	zones     []string
	bound     *orb.Bound
}

func newJob(args []string) (*job, error) {

	input := viper.GetString(config.Input)
	if len(args) > 0 {
		input = args[0]
	}

	proj, err := geometry.NewProjection(viper.GetInt(config.UtmZone), viper.GetString(config.UtmBand))
	if err != nil {
		return nil, err
	}
	sw, err := colour.Swatch(viper.GetString(config.Swatch))
	if err != nil {
		return nil, err
	}

	j := &job{
		input:     input,
		output:    config.OutputPath(input, viper.GetString(config.Output), ".html"),
		geojson:   viper.GetString(config.GeoJSONOutput),
		plotlyURL: viper.GetString(config.PlotlyURL),
		proj:      proj,
		zones:     config.SplitList(viper.GetString(config.Zones)),
		opts: plot.Options{
			Swatch:            sw,
			EmptyColour:       viper.GetString(config.EmptyColour),
			Threshold:         viper.GetFloat64(config.GradeThreshold),
			HoleLineColour:    viper.GetString(config.HoleLineColour),
			HoleLineWidth:     viper.GetFloat64(config.HoleLineWidth),
			IntervalLineWidth: viper.GetFloat64(config.IntervalLineWidth),
			Title:             viper.GetString(config.Title),
		},
	}
	if bbox := viper.GetString(config.Bbox); bbox != "" {
		if j.bound, err = encoding.ParseBbox(bbox); err != nil {
			return nil, err
		}
	}
	return j, nil
}

func (j *job) run() error {

	rows, err := survey.Load(j.input)
	if err != nil {
		return err
	}
	if err := geometry.DeriveAll(rows, j.proj); err != nil {
		return err
	}

	rows = plot.Apply(rows, j.filters()...)
	if len(rows) > 0 {
		b := encoding.CollarBound(rows)
		zap.L().Info("collar extent", zap.Float64s("min", b.Min[:]), zap.Float64s("max", b.Max[:]))
	}

	fig, err := plot.Build(rows, j.opts)
	if err != nil {
		return err
	}
	if err := encoding.WriteFigure(j.output, fig, j.plotlyURL); err != nil {
		return err
	}
	if j.geojson != "" {
		return encoding.WriteCollars(j.geojson, rows)
	}
	return nil
}

func (j *job) filters() []plot.Filter {
	var filters []plot.Filter
	if len(j.zones) > 0 {
		filters = append(filters, plot.InZones(j.zones))
	}
	if j.bound != nil {
		filters = append(filters, plot.WithinBound(*j.bound))
	}
	return filters
}
