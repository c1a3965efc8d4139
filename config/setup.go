package config

import (
	"path/filepath"
	"strings"

	"github.com/earthrise-media/drillviz/encoding"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	Input             = "INPUT"
	Output            = "OUTPUT"
	UtmZone           = "UTM_ZONE"
	UtmBand           = "UTM_BAND"
	Swatch            = "SWATCH"
	GradeThreshold    = "GRADE_THRESHOLD"
	EmptyColour       = "EMPTY_COLOUR"
	HoleLineColour    = "HOLE_LINE_COLOUR"
	HoleLineWidth     = "HOLE_LINE_WIDTH"
	IntervalLineWidth = "INTERVAL_LINE_WIDTH"
	PlotlyURL         = "PLOTLY_JS_URL"
	Title             = "TITLE"
	Zones             = "ZONES"
	Bbox              = "BBOX"
	GeoJSONOutput     = "GEOJSON_OUTPUT"
	LogLevel          = "LOG_LEVEL"
)

//Preflight sets up all the config defaults and the global logger
func Preflight() {

	//setup configuration and defaults
	viper.SetDefault(Input, "GGI_Assays.csv")              //survey csv, relative to the working directory
	viper.SetDefault(Output, "")                           //html output, defaults to the input with an .html extension
	viper.SetDefault(UtmZone, 9)                           //utm zone of the easting/northing columns
	viper.SetDefault(UtmBand, "V")                         //utm latitude band
	viper.SetDefault(Swatch, "red")                        //red or blue
	viper.SetDefault(GradeThreshold, 0.5)                  //intervals at or below this NiEq are not drawn
	viper.SetDefault(EmptyColour, "#FF0022")               //colour used until a grade matches the swatch
	viper.SetDefault(HoleLineColour, "black")              //full hole trace colour
	viper.SetDefault(HoleLineWidth, 2)                     //full hole trace width
	viper.SetDefault(IntervalLineWidth, 15)                //interval trace width
	viper.SetDefault(PlotlyURL, encoding.DefaultPlotlyURL) //plotly.js bundle referenced by the page
	viper.SetDefault(Title, "")                            //figure title
	viper.SetDefault(Zones, "")                            //comma separated zones to keep, empty keeps all
	viper.SetDefault(Bbox, "")                             //minlon,maxlon,minlat,maxlat collar filter
	viper.SetDefault(GeoJSONOutput, "")                    //optional collar geojson output
	viper.SetDefault(LogLevel, "INFO")                     //log levels as defined by Zap library

	viper.AutomaticEnv()

	//setup logging
	loggerConfig := zap.NewProductionConfig()
	loggerConfig.Sampling = nil
	loggerConfig.Level.UnmarshalText([]byte(viper.GetString(LogLevel)))
	loggerConfig.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	loggerConfig.EncoderConfig.TimeKey = "ts"
	loggerConfig.EncoderConfig.LevelKey = "l"
	loggerConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	loggerConfig.OutputPaths = []string{"stdout"}
	loggerConfig.ErrorOutputPaths = []string{"stderr"}
	logger, err := loggerConfig.Build()
	if err != nil {
		logger = zap.NewNop()
	}
	zap.ReplaceGlobals(logger)

	zap.L().Debug("Preflight complete!")
}

//OutputPath is the configured output or the input with its extension replaced by ext
func OutputPath(input, configured, ext string) string {
	if configured != "" {
		return configured
	}
	return strings.TrimSuffix(input, filepath.Ext(input)) + ext
}

//SplitList splits a comma separated setting, dropping blanks
func SplitList(s string) []string {
	var out []string
	for _, v := range strings.Split(s, ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
