package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestPreflight(t *testing.T) {

	t.Setenv(Swatch, "blue")
	t.Setenv(LogLevel, "ERROR")
	viper.Reset()
	defer viper.Reset()

	Preflight()

	assert.Equal(t, "GGI_Assays.csv", viper.GetString(Input))
	assert.Equal(t, 9, viper.GetInt(UtmZone))
	assert.Equal(t, "V", viper.GetString(UtmBand))
	assert.Equal(t, 0.5, viper.GetFloat64(GradeThreshold))
	assert.Equal(t, "#FF0022", viper.GetString(EmptyColour))
	assert.Equal(t, 15.0, viper.GetFloat64(IntervalLineWidth))
	assert.Equal(t, "blue", viper.GetString(Swatch))

	assert.False(t, zap.L().Core().Enabled(zap.WarnLevel))
	assert.True(t, zap.L().Core().Enabled(zap.ErrorLevel))
}

func TestOutputPath(t *testing.T) {
	assert.Equal(t, "/data/GGI_Assays.html", OutputPath("/data/GGI_Assays.csv", "", ".html"))
	assert.Equal(t, "assays.html", OutputPath("assays", "", ".html"))
	assert.Equal(t, "out/plot.html", OutputPath("/data/GGI_Assays.csv", "out/plot.html", ".html"))
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"Upper", "Lower"}, SplitList(" Upper, ,Lower,"))
	assert.Nil(t, SplitList(""))
}
