package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridrect/decompose"
	"github.com/katalvlaran/gridrect/grid"
)

func newViper() *viper.Viper {
	v := viper.New()
	SetDefaults(v)

	return v
}

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	assert.Empty(t, cfg.Validate())
	assert.Equal(t, decompose.DefaultMinSize, cfg.Decompose.MinWidth)
	assert.Equal(t, FormatList, cfg.Output.Format)
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(newViper())
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
decompose:
  min_width: 3
  strict_seams: true
output:
  format: report
`), 0o644))
	t.Setenv("GRIDRECT_DECOMPOSE_MIN_HEIGHT", "4")

	v := newViper()
	v.SetConfigFile(path)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	require.NoError(t, v.ReadInConfig())

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Decompose.MinWidth)
	assert.Equal(t, 4, cfg.Decompose.MinHeight)
	assert.True(t, cfg.Decompose.StrictSeams)
	assert.Equal(t, FormatReport, cfg.Output.Format)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoad_Invalid(t *testing.T) {
	v := newViper()
	v.Set("decompose.min_width", 0)
	v.Set("output.format", "xml")

	_, err := Load(v)
	require.Error(t, err)

	var verrs ValidationErrors
	require.ErrorAs(t, err, &verrs)
	require.Len(t, verrs, 2)
	assert.Equal(t, "decompose.min_width", verrs[0].Field)
	assert.Equal(t, "output.format", verrs[1].Field)
	assert.Contains(t, err.Error(), "2 validation errors")
}

func TestValidate_Logging(t *testing.T) {
	cfg := Default()
	cfg.Logging.Level = "loud"
	cfg.Logging.Format = "xml"

	errs := cfg.Validate()
	require.Len(t, errs, 2)
	assert.Equal(t, "logging.level", errs[0].Field)
	assert.Equal(t, "logging.format", errs[1].Field)
}

func TestValidationErrors_Error(t *testing.T) {
	assert.Empty(t, ValidationErrors(nil).Error())

	one := ValidationErrors{{Field: "output.format", Value: "x", Message: "bad"}}
	assert.Equal(t, "output.format: bad (got: x)", one.Error())
}

func TestDecomposeOptions(t *testing.T) {
	g, err := grid.New([][]int{
		{1, 1, 1},
		{0, 1, 0},
		{0, 1, 1},
		{0, 1, 1},
	})
	require.NoError(t, err)

	cfg := Default()
	rects, err := decompose.Decompose(g, cfg.DecomposeOptions()...)
	require.NoError(t, err)
	assert.Equal(t, []grid.Rect{{X: 1, Y: 2, W: 2, H: 2}}, rects)

	cfg.Decompose.StrictSeams = true
	rects, err = decompose.Decompose(g, cfg.DecomposeOptions()...)
	require.NoError(t, err)
	assert.Empty(t, rects)
}

func TestMarshal_RoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Output.Summary = true

	data, err := cfg.Marshal()
	require.NoError(t, err)
	assert.Contains(t, string(data), "min_width: 2")

	var back Config
	require.NoError(t, yaml.Unmarshal(data, &back))
	assert.Equal(t, *cfg, back)
}

func TestConfigDir_XDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	assert.Equal(t, filepath.Join(dir, "gridrect"), ConfigDir())
	assert.Equal(t, filepath.Join(dir, "gridrect", "config.yaml"), ConfigFile())
}
