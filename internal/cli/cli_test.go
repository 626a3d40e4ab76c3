package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tzneal/planerect"
)

const testConfig = `
ellipsoid:
  scale_factor: 1.0
origins:
  tsukuba:
    latitude: 36.0
    longitude: 139.8333333333
  sapporo: {latitude: 44, longitude: 142.25}
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "planerect.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, testConfig))
	require.NoError(t, err)
	assert.Len(t, cfg.Origins, 2)

	e, err := cfg.BuildEllipsoid()
	require.NoError(t, err)
	assert.Equal(t, planerect.GRS80.SemiMajorAxis(), e.SemiMajorAxis())
	assert.Equal(t, planerect.GRS80.InverseFlattening(), e.InverseFlattening())
	assert.Equal(t, 1.0, e.ScaleFactor())

	o, err := cfg.NamedOrigin("sapporo")
	require.NoError(t, err)
	assert.Equal(t, planerect.Origin{Latitude: 44, Longitude: 142.25}, o)

	_, err = cfg.NamedOrigin("naha")
	assert.ErrorContains(t, err, "expected one of [sapporo tsukuba]")
}

func TestLoadConfigEmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	e, err := cfg.BuildEllipsoid()
	require.NoError(t, err)
	assert.Equal(t, planerect.GRS80, e)
	_, err = cfg.NamedOrigin("tsukuba")
	assert.ErrorContains(t, err, "no origins configured")
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = LoadConfig(writeConfig(t, "ellipsoid:\n  flattening: 298\n"))
	assert.Error(t, err, "unknown fields are rejected")

	cfg, err := LoadConfig(writeConfig(t, "ellipsoid:\n  inverse_flattening: 1\n"))
	require.NoError(t, err)
	_, err = cfg.BuildEllipsoid()
	assert.ErrorIs(t, err, planerect.ErrInvalidEllipsoid)
}

func parseFlags(t *testing.T, args ...string) *Flags {
	t.Helper()
	var f Flags
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	f.Register(fs)
	require.NoError(t, fs.Parse(args))
	return &f
}

func TestFlagsOrigin(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, testConfig))
	require.NoError(t, err)

	o, err := parseFlags(t, "-z", "9").Origin(cfg)
	require.NoError(t, err)
	assert.Equal(t, planerect.Origin{Latitude: 36, Longitude: 139 + 50.0/60}, o)

	o, err = parseFlags(t, "--origin", "sapporo").Origin(cfg)
	require.NoError(t, err)
	assert.Equal(t, planerect.Origin{Latitude: 44, Longitude: 142.25}, o)

	o, err = parseFlags(t, "--origin-lat", "0", "--origin-lon", "-3.5").Origin(cfg)
	require.NoError(t, err)
	assert.Equal(t, planerect.Origin{Latitude: 0, Longitude: -3.5}, o)
}

func TestFlagsOriginErrors(t *testing.T) {
	cfg := &Config{}
	tests := [][]string{
		{},
		{"-z", "9", "--origin", "tsukuba"},
		{"-z", "9", "--origin-lat", "36", "--origin-lon", "139"},
		{"--origin-lat", "36"},
		{"-z", "20"},
	}
	for _, args := range tests {
		_, err := parseFlags(t, args...).Origin(cfg)
		assert.Error(t, err, "%v", args)
	}
}

func TestFlagsProjector(t *testing.T) {
	path := writeConfig(t, testConfig)
	p, err := parseFlags(t, "-c", path, "-o", "tsukuba").Projector()
	require.NoError(t, err)
	assert.Equal(t, 1.0, p.Ellipsoid().ScaleFactor())

	_, err = parseFlags(t, "-c", path).Projector()
	assert.ErrorIs(t, err, errNoOrigin)
}

func TestReadPairs(t *testing.T) {
	in := strings.NewReader("# lat lon\n36.1 140.08\n\n 35.5,139.5 \n-33.8 151.2\n")
	pairs, err := ReadPairs(in)
	require.NoError(t, err)
	assert.Equal(t, [][2]float64{{36.1, 140.08}, {35.5, 139.5}, {-33.8, 151.2}}, pairs)

	_, err = ReadPairs(strings.NewReader("36.1 140.08\n1 2 3\n"))
	assert.EqualError(t, err, "line 2: expected 2 values, got 3")

	_, err = ReadPairs(strings.NewReader("36.1 east\n"))
	assert.EqualError(t, err, `line 1: invalid number "east"`)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "test", false)
	logger.Debug("hidden")
	assert.Empty(t, buf.String())

	logger = NewLogger(&buf, "test", true)
	logger.Debug("shown", "zone", 9)
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "zone=9")
}
