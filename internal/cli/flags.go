package cli

import (
	"errors"

	"github.com/spf13/pflag"
	"github.com/tzneal/planerect"
)

var errNoOrigin = errors.New("no origin given, use --zone, --origin or --origin-lat/--origin-lon")

// Flags are the options shared by the commands.
type Flags struct {
	ConfigPath string
	Zone       int
	OriginName string
	OriginLat  float64
	OriginLon  float64
	Verbose    bool
	Help       bool

	fs *pflag.FlagSet
}

// Register adds the shared flags to fs.
func (f *Flags) Register(fs *pflag.FlagSet) {
	f.fs = fs
	fs.StringVarP(&f.ConfigPath, "config", "c", "", "YAML configuration file.")
	fs.IntVarP(&f.Zone, "zone", "z", 0, "Plane rectangular zone, 1 through 19.")
	fs.StringVarP(&f.OriginName, "origin", "o", "", "Named origin from the configuration file.")
	fs.Float64Var(&f.OriginLat, "origin-lat", 0, "Origin latitude in decimal degrees.")
	fs.Float64Var(&f.OriginLon, "origin-lon", 0, "Origin longitude in decimal degrees.")
	fs.BoolVarP(&f.Verbose, "verbose", "v", false, "Log the resolved ellipsoid and origin.")
	fs.BoolVarP(&f.Help, "help", "h", false, "Display help text.")
}

// Origin resolves the single origin selected by the flags.
func (f *Flags) Origin(cfg *Config) (planerect.Origin, error) {
	explicit := f.fs != nil && (f.fs.Changed("origin-lat") || f.fs.Changed("origin-lon"))

	sources := 0
	if f.Zone != 0 {
		sources++
	}
	if f.OriginName != "" {
		sources++
	}
	if explicit {
		sources++
	}
	switch {
	case sources == 0:
		return planerect.Origin{}, errNoOrigin
	case sources > 1:
		return planerect.Origin{}, errors.New("--zone, --origin and --origin-lat/--origin-lon are mutually exclusive")
	}

	switch {
	case f.Zone != 0:
		return planerect.ZoneOrigin(f.Zone)
	case f.OriginName != "":
		return cfg.NamedOrigin(f.OriginName)
	default:
		if !f.fs.Changed("origin-lat") || !f.fs.Changed("origin-lon") {
			return planerect.Origin{}, errors.New("--origin-lat and --origin-lon must be given together")
		}
		return planerect.Origin{Latitude: f.OriginLat, Longitude: f.OriginLon}, nil
	}
}

// Projector builds the projector selected by the configuration and flags.
func (f *Flags) Projector() (*planerect.Projector, error) {
	cfg, err := LoadConfig(f.ConfigPath)
	if err != nil {
		return nil, err
	}
	e, err := cfg.BuildEllipsoid()
	if err != nil {
		return nil, err
	}
	o, err := f.Origin(cfg)
	if err != nil {
		return nil, err
	}
	return planerect.NewProjector(e, o)
}
