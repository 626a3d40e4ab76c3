// Package cli holds the plumbing shared by the planerect commands: the
// optional YAML configuration, origin selection flags, logging and input
// parsing.
package cli

import (
	"fmt"
	"os"
	"sort"

	"github.com/tzneal/planerect"
	"gopkg.in/yaml.v3"
)

// Config is the optional configuration file of the commands.
type Config struct {
	Ellipsoid EllipsoidConfig         `yaml:"ellipsoid"`
	Origins   map[string]OriginConfig `yaml:"origins"`
}

// EllipsoidConfig overrides the GRS80 defaults. Zero fields keep the
// default.
type EllipsoidConfig struct {
	SemiMajorAxis     float64 `yaml:"semi_major_axis"`
	InverseFlattening float64 `yaml:"inverse_flattening"`
	ScaleFactor       float64 `yaml:"scale_factor"`
}

// OriginConfig is a named projection origin in decimal degrees.
type OriginConfig struct {
	Latitude  float64 `yaml:"latitude"`
	Longitude float64 `yaml:"longitude"`
}

// LoadConfig reads the configuration file at path. An empty path yields the
// empty configuration.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{}
	if path == "" {
		return cfg, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// BuildEllipsoid returns the configured ellipsoid, falling back to GRS80
// for unset fields.
func (c *Config) BuildEllipsoid() (planerect.Ellipsoid, error) {
	a := planerect.GRS80.SemiMajorAxis()
	invF := planerect.GRS80.InverseFlattening()
	scale := planerect.GRS80.ScaleFactor()
	if c.Ellipsoid.SemiMajorAxis != 0 {
		a = c.Ellipsoid.SemiMajorAxis
	}
	if c.Ellipsoid.InverseFlattening != 0 {
		invF = c.Ellipsoid.InverseFlattening
	}
	if c.Ellipsoid.ScaleFactor != 0 {
		scale = c.Ellipsoid.ScaleFactor
	}
	return planerect.NewEllipsoid(a, invF, scale)
}

// NamedOrigin looks up an origin defined in the configuration.
func (c *Config) NamedOrigin(name string) (planerect.Origin, error) {
	o, ok := c.Origins[name]
	if !ok {
		if len(c.Origins) == 0 {
			return planerect.Origin{}, fmt.Errorf("unknown origin %q, no origins configured", name)
		}
		return planerect.Origin{}, fmt.Errorf("unknown origin %q, expected one of %v", name, c.originNames())
	}
	return planerect.Origin{Latitude: o.Latitude, Longitude: o.Longitude}, nil
}

func (c *Config) originNames() []string {
	names := make([]string, 0, len(c.Origins))
	for name := range c.Origins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
