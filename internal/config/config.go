// Package config defines droplet shape definitions loaded from YAML files
// and the presets shipped with the command line tool.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/phasekit/droplets/internal/droplets"
)

const (
	DefaultRadius    = 1.0
	DefaultTolerance = 1e-8
)

type Config struct {
	Droplet DropletConfig `yaml:"droplet"`
	Quad    QuadConfig    `yaml:"quad"`
}

type DropletConfig struct {
	Kind       string    `yaml:"kind"` // sphere, perturbed2d, perturbed3d
	Position   []float64 `yaml:"position"`
	Radius     float64   `yaml:"radius"`
	Rotation   float64   `yaml:"rotation"`
	Amplitudes []float64 `yaml:"amplitudes"`
	MinDegree  int       `yaml:"min_degree"`
}

type QuadConfig struct {
	Tolerance float64 `yaml:"tolerance"`
}

func DefaultConfig() *Config {
	return &Config{
		Droplet: DropletConfig{
			Kind:      "sphere",
			Position:  []float64{0, 0},
			Radius:    DefaultRadius,
			MinDegree: droplets.DefaultMinDegree,
		},
		Quad: QuadConfig{
			Tolerance: DefaultTolerance,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Build constructs the droplet described by the configuration. The
// quadrature tolerance applies to the perturbed kinds; the sphere is
// closed form and ignores it.
func (c *Config) Build() (droplets.Droplet, error) {
	dc := c.Droplet
	switch dc.Kind {
	case "sphere":
		return droplets.NewSphericalDroplet(dc.Position, dc.Radius)
	case "perturbed2d":
		d, err := droplets.NewPerturbedDroplet2D(dc.Position, dc.Radius, dc.Rotation, dc.Amplitudes)
		if err != nil {
			return nil, err
		}
		if err := d.SetQuadTol(c.Quad.Tolerance); err != nil {
			return nil, err
		}
		return d, nil
	case "perturbed3d":
		d, err := droplets.NewPerturbedDroplet3D(dc.Position, dc.Radius, dc.Amplitudes,
			droplets.WithMinDegree(dc.MinDegree))
		if err != nil {
			return nil, err
		}
		if err := d.SetQuadTol(c.Quad.Tolerance); err != nil {
			return nil, err
		}
		return d, nil
	default:
		return nil, fmt.Errorf("config: unknown droplet kind %q", dc.Kind)
	}
}
