package config

import "sort"

var Presets = map[string]*Config{
	"circle": {
		Droplet: DropletConfig{
			Kind: "sphere", Position: []float64{0, 0}, Radius: 1.0,
		},
		Quad: QuadConfig{Tolerance: DefaultTolerance},
	},
	"ball": {
		Droplet: DropletConfig{
			Kind: "sphere", Position: []float64{0, 0, 0}, Radius: 1.0,
		},
		Quad: QuadConfig{Tolerance: DefaultTolerance},
	},
	"wobble2d": {
		Droplet: DropletConfig{
			Kind: "perturbed2d", Position: []float64{0, 0}, Radius: 3.0,
			Amplitudes: []float64{0.01, 0.02, 0.03, 0.04},
		},
		Quad: QuadConfig{Tolerance: DefaultTolerance},
	},
	"limacon": {
		Droplet: DropletConfig{
			Kind: "perturbed2d", Position: []float64{0, 0}, Radius: 2.0,
			Amplitudes: []float64{0.5},
		},
		Quad: QuadConfig{Tolerance: DefaultTolerance},
	},
	"ellipsoidal3d": {
		Droplet: DropletConfig{
			Kind: "perturbed3d", Position: []float64{0, 0, 0}, Radius: 2.0,
			Amplitudes: []float64{0, 0, 0.1, 0, 0}, MinDegree: 2,
		},
		Quad: QuadConfig{Tolerance: DefaultTolerance},
	},
}

// GetPreset returns a copy of the named preset, or nil if it does not
// exist.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *p
	c.Droplet.Position = append([]float64(nil), p.Droplet.Position...)
	c.Droplet.Amplitudes = append([]float64(nil), p.Droplet.Amplitudes...)
	return &c
}

// ListPresets returns the sorted names of all presets.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
