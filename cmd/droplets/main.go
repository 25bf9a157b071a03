package main

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"

	"github.com/phasekit/droplets/internal/analysis"
	"github.com/phasekit/droplets/internal/config"
	"github.com/phasekit/droplets/internal/droplets"
	"github.com/phasekit/droplets/internal/spherical"
	"github.com/phasekit/droplets/internal/storage"
)

var (
	dataDir    string
	configFile string
	preset     string
	kind       string
	position   string
	radius     float64
	rotation   float64
	amplitudes string
	minDegree  int
	samples    int
	noPlot     bool
	// convert flags
	dim       int
	volumeIn  float64
	surfaceIn float64
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00ffff"))

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444466")).
			Padding(0, 2)

	errStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ff5555"))
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "droplets",
		Short: "droplet geometry toolbox",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".droplets", "data directory")

	shapeCmd := &cobra.Command{
		Use:   "shape",
		Short: "compute the geometry of a droplet",
		RunE:  runShape,
	}
	addShapeFlags(shapeCmd)
	shapeCmd.Flags().BoolVar(&noPlot, "no-plot", false, "skip terminal plots")

	convertCmd := &cobra.Command{
		Use:   "convert",
		Short: "convert between radius, volume, and surface area",
		RunE:  runConvert,
	}
	convertCmd.Flags().IntVar(&dim, "dim", 3, "spatial dimension")
	convertCmd.Flags().Float64Var(&radius, "radius", 0, "sphere radius")
	convertCmd.Flags().Float64Var(&volumeIn, "volume", 0, "sphere volume")
	convertCmd.Flags().Float64Var(&surfaceIn, "surface", 0, "sphere surface area")

	harmonicsCmd := &cobra.Command{
		Use:   "harmonics [max_degree]",
		Short: "show the linear index map of the real spherical harmonics",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runHarmonics,
	}

	spectrumCmd := &cobra.Command{
		Use:   "spectrum",
		Short: "plot the harmonic content of the sampled interface",
		RunE:  runSpectrum,
	}
	addShapeFlags(spectrumCmd)

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "compute a droplet geometry and store the report",
		RunE:  runExport,
	}
	addShapeFlags(exportCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored shape reports",
		RunE:  runList,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available shape presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
			return nil
		},
	}

	rootCmd.AddCommand(shapeCmd, convertCmd, harmonicsCmd, spectrumCmd, exportCmd, listCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errStyle.Render(err.Error()))
		os.Exit(1)
	}
}

func addShapeFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset shape")
	cmd.Flags().StringVar(&kind, "kind", "", "droplet kind (sphere, perturbed2d, perturbed3d)")
	cmd.Flags().StringVar(&position, "position", "", "comma separated center position")
	cmd.Flags().Float64Var(&radius, "radius", 0, "base radius")
	cmd.Flags().Float64Var(&rotation, "rotation", 0, "orientation angle (perturbed2d)")
	cmd.Flags().StringVar(&amplitudes, "amplitudes", "", "comma separated perturbation amplitudes")
	cmd.Flags().IntVar(&minDegree, "min-degree", droplets.DefaultMinDegree, "minimal harmonic degree (perturbed3d)")
	cmd.Flags().IntVar(&samples, "samples", 128, "number of angular samples")
}

// buildConfig assembles the droplet configuration from preset, config
// file, and flags, in increasing priority.
func buildConfig() (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if kind != "" {
		cfg.Droplet.Kind = kind
	}
	if position != "" {
		p, err := parseFloats(position)
		if err != nil {
			return nil, err
		}
		cfg.Droplet.Position = p
	}
	if radius > 0 {
		cfg.Droplet.Radius = radius
	}
	if rotation != 0 {
		cfg.Droplet.Rotation = rotation
	}
	if amplitudes != "" {
		a, err := parseFloats(amplitudes)
		if err != nil {
			return nil, err
		}
		cfg.Droplet.Amplitudes = a
	}
	cfg.Droplet.MinDegree = minDegree
	return cfg, nil
}

func parseFloats(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	out := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", p)
		}
		out = append(out, v)
	}
	return out, nil
}

func runShape(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig()
	if err != nil {
		return err
	}
	d, err := cfg.Build()
	if err != nil {
		return err
	}

	surface, err := d.SurfaceArea()
	if err != nil {
		return err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", titleStyle.Render(cfg.Droplet.Kind))
	fmt.Fprintf(&b, "dim          %d\n", d.Dim())
	fmt.Fprintf(&b, "radius       %.6g\n", d.Radius())
	fmt.Fprintf(&b, "volume       %.6g\n", d.Volume())
	fmt.Fprintf(&b, "surface area %.6g", surface)
	fmt.Println(panelStyle.Render(b.String()))

	if noPlot {
		return nil
	}

	angles, dists, curvs := sampleProfile(d, samples)
	if angles == nil {
		return nil
	}

	fmt.Println(titleStyle.Render("interface distance"))
	fmt.Println(asciigraph.Plot(dists,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("r(phi), phi in [0, 2pi)"),
	))
	fmt.Println()
	fmt.Println(titleStyle.Render("interface curvature"))
	fmt.Println(asciigraph.Plot(curvs,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("kappa(phi), phi in [0, 2pi)"),
	))
	return nil
}

// sampleProfile sweeps the interface along the azimuthal angle. For 3d
// droplets the sweep follows the equator; 1d droplets have no profile.
func sampleProfile(d droplets.Droplet, n int) (angles, dists, curvs []float64) {
	if d.Dim() == 1 || n < 2 {
		return nil, nil, nil
	}
	angles = make([]float64, n)
	floats.Span(angles, 0, 2*math.Pi*(1-1/float64(n)))
	dists = make([]float64, n)
	curvs = make([]float64, n)

	for i, phi := range angles {
		switch v := d.(type) {
		case *droplets.PerturbedDroplet2D:
			dists[i] = v.InterfaceDistance(phi)
			curvs[i] = v.InterfaceCurvature(phi)
		case *droplets.PerturbedDroplet3D:
			dists[i] = v.InterfaceDistance(math.Pi/2, phi)
			curvs[i] = v.InterfaceCurvature(math.Pi/2, phi)
		case *droplets.SphericalDroplet:
			dists[i] = v.Radius()
			curvs[i] = v.InterfaceCurvature()
		default:
			return nil, nil, nil
		}
	}
	return angles, dists, curvs
}

// runSpectrum plots the mode content of the interface distance sampled
// around the azimuth and reports the droplet fitted back from it.
func runSpectrum(cmd *cobra.Command, args []string) error {
	if samples < 2 || samples&(samples-1) != 0 {
		return fmt.Errorf("--samples must be a power of two, got %d", samples)
	}
	cfg, err := buildConfig()
	if err != nil {
		return err
	}
	d, err := cfg.Build()
	if err != nil {
		return err
	}

	angles, dists, _ := sampleProfile(d, samples)
	if angles == nil {
		return fmt.Errorf("droplet kind %q has no angular profile", cfg.Droplet.Kind)
	}

	fmt.Println(titleStyle.Render("interface spectrum"))
	fmt.Println(asciigraph.Plot(analysis.PowerSpectrum(dists),
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("|X_h| per harmonic, h in [0, N/2)"),
	))

	modes := 8
	if samples/2 <= modes {
		modes = samples/2 - 1
	}
	pos := cfg.Droplet.Position
	if len(pos) > 2 {
		pos = pos[:2]
	}
	fit, err := droplets.FitPerturbed2D(pos, dists, modes)
	if err != nil {
		return err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "mean radius  %.6g\n", fit.Radius())
	fmt.Fprintf(&b, "amplitudes   %.4g", fit.Amplitudes())
	fmt.Println(panelStyle.Render(b.String()))
	return nil
}

func runConvert(cmd *cobra.Command, args []string) error {
	var r float64
	var err error
	switch {
	case radius > 0:
		r = radius
	case volumeIn > 0:
		r, err = spherical.RadiusFromVolume(volumeIn, dim)
	case surfaceIn > 0:
		r, err = spherical.RadiusFromSurface(surfaceIn, dim)
	default:
		return fmt.Errorf("one of --radius, --volume, --surface is required")
	}
	if err != nil {
		return err
	}

	v, err := spherical.VolumeFromRadius(r, dim)
	if err != nil {
		return err
	}
	s, err := spherical.SurfaceFromRadius(r, dim)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "dim\t%d\n", dim)
	fmt.Fprintf(w, "radius\t%.9g\n", r)
	fmt.Fprintf(w, "volume\t%.9g\n", v)
	fmt.Fprintf(w, "surface\t%.9g\n", s)
	return w.Flush()
}

func runHarmonics(cmd *cobra.Command, args []string) error {
	maxDegree := 3
	if len(args) > 0 {
		var err error
		maxDegree, err = strconv.Atoi(args[0])
		if err != nil || maxDegree < 0 {
			return fmt.Errorf("invalid degree %q", args[0])
		}
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "k\tl\tm\tY(0.3, 0.4)")
	for k := 0; k < spherical.IndexCount(maxDegree); k++ {
		l, m := spherical.IndexLM(k)
		fmt.Fprintf(w, "%d\t%d\t%d\t%+.6f\n", k, l, m, spherical.HarmonicRealK(k, 0.3, 0.4))
	}
	return w.Flush()
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig()
	if err != nil {
		return err
	}
	d, err := cfg.Build()
	if err != nil {
		return err
	}
	surface, err := d.SurfaceArea()
	if err != nil {
		return err
	}

	store := storage.New(dataDir)
	if err := store.Init(); err != nil {
		return err
	}

	meta := storage.ReportMetadata{
		Kind:        cfg.Droplet.Kind,
		Dim:         d.Dim(),
		Radius:      d.Radius(),
		Volume:      d.Volume(),
		SurfaceArea: surface,
	}

	var profile *storage.Profile
	if angles, dists, curvs := sampleProfile(d, samples); angles != nil {
		profile = &storage.Profile{Angles: angles, Distances: dists, Curvatures: curvs}
	}

	id, err := store.Save(meta, profile)
	if err != nil {
		return err
	}
	fmt.Printf("saved report %s\n", id)
	return nil
}

func runList(cmd *cobra.Command, args []string) error {
	store := storage.New(dataDir)
	reports, err := store.List()
	if err != nil {
		return err
	}
	if len(reports) == 0 {
		fmt.Println("no reports")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "id\tkind\tdim\tradius\tvolume\tsurface")
	for _, r := range reports {
		fmt.Fprintf(w, "%s\t%s\t%d\t%.4g\t%.4g\t%.4g\n",
			r.ID, r.Kind, r.Dim, r.Radius, r.Volume, r.SurfaceArea)
	}
	return w.Flush()
}
