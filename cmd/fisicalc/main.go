package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/fisicalc/internal/config"
	"github.com/san-kum/fisicalc/internal/form"
	"github.com/san-kum/fisicalc/internal/panel"
	"github.com/san-kum/fisicalc/internal/physics"
	"github.com/san-kum/fisicalc/internal/trace"
	"github.com/san-kum/fisicalc/internal/tui"
	"github.com/spf13/cobra"
)

var (
	configFile string
	samples    int

	// Field flags shared by calc and plot; each panel reads the subset
	// its schema declares.
	v0       float64
	angle    float64
	distance float64
	height   float64
	gravity  float64
	hoop     float64
	mass     float64
	friction float64
	accel    float64
)

// fieldFlags maps flag names to their values; flag names equal schema
// field names so panels can pick up overrides generically.
var fieldFlags = map[string]*float64{
	"v0":       &v0,
	"angle":    &angle,
	"distance": &distance,
	"height":   &height,
	"gravity":  &gravity,
	"hoop":     &hoop,
	"mass":     &mass,
	"friction": &friction,
	"accel":    &accel,
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "fisicalc",
		Short: "calculadora de ejercicios de física",
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := panel.NewRegistry()
			defaults, err := loadDefaults(reg)
			if err != nil {
				return err
			}
			return tui.Run(reg, defaults)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")

	calcCmd := &cobra.Command{
		Use:   "calc [panel]",
		Short: "evaluate one panel from flags",
		Args:  cobra.ExactArgs(1),
		RunE:  runCalc,
	}
	registerFieldFlags(calcCmd)

	plotCmd := &cobra.Command{
		Use:   "plot [panel]",
		Short: "plot the curve behind a panel",
		Args:  cobra.ExactArgs(1),
		RunE:  runPlot,
	}
	registerFieldFlags(plotCmd)
	plotCmd.Flags().IntVar(&samples, "samples", 60, "points on the curve")

	panelsCmd := &cobra.Command{
		Use:   "panels",
		Short: "list panels",
		RunE:  listPanels,
	}

	configCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write a default config file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "fisicalc.yaml"
			if len(args) > 0 {
				path = args[0]
			}
			if err := config.Save(path, config.DefaultConfig()); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", path)
			return nil
		},
	}

	rootCmd.AddCommand(calcCmd, plotCmd, panelsCmd, configCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func registerFieldFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&v0, "v0", 0, "initial velocity (m/s)")
	cmd.Flags().Float64Var(&angle, "angle", 0, "angle (degrees)")
	cmd.Flags().Float64Var(&distance, "distance", 0, "horizontal distance (m)")
	cmd.Flags().Float64Var(&height, "height", 0, "height (m)")
	cmd.Flags().Float64Var(&gravity, "gravity", 0, "gravity (m/s²)")
	cmd.Flags().Float64Var(&hoop, "hoop", 0, "hoop height (m)")
	cmd.Flags().Float64Var(&mass, "mass", 0, "mass (kg)")
	cmd.Flags().Float64Var(&friction, "friction", 0, "friction coefficient")
	cmd.Flags().Float64Var(&accel, "accel", 0, "acceleration (m/s²)")
}

// loadConfig reads the --config file when given, falling back to the
// built-in defaults.
func loadConfig() (*config.Config, error) {
	if configFile == "" {
		return config.DefaultConfig(), nil
	}
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

func loadDefaults(reg *panel.Registry) (map[string]form.Values, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	defaults := make(map[string]form.Values)
	for _, name := range reg.Names() {
		defaults[name] = cfg.FieldDefaults(name)
	}
	return defaults, nil
}

// panelValues resolves a panel's inputs: config defaults first, then any
// flag the user set explicitly.
func panelValues(cmd *cobra.Command, p *panel.Panel) (form.Values, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	vals := form.Values(cfg.FieldDefaults(p.Name))
	for _, name := range p.Schema.Names() {
		if flag, ok := fieldFlags[name]; ok && cmd.Flags().Changed(name) {
			vals[name] = *flag
		}
	}
	return vals, nil
}

func runCalc(cmd *cobra.Command, args []string) error {
	reg := panel.NewRegistry()
	p, err := reg.Get(args[0])
	if err != nil {
		return err
	}

	vals, err := panelValues(cmd, p)
	if err != nil {
		return err
	}

	raw := make(map[string]string, len(vals))
	for name, v := range vals {
		raw[name] = form.FormatValue(v)
	}

	res, fieldErrs, err := p.Submit(raw)
	if fieldErrs.Any() {
		for _, name := range p.Schema.Names() {
			if fe, ok := fieldErrs[name]; ok {
				fmt.Fprintf(os.Stderr, "  %v\n", fe)
			}
		}
		return fmt.Errorf("invalid input for panel %s", p.Name)
	}
	if err != nil {
		return fmt.Errorf("could not compute %s: %w", p.Name, err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "panel\t%s\n", p.Title)
	for _, f := range p.Schema.Fields {
		fmt.Fprintf(w, "  %s\t%g %s\n", f.Label, vals[f.Name], f.Unit)
	}
	fmt.Fprintf(w, "%s\t%.4f %s\n", p.ResultLabel, res, p.ResultUnit)
	return w.Flush()
}

func runPlot(cmd *cobra.Command, args []string) error {
	reg := panel.NewRegistry()
	p, err := reg.Get(args[0])
	if err != nil {
		return err
	}

	vals, err := panelValues(cmd, p)
	if err != nil {
		return err
	}

	var (
		data    []float64
		caption string
	)

	switch p.Name {
	case "planeta":
		in := physics.PlanetInput{
			InitialVelocity: vals["v0"],
			Angle:           vals["angle"],
			Distance:        vals["distance"],
		}
		g, solveErr := in.Solve()
		if solveErr != nil {
			return fmt.Errorf("could not compute %s: %w", p.Name, solveErr)
		}
		data, err = trace.ProjectileArc(vals["v0"], vals["angle"], g, samples)
		if err != nil {
			return err
		}
		caption = fmt.Sprintf("altura del proyectil (g=%.2f m/s²)", g)
	case "astronauta":
		data, err = trace.ProjectileArc(vals["v0"], vals["angle"], vals["gravity"], samples)
		if err != nil {
			return err
		}
		caption = fmt.Sprintf("trayectoria del balón (g=%.2f m/s²)", vals["gravity"])
	case "camion":
		data, err = trace.SlideAngleSweep(2*vals["friction"], samples)
		if err != nil {
			return err
		}
		caption = fmt.Sprintf("ángulo de deslizamiento, μ de 0 a %.2f", 2*vals["friction"])
	case "mensajero":
		in := physics.MessengerInput{
			Height:       vals["height"],
			Friction:     vals["friction"],
			Acceleration: vals["accel"],
			Mass:         vals["mass"],
		}
		data, err = trace.ForceSweep(in, samples)
		if err != nil {
			return err
		}
		caption = "fuerza (N) según el ángulo, de 0° a 90°"
	}

	graph := asciigraph.Plot(data,
		asciigraph.Height(12),
		asciigraph.Width(72),
		asciigraph.Caption(caption),
	)
	fmt.Println(graph)
	return nil
}

func listPanels(cmd *cobra.Command, args []string) error {
	reg := panel.NewRegistry()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PANEL\tTITLE\tFIELDS\tRESULT")
	for _, p := range reg.Panels() {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s (%s)\n",
			p.Name,
			p.Title,
			strings.Join(p.Schema.Names(), ","),
			p.ResultLabel,
			p.ResultUnit,
		)
	}
	return w.Flush()
}
