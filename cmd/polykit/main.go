package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"math/cmplx"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/polykit/internal/config"
	"github.com/san-kum/polykit/linsys"
	"github.com/san-kum/polykit/poly"
	"github.com/san-kum/polykit/tf"
	"github.com/spf13/cobra"
)

var (
	method  string
	maxIter int
	preset  string
	// Transfer function coefficients, comma separated low to high degree.
	numStr string
	denStr string
	// Frequency grid
	wMin  float64
	wMax  float64
	wStep float64
	// Time grid for step responses
	dt    float64
	steps int
	// Output format
	asJSON bool
	asCSV  bool
	// Config file
	configFile string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "polykit",
		Short: "polynomial algebra and linear system analysis",
	}

	rootsCmd := &cobra.Command{
		Use:   "roots [coefficients...]",
		Short: "find polynomial roots",
		Long:  "find the roots of a polynomial given its coefficients from low to high degree",
		RunE:  findRoots,
	}
	rootsCmd.Flags().StringVar(&method, "method", "eigen", "root finding method (eigen, iterative)")
	rootsCmd.Flags().IntVar(&maxIter, "max-iter", poly.DefaultRootIterations, "iteration budget for the iterative method")
	rootsCmd.Flags().StringVar(&preset, "preset", "", "use preset polynomial")
	rootsCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootsCmd.Flags().BoolVar(&asJSON, "json", false, "emit roots as JSON")
	rootsCmd.Flags().BoolVar(&asCSV, "csv", false, "emit roots as CSV")

	evalCmd := &cobra.Command{
		Use:   "eval [x] [coefficients...]",
		Short: "evaluate a polynomial and its derivative",
		Args:  cobra.MinimumNArgs(2),
		RunE:  evalPoly,
	}

	bodeCmd := &cobra.Command{
		Use:   "bode",
		Short: "bode plot of a transfer function",
		RunE:  bodePlot,
	}
	bodeCmd.Flags().StringVar(&numStr, "num", "1", "numerator coefficients, low to high degree")
	bodeCmd.Flags().StringVar(&denStr, "den", "1,1", "denominator coefficients, low to high degree")
	bodeCmd.Flags().StringVar(&preset, "preset", "", "use preset transfer function")
	bodeCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	bodeCmd.Flags().Float64Var(&wMin, "wmin", config.DefaultWMin, "lowest angular frequency (rad/s)")
	bodeCmd.Flags().Float64Var(&wMax, "wmax", config.DefaultWMax, "highest angular frequency (rad/s)")
	bodeCmd.Flags().Float64Var(&wStep, "wstep", config.DefaultWStep, "logarithmic step in decades")
	bodeCmd.Flags().BoolVar(&asCSV, "csv", false, "emit points as CSV instead of plotting")

	stepCmd := &cobra.Command{
		Use:   "step",
		Short: "unit step response of a transfer function",
		RunE:  stepResponse,
	}
	stepCmd.Flags().StringVar(&numStr, "num", "1", "numerator coefficients, low to high degree")
	stepCmd.Flags().StringVar(&denStr, "den", "1,1", "denominator coefficients, low to high degree")
	stepCmd.Flags().StringVar(&preset, "preset", "", "use preset transfer function")
	stepCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	stepCmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "integration timestep")
	stepCmd.Flags().IntVar(&steps, "steps", config.DefaultSteps, "number of integration steps")
	stepCmd.Flags().BoolVar(&asCSV, "csv", false, "emit samples as CSV instead of plotting")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE:  listPresets,
	}

	rootCmd.AddCommand(rootsCmd, evalCmd, bodeCmd, stepCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// resolveConfig merges preset, config file and CLI flags in increasing
// priority, following the flag defaults declared on cmd.
func resolveConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
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
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("method") {
		cfg.Method = method
	}
	if cmd.Flags().Changed("max-iter") {
		cfg.MaxIter = maxIter
	}
	if cmd.Flags().Changed("num") {
		num, err := parseCoeffs(numStr)
		if err != nil {
			return nil, err
		}
		cfg.Num = num
	}
	if cmd.Flags().Changed("den") {
		den, err := parseCoeffs(denStr)
		if err != nil {
			return nil, err
		}
		cfg.Den = den
	}
	if cmd.Flags().Changed("wmin") {
		cfg.WMin = wMin
	}
	if cmd.Flags().Changed("wmax") {
		cfg.WMax = wMax
	}
	if cmd.Flags().Changed("wstep") {
		cfg.WStep = wStep
	}
	if cmd.Flags().Changed("dt") {
		cfg.Dt = dt
	}
	if cmd.Flags().Changed("steps") {
		cfg.Steps = steps
	}

	if len(args) > 0 {
		coeffs, err := parseArgs(args)
		if err != nil {
			return nil, err
		}
		cfg.Coeffs = coeffs
		cfg.Roots = nil
	}

	return cfg, cfg.Validate()
}

func buildPoly(cfg *config.Config) (poly.Poly[float64], error) {
	if len(cfg.Coeffs) > 0 {
		return poly.FromCoeffs(cfg.Coeffs), nil
	}
	if len(cfg.Roots) > 0 {
		return poly.FromRoots(cfg.Roots), nil
	}
	return poly.Zero[float64](), fmt.Errorf("no polynomial given: pass coefficients or use --preset")
}

func buildTf(cfg *config.Config) (tf.Tf[float64], error) {
	if len(cfg.Num) == 0 || len(cfg.Den) == 0 {
		return tf.Tf[float64]{}, fmt.Errorf("no transfer function given: pass --num and --den or use --preset")
	}
	return tf.New(poly.FromCoeffs(cfg.Num), poly.FromCoeffs(cfg.Den)), nil
}

func findRoots(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	p, err := buildPoly(cfg)
	if err != nil {
		return err
	}

	var roots []complex128
	switch cfg.Method {
	case "iterative":
		roots = poly.IterativeRootsWithMax(p, cfg.MaxIter)
	default:
		roots = poly.ComplexRoots(p)
	}

	if asJSON {
		type root struct {
			Re float64 `json:"re"`
			Im float64 `json:"im"`
		}
		out := make([]root, len(roots))
		for i, r := range roots {
			out[i] = root{Re: real(r), Im: imag(r)}
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	if asCSV {
		w := csv.NewWriter(os.Stdout)
		defer w.Flush()
		if err := w.Write([]string{"re", "im"}); err != nil {
			return err
		}
		for _, r := range roots {
			row := []string{
				strconv.FormatFloat(real(r), 'g', -1, 64),
				strconv.FormatFloat(imag(r), 'g', -1, 64),
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
		return nil
	}

	fmt.Printf("polynomial: %s\n", p)
	fmt.Printf("method: %s\n\n", cfg.Method)

	if len(roots) == 0 {
		fmt.Println("no roots: polynomial is constant or zero")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ROOT\tRE\tIM\tABS")
	for i, r := range roots {
		fmt.Fprintf(w, "%d\t%.6g\t%.6g\t%.6g\n", i, real(r), imag(r), cmplx.Abs(r))
	}
	return w.Flush()
}

func evalPoly(cmd *cobra.Command, args []string) error {
	x, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("invalid evaluation point %q: %w", args[0], err)
	}
	coeffs, err := parseArgs(args[1:])
	if err != nil {
		return err
	}

	p := poly.FromCoeffs(coeffs)
	der := p.Derive()

	fmt.Printf("p(s)  = %s\n", p)
	fmt.Printf("p'(s) = %s\n\n", der)
	fmt.Printf("p(%g)  = %.10g\n", x, p.Eval(x))
	fmt.Printf("p'(%g) = %.10g\n", x, der.Eval(x))
	return nil
}

func bodePlot(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	g, err := buildTf(cfg)
	if err != nil {
		return err
	}

	points := tf.Bode(g, cfg.WMin, cfg.WMax, cfg.WStep)
	if len(points) == 0 {
		return fmt.Errorf("empty frequency grid")
	}

	if asCSV {
		w := csv.NewWriter(os.Stdout)
		defer w.Flush()
		if err := w.Write([]string{"omega", "magnitude_db", "phase_deg"}); err != nil {
			return err
		}
		for _, pt := range points {
			row := []string{
				strconv.FormatFloat(pt.AngularFreq, 'g', -1, 64),
				strconv.FormatFloat(pt.MagnitudeDb, 'g', -1, 64),
				strconv.FormatFloat(pt.PhaseDeg, 'g', -1, 64),
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
		return nil
	}

	fmt.Printf("G(s) = %s\n", g)
	fmt.Printf("%d points from %.3g to %.3g rad/s\n\n", len(points), cfg.WMin, cfg.WMax)

	mag := make([]float64, len(points))
	phase := make([]float64, len(points))
	for i, pt := range points {
		mag[i] = pt.MagnitudeDb
		phase[i] = pt.PhaseDeg
	}

	fmt.Println(asciigraph.Plot(mag,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption("magnitude (dB), log frequency axis"),
	))
	fmt.Println()
	fmt.Println(asciigraph.Plot(phase,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption("phase (deg), log frequency axis"),
	))
	return nil
}

func stepResponse(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	if len(cfg.Num) == 0 || len(cfg.Den) == 0 {
		return fmt.Errorf("no transfer function given: pass --num and --den or use --preset")
	}

	sys, err := linsys.FromTransferFunction(cfg.Num, cfg.Den)
	if err != nil {
		return err
	}

	x0 := make([]float64, sys.StateDim())
	samples, err := sys.Rk2Response([]float64{1}, x0, cfg.Dt, cfg.Steps)
	if err != nil {
		return err
	}

	if asCSV {
		w := csv.NewWriter(os.Stdout)
		defer w.Flush()
		if err := w.Write([]string{"time", "output"}); err != nil {
			return err
		}
		for _, s := range samples {
			row := []string{
				strconv.FormatFloat(s.Time, 'f', 6, 64),
				strconv.FormatFloat(s.Output[0], 'g', -1, 64),
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
		return nil
	}

	output := make([]float64, len(samples))
	for i, s := range samples {
		output[i] = s.Output[0]
	}

	fmt.Printf("unit step response, dt=%g, %d steps\n", cfg.Dt, cfg.Steps)
	if sys.IsStable() {
		fmt.Printf("final value: %.6g\n", output[len(output)-1])
	} else {
		fmt.Println("warning: system is not asymptotically stable")
	}
	fmt.Println()
	fmt.Println(asciigraph.Plot(output,
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption("y(t)"),
	))
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tKIND\tDETAIL")
	for _, name := range config.ListPresets() {
		cfg := config.GetPreset(name)
		switch {
		case len(cfg.Num) > 0:
			fmt.Fprintf(w, "%s\ttransfer function\tnum=%v den=%v\n", name, cfg.Num, cfg.Den)
		case len(cfg.Roots) > 0:
			fmt.Fprintf(w, "%s\tpolynomial\t%d known roots\n", name, len(cfg.Roots))
		default:
			fmt.Fprintf(w, "%s\tpolynomial\tdegree %d\n", name, len(cfg.Coeffs)-1)
		}
	}
	return w.Flush()
}

func parseArgs(args []string) ([]float64, error) {
	coeffs := make([]float64, len(args))
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid coefficient %q: %w", a, err)
		}
		coeffs[i] = v
	}
	return coeffs, nil
}

func parseCoeffs(s string) ([]float64, error) {
	return parseArgs(strings.Split(s, ","))
}
