package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/lmarques/relmet/internal/config"
	"github.com/lmarques/relmet/internal/frame"
	"github.com/lmarques/relmet/internal/limits"
	"github.com/lmarques/relmet/internal/metric"
	"github.com/lmarques/relmet/internal/predict"
	"github.com/lmarques/relmet/internal/storage"
	"github.com/lmarques/relmet/internal/sweep"
	"github.com/lmarques/relmet/internal/units"
	"github.com/lmarques/relmet/internal/viz"
)

var (
	dataDir  string
	bodyName string
	mass     float64
	radius   float64
	rCoord   float64
	rFactor  float64
	velocity float64
	// sweep parameters
	sweepKind   string
	sweepStart  float64
	sweepStop   float64
	sweepPoints int
	sweepLog    bool
	configFile  string
	preset      string
	ensemble    []string
	// compare parameters
	bodyA string
	rFacA float64
	velA  float64
	bodyB string
	rFacB float64
	velB  float64
	// quantum analogy
	curvature float64
	// experimental predictions
	towerHeight float64
	atomMass    float64
	separation  float64
	pairMass    float64
	redshift    float64
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "relmet",
		Short: "relativistic time dilation calculator",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to the interactive explorer when no command given
			return viz.RunExplorer()
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".relmet", "data directory")

	horizonCmd := &cobra.Command{
		Use:   "horizon",
		Short: "schwarzschild radius for a mass or catalog body",
		RunE:  runHorizon,
	}
	horizonCmd.Flags().StringVar(&bodyName, "body", "", "catalog body name")
	horizonCmd.Flags().Float64Var(&mass, "mass", units.SolarMass, "mass in kg")

	dilationCmd := &cobra.Command{
		Use:   "dilation",
		Short: "dilation factors for a body and observer",
		RunE:  runDilation,
	}
	dilationCmd.Flags().StringVar(&bodyName, "body", "stellar-bh", "catalog body name")
	dilationCmd.Flags().Float64Var(&mass, "mass", 0, "custom mass in kg (overrides --body)")
	dilationCmd.Flags().Float64Var(&radius, "radius", 0, "custom body radius in m")
	dilationCmd.Flags().Float64Var(&rCoord, "r", 0, "observer radial coordinate in m")
	dilationCmd.Flags().Float64Var(&rFactor, "r-factor", 10, "observer radial coordinate in Rs units")
	dilationCmd.Flags().Float64Var(&velocity, "velocity", 0, "observer speed in m/s")

	compareCmd := &cobra.Command{
		Use:   "compare",
		Short: "relative dilation between two frames",
		RunE:  runCompare,
	}
	compareCmd.Flags().StringVar(&bodyA, "body-a", "stellar-bh", "first frame's body")
	compareCmd.Flags().Float64Var(&rFacA, "r-factor-a", 1.1, "first observer's r in Rs units")
	compareCmd.Flags().Float64Var(&velA, "velocity-a", 0, "first observer's speed in m/s")
	compareCmd.Flags().StringVar(&bodyB, "body-b", "earth", "second frame's body")
	compareCmd.Flags().Float64Var(&rFacB, "r-factor-b", 0, "second observer's r in Rs units (0 = surface)")
	compareCmd.Flags().Float64Var(&velB, "velocity-b", 0, "second observer's speed in m/s")

	quantumCmd := &cobra.Command{
		Use:   "quantum",
		Short: "quantum-scale curvature analogy",
		RunE:  runQuantum,
	}
	quantumCmd.Flags().Float64Var(&curvature, "factor", 1e6, "curvature factor")

	predictCmd := &cobra.Command{
		Use:   "predict",
		Short: "experimental predictions of the dilation model",
	}

	interferometryCmd := &cobra.Command{
		Use:   "interferometry",
		Short: "atom-interferometry phase shift for a drop tower",
		RunE:  runInterferometry,
	}
	interferometryCmd.Flags().Float64Var(&towerHeight, "height", 100, "drop height in m")
	interferometryCmd.Flags().Float64Var(&atomMass, "atom-mass", 87, "atom mass in amu")

	decoherenceCmd := &cobra.Command{
		Use:   "decoherence",
		Short: "gravitational decoherence of an entangled pair",
		RunE:  runDecoherence,
	}
	decoherenceCmd.Flags().Float64Var(&separation, "separation", 1, "pair separation in m")
	decoherenceCmd.Flags().Float64Var(&pairMass, "mass", 1e-27, "particle mass in kg")

	redshiftCmd := &cobra.Command{
		Use:   "redshift",
		Short: "cosmological vacuum-energy correction",
		RunE:  runRedshift,
	}
	redshiftCmd.Flags().Float64Var(&redshift, "z", 0, "redshift")

	predictCmd.AddCommand(interferometryCmd, decoherenceCmd, redshiftCmd)

	limitsCmd := &cobra.Command{
		Use:   "limits",
		Short: "classical limit recovery report",
		RunE:  runLimits,
	}
	limitsCmd.Flags().StringVar(&bodyName, "body", "earth", "catalog body name")
	limitsCmd.Flags().Float64Var(&rCoord, "r", 0, "radial coordinate in m (0 = surface)")
	limitsCmd.Flags().Float64Var(&velocity, "velocity", 3e5, "speed in m/s")

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "sweep a parameter and persist the sampled curve",
		RunE:  runSweep,
	}
	sweepCmd.Flags().StringVar(&bodyName, "body", config.DefaultBody, "catalog body name")
	sweepCmd.Flags().StringVar(&sweepKind, "kind", "radius", "sweep kind (radius|velocity|curvature)")
	sweepCmd.Flags().Float64Var(&sweepStart, "start", config.DefaultStart, "sweep start")
	sweepCmd.Flags().Float64Var(&sweepStop, "stop", config.DefaultStop, "sweep stop")
	sweepCmd.Flags().IntVar(&sweepPoints, "points", config.DefaultPoints, "number of samples")
	sweepCmd.Flags().BoolVar(&sweepLog, "log", false, "logarithmic spacing")
	sweepCmd.Flags().Float64Var(&rFactor, "r-factor", 0, "observer radius in Rs units for velocity sweeps (0 = surface)")
	sweepCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	sweepCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	sweepCmd.Flags().StringSliceVar(&ensemble, "bodies", nil, "sweep several bodies in parallel")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot run results",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run data to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list sweep presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, p := range config.ListPresets() {
				fmt.Println(p)
			}
			return nil
		},
	}

	bodiesCmd := &cobra.Command{
		Use:   "bodies",
		Short: "list catalog bodies",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tMASS (kg)\tRADIUS (m)\tRS (m)")
			for _, name := range frame.Names() {
				body, _ := frame.Lookup(name)
				rs, err := body.Rs()
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%s\t%.4e\t%.4e\t%.4e\n", body.Name, body.Mass, body.Radius, rs)
			}
			return w.Flush()
		},
	}

	exploreCmd := &cobra.Command{
		Use:   "explore",
		Short: "interactive dilation explorer",
		RunE: func(cmd *cobra.Command, args []string) error {
			return viz.RunExplorer()
		},
	}

	rootCmd.AddCommand(horizonCmd, dilationCmd, compareCmd, quantumCmd, predictCmd, limitsCmd,
		sweepCmd, listCmd, plotCmd, exportJSONCmd, exportCSVCmd, presetsCmd, bodiesCmd, exploreCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func resolveBody() (frame.Body, error) {
	if mass > 0 {
		body := frame.Body{Name: "custom", Mass: mass, Radius: radius}
		if body.Radius == 0 {
			// characteristic radius defaults to Rs for surfaceless bodies
			rs, err := body.Rs()
			if err != nil {
				return frame.Body{}, err
			}
			body.Radius = rs
		}
		return body, body.Validate()
	}
	body, ok := frame.Lookup(bodyName)
	if !ok {
		return frame.Body{}, fmt.Errorf("unknown body: %s (available: %v)", bodyName, frame.Names())
	}
	return body, nil
}

func runHorizon(cmd *cobra.Command, args []string) error {
	m := mass
	if bodyName != "" {
		body, ok := frame.Lookup(bodyName)
		if !ok {
			return fmt.Errorf("unknown body: %s (available: %v)", bodyName, frame.Names())
		}
		m = body.Mass
	}

	rs, err := metric.SchwarzschildRadius(m)
	if err != nil {
		return err
	}

	fmt.Printf("mass: %.6e kg\n", m)
	fmt.Printf("schwarzschild radius: %.6e m\n", rs)
	return nil
}

func runDilation(cmd *cobra.Command, args []string) error {
	body, err := resolveBody()
	if err != nil {
		return err
	}

	rs, err := body.Rs()
	if err != nil {
		return err
	}

	r := rCoord
	if r == 0 {
		r = rFactor * rs
	}

	res, err := frame.Dilation(body, frame.Observer{R: r, V: velocity})
	if err != nil {
		return err
	}

	comp, err := metric.MetricComponents(body.Mass, r)
	if err != nil {
		return err
	}

	fmt.Printf("body: %s (Rs = %.6e m)\n", body.Name, rs)
	fmt.Printf("observer: r = %.6e m (%.3f Rs), v = %.6e m/s\n\n", r, r/rs, velocity)
	fmt.Printf("g_tt: %.9f\n", comp.Gtt)
	fmt.Printf("g_rr: %.6e\n", comp.Grr)
	fmt.Printf("tau (gravitational): %.9f\n", res.TauGrav)
	fmt.Printf("tau (kinematic): %.9f\n", res.TauKin)
	fmt.Printf("tau (combined): %.9f\n", res.Tau)
	fmt.Printf("apparent rate factor: %.6e\n", res.ApparentFactor)

	if velocity != 0 {
		vApp, err := metric.ApparentVelocity(velocity, res.Tau)
		if err != nil {
			return err
		}
		fmt.Printf("apparent velocity: %.6e m/s", vApp)
		if vApp > units.C {
			fmt.Printf("  (%.2f c, coordinate projection)", vApp/units.C)
		}
		fmt.Println()
	}

	b, err := metric.Bogoliubov(res.Tau)
	if err != nil {
		return err
	}
	fmt.Printf("\nbogoliubov: alpha = %.6f, beta = %.6f, thermal n = %.6f\n", b.Alpha, b.Beta, b.Thermal)

	u, err := metric.ModifiedUncertainty(res.Tau)
	if err != nil {
		return err
	}
	fmt.Printf("modified uncertainty bound: %.6e J*s (hbar = %.6e)\n", u, units.Hbar)

	return nil
}

func runCompare(cmd *cobra.Command, args []string) error {
	frameA, obsA, err := lookupFrame(bodyA, rFacA, velA)
	if err != nil {
		return err
	}
	frameB, obsB, err := lookupFrame(bodyB, rFacB, velB)
	if err != nil {
		return err
	}

	cmpRes, err := frame.Compare(frameA, obsA, frameB, obsB)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "FRAME\tBODY\tR (m)\tV (m/s)\tTAU")
	fmt.Fprintf(w, "A\t%s\t%.4e\t%.4e\t%.9f\n", frameA.Name, obsA.R, obsA.V, cmpRes.A.Tau)
	fmt.Fprintf(w, "B\t%s\t%.4e\t%.4e\t%.9f\n", frameB.Name, obsB.R, obsB.V, cmpRes.B.Tau)
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\nrelative dilation (tauA/tauB): %.6e\n", cmpRes.Relative)
	if cmpRes.Relative < 1 {
		fmt.Printf("frame A ages %.3fx slower than frame B\n", 1/cmpRes.Relative)
	} else {
		fmt.Printf("frame B ages %.3fx slower than frame A\n", cmpRes.Relative)
	}
	return nil
}

func lookupFrame(name string, rFac, vel float64) (frame.Body, frame.Observer, error) {
	body, ok := frame.Lookup(name)
	if !ok {
		return frame.Body{}, frame.Observer{}, fmt.Errorf("unknown body: %s (available: %v)", name, frame.Names())
	}
	r := body.Radius
	if rFac > 0 {
		rs, err := body.Rs()
		if err != nil {
			return frame.Body{}, frame.Observer{}, err
		}
		r = rFac * rs
	}
	return body, frame.Observer{R: r, V: vel}, nil
}

func runQuantum(cmd *cobra.Command, args []string) error {
	a, err := frame.QuantumAnalogy(curvature)
	if err != nil {
		return err
	}

	fmt.Printf("curvature factor: %.3e\n", a.CurvatureFactor)
	fmt.Printf("effective mass: %.6e kg (%.3e planck masses)\n", a.EffectiveMass, a.MassNatural)
	fmt.Printf("effective horizon: %.6e m (nuclear scale %.0e m, %.3e planck lengths)\n",
		a.EffectiveRs, frame.NuclearScale, a.ScaleNatural)
	fmt.Printf("tau (quantum scale): %.9f\n", a.TauQuantum)
	fmt.Printf("tau (earth surface): %.12f\n", a.TauMacro)
	fmt.Printf("relative dilation (macro/quantum): %.6e\n", a.Relative)
	return nil
}

func runInterferometry(cmd *cobra.Command, args []string) error {
	p, err := predict.AtomInterferometry(towerHeight, atomMass)
	if err != nil {
		return err
	}

	fmt.Printf("drop height: %g m, atom mass: %g amu\n", towerHeight, atomMass)
	fmt.Printf("classical phase shift: %.6e rad\n", p.ClassicalShift)
	fmt.Printf("correction: %.6e rad (relative %.3e)\n", p.Correction, p.RelativeDeviation)
	fmt.Printf("total shift: %.6e rad\n", p.TotalShift)
	fmt.Printf("required precision: %.3e fringes (current best ~1e-10)\n", p.RequiredPrecision)
	if p.Testable {
		fmt.Println("testable with current interferometry")
	} else {
		fmt.Printf("not testable: needs %.0e times better precision\n", p.TechnologyGap)
	}
	return nil
}

func runDecoherence(cmd *cobra.Command, args []string) error {
	p, err := predict.EntanglementDecoherence(separation, pairMass)
	if err != nil {
		return err
	}

	fmt.Printf("separation: %g m, mass: %g kg\n", separation, pairMass)
	fmt.Printf("classical rate: %.6e 1/s\n", p.ClassicalRate)
	fmt.Printf("correction: %.6e 1/s (relative %.3e)\n", p.CorrectionRate, p.RelativeCorrection)
	fmt.Printf("decoherence time: %.6e s\n", p.Time)
	fmt.Printf("  vs universe age: %.1e x\n", p.VsUniverseAge)
	fmt.Printf("  vs one century: %.1e x\n", p.VsHumanScale)
	if p.Detectable {
		fmt.Println("detectable within a human timescale")
	} else {
		fmt.Println("not detectable: timescale out of reach")
	}
	return nil
}

func runRedshift(cmd *cobra.Command, args []string) error {
	p, err := predict.CosmologicalRedshift(redshift)
	if err != nil {
		return err
	}

	fmt.Printf("redshift: z = %g\n", redshift)
	fmt.Printf("observed vacuum density: %.6e kg/m3\n", p.ObservedVacuumDensity)
	fmt.Printf("predicted correction: %.6e kg/m3 (relative %.3e)\n", p.Correction, p.RelativeCorrection)
	fmt.Printf("hubble correction: dH/H0 = %.3e\n", p.HubbleCorrection)
	if p.Observable {
		fmt.Println("within reach of expansion-rate measurements")
	} else {
		fmt.Println("below observational sensitivity")
	}
	return nil
}

func runLimits(cmd *cobra.Command, args []string) error {
	body, ok := frame.Lookup(bodyName)
	if !ok {
		return fmt.Errorf("unknown body: %s (available: %v)", bodyName, frame.Names())
	}

	r := rCoord
	if r == 0 {
		r = body.Radius
	}

	flat, err := limits.FlatSpace(body.Mass, r)
	if err != nil {
		return err
	}

	fmt.Printf("flat-space limit at %s, r = %.4e m:\n", body.Name, r)
	fmt.Printf("  Rs/r: %.6e\n", flat.CurvatureParam)
	fmt.Printf("  g_tt: %.12f  g_rr: %.12f\n", flat.Gtt, flat.Grr)
	fmt.Printf("  weak field recovered: %v\n\n", flat.Recovered)

	nr, err := limits.NonRelativistic(velocity)
	if err != nil {
		return err
	}

	fmt.Printf("non-relativistic limit at v = %.4e m/s:\n", velocity)
	fmt.Printf("  beta: %.6e  gamma: %.9f\n", nr.Beta, nr.Gamma)
	fmt.Printf("  leading correction: %.6e\n", nr.Correction)
	fmt.Printf("  classical regime recovered: %v\n\n", nr.Recovered)

	tau, err := metric.CombinedDilation(body.Mass, r, velocity)
	if err != nil {
		return err
	}
	sum, dev, err := limits.Unitarity(tau)
	if err != nil {
		return err
	}
	fmt.Printf("bogoliubov unitarity at tau = %.9f:\n", tau)
	fmt.Printf("  alpha² + beta²: %.15f (deviation %.2e)\n", sum, dev)

	return nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	// CLI flags override preset and config values
	if cmd.Flags().Changed("body") {
		cfg.Body = config.BodyConfig{Name: bodyName}
	}
	if cmd.Flags().Changed("kind") {
		cfg.Sweep.Kind = sweepKind
	}
	if cmd.Flags().Changed("start") {
		cfg.Sweep.Start = sweepStart
	}
	if cmd.Flags().Changed("stop") {
		cfg.Sweep.Stop = sweepStop
	}
	if cmd.Flags().Changed("points") {
		cfg.Sweep.Points = sweepPoints
	}
	if cmd.Flags().Changed("log") {
		cfg.Sweep.Log = sweepLog
	}
	if cmd.Flags().Changed("r-factor") {
		cfg.Observer.RFactor = rFactor
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	sc := cfg.ResolveSweep()

	if len(ensemble) > 0 {
		return runEnsemble(st, sc)
	}

	body, err := cfg.ResolveBody()
	if err != nil {
		return err
	}

	result, err := sweep.Run(body, sc)
	if err != nil {
		return err
	}

	runID, err := st.Save(result)
	if err != nil {
		return err
	}

	printSweepSummary(runID, result)
	return nil
}

func runEnsemble(st *storage.Store, sc sweep.Config) error {
	bodies := make([]frame.Body, 0, len(ensemble))
	for _, name := range ensemble {
		body, ok := frame.Lookup(name)
		if !ok {
			return fmt.Errorf("unknown body: %s (available: %v)", name, frame.Names())
		}
		bodies = append(bodies, body)
	}

	ens := sweep.NewEnsemble(sc)
	results, err := ens.Run(context.Background(), bodies)
	if err != nil {
		return err
	}

	for _, result := range results {
		runID, err := st.Save(result)
		if err != nil {
			return err
		}
		printSweepSummary(runID, result)
		fmt.Println()
	}
	return nil
}

func printSweepSummary(runID string, result *sweep.Result) {
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("body: %s\n", result.Body.Name)
	fmt.Printf("samples: %d\n", len(result.Samples))
	if result.Truncated != nil {
		fmt.Printf("truncated: %v\n", result.Truncated)
	}
	fmt.Println("metrics:")
	for name, val := range result.Metrics {
		fmt.Printf("  %s: %.6e\n", name, val)
	}
	if len(result.Samples) > 1 {
		fmt.Println()
		fmt.Println(viz.PlotTau(result.Samples, fmt.Sprintf("tau vs %s", result.Config.Kind)))
	}
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tBODY\tKIND\tTIME\tPOINTS\tSAMPLES\tMIN_TAU")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%d\t%.6e\n",
			run.ID,
			run.Body,
			run.Kind,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Points,
			run.Samples,
			run.Metrics["min_tau"],
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	samples, err := st.LoadSamples(runID)
	if err != nil {
		return err
	}

	if len(samples) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("body: %s\n", meta.Body)
	fmt.Printf("samples: %d\n\n", len(samples))

	fmt.Println(viz.PlotTau(samples, fmt.Sprintf("tau vs %s", meta.Kind)))
	fmt.Println()
	fmt.Println(viz.PlotApparent(samples, "apparent velocity magnification"))

	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	samples, err := st.LoadSamples(runID)
	if err != nil {
		return err
	}

	return storage.ExportJSON(os.Stdout, meta, samples)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	samples, err := st.LoadSamples(runID)
	if err != nil {
		return err
	}

	if len(samples) == 0 {
		return fmt.Errorf("no data to export")
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if err := w.Write([]string{"x", "tau_grav", "tau_kin", "tau", "v_app"}); err != nil {
		return err
	}

	for _, s := range samples {
		row := make([]string, 0, 5)
		for _, v := range []float64{s.X, s.TauGrav, s.TauKin, s.Tau, s.Apparent} {
			row = append(row, strconv.FormatFloat(v, 'g', 12, 64))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return nil
}
