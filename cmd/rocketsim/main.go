package main

import (
	"context"
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/rocketsim/internal/builder"
	"github.com/san-kum/rocketsim/internal/design"
	"github.com/san-kum/rocketsim/internal/flight"
	"github.com/san-kum/rocketsim/internal/metrics"
	"github.com/san-kum/rocketsim/internal/spatial"
	"github.com/san-kum/rocketsim/internal/store"
	"github.com/san-kum/rocketsim/internal/tvc"
	"github.com/san-kum/rocketsim/internal/viz"
)

var (
	dataDir  string
	dt       float64
	duration float64

	thrustN   float64
	burnTime  float64
	gimbalX   float64 // deg
	gimbalY   float64 // deg
	nozzleZ   float64
	servoRate float64 // deg/s

	plotAfter  bool
	exportPath string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "rocketsim",
		Short: "rigid-body flight simulation for small TVC vehicles",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".rocketsim", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [config]",
		Short: "fly a vehicle and store the run",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runFlight,
	}
	addFlightFlags(runCmd)
	runCmd.Flags().BoolVar(&plotAfter, "plot", false, "plot altitude after the run")

	inspectCmd := &cobra.Command{
		Use:   "inspect [config]",
		Short: "print mass properties before and after lock",
		Args:  cobra.MaximumNArgs(1),
		RunE:  inspectVehicle,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export a stored run as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}
	exportCmd.Flags().StringVar(&exportPath, "output", "", "output file (default stdout)")

	liveCmd := &cobra.Command{
		Use:   "live [config]",
		Short: "fly a vehicle with a live terminal view",
		Args:  cobra.MaximumNArgs(1),
		RunE:  liveFlight,
	}
	addFlightFlags(liveCmd)

	rootCmd.AddCommand(runCmd, inspectCmd, listCmd, plotCmd, exportCmd, liveCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func addFlightFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&dt, "dt", 0.01, "timestep")
	cmd.Flags().Float64Var(&duration, "time", 30.0, "maximum duration")
	cmd.Flags().Float64Var(&thrustN, "thrust", 30.0, "motor thrust (N)")
	cmd.Flags().Float64Var(&burnTime, "burn", 2.0, "burn time (s)")
	cmd.Flags().Float64Var(&gimbalX, "gimbal-x", 0.0, "gimbal x target (deg)")
	cmd.Flags().Float64Var(&gimbalY, "gimbal-y", 0.0, "gimbal y target (deg)")
	cmd.Flags().Float64Var(&nozzleZ, "nozzle", 0.0, "nozzle height in body frame (m)")
	cmd.Flags().Float64Var(&servoRate, "servo-rate", 270.0, "servo slew rate (deg/s)")
}

func loadVehicle(args []string) (*builder.VehicleConfig, error) {
	if len(args) == 0 {
		return builder.DefaultVehicle(), nil
	}
	return builder.Load(args[0])
}

func buildLoop(cfg *builder.VehicleConfig) (*design.Design, *flight.Loop, error) {
	d, err := builder.Build(cfg)
	if err != nil {
		return nil, nil, err
	}
	if err := d.Lock(); err != nil {
		return nil, nil, err
	}

	mount := tvc.NewMountWithRate(servoRate)
	mount.MoveTo(spatial.NewVec3(0, 0, nozzleZ))
	mount.SetTarget(gimbalX*math.Pi/180, gimbalY*math.Pi/180)
	mount.SnapToTarget()

	loop := flight.New(d)
	loop.AddForce(flight.NewGravity())
	loop.AddForce(&flight.Thrust{Curve: flight.ConstantCurve(thrustN, burnTime), Mount: mount})
	loop.AddMetric(metrics.NewApogee())
	loop.AddMetric(metrics.NewMaxSpeed())
	loop.AddMetric(metrics.NewTilt())
	return d, loop, nil
}

func runFlight(cmd *cobra.Command, args []string) error {
	vcfg, err := loadVehicle(args)
	if err != nil {
		return err
	}
	_, loop, err := buildLoop(vcfg)
	if err != nil {
		return err
	}

	cfg := flight.Config{Dt: dt, Duration: duration, StopOnGround: true}
	result, err := loop.Run(context.Background(), cfg)
	if err != nil {
		return err
	}

	st := store.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(vcfg.Name, cfg, result)
	if err != nil {
		return err
	}

	fmt.Println(viz.Header.Render("flight complete"))
	fmt.Printf("%s %s\n", viz.Label.Render("run"), viz.Value.Render(runID))
	fmt.Printf("%s %s\n", viz.Label.Render("steps"), viz.Value.Render(fmt.Sprintf("%d", result.StepsTaken)))
	for name, value := range result.Metrics {
		fmt.Printf("%s %s\n", viz.Label.Render(name), viz.Value.Render(fmt.Sprintf("%.3f", value)))
	}

	if plotAfter {
		fmt.Println()
		fmt.Println(viz.AltitudePlot(result.States))
	}
	return nil
}

func inspectVehicle(cmd *cobra.Command, args []string) error {
	vcfg, err := loadVehicle(args)
	if err != nil {
		return err
	}
	d, err := builder.Build(vcfg)
	if err != nil {
		return err
	}

	before := d.Properties()
	if err := d.Lock(); err != nil {
		return err
	}
	after := d.Properties()

	printProps := func(title string, p design.Properties) {
		fmt.Println(viz.Header.Render(title))
		fmt.Printf("  mass    %.4f kg\n", p.Mass)
		fmt.Printf("  com     (%.4f, %.4f, %.4f) m\n", p.CenterOfMass.X, p.CenterOfMass.Y, p.CenterOfMass.Z)
		fmt.Println("  inertia [kg·m²]")
		for i := 0; i < 3; i++ {
			fmt.Printf("    %+.6e %+.6e %+.6e\n", p.Inertia[i*3], p.Inertia[i*3+1], p.Inertia[i*3+2])
		}
	}

	printProps(fmt.Sprintf("%s (unlocked)", vcfg.Name), before)
	fmt.Println()
	printProps(fmt.Sprintf("%s (locked)", vcfg.Name), after)
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs stored")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tVEHICLE\tTIME\tSTEPS\tAPOGEE")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%.2f\n",
			run.ID, run.Vehicle, run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Steps, run.Metrics["apogee"])
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	states, err := st.LoadStates(args[0])
	if err != nil {
		return err
	}

	fmt.Println(viz.AltitudePlot(states))
	fmt.Println()
	fmt.Println(viz.SpeedPlot(states))
	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	if exportPath != "" {
		return st.ExportJSONFile(args[0], exportPath)
	}
	return st.ExportJSON(args[0], os.Stdout)
}

func liveFlight(cmd *cobra.Command, args []string) error {
	vcfg, err := loadVehicle(args)
	if err != nil {
		return err
	}
	_, loop, err := buildLoop(vcfg)
	if err != nil {
		return err
	}
	return viz.RunLive(loop, dt)
}
