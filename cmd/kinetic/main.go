// Command kinetic is a terminal workbench for the kinetic motion core.
// It simulates springs, scroll physics and easing curves offline and
// plots the resulting traces, so tuning values can be judged before
// they are wired into a UI.
package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/go-kinetic/kinetic/pkg/animation"
	"github.com/go-kinetic/kinetic/pkg/errors"
	"github.com/go-kinetic/kinetic/pkg/profile"
	"github.com/go-kinetic/kinetic/pkg/scroll"
)

const version = "0.1.0"

var (
	profileDir string
	verbose    bool

	// spring flags
	springPreset string
	stiffness    float64
	damping      float64
	mass         float64
	fromPos      float64
	targetPos    float64
	impulse      float64

	// scroll flags
	flingVelocity float64
	minBound      float64
	maxBound      float64
	bounce        bool
	deceleration  float64
	resistance    float64

	// curve flags
	bezier string

	// shared plot flags
	seconds   float64
	plotWidth int
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "kinetic",
		Short:   "gesture and motion physics workbench",
		Version: version,
	}
	rootCmd.PersistentFlags().StringVar(&profileDir, "profile", "", "directory containing kinetic.yaml")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "verbose error output")

	springCmd := &cobra.Command{
		Use:   "spring",
		Short: "simulate a spring and plot its trajectory",
		RunE:  runSpring,
	}
	springCmd.Flags().StringVar(&springPreset, "preset", "", "spring preset: gentle, wobbly, stiff, slow, snappy")
	springCmd.Flags().Float64Var(&stiffness, "stiffness", 0, "spring stiffness (overrides preset)")
	springCmd.Flags().Float64Var(&damping, "damping", 0, "damping coefficient (overrides preset)")
	springCmd.Flags().Float64Var(&mass, "mass", 0, "mass (overrides preset)")
	springCmd.Flags().Float64Var(&fromPos, "from", 0, "starting position")
	springCmd.Flags().Float64Var(&targetPos, "target", 100, "target position")
	springCmd.Flags().Float64Var(&impulse, "impulse", 0, "initial velocity kick")
	springCmd.Flags().Float64Var(&seconds, "time", 2.0, "simulated seconds")

	scrollCmd := &cobra.Command{
		Use:   "scroll",
		Short: "simulate a scroll fling and plot the position",
		RunE:  runScroll,
	}
	scrollCmd.Flags().Float64Var(&flingVelocity, "fling", 300, "release velocity in px/s")
	scrollCmd.Flags().Float64Var(&minBound, "min", 0, "minimum scroll position")
	scrollCmd.Flags().Float64Var(&maxBound, "max", 500, "maximum scroll position")
	scrollCmd.Flags().BoolVar(&bounce, "bounce", false, "elastic overscroll at the bounds")
	scrollCmd.Flags().Float64Var(&deceleration, "deceleration", 0, "velocity retention per tick (default from profile)")
	scrollCmd.Flags().Float64Var(&resistance, "resistance", 0, "overscroll pull-back strength (default from profile)")
	scrollCmd.Flags().Float64Var(&seconds, "time", 3.0, "simulated seconds")

	curveCmd := &cobra.Command{
		Use:   "curve [name]",
		Short: "plot an easing curve",
		Long:  "Plot one of the stock easing curves (linear, ease, ease-in, ease-out, ease-in-out)\nor a custom cubic bezier given as x1,y1,x2,y2.",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runCurve,
	}
	curveCmd.Flags().StringVar(&bezier, "bezier", "", "custom control points x1,y1,x2,y2")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list motion profiles and spring presets",
		RunE:  runPresets,
	}

	for _, cmd := range []*cobra.Command{springCmd, scrollCmd, curveCmd, presetsCmd} {
		cmd.Flags().IntVar(&plotWidth, "width", 80, "plot width in columns")
		rootCmd.AddCommand(cmd)
	}

	if err := rootCmd.Execute(); err != nil {
		handler := &errors.LogHandler{Verbose: verbose}
		var kerr *errors.Error
		if errors.As(err, &kerr) {
			handler.HandleError(kerr)
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

// loadProfile resolves the active motion profile: kinetic.yaml from
// --profile (or the working directory) with its engine gate checked.
func loadProfile() (*profile.Profile, error) {
	dir := profileDir
	if dir == "" {
		dir = "."
	}
	p, err := profile.LoadOptional(dir)
	if err != nil {
		return nil, err
	}
	if err := p.CheckEngine(version); err != nil {
		return nil, err
	}
	return p, nil
}

func runSpring(cmd *cobra.Command, args []string) error {
	p, err := loadProfile()
	if err != nil {
		return err
	}
	if springPreset != "" {
		p.Spring.Preset = springPreset
	}
	if stiffness > 0 {
		p.Spring.Stiffness = stiffness
	}
	if damping > 0 {
		p.Spring.Damping = damping
	}
	if mass > 0 {
		p.Spring.Mass = mass
	}
	if springPreset != "" {
		if _, ok := profile.SpringPreset(springPreset); !ok {
			return errors.Errorf("kinetic.spring", errors.KindConfig,
				"unknown preset %q", springPreset)
		}
	}

	spring := p.NewSpring()
	spring.Position = fromPos
	spring.SetTarget(targetPos)
	spring.Impulse(impulse)

	const dt = 1.0 / 60
	trace := []float64{spring.Position}
	settledAt := -1.0
	for frame := 1; float64(frame)*dt <= seconds; frame++ {
		moving := spring.Tick(dt)
		trace = append(trace, spring.Position)
		if !moving {
			settledAt = float64(frame) * dt
			break
		}
	}

	cfg := p.SpringConfig()
	caption := fmt.Sprintf("spring k=%.0f c=%.0f m=%.2f", cfg.Stiffness, cfg.Damping, cfg.Mass)
	fmt.Println(asciigraph.Plot(trace,
		asciigraph.Height(12),
		asciigraph.Width(plotWidth),
		asciigraph.Caption(caption),
	))
	if settledAt >= 0 {
		fmt.Printf("settled at %.0f in %.2fs (%d frames)\n", spring.Position, settledAt, len(trace)-1)
	} else {
		fmt.Printf("still moving at %.2f after %.1fs\n", spring.Position, seconds)
	}
	return nil
}

func runScroll(cmd *cobra.Command, args []string) error {
	p, err := loadProfile()
	if err != nil {
		return err
	}
	if deceleration > 0 {
		p.Scroll.Deceleration = deceleration
	}
	if resistance > 0 {
		p.Scroll.OverscrollResistance = resistance
	}
	if bounce {
		p.Scroll.Overscroll = &bounce
	}

	physics := p.NewScrollPhysics(minBound, maxBound)
	physics.Fling(flingVelocity)

	const dt = 1.0 / 60
	trace := []float64{physics.Position()}
	peakOvershoot := 0.0
	for frame := 1; float64(frame)*dt <= seconds; frame++ {
		running := physics.Tick(dt)
		trace = append(trace, physics.Position())
		if over := overshoot(physics, minBound, maxBound); over > peakOvershoot {
			peakOvershoot = over
		}
		if !running {
			break
		}
	}

	mode := "clamp"
	if bounce {
		mode = "bounce"
	}
	fmt.Println(asciigraph.Plot(trace,
		asciigraph.Height(12),
		asciigraph.Width(plotWidth),
		asciigraph.Caption(fmt.Sprintf("scroll fling %.0f px/s, bounds [%.0f, %.0f], %s", flingVelocity, minBound, maxBound, mode)),
	))
	fmt.Printf("rest position %.1f after %d frames", physics.Position(), len(trace)-1)
	if peakOvershoot > 0 {
		fmt.Printf(", peak overscroll %.1fpx", peakOvershoot)
	}
	fmt.Println()
	return nil
}

func overshoot(p *scroll.Physics, minBound, maxBound float64) float64 {
	switch pos := p.Position(); {
	case pos > maxBound:
		return pos - maxBound
	case pos < minBound:
		return minBound - pos
	default:
		return 0
	}
}

var stockCurves = map[string]func(float64) float64{
	"linear":      animation.Linear,
	"ease":        animation.Ease,
	"ease-in":     animation.EaseIn,
	"ease-out":    animation.EaseOut,
	"ease-in-out": animation.EaseInOut,
}

func runCurve(cmd *cobra.Command, args []string) error {
	name := "ease"
	if len(args) == 1 {
		name = strings.ToLower(args[0])
	}

	curve, ok := stockCurves[name]
	caption := name
	if bezier != "" {
		points := strings.Split(bezier, ",")
		if len(points) != 4 {
			return errors.Errorf("kinetic.curve", errors.KindConfig,
				"--bezier wants x1,y1,x2,y2, got %q", bezier)
		}
		var coords [4]float64
		for i, raw := range points {
			if _, err := fmt.Sscanf(strings.TrimSpace(raw), "%f", &coords[i]); err != nil {
				return errors.Errorf("kinetic.curve", errors.KindParsing,
					"bad control point %q", raw)
			}
		}
		curve = animation.CubicBezier(coords[0], coords[1], coords[2], coords[3])
		caption = fmt.Sprintf("cubic-bezier(%s)", bezier)
	} else if !ok {
		return errors.Errorf("kinetic.curve", errors.KindConfig,
			"unknown curve %q (try: linear, ease, ease-in, ease-out, ease-in-out)", name)
	}

	width := plotWidth
	if width < 2 {
		width = 80
	}
	samples := make([]float64, 0, width)
	for i := 0; i < width; i++ {
		samples = append(samples, curve(float64(i)/float64(width-1)))
	}
	fmt.Println(asciigraph.Plot(samples,
		asciigraph.Height(12),
		asciigraph.Width(plotWidth),
		asciigraph.Caption(caption),
	))
	return nil
}

func runPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)

	fmt.Fprintln(w, "PROFILE\tLONG PRESS\tSWIPE DIST\tSPRING\tDECELERATION\tBOUNCE")
	for _, name := range profile.PresetNames() {
		p, _ := profile.Preset(name)
		bounce := "no"
		if p.Scroll.Overscroll != nil && *p.Scroll.Overscroll {
			bounce = "yes"
		}
		fmt.Fprintf(w, "%s\t%dms\t%.0fpx\t%s\t%.2f\t%s\n",
			name, p.Gesture.LongPressMillis, p.Gesture.SwipeMinDistance,
			p.Spring.Preset, p.Scroll.Deceleration, bounce)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "SPRING\tSTIFFNESS\tDAMPING\tMASS")
	for _, name := range []string{"gentle", "wobbly", "stiff", "slow", "snappy"} {
		cfg, _ := profile.SpringPreset(name)
		fmt.Fprintf(w, "%s\t%.0f\t%.0f\t%.2f\n", name, cfg.Stiffness, cfg.Damping, cfg.Mass)
	}
	return w.Flush()
}
