package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/Joyvent/com.joyvent.kinect-soccer/internal/bounds"
	"github.com/Joyvent/com.joyvent.kinect-soccer/internal/config"
	"github.com/Joyvent/com.joyvent.kinect-soccer/internal/core"
)

// boundsOptions describes one screen to compute the field rectangle for.
type boundsOptions struct {
	Width, Height  int
	HUDRows        int
	UnitsX, UnitsY float64
	Padding        float64
	AllowInset     bool
	Half           float64 // Footprint half extent, 0 for a point
}

var boundsFlags boundsOptions

var boundsCmd = &cobra.Command{
	Use:   "bounds",
	Short: "Print the field rectangle for a screen size",
	Long: `Compute the world rectangle the game uses as its field for a given
terminal size, scale and padding, the same way the game does every frame.

Values not given on the command line come from the loaded config and
the current terminal.

Examples:
  kickball bounds
  kickball bounds --width 120 --height 40
  kickball bounds --padding -0.5 --allow-inset
  kickball bounds --half 0.5`,
	Run: runBounds,
}

func init() {
	f := boundsCmd.Flags()
	f.IntVar(&boundsFlags.Width, "width", 0, "Screen width in cells (0 = terminal)")
	f.IntVar(&boundsFlags.Height, "height", 0, "Screen height in cells (0 = terminal)")
	f.IntVar(&boundsFlags.HUDRows, "hud", 1, "Rows reserved for the HUD above the field")
	f.Float64Var(&boundsFlags.UnitsX, "units-x", 0, "Cells per world unit across (0 = config)")
	f.Float64Var(&boundsFlags.UnitsY, "units-y", 0, "Cells per world unit down (0 = config)")
	f.Float64Var(&boundsFlags.Padding, "padding", 0, "Padding in world units (default from config)")
	f.BoolVar(&boundsFlags.AllowInset, "allow-inset", false, "Allow negative padding")
	f.Float64Var(&boundsFlags.Half, "half", 0, "Footprint half extent to also print the rectangle its center is kept in")
}

func runBounds(cmd *cobra.Command, _ []string) {
	cfg, err := config.LoadKickball(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v, using defaults\n", err)
		cfg = config.DefaultKickballConfig()
	}

	opts := boundsFlags
	term := terminalConfig()
	if opts.Width <= 0 {
		opts.Width = term.ScreenW
	}
	if opts.Height <= 0 {
		opts.Height = term.ScreenH
	}
	if opts.UnitsX <= 0 {
		opts.UnitsX = cfg.Field.UnitsX
	}
	if opts.UnitsY <= 0 {
		opts.UnitsY = cfg.Field.UnitsY
	}
	if !cmd.Flags().Changed("padding") {
		opts.Padding = cfg.Bounds.Padding
	}
	if !cmd.Flags().Changed("allow-inset") {
		opts.AllowInset = cfg.Bounds.AllowInset
	}

	// Padding warnings go straight to the user
	warn := log.NewWithOptions(os.Stderr, log.Options{Prefix: "kickball"})
	describeBounds(os.Stdout, opts, warn)
}

// describeBounds runs a tracker over an orthographic camera for opts and
// writes the resulting rectangle.
func describeBounds(w io.Writer, opts boundsOptions, logger *log.Logger) {
	fieldH := opts.Height - opts.HUDRows
	cam := bounds.NewOrthoCamera(float64(opts.Width), float64(fieldH), opts.UnitsX, opts.UnitsY)
	tracker := bounds.NewTracker(
		bounds.WithViewport(cam),
		bounds.WithPadding(opts.Padding),
		bounds.WithAllowInset(opts.AllowInset),
		bounds.WithLogger(logger),
	)
	tracker.OnFrame()
	r, _ := tracker.Current()

	fmt.Fprintf(w, "screen   %dx%d cells (%d HUD rows, %g x %g cells per unit)\n",
		opts.Width, fieldH, opts.HUDRows, opts.UnitsX, opts.UnitsY)
	fmt.Fprintf(w, "padding  %g\n", tracker.Padding())
	fmt.Fprintf(w, "bounds   min %s  max %s\n", fmtVec(r.Min), fmtVec(r.Max))
	size := r.Size()
	fmt.Fprintf(w, "size     %.2f x %.2f units\n", size.X, size.Y)

	if opts.Half > 0 {
		half := core.V(opts.Half, opts.Half)
		lo := r.ClampWithFootprint(r.Min, half)
		hi := r.ClampWithFootprint(r.Max, half)
		fmt.Fprintf(w, "centers  min %s  max %s (half extent %g)\n", fmtVec(lo), fmtVec(hi), opts.Half)
	}
}

func fmtVec(v core.Vec2) string {
	return fmt.Sprintf("(%.2f, %.2f)", v.X, v.Y)
}
