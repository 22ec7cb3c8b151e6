package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/topograph/internal/config"
	"github.com/san-kum/topograph/internal/export"
	"github.com/san-kum/topograph/internal/graph"
	"github.com/san-kum/topograph/internal/gui"
	"github.com/san-kum/topograph/internal/metrics"
	"github.com/san-kum/topograph/internal/render"
	"github.com/san-kum/topograph/internal/topology"
	"github.com/san-kum/topograph/internal/viz"
	"github.com/san-kum/topograph/internal/watch"
)

var (
	configFile string
	preset     string
	width      float64
	height     float64
	seed       int64
	verbose    bool
	watchFile  bool

	maxTicks int
	output   string
	logFile  string
	theme    string

	cfg *config.Config
)

func main() {
	rootCmd := &cobra.Command{
		Use:               "topograph [payload]",
		Short:             "interactive force-directed graph view",
		Args:              cobra.MaximumNArgs(1),
		PersistentPreRunE: setup,
		RunE:              runGUI,
		SilenceUsage:      true,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml or toml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "layout preset")
	rootCmd.PersistentFlags().Float64Var(&width, "width", 0, "view width (logical units)")
	rootCmd.PersistentFlags().Float64Var(&height, "height", 0, "view height (logical units)")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "layout random seed")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.Flags().BoolVarP(&watchFile, "watch", "w", false, "reload the payload file when it changes")

	guiCmd := &cobra.Command{
		Use:   "gui [payload]",
		Short: "open the graph in a window",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runGUI,
	}
	guiCmd.Flags().BoolVarP(&watchFile, "watch", "w", false, "reload the payload file when it changes")

	tuiCmd := &cobra.Command{
		Use:   "tui [payload]",
		Short: "draw the graph in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runTUI,
	}
	tuiCmd.Flags().StringVar(&logFile, "log", "topograph.log", "log file used with --verbose")
	tuiCmd.Flags().StringVar(&theme, "theme", viz.Themes[0].Name,
		"colour theme ("+strings.Join(viz.ThemeNames(), ", ")+")")
	tuiCmd.Flags().BoolVarP(&watchFile, "watch", "w", false, "reload the payload file when it changes")

	renderCmd := &cobra.Command{
		Use:   "render [payload...]",
		Short: "settle layouts and write png or svg snapshots",
		RunE:  runRender,
	}
	renderCmd.Flags().StringVarP(&output, "output", "o", "topograph.png", "output file (.png or .svg)")
	renderCmd.Flags().IntVar(&maxTicks, "max-ticks", 0, "tick cap (0 uses the config)")

	settleCmd := &cobra.Command{
		Use:   "settle [payload]",
		Short: "settle the layout headlessly and plot alpha",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSettle,
	}
	settleCmd.Flags().IntVar(&maxTicks, "max-ticks", 0, "tick cap (0 uses the config)")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list layout presets",
		RunE:  listPresets,
	}

	rootCmd.AddCommand(guiCmd, tuiCmd, renderCmd, settleCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// setup loads the configuration, applies flag overrides and attaches the
// logger to the command context.
func setup(cmd *cobra.Command, args []string) error {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	logger := newLogger(os.Stderr, level)
	cmd.SetContext(withLogger(cmd.Context(), logger))

	cfg = config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return err
		}
		cfg = loaded
		logger.Debug("config loaded", "path", configFile)
	}
	if preset != "" {
		if err := cfg.ApplyPreset(preset); err != nil {
			return err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("width") {
		cfg.Width = width
	}
	if flags.Changed("height") {
		cfg.Height = height
	}
	if flags.Changed("seed") {
		cfg.Layout.Seed = seed
	}
	if maxTicks > 0 {
		cfg.MaxTicks = maxTicks
	}
	return cfg.Validate()
}

// loadPayload falls back to the sample graph without an argument and to an
// empty graph when the file cannot be read.
func loadPayload(ctx context.Context, args []string) graph.Payload {
	if len(args) == 0 {
		return graph.Sample()
	}
	p, err := graph.Load(args[0])
	if err != nil {
		loggerFromContext(ctx).Warn("cannot load payload, starting with an empty graph", "err", err)
		return graph.Payload{}
	}
	return p
}

// watchPayload starts a watcher on the payload file when --watch is set.
// The returned channel is nil otherwise.
func watchPayload(args []string, logger *log.Logger) (<-chan graph.Payload, func(), error) {
	if !watchFile || len(args) == 0 {
		return nil, func() {}, nil
	}
	w, err := watch.New(args[0], watch.DefaultDebounce, logger)
	if err != nil {
		return nil, nil, err
	}
	return w.Changes(), func() { w.Close() }, nil
}

func runGUI(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	changes, stop, err := watchPayload(args, logger)
	if err != nil {
		return err
	}
	defer stop()
	return gui.Run(cfg, loadPayload(ctx, args), changes, logger)
}

// checkTheme rejects theme names the terminal view does not know.
func checkTheme(name string) error {
	if slices.Contains(viz.ThemeNames(), name) {
		return nil
	}
	return fmt.Errorf("unknown theme %q (available: %s)", name, strings.Join(viz.ThemeNames(), ", "))
}

func runTUI(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if err := checkTheme(theme); err != nil {
		return err
	}
	p := loadPayload(ctx, args)

	// The terminal is owned by the program, so logs go to a file or nowhere.
	logger := newLogger(io.Discard, log.InfoLevel)
	if verbose {
		f, err := tea.LogToFile(logFile, "")
		if err != nil {
			return err
		}
		defer f.Close()
		logger = newLogger(f, log.DebugLevel)
	}

	changes, stop, err := watchPayload(args, logger)
	if err != nil {
		return err
	}
	defer stop()
	return viz.Run(cfg, p, theme, changes, logger)
}

// runRender writes one snapshot per payload. Several payloads are rendered
// concurrently, each to the output name suffixed with the payload name.
func runRender(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	if len(args) <= 1 {
		ticks, err := export.Snapshot(ctx, output, cfg, loadPayload(ctx, args), logger)
		if err != nil {
			return err
		}
		fmt.Printf("%s wrote %s after %d ticks\n", statusIcon(true), output, ticks)
		return nil
	}

	jobs := make([]export.Job, len(args))
	for i, arg := range args {
		jobs[i] = export.Job{
			Path:    export.OutputFor(output, arg),
			Payload: loadPayload(ctx, args[i:i+1]),
		}
	}

	var failed int
	for _, r := range export.Batch(ctx, jobs, cfg, logger) {
		if r.Err != nil {
			logger.Error("render failed", "path", r.Path, "err", r.Err)
			fmt.Printf("%s %s\n", statusIcon(false), r.Path)
			failed++
			continue
		}
		fmt.Printf("%s wrote %s after %d ticks\n", statusIcon(true), r.Path, r.Ticks)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d renders failed", failed, len(jobs))
	}
	return nil
}

func runSettle(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	rec := render.NewRecorder()
	opts := topology.OptionsFromConfig(cfg)
	opts.Surface = rec
	opts.Logger = logger
	top, err := topology.New(opts)
	if err != nil {
		return err
	}

	observers := []metrics.Metric{
		metrics.NewKineticEnergy(),
		metrics.NewLinkStress(cfg.Layout.LinkDistance),
		metrics.NewOverlap(1),
		metrics.NewContainment(cfg.Width, cfg.Height),
	}

	var alphas []float64
	top.Init(loadPayload(ctx, args), topology.Hooks{
		OnTick: func() {
			alphas = append(alphas, top.Engine().Alpha())
			for _, m := range observers {
				m.Observe(top.Graph())
			}
			rec.Reset()
		},
	})

	ticks, err := top.Settle(ctx, cfg.MaxTicks)
	if err != nil {
		logger.Warn("layout did not come to rest", "ticks", ticks, "err", err)
	}
	if len(alphas) == 0 {
		fmt.Println(warn.Sprint("nothing to settle"))
		return nil
	}
	banner(os.Stdout, fmt.Sprintf("settled %d nodes", top.Graph().Len()))

	fmt.Println(asciigraph.Plot(alphas,
		asciigraph.Height(12),
		asciigraph.Width(72),
		asciigraph.Caption(fmt.Sprintf("alpha over %d ticks", ticks)),
	))

	rows := make([][]string, 0, len(observers))
	for _, m := range observers {
		rows = append(rows, []string{m.Name(), strconv.FormatFloat(m.Value(), 'f', 4, 64)})
	}
	table(os.Stdout, []string{"METRIC", "VALUE"}, rows)
	fmt.Println()

	rows = rows[:0]
	for _, n := range top.Graph().Nodes {
		rows = append(rows, []string{n.ID, fmt.Sprintf("%.1f", n.X), fmt.Sprintf("%.1f", n.Y)})
	}
	table(os.Stdout, []string{"ID", "X", "Y"}, rows)
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	banner(os.Stdout, "layout presets")
	var rows [][]string
	for _, name := range config.ListPresets() {
		l := config.Presets[name]
		rows = append(rows, []string{name,
			fmt.Sprint(l.LinkDistance), fmt.Sprint(l.ChargeStrength),
			fmt.Sprint(l.XStrength), fmt.Sprint(l.YStrength), fmt.Sprint(l.CollidePadding)})
	}
	table(os.Stdout, []string{"PRESET", "LINK", "CHARGE", "X", "Y", "PADDING"}, rows)
	return nil
}
