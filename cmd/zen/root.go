package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	editor "github.com/Zen-Editor/zen/adapter-bubbletea"
	"github.com/Zen-Editor/zen/core"
	"github.com/Zen-Editor/zen/geometry"
	"github.com/Zen-Editor/zen/internal/config"
	"github.com/Zen-Editor/zen/internal/log"
	"github.com/Zen-Editor/zen/theme"
)

func init() {
	// Query the terminal background before any program starts so the OSC 11
	// reply does not race with the input loop.
	_ = lipgloss.HasDarkBackground()
}

// rootOptions is the state shared by every command of one invocation.
type rootOptions struct {
	cfgFile string
	debug   bool
	cfg     config.Config
	cfgPath string
	fs      afero.Fs
}

func newRootCmd(version string) *cobra.Command {
	opts := &rootOptions{fs: afero.NewOsFs()}

	cmd := &cobra.Command{
		Use:   "zen [file]",
		Short: "A terminal code viewer with incremental highlighting",
		Long: `A terminal code viewer that highlights a document with chroma grammars,
colours it with a zen theme and keeps highlighting and layout cached per
document version.`,
		Version:           version,
		Args:              cobra.MaximumNArgs(1),
		SilenceUsage:      true,
		PersistentPreRunE: opts.setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.runApp(args)
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.cfgFile, "config", "c", "",
		"config file (default: .zen/config.yaml, then ~/.config/zen/config.yaml)")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false,
		"write a debug log to zen.log (also enabled by ZEN_DEBUG)")

	cmd.AddCommand(
		newExportCmd(opts),
		newThemesCmd(opts),
		newMeasureCmd(opts),
	)

	return cmd
}

// Execute runs the root command
func Execute(version string) error {
	return newRootCmd(version).Execute()
}

func (o *rootOptions) setup(cmd *cobra.Command, _ []string) error {
	if o.debug || os.Getenv("ZEN_DEBUG") != "" {
		cleanup, err := log.InitWithTeaLog("zen.log", "zen")
		if err != nil {
			return fmt.Errorf("opening debug log: %w", err)
		}
		cobra.OnFinalize(cleanup)
	}

	cfg, path, err := config.Load(o.cfgFile)
	if err != nil {
		// A broken config is not fatal; the defaults are used.
		fmt.Fprintf(cmd.ErrOrStderr(), "zen: %v\n", err)
	}
	o.cfg = cfg
	o.cfgPath = path

	return nil
}

// themesDir resolves the configured themes directory against the directory
// of the config file it came from.
func (o *rootOptions) themesDir() string {
	dir := o.cfg.ThemesDir
	if dir == "" || filepath.IsAbs(dir) || o.cfgPath == "" {
		return dir
	}
	return filepath.Join(filepath.Dir(o.cfgPath), dir)
}

func (o *rootOptions) loadThemes() []theme.Theme {
	return theme.NewLoader(o.fs).LoadDir(o.themesDir())
}

// calculator builds the geometry backend named by editor.metrics.
func (o *rootOptions) calculator() geometry.Calculator {
	ec := o.cfg.Editor

	if ec.Metrics == config.MetricsCell {
		calc := geometry.NewCells()
		calc.MaxScanLines = ec.MaxScanLines
		return calc
	}

	metrics, err := geometry.NewFontMetrics()
	if err != nil {
		log.ErrorErr(log.CatGeometry, "font metrics unavailable, measuring in cells", err)
		calc := geometry.NewCells()
		calc.MaxScanLines = ec.MaxScanLines
		return calc
	}

	calc := geometry.New(metrics)
	calc.MaxScanLines = ec.MaxScanLines
	calc.MinWidth = ec.MinWidth
	return calc
}

func (o *rootOptions) newSession(t theme.Theme) *core.Session {
	return core.New(t, core.WithCalculator(o.calculator()), core.WithFs(o.fs))
}

func (o *rootOptions) runApp(args []string) error {
	themes := o.loadThemes()
	session := o.newSession(theme.Find(themes, o.cfg.DefaultTheme))

	path := ""
	if len(args) == 1 {
		path = args[0]
		if err := session.LoadFile(path); err != nil {
			return err
		}
	}

	ed := editor.New(session, 80, 24)
	ed.WithThemes(themes)
	ed.HideLineNumbers(!o.cfg.Editor.ShowLineNumbers)
	ed.SetPlaceholder("nothing open - run zen FILE")

	model := newApp(ed, session, o.cfgPath, o.themesDir())
	if o.cfg.Watch {
		model.watch(path, o.cfg.WatchDebounce)
	}

	p := tea.NewProgram(model, tea.WithAltScreen())

	_, err := p.Run()

	// Clean up watcher resources
	model.Close()

	if err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}
