package main

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/Zen-Editor/zen/core"
	"github.com/Zen-Editor/zen/highlighter"
	"github.com/Zen-Editor/zen/theme"
)

type exportOptions struct {
	format string
	theme  string
	out    string
}

func newExportCmd(root *rootOptions) *cobra.Command {
	opts := &exportOptions{}

	cmd := &cobra.Command{
		Use:   "export FILE",
		Short: "Write a highlighted copy of a file",
		Long: `Highlight FILE with a zen theme and write it as HTML, SVG or terminal
escape sequences.

Examples:
  # Standalone HTML page
  zen export main.rs --format html --out main.html

  # Pick terminal colours from the environment
  zen export main.rs --theme Light`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd.OutOrStdout(), root, opts, args[0])
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "terminal",
		"html, svg, terminal, terminal16, terminal256 or terminal16m")
	cmd.Flags().StringVarP(&opts.theme, "theme", "t", "", "theme name (default: default_theme from the config)")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "output file (default: stdout)")

	return cmd
}

func runExport(stdout io.Writer, root *rootOptions, opts *exportOptions, path string) (err error) {
	data, err := afero.ReadFile(root.fs, path)
	if err != nil {
		return fmt.Errorf("%w %s: %w", core.ErrReadFile, path, err)
	}

	name := opts.theme
	if name == "" {
		name = root.cfg.DefaultTheme
	}
	t := theme.Find(root.loadThemes(), name)

	w := stdout
	if opts.out != "" {
		f, createErr := root.fs.Create(opts.out)
		if createErr != nil {
			return fmt.Errorf("creating %s: %w", opts.out, createErr)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("closing %s: %w", opts.out, cerr)
			}
		}()
		w = f
	}

	return highlighter.Export(w, string(data), core.LanguageForPath(path), highlighter.Build(t), terminalFormat(opts.format, termenv.EnvColorProfile()))
}

// terminalFormat maps "terminal" to the chroma formatter matching the
// terminal's colour profile. Other formats pass through.
func terminalFormat(format string, profile termenv.Profile) string {
	if format != "terminal" {
		return format
	}
	switch profile {
	case termenv.TrueColor:
		return "terminal16m"
	case termenv.ANSI256:
		return "terminal256"
	case termenv.ANSI:
		return "terminal16"
	default:
		return "noop"
	}
}
