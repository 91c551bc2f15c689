package main

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/Zen-Editor/zen/core"
	"github.com/Zen-Editor/zen/geometry"
	"github.com/Zen-Editor/zen/theme"
)

type measureOptions struct {
	theme    string
	fontSize float64
}

func newMeasureCmd(root *rootOptions) *cobra.Command {
	opts := &measureOptions{}

	cmd := &cobra.Command{
		Use:   "measure FILE",
		Short: "Print the layout geometry of a file",
		Long: `Load FILE the way the editor does and print its line count, line height,
widest line and content height in the configured metrics.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := opts.theme
			if name == "" {
				name = root.cfg.DefaultTheme
			}
			t := theme.Find(root.loadThemes(), name)
			if opts.fontSize > 0 {
				t = t.WithCodeFontSize(opts.fontSize)
			}

			session := core.New(t,
				core.WithCalculator(root.calculator()),
				core.WithFs(afero.NewReadOnlyFs(root.fs)),
			)
			if err := session.LoadFile(args[0]); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "file:         %s\n", session.Path())
			_, _ = fmt.Fprintf(out, "language:     %s\n", session.Language())
			_, _ = fmt.Fprintf(out, "theme:        %s (%gpt)\n", t.Name, t.Typography.CodeFontSize)
			_, _ = fmt.Fprintf(out, "lines:        %d\n", geometry.LineCount(session.Text()))
			_, _ = fmt.Fprintf(out, "line height:  %.2f\n", session.GetLineHeight())
			_, _ = fmt.Fprintf(out, "max width:    %.2f\n", session.GetMaxLineWidth())
			_, _ = fmt.Fprintf(out, "content:      %.2f\n", session.GetContentHeight())
			_, _ = fmt.Fprintf(out, "gutter:       %.2f\n", session.GutterWidth())
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.theme, "theme", "t", "", "theme name (default: default_theme from the config)")
	cmd.Flags().Float64Var(&opts.fontSize, "font-size", 0, "code font size, clamped to 10..24")

	return cmd
}
