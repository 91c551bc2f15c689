package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newThemesCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List the available themes",
		Long: `List the built-in themes and the themes found in themes_dir.
The default theme is marked with *.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, t := range root.loadThemes() {
				marker := " "
				if t.Name == root.cfg.DefaultTheme {
					marker = "*"
				}
				_, _ = fmt.Fprintf(out, "%s %-20s code %gpt\n", marker, t.Name, t.Typography.CodeFontSize)
			}
			return nil
		},
	}
}
