package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jacksmith/adminui/internal/tui"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Browse and edit records interactively",
	Long: `Open the interactive table.

Keys:
  /            search (enter keeps the term, esc clears it)
  j/k          move between rows
  h/l, g/G     previous/next page, first/last page
  1-9          jump to page
  space        select the highlighted row
  a / A / c    toggle the page / select the page / clear selection
  d            delete the highlighted row
  D            delete every selected row
  e, enter     edit the highlighted row (tab moves between fields,
               enter saves, esc cancels)
  r            reload from the source
  esc          dismiss a load error
  q            quit`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

var tuiAltScreen bool

func init() {
	tuiCmd.Flags().BoolVar(&tuiAltScreen, "alt-screen", true, "use the terminal's alternate screen")
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	s, err := openSession(context.Background(), false)
	if err != nil {
		return err
	}
	defer s.Close()

	app := tui.NewApp(tui.Params{
		Load:     s.Load,
		PageSize: s.cfg.PageSize,
		Logger:   s.logger,
	})

	var opts []tea.ProgramOption
	if tuiAltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	if _, err := tea.NewProgram(app, opts...).Run(); err != nil {
		return fmt.Errorf("failed to run interface: %w", err)
	}
	return nil
}
