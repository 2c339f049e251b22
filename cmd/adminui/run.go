package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/jacksmith/adminui/internal/cli"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Apply a script of table actions",
	Long: `Fetch the records, apply a script of actions one line at a time and
print the resulting table.

Script lines (verbs accept any unique prefix, # starts a comment):
  search <text>          set the search term (empty clears it)
  page <n|first|prev|next|last>
  toggle <id>            flip the selection of a row
  select-all             select exactly the rows on the current page
  toggle-all             header checkbox: clear if the page is all selected
  clear                  clear the selection
  delete <id>            delete one row
  delete-selected        delete every selected row
  edit <id>              start editing a row
  set <field> <value>    change name, email or role in the draft
  save | cancel          commit or discard the draft
  dismiss                clear a pending error
  show                   print the table now

Identifiers are the current positions 1..N and change after every delete.
A line naming a row that no longer exists is skipped with a warning.`,
	Args: cobra.NoArgs,
	RunE: runRun,
}

var (
	runScript string
	runQuiet  bool
)

func init() {
	runCmd.Flags().StringVarP(&runScript, "script", "f", "-", "script file, - for stdin")
	runCmd.Flags().BoolVarP(&runQuiet, "quiet", "q", false, "do not print the final table")
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	var in io.Reader = os.Stdin
	if runScript != "-" {
		f, err := os.Open(runScript)
		if err != nil {
			return fmt.Errorf("failed to open script: %w", err)
		}
		defer f.Close()
		in = f
	}

	// The whole script is parsed before the fetch.
	cmds, err := cli.ParseScript(in)
	if err != nil {
		return err
	}

	state, s, err := loadState(context.Background())
	if err != nil {
		return err
	}
	defer s.Close()

	if err := cli.ConfigureColor(s.cfg.Color, os.Stdout); err != nil {
		return err
	}

	state, err = cli.RunScript(state, cmds, os.Stdout, s.logger)
	if err != nil {
		return err
	}
	if !runQuiet {
		cli.RenderView(os.Stdout, state.View())
	}
	return nil
}
