package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jacksmith/adminui/internal/cli"
	"github.com/jacksmith/adminui/internal/model"
	"github.com/jacksmith/adminui/internal/viewmodel"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print one page of records",
	Long: `Fetch the records and print a single page.

Flags:
  --search     Case-insensitive substring over name, email and role
  --page       Page number, or first, prev, next, last (clamped to the result)
  -o, --output table (default), json or yaml

Identifiers are positions 1..N in the full record set.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

var (
	listSearch string
	listPage   string
	listOutput string
)

func init() {
	listCmd.Flags().StringVar(&listSearch, "search", "", "filter rows by substring")
	listCmd.Flags().StringVarP(&listPage, "page", "p", "1", "page to show")
	listCmd.Flags().StringVarP(&listOutput, "output", "o", "table", "output format: table, json or yaml")

	listCmd.RegisterFlagCompletionFunc("page", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"first", "next", "last"}, cobra.ShellCompDirectiveNoFileComp
	})
	listCmd.RegisterFlagCompletionFunc("output", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"table", "json", "yaml"}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	target, err := viewmodel.ParsePageTarget(listPage)
	if err != nil {
		return &cli.ValidationError{Field: "page", Message: err.Error()}
	}
	switch listOutput {
	case "table", "json", "yaml":
	default:
		return &cli.ValidationError{Field: "output", Message: fmt.Sprintf("%q is not one of table, json, yaml", listOutput)}
	}

	state, s, err := loadState(context.Background())
	if err != nil {
		return err
	}
	defer s.Close()

	state = viewmodel.Reduce(state, viewmodel.SetSearch{Term: listSearch})
	state = viewmodel.Reduce(state, viewmodel.RequestPage{Target: target})
	v := state.View()

	switch listOutput {
	case "json":
		return writeJSON(pageRecords(v))
	case "yaml":
		return writeYAML(pageRecords(v))
	}
	if err := cli.ConfigureColor(s.cfg.Color, os.Stdout); err != nil {
		return err
	}
	cli.RenderView(os.Stdout, v)
	return nil
}

// loadState opens a session and installs the fetched records. A failed
// fetch is returned as the error.
func loadState(ctx context.Context) (viewmodel.State, *session, error) {
	s, err := openSession(ctx, true)
	if err != nil {
		return viewmodel.State{}, nil, err
	}
	records, err := s.Load(ctx)
	if err != nil {
		s.Close()
		return viewmodel.State{}, nil, err
	}
	state := viewmodel.Reduce(viewmodel.New(s.cfg.PageSize), viewmodel.Loaded{Records: records})
	return state, s, nil
}

func pageRecords(v viewmodel.View) []model.Record {
	out := make([]model.Record, len(v.Rows))
	for i, r := range v.Rows {
		out[i] = r.Record
	}
	return out
}

func writeJSON(records []model.Record) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("failed to write JSON: %w", err)
	}
	return nil
}

func writeYAML(records []model.Record) error {
	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("failed to write YAML: %w", err)
	}
	return enc.Close()
}
