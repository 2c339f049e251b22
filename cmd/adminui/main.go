// Package main is the entry point for the adminui CLI.
package main

import (
	"fmt"
	"os"

	"github.com/jacksmith/adminui/internal/cli"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, cli.FormatError(err))
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "adminui",
	Short: "adminui - search, page, select, delete and edit user records",
	Long: `adminui shows a table of user records fetched once from a source and
lets you search, paginate, multi-select, delete and edit rows in place.

Edits are never written back to the source.

Sources:
  https://host/users.json      HTTP(S) JSON or YAML document
  s3://bucket/users.json       S3 object
  ./users.yaml, file:///path   local JSON or YAML file
  sqlite:///path/db?table=T    SQLite table
  postgres://host/db?table=T   Postgres table`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Flags shared by every command that loads records.
var (
	flagConfig   string
	flagSource   string
	flagPageSize int
	flagWhere    string
	flagLogFile  string
	flagColor    string
)

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetVersionTemplate("adminui version {{.Version}}\n")

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "config file (default ./.adminui.yaml)")
	pf.StringVarP(&flagSource, "source", "s", "", "record source URI")
	pf.IntVarP(&flagPageSize, "page-size", "n", 0, "rows per page")
	pf.StringVarP(&flagWhere, "where", "w", "", `pre-filter expression, e.g. 'role == "admin"'`)
	pf.StringVar(&flagLogFile, "log-file", "", "write diagnostic logs to this file")
	pf.StringVar(&flagColor, "color", "", "color output: auto, always or never")

	rootCmd.RegisterFlagCompletionFunc("color", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{cli.ColorAuto, cli.ColorAlways, cli.ColorNever}, cobra.ShellCompDirectiveNoFileComp
	})
}
