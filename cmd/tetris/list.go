package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/rodaine/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all registered games",
	Long:  `Shows the games registered in this build.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	out := cmd.OutOrStdout()
	games := registry.List()

	if len(games) == 0 {
		fmt.Fprintln(out, "No games available.")
		return
	}

	tbl := newTable(out, "ID", "Title")
	for _, g := range games {
		tbl.AddRow(g.ID, g.Title)
	}
	tbl.Print()
}

// newTable returns a table writing to w with bold blue first-column values.
func newTable(w io.Writer, columns ...interface{}) table.Table {
	tbl := table.New(columns...).WithWriter(w)
	tbl.WithHeaderFormatter(color.New(color.Underline).SprintfFunc())
	tbl.WithFirstColumnFormatter(color.New(color.FgBlue, color.Bold).SprintfFunc())
	return tbl
}
