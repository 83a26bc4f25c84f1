package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/apper-apps/india-website-drive/modules/org/domain/hierarchy"
	"github.com/apper-apps/india-website-drive/modules/org/infrastructure/persistence"
	"github.com/apper-apps/india-website-drive/pkg/configuration"
)

var levelColors = []*color.Color{
	color.New(color.FgMagenta, color.Bold),
	color.New(color.FgBlue),
	color.New(color.FgCyan),
	color.New(color.FgGreen),
}

func newOrgChartCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orgchart",
		Short: "Inspect the organization structure",
	}

	var (
		path      string
		expandAll bool
	)
	printCmd := &cobra.Command{
		Use:   "print",
		Short: "Print the organization structure as a tree",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if path == "" {
				path = configuration.Use().OrgChart.StructurePath
			}
			forest, err := persistence.NewEmbeddedStructureLoader(path).Load(cmd.Context())
			if err != nil {
				return err
			}
			forest = hierarchy.SetAll(forest, expandAll)
			printForest(cmd.OutOrStdout(), forest, 0)
			fmt.Fprintf(cmd.OutOrStdout(), "\n%d nodes\n", hierarchy.Count(forest))
			return nil
		},
	}
	printCmd.Flags().StringVar(&path, "file", "", "Structure file (.yaml, .yml or .json); defaults to ORG_CHART_STRUCTURE_PATH or the embedded chart")
	printCmd.Flags().BoolVar(&expandAll, "expand-all", false, "Print every level instead of the collapsed roots")
	cmd.AddCommand(printCmd)
	return cmd
}

// printForest mirrors what a fresh view shows: children of collapsed nodes are hidden.
func printForest(w io.Writer, f hierarchy.Forest, level int) {
	c := levelColors[min(level, len(levelColors)-1)]
	for _, n := range f {
		marker := "  "
		if n.HasChildren() {
			marker = "▸ "
			if n.Expanded {
				marker = "▾ "
			}
		}
		fmt.Fprintf(w, "%s%s%s\n", strings.Repeat("  ", level), marker, c.Sprint(n.Title))
		if n.Expanded {
			printForest(w, n.Children, level+1)
		}
	}
}
