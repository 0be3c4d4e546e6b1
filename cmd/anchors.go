package cmd

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/abhisek/squelette/internal/anatomy"
)

var anchorsCmd = &cobra.Command{
	Use:   "anchors",
	Short: "List the bones of the quiz",
	RunE: func(cmd *cobra.Command, args []string) error {
		sortBy, _ := cmd.Flags().GetString("sort")

		anchors := anatomy.Skeleton()
		switch sortBy {
		case "", "position":
		case "id":
			slices.SortFunc(anchors, func(a, b anatomy.Anchor) int {
				return strings.Compare(a.ID, b.ID)
			})
		case "label":
			c := collate.New(language.French)
			slices.SortFunc(anchors, func(a, b anatomy.Anchor) int {
				return c.CompareString(a.Label, b.Label)
			})
		default:
			return fmt.Errorf("invalid sort %q: must be position, id or label", sortBy)
		}

		fmt.Printf("%-10s  %-20s  %s\n", "ID", "Label", "Position (x, y, z)")
		fmt.Println(strings.Repeat("─", 60))
		for _, a := range anchors {
			p := a.Position
			fmt.Printf("%-10s  %-20s  %6.2f %6.2f %6.2f\n", a.ID, a.Label, p.X, p.Y, p.Z)
		}

		fmt.Printf("\n%d anchors\n", len(anchors))
		return nil
	},
}

func init() {
	anchorsCmd.Flags().String("sort", "position", "Sort by position, id or label")
}
