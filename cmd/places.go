package cmd

import (
	"fmt"

	"github.com/gedtree/gedsite/internal/iobuild"
	"github.com/gedtree/gedsite/pkg/config"
	"github.com/gedtree/gedsite/pkg/places"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
)

// getPlacesCmd returns the places command.
func getPlacesCmd() *cobra.Command {
	placesCmd := &cobra.Command{
		Use:   "places <file.ged>",
		Short: "List unique places found in a GEDCOM file",
		Long: `Analyze the unique birth, death and marriage places in a GEDCOM
file, most frequent first.

The list helps maintain the places.yaml mapping: every place shown
here can be pinned to a Wikipedia article so that profile documents
link to the right page.

Examples:
  gedsite places family.ged`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runPlaces(args[0])
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	return placesCmd
}

func runPlaces(source string) error {
	cfg.Update([]config.Option{config.OptSource(source)})

	graph, err := iobuild.LoadGraph(cfg)
	if err != nil {
		return err
	}

	tally := places.Tally(graph)
	gn.Info("Places found in <em>%s</em>:", source)
	for _, pc := range tally {
		fmt.Printf("%4dx %s\n", pc.Count, pc.Place)
	}
	fmt.Printf("\nTotal unique places: %d\n", len(tally))
	fmt.Printf("Mapping file: %s\n", config.PlacesFilePath(cfg.HomeDir))

	return nil
}
