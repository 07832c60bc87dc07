// Package places maps place names found in genealogical records to
// Wikipedia articles.
//
// This package defines the schema for places.yaml, which users keep in
// the config directory to pin noisy place strings ("Perth, WA,
// Australia", "Perth, Western Australia, Australia") to one article.
// Unmapped places fall back to the place string itself with spaces
// replaced by underscores, which is right often enough to be useful.
package places

import (
	"sort"
	"strings"

	"github.com/gedtree/gedsite/pkg/gedgraph"
)

// Places loads the place mapping configuration.
type Places interface {
	Load() (*PlacesConfig, error)
}

// PlacesConfig represents the complete places.yaml configuration file.
type PlacesConfig struct {
	// Articles maps a place string exactly as it appears in the source
	// file to a Wikipedia article name.
	Articles map[string]string `yaml:"articles"`
}

// wikipediaBase is the link target prefix for place links.
const wikipediaBase = "https://en.wikipedia.org/wiki/"

// Link renders a place as a markdown link to its Wikipedia article.
// An empty place yields an empty string.
func (pc *PlacesConfig) Link(place string) string {
	if place == "" {
		return ""
	}

	article := ""
	if pc != nil {
		article = pc.Articles[place]
	}
	if article == "" {
		article = strings.ReplaceAll(place, " ", "_")
	}
	return "[" + place + "](" + wikipediaBase + article + ")"
}

// PlaceCount is one unique place with its number of occurrences.
type PlaceCount struct {
	Place string
	Count int
}

// Tally collects every unique birth, death and marriage place in the
// graph with occurrence counts, most frequent first. It exists to help
// users maintain places.yaml.
func Tally(g *gedgraph.Graph) []PlaceCount {
	counts := make(map[string]int)

	for _, id := range g.IndividualIDs() {
		for _, ev := range g.Individuals[id].Events {
			if ev.Place != "" {
				counts[ev.Place]++
			}
		}
	}
	for _, id := range g.FamilyIDs() {
		for _, ev := range g.Families[id].Events {
			if ev.Place != "" {
				counts[ev.Place]++
			}
		}
	}

	res := make([]PlaceCount, 0, len(counts))
	for place, count := range counts {
		res = append(res, PlaceCount{Place: place, Count: count})
	}
	sort.Slice(res, func(i, j int) bool {
		if res[i].Count != res[j].Count {
			return res[i].Count > res[j].Count
		}
		return res[i].Place < res[j].Place
	})
	return res
}
