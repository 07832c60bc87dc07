package ioemit

import (
	"strings"

	"github.com/gedtree/gedsite/pkg/gedgraph"
	"github.com/gnames/gnuuid"
	"gopkg.in/yaml.v3"
)

// noBiography is the body placeholder for profiles without a
// biography file.
const noBiography = "*No biography available yet.*"

// frontmatter is the metadata block of a profile document. The
// downstream site tool reads type, title and dates from it; field
// order is fixed by the struct, which keeps re-runs byte-identical.
type frontmatter struct {
	Type  string `yaml:"type"`
	ID    string `yaml:"id"`
	UID   string `yaml:"uid"`
	Title string `yaml:"title"`
	Sex   string `yaml:"sex,omitempty"`

	BirthDate     string `yaml:"birth_date,omitempty"`
	BirthFidelity string `yaml:"birth_date_fidelity,omitempty"`
	BirthPlace    string `yaml:"birth_place,omitempty"`
	DeathDate     string `yaml:"death_date,omitempty"`
	DeathFidelity string `yaml:"death_date_fidelity,omitempty"`
	DeathPlace    string `yaml:"death_place,omitempty"`

	MarriageDate  string   `yaml:"marriage_date,omitempty"`
	MarriagePlace string   `yaml:"marriage_place,omitempty"`
	Spouses       []string `yaml:"spouses,omitempty"`
	Children      []string `yaml:"children,omitempty"`
}

// renderProfile renders one profile document. The returned warning,
// when not nil, explains why the biography was skipped; the document
// itself is always complete.
func (e *Emitter) renderProfile(
	ind *gedgraph.Individual,
) (string, bool, error) {
	fm := frontmatter{
		Type:  "profile",
		ID:    ind.ID,
		UID:   gnuuid.New(ind.ID).String(),
		Title: ind.DisplayName(),
		Sex:   string(ind.Sex),
	}
	if birth := ind.Birth(); birth != nil {
		fm.BirthDate = birth.Date.Display()
		if !birth.Date.IsZero() {
			fm.BirthFidelity = string(birth.Date.Fidelity)
		}
		fm.BirthPlace = birth.Place
	}
	if death := ind.Death(); death != nil {
		fm.DeathDate = death.Date.Display()
		if !death.Date.IsZero() {
			fm.DeathFidelity = string(death.Date.Fidelity)
		}
		fm.DeathPlace = death.Place
	}

	bio, warn := e.bios.Lookup(ind.ID, gedgraph.Slug(ind.DisplayName()))

	var b strings.Builder
	writeFrontmatter(&b, fm)

	b.WriteString("**Birth**: " + e.eventLine(ind.Birth()) + "\n")
	b.WriteString("**Death**: " + e.eventLine(ind.Death()) + "\n")
	b.WriteString("**Occupation**: " + orDash(ind.Occupation) + "\n\n")

	b.WriteString(e.mermaidDiagram(ind))
	b.WriteString("\n")

	b.WriteString("\n**Parents**:\n" + e.linkList(e.graph.Parents(ind.ID)) + "\n")
	b.WriteString("\n**Siblings**:\n" + e.linkList(e.graph.Siblings(ind.ID)) + "\n")
	b.WriteString("\n**Spouse**:\n" + e.linkList(e.graph.Spouses(ind.ID)) + "\n")
	b.WriteString("\n**Children**:\n" + e.linkList(e.graph.Children(ind.ID)) + "\n")
	b.WriteString("\n**Notes**:\n" + orDash(ind.Notes) + "\n")

	b.WriteString("\n**Biography**:\n")
	if bio != "" {
		b.WriteString(bio + "\n")
	} else {
		b.WriteString(noBiography + "\n")
	}

	b.WriteString("\n**GEDCOM ID**: " + ind.ID + "\n")

	return b.String(), bio != "", warn
}

// renderFamily renders one family document.
func (e *Emitter) renderFamily(fam *gedgraph.Family) string {
	var spouseNames []string
	for _, id := range fam.SpouseIDs {
		spouseNames = append(spouseNames, e.displayName(id))
	}
	title := strings.Join(spouseNames, " and ")
	if title == "" {
		title = fam.ID
	}

	fm := frontmatter{
		Type:     "family",
		ID:       fam.ID,
		UID:      gnuuid.New(fam.ID).String(),
		Title:    title,
		Spouses:  fam.SpouseIDs,
		Children: fam.ChildIDs,
	}
	if marr := fam.Marriage(); marr != nil {
		fm.MarriageDate = marr.Date.Display()
		fm.MarriagePlace = marr.Place
	}

	var b strings.Builder
	writeFrontmatter(&b, fm)

	b.WriteString("**Marriage**: " + e.eventLine(fam.Marriage()) + "\n")
	b.WriteString("\n**Spouses**:\n" + e.linkList(fam.SpouseIDs) + "\n")
	b.WriteString("\n**Children**:\n" + e.linkList(fam.ChildIDs) + "\n")
	b.WriteString("\n**GEDCOM ID**: " + fam.ID + "\n")

	return b.String()
}

func writeFrontmatter(b *strings.Builder, fm frontmatter) {
	// yaml.Marshal cannot fail on this struct: plain strings and
	// string slices only.
	data, _ := yaml.Marshal(fm)
	b.WriteString("---\n")
	b.Write(data)
	b.WriteString("---\n\n")
}

// eventLine renders "date at place" with the place linked to its
// Wikipedia article.
func (e *Emitter) eventLine(ev *gedgraph.Event) string {
	if ev == nil {
		return "—"
	}
	date := ev.Date.Display()
	place := e.places.Link(ev.Place)
	switch {
	case date == "" && place == "":
		return "—"
	case place == "":
		return date
	case date == "":
		return place
	default:
		return date + " at " + place
	}
}

// linkList renders ids as one wiki-link per line, addressable by the
// target document's file name.
func (e *Emitter) linkList(ids []string) string {
	if len(ids) == 0 {
		return "—"
	}
	var lines []string
	for _, id := range ids {
		lines = append(lines, wikiLink(id, e.displayName(id)))
	}
	return strings.Join(lines, "\n")
}

// wikiLink targets the id-named document and shows the display name.
// Linking by id keeps links stable when a person is renamed.
func wikiLink(id, title string) string {
	if title == id {
		return "[[" + id + "]]"
	}
	return "[[" + id + "|" + title + "]]"
}

func (e *Emitter) displayName(id string) string {
	if ind, ok := e.graph.Individuals[id]; ok {
		return ind.DisplayName()
	}
	return id
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}
