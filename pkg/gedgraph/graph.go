package gedgraph

import (
	"sort"
	"strconv"
	"strings"

	"github.com/gedtree/gedsite/pkg/gedcom"
)

// Graph is the resolved genealogical graph. It is built once per run
// and read-only afterwards; concurrent readers need no locking.
type Graph struct {
	Individuals map[string]*Individual
	Families    map[string]*Family

	individualIDs []string
	familyIDs     []string
}

// Build converts raw record trees into a resolved graph. Records other
// than INDI and FAM (headers, sources, submitters) are ignored.
//
// Resolution is deferred until every root has been scanned, since
// families may reference individuals defined later in the file. An id
// that resolves to nothing makes the whole file unusable for
// cross-linking and fails the build.
func Build(roots []*gedcom.Record) (*Graph, error) {
	g := &Graph{
		Individuals: make(map[string]*Individual),
		Families:    make(map[string]*Family),
	}

	for _, root := range roots {
		switch root.Tag {
		case "INDI":
			ind := buildIndividual(root)
			if _, ok := g.Individuals[ind.ID]; ok {
				return nil, DuplicateRecordError(ind.ID, root.Line)
			}
			g.Individuals[ind.ID] = ind
			g.individualIDs = append(g.individualIDs, ind.ID)
		case "FAM":
			fam := buildFamily(root)
			if _, ok := g.Families[fam.ID]; ok {
				return nil, DuplicateRecordError(fam.ID, root.Line)
			}
			g.Families[fam.ID] = fam
			g.familyIDs = append(g.familyIDs, fam.ID)
		}
	}

	if err := g.resolve(); err != nil {
		return nil, err
	}

	sort.Slice(g.individualIDs, func(i, j int) bool {
		return idLess(g.individualIDs[i], g.individualIDs[j])
	})
	sort.Slice(g.familyIDs, func(i, j int) bool {
		return idLess(g.familyIDs[i], g.familyIDs[j])
	})

	return g, nil
}

// IndividualIDs returns all individual ids in stable natural order.
func (g *Graph) IndividualIDs() []string { return g.individualIDs }

// FamilyIDs returns all family ids in stable natural order.
func (g *Graph) FamilyIDs() []string { return g.familyIDs }

// resolve checks every stored pointer against the id maps.
func (g *Graph) resolve() error {
	for _, id := range g.individualIDs {
		ind := g.Individuals[id]
		for _, famID := range ind.FamiliesAsChild {
			if _, ok := g.Families[famID]; !ok {
				return DanglingReferenceError(famID, "individual "+id, "FAMC")
			}
		}
		for _, famID := range ind.FamiliesAsSpouse {
			if _, ok := g.Families[famID]; !ok {
				return DanglingReferenceError(famID, "individual "+id, "FAMS")
			}
		}
	}

	for _, id := range g.familyIDs {
		fam := g.Families[id]
		for _, indID := range fam.SpouseIDs {
			if _, ok := g.Individuals[indID]; !ok {
				return DanglingReferenceError(indID, "family "+id, "spouse")
			}
		}
		for _, indID := range fam.ChildIDs {
			if _, ok := g.Individuals[indID]; !ok {
				return DanglingReferenceError(indID, "family "+id, "child")
			}
		}
	}

	return nil
}

func buildIndividual(root *gedcom.Record) *Individual {
	ind := &Individual{ID: root.XRef, Sex: SexUnknown}

	for _, c := range root.Children {
		switch c.Tag {
		case "NAME":
			ind.Names = append(ind.Names, ParseName(c.Value))
		case "SEX":
			switch strings.ToUpper(strings.TrimSpace(c.Value)) {
			case "M":
				ind.Sex = SexMale
			case "F":
				ind.Sex = SexFemale
			}
		case "BIRT":
			ind.Events = append(ind.Events, buildEvent(c, EventBirth))
		case "DEAT":
			ind.Events = append(ind.Events, buildEvent(c, EventDeath))
		case "OCCU":
			if ind.Occupation == "" {
				ind.Occupation = c.Value
			}
		case "NOTE":
			if ind.Notes == "" {
				ind.Notes = c.Value
			}
		case "FAMC":
			if ptr := pointerValue(c.Value); ptr != "" {
				ind.FamiliesAsChild = append(ind.FamiliesAsChild, ptr)
			}
		case "FAMS":
			if ptr := pointerValue(c.Value); ptr != "" {
				ind.FamiliesAsSpouse = append(ind.FamiliesAsSpouse, ptr)
			}
		}
	}

	return ind
}

func buildFamily(root *gedcom.Record) *Family {
	fam := &Family{ID: root.XRef}

	// Husband first when both spouses are present.
	var husb, wife string
	for _, c := range root.Children {
		switch c.Tag {
		case "HUSB":
			husb = pointerValue(c.Value)
		case "WIFE":
			wife = pointerValue(c.Value)
		case "CHIL":
			if ptr := pointerValue(c.Value); ptr != "" {
				fam.ChildIDs = append(fam.ChildIDs, ptr)
			}
		case "MARR":
			fam.Events = append(fam.Events, buildEvent(c, EventMarriage))
		}
	}
	for _, s := range []string{husb, wife} {
		if s != "" {
			fam.SpouseIDs = append(fam.SpouseIDs, s)
		}
	}

	return fam
}

func buildEvent(rec *gedcom.Record, kind EventKind) Event {
	return Event{
		Kind:  kind,
		Date:  ParseDate(rec.ValueOf("DATE")),
		Place: rec.ValueOf("PLAC"),
	}
}

// pointerValue strips the '@' wrapper from a pointer value such as
// "@I1@". Non-pointer values yield the empty string.
func pointerValue(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > 2 && strings.HasPrefix(s, "@") && strings.HasSuffix(s, "@") {
		return strings.Trim(s, "@")
	}
	return ""
}

// idLess orders GEDCOM ids naturally: same alphabetic prefix, then by
// numeric suffix, so I2 sorts before I10.
func idLess(a, b string) bool {
	pa, na, oka := splitID(a)
	pb, nb, okb := splitID(b)
	if oka && okb {
		if pa != pb {
			return pa < pb
		}
		if na != nb {
			return na < nb
		}
	}
	return a < b
}

func splitID(id string) (string, int, bool) {
	i := 0
	for i < len(id) && (id[i] < '0' || id[i] > '9') {
		i++
	}
	if i == len(id) {
		return id, 0, false
	}
	n, err := strconv.Atoi(id[i:])
	if err != nil {
		return id, 0, false
	}
	return id[:i], n, true
}
