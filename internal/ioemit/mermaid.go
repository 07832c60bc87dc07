package ioemit

import (
	"strings"

	"github.com/gedtree/gedsite/pkg/gedgraph"
)

// mermaidDiagram renders the immediate family of one individual as a
// Mermaid flowchart: parents joined through a marriage node above,
// spouses beside, children below. Families are walked in the source
// order of the individual's family links, so the diagram is stable
// across runs.
func (e *Emitter) mermaidDiagram(ind *gedgraph.Individual) string {
	d := diagram{emitter: e, seen: make(map[string]bool)}
	d.lines = []string{
		"```mermaid",
		"flowchart TD",
		"classDef person fill:#e1f5fe,stroke:#0277bd,stroke-width:2px;",
		"classDef internal-link fill:#e1f5fe,stroke:#0277bd,stroke-width:2px;",
	}

	person := d.node(ind.ID)

	for _, famID := range ind.FamiliesAsChild {
		fam := e.graph.Families[famID]
		switch len(fam.SpouseIDs) {
		case 2:
			father := d.node(fam.SpouseIDs[0])
			mother := d.node(fam.SpouseIDs[1])
			marriage := "marriage_id" + famID
			d.add(marriage + `((" "))`)
			d.add(father + " --- " + marriage)
			d.add(mother + " --- " + marriage)
			d.add(marriage + " --> " + person)
		case 1:
			parent := d.node(fam.SpouseIDs[0])
			d.add(parent + " --> " + person)
		}
	}

	for _, famID := range ind.FamiliesAsSpouse {
		fam := e.graph.Families[famID]

		spouseID := ""
		for _, id := range fam.SpouseIDs {
			if id != ind.ID {
				spouseID = id
			}
		}

		if spouseID != "" {
			spouse := d.node(spouseID)
			marriage := "marriage_id" + famID
			d.add(marriage + `((" "))`)
			d.add(person + " --- " + marriage)
			d.add(spouse + " --- " + marriage)
			for _, childID := range fam.ChildIDs {
				d.add(marriage + " --> " + d.node(childID))
			}
			continue
		}

		// Single parent with children.
		for _, childID := range fam.ChildIDs {
			d.add(person + " --> " + d.node(childID))
		}
	}

	d.add("```")
	return strings.Join(d.lines, "\n") + "\n"
}

type diagram struct {
	emitter *Emitter
	lines   []string
	seen    map[string]bool
}

func (d *diagram) add(line string) {
	d.lines = append(d.lines, line)
}

// node declares a person node once and returns its Mermaid id.
func (d *diagram) node(id string) string {
	nodeID := "id" + id
	if d.seen[id] {
		return nodeID
	}
	d.seen[id] = true

	// Double quotes break Mermaid labels.
	label := strings.ReplaceAll(d.emitter.displayName(id), `"`, "'")
	d.add(nodeID + `["` + label + `"]`)
	d.add("class " + nodeID + " internal-link")
	return nodeID
}
