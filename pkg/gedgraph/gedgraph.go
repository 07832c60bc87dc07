// Package gedgraph builds a typed genealogical graph from raw GEDCOM
// records.
//
// The graph holds Individuals and Families joined by cross-reference
// ids. Construction is two-pass: the first pass extracts nodes and
// stores pointer strings as found, the second pass resolves every
// pointer against the id maps. GEDCOM permits forward references (a
// family naming an individual defined later in the file), so resolving
// while scanning would fail on valid files.
//
// After Build returns, the graph is read-only. Relationship views
// (parents, children, spouses, siblings) are derived on demand and are
// never stored, which keeps the family records the single source of
// truth.
package gedgraph

// Sex is the recorded sex of an individual.
type Sex string

const (
	SexMale    Sex = "male"
	SexFemale  Sex = "female"
	SexUnknown Sex = "unknown"
)

// EventKind classifies a life event.
type EventKind string

const (
	EventBirth    EventKind = "birth"
	EventDeath    EventKind = "death"
	EventMarriage EventKind = "marriage"
	EventOther    EventKind = "other"
)

// Event is a dated, placed occurrence attached to an individual or a
// family. Multiple events of the same kind keep their source order.
type Event struct {
	Kind  EventKind
	Date  Date
	Place string
}

// Name is one name of an individual, split on the GEDCOM /surname/
// convention. When the raw string does not follow the convention, Raw
// holds it verbatim and Given/Surname stay empty.
type Name struct {
	Given   string
	Surname string
	Raw     string
}

// Individual is a single person record. Its identity is the GEDCOM
// cross-reference id; two individuals never share one.
type Individual struct {
	ID         string
	Names      []Name
	Sex        Sex
	Events     []Event
	Occupation string
	Notes      string

	// FamiliesAsChild and FamiliesAsSpouse hold family ids, resolved
	// against the graph during Build. Source order is preserved.
	FamiliesAsChild  []string
	FamiliesAsSpouse []string
}

// Family links spouses and their children.
type Family struct {
	ID string

	// SpouseIDs holds at most two individual ids, husband first when
	// both are present.
	SpouseIDs []string

	ChildIDs []string
	Events   []Event
}

// DisplayName returns the canonical display name of the individual:
// the first recorded name, or the id when no name survived parsing.
func (ind *Individual) DisplayName() string {
	if len(ind.Names) == 0 {
		return ind.ID
	}
	return ind.Names[0].Display()
}

// Display renders a name for humans: "Given Surname", or the raw
// string for unparsable names.
func (n Name) Display() string {
	if n.Raw != "" {
		return n.Raw
	}
	switch {
	case n.Given == "":
		return n.Surname
	case n.Surname == "":
		return n.Given
	default:
		return n.Given + " " + n.Surname
	}
}

// event lookup helpers; first match wins, later duplicates stay
// available through the Events slice.

// EventOf returns the first event of the given kind, or nil.
func eventOf(events []Event, kind EventKind) *Event {
	for i := range events {
		if events[i].Kind == kind {
			return &events[i]
		}
	}
	return nil
}

// Birth returns the first birth event, or nil.
func (ind *Individual) Birth() *Event { return eventOf(ind.Events, EventBirth) }

// Death returns the first death event, or nil.
func (ind *Individual) Death() *Event { return eventOf(ind.Events, EventDeath) }

// Marriage returns the first marriage event, or nil.
func (f *Family) Marriage() *Event { return eventOf(f.Events, EventMarriage) }
