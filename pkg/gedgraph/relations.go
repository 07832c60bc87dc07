package gedgraph

// Derived relationship views. These are computed from the immutable
// family records on every call instead of being cached on the nodes,
// so there is no second copy of the relationships to drift out of
// sync. Parent/child direction is explicit in the family records, so
// none of the traversals below can loop.

// Parents returns the ids of the parents of the given individual:
// the spouses of every family the individual belongs to as a child.
// Order follows the family records; duplicates are removed.
func (g *Graph) Parents(id string) []string {
	ind, ok := g.Individuals[id]
	if !ok {
		return nil
	}

	var res []string
	seen := make(map[string]bool)
	for _, famID := range ind.FamiliesAsChild {
		for _, spouseID := range g.Families[famID].SpouseIDs {
			if !seen[spouseID] {
				seen[spouseID] = true
				res = append(res, spouseID)
			}
		}
	}
	return res
}

// Children returns the ids of the children of the given individual:
// the children of every family where the individual is a spouse.
func (g *Graph) Children(id string) []string {
	ind, ok := g.Individuals[id]
	if !ok {
		return nil
	}

	var res []string
	seen := make(map[string]bool)
	for _, famID := range ind.FamiliesAsSpouse {
		for _, childID := range g.Families[famID].ChildIDs {
			if childID != id && !seen[childID] {
				seen[childID] = true
				res = append(res, childID)
			}
		}
	}
	return res
}

// Spouses returns the ids of the co-spouses of the given individual
// across all families where the individual is a spouse.
func (g *Graph) Spouses(id string) []string {
	ind, ok := g.Individuals[id]
	if !ok {
		return nil
	}

	var res []string
	seen := make(map[string]bool)
	for _, famID := range ind.FamiliesAsSpouse {
		for _, spouseID := range g.Families[famID].SpouseIDs {
			if spouseID != id && !seen[spouseID] {
				seen[spouseID] = true
				res = append(res, spouseID)
			}
		}
	}
	return res
}

// Siblings returns the ids of the other children in the families the
// given individual belongs to as a child.
func (g *Graph) Siblings(id string) []string {
	ind, ok := g.Individuals[id]
	if !ok {
		return nil
	}

	var res []string
	seen := make(map[string]bool)
	for _, famID := range ind.FamiliesAsChild {
		for _, childID := range g.Families[famID].ChildIDs {
			if childID != id && !seen[childID] {
				seen[childID] = true
				res = append(res, childID)
			}
		}
	}
	return res
}
