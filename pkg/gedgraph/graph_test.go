package gedgraph_test

import (
	"strings"
	"testing"

	"github.com/gedtree/gedsite/pkg/errcode"
	"github.com/gedtree/gedsite/pkg/gedcom"
	"github.com/gedtree/gedsite/pkg/gedgraph"
	"github.com/gnames/gn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// smallFamily is a two-generation family: John and Mary with their
// daughter Jane. The family record comes first so every pointer in it
// is a forward reference.
const smallFamily = `0 HEAD
1 SOUR test
0 @F1@ FAM
1 HUSB @I1@
1 WIFE @I2@
1 CHIL @I3@
1 MARR
2 DATE 5 JUN 1922
2 PLAC Boston, Massachusetts
0 @I1@ INDI
1 NAME John /Smith/
1 SEX M
1 BIRT
2 DATE 12 JAN 1900
2 PLAC Boston, Massachusetts
1 DEAT
2 DATE 1980
1 OCCU Carpenter
1 FAMS @F1@
0 @I2@ INDI
1 NAME Mary /Jones/
1 SEX F
1 FAMS @F1@
0 @I3@ INDI
1 NAME Jane /Smith/
1 SEX F
1 BIRT
2 DATE ABT 1925
1 FAMC @F1@
0 TRLR
`

func buildGraph(t *testing.T, input string) *gedgraph.Graph {
	t.Helper()
	roots, err := gedcom.Parse(strings.NewReader(input))
	require.NoError(t, err)
	g, err := gedgraph.Build(roots)
	require.NoError(t, err)
	return g
}

func TestBuildGraph(t *testing.T) {
	g := buildGraph(t, smallFamily)

	assert.Len(t, g.Individuals, 3)
	assert.Len(t, g.Families, 1)
	assert.Equal(t, []string{"I1", "I2", "I3"}, g.IndividualIDs())
	assert.Equal(t, []string{"F1"}, g.FamilyIDs())

	john := g.Individuals["I1"]
	require.NotNil(t, john)
	assert.Equal(t, "John Smith", john.DisplayName())
	assert.Equal(t, gedgraph.SexMale, john.Sex)
	assert.Equal(t, "Carpenter", john.Occupation)
	assert.Equal(t, []string{"F1"}, john.FamiliesAsSpouse)

	birth := john.Birth()
	require.NotNil(t, birth)
	assert.Equal(t, "1900-01-12", birth.Date.Normalized)
	assert.Equal(t, "Boston, Massachusetts", birth.Place)

	death := john.Death()
	require.NotNil(t, death)
	assert.Equal(t, gedgraph.FidelityYear, death.Date.Fidelity)

	jane := g.Individuals["I3"]
	require.NotNil(t, jane)
	assert.Nil(t, jane.Death())
	assert.Equal(t, []string{"F1"}, jane.FamiliesAsChild)

	f1 := g.Families["F1"]
	require.NotNil(t, f1)
	assert.Equal(t, []string{"I1", "I2"}, f1.SpouseIDs, "husband comes first")
	assert.Equal(t, []string{"I3"}, f1.ChildIDs)

	marr := f1.Marriage()
	require.NotNil(t, marr)
	assert.Equal(t, "1922-06-05", marr.Date.Normalized)
}

func TestBuildGraphSkipsNonFamilyRecords(t *testing.T) {
	input := `0 HEAD
1 SOUR test
0 @S1@ SOUR
1 TITL Parish register
0 @I1@ INDI
1 NAME Ann /Lee/
0 TRLR
`
	g := buildGraph(t, input)
	assert.Len(t, g.Individuals, 1)
	assert.Empty(t, g.Families)
}

func TestBuildGraphNoName(t *testing.T) {
	input := `0 @I1@ INDI
1 SEX F
`
	g := buildGraph(t, input)
	assert.Equal(t, "I1", g.Individuals["I1"].DisplayName())
}

func TestBuildGraphNaturalOrder(t *testing.T) {
	input := `0 @I10@ INDI
1 NAME Ten //
0 @I2@ INDI
1 NAME Two //
0 @I1@ INDI
1 NAME One //
`
	g := buildGraph(t, input)
	assert.Equal(t, []string{"I1", "I2", "I10"}, g.IndividualIDs())
}

func TestBuildGraphDanglingReference(t *testing.T) {
	input := `0 @F1@ FAM
1 HUSB @I1@
1 CHIL @I99@
0 @I1@ INDI
1 NAME John /Smith/
1 FAMS @F1@
`
	roots, err := gedcom.Parse(strings.NewReader(input))
	require.NoError(t, err)

	_, err = gedgraph.Build(roots)
	require.Error(t, err)

	gnErr, ok := err.(*gn.Error)
	require.True(t, ok, "Error should be of type *gn.Error")
	assert.Equal(t, errcode.DanglingReferenceError, gnErr.Code)
	assert.Contains(t, gnErr.Err.Error(), "I99")
}

func TestBuildGraphDuplicateID(t *testing.T) {
	input := `0 @I1@ INDI
1 NAME John /Smith/
0 @I1@ INDI
1 NAME Jack /Smith/
`
	roots, err := gedcom.Parse(strings.NewReader(input))
	require.NoError(t, err)

	_, err = gedgraph.Build(roots)
	require.Error(t, err)

	gnErr, ok := err.(*gn.Error)
	require.True(t, ok, "Error should be of type *gn.Error")
	assert.Equal(t, errcode.DuplicateRecordError, gnErr.Code)
}
