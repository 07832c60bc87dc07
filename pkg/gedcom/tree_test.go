package gedcom_test

import (
	"strings"
	"testing"

	"github.com/gedtree/gedsite/pkg/errcode"
	"github.com/gedtree/gedsite/pkg/gedcom"
	"github.com/gnames/gn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleIndi = `0 @I1@ INDI
1 NAME John /Smith/
1 BIRT
2 DATE 12 JAN 1900
2 PLAC Boston, Massachusetts
1 FAMS @F1@
0 @I2@ INDI
1 NAME Mary /Jones/
`

func TestParseNesting(t *testing.T) {
	roots, err := gedcom.Parse(strings.NewReader(sampleIndi))
	require.NoError(t, err)
	require.Len(t, roots, 2)

	i1 := roots[0]
	assert.Equal(t, "I1", i1.XRef)
	assert.Equal(t, "INDI", i1.Tag)
	require.Len(t, i1.Children, 3)

	birt := i1.Children[1]
	assert.Equal(t, "BIRT", birt.Tag)
	require.Len(t, birt.Children, 2)
	assert.Equal(t, "12 JAN 1900", birt.Children[0].Value)
	assert.Equal(t, "Boston, Massachusetts", birt.Children[1].Value)

	i2 := roots[1]
	assert.Equal(t, "I2", i2.XRef)
	assert.Empty(t, i2.Children[0].Children)
}

func TestParseSiblingAndCloseLevels(t *testing.T) {
	input := `0 @I1@ INDI
1 BIRT
2 DATE 1900
1 DEAT
2 DATE 1980
2 PLAC Salem
1 SEX M
`
	roots, err := gedcom.Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, roots, 1)

	tags := make([]string, 0, 3)
	for _, c := range roots[0].Children {
		tags = append(tags, c.Tag)
	}
	assert.Equal(t, []string{"BIRT", "DEAT", "SEX"}, tags)
	assert.Len(t, roots[0].Children[1].Children, 2)
}

func TestParseLevelJump(t *testing.T) {
	input := `0 @I1@ INDI
2 DATE 1900
`
	_, err := gedcom.Parse(strings.NewReader(input))
	require.Error(t, err)

	gnErr, ok := err.(*gn.Error)
	require.True(t, ok, "Error should be of type *gn.Error")
	assert.Equal(t, errcode.StructuralError, gnErr.Code)
	assert.Contains(t, gnErr.Err.Error(), "line 2")
}

func TestParseNonZeroStart(t *testing.T) {
	input := "1 NAME John /Smith/\n"
	_, err := gedcom.Parse(strings.NewReader(input))
	require.Error(t, err)

	gnErr, ok := err.(*gn.Error)
	require.True(t, ok, "Error should be of type *gn.Error")
	assert.Equal(t, errcode.StructuralError, gnErr.Code)
}

func TestParseTrailingOpenRecords(t *testing.T) {
	input := `0 @F1@ FAM
1 MARR
2 DATE ABT 1925
`
	roots, err := gedcom.Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, roots, 1)
	assert.Equal(t, "ABT 1925", roots[0].Children[0].Children[0].Value)
}

func TestRecordHelpers(t *testing.T) {
	roots, err := gedcom.Parse(strings.NewReader(sampleIndi))
	require.NoError(t, err)
	i1 := roots[0]

	assert.Equal(t, "John /Smith/", i1.ValueOf("NAME"))
	assert.Equal(t, "", i1.ValueOf("DEAT"))
	assert.Nil(t, i1.First("DEAT"))

	birt := i1.First("BIRT")
	require.NotNil(t, birt)
	assert.Equal(t, "12 JAN 1900", birt.ValueOf("DATE"))

	fams := i1.All("FAMS")
	require.Len(t, fams, 1)
	assert.Equal(t, "@F1@", fams[0].Value)
	assert.Empty(t, i1.All("FAMC"))
}
