package gedgraph_test

import (
	"testing"

	"github.com/gedtree/gedsite/pkg/gedgraph"
	"github.com/stretchr/testify/assert"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		msg, text  string
		normalized string
		year       int
		fidelity   gedgraph.Fidelity
	}{
		{"full day", "12 JAN 1900", "1900-01-12", 1900, gedgraph.FidelityExact},
		{"lowercase month", "3 feb 1871", "1871-02-03", 1871, gedgraph.FidelityExact},
		{"month and year", "JAN 1900", "1900-01", 1900, gedgraph.FidelityYear},
		{"year only", "1900", "1900", 1900, gedgraph.FidelityYear},
		{"about", "ABT 1850", "1850", 1850, gedgraph.FidelityApprox},
		{"estimated", "EST 12 MAR 1700", "1700-03-12", 1700, gedgraph.FidelityApprox},
		{"calculated", "CAL 1912", "1912", 1912, gedgraph.FidelityApprox},
		{"between", "BET 1900 AND 1910", "1900", 1900, gedgraph.FidelityRange},
		{"from-to", "FROM JAN 1920 TO MAR 1921", "1920-01", 1920, gedgraph.FidelityRange},
		{"before", "BEF 1800", "1800", 1800, gedgraph.FidelityRange},
		{"after", "AFT 14 JUL 1789", "1789-07-14", 1789, gedgraph.FidelityRange},
		{"free text", "deed of Sarah Smith", "", 0, gedgraph.FidelityUnparsed},
		{"bad day", "45 JAN 1900", "", 0, gedgraph.FidelityUnparsed},
		{"bad month", "12 FOO 1900", "", 0, gedgraph.FidelityUnparsed},
		{"about free text", "ABT spring", "", 0, gedgraph.FidelityUnparsed},
	}

	for _, tt := range tests {
		d := gedgraph.ParseDate(tt.text)
		assert.Equal(t, tt.text, d.Text, tt.msg)
		assert.Equal(t, tt.normalized, d.Normalized, tt.msg)
		assert.Equal(t, tt.year, d.Year, tt.msg)
		assert.Equal(t, tt.fidelity, d.Fidelity, tt.msg)
	}
}

func TestDateDisplay(t *testing.T) {
	tests := []struct {
		msg, text, display string
	}{
		{"exact", "12 JAN 1900", "1900-01-12"},
		{"about", "ABT 1850", "abt. 1850"},
		{"range keeps source text", "BET 1900 AND 1910", "BET 1900 AND 1910"},
		{"unparsed keeps source text", "in her youth", "in her youth"},
	}

	for _, tt := range tests {
		d := gedgraph.ParseDate(tt.text)
		assert.Equal(t, tt.display, d.Display(), tt.msg)
	}
}

func TestDateIsZero(t *testing.T) {
	assert.True(t, gedgraph.ParseDate("").IsZero())
	assert.True(t, gedgraph.ParseDate("   ").IsZero())
	assert.False(t, gedgraph.ParseDate("1900").IsZero())
}
