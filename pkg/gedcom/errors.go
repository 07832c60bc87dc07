package gedcom

import (
	"fmt"

	"github.com/gedtree/gedsite/pkg/errcode"
	"github.com/gnames/gn"
)

// MalformedLineError creates an error for a GEDCOM line that cannot
// be tokenized.
func MalformedLineError(lineNum int, raw, reason string) error {
	msg := `Malformed GEDCOM line <em>%d</em>

<em>Line:</em> %s
<em>Problem:</em> %s

Every GEDCOM line must look like '<level> <tag> <value>' or
'<level> @<id>@ <tag> <value>'. Level numbers drive nesting, so the
file cannot be processed past a broken line.`

	vars := []any{lineNum, raw, reason}

	return &gn.Error{
		Code: errcode.MalformedLineError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("malformed line %d: %s", lineNum, reason),
	}
}

// StructuralError creates an error for an illegal level jump.
func StructuralError(lineNum, got, want int) error {
	msg := `Illegal level jump at line <em>%d</em>

<em>Found level:</em> %d
<em>Expected at most:</em> %d

A GEDCOM child line must increase the level by exactly one. A bigger
jump means records are missing or the file is corrupt.`

	vars := []any{lineNum, got, want}

	return &gn.Error{
		Code: errcode.StructuralError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("line %d: level jumps to %d, expected at most %d",
			lineNum, got, want),
	}
}

// SourceReadError creates an error for a failed read of GEDCOM input.
func SourceReadError(err error) error {
	msg := "Cannot read GEDCOM input"

	return &gn.Error{
		Code: errcode.ReadFileError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("cannot read GEDCOM input: %w", err),
	}
}
