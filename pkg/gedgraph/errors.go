package gedgraph

import (
	"fmt"

	"github.com/gedtree/gedsite/pkg/errcode"
	"github.com/gnames/gn"
)

// DanglingReferenceError creates an error for a pointer that resolves
// to no record. A graph with dangling pointers cannot produce correct
// cross-links, so the run aborts before any document is written.
func DanglingReferenceError(pointer, owner, role string) error {
	msg := `Dangling reference <em>@%s@</em>

<em>Referenced by:</em> %s
<em>As:</em> %s

The pointer does not match any individual or family record in the
file. Cross-links built from a partial graph would be misleading, so
nothing was written.

<em>How to fix:</em>
  1. Re-export the GEDCOM file from your genealogy program
  2. Check for records deleted without removing their references`

	vars := []any{pointer, owner, role}

	return &gn.Error{
		Code: errcode.DanglingReferenceError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("%s of %s points to missing record @%s@",
			role, owner, pointer),
	}
}

// DuplicateRecordError creates an error for two records sharing one
// cross-reference id.
func DuplicateRecordError(id string, line int) error {
	msg := `Duplicate record id <em>@%s@</em> at line <em>%d</em>

Record ids identify individuals and families; two records must never
share one.`

	vars := []any{id, line}

	return &gn.Error{
		Code: errcode.DuplicateRecordError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("duplicate record id @%s@ at line %d", id, line),
	}
}
