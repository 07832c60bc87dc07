package ioemit

import (
	"fmt"

	"github.com/gedtree/gedsite/pkg/errcode"
	"github.com/gnames/gn"
)

// WriteError creates an error for an output path that cannot be
// written. The whole emission run stops: when one write fails, the
// output directory itself is suspect.
func WriteError(path string, err error) error {
	msg := `Cannot write <em>%s</em>

<em>Possible causes:</em>
  - Output directory is not writable
  - Disk is full

<em>How to fix:</em>
  1. Check permissions of the output directory
  2. Check available disk space`

	vars := []any{path}

	return &gn.Error{
		Code: errcode.WriteError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot write %s: %w", path, err),
	}
}
