package iobuild

import (
	"fmt"

	"github.com/gedtree/gedsite/pkg/errcode"
	"github.com/gnames/gn"
)

// SourceNotFoundError creates an error for a missing GEDCOM source
// file.
func SourceNotFoundError(path string, err error) error {
	msg := `GEDCOM file not found: <em>%s</em>

<em>How to fix:</em>
  1. Check the path for typos
  2. Export a .ged file from your genealogy program`

	vars := []any{path}

	return &gn.Error{
		Code: errcode.BuildSourceNotFoundError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("GEDCOM file not found: %w", err),
	}
}

// SourceReadError creates an error for a GEDCOM source that exists
// but cannot be opened.
func SourceReadError(path string, err error) error {
	msg := `Cannot open GEDCOM file <em>%s</em>`
	vars := []any{path}

	return &gn.Error{
		Code: errcode.ReadFileError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot open GEDCOM file: %w", err),
	}
}

// CancelledError creates an error for when the build is cancelled.
func CancelledError(err error) error {
	msg := "Build was cancelled"

	return &gn.Error{
		Code: errcode.BuildCancelledError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("build cancelled: %w", err),
	}
}

// WatchError creates an error for a file watcher that cannot be set
// up.
func WatchError(err error) error {
	msg := "Cannot watch the source for changes"

	return &gn.Error{
		Code: errcode.BuildWatchError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("cannot set up file watcher: %w", err),
	}
}
