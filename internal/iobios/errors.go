package iobios

import (
	"fmt"
	"strings"

	"github.com/gedtree/gedsite/pkg/errcode"
	"github.com/gnames/gn"
)

// BiographyDirError creates an error for a biography directory that
// exists but cannot be listed.
func BiographyDirError(dir string, err error) error {
	msg := `Cannot list biography directory <em>%s</em>`
	vars := []any{dir}

	return &gn.Error{
		Code: errcode.ReadFileError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot list biography directory: %w", err),
	}
}

// BiographyReadError creates an error for a biography file that
// matched but cannot be read. Callers treat it as a per-person
// warning: one bad biography file must not block the rest of the
// site.
func BiographyReadError(path string, err error) error {
	msg := `Cannot read biography file <em>%s</em>`
	vars := []any{path}

	return &gn.Error{
		Code: errcode.BiographyReadError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot read biography file: %w", err),
	}
}

// AmbiguousBiographyMatchError creates an error for several biography
// files matching one name slug. The profile is emitted without a
// biography rather than merging in an arbitrary order.
func AmbiguousBiographyMatchError(slug string, paths []string) error {
	msg := `Several biography files match the name slug <em>%s</em>

<em>Candidates:</em>
%s

<em>How to fix:</em>
  Rename one of the files to the person's record id (for example
  I42.md), which always takes precedence.`

	var lines []string
	for _, p := range paths {
		lines = append(lines, "  - "+p)
	}
	vars := []any{slug, strings.Join(lines, "\n")}

	return &gn.Error{
		Code: errcode.AmbiguousBiographyMatchError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("%d biography files match slug '%s'", len(paths), slug),
	}
}
