package ioplaces

import (
	"fmt"

	"github.com/gedtree/gedsite/pkg/errcode"
	"github.com/gnames/gn"
)

// PlacesConfigError creates an error for an unreadable or invalid
// places.yaml file.
func PlacesConfigError(path string, err error) error {
	msg := `Cannot load places mapping <em>%s</em>

<em>Possible causes:</em>
  - Invalid YAML syntax
  - Permission denied

<em>How to fix:</em>
  1. Check YAML syntax (indentation, quoting of keys with commas)
  2. Delete the file to regenerate the default template`

	vars := []any{path}

	return &gn.Error{
		Code: errcode.PlacesConfigError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot load places config: %w", err),
	}
}
