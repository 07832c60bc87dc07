package gedgraph

import (
	"strings"
	"unicode"
)

// ParseName splits a GEDCOM name value on the /surname/ convention,
// as in "John /Smith/". A value without a well-formed surname block
// falls back to the raw string as the sole name part instead of
// failing the record.
func ParseName(value string) Name {
	value = strings.TrimSpace(value)

	open := strings.Index(value, "/")
	if open < 0 {
		if value == "" {
			return Name{}
		}
		return Name{Given: value}
	}
	close := strings.Index(value[open+1:], "/")
	if close < 0 {
		return Name{Raw: value}
	}
	close += open + 1

	given := strings.TrimSpace(value[:open])
	surname := strings.TrimSpace(value[open+1 : close])
	suffix := strings.TrimSpace(value[close+1:])
	if suffix != "" {
		given = strings.TrimSpace(given + " " + suffix)
	}

	if given == "" && surname == "" {
		return Name{}
	}
	return Name{Given: given, Surname: surname}
}

// Slug returns a normalized, filename-safe form of a display name,
// used as the fallback key for biography lookups. Letters and digits
// are kept (lowercased), runs of anything else collapse to single
// dashes.
func Slug(name string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
