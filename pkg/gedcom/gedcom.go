// Package gedcom parses GEDCOM text into a tree of raw records.
//
// GEDCOM is a line-oriented format where each line carries a numeric
// level, an optional @id@ cross-reference pointer, a tag, and an
// optional value. Nesting is expressed through level numbers: a child
// line's level is exactly its parent's level plus one.
//
// This package is pure computation: it consumes an io.Reader and
// produces immutable Record trees. All I/O stays with the callers.
package gedcom

import (
	"io"
)

// Line is a single tokenized GEDCOM line.
type Line struct {
	// Level is the numeric nesting depth, starting at 0 for roots.
	Level int

	// XRef is the cross-reference id for record-defining lines such as
	// "0 @I1@ INDI". The surrounding '@' characters are stripped.
	XRef string

	// Tag is the GEDCOM tag keyword (INDI, NAME, BIRT, DATE, ...).
	Tag string

	// Value is the remainder of the line after the tag, possibly empty.
	Value string

	// Number is the 1-based physical line number in the source file.
	Number int
}

// Record is a node of the raw GEDCOM tree. Children appear in source
// order. Records are never mutated after Parse returns.
type Record struct {
	Level    int
	XRef     string
	Tag      string
	Value    string
	Line     int
	Children []*Record
}

// Parse tokenizes the input and assembles the raw record tree.
// It returns the top-level records in source order.
func Parse(r io.Reader) ([]*Record, error) {
	lines, err := Lex(r)
	if err != nil {
		return nil, err
	}
	return BuildTree(lines)
}

// First returns the first direct child with the given tag, or nil.
func (r *Record) First(tag string) *Record {
	for _, c := range r.Children {
		if c.Tag == tag {
			return c
		}
	}
	return nil
}

// All returns every direct child with the given tag, in source order.
func (r *Record) All(tag string) []*Record {
	var res []*Record
	for _, c := range r.Children {
		if c.Tag == tag {
			res = append(res, c)
		}
	}
	return res
}

// ValueOf returns the value of the first direct child with the given
// tag, or the empty string when no such child exists.
func (r *Record) ValueOf(tag string) string {
	if c := r.First(tag); c != nil {
		return c.Value
	}
	return ""
}
