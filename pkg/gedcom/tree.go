package gedcom

// BuildTree assembles tokenized lines into record trees using the
// level number as nesting depth. It keeps a stack of open records: on
// each line the stack is popped until its top sits one level above the
// line, then the new record is attached as a child and pushed.
//
// A level jump greater than +1 is a StructuralError: GEDCOM defines a
// child's level as exactly the parent's level plus one, so a bigger
// jump means the file is corrupt. Running out of input with open
// records is normal; trailing records simply close.
func BuildTree(lines []Line) ([]*Record, error) {
	var roots []*Record
	var stack []*Record

	for _, ln := range lines {
		rec := &Record{
			Level: ln.Level,
			XRef:  ln.XRef,
			Tag:   ln.Tag,
			Value: ln.Value,
			Line:  ln.Number,
		}

		if ln.Level == 0 {
			roots = append(roots, rec)
			stack = stack[:0]
			stack = append(stack, rec)
			continue
		}

		// Close records that are deeper than or at the new line's level.
		for len(stack) > 0 && stack[len(stack)-1].Level >= ln.Level {
			stack = stack[:len(stack)-1]
		}

		if len(stack) == 0 {
			return nil, StructuralError(ln.Number, ln.Level, 0)
		}

		parent := stack[len(stack)-1]
		if ln.Level != parent.Level+1 {
			return nil, StructuralError(ln.Number, ln.Level, parent.Level+1)
		}

		parent.Children = append(parent.Children, rec)
		stack = append(stack, rec)
	}

	return roots, nil
}
