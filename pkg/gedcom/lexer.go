package gedcom

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// Lex tokenizes GEDCOM text into lines. Blank lines are skipped, CRLF
// endings and a leading UTF-8 BOM are tolerated, trailing whitespace is
// trimmed. A line whose level is not a non-negative integer, or that
// has no tag at all, stops lexing with MalformedLineError carrying the
// 1-based line number. Level numbers drive nesting, so a bad line can
// corrupt everything after it; failing fast is the only safe option.
func Lex(r io.Reader) ([]Line, error) {
	var res []Line

	sc := bufio.NewScanner(r)
	// GEDCOM values are short, but NOTE/CONT payloads can be long.
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	num := 0
	for sc.Scan() {
		num++
		raw := sc.Text()
		if num == 1 {
			raw = strings.TrimPrefix(raw, "\uFEFF")
		}
		raw = strings.TrimRight(raw, " \t\r")
		if strings.TrimSpace(raw) == "" {
			continue
		}

		line, err := lexLine(raw, num)
		if err != nil {
			return nil, err
		}
		res = append(res, line)
	}
	if err := sc.Err(); err != nil {
		return nil, SourceReadError(err)
	}

	return res, nil
}

// lexLine parses one physical line of the forms
//
//	<level> <tag> <value>?
//	<level> @<id>@ <tag> <value>?
func lexLine(raw string, num int) (Line, error) {
	var res Line

	s := strings.TrimLeft(raw, " \t")
	parts := strings.SplitN(s, " ", 3)
	if len(parts) < 2 {
		return res, MalformedLineError(num, raw, "tag is missing")
	}

	level, err := strconv.Atoi(parts[0])
	if err != nil || level < 0 {
		return res, MalformedLineError(num, raw, "level is not a non-negative integer")
	}

	res = Line{Level: level, Number: num}

	rest := parts[1:]
	// A doubled delimiter yields an empty token where the tag belongs;
	// accepting it would misfile the value as belonging to no tag.
	if rest[0] == "" {
		return res, MalformedLineError(num, raw, "tag is missing")
	}
	if isPointer(rest[0]) {
		res.XRef = strings.Trim(rest[0], "@")
		if len(rest) < 2 || rest[1] == "" {
			return res, MalformedLineError(num, raw, "pointer line has no tag")
		}
		// Re-split the remainder: tag and optional value.
		tagVal := strings.SplitN(rest[1], " ", 2)
		if tagVal[0] == "" {
			return res, MalformedLineError(num, raw, "pointer line has no tag")
		}
		res.Tag = tagVal[0]
		if len(tagVal) == 2 {
			res.Value = strings.TrimSpace(tagVal[1])
		}
		return res, nil
	}

	res.Tag = rest[0]
	if len(rest) == 2 {
		res.Value = strings.TrimSpace(rest[1])
	}
	return res, nil
}

func isPointer(s string) bool {
	return len(s) > 2 && strings.HasPrefix(s, "@") && strings.HasSuffix(s, "@")
}
