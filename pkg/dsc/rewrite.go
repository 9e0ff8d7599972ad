package dsc

import (
	"regexp"
	"strings"
)

// StripQuotes promotes parameter's rendered double-quoted literal inside
// block to a bare expression by removing the boundary quote characters,
// leaving everything else byte-identical. Array-like and object-like
// values get additional scanning rules for nested literals plus a
// textual cleanup pass afterward. A parameter that does not occur in the
// block is not an error; the input is returned unchanged.
func StripQuotes(block, parameter string, arrayLike, objectLike bool) string {
	assign := findAssignment(block, parameter)
	if assign < 0 {
		return block
	}
	composite := arrayLike || objectLike

	limit := lineEnd(block, assign)

	// One forward scan over the immutable input collects the boundary
	// offsets; the output is rebuilt by copying every byte that is not a
	// boundary quote. Offsets never shift because nothing is removed
	// until the copy.
	boundary := make(map[int]bool)
	pos := assign
	for {
		start := indexWithin(block, '"', pos, limit)
		if start < 0 {
			break
		}
		end := closingQuote(block, start+1, limit, composite)
		if end < 0 {
			break
		}
		boundary[start] = true
		boundary[end] = true
		pos = end + 1
	}
	if len(boundary) == 0 {
		return block
	}

	var b strings.Builder
	b.Grow(len(block) - len(boundary))
	for i := 0; i < len(block); i++ {
		if boundary[i] {
			continue
		}
		b.WriteByte(block[i])
	}
	out := b.String()

	if composite {
		out = normalizeComposite(out, parameter)
	}
	return out
}

// findAssignment locates the real assignment for parameter: the name
// must be delimited by whitespace (or start the block) so that names
// occurring as substrings of other identifiers or inside values are not
// matched, and its next `=` must come before the next `"` — a quote
// first means the candidate sits inside some other parameter's value.
func findAssignment(block, parameter string) int {
	needle := parameter + " "
	from := 0
	for {
		i := strings.Index(block[from:], needle)
		if i < 0 {
			return -1
		}
		i += from
		if i > 0 {
			prev := block[i-1]
			if prev != ' ' && prev != '\n' && prev != '\t' {
				from = i + len(needle)
				continue
			}
		}
		rest := block[i:]
		eq := strings.IndexByte(rest, '=')
		quote := strings.IndexByte(rest, '"')
		if eq >= 0 && (quote < 0 || eq < quote) {
			return i
		}
		from = i + len(needle)
	}
}

// lineEnd returns the offset of the statement terminator sequence after
// pos, or the end of the text when the statement is unterminated.
func lineEnd(block string, pos int) int {
	if i := strings.Index(block[pos:], terminatorSeq); i >= 0 {
		return pos + i
	}
	return len(block)
}

// closingQuote finds the end quote matching a start quote at from-1.
// For composite values a quote immediately preceded by an assignment
// operator (with at most one intervening space) opens a nested inner
// literal rather than closing the outer one; the scan skips past the
// nested literal's closing quote and keeps looking. When no double quote
// remains before limit, a single quote terminates non-standard values.
func closingQuote(block string, from, limit int, composite bool) int {
	i := from
	for i < limit {
		q := indexWithin(block, '"', i, limit)
		if q < 0 {
			// Scan from the current position so the fallback cannot land
			// inside a nested literal that was already skipped.
			return indexWithin(block, '\'', i, limit)
		}
		if composite && nestedOpening(block, q) {
			inner := indexWithin(block, '"', q+1, limit)
			if inner < 0 {
				return -1
			}
			i = inner + 1
			continue
		}
		return q
	}
	return -1
}

// nestedOpening reports whether the quote at q is the opening quote of a
// nested inner-field literal: `="` or `= "`.
func nestedOpening(block string, q int) bool {
	if q >= 1 && block[q-1] == '=' {
		return true
	}
	return q >= 2 && block[q-1] == ' ' && block[q-2] == '='
}

// indexWithin returns the index of c in block[from:limit), or -1.
func indexWithin(block string, c byte, from, limit int) int {
	if from >= limit {
		return -1
	}
	if i := strings.IndexByte(block[from:limit], c); i >= 0 {
		return from + i
	}
	return -1
}

var loneSeparatorLine = regexp.MustCompile(`\r\n[ \t]*[,;]\r\n`)

// normalizeComposite cleans up the parameter's statement span after the
// boundary quotes of a composite value were removed: separators left
// alone on their own line are collapsed, a comma trailing a structural
// close brace is dropped, a dangling `");` ending is reflowed onto its
// own line, and inner quotes that were double-escaped while the value
// was still quoted are unescaped.
func normalizeComposite(block, parameter string) string {
	assign := findAssignment(block, parameter)
	if assign < 0 {
		return block
	}
	end := lineEnd(block, assign)
	if end < len(block) {
		end += len(terminatorSeq)
	}
	stmt := block[assign:end]

	for {
		collapsed := loneSeparatorLine.ReplaceAllString(stmt, lineBreak)
		if collapsed == stmt {
			break
		}
		stmt = collapsed
	}
	stmt = strings.ReplaceAll(stmt, "},"+lineBreak, "}"+lineBreak)

	if strings.HasSuffix(stmt, `");`+lineBreak) {
		indent := lineIndent(block, assign)
		stmt = strings.TrimSuffix(stmt, `");`+lineBreak) +
			`"` + lineBreak + indent + ");" + lineBreak
	}

	stmt = strings.ReplaceAll(stmt, escapeLead+`"`, `"`)

	return block[:assign] + stmt + block[end:]
}

// lineIndent returns the leading whitespace of the line containing pos.
func lineIndent(block string, pos int) string {
	start := strings.LastIndex(block[:pos], "\n") + 1
	i := start
	for i < len(block) && (block[i] == ' ' || block[i] == '\t') {
		i++
	}
	return block[start:i]
}
