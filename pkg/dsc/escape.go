package dsc

import "strings"

// Escape characters for double-quoted DSC string literals. The backtick
// is the escape lead, the dollar sign is the variable substitution sigil.
const (
	escapeLead = "`"
	sigil      = "$"
)

// The three typographic double quotation marks PowerShell also treats as
// string delimiters.
const (
	lowQuote   = "„"
	leftQuote  = "“"
	rightQuote = "”"
)

// Escape prepares s for inclusion in a double-quoted DSC string literal.
// The backtick is doubled first so later passes never re-escape
// characters introduced by earlier ones; the dollar sign is escaped
// unless allowVariables keeps substitution expressions live; the ASCII
// double quote is escaped last.
func Escape(s string, allowVariables bool) string {
	if s == "" {
		return ""
	}
	s = strings.ReplaceAll(s, escapeLead, escapeLead+escapeLead)
	if !allowVariables {
		s = strings.ReplaceAll(s, sigil, escapeLead+sigil)
	}
	s = strings.ReplaceAll(s, lowQuote, escapeLead+lowQuote)
	s = strings.ReplaceAll(s, leftQuote, escapeLead+leftQuote)
	s = strings.ReplaceAll(s, rightQuote, escapeLead+rightQuote)
	s = strings.ReplaceAll(s, `"`, escapeLead+`"`)
	return s
}
