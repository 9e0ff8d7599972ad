package engine

import (
	"fmt"
	"sort"
	"strings"
)

const lineBreak = "\r\n"

// credentialTypeName is the parameter type annotation for credential
// variables in the document's param block.
const credentialTypeName = "[System.Management.Automation.PSCredential]"

// assembleDocument wraps the rendered blocks in a Configuration
// declaration. Registered credentials become mandatory PSCredential
// parameters so the document can be compiled without editing.
func assembleDocument(name string, credentials []string, blocks []RenderedBlock) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Configuration %s%s{%s", name, lineBreak, lineBreak)

	if len(credentials) > 0 {
		b.WriteString("    param(" + lineBreak)
		for i, ref := range credentials {
			if i > 0 {
				b.WriteString("," + lineBreak + lineBreak)
			}
			b.WriteString("        [Parameter(Mandatory = $true)]" + lineBreak)
			b.WriteString("        " + credentialTypeName + lineBreak)
			b.WriteString("        " + ref)
		}
		b.WriteString(lineBreak + "    )" + lineBreak)
	}

	for _, block := range blocks {
		b.WriteString(lineBreak)
		b.WriteString(indentBlock(block.Text, "    "))
	}

	b.WriteString("}")
	b.WriteString(lineBreak)
	return b.String()
}

// indentBlock prefixes every non-empty line of a CRLF-terminated block.
func indentBlock(text, prefix string) string {
	var b strings.Builder
	for _, line := range strings.SplitAfter(text, lineBreak) {
		if line == "" {
			continue
		}
		b.WriteString(prefix)
		b.WriteString(line)
	}
	return b.String()
}

// referenceSet collects credential reference variables for the param
// block, one declaration per case-insensitively distinct name. The
// first-seen casing wins so the declaration matches the rendered block
// lines; PowerShell resolves the rest case-insensitively.
type referenceSet struct {
	byLower map[string]string
}

func newReferenceSet() *referenceSet {
	return &referenceSet{byLower: make(map[string]string)}
}

func (s *referenceSet) add(ref string) {
	key := strings.ToLower(ref)
	if _, ok := s.byLower[key]; !ok {
		s.byLower[key] = ref
	}
}

func (s *referenceSet) sorted() []string {
	refs := make([]string, 0, len(s.byLower))
	for _, ref := range s.byLower {
		refs = append(refs, ref)
	}
	sort.Strings(refs)
	return refs
}
