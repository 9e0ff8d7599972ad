package dsc

import (
	"fmt"
	"sort"
	"strings"
)

// MetadataPrefix marks auxiliary parameters whose only purpose is to
// carry an inline comment for another parameter's line.
const MetadataPrefix = "_metadata_"

// MinNameColumn is the alignment floor for parameter names. It matches
// the longest well-known reserved parameter name so short blocks still
// align at a stable column.
const MinNameColumn = 20

// Line and statement terminators of the emitted text.
const (
	lineBreak     = "\r\n"
	statementEnd  = ";"
	terminatorSeq = statementEnd + lineBreak
)

// Parameter is one named value of a resource block. Names are unique
// within a block; insertion order is irrelevant because the assembler
// sorts by name before rendering.
type Parameter struct {
	// Name is the parameter name.
	Name string

	// Value is the tagged value to render.
	Value Value

	// NoEscape renders the value's strings without the escaping pass.
	NoEscape bool

	// AllowVariables keeps $ substitution expressions live.
	AllowVariables bool

	// Comment is appended after the statement terminator, verbatim.
	// Metadata parameters targeting this name take precedence.
	Comment string
}

// TypeResolver reports the declared kind of a parameter whose runtime
// value is null, so the assembler can still pick the right empty-form
// literal (@() vs "" vs a credential prompt).
type TypeResolver interface {
	ResolveKind(resource, parameter string) (Kind, bool)
}

// StaticResolver is a TypeResolver backed by a map. Keys are either
// "resource/parameter" or a bare parameter name; the qualified form
// wins.
type StaticResolver map[string]Kind

// ResolveKind implements TypeResolver.
func (r StaticResolver) ResolveKind(resource, parameter string) (Kind, bool) {
	if k, ok := r[resource+"/"+parameter]; ok {
		return k, true
	}
	k, ok := r[parameter]
	return k, ok
}

// RenderBlock renders the parameters as aligned assignment lines. Null
// parameters whose kind cannot be resolved are dropped; metadata
// parameters are consumed as inline comments for their target; the
// remainder is sorted by name, padded to a common column and emitted as
// `<name> = <literal>;` lines with CRLF terminators. Output is fully
// determined by the input set.
func RenderBlock(resource string, params []Parameter, resolver TypeResolver) string {
	comments := make(map[string]string)
	kept := make([]Parameter, 0, len(params))
	for _, p := range params {
		if target, ok := strings.CutPrefix(p.Name, MetadataPrefix); ok {
			comments[target] = commentText(p.Value)
			continue
		}
		if p.Value.IsNull() && p.Value.Kind() == KindNull {
			kind, ok := KindNull, false
			if resolver != nil {
				kind, ok = resolver.ResolveKind(resource, p.Name)
			}
			if !ok {
				continue
			}
			p.Value = TypedNull(kind)
		}
		kept = append(kept, p)
	}

	sort.Slice(kept, func(i, j int) bool { return kept[i].Name < kept[j].Name })

	maxName := MinNameColumn
	for _, p := range kept {
		if len(p.Name) > maxName {
			maxName = len(p.Name)
		}
	}

	var b strings.Builder
	for _, p := range kept {
		flags := FormatFlags{NoEscape: p.NoEscape, AllowVariables: p.AllowVariables}
		b.WriteString(p.Name)
		b.WriteString(strings.Repeat(" ", maxName-len(p.Name)))
		b.WriteString(" = ")
		b.WriteString(FormatLiteral(p.Name, p.Value, flags))
		b.WriteString(statementEnd)
		if c, ok := comments[p.Name]; ok && c != "" {
			b.WriteString(" " + c)
		} else if p.Comment != "" {
			b.WriteString(" " + p.Comment)
		}
		b.WriteString(lineBreak)
	}
	return b.String()
}

// RenderResourceBlock wraps the assembled assignment lines in the
// resource instance header and brace pair used inside a DSC
// configuration document.
func RenderResourceBlock(resourceType, instanceName string, params []Parameter, resolver TypeResolver) string {
	body := RenderBlock(resourceType, params, resolver)

	var b strings.Builder
	fmt.Fprintf(&b, "%s %q%s{%s", resourceType, instanceName, lineBreak, lineBreak)
	for _, line := range strings.SplitAfter(body, lineBreak) {
		if line == "" {
			continue
		}
		b.WriteString("    ")
		b.WriteString(line)
	}
	b.WriteString("}")
	b.WriteString(lineBreak)
	return b.String()
}

// commentText renders a metadata parameter's value as comment text.
func commentText(v Value) string {
	switch v.Kind() {
	case KindText, KindEnum, KindRaw:
		return v.text
	case KindNull:
		return ""
	}
	return fmt.Sprint(v.text)
}
