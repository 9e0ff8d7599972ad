package dsc

import (
	"fmt"
	"sort"
	"strings"
)

// Fixed literal tokens of the target language.
const (
	trueToken  = "$True"
	falseToken = "$False"
	nullToken  = "$null"
	emptyArray = "@()"
)

// FormatFlags adjusts how string-bearing literals are rendered.
type FormatFlags struct {
	// NoEscape skips the escaping pass. The literal is still wrapped in
	// quotes; only the character escaping is bypassed.
	NoEscape bool

	// AllowVariables keeps $ substitution expressions live instead of
	// escaping the sigil.
	AllowVariables bool
}

// FormatLiteral renders v in the literal syntax of its kind. The
// parameter name is only consulted by the credential formatter, which
// uses it as the interactive prompt for absent credentials. Formatters
// are side-effect-free; a value that cannot be rendered exactly falls
// back to best-effort stringification rather than failing.
func FormatLiteral(name string, v Value, flags FormatFlags) string {
	switch v.kind {
	case KindNull:
		return nullToken
	case KindText:
		return formatText(v, flags)
	case KindBool:
		return formatBool(v)
	case KindCredential:
		return formatCredential(name, v)
	case KindMap:
		return formatMap(v)
	case KindTextArray:
		return formatTextArray(v, flags)
	case KindIntArray:
		return formatIntArray(v)
	case KindObjectArray:
		return formatObjectArray(v, flags)
	case KindEnum:
		return `"` + v.text + `"`
	case KindRaw:
		return v.text
	}
	return fmt.Sprint(v.text)
}

func formatText(v Value, flags FormatFlags) string {
	if v.absent {
		return `""`
	}
	if flags.NoEscape {
		return `"` + v.text + `"`
	}
	return `"` + Escape(v.text, flags.AllowVariables) + `"`
}

func formatBool(v Value) string {
	if v.absent {
		return falseToken
	}
	if v.boolean {
		return trueToken
	}
	return falseToken
}

func formatCredential(name string, v Value) string {
	if v.absent || v.text == "" {
		return `Get-Credential -Message "` + name + `"`
	}
	return CredentialReference(v.text)
}

// formatMap renders @{ k = "v"; ... } with sorted keys. If any value
// cannot be stringified the whole hashtable falls back to the raw map's
// default rendering; one bad entry spoils the literal by design.
func formatMap(v Value) string {
	if v.absent || len(v.entries) == 0 {
		return "@{}"
	}
	keys := make([]string, 0, len(v.entries))
	for k := range v.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		s, err := stringifyScalar(v.entries[k])
		if err != nil {
			return fmt.Sprint(v.entries)
		}
		parts = append(parts, k+` = "`+s+`"`)
	}
	return "@{ " + strings.Join(parts, "; ") + " }"
}

func formatTextArray(v Value, flags FormatFlags) string {
	if v.absent || len(v.elems) == 0 {
		return emptyArray
	}
	parts := make([]string, 0, len(v.elems))
	for _, e := range v.elems {
		if e == nil {
			// Null elements are skipped, not emitted as empty strings.
			continue
		}
		s := fmt.Sprint(e)
		if !flags.NoEscape {
			s = Escape(s, flags.AllowVariables)
		}
		parts = append(parts, `"`+s+`"`)
	}
	return "@(" + strings.Join(parts, ",") + ")"
}

func formatIntArray(v Value) string {
	if v.absent || len(v.elems) == 0 {
		return emptyArray
	}
	parts := make([]string, 0, len(v.elems))
	for _, e := range v.elems {
		parts = append(parts, fmt.Sprintf("%v", e))
	}
	return "@(" + strings.Join(parts, ",") + ")"
}

// formatObjectArray dispatches on the first element's type. Elements
// after the first are rendered by the same rule regardless of their own
// type; mixed arrays are not specially handled.
func formatObjectArray(v Value, flags FormatFlags) string {
	if v.absent || len(v.elems) == 0 {
		return emptyArray
	}
	switch v.elems[0].(type) {
	case string:
		return formatTextArray(v, flags)
	case map[string]any, map[string]string:
		parts := make([]string, 0, len(v.elems))
		for _, e := range v.elems {
			parts = append(parts, formatInnerMap(e))
		}
		return "@(" + strings.Join(parts, ",") + ")"
	}
	// Opaque elements carry their own pre-rendered text.
	var b strings.Builder
	b.WriteString("@(")
	for _, e := range v.elems {
		if val, ok := e.(Value); ok && val.kind == KindRaw {
			b.WriteString(val.text)
			continue
		}
		b.WriteString(fmt.Sprint(e))
	}
	b.WriteString(")")
	return b.String()
}

// formatInnerMap renders one hashtable element of an object array:
// @{k='v'; a=@('x','y'); n=$null}. Scalars are single-quoted, array
// values render as single-quoted comma-joined lists, nulls render as
// the null token.
func formatInnerMap(e any) string {
	entries := asMap(e)
	if entries == nil {
		return fmt.Sprint(e)
	}
	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+"="+formatInnerValue(entries[k]))
	}
	return "@{" + strings.Join(parts, "; ") + "}"
}

func formatInnerValue(raw any) string {
	switch t := raw.(type) {
	case nil:
		return nullToken
	case []string:
		parts := make([]string, 0, len(t))
		for _, s := range t {
			parts = append(parts, "'"+s+"'")
		}
		return "@(" + strings.Join(parts, ",") + ")"
	case []any:
		parts := make([]string, 0, len(t))
		for _, e := range t {
			parts = append(parts, "'"+fmt.Sprint(e)+"'")
		}
		return "@(" + strings.Join(parts, ",") + ")"
	}
	return "'" + fmt.Sprint(raw) + "'"
}

func asMap(e any) map[string]any {
	switch t := e.(type) {
	case map[string]any:
		return t
	case map[string]string:
		m := make(map[string]any, len(t))
		for k, v := range t {
			m[k] = v
		}
		return m
	}
	return nil
}

// stringifyScalar renders a hashtable value for the flat map literal.
// Composite values cannot be represented there and report an error,
// which triggers the whole-map fallback.
func stringifyScalar(raw any) (string, error) {
	switch t := raw.(type) {
	case nil:
		return "", fmt.Errorf("null hashtable value")
	case string:
		return t, nil
	case bool, int, int32, int64, uint, uint32, uint64, float32, float64:
		return fmt.Sprintf("%v", t), nil
	}
	return "", fmt.Errorf("unsupported hashtable value type %T", raw)
}
