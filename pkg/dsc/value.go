package dsc

// Kind identifies the literal family used to render a value.
type Kind int

const (
	// KindNull renders the $null token.
	KindNull Kind = iota

	// KindText renders a double-quoted string literal.
	KindText

	// KindBool renders the $True/$False tokens.
	KindBool

	// KindCredential renders a credential reference variable or an
	// interactive Get-Credential prompt.
	KindCredential

	// KindMap renders a @{ k = "v"; ... } hashtable literal.
	KindMap

	// KindTextArray renders a @("a","b") array literal.
	KindTextArray

	// KindIntArray renders a @(1,2,3) array literal.
	KindIntArray

	// KindObjectArray renders an array whose element syntax is chosen by
	// the first element's type.
	KindObjectArray

	// KindEnum renders the enum's string form double-quoted.
	KindEnum

	// KindRaw passes already-rendered literal text through unchanged.
	KindRaw
)

// kindNames is indexed by Kind.
var kindNames = [...]string{
	"null", "text", "bool", "credential", "map",
	"textarray", "intarray", "objectarray", "enum", "raw",
}

// String returns the lowercase kind name used in manifests and logs.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// ParseKind resolves a manifest kind name to its Kind. The second return
// is false for unknown names.
func ParseKind(name string) (Kind, bool) {
	for i, n := range kindNames {
		if n == name {
			return Kind(i), true
		}
	}
	return KindNull, false
}

// Value is a closed tagged union over the literal families the renderer
// distinguishes. The zero value is the untyped null.
type Value struct {
	kind    Kind
	absent  bool
	text    string
	boolean bool
	entries map[string]any
	elems   []any
}

// Kind returns the value's literal family.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether the value carries no data: either the untyped
// null or a typed-but-absent value produced by TypedNull.
func (v Value) IsNull() bool { return v.kind == KindNull || v.absent }

// NullValue returns the untyped null value.
func NullValue() Value { return Value{kind: KindNull} }

// TypedNull returns an absent value of a known kind, used when an
// external resolver supplies the declared type of a null parameter.
func TypedNull(kind Kind) Value { return Value{kind: kind, absent: true} }

// TextValue returns a string value.
func TextValue(s string) Value { return Value{kind: KindText, text: s} }

// BoolValue returns a boolean value.
func BoolValue(b bool) Value { return Value{kind: KindBool, boolean: b} }

// CredentialValue returns a credential value for the given username. An
// empty username renders as an interactive credential prompt.
func CredentialValue(username string) Value {
	return Value{kind: KindCredential, text: username, absent: username == ""}
}

// MapValue returns a hashtable value.
func MapValue(m map[string]any) Value { return Value{kind: KindMap, entries: m} }

// TextArrayValue returns a string array value.
func TextArrayValue(items []string) Value {
	elems := make([]any, len(items))
	for i, s := range items {
		elems[i] = s
	}
	return Value{kind: KindTextArray, elems: elems}
}

// IntArrayValue returns an integer array value.
func IntArrayValue(items []int) Value {
	elems := make([]any, len(items))
	for i, n := range items {
		elems[i] = n
	}
	return Value{kind: KindIntArray, elems: elems}
}

// ObjectArrayValue returns an array value whose rendering is dispatched
// on the type of the first element: strings render like a text array,
// maps render as inner hashtables, anything else is treated as
// pre-rendered text and concatenated verbatim. Mixed-type arrays after
// the first element are rendered by the first element's rule; this
// mirrors the legacy output shape and is a documented limitation.
func ObjectArrayValue(items []any) Value {
	return Value{kind: KindObjectArray, elems: append([]any(nil), items...)}
}

// EnumValue returns an enum value rendered from its string form.
func EnumValue(s string) Value { return Value{kind: KindEnum, text: s} }

// RawValue returns an opaque value whose text is emitted unchanged, used
// for nested CIM-style structures rendered by an external collaborator.
func RawValue(rendered string) Value { return Value{kind: KindRaw, text: rendered} }

// Classify derives a Value from a raw Go value's runtime type. The
// second return is false when the type maps to no literal family; the
// caller then falls back to best-effort stringification.
func Classify(raw any) (Value, bool) {
	switch t := raw.(type) {
	case nil:
		return NullValue(), true
	case Value:
		return t, true
	case string:
		return TextValue(t), true
	case bool:
		return BoolValue(t), true
	case map[string]any:
		return MapValue(t), true
	case map[string]string:
		m := make(map[string]any, len(t))
		for k, v := range t {
			m[k] = v
		}
		return MapValue(m), true
	case []string:
		return TextArrayValue(t), true
	case []int:
		return IntArrayValue(t), true
	case []any:
		return ObjectArrayValue(t), true
	}
	return NullValue(), false
}
