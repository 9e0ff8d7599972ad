package dsc

import (
	"strings"
	"testing"
)

func TestFormatLiteral(t *testing.T) {
	tests := []struct {
		name  string
		param string
		value Value
		flags FormatFlags
		want  string
	}{
		{
			name:  "text",
			value: TextValue("Test"),
			want:  `"Test"`,
		},
		{
			name:  "absent text renders empty quoted string",
			value: TypedNull(KindText),
			want:  `""`,
		},
		{
			name:  "text is escaped",
			value: TextValue("a$b"),
			want:  "\"a`$b\"",
		},
		{
			name:  "noescape keeps quoting but skips escaping",
			value: TextValue("a$b"),
			flags: FormatFlags{NoEscape: true},
			want:  `"a$b"`,
		},
		{
			name:  "bool true",
			value: BoolValue(true),
			want:  "$True",
		},
		{
			name:  "bool false",
			value: BoolValue(false),
			want:  "$False",
		},
		{
			name:  "null token",
			value: NullValue(),
			want:  "$null",
		},
		{
			name:  "enum quotes the string form",
			value: EnumValue("Present"),
			want:  `"Present"`,
		},
		{
			name:  "raw passthrough",
			value: RawValue("MSFT_KeyValuePair { Key = 'a' }"),
			want:  "MSFT_KeyValuePair { Key = 'a' }",
		},
		{
			name:  "empty text array",
			value: TextArrayValue(nil),
			want:  "@()",
		},
		{
			name:  "single item text array",
			value: TextArrayValue([]string{"Item1"}),
			want:  `@("Item1")`,
		},
		{
			name:  "two item text array",
			value: TextArrayValue([]string{"Item1", "Item2"}),
			want:  `@("Item1","Item2")`,
		},
		{
			name:  "text array skips null elements",
			value: Value{kind: KindTextArray, elems: []any{"a", nil, "b"}},
			want:  `@("a","b")`,
		},
		{
			name:  "absent text array renders empty array",
			value: TypedNull(KindTextArray),
			want:  "@()",
		},
		{
			name:  "int array",
			value: IntArrayValue([]int{1, 2, 3}),
			want:  "@(1,2,3)",
		},
		{
			name:  "empty int array",
			value: IntArrayValue(nil),
			want:  "@()",
		},
		{
			name:  "map with sorted keys",
			value: MapValue(map[string]any{"beta": "2", "alpha": "1"}),
			want:  `@{ alpha = "1"; beta = "2" }`,
		},
		{
			name:  "map stringifies scalars",
			value: MapValue(map[string]any{"count": 3, "on": true}),
			want:  `@{ count = "3"; on = "true" }`,
		},
		{
			name:  "object array of strings renders like text array",
			value: ObjectArrayValue([]any{"a", "b"}),
			want:  `@("a","b")`,
		},
		{
			name: "object array of maps",
			value: ObjectArrayValue([]any{
				map[string]any{"Name": "x", "Tags": []string{"t1", "t2"}, "Extra": nil},
			}),
			want: `@(@{Extra=$null; Name='x'; Tags=@('t1','t2')})`,
		},
		{
			name: "object array of opaque values concatenates verbatim",
			value: ObjectArrayValue([]any{
				RawValue("MSFT_X { A = '1' }"),
				RawValue("MSFT_X { A = '2' }"),
			}),
			want: "@(MSFT_X { A = '1' }MSFT_X { A = '2' })",
		},
		{
			name:  "empty object array",
			value: ObjectArrayValue(nil),
			want:  "@()",
		},
		{
			name:  "absent credential renders interactive prompt",
			param: "InstallAccount",
			value: CredentialValue(""),
			want:  `Get-Credential -Message "InstallAccount"`,
		},
		{
			name:  "domain qualified credential",
			value: CredentialValue(`CONTOSO\admin-user.name`),
			want:  "$Credsadmin_user_name",
		},
		{
			name:  "upn credential uses local part",
			value: CredentialValue("admin@contoso.com"),
			want:  "$Credsadmin",
		},
		{
			name:  "plain username",
			value: CredentialValue("svc account"),
			want:  "$Credssvc_account",
		},
		{
			name:  "existing reference is normalized",
			value: CredentialValue("$Credsbob.smith"),
			want:  "$Credsbob_smith",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatLiteral(tt.param, tt.value, tt.flags)
			if got != tt.want {
				t.Errorf("FormatLiteral(%q, %v) = %q, want %q", tt.param, tt.value.Kind(), got, tt.want)
			}
		})
	}
}

func TestFormatMapFallback(t *testing.T) {
	// A value that cannot be stringified spoils the whole hashtable
	// literal: the raw map's default rendering comes back instead.
	v := MapValue(map[string]any{"ok": "1", "bad": []string{"x"}})
	got := FormatLiteral("Settings", v, FormatFlags{})
	if strings.HasPrefix(got, "@{") {
		t.Fatalf("expected fallback rendering, got literal %q", got)
	}
	if !strings.Contains(got, "bad") || !strings.Contains(got, "ok") {
		t.Errorf("fallback rendering %q should mention the raw entries", got)
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		raw  any
		kind Kind
		ok   bool
	}{
		{name: "nil", raw: nil, kind: KindNull, ok: true},
		{name: "string", raw: "x", kind: KindText, ok: true},
		{name: "bool", raw: true, kind: KindBool, ok: true},
		{name: "string slice", raw: []string{"a"}, kind: KindTextArray, ok: true},
		{name: "int slice", raw: []int{1}, kind: KindIntArray, ok: true},
		{name: "any slice", raw: []any{"a"}, kind: KindObjectArray, ok: true},
		{name: "string map", raw: map[string]string{"k": "v"}, kind: KindMap, ok: true},
		{name: "any map", raw: map[string]any{"k": 1}, kind: KindMap, ok: true},
		{name: "value passes through", raw: EnumValue("Present"), kind: KindEnum, ok: true},
		{name: "unsupported type", raw: 3.14, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, ok := Classify(tt.raw)
			if ok != tt.ok {
				t.Fatalf("Classify(%v) ok = %v, want %v", tt.raw, ok, tt.ok)
			}
			if ok && v.Kind() != tt.kind {
				t.Errorf("Classify(%v) kind = %v, want %v", tt.raw, v.Kind(), tt.kind)
			}
		})
	}
}

func TestParseKind(t *testing.T) {
	for _, name := range []string{"null", "text", "bool", "credential", "map", "textarray", "intarray", "objectarray", "enum", "raw"} {
		k, ok := ParseKind(name)
		if !ok {
			t.Fatalf("ParseKind(%q) not found", name)
		}
		if k.String() != name {
			t.Errorf("round trip %q -> %v -> %q", name, k, k.String())
		}
	}
	if _, ok := ParseKind("widget"); ok {
		t.Error("ParseKind should reject unknown names")
	}
}
