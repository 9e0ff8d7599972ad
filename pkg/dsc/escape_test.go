package dsc

import "testing"

func TestEscape(t *testing.T) {
	tests := []struct {
		name           string
		input          string
		allowVariables bool
		want           string
	}{
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
		{
			name:  "plain text untouched",
			input: "Server01",
			want:  "Server01",
		},
		{
			name:  "backtick is doubled",
			input: "a`b",
			want:  "a``b",
		},
		{
			name:  "dollar sign escaped by default",
			input: "$x",
			want:  "`$x",
		},
		{
			name:           "dollar sign kept when variables allowed",
			input:          "$x",
			allowVariables: true,
			want:           "$x",
		},
		{
			name:  "double quote escaped",
			input: `say "hi"`,
			want:  "say `\"hi`\"",
		},
		{
			name:  "typographic quotes escaped",
			input: "a“b”c„d",
			want:  "a`“b`”c`„d",
		},
		{
			name:  "backtick before sigil is not re-escaped",
			input: "`$",
			want:  "```$",
		},
		{
			name:           "mixed with variables allowed",
			input:          "path `$env:TEMP\\\"x\"",
			allowVariables: true,
			want:           "path ``$env:TEMP\\`\"x`\"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Escape(tt.input, tt.allowVariables)
			if got != tt.want {
				t.Errorf("Escape(%q, %v) = %q, want %q", tt.input, tt.allowVariables, got, tt.want)
			}
		})
	}
}
