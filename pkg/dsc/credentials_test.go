package dsc

import (
	"reflect"
	"testing"
)

func TestReferenceName(t *testing.T) {
	tests := []struct {
		name     string
		username string
		want     string
	}{
		{
			name:     "domain backslash uses trailing segment",
			username: `CONTOSO\admin-user.name`,
			want:     "$Credsadmin_user_name",
		},
		{
			name:     "upn uses local part",
			username: "admin@contoso.com",
			want:     "$Credsadmin",
		},
		{
			name:     "plain name used as is",
			username: "backup",
			want:     "$Credsbackup",
		},
		{
			name:     "spaces become underscores",
			username: "farm account",
			want:     "$Credsfarm_account",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ReferenceName(tt.username); got != tt.want {
				t.Errorf("ReferenceName(%q) = %q, want %q", tt.username, got, tt.want)
			}
		})
	}
}

func TestCredentialReference(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{
			name:  "already a reference keeps its casing",
			value: "$CredsFarmAdmin",
			want:  "$CredsFarmAdmin",
		},
		{
			name:  "already a reference normalizes separators",
			value: "$CredsFarm-Admin.svc",
			want:  "$CredsFarm_Admin_svc",
		},
		{
			name:  "domain username is derived",
			value: `CONTOSO\FarmAdmin`,
			want:  "$CredsFarmAdmin",
		},
		{
			name:  "upn username is derived",
			value: "svc@contoso.com",
			want:  "$Credssvc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CredentialReference(tt.value); got != tt.want {
				t.Errorf("CredentialReference(%q) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()

	if r.Contains("CONTOSO\\Admin") {
		t.Fatal("empty registry should contain nothing")
	}

	r.Save("CONTOSO\\Admin")
	if !r.Contains("contoso\\admin") {
		t.Error("membership should be case-insensitive")
	}
	if !r.Contains("CONTOSO\\ADMIN") {
		t.Error("membership should be case-insensitive")
	}

	// Saving again is idempotent.
	r.Save("contoso\\admin")
	if r.Len() != 1 {
		t.Errorf("Len() = %d after duplicate save, want 1", r.Len())
	}

	r.Save("backup@contoso.com")
	want := []string{"backup@contoso.com", "contoso\\admin"}
	if got := r.Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}

	if got := r.ReferenceName("CONTOSO\\Admin"); got != "$CredsAdmin" {
		t.Errorf("ReferenceName() = %q, want %q", got, "$CredsAdmin")
	}

	r.Clear()
	if r.Len() != 0 || r.Contains("contoso\\admin") {
		t.Error("Clear should empty the registry")
	}
}
