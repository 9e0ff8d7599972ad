package dsc

import (
	"sort"
	"strings"
	"sync"
)

// ReferencePrefix is prepended to every canonical credential reference
// variable name.
const ReferencePrefix = "$Creds"

// referenceBase derives the variable base name for a username: the
// segment after a domain backslash, or the local part before an @ for
// UPN-style names, or the username as-is. Hyphens, dots and spaces
// become underscores, remaining @ signs are dropped.
func referenceBase(username string) string {
	name := username
	if i := strings.Index(name, `\`); i >= 0 {
		name = name[i+1:]
	} else if i := strings.Index(name, "@"); i >= 0 {
		name = name[:i]
	}
	return sanitizeReference(name)
}

// sanitizeReference strips the separator characters a variable name
// cannot carry.
func sanitizeReference(name string) string {
	r := strings.NewReplacer("-", "_", ".", "_", " ", "_", "@", "", `\`, "_")
	return r.Replace(name)
}

// ReferenceName maps a username to its canonical credential reference
// variable, e.g. `CONTOSO\admin-user.name` to `$Credsadmin_user_name`.
func ReferenceName(username string) string {
	return ReferencePrefix + referenceBase(username)
}

// CredentialReference returns the reference variable a credential value
// renders as. A value that already carries the reference prefix keeps
// it, with its separators normalized; anything else is treated as a
// username and derived through ReferenceName.
func CredentialReference(value string) string {
	if strings.HasPrefix(value, ReferencePrefix) {
		return ReferencePrefix + sanitizeReference(value[len(ReferencePrefix):])
	}
	return ReferenceName(value)
}

// Registry is a set of credential usernames collected during one
// extraction run. Usernames are normalized to lowercase; membership and
// the canonical reference name are the only queryable facts, no secret
// material is held.
type Registry struct {
	mu    sync.Mutex
	names map[string]struct{}
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{names: make(map[string]struct{})}
}

// Save records a username. Saving the same name twice is a no-op.
func (r *Registry) Save(username string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.names[strings.ToLower(username)] = struct{}{}
}

// Contains reports whether the username has been saved.
func (r *Registry) Contains(username string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.names[strings.ToLower(username)]
	return ok
}

// ReferenceName returns the canonical reference variable for username,
// using the same derivation as the credential formatter.
func (r *Registry) ReferenceName(username string) string {
	return ReferenceName(username)
}

// Names returns the saved usernames in sorted order.
func (r *Registry) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.names))
	for n := range r.names {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Len returns the number of saved usernames.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.names)
}

// Clear empties the registry.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.names = make(map[string]struct{})
}
