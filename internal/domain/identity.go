package domain

import "strings"

// Identity is the externally authenticated client identity.
// Either field may be absent; lookups with an empty identity return nothing.
type Identity struct {
	Name  *string
	Phone *string
}

// IsEmpty returns true if the identity carries neither a name nor a phone
func (i Identity) IsEmpty() bool {
	return (i.Name == nil || trimmed(*i.Name) == "") &&
		(i.Phone == nil || trimmed(*i.Phone) == "")
}

func trimmed(s string) string {
	return strings.TrimSpace(s)
}

func equalFoldTrimmed(a, b string) bool {
	return strings.EqualFold(trimmed(a), trimmed(b))
}
