package domain

const (
	specialName        = "bob"
	specialDisplayName = "BOB"
)

// FormatName maps a raw name to its display form. Only the exact,
// case-sensitive literal "bob" is changed; every other value is returned as is.
func FormatName(name string) string {
	if name == specialName {
		return specialDisplayName
	}
	return name
}

// IsSpecialName reports whether FormatName would rewrite name.
func IsSpecialName(name string) bool {
	return name == specialName
}
