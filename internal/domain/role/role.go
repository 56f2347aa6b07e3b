// Package role defines the canonical staff roles. Stored role strings vary in
// casing between records, so all comparisons go through Normalize.
package role

import "strings"

const (
	Admin      = "admin"
	SuperAdmin = "superAdmin"
)

// Normalize maps any casing of a known role onto its canonical constant.
// Unknown roles are returned trimmed but otherwise untouched.
func Normalize(s string) string {
	switch t := strings.TrimSpace(s); {
	case strings.EqualFold(t, Admin):
		return Admin
	case strings.EqualFold(t, SuperAdmin):
		return SuperAdmin
	default:
		return strings.TrimSpace(s)
	}
}

// Satisfies reports whether a caller holding `have` may act at the `want`
// level. A superadmin satisfies every gate.
func Satisfies(have, want string) bool {
	h, w := Normalize(have), Normalize(want)
	if h == SuperAdmin {
		return true
	}
	return h == w
}
