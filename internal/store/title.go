package store

import "strings"

// titleRuneLimit caps derived session titles before the ellipsis is added.
const titleRuneLimit = 20

// DeriveTitle turns the first user message into a session title. Whitespace
// runs collapse to single spaces and anything past 20 runes is cut with a
// "..." suffix. Empty input keeps the default title.
func DeriveTitle(content string) string {
	collapsed := strings.Join(strings.Fields(content), " ")
	if collapsed == "" {
		return DefaultTitle
	}

	runes := []rune(collapsed)
	if len(runes) <= titleRuneLimit {
		return collapsed
	}
	return string(runes[:titleRuneLimit]) + "..."
}
