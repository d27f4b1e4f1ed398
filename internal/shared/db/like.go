package db

import "strings"

// LikeEscapeChar pairs with EscapeLike in `LIKE ? ESCAPE '!'`. It behaves the
// same on MySQL and SQLite, unlike backslash.
const LikeEscapeChar = "!"

var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// EscapeLike neutralizes LIKE wildcards in s.
func EscapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// ContainsPattern wraps s for a substring match.
func ContainsPattern(s string) string {
	return "%" + EscapeLike(s) + "%"
}
