package postgres

import "strings"

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePattern turns a raw search term into a case-insensitive substring
// pattern for ILIKE, escaping the wildcard characters so they match
// literally.
func likePattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}
