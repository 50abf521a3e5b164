package postgres

import (
	"strings"

	sq "github.com/Masterminds/squirrel"
)

// Builder returns a squirrel statement builder using PostgreSQL placeholders.
func Builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ContainsPattern turns a keyword into an ILIKE pattern matching it as a
// literal substring. LIKE wildcards inside the keyword are escaped.
func ContainsPattern(keyword string) string {
	return "%" + likeEscaper.Replace(keyword) + "%"
}

// ContainsFold is a squirrel predicate for a case-insensitive substring match
// of keyword against column.
func ContainsFold(column, keyword string) sq.ILike {
	return sq.ILike{column: ContainsPattern(keyword)}
}
