package candidate

import (
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/heartmarshall/election-backend/internal/domain"
)

// applyFilter adds the WHERE clauses shared by List and Count.
func applyFilter(b squirrel.SelectBuilder, f domain.CandidateFilter) squirrel.SelectBuilder {
	b = b.Where(squirrel.Eq{"election_type": string(f.ElectionType)})
	if f.Search != "" {
		b = b.Where(squirrel.ILike{"name": "%" + escapeLike(f.Search) + "%"})
	}
	if f.Party != "" {
		b = b.Where("lower(party) = lower(?)", f.Party)
	}
	return b
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
