package repository

import "strings"

// SortKey is the closed set of wine orderings. Anything the client
// sends outside this set parses to the explicit default, SortNameAsc.
type SortKey int

const (
	SortNameAsc SortKey = iota
	SortNameDesc
	SortRatingAsc
	SortRatingDesc
	SortPriceAsc
	SortPriceDesc
)

func ParseSortKey(s string) SortKey {
	switch s {
	case "name_asc":
		return SortNameAsc
	case "name_desc":
		return SortNameDesc
	case "average_rating_asc":
		return SortRatingAsc
	case "average_rating_desc":
		return SortRatingDesc
	case "average_price_asc":
		return SortPriceAsc
	case "average_price_desc":
		return SortPriceDesc
	default:
		return SortNameAsc
	}
}

// orderClause maps a sort key to its ORDER BY expression. Every clause
// carries a secondary sort on id so ties come back in a stable order.
func (k SortKey) orderClause() string {
	switch k {
	case SortNameDesc:
		return "wines.name DESC, wines.id ASC"
	case SortRatingAsc:
		return "average_rating ASC, wines.id ASC"
	case SortRatingDesc:
		return "average_rating DESC, wines.id ASC"
	case SortPriceAsc:
		return "wines.average_price ASC, wines.id ASC"
	case SortPriceDesc:
		return "wines.average_price DESC, wines.id ASC"
	default:
		return "wines.name ASC, wines.id ASC"
	}
}

// escapeLike neutralizes LIKE wildcards in user input so a query like
// "100%" matches literally instead of acting as a pattern.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
