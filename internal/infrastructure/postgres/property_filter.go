package postgres

import (
	"fmt"
	"strings"

	"github.com/gahalberto/ImobiManager/internal/domain/repository"
)

// filterQuery accumulates independent optional predicates, AND-combined, with
// positional pgx arguments. The page SELECT and the COUNT are both rendered
// from the same instance so the total always reflects the predicate of the
// returned page.
type filterQuery struct {
	conds []string
	args  []interface{}
}

func buildPropertyFilter(f repository.PropertyFilter) *filterQuery {
	q := &filterQuery{}
	if f.PriceMin != nil {
		q.where("p.price >= %s", *f.PriceMin)
	}
	if f.PriceMax != nil {
		q.where("p.price <= %s", *f.PriceMax)
	}
	if f.Bedrooms != nil {
		q.where("p.bedrooms = %s", *f.Bedrooms)
	}
	if f.Bathrooms != nil {
		q.where("p.bathrooms = %s", *f.Bathrooms)
	}
	if f.AddressCity != nil {
		q.where("p.address_city ILIKE %s", "%"+*f.AddressCity+"%")
	}
	return q
}

// where appends one predicate. cond carries a single %s placeholder that is
// replaced with the next positional parameter.
func (q *filterQuery) where(cond string, arg interface{}) {
	q.args = append(q.args, arg)
	q.conds = append(q.conds, fmt.Sprintf(cond, fmt.Sprintf("$%d", len(q.args))))
}

func (q *filterQuery) whereClause() string {
	if len(q.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(q.conds, " AND ")
}

// countSQL renders the total count over the filter predicate, independent of
// pagination.
func (q *filterQuery) countSQL() (string, []interface{}) {
	return "SELECT COUNT(*) FROM properties p" + q.whereClause(), q.args
}

// pageSQL renders one page of matching rows. Ordering by id is deliberate:
// without a pinned order the database is free to return rows in any order and
// pagination drifts between requests.
func (q *filterQuery) pageSQL(page, limit int) (string, []interface{}) {
	args := make([]interface{}, len(q.args), len(q.args)+2)
	copy(args, q.args)
	args = append(args, limit, (page-1)*limit)
	sql := `SELECT p.id, p.title, p.address_zipcode, p.address_street, p.address_number,
		p.address_complement, p.address_neighborhood, p.address_city, p.address_state,
		p.price, p.description, p.bedrooms, p.bathrooms, p.company_id, p.created_at
	FROM properties p` + q.whereClause() +
		fmt.Sprintf(" ORDER BY p.id ASC LIMIT $%d OFFSET $%d", len(args)-1, len(args))
	return sql, args
}
