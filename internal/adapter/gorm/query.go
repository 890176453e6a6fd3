package gorm

import (
	"github.com/bornholm/pettymatters/internal/core/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// applyListOptions adds the filters, ordering and pagination of opts to the
// query. Only whitelisted columns are used: unknown attributes are ignored.
func applyListOptions(query *gorm.DB, opts model.ListOptions, filterable map[string]string, sortable map[string]string) (filtered *gorm.DB, paged *gorm.DB) {
	for key, value := range opts.Filters {
		column, exists := filterable[key]
		if !exists {
			continue
		}

		query = query.Where(clause.Eq{Column: clause.Column{Name: column}, Value: value})
	}

	filtered = query.Session(&gorm.Session{})

	orderBy := clause.OrderByColumn{
		Column: clause.Column{Name: "creation_time"},
		Desc:   true,
	}

	if column, exists := sortable[opts.OrderBy]; exists {
		orderBy = clause.OrderByColumn{
			Column: clause.Column{Name: column},
			Desc:   opts.Ordering == model.OrderingDescending,
		}
	}

	paged = filtered.
		Order(orderBy).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}}).
		Offset(opts.Offset()).
		Limit(opts.Limit())

	return filtered, paged
}
