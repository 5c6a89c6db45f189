package persistence

import (
	"github.com/salmoriadev/Sistema-CaFerri/internal/domain/shared"
	"gorm.io/gorm"
)

// normalizeFilter fills in pagination defaults
func normalizeFilter(filter shared.Filter) shared.Filter {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}
	if filter.PageSize > 100 {
		filter.PageSize = 100
	}
	return filter
}

// paginate applies offset/limit from the filter
func paginate(query *gorm.DB, filter shared.Filter) *gorm.DB {
	offset := (filter.Page - 1) * filter.PageSize
	return query.Offset(offset).Limit(filter.PageSize)
}

// searchLike builds a case-insensitive LIKE condition over the given
// columns. LOWER comparisons keep the behavior identical on SQLite
// and Postgres.
func searchLike(query *gorm.DB, search string, columns ...string) *gorm.DB {
	if search == "" || len(columns) == 0 {
		return query
	}
	pattern := "%" + search + "%"
	condition := query.Session(&gorm.Session{NewDB: true})
	for i, column := range columns {
		if i == 0 {
			condition = condition.Where("LOWER("+column+") LIKE LOWER(?)", pattern)
		} else {
			condition = condition.Or("LOWER("+column+") LIKE LOWER(?)", pattern)
		}
	}
	return query.Where(condition)
}
