package coins

import (
	"strings"

	"gorm.io/gorm"
)

const defaultPageSize = 12

// listFilters holds the validated listing parameters. Owned is tri-state:
// nil means no ownership filter.
type listFilters struct {
	Search string
	Year   *int
	Series string
	Owned  *bool
	Page   int
	Limit  int
}

func (f listFilters) offset() int {
	return (f.Page - 1) * f.Limit
}

// listQuery builds the filtered base query over quarters. The ownership
// join is restricted to the acting user, so no other user's rows can
// influence the result. Callers add their own SELECT, ordering, and
// pagination; each call returns a fresh builder.
func listQuery(db *gorm.DB, userID uint, f listFilters) *gorm.DB {
	q := db.Table("quarters_data q").
		Joins("LEFT JOIN series s ON q.series_id = s.id").
		Joins("LEFT JOIN user_collections uc ON q.id = uc.quarter_id AND uc.user_id = ?", userID)

	if f.Search != "" {
		pattern := "%" + strings.ToLower(f.Search) + "%"
		q = q.Where("(LOWER(q.design) LIKE ? OR LOWER(s.name) LIKE ? OR LOWER(q.description) LIKE ?)",
			pattern, pattern, pattern)
	}

	if f.Year != nil {
		q = q.Where("q.year = ?", *f.Year)
	}

	if f.Series != "" {
		q = q.Where("LOWER(s.name) LIKE ?", "%"+strings.ToLower(f.Series)+"%")
	}

	if f.Owned != nil {
		if *f.Owned {
			q = q.Where("uc.id IS NOT NULL")
		} else {
			q = q.Where("uc.id IS NULL")
		}
	}

	return q
}

const listSelect = `q.id, q.year, q.series_id, q.design, q.mintage, q.description,
	q.image_url, q.release_date, s.name AS series, uc.id AS owned_id,
	uc.condition, uc.notes, uc.acquired_date, uc.mint_mark`

// listOrder keeps pagination stable: year, then series name, then design.
const listOrder = "q.year, s.name, q.design"
