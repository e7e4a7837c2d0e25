package users

import (
	"gorm.io/gorm"
)

// ownedCollection returns every quarter the user owns, joined with its
// series, in the same stable order as the catalog listing. Quarters whose
// series is unresolved are excluded, as in every series-joined view.
func ownedCollection(db *gorm.DB, userID uint) ([]CollectionRow, error) {
	rows := []CollectionRow{}
	err := db.Table("quarters_data q").
		Select(`q.id, q.year, q.series_id, q.design, q.mintage, q.description,
			q.image_url, q.release_date,
			s.name AS series_name, s.description AS series_description,
			uc.condition, uc.notes, uc.mint_mark, uc.acquired_date`).
		Joins("JOIN series s ON q.series_id = s.id").
		Joins("JOIN user_collections uc ON q.id = uc.quarter_id").
		Where("uc.user_id = ?", userID).
		Order("q.year, s.name, q.design").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
