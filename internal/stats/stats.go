// Package stats computes collection completion statistics over the
// catalog, series, and ownership tables. Every query is scoped to an
// explicit user id; nothing is cached between calls.
package stats

import (
	"math"
	"time"

	"gorm.io/gorm"
)

const recentAcquisitionsLimit = 10

type SeriesBreakdown struct {
	ID                   uint    `json:"id"`
	Name                 string  `json:"name"`
	Description          string  `json:"description"`
	StartYear            int     `json:"start_year"`
	EndYear              int     `json:"end_year"`
	TotalCoins           int     `json:"total_coins"`
	AvailableQuarters    int64   `json:"available_quarters"`
	OwnedQuarters        int64   `json:"owned_quarters"`
	CompletionPercentage float64 `json:"completion_percentage"`
}

type RecentAcquisition struct {
	ID          uint      `json:"id"`
	Year        int       `json:"year"`
	SeriesID    *uint     `json:"series_id"`
	Design      string    `json:"design"`
	Mintage     int64     `json:"mintage"`
	Description string    `json:"description"`
	ImageURL    *string   `gorm:"column:image_url" json:"image_url"`
	ReleaseDate *string   `json:"release_date"`
	SeriesName  string    `json:"series_name"`
	Condition   string    `json:"condition"`
	MintMark    *string   `gorm:"column:mint_mark" json:"mint_mark"`
	AcquiredAt  time.Time `gorm:"column:acquired_date" json:"acquired_date"`
}

type UserStats struct {
	TotalQuartersAvailable      int64               `json:"total_quarters_available"`
	OwnedQuarters               int64               `json:"owned_quarters"`
	TotalSeriesAvailable        int64               `json:"total_series_available"`
	SeriesWithCoins             int64               `json:"series_with_coins"`
	OverallCompletionPercentage float64             `json:"overall_completion_percentage"`
	SeriesBreakdown             []SeriesBreakdown   `json:"series_breakdown"`
	RecentAcquisitions          []RecentAcquisition `json:"recent_acquisitions"`
}

// CompletionPercentage is owned/available scaled to a percentage and
// rounded to two decimals. Zero available means zero percent, never a
// division error.
func CompletionPercentage(owned, available int64) float64 {
	if available == 0 {
		return 0
	}
	return math.Round(float64(owned)*100.0/float64(available)*100) / 100
}

// ForUser computes the aggregate statistics for one user: overall counts,
// the per-series breakdown, and the most recent acquisitions. Quarters
// with no resolved series are excluded from the overall counts, matching
// the series-joined listing views.
func ForUser(db *gorm.DB, userID uint) (*UserStats, error) {
	var counts struct {
		TotalQuarters   int64
		OwnedQuarters   int64
		TotalSeries     int64
		SeriesWithCoins int64
	}
	err := db.Table("quarters_data q").
		Select(`COUNT(DISTINCT q.id) AS total_quarters,
			COUNT(DISTINCT uc.quarter_id) AS owned_quarters,
			COUNT(DISTINCT s.id) AS total_series,
			COUNT(DISTINCT CASE WHEN uc.quarter_id IS NOT NULL THEN s.id END) AS series_with_coins`).
		Joins("JOIN series s ON q.series_id = s.id").
		Joins("LEFT JOIN user_collections uc ON q.id = uc.quarter_id AND uc.user_id = ?", userID).
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}

	breakdown, err := seriesBreakdown(db, userID)
	if err != nil {
		return nil, err
	}

	recent, err := recentAcquisitions(db, userID)
	if err != nil {
		return nil, err
	}

	return &UserStats{
		TotalQuartersAvailable:      counts.TotalQuarters,
		OwnedQuarters:               counts.OwnedQuarters,
		TotalSeriesAvailable:        counts.TotalSeries,
		SeriesWithCoins:             counts.SeriesWithCoins,
		OverallCompletionPercentage: CompletionPercentage(counts.OwnedQuarters, counts.TotalQuarters),
		SeriesBreakdown:             breakdown,
		RecentAcquisitions:          recent,
	}, nil
}

// seriesBreakdown returns one entry per series, including series with no
// cataloged quarters yet, ordered by start year then name.
func seriesBreakdown(db *gorm.DB, userID uint) ([]SeriesBreakdown, error) {
	rows := []SeriesBreakdown{}
	err := db.Table("series s").
		Select(`s.id, s.name, s.description, s.start_year, s.end_year, s.total_coins,
			COUNT(DISTINCT q.id) AS available_quarters,
			COUNT(DISTINCT uc.quarter_id) AS owned_quarters`).
		Joins("LEFT JOIN quarters_data q ON s.id = q.series_id").
		Joins("LEFT JOIN user_collections uc ON q.id = uc.quarter_id AND uc.user_id = ?", userID).
		Group("s.id, s.name, s.description, s.start_year, s.end_year, s.total_coins").
		Order("s.start_year, s.name").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for i := range rows {
		rows[i].CompletionPercentage = CompletionPercentage(rows[i].OwnedQuarters, rows[i].AvailableQuarters)
	}
	return rows, nil
}

func recentAcquisitions(db *gorm.DB, userID uint) ([]RecentAcquisition, error) {
	rows := []RecentAcquisition{}
	err := db.Table("user_collections uc").
		Select(`q.id, q.year, q.series_id, q.design, q.mintage, q.description,
			q.image_url, q.release_date, s.name AS series_name,
			uc.condition, uc.mint_mark, uc.acquired_date`).
		Joins("JOIN quarters_data q ON uc.quarter_id = q.id").
		Joins("JOIN series s ON q.series_id = s.id").
		Where("uc.user_id = ?", userID).
		Order("uc.acquired_date DESC").
		Limit(recentAcquisitionsLimit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
