package catalog

import (
	"time"
)

// Series is a named program of quarters (e.g. the 50 State Quarters).
// Rows are written only by the seeder; identifiers are assigned in the
// reference data, never by the database.
type Series struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	Name           string `gorm:"not null;uniqueIndex:idx_series_name" json:"name"`
	Description    string `json:"description"`
	StartYear      int    `json:"start_year"`
	EndYear        int    `json:"end_year"`
	TotalCoins     int    `json:"total_coins"`
	ReleasePattern string `json:"release_pattern"`
	Obverse        string `json:"obverse"`
	Reverse        string `json:"reverse"`

	CreatedAt time.Time `json:"created_at"`
}

func (Series) TableName() string { return "series" }
