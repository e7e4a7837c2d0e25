package coins

import (
	"time"

	"quarters-app/internal/domain/collection"
	"quarters-app/internal/stats"
)

// ---------- requests

type CollectRequest struct {
	Condition *string `json:"condition"`
	Notes     *string `json:"notes"`
	MintMark  *string `json:"mint_mark"`
}

// CollectInput is the resolved form of a collect request. Every optional
// field's default is applied here, once, at the boundary.
type CollectInput struct {
	Condition string
	Notes     string
	MintMark  *string
}

func (r CollectRequest) withDefaults() CollectInput {
	in := CollectInput{
		Condition: collection.DefaultCondition,
		Notes:     "",
		MintMark:  r.MintMark,
	}
	if r.Condition != nil && *r.Condition != "" {
		in.Condition = *r.Condition
	}
	if r.Notes != nil {
		in.Notes = *r.Notes
	}
	return in
}

// ---------- responses

// QuarterRow is one row of the quarter listing: the catalog fields, the
// series name, and the acting user's ownership details when owned.
type QuarterRow struct {
	ID          uint       `json:"id"`
	Year        int        `json:"year"`
	SeriesID    *uint      `json:"series_id"`
	Design      string     `json:"design"`
	Mintage     int64      `json:"mintage"`
	Description string     `json:"description"`
	ImageURL    *string    `gorm:"column:image_url" json:"image_url"`
	ReleaseDate *string    `json:"release_date"`
	Series      *string    `json:"series"`
	Owned       bool       `gorm:"-" json:"owned"`
	Condition   *string    `json:"condition"`
	Notes       *string    `json:"notes"`
	AcquiredAt  *time.Time `gorm:"column:acquired_date" json:"acquired_date"`
	MintMark    *string    `gorm:"column:mint_mark" json:"mint_mark"`

	// OwnedID carries uc.id out of the outer join; Owned is derived from it.
	OwnedID *uint `gorm:"column:owned_id" json:"-"`
}

type ListQuartersResponse struct {
	Success  bool         `json:"success"`
	Quarters []QuarterRow `json:"quarters"`
	Total    int64        `json:"total"`
}

type StatsResponse struct {
	Success bool             `json:"success"`
	Stats   *stats.UserStats `json:"stats"`
}
