package users

import (
	"time"

	"quarters-app/internal/stats"
)

type VisibilityRequest struct {
	IsPublic *bool `json:"isPublic" binding:"required"`
}

// PublicUser is the identity surface exposed on a public profile: never
// the email, never anything beyond the public-facing numeric id.
type PublicUser struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
}

// CollectionRow is one owned quarter on a public profile, enriched with
// its series.
type CollectionRow struct {
	ID                uint      `json:"id"`
	Year              int       `json:"year"`
	SeriesID          *uint     `json:"series_id"`
	Design            string    `json:"design"`
	Mintage           int64     `json:"mintage"`
	Description       string    `json:"description"`
	ImageURL          *string   `gorm:"column:image_url" json:"image_url"`
	ReleaseDate       *string   `json:"release_date"`
	SeriesName        string    `json:"series_name"`
	SeriesDescription string    `json:"series_description"`
	Condition         string    `json:"condition"`
	Notes             string    `json:"notes"`
	MintMark          *string   `gorm:"column:mint_mark" json:"mint_mark"`
	AcquiredAt        time.Time `gorm:"column:acquired_date" json:"acquired_date"`
}

type Profile struct {
	User       PublicUser       `json:"user"`
	Collection []CollectionRow  `json:"collection"`
	Stats      *stats.UserStats `json:"stats"`
}

type ProfileResponse struct {
	Success bool    `json:"success"`
	Profile Profile `json:"profile"`
}
