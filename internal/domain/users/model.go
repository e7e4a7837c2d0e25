package users

import (
	"time"
)

type User struct {
	ID        uint   `gorm:"primaryKey"`
	GoogleSub string `gorm:"column:google_sub;not null;uniqueIndex:idx_users_google_sub"`
	Email     string `gorm:"not null"`
	Name      string `gorm:"not null"`
	AvatarURL string `gorm:"column:avatar_url"`

	// ProfilePublic gates the unauthenticated profile endpoint. Private by
	// default; only the user can flip it.
	ProfilePublic bool `gorm:"not null;default:false"`

	CreatedAt time.Time
}
