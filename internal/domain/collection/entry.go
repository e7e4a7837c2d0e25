package collection

import (
	"time"

	"quarters-app/internal/domain/catalog"
	"quarters-app/internal/domain/users"
)

// DefaultCondition is the grade recorded when a collect request does not
// specify one.
const DefaultCondition = "Good"

// CollectionEntry records that a user owns one quarter. One row per
// (user, quarter) pair; collecting an already-owned quarter replaces the
// row, including its acquired date.
type CollectionEntry struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	UserID    uint `gorm:"not null;uniqueIndex:idx_user_quarter" json:"user_id"`
	QuarterID uint `gorm:"not null;uniqueIndex:idx_user_quarter" json:"quarter_id"`

	MintMark  *string `gorm:"column:mint_mark" json:"mint_mark"`
	Condition string  `gorm:"not null;default:'Good'" json:"condition"`
	Notes     string  `json:"notes"`

	AcquiredAt time.Time `gorm:"column:acquired_date;not null" json:"acquired_date"`

	User    users.User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Quarter catalog.Quarter `gorm:"foreignKey:QuarterID;constraint:OnDelete:CASCADE" json:"-"`
}

func (CollectionEntry) TableName() string { return "user_collections" }
