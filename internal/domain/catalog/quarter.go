package catalog

// Quarter is one coin definition from the reference catalog. SeriesID is
// nullable: a quarter whose series could not be resolved at seed time keeps
// a null reference and drops out of series-joined queries until the
// reference data is repaired.
type Quarter struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Year        int     `gorm:"not null;index" json:"year"`
	SeriesID    *uint   `gorm:"index" json:"series_id"`
	Series      *Series `gorm:"foreignKey:SeriesID" json:"-"`
	Design      string  `json:"design"`
	Mintage     int64   `json:"mintage"`
	Description string  `json:"description"`
	ImageURL    *string `gorm:"column:image_url" json:"image_url"`
	ReleaseDate *string `json:"release_date"`
}

func (Quarter) TableName() string { return "quarters_data" }
