package seed

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"log"

	"quarters-app/internal/domain/catalog"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:embed data/series.json
var seriesJSON []byte

//go:embed data/quarters.json
var quartersJSON []byte

type seriesDef struct {
	ID             uint   `json:"id"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	StartYear      int    `json:"start_year"`
	EndYear        int    `json:"end_year"`
	TotalCoins     int    `json:"total_coins"`
	ReleasePattern string `json:"release_pattern"`
	Obverse        string `json:"obverse"`
	Reverse        string `json:"reverse"`
}

type quarterDef struct {
	ID          uint    `json:"id"`
	Year        int     `json:"year"`
	Series      string  `json:"series"`
	Design      string  `json:"design"`
	Mintage     int64   `json:"mintage"`
	Description string  `json:"description"`
	ImageURL    *string `json:"image_url"`
	ReleaseDate *string `json:"release_date"`
}

// Run makes the series and quarter tables reflect the embedded reference
// definitions, by identifier. Safe to call on every startup: rows are
// upserted in place, never duplicated. Series are written first so that
// quarters can resolve their series by name against the store.
func Run(db *gorm.DB) error {
	series, quarters, err := loadDefinitions()
	if err != nil {
		return err
	}

	if err := upsertSeries(db, series); err != nil {
		return fmt.Errorf("seed series: %w", err)
	}

	nameToID, err := seriesNameIndex(db)
	if err != nil {
		return fmt.Errorf("seed quarters: %w", err)
	}

	if err := upsertQuarters(db, quarters, nameToID); err != nil {
		return fmt.Errorf("seed quarters: %w", err)
	}

	return nil
}

func loadDefinitions() ([]seriesDef, []quarterDef, error) {
	var series []seriesDef
	if err := json.Unmarshal(seriesJSON, &series); err != nil {
		return nil, nil, fmt.Errorf("parse series definitions: %w", err)
	}

	var quarters []quarterDef
	if err := json.Unmarshal(quartersJSON, &quarters); err != nil {
		return nil, nil, fmt.Errorf("parse quarter definitions: %w", err)
	}

	return series, quarters, nil
}

func upsertSeries(db *gorm.DB, defs []seriesDef) error {
	if len(defs) == 0 {
		return nil
	}

	rows := make([]catalog.Series, 0, len(defs))
	for _, d := range defs {
		rows = append(rows, catalog.Series{
			ID:             d.ID,
			Name:           d.Name,
			Description:    d.Description,
			StartYear:      d.StartYear,
			EndYear:        d.EndYear,
			TotalCoins:     d.TotalCoins,
			ReleasePattern: d.ReleasePattern,
			Obverse:        d.Obverse,
			Reverse:        d.Reverse,
		})
	}

	return db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"name", "description", "start_year", "end_year",
			"total_coins", "release_pattern", "obverse", "reverse",
		}),
	}).Create(&rows).Error
}

func seriesNameIndex(db *gorm.DB) (map[string]uint, error) {
	var all []catalog.Series
	if err := db.Find(&all).Error; err != nil {
		return nil, err
	}

	index := make(map[string]uint, len(all))
	for _, s := range all {
		index[s.Name] = s.ID
	}
	return index, nil
}

func upsertQuarters(db *gorm.DB, defs []quarterDef, nameToID map[string]uint) error {
	if len(defs) == 0 {
		return nil
	}

	rows := make([]catalog.Quarter, 0, len(defs))
	for _, d := range defs {
		var seriesID *uint
		if id, ok := nameToID[d.Series]; ok {
			seriesID = &id
		} else {
			// Recoverable data-quality condition: the quarter stays in the
			// catalog but is invisible from series-joined queries.
			log.Printf("seed: quarter %d (%d %s) references unknown series %q", d.ID, d.Year, d.Design, d.Series)
		}

		rows = append(rows, catalog.Quarter{
			ID:          d.ID,
			Year:        d.Year,
			SeriesID:    seriesID,
			Design:      d.Design,
			Mintage:     d.Mintage,
			Description: d.Description,
			ImageURL:    d.ImageURL,
			ReleaseDate: d.ReleaseDate,
		})
	}

	return db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"year", "series_id", "design", "mintage",
			"description", "image_url", "release_date",
		}),
	}).Create(&rows).Error
}
