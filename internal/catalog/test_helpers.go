package catalog

import (
	"time"

	"github.com/parquet-go/parquet-go"
)

// TestAppRow is the writable form of a dataset row, used by tests to
// synthesize parquet fixtures.
type TestAppRow = appRow

// noZoneRow matches TestAppRow minus the economic_zone column, for fixtures
// exercising the zone-column-absent path.
type noZoneRow struct {
	Category    string    `parquet:"Category"`
	AppName     string    `parquet:"App Name"`
	DeveloperID string    `parquet:"Developer Id"`
	GeoRegion   string    `parquet:"geo_region"`
	Installs    int64     `parquet:"Installs,optional"`
	Price       float64   `parquet:"Price,optional"`
	Rating      float64   `parquet:"Rating,optional"`
	Released    time.Time `parquet:"Released,optional,timestamp(millisecond)"`
}

// WriteTestDataset writes rows as a parquet file at path.
func WriteTestDataset(path string, rows []TestAppRow) error {
	return parquet.WriteFile(path, rows)
}

// WriteTestDatasetWithoutZones writes rows as a parquet file whose schema
// has no economic_zone column at all.
func WriteTestDatasetWithoutZones(path string, rows []TestAppRow) error {
	stripped := make([]noZoneRow, 0, len(rows))
	for _, r := range rows {
		stripped = append(stripped, noZoneRow{
			Category:    r.Category,
			AppName:     r.AppName,
			DeveloperID: r.DeveloperID,
			GeoRegion:   r.GeoRegion,
			Installs:    r.Installs,
			Price:       r.Price,
			Rating:      r.Rating,
			Released:    r.Released,
		})
	}
	return parquet.WriteFile(path, stripped)
}

// DefaultTestRows returns a small dataset covering two years, two regions,
// and two economic zones.
func DefaultTestRows() []TestAppRow {
	return []TestAppRow{
		{
			Category:     "Games",
			AppName:      "Block Stacker",
			DeveloperID:  "dev.blocks",
			GeoRegion:    "NA",
			EconomicZone: "Developed",
			Installs:     100,
			Price:        0,
			Rating:       4.5,
			Released:     time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			Category:     "Games",
			AppName:      "Puzzle Pro",
			DeveloperID:  "dev.puzzle",
			GeoRegion:    "EU",
			EconomicZone: "Emerging",
			Installs:     10,
			Price:        5,
			Rating:       3.0,
			Released:     time.Date(2022, 6, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			Category:     "Productivity",
			AppName:      "Task Master",
			DeveloperID:  "dev.tasks",
			GeoRegion:    "NA",
			EconomicZone: "Developed",
			Installs:     50,
			Price:        2,
			Rating:       4.0,
			Released:     time.Date(2022, 3, 15, 0, 0, 0, 0, time.UTC),
		},
	}
}
