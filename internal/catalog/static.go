package catalog

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/parquet-go/parquet-go"
	"github.com/shopspring/decimal"

	"playinsights.teamg8.org/internal/models"
)

// appRow mirrors the column layout of the source dataset. Column names match
// the upstream export, spaces and all. Numeric and zone columns are optional:
// a missing value decodes to the zero value, and revenue treats it as zero.
type appRow struct {
	Category     string    `parquet:"Category"`
	AppName      string    `parquet:"App Name"`
	DeveloperID  string    `parquet:"Developer Id"`
	GeoRegion    string    `parquet:"geo_region"`
	EconomicZone string    `parquet:"economic_zone,optional"`
	Installs     int64     `parquet:"Installs,optional"`
	Price        float64   `parquet:"Price,optional"`
	Rating       float64   `parquet:"Rating,optional"`
	Released     time.Time `parquet:"Released,optional,timestamp(millisecond)"`
}

func rawCatalogData(source string, isLocalFile bool) ([]byte, error) {
	var b []byte
	var err error

	if isLocalFile {
		b, err = os.ReadFile(source)
		if err != nil {
			return nil, fmt.Errorf("error reading local dataset file: %w", err)
		}
	} else {
		resp, err := http.Get(source)
		if err != nil {
			return nil, fmt.Errorf("error downloading dataset: %w", err)
		}
		defer resp.Body.Close() // nolint

		b, err = io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("error reading dataset: %w", err)
		}
	}
	return b, nil
}

// loadCatalogData reads and decodes the parquet dataset from either a URL or
// a local file, returning enriched application rows.
func loadCatalogData(source string, isLocalFile bool) ([]models.App, error) {
	b, err := rawCatalogData(source, isLocalFile)
	if err != nil {
		return nil, err
	}

	rows, err := parquet.Read[appRow](bytes.NewReader(b), int64(len(b)))
	if err != nil {
		return nil, fmt.Errorf("error parsing dataset: %w", err)
	}

	apps := make([]models.App, 0, len(rows))
	for _, row := range rows {
		apps = append(apps, enrich(row))
	}
	return apps, nil
}

// enrich converts a decoded row into the domain model and derives revenue.
// Revenue is Installs × Price in exact decimal arithmetic; it is computed
// here once and never recomputed or mutated afterwards.
func enrich(row appRow) models.App {
	price := decimal.NewFromFloat(row.Price)
	return models.App{
		Name:        row.AppName,
		Category:    row.Category,
		DeveloperID: row.DeveloperID,
		Region:      row.GeoRegion,
		Zone:        models.EconomicZone(row.EconomicZone),
		Installs:    row.Installs,
		Price:       price,
		Rating:      row.Rating,
		Released:    row.Released,
		Revenue:     decimal.NewFromInt(row.Installs).Mul(price),
	}
}
