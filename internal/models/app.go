package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// EconomicZone is a categorical market classification describing a
// geo-region's market maturity.
type EconomicZone string

const (
	ZoneDeveloped EconomicZone = "Developed"
	ZoneEmerging  EconomicZone = "Emerging"
	ZoneFrontier  EconomicZone = "Frontier"
	ZoneOther     EconomicZone = "Other"
)

// EconomicZones lists every zone value in display order.
var EconomicZones = []EconomicZone{ZoneDeveloped, ZoneEmerging, ZoneFrontier, ZoneOther}

// App represents one application's metadata record in the catalog.
type App struct {
	Name        string          `json:"appName"`
	Category    string          `json:"category"`
	DeveloperID string          `json:"developerId"`
	Region      string          `json:"geoRegion"`
	Zone        EconomicZone    `json:"economicZone,omitempty"` // empty when the source has no zone column
	Installs    int64           `json:"installs"`
	Price       decimal.Decimal `json:"price"`
	Rating      float64         `json:"rating"`
	Released    time.Time       `json:"released"`
	Revenue     decimal.Decimal `json:"revenue"` // Installs × Price, computed once at load
}

// InZone reports whether the row's zone indicator is set for the given zone.
// Exactly one indicator is set per row when the source carries zone data.
func (a App) InZone(zone EconomicZone) bool {
	return a.Zone != "" && a.Zone == zone
}
