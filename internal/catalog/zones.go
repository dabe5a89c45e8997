package catalog

import "playinsights.teamg8.org/internal/models"

// ZoneClassifier exposes the economic zone indicator columns derived from
// the dataset's economic_zone column. A nil classifier means the source had
// no zone data at all, in which case zone filtering is inert and the zone
// revenue panel is empty.
type ZoneClassifier struct{}

// NewZoneClassifier returns a classifier when at least one row carries a
// zone value, nil otherwise.
func NewZoneClassifier(apps []models.App) *ZoneClassifier {
	for _, a := range apps {
		if a.Zone != "" {
			return &ZoneClassifier{}
		}
	}
	return nil
}

// Zones returns every indicator column in display order.
func (zc *ZoneClassifier) Zones() []models.EconomicZone {
	return models.EconomicZones
}

// RowMatches reports whether any of the selected zones' indicators is set
// for the row. An emptied selection matches nothing.
func (zc *ZoneClassifier) RowMatches(a models.App, selected []models.EconomicZone) bool {
	for _, z := range selected {
		if a.InZone(z) {
			return true
		}
	}
	return false
}
