// Package analytics implements the dashboard's filtering and aggregation
// logic over the loaded catalog. Every aggregation operates on a filtered
// view produced by Filter.Apply and degrades to an empty result when the
// view is empty.
package analytics

import (
	"time"

	"playinsights.teamg8.org/internal/catalog"
	"playinsights.teamg8.org/internal/models"
)

// Selection is a multiselect's chosen set of values. A nil *Selection means
// "no constraint configured" (the control was left at its default); a
// non-nil Selection with zero values means the user emptied the control, and
// matches nothing. This is the explicit tri-state the filter contract needs.
type Selection struct {
	values map[string]bool
	order  []string
}

// NewSelection builds a Selection from the given values.
func NewSelection(values []string) *Selection {
	s := &Selection{values: make(map[string]bool, len(values))}
	for _, v := range values {
		if !s.values[v] {
			s.values[v] = true
			s.order = append(s.order, v)
		}
	}
	return s
}

// Contains reports whether v is selected. A nil Selection admits everything.
func (s *Selection) Contains(v string) bool {
	if s == nil {
		return true
	}
	return s.values[v]
}

// Values returns the selected values in the order given.
func (s *Selection) Values() []string {
	if s == nil {
		return nil
	}
	return s.order
}

// Filter is the conjunction of the dashboard's sidebar criteria. Zero Start
// and End times mean the date range is unbounded on that side.
type Filter struct {
	Categories *Selection
	Regions    *Selection
	Zones      *Selection
	Start      time.Time
	End        time.Time
}

// Apply returns the rows satisfying every criterion. The zone criterion is
// evaluated against the indicator columns and is skipped entirely when the
// classifier is nil (no zone data in the source) or no zone constraint is
// configured. The result is always a subset of apps and applying the same
// filter twice yields the same set.
func (f Filter) Apply(apps []models.App, zc *catalog.ZoneClassifier) []models.App {
	zones := f.selectedZones()

	filtered := make([]models.App, 0, len(apps))
	for _, a := range apps {
		if !f.Categories.Contains(a.Category) {
			continue
		}
		if !f.Regions.Contains(a.Region) {
			continue
		}
		if f.Zones != nil && zc != nil && !zc.RowMatches(a, zones) {
			continue
		}
		if !f.Start.IsZero() && a.Released.Before(f.Start) {
			continue
		}
		if !f.End.IsZero() && a.Released.After(f.End) {
			continue
		}
		filtered = append(filtered, a)
	}
	return filtered
}

func (f Filter) selectedZones() []models.EconomicZone {
	values := f.Zones.Values()
	zones := make([]models.EconomicZone, 0, len(values))
	for _, v := range values {
		zones = append(zones, models.EconomicZone(v))
	}
	return zones
}
