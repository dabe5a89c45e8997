package models

import "github.com/shopspring/decimal"

// KPISummary holds the three headline numbers shown at the top of the
// dashboard, alongside their display-formatted strings.
type KPISummary struct {
	TotalRevenue         decimal.Decimal `json:"totalRevenue"`
	TotalInstalls        int64           `json:"totalInstalls"`
	AverageRating        *float64        `json:"averageRating"` // nil when the filtered view is empty
	TotalRevenueDisplay  string          `json:"totalRevenueDisplay"`
	TotalInstallsDisplay string          `json:"totalInstallsDisplay"`
	AverageRatingDisplay string          `json:"averageRatingDisplay"`
}

// CategoryRevenue is one bar of the category revenue share panel.
type CategoryRevenue struct {
	Category string          `json:"category"`
	Revenue  decimal.Decimal `json:"revenue"`
}

// RegionAppRevenue is one bar of the top-revenue-apps-by-region panel.
type RegionAppRevenue struct {
	Region  string          `json:"geoRegion"`
	AppName string          `json:"appName"`
	Revenue decimal.Decimal `json:"revenue"`
}

// DeveloperRevenue is one bar of the top-developers panel.
type DeveloperRevenue struct {
	DeveloperID string          `json:"developerId"`
	Revenue     decimal.Decimal `json:"revenue"`
}

// ZoneRevenue is one bar of the economic zone revenue share panel: the
// column-wise sum of the zone's indicator, i.e. how many rows of the view
// belong to the zone. The label has the indicator-column prefix already
// stripped.
type ZoneRevenue struct {
	Zone    string          `json:"zone"`
	Revenue decimal.Decimal `json:"revenue"`
}

// RegionRevenue is one bar of the market-share-by-geo-region panel.
type RegionRevenue struct {
	Region  string          `json:"geoRegion"`
	Revenue decimal.Decimal `json:"revenue"`
}

// YearlyGrowth is one point of the forecasted revenue growth rate line.
// GrowthPct is the year-over-year percent change of summed revenue; the first
// year in the series is always 0 since it has no prior year.
type YearlyGrowth struct {
	Year      int             `json:"year"`
	Revenue   decimal.Decimal `json:"revenue"`
	GrowthPct float64         `json:"growthPct"`
}

// OpportunityScore is one bar of the market expansion opportunity panel.
// Score is a weighted blend of summed revenue and installs per
// (region, category) pair: 0.5·revenue + 0.5·installs.
type OpportunityScore struct {
	Region   string          `json:"geoRegion"`
	Category string          `json:"category"`
	Revenue  decimal.Decimal `json:"revenue"`
	Installs int64           `json:"installs"`
	Score    decimal.Decimal `json:"score"`
}

// FilterOptions describes the values the dashboard's interactive controls
// offer, i.e. the defaults for every multiselect plus the released date
// bounds of the loaded table.
type FilterOptions struct {
	Categories  []string `json:"categories"`
	Regions     []string `json:"geoRegions"`
	Zones       []string `json:"economicZones"`
	ReleasedMin string   `json:"releasedMin"` // YYYY-MM-DD
	ReleasedMax string   `json:"releasedMax"` // YYYY-MM-DD
}
