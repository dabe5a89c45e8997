package analytics

import (
	"sort"

	"github.com/shopspring/decimal"

	"playinsights.teamg8.org/internal/catalog"
	"playinsights.teamg8.org/internal/models"
	"playinsights.teamg8.org/internal/utils"
)

var half = decimal.NewFromFloat(0.5)

// Totals computes the three headline KPIs over the filtered view. The average
// rating is nil when the view is empty; its display string is then "N/A".
func Totals(apps []models.App) models.KPISummary {
	var revenue decimal.Decimal
	var installs int64
	var ratingSum float64

	for _, a := range apps {
		revenue = revenue.Add(a.Revenue)
		installs += a.Installs
		ratingSum += a.Rating
	}

	summary := models.KPISummary{
		TotalRevenue:         revenue,
		TotalInstalls:        installs,
		TotalRevenueDisplay:  utils.FormatCurrency(revenue),
		TotalInstallsDisplay: utils.FormatThousands(installs),
		AverageRatingDisplay: "N/A",
	}
	if len(apps) > 0 {
		avg := ratingSum / float64(len(apps))
		summary.AverageRating = &avg
		summary.AverageRatingDisplay = utils.FormatRating(avg)
	}
	return summary
}

// RevenueByCategory groups the view by category and sums revenue. Categories
// appear in first-appearance order, matching the group-by insertion order the
// chart renders in.
func RevenueByCategory(apps []models.App) []models.CategoryRevenue {
	index := make(map[string]int)
	result := []models.CategoryRevenue{}
	for _, a := range apps {
		i, ok := index[a.Category]
		if !ok {
			i = len(result)
			index[a.Category] = i
			result = append(result, models.CategoryRevenue{Category: a.Category})
		}
		result[i].Revenue = result[i].Revenue.Add(a.Revenue)
	}
	return result
}

// TopAppsByRegion groups the view by (region, app name), sums revenue, and
// sorts by region ascending, then revenue descending.
func TopAppsByRegion(apps []models.App) []models.RegionAppRevenue {
	type key struct{ region, name string }
	index := make(map[key]int)
	result := []models.RegionAppRevenue{}
	for _, a := range apps {
		k := key{a.Region, a.Name}
		i, ok := index[k]
		if !ok {
			i = len(result)
			index[k] = i
			result = append(result, models.RegionAppRevenue{Region: a.Region, AppName: a.Name})
		}
		result[i].Revenue = result[i].Revenue.Add(a.Revenue)
	}

	sort.SliceStable(result, func(i, j int) bool {
		if result[i].Region != result[j].Region {
			return result[i].Region < result[j].Region
		}
		return result[i].Revenue.GreaterThan(result[j].Revenue)
	})
	return result
}

// TopDevelopers groups the view by developer, sums revenue, and returns the
// n largest descending. Each developer appears at most once.
func TopDevelopers(apps []models.App, n int) []models.DeveloperRevenue {
	index := make(map[string]int)
	result := []models.DeveloperRevenue{}
	for _, a := range apps {
		i, ok := index[a.DeveloperID]
		if !ok {
			i = len(result)
			index[a.DeveloperID] = i
			result = append(result, models.DeveloperRevenue{DeveloperID: a.DeveloperID})
		}
		result[i].Revenue = result[i].Revenue.Add(a.Revenue)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Revenue.GreaterThan(result[j].Revenue)
	})
	if len(result) > n {
		result = result[:n]
	}
	return result
}

// RevenueByZone sums each economic zone's indicator column over the view,
// i.e. counts the rows belonging to each zone. The dashboard labels these
// sums as revenue share. The result is empty when the source carries no zone
// data. Zone labels come without the indicator-column prefix.
func RevenueByZone(apps []models.App, zc *catalog.ZoneClassifier) []models.ZoneRevenue {
	if zc == nil {
		return []models.ZoneRevenue{}
	}

	result := make([]models.ZoneRevenue, 0, len(zc.Zones()))
	for _, zone := range zc.Zones() {
		var sum int64
		for _, a := range apps {
			if a.InZone(zone) {
				sum++
			}
		}
		result = append(result, models.ZoneRevenue{Zone: string(zone), Revenue: decimal.NewFromInt(sum)})
	}
	return result
}

// RevenueByRegion groups the view by geo region and sums revenue.
func RevenueByRegion(apps []models.App) []models.RegionRevenue {
	index := make(map[string]int)
	result := []models.RegionRevenue{}
	for _, a := range apps {
		i, ok := index[a.Region]
		if !ok {
			i = len(result)
			index[a.Region] = i
			result = append(result, models.RegionRevenue{Region: a.Region})
		}
		result[i].Revenue = result[i].Revenue.Add(a.Revenue)
	}
	return result
}

// YearlyGrowth sums revenue per released year and computes the year-over-year
// percent change. The first year has no prior and reports 0, as does any year
// following a zero-revenue year.
func YearlyGrowth(apps []models.App) []models.YearlyGrowth {
	byYear := make(map[int]decimal.Decimal)
	for _, a := range apps {
		if a.Released.IsZero() {
			continue
		}
		year := a.Released.Year()
		byYear[year] = byYear[year].Add(a.Revenue)
	}

	years := make([]int, 0, len(byYear))
	for year := range byYear {
		years = append(years, year)
	}
	sort.Ints(years)

	result := make([]models.YearlyGrowth, 0, len(years))
	for i, year := range years {
		point := models.YearlyGrowth{Year: year, Revenue: byYear[year]}
		if i > 0 {
			prev := byYear[years[i-1]]
			if !prev.IsZero() {
				change, _ := byYear[year].Sub(prev).Div(prev).Float64()
				point.GrowthPct = change * 100
			}
		}
		result = append(result, point)
	}
	return result
}

// OpportunityScores groups the view by (region, category), sums revenue and
// installs, scores each pair as 0.5·revenue + 0.5·installs, and returns the
// n highest-scoring pairs descending.
func OpportunityScores(apps []models.App, n int) []models.OpportunityScore {
	type key struct{ region, category string }
	index := make(map[key]int)
	result := []models.OpportunityScore{}
	for _, a := range apps {
		k := key{a.Region, a.Category}
		i, ok := index[k]
		if !ok {
			i = len(result)
			index[k] = i
			result = append(result, models.OpportunityScore{Region: a.Region, Category: a.Category})
		}
		result[i].Revenue = result[i].Revenue.Add(a.Revenue)
		result[i].Installs += a.Installs
	}

	for i := range result {
		installs := decimal.NewFromInt(result[i].Installs)
		result[i].Score = result[i].Revenue.Mul(half).Add(installs.Mul(half))
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Score.GreaterThan(result[j].Score)
	})
	if len(result) > n {
		result = result[:n]
	}
	return result
}
