package catalogdb

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"playinsights.teamg8.org/internal/models"
)

// DeveloperRevenueRow is one row of the TopDevelopersByRevenue query.
type DeveloperRevenueRow struct {
	DeveloperID string  // developer_id
	Revenue     float64 // SUM(revenue)
}

// ImportApps replaces the apps table contents with the given rows. It is
// called once at startup, right after the dataset has been loaded.
func (c *Client) ImportApps(ctx context.Context, apps []models.App) error {
	tx, err := c.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}

	if _, err := tx.Exec(`DELETE FROM apps;`); err != nil {
		tx.Rollback() // nolint:errcheck
		return fmt.Errorf("error clearing apps table: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO apps (
			app_name, category, developer_id, geo_region, economic_zone,
			installs, price, rating, released, revenue
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
	`)
	if err != nil {
		tx.Rollback() // nolint:errcheck
		return fmt.Errorf("error preparing insert: %w", err)
	}
	defer stmt.Close() // nolint:errcheck

	for _, app := range apps {
		released := ""
		if !app.Released.IsZero() {
			released = app.Released.Format("2006-01-02")
		}
		price, _ := app.Price.Float64()
		revenue, _ := app.Revenue.Float64()
		_, err := stmt.Exec(
			app.Name, app.Category, app.DeveloperID, app.Region, string(app.Zone),
			app.Installs, price, app.Rating, released, revenue,
		)
		if err != nil {
			tx.Rollback() // nolint:errcheck
			return fmt.Errorf("error inserting app: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error committing transaction: %w", err)
	}
	return nil
}

// CountApps returns the number of rows in the apps table.
func (c *Client) CountApps(ctx context.Context) (int64, error) {
	var count int64
	err := c.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM apps`).Scan(&count)
	return count, err
}

// DistinctCategories retrieves the distinct category values, ordered by first
// insertion, matching the order the dashboard multiselects present them in.
func (c *Client) DistinctCategories(ctx context.Context) ([]string, error) {
	return c.distinctColumn(ctx, "category")
}

// DistinctRegions retrieves the distinct geo_region values.
func (c *Client) DistinctRegions(ctx context.Context) ([]string, error) {
	return c.distinctColumn(ctx, "geo_region")
}

// DistinctZones retrieves the distinct non-empty economic_zone values.
func (c *Client) DistinctZones(ctx context.Context) ([]string, error) {
	rows, err := c.DB.QueryContext(
		ctx,
		`SELECT economic_zone FROM apps WHERE economic_zone != '' GROUP BY economic_zone ORDER BY MIN(rowid)`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close() // nolint:errcheck

	return scanStrings(rows)
}

// ReleasedBounds returns the minimum and maximum released dates as
// YYYY-MM-DD strings, empty when the table has no dated rows.
func (c *Client) ReleasedBounds(ctx context.Context) (string, string, error) {
	var min, max string
	err := c.DB.QueryRowContext(
		ctx,
		`SELECT COALESCE(MIN(released), ''), COALESCE(MAX(released), '') FROM apps WHERE released != ''`,
	).Scan(&min, &max)
	return min, max, err
}

// TopDevelopersByRevenue retrieves the developers with the largest summed
// revenue, unfiltered, descending. Used by the debug page as a cross-check
// against the in-memory aggregation.
func (c *Client) TopDevelopersByRevenue(ctx context.Context, limit int64) ([]DeveloperRevenueRow, error) {
	rows, err := c.DB.QueryContext(
		ctx,
		`SELECT developer_id, SUM(revenue) AS total
			FROM apps
			GROUP BY developer_id
			ORDER BY total DESC
			LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close() // nolint:errcheck

	var result []DeveloperRevenueRow
	for rows.Next() {
		var row DeveloperRevenueRow
		if err := rows.Scan(&row.DeveloperID, &row.Revenue); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

func (c *Client) distinctColumn(ctx context.Context, column string) ([]string, error) {
	rows, err := c.DB.QueryContext(
		ctx,
		fmt.Sprintf(`SELECT %s FROM apps GROUP BY %s ORDER BY MIN(rowid)`, column, column),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close() // nolint:errcheck

	return scanStrings(rows)
}

func scanStrings(rows *sql.Rows) ([]string, error) {
	var values []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, rows.Err()
}

// ParseReleased converts a stored released date back to a time.Time.
func ParseReleased(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}
