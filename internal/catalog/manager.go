package catalog

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"playinsights.teamg8.org/catalogdb"
	"playinsights.teamg8.org/internal/models"
)

// Manager holds the loaded application catalog and provides read-only access
// to it. The catalog is populated exactly once in InitManager and is never
// mutated afterwards, so it can be shared freely across request handlers.
type Manager struct {
	source       string
	isLocalFile  bool
	apps         []models.App
	zones        *ZoneClassifier
	lastUpdated  time.Time
	config       Config
	CatalogDB    *catalogdb.Client
	shutdownOnce sync.Once
}

// InitManager loads the dataset from the configured source, enriches it, and
// mirrors it into the SQLite catalog database. The source can be either a URL
// or a local file path. A missing or unreadable dataset is a hard error:
// callers must not serve anything without a loaded catalog.
func InitManager(config Config) (*Manager, error) {
	isLocalFile := !strings.HasPrefix(config.DataPath, "http://") && !strings.HasPrefix(config.DataPath, "https://")

	apps, err := loadCatalogData(config.DataPath, isLocalFile)
	if err != nil {
		return nil, err
	}

	manager := &Manager{
		source:      config.DataPath,
		isLocalFile: isLocalFile,
		config:      config,
		apps:        apps,
		zones:       NewZoneClassifier(apps),
		lastUpdated: time.Now(),
	}

	client, err := catalogdb.NewClient(catalogdb.NewConfig(config.DBPath, config.Env, config.Verbose))
	if err != nil {
		return nil, fmt.Errorf("error building catalog database: %w", err)
	}
	if err := client.ImportApps(context.Background(), apps); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("error importing catalog into database: %w", err)
	}
	manager.CatalogDB = client

	return manager, nil
}

// Shutdown releases the manager's resources.
func (manager *Manager) Shutdown() {
	manager.shutdownOnce.Do(func() {
		if manager.CatalogDB != nil {
			_ = manager.CatalogDB.Close()
		}
	})
}

// Apps returns every row of the loaded table.
func (manager *Manager) Apps() []models.App {
	return manager.apps
}

// ZoneClassifier returns the zone indicator capability, or nil when the
// source dataset had no economic_zone column.
func (manager *Manager) ZoneClassifier() *ZoneClassifier {
	return manager.zones
}

// Categories returns the distinct categories in first-appearance order.
func (manager *Manager) Categories() []string {
	return distinct(manager.apps, func(a models.App) string { return a.Category })
}

// Regions returns the distinct geo regions in first-appearance order.
func (manager *Manager) Regions() []string {
	return distinct(manager.apps, func(a models.App) string { return a.Region })
}

// ReleasedBounds returns the min and max Released dates of the loaded table.
// Both are zero when the table is empty.
func (manager *Manager) ReleasedBounds() (time.Time, time.Time) {
	var min, max time.Time
	for _, a := range manager.apps {
		if a.Released.IsZero() {
			continue
		}
		if min.IsZero() || a.Released.Before(min) {
			min = a.Released
		}
		if max.IsZero() || a.Released.After(max) {
			max = a.Released
		}
	}
	return min, max
}

// DataPath returns the resolved location of the dataset file.
func (manager *Manager) DataPath() string {
	if !manager.isLocalFile {
		return manager.source
	}
	abs, err := filepath.Abs(manager.source)
	if err != nil {
		return manager.source
	}
	return abs
}

// LastUpdated returns when the catalog was loaded.
func (manager *Manager) LastUpdated() time.Time {
	return manager.lastUpdated
}

func (manager *Manager) PrintStatistics() {
	fmt.Printf("Source: %s (Local File: %v)\n", manager.source, manager.isLocalFile)
	fmt.Printf("Last Updated: %s\n", manager.lastUpdated)
	fmt.Println("Apps Count: ", len(manager.apps))
	fmt.Println("Categories Count: ", len(manager.Categories()))
	fmt.Println("Regions Count: ", len(manager.Regions()))
	fmt.Println("Zone Data Present: ", manager.zones != nil)
}

func distinct(apps []models.App, key func(models.App) string) []string {
	seen := make(map[string]bool)
	var values []string
	for _, a := range apps {
		k := key(a)
		if k == "" || seen[k] {
			continue
		}
		seen[k] = true
		values = append(values, k)
	}
	return values
}
