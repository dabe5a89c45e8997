package app

import (
	"log/slog"

	"playinsights.teamg8.org/internal/appconf"
	"playinsights.teamg8.org/internal/catalog"
)

// Application holds the dependencies for our HTTP handlers, helpers,
// and middleware: the runtime configuration, a structured logger, and the
// loaded app catalog.
type Application struct {
	Config        appconf.Config
	CatalogConfig catalog.Config
	Logger        *slog.Logger
	Catalog       *catalog.Manager
}
