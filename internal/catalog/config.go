package catalog

import "playinsights.teamg8.org/internal/appconf"

type Config struct {
	// DataPath is the parquet dataset to load. It may be a local file path
	// or an http(s) URL.
	DataPath string
	// DBPath is the SQLite mirror location, ":memory:" for tests.
	DBPath  string
	Env     appconf.Environment
	Verbose bool
}
