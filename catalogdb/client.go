package catalogdb

import (
	"database/sql"
	"log"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Client is the main entry point for the catalog database
type Client struct {
	config Config
	DB     *sql.DB
}

// NewClient creates a new Client with the provided configuration
func NewClient(config Config) (*Client, error) {
	db, err := InitDB(config)
	if err != nil {
		return nil, err
	} else if config.verbose {
		log.Println("Successfully created tables")
	}

	client := &Client{
		config: config,
		DB:     db,
	}
	return client, nil
}

func (c *Client) Close() error {
	return c.DB.Close()
}
