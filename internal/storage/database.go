package storage

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

var uriEscaper = strings.NewReplacer("%", "%25", "?", "%3f", "#", "%23")

// New opens an existing catalog database at the given path for reading and writing.
// It never creates a missing file.
func New(path string) (*sql.DB, error) {
	return open(path, "rw")
}

// Create opens the catalog database at path, creating the file when it does not exist.
func Create(path string) (*sql.DB, error) {
	return open(path, "rwc")
}

func open(path, mode string) (*sql.DB, error) {
	dsn := fmt.Sprintf("file:%s?mode=%s&_busy_timeout=5000", uriEscaper.Replace(path), mode)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}

	// One connection: this tool must be the only writer for the whole run.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	// Verify connection
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}
