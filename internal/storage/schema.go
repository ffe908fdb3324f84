package storage

import "database/sql"

// CreateSchema creates the subset of catalog tables this tool reads and writes.
// The real schema belongs to the photo application; this is used to build
// empty catalogs for tests and local experiments. It is idempotent.
func CreateSchema(db *sql.DB) error {
	schema := []string{
		`CREATE TABLE IF NOT EXISTS AgLibraryRootFolder (
			id_local INTEGER PRIMARY KEY,
			absolutePath UNIQUE NOT NULL DEFAULT '',
			name NOT NULL DEFAULT ''
		);`,
		`CREATE TABLE IF NOT EXISTS AgLibraryFolder (
			id_local INTEGER PRIMARY KEY,
			parentId INTEGER,
			pathFromRoot NOT NULL DEFAULT '',
			rootFolder INTEGER NOT NULL DEFAULT 0
		);`,
		`CREATE TABLE IF NOT EXISTS AgLibraryFile (
			id_local INTEGER PRIMARY KEY,
			baseName NOT NULL DEFAULT '',
			extension NOT NULL DEFAULT '',
			folder INTEGER NOT NULL DEFAULT 0,
			originalFilename NOT NULL DEFAULT ''
		);`,
		`CREATE TABLE IF NOT EXISTS Adobe_images (
			id_local INTEGER PRIMARY KEY,
			rootFile INTEGER NOT NULL DEFAULT 0
		);`,
		`CREATE TABLE IF NOT EXISTS AgLibraryCollection (
			id_local INTEGER PRIMARY KEY,
			creationId NOT NULL DEFAULT '',
			genealogy NOT NULL DEFAULT '',
			imageCount,
			name NOT NULL DEFAULT '',
			parent INTEGER,
			systemOnly NOT NULL DEFAULT ''
		);`,
		`CREATE TABLE IF NOT EXISTS AgLibraryCollectionChangeCounter (
			collection PRIMARY KEY,
			changeCounter DEFAULT 0
		);`,
		`CREATE TABLE IF NOT EXISTS AgLibraryCollectionImage (
			id_local INTEGER PRIMARY KEY,
			collection INTEGER NOT NULL DEFAULT 0,
			image INTEGER NOT NULL DEFAULT 0,
			pick NOT NULL DEFAULT 0,
			positionInCollection
		);`,
		`CREATE TABLE IF NOT EXISTS AgLibraryCollectionImageChangeCounter (
			collectionImage PRIMARY KEY,
			collection NOT NULL,
			image NOT NULL,
			changeCounter DEFAULT 0
		);`,
		`CREATE TABLE IF NOT EXISTS AgLibraryCollectionCoverImage (
			collection PRIMARY KEY,
			collectionImage NOT NULL
		);`,
	}

	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}

	return nil
}

// WriteTables lists the tables a collection import writes to.
var WriteTables = []string{
	"AgLibraryCollection",
	"AgLibraryCollectionChangeCounter",
	"AgLibraryCollectionImage",
	"AgLibraryCollectionImageChangeCounter",
	"AgLibraryCollectionCoverImage",
}
