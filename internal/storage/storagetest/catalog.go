// Package storagetest builds small catalogs for tests.
package storagetest

import (
	"database/sql"
	"path/filepath"
	"testing"

	"lrcollect/internal/storage"
)

// NewCatalog creates an empty catalog file in a temporary directory and
// returns its path together with an open handle closed on cleanup.
func NewCatalog(t testing.TB) (string, *sql.DB) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "catalog.lrcat")
	db, err := storage.Create(path)
	if err != nil {
		t.Fatalf("storage.Create() error = %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})

	if err := storage.CreateSchema(db); err != nil {
		t.Fatalf("storage.CreateSchema() error = %v", err)
	}
	return path, db
}

// AddRootFolder inserts a root folder and returns its id.
func AddRootFolder(t testing.TB, db *sql.DB, name string) int64 {
	t.Helper()
	return insert(t, db,
		"INSERT INTO AgLibraryRootFolder (absolutePath, name) VALUES (?, ?)",
		"/photos/"+name+"/", name,
	)
}

// AddFolder inserts a folder under rootID and returns its id.
func AddFolder(t testing.TB, db *sql.DB, rootID int64, pathFromRoot string) int64 {
	t.Helper()
	return insert(t, db,
		"INSERT INTO AgLibraryFolder (pathFromRoot, rootFolder) VALUES (?, ?)",
		pathFromRoot, rootID,
	)
}

// AddFile inserts a file into folderID and returns its id.
func AddFile(t testing.TB, db *sql.DB, folderID int64, baseName, extension string) int64 {
	t.Helper()
	return insert(t, db,
		"INSERT INTO AgLibraryFile (baseName, extension, folder, originalFilename) VALUES (?, ?, ?, ?)",
		baseName, extension, folderID, baseName+"."+extension,
	)
}

// AddImage inserts an image whose root file is fileID and returns its id.
func AddImage(t testing.TB, db *sql.DB, fileID int64) int64 {
	t.Helper()
	return insert(t, db, "INSERT INTO Adobe_images (rootFile) VALUES (?)", fileID)
}

// AddPhoto inserts a file and its image, returning the image id.
func AddPhoto(t testing.TB, db *sql.DB, folderID int64, baseName string) int64 {
	t.Helper()
	return AddImage(t, db, AddFile(t, db, folderID, baseName, "JPG"))
}

// CountRows returns the number of rows in table.
func CountRows(t testing.TB, db *sql.DB, table string) int {
	t.Helper()

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&count); err != nil {
		t.Fatalf("count %s: %v", table, err)
	}
	return count
}

func insert(t testing.TB, db *sql.DB, query string, args ...any) int64 {
	t.Helper()

	result, err := db.Exec(query, args...)
	if err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		t.Fatalf("LastInsertId() error = %v", err)
	}
	return id
}
