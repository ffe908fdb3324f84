package storage

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_folder_store.go -package=mocks lrcollect/internal/storage FolderStore

import (
	"context"
	"database/sql"
	"fmt"
)

// FolderStore defines the read operations on catalog folders.
type FolderStore interface {
	// RootFolderIDs returns the ids of all root folders with the given name.
	RootFolderIDs(ctx context.Context, name string) ([]int64, error)
	// ListByRoot returns every folder under a root folder, in id order.
	ListByRoot(ctx context.Context, rootID int64) ([]FolderRecord, error)
}

// FolderRepo provides methods for folder operations.
// It implements the FolderStore interface.
type FolderRepo struct {
	db *sql.DB
}

// NewFolderRepo creates a new FolderRepo.
func NewFolderRepo(db *sql.DB) *FolderRepo {
	return &FolderRepo{db: db}
}

// RootFolderIDs returns the ids of all root folders with the given name.
func (r *FolderRepo) RootFolderIDs(ctx context.Context, name string) ([]int64, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id_local FROM AgLibraryRootFolder WHERE name = ? ORDER BY id_local",
		name,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query root folders: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	return scanIDs(rows)
}

// ListByRoot returns every folder under a root folder, in id order.
func (r *FolderRepo) ListByRoot(ctx context.Context, rootID int64) ([]FolderRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id_local, pathFromRoot FROM AgLibraryFolder WHERE rootFolder = ? ORDER BY id_local",
		rootID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query folders: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var folders []FolderRecord
	for rows.Next() {
		var folder FolderRecord
		if err := rows.Scan(&folder.ID, &folder.Path); err != nil {
			return nil, fmt.Errorf("failed to scan folder: %w", err)
		}
		folders = append(folders, folder)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return folders, nil
}

// scanIDs reads a single integer column from every row.
func scanIDs(rows *sql.Rows) ([]int64, error) {
	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan id: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return ids, nil
}
