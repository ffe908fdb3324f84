package storage

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_file_store.go -package=mocks lrcollect/internal/storage FileStore,ImageStore

import (
	"context"
	"database/sql"
	"fmt"
)

// FileStore defines the read operations on catalog files.
type FileStore interface {
	// ListByFolder returns the files directly inside a folder, in id order.
	ListByFolder(ctx context.Context, folderID int64) ([]FileRecord, error)
}

// ImageStore defines the read operations on catalog images.
type ImageStore interface {
	// IDsByRootFile returns the ids of images whose root file is fileID.
	IDsByRootFile(ctx context.Context, fileID int64) ([]int64, error)
}

// FileRepo provides methods for file and image lookups.
// It implements the FileStore and ImageStore interfaces.
type FileRepo struct {
	db *sql.DB
}

// NewFileRepo creates a new FileRepo.
func NewFileRepo(db *sql.DB) *FileRepo {
	return &FileRepo{db: db}
}

// ListByFolder returns the files directly inside a folder, in id order.
func (r *FileRepo) ListByFolder(ctx context.Context, folderID int64) ([]FileRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id_local, baseName FROM AgLibraryFile WHERE folder = ? ORDER BY id_local",
		folderID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query files: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var files []FileRecord
	for rows.Next() {
		file := FileRecord{FolderID: folderID}
		if err := rows.Scan(&file.ID, &file.BaseName); err != nil {
			return nil, fmt.Errorf("failed to scan file: %w", err)
		}
		files = append(files, file)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return files, nil
}

// IDsByRootFile returns the ids of images whose root file is fileID.
func (r *FileRepo) IDsByRootFile(ctx context.Context, fileID int64) ([]int64, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id_local FROM Adobe_images WHERE rootFile = ? ORDER BY id_local",
		fileID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query images: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	return scanIDs(rows)
}
