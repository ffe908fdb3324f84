package catalog

import (
	"context"
	"fmt"
	"strings"

	"lrcollect/internal/apperr"
	"lrcollect/internal/contextutil"
	"lrcollect/internal/datekey"
	"lrcollect/internal/storage"
)

// Reader loads the folder hierarchy below a catalog root folder.
type Reader struct {
	folders storage.FolderStore
}

// NewReader creates a new Reader.
func NewReader(folders storage.FolderStore) *Reader {
	return &Reader{folders: folders}
}

// RootFolderID returns the id of the single root folder called name.
// Zero or several matches yield an *apperr.RootFolderError.
func (r *Reader) RootFolderID(ctx context.Context, name string) (int64, error) {
	ids, err := r.folders.RootFolderIDs(ctx, name)
	if err != nil {
		return 0, err
	}
	if len(ids) != 1 {
		return 0, &apperr.RootFolderError{Name: name, Count: len(ids)}
	}
	return ids[0], nil
}

// Subroots returns the folders directly below rootID with their subfolders
// attached. A subroot whose name has no leading numeric token is fatal.
func (r *Reader) Subroots(ctx context.Context, rootID int64) ([]SubrootFolder, error) {
	logger := contextutil.LoggerFromContext(ctx)

	folders, err := r.folders.ListByRoot(ctx, rootID)
	if err != nil {
		return nil, err
	}

	var subroots []SubrootFolder
	for _, folder := range folders {
		if strings.Count(folder.Path, "/") != 1 {
			continue
		}

		name := segmentName(folder.Path)
		key, err := datekey.Parse(name)
		if err != nil {
			return nil, &apperr.FolderNameError{Origin: "catalog", Path: folder.Path}
		}

		subroots = append(subroots, SubrootFolder{
			ID:      folder.ID,
			Path:    folder.Path,
			Name:    name,
			DateKey: key,
		})
	}

	AttachSubFolders(ctx, subroots, folders)

	logger.InfoContext(ctx, "loaded catalog folders", "root_id", rootID, "folders", len(folders), "subroots", len(subroots))
	return subroots, nil
}

// Load resolves the root folder by name and returns its subroots.
func (r *Reader) Load(ctx context.Context, rootName string) ([]SubrootFolder, error) {
	rootID, err := r.RootFolderID(ctx, rootName)
	if err != nil {
		return nil, err
	}

	subroots, err := r.Subroots(ctx, rootID)
	if err != nil {
		return nil, fmt.Errorf("failed to read folders of root %q: %w", rootName, err)
	}
	return subroots, nil
}

// segmentName returns the path segment of a single-separator path. Catalog
// paths carry a trailing separator ("2011 03/"), so that form yields the part
// before it; otherwise the part after it.
func segmentName(path string) string {
	i := strings.Index(path, "/")
	if i == len(path)-1 {
		return path[:i]
	}
	return path[i+1:]
}
