package source

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"lrcollect/internal/apperr"
	"lrcollect/internal/contextutil"
	"lrcollect/internal/datekey"
)

// AcceptedExtensions lists the lower-case file extensions allowed in source folders.
var AcceptedExtensions = []string{"jpg", "jpeg", "png", "gif"}

// Folder is a date-named directory below the source root.
type Folder struct {
	Name    string
	Path    string
	DateKey string
	Files   []File // directory order
}

// File is an image inside a source Folder.
type File struct {
	Name string
	Path string
}

// BareName returns the file name up to its first dot.
func (f File) BareName() string {
	name, _, _ := strings.Cut(f.Name, ".")
	return name
}

// Scanner lists source folders and their image files.
type Scanner struct {
	root string
}

// NewScanner creates a new Scanner for the given source root.
func NewScanner(root string) *Scanner {
	return &Scanner{root: root}
}

// Scan reads every directory below the source root. Non-directory entries at
// the root are skipped with a warning. Every file of every folder is checked
// against AcceptedExtensions before any folder name is parsed; the first
// offending file aborts the scan with an *apperr.ExtensionError. A folder name
// without a leading numeric token aborts with an *apperr.FolderNameError.
func (s *Scanner) Scan(ctx context.Context, warnings *apperr.Warnings) ([]Folder, error) {
	logger := contextutil.LoggerFromContext(ctx)

	entries, err := os.ReadDir(s.root)
	if err != nil {
		return nil, fmt.Errorf("failed to read source root %s: %w", s.root, err)
	}

	var folders []Folder
	for _, entry := range entries {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		path := filepath.Join(s.root, entry.Name())
		if !entry.IsDir() {
			warnings.Add(ctx, logger, apperr.WarnNotADirectory, path, "source entry is not a directory, skipping")
			continue
		}

		files, err := readFiles(path)
		if err != nil {
			return nil, err
		}
		folders = append(folders, Folder{Name: entry.Name(), Path: path, Files: files})
	}

	for i := range folders {
		key, err := datekey.Parse(folders[i].Name)
		if err != nil {
			return nil, &apperr.FolderNameError{Origin: "source", Path: folders[i].Path}
		}
		folders[i].DateKey = key
	}

	logger.InfoContext(ctx, "scanned source folders", "root", s.root, "folders", len(folders))
	return folders, nil
}

// readFiles lists a source folder, rejecting any entry that is not an accepted image.
func readFiles(dir string) ([]File, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read source folder %s: %w", dir, err)
	}

	files := make([]File, 0, len(entries))
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		if entry.IsDir() || !HasAcceptedExtension(entry.Name()) {
			return nil, &apperr.ExtensionError{Path: path}
		}
		files = append(files, File{Name: entry.Name(), Path: path})
	}
	return files, nil
}

// HasAcceptedExtension reports whether the text after the last dot of name is
// an accepted extension, ignoring case.
func HasAcceptedExtension(name string) bool {
	ext := strings.ToLower(name[strings.LastIndex(name, ".")+1:])
	for _, accepted := range AcceptedExtensions {
		if ext == accepted {
			return true
		}
	}
	return false
}
