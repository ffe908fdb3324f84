package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrAmbiguousRoot is returned when the root folder name matches zero or several catalog rows.
	ErrAmbiguousRoot = errors.New("root folder not found or ambiguous")
	// ErrInvalidFolderName is returned when a folder name does not start with a numeric token.
	ErrInvalidFolderName = errors.New("invalid folder name")
	// ErrInvalidExtension is returned when a source file is not an accepted image type.
	ErrInvalidExtension = errors.New("invalid file extension")
	// ErrAborted is returned when the operator declines the confirmation prompt.
	ErrAborted = errors.New("aborted by operator")
)

// RootFolderError reports a root folder lookup that did not resolve to exactly one row.
type RootFolderError struct {
	Name  string
	Count int
}

func (e *RootFolderError) Error() string {
	if e.Count == 0 {
		return fmt.Sprintf("root folder %q not found in catalog", e.Name)
	}
	return fmt.Sprintf("multiple root folders named %q in catalog (%d)", e.Name, e.Count)
}

func (e *RootFolderError) Is(target error) bool {
	return target == ErrAmbiguousRoot
}

// FolderNameError reports a catalog or source folder whose name has no leading numeric token.
type FolderNameError struct {
	Origin string // "catalog" or "source"
	Path   string
}

func (e *FolderNameError) Error() string {
	return fmt.Sprintf("%s folder has invalid name: %s", e.Origin, e.Path)
}

func (e *FolderNameError) Is(target error) bool {
	return target == ErrInvalidFolderName
}

// ExtensionError reports a source file outside the accepted extension set.
type ExtensionError struct {
	Path string
}

func (e *ExtensionError) Error() string {
	return fmt.Sprintf("file has invalid extension: %s", e.Path)
}

func (e *ExtensionError) Is(target error) bool {
	return target == ErrInvalidExtension
}

// WrapError wraps an error with additional context.
func WrapError(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}
