package apperr

import (
	"context"
	"log/slog"
)

// WarningKind classifies a non-fatal condition that skips a single unit of work.
type WarningKind string

const (
	WarnNoCatalogFolder        WarningKind = "no-catalog-folder"
	WarnMultipleCatalogFolders WarningKind = "multiple-catalog-folders"
	WarnNoCatalogFile          WarningKind = "no-catalog-file"
	WarnMultipleCatalogFiles   WarningKind = "multiple-catalog-files"
	WarnNoCatalogImage         WarningKind = "no-catalog-image"
	WarnMultipleCatalogImages  WarningKind = "multiple-catalog-images"
	WarnNotADirectory          WarningKind = "not-a-directory"
	WarnExifDateMismatch       WarningKind = "exif-date-mismatch"
	WarnLowChangeCounter       WarningKind = "low-change-counter"
)

// Warning is a logged, non-fatal condition.
type Warning struct {
	Kind    WarningKind `yaml:"kind"`
	Path    string      `yaml:"path"`
	Message string      `yaml:"message"`
}

// Warnings collects warnings emitted during a run.
type Warnings struct {
	items []Warning
}

// Add records a warning and logs it at WARN level.
func (w *Warnings) Add(ctx context.Context, logger *slog.Logger, kind WarningKind, path, message string) {
	w.items = append(w.items, Warning{Kind: kind, Path: path, Message: message})
	logger.WarnContext(ctx, message, "kind", string(kind), "path", path)
}

// List returns the recorded warnings in emission order.
func (w *Warnings) List() []Warning {
	return w.items
}

// CountByKind returns the number of recorded warnings per kind.
func (w *Warnings) CountByKind() map[WarningKind]int {
	counts := make(map[WarningKind]int)
	for _, item := range w.items {
		counts[item.Kind]++
	}
	return counts
}
