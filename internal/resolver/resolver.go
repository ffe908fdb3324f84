package resolver

import (
	"context"
	"fmt"

	"lrcollect/internal/apperr"
	"lrcollect/internal/contextutil"
	"lrcollect/internal/matcher"
	"lrcollect/internal/storage"
)

// Draft is a collection to be created: the source folder name and the catalog
// images resolved from its files, in file order.
type Draft struct {
	Name        string  `yaml:"name"`
	SourcePath  string  `yaml:"source_path"`
	CatalogPath string  `yaml:"catalog_folder"`
	ImageIDs    []int64 `yaml:"image_ids"`
}

// Resolver maps source files to catalog image ids.
type Resolver struct {
	files  storage.FileStore
	images storage.ImageStore
}

// New creates a new Resolver.
func New(files storage.FileStore, images storage.ImageStore) *Resolver {
	return &Resolver{files: files, images: images}
}

// Resolve builds the draft for one matched folder. Files without exactly one
// catalog file of the same bare name, or whose catalog file does not belong to
// exactly one image, are skipped with a warning. Store errors are returned.
func (r *Resolver) Resolve(ctx context.Context, pair matcher.Pair, warnings *apperr.Warnings) (Draft, error) {
	logger := contextutil.LoggerFromContext(ctx)

	draft := Draft{
		Name:        pair.Source.Name,
		SourcePath:  pair.Source.Path,
		CatalogPath: pair.Subroot.Path,
	}

	candidates, err := r.candidates(ctx, pair.Subroot.FolderIDs())
	if err != nil {
		return Draft{}, err
	}

	for _, file := range pair.Source.Files {
		matches := candidates[file.BareName()]
		switch {
		case len(matches) == 0:
			warnings.Add(ctx, logger, apperr.WarnNoCatalogFile, file.Path,
				"cannot find matching catalog file for source image, skipping")
			continue
		case len(matches) > 1:
			warnings.Add(ctx, logger, apperr.WarnMultipleCatalogFiles, file.Path,
				"found multiple catalog files matching source image, skipping")
			continue
		}

		imageIDs, err := r.images.IDsByRootFile(ctx, matches[0].ID)
		if err != nil {
			return Draft{}, fmt.Errorf("failed to resolve image for %s: %w", file.Path, err)
		}
		switch {
		case len(imageIDs) == 0:
			warnings.Add(ctx, logger, apperr.WarnNoCatalogImage, file.Path,
				"cannot find matching catalog image for source image, skipping")
			continue
		case len(imageIDs) > 1:
			warnings.Add(ctx, logger, apperr.WarnMultipleCatalogImages, file.Path,
				"found multiple catalog images matching source image, skipping")
			continue
		}

		draft.ImageIDs = append(draft.ImageIDs, imageIDs[0])
	}

	logger.InfoContext(ctx, "resolved folder", "source", pair.Source.Name,
		"files", len(pair.Source.Files), "images", len(draft.ImageIDs))
	return draft, nil
}

// ResolveAll resolves every pair, keeping drafts without images.
func (r *Resolver) ResolveAll(ctx context.Context, pairs []matcher.Pair, warnings *apperr.Warnings) ([]Draft, error) {
	drafts := make([]Draft, 0, len(pairs))
	for _, pair := range pairs {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		draft, err := r.Resolve(ctx, pair, warnings)
		if err != nil {
			return nil, err
		}
		drafts = append(drafts, draft)
	}
	return drafts, nil
}

// candidates loads the files of every folder id and indexes them by base name.
func (r *Resolver) candidates(ctx context.Context, folderIDs []int64) (map[string][]storage.FileRecord, error) {
	byName := make(map[string][]storage.FileRecord)
	for _, id := range folderIDs {
		files, err := r.files.ListByFolder(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("failed to list files of catalog folder %d: %w", id, err)
		}
		for _, file := range files {
			byName[file.BaseName] = append(byName[file.BaseName], file)
		}
	}
	return byName, nil
}
