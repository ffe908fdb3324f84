package writer

import (
	"context"
	"fmt"

	"lrcollect/internal/apperr"
	"lrcollect/internal/contextutil"
	"lrcollect/internal/resolver"
	"lrcollect/internal/storage"
)

// Result summarizes a write phase.
type Result struct {
	Created []storage.CollectionRecord
	Skipped []string // names of drafts without images
	// NextChangeCounter is the first counter value left unused.
	NextChangeCounter int64
}

// ImagesLinked returns the number of collection images written.
func (r *Result) ImagesLinked() int {
	n := 0
	for _, c := range r.Created {
		n += len(c.Images)
	}
	return n
}

// Writer creates collections from drafts, drawing change counter values from
// one strictly increasing sequence for the whole run.
type Writer struct {
	store   storage.CollectionStore
	counter int64
}

// New creates a Writer whose first change counter value is seed.
func New(store storage.CollectionStore, seed int64) *Writer {
	return &Writer{store: store, counter: seed}
}

// SeedChangeCounter picks the first change counter value. A configured value
// of 0 continues after the highest counter in the catalog; a configured value
// not above it is kept but reported with a warning.
func SeedChangeCounter(ctx context.Context, store storage.CollectionStore, configured int64, warnings *apperr.Warnings) (int64, error) {
	logger := contextutil.LoggerFromContext(ctx)

	max, err := store.MaxChangeCounter(ctx)
	if err != nil {
		return 0, err
	}

	if configured == 0 {
		logger.InfoContext(ctx, "derived change counter seed from catalog", "seed", max+1)
		return max + 1, nil
	}
	if configured <= max {
		warnings.Add(ctx, logger, apperr.WarnLowChangeCounter, "",
			fmt.Sprintf("initial change counter %d is not above the catalog's highest counter %d", configured, max))
	}
	return configured, nil
}

// Write creates one collection per draft that has images. Each collection is
// written atomically; the first failure stops the run and is returned along
// with the collections created so far.
func (w *Writer) Write(ctx context.Context, drafts []resolver.Draft) (*Result, error) {
	logger := contextutil.LoggerFromContext(ctx)
	result := &Result{NextChangeCounter: w.counter}

	for _, draft := range drafts {
		if len(draft.ImageIDs) == 0 {
			logger.InfoContext(ctx, "skipping collection (0 images)", "name", draft.Name)
			result.Skipped = append(result.Skipped, draft.Name)
			continue
		}

		logger.InfoContext(ctx, "creating collection", "name", draft.Name, "images", len(draft.ImageIDs))
		record, err := w.store.Create(ctx, storage.CollectionInput{
			Name:               draft.Name,
			ImageIDs:           draft.ImageIDs,
			FirstChangeCounter: w.counter,
		})
		if err != nil {
			return result, fmt.Errorf("failed to create collection %q: %w", draft.Name, err)
		}

		w.counter = record.NextChangeCounter()
		result.NextChangeCounter = w.counter
		result.Created = append(result.Created, *record)
		logger.DebugContext(ctx, "created collection", "name", draft.Name, "id", record.ID, "genealogy", record.Genealogy)
	}

	return result, nil
}
