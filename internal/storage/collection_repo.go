package storage

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_collection_store.go -package=mocks lrcollect/internal/storage CollectionStore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
)

const (
	// CollectionCreationID is the creationId of a plain (non-smart) collection.
	CollectionCreationID = "com.adobe.ag.library.collection"
	// genealogyPrefix is written in front of the collection id, verbatim.
	genealogyPrefix = "/7"
)

// ErrEmptyCollection is returned when asked to create a collection without images.
var ErrEmptyCollection = errors.New("collection has no images")

// CollectionStore defines the write operations for collections.
type CollectionStore interface {
	// MaxChangeCounter returns the highest change counter recorded for
	// collections or collection images, or 0 when there is none.
	MaxChangeCounter(ctx context.Context) (int64, error)
	// Create inserts a collection with its image links, change counters and
	// cover image in a single transaction.
	Create(ctx context.Context, in CollectionInput) (*CollectionRecord, error)
}

// CollectionRepo provides methods for collection operations.
// It implements the CollectionStore interface.
type CollectionRepo struct {
	db *sql.DB
}

// NewCollectionRepo creates a new CollectionRepo.
func NewCollectionRepo(db *sql.DB) *CollectionRepo {
	return &CollectionRepo{db: db}
}

// MaxChangeCounter returns the highest change counter recorded for collections
// or collection images, or 0 when there is none.
func (r *CollectionRepo) MaxChangeCounter(ctx context.Context) (int64, error) {
	var max int64
	err := r.db.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(changeCounter), 0) FROM (
			SELECT changeCounter FROM AgLibraryCollectionChangeCounter
			UNION ALL
			SELECT changeCounter FROM AgLibraryCollectionImageChangeCounter
		)`,
	).Scan(&max)
	if err != nil {
		return 0, fmt.Errorf("failed to query change counters: %w", err)
	}
	return max, nil
}

// Create inserts a collection with its image links, change counters and cover
// image. Either every row is committed or none is.
func (r *CollectionRepo) Create(ctx context.Context, in CollectionInput) (*CollectionRecord, error) {
	if len(in.ImageIDs) == 0 {
		return nil, ErrEmptyCollection
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	record := &CollectionRecord{Name: in.Name, ChangeCounter: in.FirstChangeCounter}

	err = tx.QueryRowContext(ctx,
		`INSERT INTO AgLibraryCollection (creationId, genealogy, imageCount, name, parent, systemOnly)
		 VALUES (?, '', NULL, ?, NULL, 0.0)
		 RETURNING id_local`,
		CollectionCreationID, in.Name,
	).Scan(&record.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to insert collection: %w", err)
	}

	record.Genealogy = genealogyPrefix + strconv.FormatInt(record.ID, 10)
	if _, err := tx.ExecContext(ctx,
		"UPDATE AgLibraryCollection SET genealogy = ? WHERE id_local = ?",
		record.Genealogy, record.ID,
	); err != nil {
		return nil, fmt.Errorf("failed to set collection genealogy: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		"INSERT INTO AgLibraryCollectionChangeCounter (collection, changeCounter) VALUES (?, ?)",
		record.ID, record.ChangeCounter,
	); err != nil {
		return nil, fmt.Errorf("failed to insert collection change counter: %w", err)
	}

	counter := in.FirstChangeCounter + 1
	for _, imageID := range in.ImageIDs {
		link := CollectionImageRecord{ImageID: imageID, ChangeCounter: counter}

		err := tx.QueryRowContext(ctx,
			`INSERT INTO AgLibraryCollectionImage (collection, image, pick, positionInCollection)
			 VALUES (?, ?, 0.0, NULL)
			 RETURNING id_local`,
			record.ID, imageID,
		).Scan(&link.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to insert collection image %d: %w", imageID, err)
		}

		if _, err := tx.ExecContext(ctx,
			`INSERT INTO AgLibraryCollectionImageChangeCounter (collectionImage, collection, image, changeCounter)
			 VALUES (?, ?, ?, ?)`,
			link.ID, record.ID, imageID, link.ChangeCounter,
		); err != nil {
			return nil, fmt.Errorf("failed to insert collection image change counter: %w", err)
		}

		record.Images = append(record.Images, link)
		counter++
	}

	record.CoverImageID = record.Images[len(record.Images)-1].ID
	if _, err := tx.ExecContext(ctx,
		"INSERT INTO AgLibraryCollectionCoverImage (collection, collectionImage) VALUES (?, ?)",
		record.ID, record.CoverImageID,
	); err != nil {
		return nil, fmt.Errorf("failed to insert collection cover image: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit collection: %w", err)
	}

	return record, nil
}
