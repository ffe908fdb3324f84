package writer

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"lrcollect/internal/apperr"
	"lrcollect/internal/contextutil"
	"lrcollect/internal/resolver"
	"lrcollect/internal/storage"
	"lrcollect/internal/storage/mocks"

	"go.uber.org/mock/gomock"
)

func quietContext() context.Context {
	return contextutil.WithLogger(context.Background(), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// fakeRecord mirrors what the store returns for in.
func fakeRecord(id int64, in storage.CollectionInput) *storage.CollectionRecord {
	record := &storage.CollectionRecord{ID: id, Name: in.Name, ChangeCounter: in.FirstChangeCounter}
	for i, imageID := range in.ImageIDs {
		record.Images = append(record.Images, storage.CollectionImageRecord{
			ID:            id*100 + int64(i),
			ImageID:       imageID,
			ChangeCounter: in.FirstChangeCounter + int64(i) + 1,
		})
	}
	record.CoverImageID = record.Images[len(record.Images)-1].ID
	return record
}

func TestWriter_Write(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockCollectionStore(ctrl)
	gomock.InOrder(
		mockStore.EXPECT().Create(gomock.Any(), storage.CollectionInput{
			Name: "2011 03 Trip", ImageIDs: []int64{1, 2}, FirstChangeCounter: 450816,
		}).DoAndReturn(func(_ context.Context, in storage.CollectionInput) (*storage.CollectionRecord, error) {
			return fakeRecord(1, in), nil
		}),
		mockStore.EXPECT().Create(gomock.Any(), storage.CollectionInput{
			Name: "2011 05", ImageIDs: []int64{3}, FirstChangeCounter: 450819,
		}).DoAndReturn(func(_ context.Context, in storage.CollectionInput) (*storage.CollectionRecord, error) {
			return fakeRecord(2, in), nil
		}),
	)

	result, err := New(mockStore, 450816).Write(quietContext(), []resolver.Draft{
		{Name: "2011 03 Trip", ImageIDs: []int64{1, 2}},
		{Name: "2011 04 Empty"},
		{Name: "2011 05", ImageIDs: []int64{3}},
	})
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	if len(result.Created) != 2 {
		t.Fatalf("Write() created %d collections, want 2", len(result.Created))
	}
	if len(result.Skipped) != 1 || result.Skipped[0] != "2011 04 Empty" {
		t.Errorf("Write() skipped = %v, want [2011 04 Empty]", result.Skipped)
	}
	if result.ImagesLinked() != 3 {
		t.Errorf("ImagesLinked() = %d, want 3", result.ImagesLinked())
	}
	if result.NextChangeCounter != 450821 {
		t.Errorf("NextChangeCounter = %d, want 450821", result.NextChangeCounter)
	}
}

func TestWriter_Write_OnlyEmptyDrafts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockCollectionStore(ctrl)

	result, err := New(mockStore, 10).Write(quietContext(), []resolver.Draft{{Name: "a"}, {Name: "b"}})
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if len(result.Created) != 0 || len(result.Skipped) != 2 {
		t.Errorf("Write() = %+v, want nothing created and 2 skipped", result)
	}
	if result.NextChangeCounter != 10 {
		t.Errorf("NextChangeCounter = %d, want 10", result.NextChangeCounter)
	}
}

func TestWriter_Write_StopsOnFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	storeErr := errors.New("constraint failed")
	mockStore := mocks.NewMockCollectionStore(ctrl)
	gomock.InOrder(
		mockStore.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, in storage.CollectionInput) (*storage.CollectionRecord, error) {
				return fakeRecord(1, in), nil
			}),
		mockStore.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, storeErr),
	)

	result, err := New(mockStore, 1).Write(quietContext(), []resolver.Draft{
		{Name: "first", ImageIDs: []int64{1}},
		{Name: "second", ImageIDs: []int64{2}},
		{Name: "third", ImageIDs: []int64{3}},
	})
	if !errors.Is(err, storeErr) {
		t.Fatalf("Write() error = %v, want %v", err, storeErr)
	}
	if result == nil || len(result.Created) != 1 || result.Created[0].Name != "first" {
		t.Errorf("Write() result = %+v, want the first collection only", result)
	}
}

func TestSeedChangeCounter(t *testing.T) {
	tests := []struct {
		name        string
		configured  int64
		max         int64
		want        int64
		wantWarning bool
	}{
		{name: "derived from catalog", configured: 0, max: 450815, want: 450816},
		{name: "derived on empty catalog", configured: 0, max: 0, want: 1},
		{name: "configured above max", configured: 500000, max: 450815, want: 500000},
		{name: "configured at max", configured: 450815, max: 450815, want: 450815, wantWarning: true},
		{name: "configured below max", configured: 10, max: 450815, want: 10, wantWarning: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStore := mocks.NewMockCollectionStore(ctrl)
			mockStore.EXPECT().MaxChangeCounter(gomock.Any()).Return(tt.max, nil)

			var warnings apperr.Warnings
			got, err := SeedChangeCounter(quietContext(), mockStore, tt.configured, &warnings)
			if err != nil {
				t.Fatalf("SeedChangeCounter() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("SeedChangeCounter() = %d, want %d", got, tt.want)
			}
			if gotWarning := warnings.CountByKind()[apperr.WarnLowChangeCounter] == 1; gotWarning != tt.wantWarning {
				t.Errorf("low-change-counter warning = %v, want %v", gotWarning, tt.wantWarning)
			}
		})
	}
}

func TestSeedChangeCounter_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	storeErr := errors.New("no such table")
	mockStore := mocks.NewMockCollectionStore(ctrl)
	mockStore.EXPECT().MaxChangeCounter(gomock.Any()).Return(int64(0), storeErr)

	var warnings apperr.Warnings
	if _, err := SeedChangeCounter(quietContext(), mockStore, 0, &warnings); !errors.Is(err, storeErr) {
		t.Errorf("SeedChangeCounter() error = %v, want %v", err, storeErr)
	}
}
