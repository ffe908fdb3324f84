package storage

// FolderRecord is a row of AgLibraryFolder.
type FolderRecord struct {
	ID   int64
	Path string // pathFromRoot, e.g. "2011 03 Trip/"
}

// FileRecord is a row of AgLibraryFile.
type FileRecord struct {
	ID       int64
	BaseName string // file name without extension
	FolderID int64
}

// CollectionInput describes a collection to insert.
type CollectionInput struct {
	Name     string
	ImageIDs []int64
	// FirstChangeCounter is assigned to the collection row; each image link
	// takes the next value in order.
	FirstChangeCounter int64
}

// CollectionRecord is a collection as written to the catalog.
type CollectionRecord struct {
	ID            int64
	Name          string
	Genealogy     string
	ChangeCounter int64
	Images        []CollectionImageRecord
	CoverImageID  int64 // id of the last CollectionImage
}

// CollectionImageRecord is a row of AgLibraryCollectionImage with its change counter.
type CollectionImageRecord struct {
	ID            int64
	ImageID       int64
	ChangeCounter int64
}

// NextChangeCounter returns the first counter value not used by c.
func (c *CollectionRecord) NextChangeCounter() int64 {
	return c.ChangeCounter + int64(len(c.Images)) + 1
}
