package catalog

// SubrootFolder is a catalog folder directly below the root folder.
type SubrootFolder struct {
	ID         int64
	Path       string // pathFromRoot as stored, e.g. "2011 03 Trip/"
	Name       string // the single path segment, e.g. "2011 03 Trip"
	DateKey    string
	SubFolders []SubFolder
}

// SubFolder is a catalog folder attached to a SubrootFolder.
type SubFolder struct {
	ID   int64
	Path string
}

// FolderIDs returns the subroot id followed by the ids of its subfolders.
func (s *SubrootFolder) FolderIDs() []int64 {
	ids := make([]int64, 0, len(s.SubFolders)+1)
	ids = append(ids, s.ID)
	for _, sub := range s.SubFolders {
		ids = append(ids, sub.ID)
	}
	return ids
}
