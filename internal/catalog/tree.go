package catalog

import (
	"context"
	"strings"

	"lrcollect/internal/contextutil"
	"lrcollect/internal/storage"
)

// AttachSubFolders sets the SubFolders of every subroot to the other folders
// whose path starts with the subroot's path, in the order of folders.
//
// The test is a plain string prefix, not a path-segment match: a subroot
// "2011 01" also claims "2011 010/...". Such matches are kept and logged at
// debug level.
func AttachSubFolders(ctx context.Context, subroots []SubrootFolder, folders []storage.FolderRecord) {
	logger := contextutil.LoggerFromContext(ctx)

	for i := range subroots {
		subroot := &subroots[i]
		subroot.SubFolders = nil
		for _, folder := range folders {
			if folder.ID == subroot.ID || !strings.HasPrefix(folder.Path, subroot.Path) {
				continue
			}
			if !onSegmentBoundary(subroot.Path, folder.Path) {
				logger.DebugContext(ctx, "subfolder matched across a segment boundary",
					"subroot", subroot.Path, "folder", folder.Path)
			}
			subroot.SubFolders = append(subroot.SubFolders, SubFolder{ID: folder.ID, Path: folder.Path})
		}
	}
}

// onSegmentBoundary reports whether child continues prefix at a separator.
func onSegmentBoundary(prefix, child string) bool {
	if len(child) == len(prefix) || strings.HasSuffix(prefix, "/") {
		return true
	}
	return child[len(prefix)] == '/'
}
