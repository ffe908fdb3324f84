package matcher

import (
	"context"

	"lrcollect/internal/apperr"
	"lrcollect/internal/catalog"
	"lrcollect/internal/contextutil"
	"lrcollect/internal/source"
)

// Pair is a source folder together with the catalog subroot sharing its date key.
type Pair struct {
	Source  source.Folder
	Subroot catalog.SubrootFolder
}

// Match pairs every source folder with the single subroot whose date key
// equals its own. A source folder with no or several candidates is skipped
// with a warning. Pairs keep the order of sources.
func Match(ctx context.Context, sources []source.Folder, subroots []catalog.SubrootFolder, warnings *apperr.Warnings) []Pair {
	logger := contextutil.LoggerFromContext(ctx)

	byKey := make(map[string][]catalog.SubrootFolder)
	for _, subroot := range subroots {
		byKey[subroot.DateKey] = append(byKey[subroot.DateKey], subroot)
	}

	var pairs []Pair
	for _, src := range sources {
		candidates := byKey[src.DateKey]
		switch len(candidates) {
		case 0:
			warnings.Add(ctx, logger, apperr.WarnNoCatalogFolder, src.Path,
				"cannot find matching catalog folder for source folder, skipping")
		case 1:
			logger.DebugContext(ctx, "matched folder", "source", src.Name, "catalog", candidates[0].Path, "date_key", src.DateKey)
			pairs = append(pairs, Pair{Source: src, Subroot: candidates[0]})
		default:
			warnings.Add(ctx, logger, apperr.WarnMultipleCatalogFolders, src.Path,
				"found multiple catalog folders matching source folder, skipping")
		}
	}
	return pairs
}
