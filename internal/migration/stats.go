package migration

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"lrcollect/internal/apperr"
	"lrcollect/internal/resolver"
	"lrcollect/internal/writer"
)

// Stats summarizes a run.
type Stats struct {
	// CatalogFolders is the number of subroot folders under the catalog root.
	CatalogFolders int `yaml:"catalog_folders"`
	// SourceFolders is the number of source folders scanned.
	SourceFolders int `yaml:"source_folders"`
	// MatchedFolders is the number of source folders paired with a catalog folder.
	MatchedFolders int `yaml:"matched_folders"`
	// Collections is the number of drafts with at least one image.
	Collections int `yaml:"collections"`
	// EmptyDrafts is the number of matched folders that resolved no image.
	EmptyDrafts int `yaml:"empty_drafts"`
	// ResolvedImages is the total number of images across drafts.
	ResolvedImages int `yaml:"resolved_images"`
	// WarningCount is the total number of warnings.
	WarningCount int `yaml:"warning_count"`
	// Warnings breaks WarningCount down by kind.
	Warnings map[apperr.WarningKind]int `yaml:"warnings,omitempty"`
	// CollectionsCreated and ImagesLinked are set once the plan is committed.
	CollectionsCreated int `yaml:"collections_created"`
	ImagesLinked       int `yaml:"images_linked"`
}

func newStats(catalogFolders, sourceFolders, matched int, drafts []resolver.Draft, warnings *apperr.Warnings) Stats {
	stats := Stats{
		CatalogFolders: catalogFolders,
		SourceFolders:  sourceFolders,
		MatchedFolders: matched,
	}
	for _, draft := range drafts {
		if len(draft.ImageIDs) == 0 {
			stats.EmptyDrafts++
			continue
		}
		stats.Collections++
		stats.ResolvedImages += len(draft.ImageIDs)
	}
	stats.setWarnings(warnings)
	return stats
}

func (s *Stats) recordWrite(result *writer.Result, warnings *apperr.Warnings) {
	if result != nil {
		s.CollectionsCreated = len(result.Created)
		s.ImagesLinked = result.ImagesLinked()
	}
	s.setWarnings(warnings)
}

func (s *Stats) setWarnings(warnings *apperr.Warnings) {
	s.Warnings = warnings.CountByKind()
	s.WarningCount = len(warnings.List())
}

// Print writes a human readable summary to w.
func (s *Stats) Print(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	rows := []struct {
		label string
		value int
	}{
		{"catalog folders", s.CatalogFolders},
		{"source folders", s.SourceFolders},
		{"matched folders", s.MatchedFolders},
		{"collections planned", s.Collections},
		{"empty folders", s.EmptyDrafts},
		{"images resolved", s.ResolvedImages},
		{"collections created", s.CollectionsCreated},
		{"images linked", s.ImagesLinked},
		{"warnings", s.WarningCount},
	}
	for _, row := range rows {
		fmt.Fprintf(tw, "%s\t%d\n", row.label, row.value)
	}

	kinds := make([]string, 0, len(s.Warnings))
	for kind := range s.Warnings {
		kinds = append(kinds, string(kind))
	}
	sort.Strings(kinds)
	for _, kind := range kinds {
		fmt.Fprintf(tw, "  %s\t%d\n", kind, s.Warnings[apperr.WarningKind(kind)])
	}

	return tw.Flush()
}
