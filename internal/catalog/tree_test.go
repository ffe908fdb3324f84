package catalog

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"lrcollect/internal/contextutil"
	"lrcollect/internal/storage"
)

func TestAttachSubFolders_LiteralPrefix(t *testing.T) {
	folders := []storage.FolderRecord{
		{ID: 1, Path: "/2011 01"},
		{ID: 2, Path: "/2011 010"},
		{ID: 3, Path: "/2011 01/raw"},
		{ID: 4, Path: "/2011 02"},
	}
	subroots := []SubrootFolder{
		{ID: 1, Path: "/2011 01"},
		{ID: 2, Path: "/2011 010"},
		{ID: 4, Path: "/2011 02"},
	}

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	ctx := contextutil.WithLogger(context.Background(), logger)

	AttachSubFolders(ctx, subroots, folders)

	// "/2011 010" is claimed by "/2011 01" even though it is a sibling.
	got := subroots[0].FolderIDs()
	want := []int64{1, 2, 3}
	if len(got) != len(want) {
		t.Fatalf("FolderIDs() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("FolderIDs()[%d] = %d, want %d", i, got[i], want[i])
		}
	}

	if len(subroots[1].SubFolders) != 0 {
		t.Errorf("subroot /2011 010 SubFolders = %v, want none", subroots[1].SubFolders)
	}
	if len(subroots[2].SubFolders) != 0 {
		t.Errorf("subroot /2011 02 SubFolders = %v, want none", subroots[2].SubFolders)
	}

	if !strings.Contains(buf.String(), "segment boundary") || !strings.Contains(buf.String(), "2011 010") {
		t.Errorf("expected debug log for cross-segment match, got %q", buf.String())
	}
	if strings.Count(buf.String(), "segment boundary") != 1 {
		t.Errorf("expected exactly one cross-segment log line, got %q", buf.String())
	}
}

func TestAttachSubFolders_TrailingSeparator(t *testing.T) {
	folders := []storage.FolderRecord{
		{ID: 1, Path: "2011 01/"},
		{ID: 2, Path: "2011 010/"},
		{ID: 3, Path: "2011 01/raw/"},
	}
	subroots := []SubrootFolder{{ID: 1, Path: "2011 01/"}, {ID: 2, Path: "2011 010/"}}

	AttachSubFolders(context.Background(), subroots, folders)

	if len(subroots[0].SubFolders) != 1 || subroots[0].SubFolders[0].ID != 3 {
		t.Errorf("SubFolders = %v, want only id 3", subroots[0].SubFolders)
	}
}

func TestAttachSubFolders_ResetsPrevious(t *testing.T) {
	subroots := []SubrootFolder{{ID: 1, Path: "a/", SubFolders: []SubFolder{{ID: 99}}}}

	AttachSubFolders(context.Background(), subroots, []storage.FolderRecord{{ID: 1, Path: "a/"}})

	if len(subroots[0].SubFolders) != 0 {
		t.Errorf("SubFolders = %v, want none", subroots[0].SubFolders)
	}
}

func TestOnSegmentBoundary(t *testing.T) {
	tests := []struct {
		prefix, child string
		want          bool
	}{
		{"/2011 01", "/2011 01/raw", true},
		{"/2011 01", "/2011 010", false},
		{"2011 01/", "2011 01/raw/", true},
		{"/2011 01", "/2011 01", true},
	}

	for _, tt := range tests {
		if got := onSegmentBoundary(tt.prefix, tt.child); got != tt.want {
			t.Errorf("onSegmentBoundary(%q, %q) = %v, want %v", tt.prefix, tt.child, got, tt.want)
		}
	}
}
