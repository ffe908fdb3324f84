package main

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"lrcollect/internal/apperr"
	"lrcollect/internal/storage"
	"lrcollect/internal/storage/storagetest"
)

var envKeys = []string{
	"SOURCE_DIR", "CATALOG_PATH", "ROOT_FOLDER", "INITIAL_CHANGE_COUNTER",
	"LOG_LEVEL", "LOG_FORMAT", "FATAL_EXIT_CODE", "CHECK_EXIF_DATES",
}

type testEnv struct {
	catalogPath string
	sourceDir   string
	db          *sql.DB
}

// setup builds a catalog with one photo in "2011 03/" and a matching source
// folder, and clears the configuration environment.
func setup(t *testing.T) testEnv {
	t.Helper()
	for _, key := range envKeys {
		t.Setenv(key, "")
	}

	path, db := storagetest.NewCatalog(t)
	root := storagetest.AddRootFolder(t, db, "2011")
	folder := storagetest.AddFolder(t, db, root, "2011 03/")
	storagetest.AddPhoto(t, db, folder, "IMG_0001")

	sourceDir := t.TempDir()
	dir := filepath.Join(sourceDir, "2011 03 Trip")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("Failed to create source folder: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "IMG_0001.jpg"), []byte("img"), 0644); err != nil {
		t.Fatalf("Failed to create source file: %v", err)
	}

	return testEnv{catalogPath: path, sourceDir: sourceDir, db: db}
}

func (e testEnv) countWrites(t *testing.T) int {
	t.Helper()
	total := 0
	for _, table := range storage.WriteTables {
		total += storagetest.CountRows(t, e.db, table)
	}
	return total
}

func (e testEnv) args(command string, extra ...string) []string {
	return append([]string{command,
		"--source", e.sourceDir,
		"--catalog", e.catalogPath,
		"--root-folder", "2011",
	}, extra...)
}

func execute(t *testing.T, a *app, args []string, stdin string) (string, error) {
	t.Helper()

	cmd := newRootCmd(a)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestImport_Yes(t *testing.T) {
	env := setup(t)

	out, err := execute(t, &app{}, env.args("import", "--yes", "--change-counter", "100"), "")
	if err != nil {
		t.Fatalf("import error = %v\n%s", err, out)
	}

	if n := storagetest.CountRows(t, env.db, "AgLibraryCollection"); n != 1 {
		t.Errorf("AgLibraryCollection has %d rows, want 1", n)
	}
	if n := storagetest.CountRows(t, env.db, "AgLibraryCollectionImage"); n != 1 {
		t.Errorf("AgLibraryCollectionImage has %d rows, want 1", n)
	}
	if !strings.Contains(out, "collections created") {
		t.Errorf("output missing report:\n%s", out)
	}
}

func TestImport_Prompt(t *testing.T) {
	tests := []struct {
		name     string
		answer   string
		wantErr  error
		wantRows int
	}{
		{name: "yes", answer: "yes\n", wantRows: 5},
		{name: "uppercase Y", answer: "Y\n", wantRows: 5},
		{name: "no", answer: "n\n", wantErr: apperr.ErrAborted},
		{name: "empty line", answer: "\n", wantErr: apperr.ErrAborted},
		{name: "end of input", answer: "", wantErr: apperr.ErrAborted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := setup(t)

			out, err := execute(t, &app{}, env.args("import"), tt.answer)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("import error = %v, want %v\n%s", err, tt.wantErr, out)
			}
			if !strings.Contains(out, "(y/N)") || !strings.Contains(out, "Back up the catalog") {
				t.Errorf("output missing prompt:\n%s", out)
			}
			if n := env.countWrites(t); n != tt.wantRows {
				t.Errorf("wrote %d rows, want %d", n, tt.wantRows)
			}
		})
	}
}

func TestPlan_WritesNothing(t *testing.T) {
	env := setup(t)
	output := filepath.Join(t.TempDir(), "plan.yaml")

	out, err := execute(t, &app{}, env.args("plan", "--output", output), "")
	if err != nil {
		t.Fatalf("plan error = %v\n%s", err, out)
	}

	if n := env.countWrites(t); n != 0 {
		t.Errorf("plan wrote %d rows, want 0", n)
	}
	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("Failed to read plan file: %v", err)
	}
	if !strings.Contains(string(data), "name: 2011 03 Trip") {
		t.Errorf("plan file missing collection:\n%s", data)
	}
	if !strings.Contains(out, "images resolved") {
		t.Errorf("output missing report:\n%s", out)
	}
}

func TestPlan_FatalError(t *testing.T) {
	env := setup(t)
	t.Setenv("FATAL_EXIT_CODE", "3")

	a := &app{}
	_, err := execute(t, a, env.args("plan", "--root-folder", "1999"), "")
	if !errors.Is(err, apperr.ErrAmbiguousRoot) {
		t.Fatalf("plan error = %v, want ErrAmbiguousRoot", err)
	}
	if code := a.exitCode(); code != 3 {
		t.Errorf("exitCode() = %d, want 3", code)
	}
}

func TestRoot_InvalidConfig(t *testing.T) {
	env := setup(t)

	tests := []struct {
		name string
		args []string
	}{
		{name: "missing source", args: []string{"plan", "--catalog", env.catalogPath, "--root-folder", "2011"}},
		{name: "bad log level", args: env.args("plan", "--log-level", "loud")},
		{name: "bad log format", args: env.args("plan", "--log-format", "xml")},
		{name: "negative counter", args: env.args("import", "--change-counter=-5")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &app{}
			if _, err := execute(t, a, tt.args, ""); err == nil {
				t.Error("expected configuration error")
			}
			if code := a.exitCode(); code != 1 {
				t.Errorf("exitCode() = %d, want 1", code)
			}
		})
	}
}

func TestApplyFlags_OverridesEnvironment(t *testing.T) {
	env := setup(t)
	t.Setenv("ROOT_FOLDER", "from-env")
	t.Setenv("LOG_LEVEL", "error")

	a := &app{}
	_, err := execute(t, a, env.args("plan", "--log-level", "debug", "--check-exif"), "")
	if err != nil {
		t.Fatalf("plan error = %v", err)
	}

	if a.cfg.RootFolder != "2011" || !a.cfg.CheckExifDates {
		t.Errorf("cfg = %+v, want flags to win", a.cfg)
	}
	if a.cfg.LogLevel != slog.LevelDebug {
		t.Errorf("LogLevel = %s, want DEBUG", a.cfg.LogLevel)
	}
}
