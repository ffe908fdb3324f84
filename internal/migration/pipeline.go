package migration

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"lrcollect/internal/apperr"
	"lrcollect/internal/catalog"
	"lrcollect/internal/contextutil"
	"lrcollect/internal/matcher"
	"lrcollect/internal/resolver"
	"lrcollect/internal/source"
	"lrcollect/internal/storage"
	"lrcollect/internal/writer"
)

// Options configures a Pipeline.
type Options struct {
	RootFolder           string
	InitialChangeCounter int64 // 0 continues after the catalog's highest counter
	CheckExifDates       bool
}

// Plan is everything computed before the catalog is modified.
type Plan struct {
	RunID      string
	RootFolder string
	Drafts     []resolver.Draft
	Warnings   *apperr.Warnings
	Stats      Stats
}

// ConfirmFunc is asked once, after planning, whether to write the plan.
type ConfirmFunc func(ctx context.Context, plan *Plan) (bool, error)

// Pipeline runs the import: read the catalog tree, scan the source folders,
// match them, resolve files to images and, once confirmed, write collections.
type Pipeline struct {
	reader      *catalog.Reader
	scanner     *source.Scanner
	resolver    *resolver.Resolver
	collections storage.CollectionStore
	exif        *source.ExifChecker
	opts        Options
	runID       string
}

// NewPipeline creates a new import pipeline.
func NewPipeline(
	reader *catalog.Reader,
	scanner *source.Scanner,
	res *resolver.Resolver,
	collections storage.CollectionStore,
	opts Options,
) *Pipeline {
	p := &Pipeline{
		reader:      reader,
		scanner:     scanner,
		resolver:    res,
		collections: collections,
		opts:        opts,
		runID:       uuid.NewString(),
	}
	if opts.CheckExifDates {
		p.exif = source.NewExifChecker()
	}
	return p
}

// RunID identifies this pipeline's run in logs and plan files.
func (p *Pipeline) RunID() string {
	return p.runID
}

// WithRunLogger returns ctx carrying the context logger tagged with the run id.
func (p *Pipeline) WithRunLogger(ctx context.Context) context.Context {
	return contextutil.WithLogger(ctx, contextutil.LoggerFromContext(ctx).With("run_id", p.runID))
}

// Plan builds the collection drafts without writing anything. Fatal
// conditions are returned as errors; everything else becomes a warning.
func (p *Pipeline) Plan(ctx context.Context) (*Plan, error) {
	ctx = p.WithRunLogger(ctx)
	logger := contextutil.LoggerFromContext(ctx)

	plan := &Plan{
		RunID:      p.runID,
		RootFolder: p.opts.RootFolder,
		Warnings:   &apperr.Warnings{},
	}

	subroots, err := p.reader.Load(ctx, p.opts.RootFolder)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	sources, err := p.scanner.Scan(ctx, plan.Warnings)
	if err != nil {
		return nil, fmt.Errorf("failed to scan source folders: %w", err)
	}

	if p.exif != nil {
		for _, folder := range sources {
			p.exif.Check(ctx, folder, plan.Warnings)
		}
	}

	pairs := matcher.Match(ctx, sources, subroots, plan.Warnings)

	plan.Drafts, err = p.resolver.ResolveAll(ctx, pairs, plan.Warnings)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve images: %w", err)
	}

	plan.Stats = newStats(len(subroots), len(sources), len(pairs), plan.Drafts, plan.Warnings)
	logger.InfoContext(ctx, "plan ready",
		"collections", plan.Stats.Collections, "images", plan.Stats.ResolvedImages, "warnings", plan.Stats.WarningCount)
	return plan, nil
}

// Commit writes the plan's drafts to the catalog and records the outcome in
// the plan's stats. Collections created before a failure stay committed.
func (p *Pipeline) Commit(ctx context.Context, plan *Plan) (*writer.Result, error) {
	ctx = p.WithRunLogger(ctx)
	logger := contextutil.LoggerFromContext(ctx)

	seed, err := writer.SeedChangeCounter(ctx, p.collections, p.opts.InitialChangeCounter, plan.Warnings)
	if err != nil {
		return nil, fmt.Errorf("failed to seed change counter: %w", err)
	}

	result, err := writer.New(p.collections, seed).Write(ctx, plan.Drafts)
	plan.Stats.recordWrite(result, plan.Warnings)
	if err != nil {
		return result, err
	}

	logger.InfoContext(ctx, "import completed",
		"collections_created", len(result.Created), "images_linked", result.ImagesLinked(),
		"next_change_counter", result.NextChangeCounter)
	return result, nil
}

// Run plans, asks confirm, and commits. A declined confirmation returns
// apperr.ErrAborted and writes nothing.
func (p *Pipeline) Run(ctx context.Context, confirm ConfirmFunc) (*Plan, *writer.Result, error) {
	plan, err := p.Plan(ctx)
	if err != nil {
		return nil, nil, err
	}

	ok, err := confirm(ctx, plan)
	if err != nil {
		return plan, nil, err
	}
	if !ok {
		return plan, nil, apperr.ErrAborted
	}

	result, err := p.Commit(ctx, plan)
	return plan, result, err
}
