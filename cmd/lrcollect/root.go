package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"lrcollect/internal/catalog"
	"lrcollect/internal/config"
	"lrcollect/internal/contextutil"
	"lrcollect/internal/migration"
	"lrcollect/internal/resolver"
	"lrcollect/internal/source"
	"lrcollect/internal/storage"
)

// app carries what the subcommands share once the root command has loaded
// configuration.
type app struct {
	cfg    *config.Config
	logger *slog.Logger
}

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lrcollect",
		Short: "Create catalog collections from dated source folders",
		Long: `lrcollect turns a tree of dated export folders into collections in a
photo catalog.

Each source folder ("2011 03 Trip") is matched to the catalog folder with the
same date key ("2011 03") below the configured root folder. Every image in the
source folder is resolved to its catalog image by file name, and one collection
named after the source folder is created per match.

Configuration comes from the environment (or a .env file); flags override it.`,
		SilenceUsage: true,
	}

	flags := cmd.PersistentFlags()
	flags.StringP("source", "s", "", "source root directory (SOURCE_DIR)")
	flags.StringP("catalog", "c", "", "catalog file (CATALOG_PATH)")
	flags.StringP("root-folder", "r", "", "catalog root folder name (ROOT_FOLDER)")
	flags.Int64("change-counter", 0, "first change counter value, 0 continues after the catalog's highest (INITIAL_CHANGE_COUNTER)")
	flags.String("log-level", "", "debug, info, warn or error (LOG_LEVEL)")
	flags.String("log-format", "", "text or json (LOG_FORMAT)")
	flags.Bool("check-exif", false, "warn about photos whose EXIF date disagrees with their folder (CHECK_EXIF_DATES)")

	cmd.AddCommand(newPlanCmd(a), newImportCmd(a))

	return cmd
}

// configure loads the environment configuration, applies flag overrides,
// validates the result and installs the logger. Commands that touch the
// catalog run it as their PreRunE.
func (a *app) configure(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := applyFlags(cmd, cfg); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	opts := &slog.HandlerOptions{Level: cfg.LogLevel}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(cmd.OutOrStdout(), opts)
	} else {
		handler = slog.NewTextHandler(cmd.OutOrStdout(), opts)
	}
	a.logger = slog.New(handler)
	slog.SetDefault(a.logger)
	slog.Debug("Logging configured", "level", cfg.LogLevel.String(), "format", cfg.LogFormat)

	return nil
}

func applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()

	if flags.Changed("source") {
		cfg.SourceDir, _ = flags.GetString("source")
	}
	if flags.Changed("catalog") {
		cfg.CatalogPath, _ = flags.GetString("catalog")
	}
	if flags.Changed("root-folder") {
		cfg.RootFolder, _ = flags.GetString("root-folder")
	}
	if flags.Changed("change-counter") {
		cfg.InitialChangeCounter, _ = flags.GetInt64("change-counter")
	}
	if flags.Changed("log-format") {
		cfg.LogFormat, _ = flags.GetString("log-format")
	}
	if flags.Changed("check-exif") {
		cfg.CheckExifDates, _ = flags.GetBool("check-exif")
	}
	if flags.Changed("log-level") {
		name, _ := flags.GetString("log-level")
		level, err := config.ParseLevel(name)
		if err != nil {
			return fmt.Errorf("invalid --log-level: %w", err)
		}
		cfg.LogLevel = level
	}
	return nil
}

// exitCode is the process status for a failed run.
func (a *app) exitCode() int {
	if a.cfg == nil {
		return 1
	}
	return a.cfg.FatalExitCode
}

// withLogger returns ctx carrying the configured logger.
func (a *app) withLogger(ctx context.Context) context.Context {
	return contextutil.WithLogger(ctx, a.logger)
}

func (a *app) openCatalog() (*sql.DB, error) {
	db, err := storage.New(a.cfg.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	a.logger.Info("Catalog opened", "path", a.cfg.CatalogPath)
	return db, nil
}

func (a *app) newPipeline(db *sql.DB) *migration.Pipeline {
	files := storage.NewFileRepo(db)
	return migration.NewPipeline(
		catalog.NewReader(storage.NewFolderRepo(db)),
		source.NewScanner(a.cfg.SourceDir),
		resolver.New(files, files),
		storage.NewCollectionRepo(db),
		migration.Options{
			RootFolder:           a.cfg.RootFolder,
			InitialChangeCounter: a.cfg.InitialChangeCounter,
			CheckExifDates:       a.cfg.CheckExifDates,
		},
	)
}
