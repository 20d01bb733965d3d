package main

import (
	"encoding/json"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"

	"goldenhand-backend/internal/agents"
	"goldenhand-backend/internal/config"
	"goldenhand-backend/internal/db"
	"goldenhand-backend/internal/lessons"
	"goldenhand-backend/internal/platform/logger"
	"goldenhand-backend/internal/store"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "lessonctl",
		Short:        "Operate the Golden Hand lesson pipeline",
		SilenceUsage: true,
	}
	root.PersistentFlags().String("driver", "", "Database driver, pgx or sqlite (overrides DATABASE_DRIVER)")
	root.PersistentFlags().String("dsn", "", "Database connection string (overrides DATABASE_URL)")
	root.PersistentFlags().String("cache-dir", "", "Lesson cache directory (overrides LESSON_CACHE_DIR)")

	root.AddCommand(newMigrateCmd())
	root.AddCommand(newLessonCmd())
	root.AddCommand(newCurriculumCmd())
	root.AddCommand(newCacheCmd())
	root.AddCommand(newTokenCmd())
	return root
}

// loadConfig applies the persistent flags over the environment.
func loadConfig(cmd *cobra.Command) config.Config {
	cfg := config.LoadPartial()
	if driver, _ := cmd.Flags().GetString("driver"); driver != "" {
		cfg.DatabaseDriver = driver
	}
	if dsn, _ := cmd.Flags().GetString("dsn"); dsn != "" {
		cfg.DatabaseURL = dsn
	}
	if dir, _ := cmd.Flags().GetString("cache-dir"); dir != "" {
		cfg.LessonCacheDir = dir
	}
	return cfg
}

func openDatabase(cfg config.Config) (*sqlx.DB, error) {
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("no database: set --dsn or DATABASE_URL")
	}
	return db.Open(cfg.DatabaseDriver, cfg.DatabaseURL)
}

func newLogger(cfg config.Config) *logger.Logger {
	log, err := logger.New(cfg.LogMode)
	if err != nil {
		return logger.Nop()
	}
	return log
}

type pipeline struct {
	db        *sqlx.DB
	generator *lessons.Generator
	cache     *lessons.CacheManager
	log       *logger.Logger
}

func (p *pipeline) Close() {
	p.log.Sync()
	_ = p.db.Close()
}

// openPipeline wires the generator and cache over the configured database.
func openPipeline(cmd *cobra.Command) (*pipeline, error) {
	cfg := loadConfig(cmd)
	conn, err := openDatabase(cfg)
	if err != nil {
		return nil, err
	}
	log := newLogger(cfg)
	st := store.New(conn)
	cache, err := lessons.NewCacheManager(st, cfg.LessonCacheDir, cfg.LessonCacheExpiry, log.With("component", "cache"))
	if err != nil {
		_ = conn.Close()
		return nil, err
	}
	integrator := agents.NewIntegrator(agents.NewFactory(agents.NewDefaultRegistry()))
	generator := lessons.NewGenerator(integrator, st, log.With("component", "generator"))
	generator.Cache = cache
	return &pipeline{db: conn, generator: generator, cache: cache, log: log}, nil
}

func printJSON(cmd *cobra.Command, value interface{}) error {
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(value)
}
