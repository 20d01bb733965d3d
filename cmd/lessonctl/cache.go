package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"goldenhand-backend/internal/lessons"
)

func newCacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the on-disk lesson cache",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Delete every cached lesson file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cache, err := openCache(cmd)
			if err != nil {
				return err
			}
			if err := cache.ClearCache(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "cleared %s\n", cache.Dir())
			return nil
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "invalidate <lessonId>",
		Short: "Drop one lesson from the cache",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cache, err := openCache(cmd)
			if err != nil {
				return err
			}
			if err := cache.InvalidateCache(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "invalidated %s\n", args[0])
			return nil
		},
	})
	return cmd
}

// openCache needs no database: clearing and invalidation only touch the
// cache directory.
func openCache(cmd *cobra.Command) (*lessons.CacheManager, error) {
	cfg := loadConfig(cmd)
	return lessons.NewCacheManager(nil, cfg.LessonCacheDir, cfg.LessonCacheExpiry, newLogger(cfg))
}
