package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"goldenhand-backend/internal/migrations"
)

func newMigrateCmd() *cobra.Command {
	var exportDir string
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending schema migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			if exportDir != "" {
				if err := migrations.Export(exportDir); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "exported migrations to %s\n", exportDir)
				return nil
			}
			conn, err := openDatabase(loadConfig(cmd))
			if err != nil {
				return err
			}
			defer conn.Close()
			pending, err := migrations.Pending(conn)
			if err != nil {
				return err
			}
			if err := migrations.Apply(conn); err != nil {
				return err
			}
			for _, name := range pending {
				fmt.Fprintf(cmd.OutOrStdout(), "applied %s\n", name)
			}
			if len(pending) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "schema is up to date")
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&exportDir, "export", "", "Write the migration files to this directory instead of applying them")
	return cmd
}
