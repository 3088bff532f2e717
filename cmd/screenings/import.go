package main

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/janekbaraniewski/screenings/internal/catalog"
	"github.com/janekbaraniewski/screenings/internal/config"
	"github.com/janekbaraniewski/screenings/internal/store"
)

func newImportCommand(cfg config.Config, src *sourceFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <listings.json>",
		Short: "Load a listings JSON export into the SQLite catalog.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dbPath := src.db
			if strings.TrimSpace(dbPath) == "" {
				dbPath = cfg.Dataset.SQLitePath
			}
			if strings.TrimSpace(dbPath) == "" {
				dbPath = filepath.Join(config.ConfigDir(), "screenings.db")
			}

			raws, err := catalog.LoadFile(args[0])
			if err != nil {
				return err
			}

			s, err := store.OpenStore(dbPath)
			if err != nil {
				return err
			}
			defer s.Close()

			out := cmd.OutOrStdout()
			prev, ok, err := s.LastImport(cmd.Context())
			if err != nil {
				return err
			}
			if ok {
				fmt.Fprintf(out, "replacing %d listings imported from %s at %s\n",
					prev.Records, prev.Source, prev.ImportedAt.Local().Format(time.DateTime))
			}

			if err := s.ReplaceRecords(cmd.Context(), args[0], raws); err != nil {
				return err
			}
			fmt.Fprintf(out, "imported %d listings into %s\n", len(raws), dbPath)
			return nil
		},
	}
	return cmd
}
