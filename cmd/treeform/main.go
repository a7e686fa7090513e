package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/treeform-dev/treeform/internal/config"
	"github.com/treeform-dev/treeform/internal/database"
	"github.com/treeform-dev/treeform/internal/database/repository"
	"github.com/treeform-dev/treeform/internal/tui"
	"github.com/treeform-dev/treeform/recordui"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		log.Fatalf("mkdir db dir: %v", err)
	}

	if err := database.RunMigrations(cfg.Database.Path, "internal/database/migrations"); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	if err := database.SeedDefaults(ctx, db); err != nil {
		log.Fatalf("seed defaults: %v", err)
	}

	app, err := tui.New(ctx, cfg, recordStore{repo: repository.NewRecordRepo(db)})
	if err != nil {
		log.Fatalf("assemble tree: %v", err)
	}

	var opts []tea.ProgramOption
	if cfg.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	if _, err := tea.NewProgram(app, opts...).Run(); err != nil {
		fmt.Printf("error: %v\n", err)
	}
}

// recordStore adapts the repository rows to the node payload types, so the
// tree never sees database timestamps.
type recordStore struct {
	repo *repository.RecordRepo
}

func (s recordStore) List(ctx context.Context) (recordui.Records, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make(recordui.Records, 0, len(rows))
	for _, row := range rows {
		out = append(out, recordui.Record{ID: row.ID, Name: row.Name, Surname: row.Surname})
	}
	return out, nil
}

func (s recordStore) Upsert(ctx context.Context, rec recordui.Record) error {
	return s.repo.Upsert(ctx, repository.Record{ID: rec.ID, Name: rec.Name, Surname: rec.Surname})
}

func (s recordStore) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
