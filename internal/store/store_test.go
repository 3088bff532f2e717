package store

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/janekbaraniewski/screenings/internal/catalog"
	_ "github.com/mattn/go-sqlite3"
)

func TestStoreInit_CreatesTables(t *testing.T) {
	db, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), "catalog.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer db.Close()

	store := NewStore(db)
	if err := store.Init(context.Background()); err != nil {
		t.Fatalf("Init: %v", err)
	}

	for _, table := range []string{"movies", "imports"} {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
		if err != nil {
			t.Fatalf("table %s missing: %v", table, err)
		}
	}
}

func TestStoreReplaceRecords_RoundTripsFields(t *testing.T) {
	store, err := OpenStore(filepath.Join(t.TempDir(), "sub", "catalog.db"))
	if err != nil {
		t.Fatalf("OpenStore: %v", err)
	}
	defer store.Close()
	store.now = func() time.Time {
		return time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	}

	ctx := context.Background()
	first := []catalog.RawRecord{
		{ID: catalog.F("z"), Title: catalog.F("Umut"), When: catalog.F("03/2023"), Duration: catalog.F("100")},
		{ID: catalog.F("a"), Title: catalog.F("Yol"), Director: catalog.F("")},
	}
	if err := store.ReplaceRecords(ctx, "first.json", first); err != nil {
		t.Fatalf("ReplaceRecords: %v", err)
	}

	got, err := store.RawRecords(ctx)
	if err != nil {
		t.Fatalf("RawRecords: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].ID.String() != "z" || got[1].ID.String() != "a" {
		t.Errorf("order = %q, %q, want source order", got[0].ID.String(), got[1].ID.String())
	}
	if got[0].When.String() != "03/2023" {
		t.Errorf("when = %q", got[0].When.String())
	}
	if got[1].When.IsSet() {
		t.Error("absent field came back set")
	}
	if !got[1].Director.IsSet() || got[1].Director.String() != "" {
		t.Error("empty director should stay present and empty")
	}

	if err := store.ReplaceRecords(ctx, "second.json", first[:1]); err != nil {
		t.Fatalf("ReplaceRecords: %v", err)
	}
	got, err = store.RawRecords(ctx)
	if err != nil {
		t.Fatalf("RawRecords: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("len after replace = %d, want 1", len(got))
	}

	imp, ok, err := store.LastImport(ctx)
	if err != nil || !ok {
		t.Fatalf("LastImport = %+v, %v, %v", imp, ok, err)
	}
	if imp.Source != "second.json" || imp.Records != 1 {
		t.Errorf("LastImport = %+v", imp)
	}
}

func TestStoreLastImport_Empty(t *testing.T) {
	store, err := OpenStore(filepath.Join(t.TempDir(), "catalog.db"))
	if err != nil {
		t.Fatalf("OpenStore: %v", err)
	}
	defer store.Close()

	_, ok, err := store.LastImport(context.Background())
	if err != nil {
		t.Fatalf("LastImport: %v", err)
	}
	if ok {
		t.Fatal("expected no import in a fresh store")
	}
}
