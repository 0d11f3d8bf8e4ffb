package app

import (
	"context"
	"testing"

	"github.com/nowakemc/reporting-project/models"
)

func TestImportSource(t *testing.T) {
	db, _, cleanup := setupTestDB(t)
	defer cleanup()

	path := writeTestCSV(t, `name,parentPath,size
a.txt,/x/y,100
b.txt,/x/y,200
c.txt,/x/z,50
`)

	if err := importSource(context.Background(), db, NewCSVSource("test", path)); err != nil {
		t.Fatalf("importSource failed: %v", err)
	}

	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM documents`).Scan(&count); err != nil {
		t.Fatalf("failed to count documents: %v", err)
	}
	if count != 3 {
		t.Errorf("expected 3 documents, got %d", count)
	}

	var size int64
	if err := db.QueryRow(`SELECT size FROM documents WHERE name = 'b.txt'`).Scan(&size); err != nil {
		t.Fatalf("failed to read document: %v", err)
	}
	if size != 200 {
		t.Errorf("expected size 200, got %d", size)
	}
}

func TestImportSource_UpsertOverwrites(t *testing.T) {
	db, _, cleanup := setupTestDB(t)
	defer cleanup()

	first := writeTestCSV(t, `name,parentPath,size
a.txt,/x,100
`)
	if err := importSource(context.Background(), db, NewCSVSource("test", first)); err != nil {
		t.Fatalf("first import failed: %v", err)
	}

	second := writeTestCSV(t, `name,parentPath,size
a.txt,/x,999
`)
	if err := importSource(context.Background(), db, NewCSVSource("test", second)); err != nil {
		t.Fatalf("second import failed: %v", err)
	}

	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM documents`).Scan(&count); err != nil {
		t.Fatalf("failed to count documents: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 document after re-import, got %d", count)
	}

	var size int64
	if err := db.QueryRow(`SELECT size FROM documents WHERE name = 'a.txt'`).Scan(&size); err != nil {
		t.Fatalf("failed to read document: %v", err)
	}
	if size != 999 {
		t.Errorf("expected updated size 999, got %d", size)
	}
}

func TestImportSource_InvalidatesReportCache(t *testing.T) {
	db, _, cleanup := setupTestDB(t)
	defer cleanup()

	if _, err := db.Exec(`INSERT INTO folder_report (path, depth, total_size, file_count) VALUES ('stale', 1, 1, 1)`); err != nil {
		t.Fatalf("failed to seed cache: %v", err)
	}

	path := writeTestCSV(t, `name,parentPath,size
a.txt,/x,100
`)
	if err := importSource(context.Background(), db, NewCSVSource("test", path)); err != nil {
		t.Fatalf("importSource failed: %v", err)
	}

	var cached int
	if err := db.QueryRow(`SELECT COUNT(*) FROM folder_report`).Scan(&cached); err != nil {
		t.Fatalf("failed to count cache rows: %v", err)
	}
	if cached != 0 {
		t.Errorf("expected cache cleared after import, got %d rows", cached)
	}
}

func TestImportSources_SkipAndForce(t *testing.T) {
	_, dbPath, cleanup := setupTestDB(t)
	defer cleanup()

	path := writeTestCSV(t, `name,parentPath,size
a.txt,/x,100
`)

	cfg := &models.AppConfig{
		Catalog: models.CatalogConfig{
			DBPath: dbPath,
			Sources: []models.SourceConfig{
				{Name: "test", CSVPath: path},
			},
		},
	}

	if err := ImportSources(cfg, false); err != nil {
		t.Fatalf("ImportSources failed: %v", err)
	}

	catalog := openTestCatalog(t, dbPath)
	defer catalog.Close()

	docs, err := catalog.LoadDocuments(nil)
	if err != nil {
		t.Fatalf("LoadDocuments failed: %v", err)
	}
	if len(docs) != 1 {
		t.Fatalf("expected 1 document, got %d", len(docs))
	}

	// Second run without force skips; with force re-imports.
	if err := ImportSources(cfg, false); err != nil {
		t.Fatalf("second ImportSources failed: %v", err)
	}
	if err := ImportSources(cfg, true); err != nil {
		t.Fatalf("forced ImportSources failed: %v", err)
	}

	docs, err = catalog.LoadDocuments(nil)
	if err != nil {
		t.Fatalf("LoadDocuments failed: %v", err)
	}
	if len(docs) != 1 {
		t.Errorf("expected 1 document after re-imports, got %d", len(docs))
	}
}
