package app

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/nowakemc/reporting-project/models"
	_ "modernc.org/sqlite"
)

// setupTestDB creates a temporary catalog database for testing
func setupTestDB(t *testing.T) (*sql.DB, string, func()) {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "docscope_test_*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}

	dbPath := filepath.Join(tmpDir, "test.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		os.RemoveAll(tmpDir)
		t.Fatalf("failed to open db: %v", err)
	}

	if err := RunMigrations(db); err != nil {
		db.Close()
		os.RemoveAll(tmpDir)
		t.Fatalf("failed to run migrations: %v", err)
	}

	cleanup := func() {
		db.Close()
		os.RemoveAll(tmpDir)
	}

	return db, dbPath, cleanup
}

// insertTestDocument inserts a document record into the database
func insertTestDocument(t *testing.T, db *sql.DB, rec models.DocumentRecord) int64 {
	t.Helper()

	result, err := db.Exec(`
		INSERT INTO documents(name, parent_path, ext, size, create_time, modify_time,
		                      access_time, is_deleted, dup_key, classification, permission_set)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, rec.Name, rec.ParentPath, rec.Ext, rec.Size,
		unixOrZero(rec.CreateTime), unixOrZero(rec.ModifyTime), unixOrZero(rec.AccessTime),
		boolToInt(rec.IsDeleted), rec.DupKey, rec.Classification, rec.PermissionSet)
	if err != nil {
		t.Fatalf("failed to insert test document: %v", err)
	}

	id, _ := result.LastInsertId()
	return id
}

// createTestDocuments populates the catalog with a small document set
func createTestDocuments(t *testing.T, db *sql.DB) []models.DocumentRecord {
	t.Helper()

	now := time.Now()
	docs := []models.DocumentRecord{
		{
			Name:           "report.pdf",
			ParentPath:     "documents/reports",
			Ext:            ".pdf",
			Size:           1024 * 1024, // 1 MB
			CreateTime:     now.AddDate(0, -2, 0),
			ModifyTime:     now.AddDate(0, -1, 0),
			Classification: "internal",
			PermissionSet:  "rw-group",
		},
		{
			Name:           "notes.txt",
			ParentPath:     "documents/reports",
			Ext:            ".txt",
			Size:           512, // 512 B
			CreateTime:     now.AddDate(0, 0, -10),
			ModifyTime:     now.AddDate(0, 0, -7),
			Classification: "public",
			PermissionSet:  "rw-all",
		},
		{
			Name:           "photo.jpg",
			ParentPath:     "media/images",
			Ext:            ".jpg",
			Size:           5 * 1024 * 1024, // 5 MB
			CreateTime:     now.AddDate(-1, -1, 0),
			ModifyTime:     now.AddDate(-1, 0, 0),
			DupKey:         "abc123",
			Classification: "public",
			PermissionSet:  "rw-all",
		},
		{
			Name:           "photo_copy.jpg",
			ParentPath:     "media/backup",
			Ext:            ".jpg",
			Size:           5 * 1024 * 1024, // 5 MB duplicate of photo.jpg
			CreateTime:     now.AddDate(-1, 0, 0),
			ModifyTime:     now.AddDate(-1, 0, 0),
			DupKey:         "abc123",
			Classification: "public",
			PermissionSet:  "rw-all",
		},
		{
			Name:           "movie.mp4",
			ParentPath:     "media/video",
			Ext:            ".mp4",
			Size:           500 * 1024 * 1024, // 500 MB
			CreateTime:     now.AddDate(0, -7, 0),
			ModifyTime:     now.AddDate(0, -6, 0),
			Classification: "internal",
			PermissionSet:  "rw-group",
		},
		{
			Name:       "orphan.dat",
			ParentPath: "",
			Ext:        ".dat",
			Size:       2048,
			ModifyTime: now,
		},
		{
			Name:       "old_draft.doc",
			ParentPath: "documents/archive",
			Ext:        ".doc",
			Size:       4096,
			IsDeleted:  true,
			ModifyTime: now.AddDate(-2, 0, 0),
		},
	}

	for i := range docs {
		docs[i].ID = insertTestDocument(t, db, docs[i])
	}

	return docs
}

// openTestCatalog opens a Catalog over a test database
func openTestCatalog(t *testing.T, dbPath string) *Catalog {
	t.Helper()

	catalog, err := OpenCatalog(dbPath)
	if err != nil {
		t.Fatalf("failed to open catalog: %v", err)
	}

	return catalog
}
