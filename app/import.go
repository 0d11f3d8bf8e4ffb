package app

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/nowakemc/reporting-project/models"

	_ "modernc.org/sqlite"
)

// ImportSources loads every configured CSV source into the catalog. A source
// that was already imported is skipped unless force is set.
func ImportSources(cfg *models.AppConfig, force bool) error {
	absDBPath, err := filepath.Abs(cfg.Catalog.DBPath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path for catalog: %w", err)
	}

	db, err := sql.Open("sqlite", absDBPath)
	if err != nil {
		return fmt.Errorf("failed to open catalog: %w", err)
	}
	defer db.Close()

	if _, err := db.Exec(`PRAGMA journal_mode = WAL;`); err != nil {
		return fmt.Errorf("failed to set journal_mode = WAL: %w", err)
	}

	for _, src := range cfg.Catalog.Sources {
		lastImport, err := getMetadataTime(db, "last_import:"+src.Name)
		if err != nil {
			return fmt.Errorf("failed to get last import for source %s: %w", src.Name, err)
		}
		if !lastImport.IsZero() && !force {
			log.Printf("Skipping source %s, imported at %s", src.Name, lastImport.Format(time.RFC3339))
			continue
		}

		source := NewCSVSource(src.Name, src.CSVPath)
		log.Printf("Importing source %s using %s engine\n", src.Name, source.Name())

		if err := importSource(context.Background(), db, source); err != nil {
			return fmt.Errorf("failed to import source %s: %w", src.Name, err)
		}

		if err := setMetadata(db, "last_import:"+src.Name, time.Now().Format(time.RFC3339)); err != nil {
			return err
		}
	}

	return setMetadata(db, "last_import", time.Now().Format(time.RFC3339))
}

func importSource(ctx context.Context, db *sql.DB, source models.RecordSource) error {
	log.Println("Reading records...")

	count := 0
	batch := 10000
	var batchRecords []models.DocumentRecord

	for rec := range source.Records() {
		batchRecords = append(batchRecords, rec)
		count++

		if len(batchRecords) >= batch {
			if err := upsertDocumentsBatch(ctx, db, batchRecords); err != nil {
				return fmt.Errorf("failed to upsert batch at %d records: %w", count, err)
			}
			batchRecords = batchRecords[:0]
			log.Printf("Imported %d records", count)
		}
	}
	if len(batchRecords) > 0 {
		if err := upsertDocumentsBatch(ctx, db, batchRecords); err != nil {
			return fmt.Errorf("failed to upsert final batch: %w", err)
		}
	}

	// Imported rows invalidate any cached folder rollups.
	if _, err := db.Exec(`DELETE FROM folder_report`); err != nil {
		return err
	}

	log.Printf("Import completed. Total records: %d", count)
	return nil
}

func upsertDocumentsBatch(ctx context.Context, db *sql.DB, records []models.DocumentRecord) error {
	if len(records) == 0 {
		return nil
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			tx.Rollback()
		}
	}()

	stmt, err := tx.PrepareContext(ctx, `
        INSERT INTO documents(name, parent_path, ext, size, create_time, modify_time,
                              access_time, is_deleted, dup_key, classification, permission_set)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
        ON CONFLICT(parent_path, name) DO UPDATE SET
            ext=excluded.ext,
            size=excluded.size,
            create_time=excluded.create_time,
            modify_time=excluded.modify_time,
            access_time=excluded.access_time,
            is_deleted=excluded.is_deleted,
            dup_key=excluded.dup_key,
            classification=excluded.classification,
            permission_set=excluded.permission_set;
    `)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, rec := range records {
		_, err = stmt.ExecContext(ctx,
			rec.Name, rec.ParentPath, rec.Ext, rec.Size,
			unixOrZero(rec.CreateTime), unixOrZero(rec.ModifyTime), unixOrZero(rec.AccessTime),
			boolToInt(rec.IsDeleted), rec.DupKey, rec.Classification, rec.PermissionSet)
		if err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	committed = true

	return nil
}

func unixOrZero(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.Unix()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
