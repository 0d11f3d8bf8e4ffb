package app

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nowakemc/reporting-project/models"
	_ "modernc.org/sqlite"
)

// DocumentFilter narrows which catalog rows a report is built from.
// Zero values mean "no constraint".
type DocumentFilter struct {
	PathPrefix     string
	MinSize        int64
	MaxSize        int64
	Exts           []string
	ModTimeFrom    int64 // unix timestamp
	ModTimeTo      int64 // unix timestamp
	IncludeDeleted bool
}

// Catalog is a handle on the document catalog database. Callers open one per
// request and close it when done.
type Catalog struct {
	db     *sql.DB
	dbPath string
}

func OpenCatalog(dbPath string) (*Catalog, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog %s: %w", dbPath, err)
	}
	db.Exec(`PRAGMA journal_mode = WAL`)
	db.Exec(`PRAGMA busy_timeout = 5000`)

	return &Catalog{db: db, dbPath: dbPath}, nil
}

// EnsureCatalog creates the catalog database and its schema if missing.
func EnsureCatalog(dbPath string) error {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return err
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	return RunMigrations(db)
}

func (c *Catalog) Close() {
	c.db.Close()
}

func (c *Catalog) DB() *sql.DB {
	return c.db
}

// LoadDocuments returns catalog rows matching the filter. A nil filter loads
// every non-deleted document.
func (c *Catalog) LoadDocuments(filter *DocumentFilter) ([]models.DocumentRecord, error) {
	var conditions []string
	var args []any

	if filter == nil || !filter.IncludeDeleted {
		conditions = append(conditions, "is_deleted = 0")
	}
	if filter != nil {
		if filter.PathPrefix != "" {
			conditions = append(conditions, "(parent_path = ? OR parent_path LIKE ?)")
			args = append(args, filter.PathPrefix, filter.PathPrefix+"/%")
		}
		if filter.MinSize > 0 {
			conditions = append(conditions, "size >= ?")
			args = append(args, filter.MinSize)
		}
		if filter.MaxSize > 0 {
			conditions = append(conditions, "size <= ?")
			args = append(args, filter.MaxSize)
		}
		if len(filter.Exts) > 0 {
			var placeholders []string
			for _, e := range filter.Exts {
				e = strings.TrimPrefix(e, ".")
				placeholders = append(placeholders, "?")
				args = append(args, "."+e)
			}
			conditions = append(conditions, "ext IN ("+strings.Join(placeholders, ", ")+")")
		}
		if filter.ModTimeFrom > 0 {
			conditions = append(conditions, "modify_time >= ?")
			args = append(args, filter.ModTimeFrom)
		}
		if filter.ModTimeTo > 0 {
			conditions = append(conditions, "modify_time <= ?")
			args = append(args, filter.ModTimeTo)
		}
	}

	query := `
		SELECT id, name, parent_path, ext, size, create_time, modify_time, access_time,
		       is_deleted, dup_key, classification, permission_set
		FROM documents`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY parent_path, name"

	rows, err := c.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []models.DocumentRecord
	for rows.Next() {
		rec, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, rec)
	}
	return result, rows.Err()
}

func (c *Catalog) GetDocumentByID(id int64) (*models.DocumentRecord, error) {
	rows, err := c.db.Query(`
		SELECT id, name, parent_path, ext, size, create_time, modify_time, access_time,
		       is_deleted, dup_key, classification, permission_set
		FROM documents
		WHERE id = ?
		LIMIT 1`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		rec, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		return &rec, nil
	}
	return nil, nil
}

func scanDocument(rows *sql.Rows) (models.DocumentRecord, error) {
	var rec models.DocumentRecord
	var create, modify, access int64
	var isDeleted int

	err := rows.Scan(&rec.ID, &rec.Name, &rec.ParentPath, &rec.Ext, &rec.Size,
		&create, &modify, &access, &isDeleted, &rec.DupKey,
		&rec.Classification, &rec.PermissionSet)
	if err != nil {
		return rec, err
	}

	if create > 0 {
		rec.CreateTime = time.Unix(create, 0)
	}
	if modify > 0 {
		rec.ModifyTime = time.Unix(modify, 0)
	}
	if access > 0 {
		rec.AccessTime = time.Unix(access, 0)
	}
	rec.IsDeleted = isDeleted != 0

	return rec, nil
}

func setMetadata(db *sql.DB, key, value string) error {
	_, err := db.Exec(`
        INSERT INTO metadata(key, value)
        VALUES (?, ?)
        ON CONFLICT(key) DO UPDATE SET value=excluded.value
    `, key, value)
	return err
}

func getMetadataTime(db *sql.DB, key string) (time.Time, error) {
	var ts string
	err := db.QueryRow(`SELECT value FROM metadata WHERE key = ?`, key).Scan(&ts)
	if err != nil {
		if err == sql.ErrNoRows {
			return time.Time{}, nil
		}
		return time.Time{}, err
	}

	t, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}
