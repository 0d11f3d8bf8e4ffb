package app

import (
	"database/sql"
	"log"
	"time"

	"github.com/nowakemc/reporting-project/models"

	_ "modernc.org/sqlite"
)

// ReportOptions selects how a folder report is built. Depth 0 groups at full
// recorded depth; MaxLevels 0 sizes the level columns to the deepest folder
// present.
type ReportOptions struct {
	Depth     int
	MaxLevels int
	Top       int
	Filter    *DocumentFilter
}

// Report is the rendered output of the folder pipeline for one request.
type Report struct {
	Depth      int
	MaxLevels  int
	Aggregates []models.FolderAggregate
	Rows       []models.HierarchyRow
	TopBySize  []models.FolderAggregate
	TopByCount []models.FolderAggregate
}

// FolderReport runs the full pipeline: load matching documents, aggregate by
// truncated folder prefix, reshape into level columns. Unfiltered rollups are
// cached per depth in the folder_report table and served from there until the
// next import invalidates them.
func (c *Catalog) FolderReport(opts ReportOptions) (*Report, error) {
	var aggs []models.FolderAggregate

	if opts.Filter == nil {
		cached, err := c.cachedAggregates(opts.Depth)
		if err != nil {
			return nil, err
		}
		aggs = cached
	}

	if aggs == nil {
		records, err := c.LoadDocuments(opts.Filter)
		if err != nil {
			return nil, err
		}
		aggs = AggregateByFolder(records, opts.Depth)

		if opts.Filter == nil && len(aggs) > 0 {
			if err := c.storeAggregates(opts.Depth, aggs); err != nil {
				log.Printf("Unable to cache folder report for depth %d: %v", opts.Depth, err)
			}
		}
	}

	rows := LevelRows(aggs, opts.MaxLevels)
	maxLevels := opts.MaxLevels
	if maxLevels <= 0 && len(rows) > 0 {
		maxLevels = len(rows[0].Levels)
	}

	return &Report{
		Depth:      opts.Depth,
		MaxLevels:  maxLevels,
		Aggregates: aggs,
		Rows:       rows,
		TopBySize:  TopFoldersBySize(aggs, opts.Top),
		TopByCount: TopFoldersByCount(aggs, opts.Top),
	}, nil
}

func (c *Catalog) cachedAggregates(depth int) ([]models.FolderAggregate, error) {
	rows, err := c.db.Query(`
		SELECT path, total_size, file_count
		FROM folder_report
		WHERE depth = ?
		ORDER BY path`, depth)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var aggs []models.FolderAggregate
	for rows.Next() {
		var agg models.FolderAggregate
		if err := rows.Scan(&agg.FullPath, &agg.TotalSize, &agg.FileCount); err != nil {
			return nil, err
		}
		agg.Depth = len(SplitFolderPath(agg.FullPath))
		if agg.FileCount > 0 {
			agg.AvgSize = float64(agg.TotalSize) / float64(agg.FileCount)
		}
		aggs = append(aggs, agg)
	}
	return aggs, rows.Err()
}

func (c *Catalog) storeAggregates(depth int, aggs []models.FolderAggregate) error {
	tx, err := c.db.Begin()
	if err != nil {
		return err
	}

	stmt, err := tx.Prepare(`INSERT OR REPLACE INTO folder_report (path, depth, total_size, file_count) VALUES (?, ?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()

	for _, agg := range aggs {
		if _, err := stmt.Exec(agg.FullPath, depth, agg.TotalSize, agg.FileCount); err != nil {
			tx.Rollback()
			return err
		}
	}

	return tx.Commit()
}

// PrecomputeFolderReports builds the per-depth rollup cache after an import
// completes. It opens a separate connection so a running web server is not
// blocked, committing in batches with short pauses in between.
func PrecomputeFolderReports(dbPath string, maxDepth int) error {
	log.Printf("Starting folder report precompute for %s", dbPath)

	db, err := sql.Open("sqlite", dbPath+"?_busy_timeout=5000")
	if err != nil {
		return err
	}
	defer db.Close()

	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		return err
	}

	catalog := &Catalog{db: db, dbPath: dbPath}
	records, err := catalog.LoadDocuments(nil)
	if err != nil {
		return err
	}

	if maxDepth <= 0 {
		maxDepth = MaxDepth(records)
	}

	const batchSize = 500
	processed := 0

	for depth := 1; depth <= maxDepth; depth++ {
		aggs := AggregateByFolder(records, depth)

		for start := 0; start < len(aggs); start += batchSize {
			end := start + batchSize
			if end > len(aggs) {
				end = len(aggs)
			}
			if err := catalog.storeAggregates(depth, aggs[start:end]); err != nil {
				return err
			}
			processed += end - start

			// Small delay to allow web server concurrent access.
			time.Sleep(10 * time.Millisecond)
		}
	}

	log.Printf("Folder report precompute completed for %s: %d rollups stored", dbPath, processed)
	return nil
}
