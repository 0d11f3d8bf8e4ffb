package app

import (
	"database/sql"
	"sort"
	"time"

	"github.com/nowakemc/reporting-project/models"
)

// fileCategories buckets extensions into broad content categories for the
// overview dashboard. Uncategorized extensions land in "other".
var fileCategories = map[string][]string{
	"documents":     {".doc", ".docx", ".pdf", ".txt", ".rtf", ".odt", ".md", ".xps"},
	"spreadsheets":  {".xls", ".xlsx", ".csv", ".ods", ".tsv"},
	"presentations": {".ppt", ".pptx", ".odp", ".key"},
	"images":        {".jpg", ".jpeg", ".png", ".gif", ".bmp", ".tiff", ".webp", ".svg", ".heic"},
	"audio":         {".mp3", ".wav", ".aac", ".ogg", ".flac", ".wma", ".m4a"},
	"video":         {".mp4", ".avi", ".mov", ".wmv", ".flv", ".mkv", ".webm", ".m4v"},
	"archives":      {".zip", ".rar", ".7z", ".tar", ".gz", ".bz2", ".xz"},
	"code":          {".py", ".js", ".html", ".css", ".java", ".cpp", ".c", ".h", ".go", ".php", ".rb", ".rs", ".ts"},
	"data":          {".json", ".xml", ".yaml", ".yml", ".toml", ".sql", ".db", ".sqlite"},
	"executables":   {".exe", ".app", ".msi", ".dll", ".so", ".bin", ".dmg"},
}

var sizeRanges = []struct {
	label   string
	minSize int64
	maxSize int64
}{
	{"< 1 KB", 0, 1024},
	{"1 KB - 100 KB", 1024, 100 * 1024},
	{"100 KB - 1 MB", 100 * 1024, 1024 * 1024},
	{"1 MB - 10 MB", 1024 * 1024, 10 * 1024 * 1024},
	{"10 MB - 100 MB", 10 * 1024 * 1024, 100 * 1024 * 1024},
	{"100 MB - 1 GB", 100 * 1024 * 1024, 1024 * 1024 * 1024},
	{"> 1 GB", 1024 * 1024 * 1024, -1},
}

var ageRanges = []struct {
	label   string
	minDays int64
	maxDays int64
}{
	{"Last 30 Days", 0, 30},
	{"30-90 Days", 30, 90},
	{"3-6 Months", 90, 180},
	{"6-12 Months", 180, 365},
	{"1-2 Years", 365, 730},
	{"Over 2 Years", 730, -1},
}

func (c *Catalog) GetCatalogStats() (*models.CatalogStats, error) {
	stats := &models.CatalogStats{}
	db := c.db

	err := db.QueryRow(`SELECT COUNT(*) FROM documents WHERE is_deleted = 0`).Scan(&stats.TotalDocs)
	if err != nil {
		return nil, err
	}

	err = db.QueryRow(`SELECT COUNT(*) FROM documents WHERE is_deleted = 1`).Scan(&stats.DeletedCount)
	if err != nil {
		return nil, err
	}

	err = db.QueryRow(`SELECT COALESCE(SUM(size), 0) FROM documents WHERE is_deleted = 0`).Scan(&stats.TotalSize)
	if err != nil {
		return nil, err
	}

	if stats.TotalDocs > 0 {
		stats.AvgSize = stats.TotalSize / stats.TotalDocs
	}

	// Oldest and newest document by modification time
	var oldestMod, newestMod int64
	err = db.QueryRow(`SELECT COALESCE(MIN(modify_time), 0) FROM documents WHERE is_deleted = 0 AND modify_time > 0`).Scan(&oldestMod)
	if err == nil && oldestMod > 0 {
		stats.OldestDoc = time.Unix(oldestMod, 0)
	}

	err = db.QueryRow(`SELECT COALESCE(MAX(modify_time), 0) FROM documents WHERE is_deleted = 0`).Scan(&newestMod)
	if err == nil && newestMod > 0 {
		stats.NewestDoc = time.Unix(newestMod, 0)
	}

	stats.LastImport, _ = getMetadataTime(db, "last_import")

	// Top 10 largest documents
	rows, err := db.Query(`
		SELECT id, name, parent_path, ext, size, create_time, modify_time, access_time,
		       is_deleted, dup_key, classification, permission_set
		FROM documents
		WHERE is_deleted = 0
		ORDER BY size DESC
		LIMIT 10
	`)
	if err == nil {
		for rows.Next() {
			if rec, err := scanDocument(rows); err == nil {
				stats.LargestDocs = append(stats.LargestDocs, rec)
			}
		}
		rows.Close()
	}

	// Recently modified documents
	rows, err = db.Query(`
		SELECT id, name, parent_path, ext, size, create_time, modify_time, access_time,
		       is_deleted, dup_key, classification, permission_set
		FROM documents
		WHERE is_deleted = 0
		ORDER BY modify_time DESC
		LIMIT 10
	`)
	if err == nil {
		for rows.Next() {
			if rec, err := scanDocument(rows); err == nil {
				stats.RecentDocs = append(stats.RecentDocs, rec)
			}
		}
		rows.Close()
	}

	// Extension rollup feeds three views: top by count, top by size and the
	// category distribution.
	var allExts []models.ExtensionStats
	rows, err = db.Query(`
		SELECT ext, COUNT(*) as cnt, COALESCE(SUM(size), 0) as total_size
		FROM documents
		WHERE is_deleted = 0 AND ext != ''
		GROUP BY ext
	`)
	if err == nil {
		for rows.Next() {
			var ext models.ExtensionStats
			if err := rows.Scan(&ext.Extension, &ext.Count, &ext.Size); err == nil {
				allExts = append(allExts, ext)
			}
		}
		rows.Close()
	}

	stats.TopExtensions = topExtensions(allExts, 15, func(a, b models.ExtensionStats) bool {
		return a.Count > b.Count
	})
	stats.TopExtBySize = topExtensions(allExts, 15, func(a, b models.ExtensionStats) bool {
		return a.Size > b.Size
	})
	stats.Categories = categorize(allExts)

	// Size distribution
	for _, sr := range sizeRanges {
		var count, size int64
		var err error
		if sr.maxSize == -1 {
			err = db.QueryRow(`SELECT COUNT(*), COALESCE(SUM(size), 0) FROM documents WHERE is_deleted = 0 AND size >= ?`, sr.minSize).Scan(&count, &size)
		} else {
			err = db.QueryRow(`SELECT COUNT(*), COALESCE(SUM(size), 0) FROM documents WHERE is_deleted = 0 AND size >= ? AND size < ?`, sr.minSize, sr.maxSize).Scan(&count, &size)
		}
		if err == nil {
			stats.SizeDistribution = append(stats.SizeDistribution, models.SizeRange{
				Label: sr.label,
				Count: count,
				Size:  size,
			})
		}
	}

	// Age distribution by creation time
	now := time.Now().Unix()
	for _, ar := range ageRanges {
		newest := now - ar.minDays*86400
		var count int64
		var err error
		if ar.maxDays == -1 {
			err = db.QueryRow(`SELECT COUNT(*) FROM documents WHERE is_deleted = 0 AND create_time > 0 AND create_time <= ?`, newest).Scan(&count)
		} else {
			oldest := now - ar.maxDays*86400
			err = db.QueryRow(`SELECT COUNT(*) FROM documents WHERE is_deleted = 0 AND create_time > ? AND create_time <= ?`, oldest, newest).Scan(&count)
		}
		if err == nil {
			stats.AgeDistribution = append(stats.AgeDistribution, models.AgeRange{
				Label: ar.label,
				Count: count,
			})
		}
	}

	// Year distribution
	rows, err = db.Query(`
		SELECT
			CAST(strftime('%Y', modify_time, 'unixepoch') AS INTEGER) as year,
			COUNT(*) as cnt,
			COALESCE(SUM(size), 0) as total_size
		FROM documents
		WHERE is_deleted = 0 AND modify_time > 0
		GROUP BY year
		ORDER BY year DESC
		LIMIT 10
	`)
	if err == nil {
		for rows.Next() {
			var ys models.YearStats
			if err := rows.Scan(&ys.Year, &ys.Count, &ys.Size); err == nil {
				stats.YearDistribution = append(stats.YearDistribution, ys)
			}
		}
		rows.Close()
	}

	stats.Classifications = labelCounts(db, "classification")
	stats.Permissions = labelCounts(db, "permission_set")

	// Duplicate groups by content hash
	rows, err = db.Query(`
		SELECT dup_key, COUNT(*) as cnt, COALESCE(SUM(size), 0) as total_size,
		       MIN(parent_path || '/' || name) as sample
		FROM documents
		WHERE is_deleted = 0 AND dup_key != ''
		GROUP BY dup_key
		HAVING cnt > 1
		ORDER BY total_size DESC
		LIMIT 20
	`)
	if err == nil {
		for rows.Next() {
			var dg models.DuplicateGroup
			if err := rows.Scan(&dg.DupKey, &dg.Count, &dg.TotalSize, &dg.SamplePath); err == nil {
				if dg.Count > 0 {
					dg.WastedSize = dg.TotalSize - dg.TotalSize/dg.Count
				}
				stats.DuplicateGroups = append(stats.DuplicateGroups, dg)
			}
		}
		rows.Close()
	}
	for _, dg := range stats.DuplicateGroups {
		stats.DuplicateWaste += dg.WastedSize
	}

	return stats, nil
}

func topExtensions(exts []models.ExtensionStats, n int, less func(a, b models.ExtensionStats) bool) []models.ExtensionStats {
	sorted := make([]models.ExtensionStats, len(exts))
	copy(sorted, exts)
	sort.Slice(sorted, func(i, j int) bool { return less(sorted[i], sorted[j]) })
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

func categorize(exts []models.ExtensionStats) []models.CategoryStats {
	extToCategory := make(map[string]string)
	for category, members := range fileCategories {
		for _, ext := range members {
			extToCategory[ext] = category
		}
	}

	byCategory := make(map[string]*models.CategoryStats)
	for _, ext := range exts {
		category, ok := extToCategory[ext.Extension]
		if !ok {
			category = "other"
		}
		cs, ok := byCategory[category]
		if !ok {
			cs = &models.CategoryStats{Category: category}
			byCategory[category] = cs
		}
		cs.Count += ext.Count
		cs.Size += ext.Size
	}

	var result []models.CategoryStats
	for _, cs := range byCategory {
		result = append(result, *cs)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Size != result[j].Size {
			return result[i].Size > result[j].Size
		}
		return result[i].Category < result[j].Category
	})
	return result
}

// labelCounts rolls up a label column (classification or permission_set)
// into per-value counts. column is one of a fixed caller-supplied set, never
// user input.
func labelCounts(db *sql.DB, column string) []models.LabelCount {
	rows, err := db.Query(`
		SELECT ` + column + `, COUNT(*) as cnt
		FROM documents
		WHERE is_deleted = 0 AND ` + column + ` != ''
		GROUP BY ` + column + `
		ORDER BY cnt DESC
		LIMIT 15
	`)
	if err != nil {
		return nil
	}
	defer rows.Close()

	var result []models.LabelCount
	for rows.Next() {
		var lc models.LabelCount
		if err := rows.Scan(&lc.Label, &lc.Count); err == nil {
			result = append(result, lc)
		}
	}
	return result
}
