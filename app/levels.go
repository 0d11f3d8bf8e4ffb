package app

import "github.com/nowakemc/reporting-project/models"

// LevelRows reshapes folder aggregates into fixed-width hierarchy rows for
// chart inputs that expect a list of level columns (sunburst, treemap).
// Levels[i] carries path segment i+1 of the aggregate, or "" when the folder
// is shallower. maxLevels <= 0 falls back to the deepest aggregate present.
// The reshape is idempotent: leveling already-leveled data with the same
// maxLevels reproduces identical columns.
func LevelRows(aggs []models.FolderAggregate, maxLevels int) []models.HierarchyRow {
	if len(aggs) == 0 {
		return nil
	}

	if maxLevels <= 0 {
		for _, agg := range aggs {
			if agg.Depth > maxLevels {
				maxLevels = agg.Depth
			}
		}
	}

	rows := make([]models.HierarchyRow, 0, len(aggs))
	for _, agg := range aggs {
		segments := SplitFolderPath(agg.FullPath)
		levels := make([]string, maxLevels)
		for i := 0; i < maxLevels && i < len(segments); i++ {
			levels[i] = segments[i]
		}
		rows = append(rows, models.HierarchyRow{
			FolderAggregate: agg,
			Levels:          levels,
		})
	}
	return rows
}

// MaxDepth returns the deepest parent path in the record set, used to bound
// depth selectors in the UI.
func MaxDepth(records []models.DocumentRecord) int {
	max := 0
	for _, rec := range records {
		if d := len(SplitFolderPath(rec.ParentPath)); d > max {
			max = d
		}
	}
	return max
}
