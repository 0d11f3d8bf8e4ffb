package app

import (
	"sort"

	"github.com/nowakemc/reporting-project/models"
)

// AggregateByFolder groups documents by their parent path truncated to depth
// segments and sums sizes per group. Documents in different subfolders
// collapse into the same aggregate once truncated to a shallower depth.
// Documents with no parent path land in a synthetic root aggregate (empty
// FullPath, depth 0) instead of being dropped. depth <= 0 groups at full
// recorded depth. Results are sorted by FullPath.
func AggregateByFolder(records []models.DocumentRecord, depth int) []models.FolderAggregate {
	if len(records) == 0 {
		return nil
	}

	groups := make(map[string]*models.FolderAggregate)

	for _, rec := range records {
		segments := TruncateSegments(SplitFolderPath(rec.ParentPath), depth)
		key := JoinSegments(segments)

		agg, ok := groups[key]
		if !ok {
			agg = &models.FolderAggregate{
				FullPath: key,
				Depth:    len(segments),
			}
			groups[key] = agg
		}

		size := rec.Size
		if size < 0 {
			size = 0
		}
		agg.TotalSize += size
		agg.FileCount++
	}

	result := make([]models.FolderAggregate, 0, len(groups))
	for _, agg := range groups {
		if agg.FileCount > 0 {
			agg.AvgSize = float64(agg.TotalSize) / float64(agg.FileCount)
		}
		result = append(result, *agg)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].FullPath < result[j].FullPath
	})

	return result
}

// TopFoldersBySize returns the n largest aggregates by total size,
// descending. n <= 0 or n beyond the input returns everything.
func TopFoldersBySize(aggs []models.FolderAggregate, n int) []models.FolderAggregate {
	sorted := make([]models.FolderAggregate, len(aggs))
	copy(sorted, aggs)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].TotalSize != sorted[j].TotalSize {
			return sorted[i].TotalSize > sorted[j].TotalSize
		}
		return sorted[i].FullPath < sorted[j].FullPath
	})
	if n > 0 && n < len(sorted) {
		sorted = sorted[:n]
	}
	return sorted
}

// TopFoldersByCount returns the n aggregates holding the most documents,
// descending.
func TopFoldersByCount(aggs []models.FolderAggregate, n int) []models.FolderAggregate {
	sorted := make([]models.FolderAggregate, len(aggs))
	copy(sorted, aggs)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].FileCount != sorted[j].FileCount {
			return sorted[i].FileCount > sorted[j].FileCount
		}
		return sorted[i].FullPath < sorted[j].FullPath
	})
	if n > 0 && n < len(sorted) {
		sorted = sorted[:n]
	}
	return sorted
}
