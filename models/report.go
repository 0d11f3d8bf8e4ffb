package models

// FolderAggregate is one row of a folder report: all documents whose parent
// path, truncated to the requested depth, collapses to FullPath.
type FolderAggregate struct {
	FullPath  string
	Depth     int
	TotalSize int64
	FileCount int64
	AvgSize   float64
}

// HierarchyRow is a FolderAggregate reshaped for hierarchical chart inputs.
// Levels has a fixed length per report; Levels[i] holds path segment i+1 of
// FullPath or "" when the folder is shallower.
type HierarchyRow struct {
	FolderAggregate
	Levels []string
}
