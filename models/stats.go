package models

import "time"

type ExtensionStats struct {
	Extension string
	Count     int64
	Size      int64
}

type CategoryStats struct {
	Category string
	Count    int64
	Size     int64
}

type SizeRange struct {
	Label string
	Count int64
	Size  int64
}

type AgeRange struct {
	Label string
	Count int64
}

type YearStats struct {
	Year  int
	Count int64
	Size  int64
}

type LabelCount struct {
	Label string
	Count int64
}

// DuplicateGroup is a set of documents sharing the same content hash.
// WastedSize is the bytes spent on copies beyond the first.
type DuplicateGroup struct {
	DupKey     string
	Count      int64
	TotalSize  int64
	WastedSize int64
	SamplePath string
}

type CatalogStats struct {
	TotalDocs        int64
	TotalSize        int64
	AvgSize          int64
	DeletedCount     int64
	LastImport       time.Time
	OldestDoc        time.Time
	NewestDoc        time.Time
	LargestDocs      []DocumentRecord
	RecentDocs       []DocumentRecord
	TopExtensions    []ExtensionStats
	TopExtBySize     []ExtensionStats
	Categories       []CategoryStats
	SizeDistribution []SizeRange
	AgeDistribution  []AgeRange
	YearDistribution []YearStats
	Classifications  []LabelCount
	Permissions      []LabelCount
	DuplicateGroups  []DuplicateGroup
	DuplicateWaste   int64
}
