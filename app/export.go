package app

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/nowakemc/reporting-project/models"
)

// ExportTimestamp formats the current time for default export filenames.
func ExportTimestamp() string {
	return time.Now().Format("20060102_150405")
}

// ExportFilename builds a default download name like folder_report_20240131_133700.csv.
func ExportFilename(format string) string {
	return fmt.Sprintf("folder_report_%s.%s", ExportTimestamp(), format)
}

// WriteReportCSV writes hierarchy rows as CSV with Level columns first, then
// the aggregate columns, matching the shape chart consumers expect.
func WriteReportCSV(w io.Writer, rows []models.HierarchyRow) error {
	cw := csv.NewWriter(w)

	maxLevels := 0
	if len(rows) > 0 {
		maxLevels = len(rows[0].Levels)
	}

	header := make([]string, 0, maxLevels+5)
	for i := 1; i <= maxLevels; i++ {
		header = append(header, fmt.Sprintf("Level %d", i))
	}
	header = append(header, "full_path", "depth", "total_size", "file_count", "avg_size")
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, row := range rows {
		record := make([]string, 0, len(header))
		record = append(record, row.Levels...)
		record = append(record,
			row.FullPath,
			strconv.Itoa(row.Depth),
			strconv.FormatInt(row.TotalSize, 10),
			strconv.FormatInt(row.FileCount, 10),
			strconv.FormatFloat(row.AvgSize, 'f', 2, 64),
		)
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

type reportRecord struct {
	FullPath  string   `json:"full_path"`
	Depth     int      `json:"depth"`
	TotalSize int64    `json:"total_size"`
	FileCount int64    `json:"file_count"`
	AvgSize   float64  `json:"avg_size"`
	Levels    []string `json:"levels"`
}

// WriteReportJSON writes hierarchy rows as a JSON array of records.
func WriteReportJSON(w io.Writer, rows []models.HierarchyRow) error {
	records := make([]reportRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, reportRecord{
			FullPath:  row.FullPath,
			Depth:     row.Depth,
			TotalSize: row.TotalSize,
			FileCount: row.FileCount,
			AvgSize:   row.AvgSize,
			Levels:    row.Levels,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}
