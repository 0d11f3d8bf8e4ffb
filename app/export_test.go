package app

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/nowakemc/reporting-project/models"
)

func sampleRows() []models.HierarchyRow {
	aggs := AggregateByFolder([]models.DocumentRecord{
		{Name: "a.txt", ParentPath: "/x/y", Size: 100},
		{Name: "b.txt", ParentPath: "/x/y", Size: 200},
		{Name: "c.txt", ParentPath: "/x/z", Size: 50},
	}, 2)
	return LevelRows(aggs, 3)
}

func TestWriteReportCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteReportCSV(&buf, sampleRows()); err != nil {
		t.Fatalf("WriteReportCSV failed: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}

	if len(records) != 3 {
		t.Fatalf("expected header + 2 rows, got %d records", len(records))
	}

	header := records[0]
	want := []string{"Level 1", "Level 2", "Level 3", "full_path", "depth", "total_size", "file_count", "avg_size"}
	if strings.Join(header, "|") != strings.Join(want, "|") {
		t.Errorf("unexpected header: %v", header)
	}

	// Aggregates are sorted by path, so x/y comes first.
	row := records[1]
	if row[0] != "x" || row[1] != "y" || row[2] != "" {
		t.Errorf("unexpected level columns: %v", row[:3])
	}
	if row[3] != "x/y" || row[5] != "300" || row[6] != "2" || row[7] != "150.00" {
		t.Errorf("unexpected aggregate columns: %v", row[3:])
	}
}

func TestWriteReportCSV_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteReportCSV(&buf, nil); err != nil {
		t.Fatalf("WriteReportCSV failed on empty input: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}
	if len(records) != 1 {
		t.Errorf("expected header only, got %d records", len(records))
	}
}

func TestWriteReportJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteReportJSON(&buf, sampleRows()); err != nil {
		t.Fatalf("WriteReportJSON failed: %v", err)
	}

	var records []map[string]any
	if err := json.Unmarshal(buf.Bytes(), &records); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}

	first := records[0]
	if first["full_path"] != "x/y" {
		t.Errorf("expected full_path x/y, got %v", first["full_path"])
	}
	if first["total_size"].(float64) != 300 {
		t.Errorf("expected total_size 300, got %v", first["total_size"])
	}
	levels, ok := first["levels"].([]any)
	if !ok || len(levels) != 3 {
		t.Errorf("expected 3 levels, got %v", first["levels"])
	}
}

func TestExportFilename(t *testing.T) {
	name := ExportFilename("csv")
	if !strings.HasPrefix(name, "folder_report_") || !strings.HasSuffix(name, ".csv") {
		t.Errorf("unexpected filename: %s", name)
	}
}
