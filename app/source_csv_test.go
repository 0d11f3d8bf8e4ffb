package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeTestCSV(t *testing.T, content string) string {
	t.Helper()

	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "export.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test csv: %v", err)
	}
	return path
}

func TestCSVSource_Records(t *testing.T) {
	path := writeTestCSV(t, `name,parentPath,size,modifyTime,classification
a.txt,/x/y,100,1706695200,internal
b.txt,/x/y,200,1706695200,public
c.txt,/x/z,50,1706695200,
`)

	source := NewCSVSource("test", path)
	if source.Name() != "csv:test" {
		t.Errorf("unexpected source name: %s", source.Name())
	}

	var count int
	for rec := range source.Records() {
		count++
		if rec.Name == "a.txt" {
			if rec.ParentPath != "/x/y" || rec.Size != 100 {
				t.Errorf("unexpected record: %+v", rec)
			}
			if rec.Ext != ".txt" {
				t.Errorf("expected extension derived from name, got %q", rec.Ext)
			}
			if rec.Classification != "internal" {
				t.Errorf("expected classification internal, got %q", rec.Classification)
			}
			if rec.ModifyTime.Unix() != 1706695200 {
				t.Errorf("unexpected modify time: %v", rec.ModifyTime)
			}
		}
	}
	if count != 3 {
		t.Errorf("expected 3 records, got %d", count)
	}
}

func TestCSVSource_LenientCoercion(t *testing.T) {
	path := writeTestCSV(t, `name,parentPath,size,isDeleted,createTime
bad_size.txt,/x,not-a-number,false,
negative.txt,/x,-10,0,
deleted.txt,/x,5,true,2024-01-31T12:00:00Z
millis.txt,/x,5,no,1706695200000
,/x,10,false,
`)

	var records []struct {
		name    string
		size    int64
		deleted bool
		created time.Time
	}
	for rec := range NewCSVSource("test", path).Records() {
		records = append(records, struct {
			name    string
			size    int64
			deleted bool
			created time.Time
		}{rec.Name, rec.Size, rec.IsDeleted, rec.CreateTime})
	}

	// The nameless row is dropped, everything else degrades to defaults.
	if len(records) != 4 {
		t.Fatalf("expected 4 records, got %d", len(records))
	}

	if records[0].size != 0 {
		t.Errorf("non-numeric size should coerce to 0, got %d", records[0].size)
	}
	if records[1].size != 0 {
		t.Errorf("negative size should coerce to 0, got %d", records[1].size)
	}
	if !records[2].deleted {
		t.Error("expected deleted flag to parse")
	}
	if records[2].created.IsZero() {
		t.Error("expected RFC3339 create time to parse")
	}
	if records[3].created.Unix() != 1706695200 {
		t.Errorf("expected millisecond timestamp to parse, got %v", records[3].created)
	}
}

func TestCSVSource_AlternateHeaders(t *testing.T) {
	path := writeTestCSV(t, `Name,Path,Size_Bytes,Hash
a.txt,/docs,123,deadbeef
`)

	var got int
	for rec := range NewCSVSource("test", path).Records() {
		got++
		if rec.ParentPath != "/docs" {
			t.Errorf("expected path column to map to parent path, got %q", rec.ParentPath)
		}
		if rec.Size != 123 {
			t.Errorf("expected size_bytes to map to size, got %d", rec.Size)
		}
		if rec.DupKey != "deadbeef" {
			t.Errorf("expected hash to map to dup key, got %q", rec.DupKey)
		}
	}
	if got != 1 {
		t.Errorf("expected 1 record, got %d", got)
	}
}

func TestCSVSource_MissingFile(t *testing.T) {
	source := NewCSVSource("test", "/nonexistent/export.csv")

	var count int
	for range source.Records() {
		count++
	}
	if count != 0 {
		t.Errorf("expected no records from missing file, got %d", count)
	}
}
