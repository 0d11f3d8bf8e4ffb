package app

import (
	"encoding/csv"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/nowakemc/reporting-project/models"
)

// CSVSource streams document records out of a catalog export in CSV form.
// Columns are resolved by header name; name, parentPath and size are the
// minimum useful set, everything else is optional. Malformed cells degrade
// to zero values rather than failing the import.
type CSVSource struct {
	SourceName string
	Path       string
}

func NewCSVSource(name, path string) *CSVSource {
	return &CSVSource{SourceName: name, Path: path}
}

func (c *CSVSource) Name() string {
	return "csv:" + c.SourceName
}

func (c *CSVSource) Records() <-chan models.DocumentRecord {
	recordsCh := make(chan models.DocumentRecord, 1000)

	go func() {
		defer close(recordsCh)

		f, err := os.Open(c.Path)
		if err != nil {
			log.Printf("Error opening %s: %v", c.Path, err)
			return
		}
		defer f.Close()

		r := csv.NewReader(f)
		r.FieldsPerRecord = -1
		r.TrimLeadingSpace = true

		header, err := r.Read()
		if err != nil {
			log.Printf("Error reading header of %s: %v", c.Path, err)
			return
		}
		cols := columnIndex(header)

		for {
			row, err := r.Read()
			if err == io.EOF {
				return
			}
			if err != nil {
				log.Printf("Skipping bad row in %s: %v", c.Path, err)
				continue
			}

			rec := parseCSVRecord(row, cols)
			if rec.Name == "" {
				continue
			}
			recordsCh <- rec
		}
	}()

	return recordsCh
}

func columnIndex(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		key := strings.ToLower(strings.TrimSpace(name))
		key = strings.ReplaceAll(key, "_", "")
		cols[key] = i
	}
	return cols
}

func parseCSVRecord(row []string, cols map[string]int) models.DocumentRecord {
	field := func(names ...string) string {
		for _, n := range names {
			if i, ok := cols[n]; ok && i < len(row) {
				return strings.TrimSpace(row[i])
			}
		}
		return ""
	}

	rec := models.DocumentRecord{
		Name:           field("name", "filename"),
		ParentPath:     field("parentpath", "path", "dir"),
		Ext:            normalizeExt(field("extension", "ext")),
		Size:           parseSize(field("size", "sizebytes")),
		CreateTime:     parseTimestamp(field("createtime", "createdat")),
		ModifyTime:     parseTimestamp(field("modifytime", "updatedat", "modtime")),
		AccessTime:     parseTimestamp(field("accesstime", "accessedat")),
		IsDeleted:      parseBool(field("isdeleted", "deleted")),
		DupKey:         field("dupkey", "hash", "checksum"),
		Classification: field("classification"),
		PermissionSet:  field("permissionset", "permissions"),
	}

	if rec.Ext == "" && rec.Name != "" {
		rec.Ext = strings.ToLower(filepath.Ext(rec.Name))
	}

	return rec
}

func normalizeExt(ext string) string {
	if ext == "" {
		return ""
	}
	ext = strings.ToLower(ext)
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}

// parseSize coerces missing or non-numeric sizes to 0 so no row is dropped.
func parseSize(s string) int64 {
	if s == "" {
		return 0
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

func parseBool(s string) bool {
	switch strings.ToLower(s) {
	case "1", "true", "yes", "y":
		return true
	}
	return false
}

// parseTimestamp accepts unix seconds, unix milliseconds or RFC3339.
// Catalog exports are inconsistent about which one they carry.
func parseTimestamp(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		if n <= 0 {
			return time.Time{}
		}
		// Epoch millis start being plausible around 1973 in seconds.
		if n > 1e12 {
			return time.Unix(n/1000, (n%1000)*int64(time.Millisecond))
		}
		return time.Unix(n, 0)
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	return time.Time{}
}
