package webapp

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/nowakemc/reporting-project/version"
)

func (webapp *WebApp) newTplData() map[string]any {
	data := make(map[string]any)
	data["Version"] = version.Version
	data["Commit"] = version.Commit
	data["BuildDate"] = version.BuildDate
	return data
}

func humanizeBytes(s int64) string {
	const (
		KB = 1024
		MB = KB * 1024
		GB = MB * 1024
		TB = GB * 1024
	)
	switch {
	case s >= TB:
		return fmt.Sprintf("%.2f TB", float64(s)/TB)
	case s >= GB:
		return fmt.Sprintf("%.2f GB", float64(s)/GB)
	case s >= MB:
		return fmt.Sprintf("%.2f MB", float64(s)/MB)
	case s >= KB:
		return fmt.Sprintf("%.2f KB", float64(s)/KB)
	default:
		return fmt.Sprintf("%d B", s)
	}
}

// queryInt reads a positive integer query parameter, falling back to def
// when absent or malformed.
func queryInt(r *http.Request, name string, def int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return def
	}
	return n
}
