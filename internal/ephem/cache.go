package ephem

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// CacheName derives the flat-file cache name for a query. The designation
// is normalized (anything outside [A-Za-z0-9] becomes '_') so it is safe in
// a filename, and the time window and step make the name unique per
// request. Identical queries therefore map to the same file.
func CacheName(q Query) string {
	return fmt.Sprintf("horizons_%s_%s_%s_%s.txt",
		normalize(q.Target), normalize(q.Start), normalize(q.Stop), normalize(q.Step))
}

func normalize(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}

// readCache returns the cached raw response for a query, or ok=false when
// no cache file exists. Cached responses never expire: if the service
// revises its orbital solution for the same window, the stale text is
// served until the file is removed by hand.
func readCache(dir string, q Query) (raw string, path string, ok bool) {
	path = filepath.Join(dir, CacheName(q))
	data, err := os.ReadFile(path)
	if err != nil {
		return "", path, false
	}
	return string(data), path, true
}

// writeCache stores the verbatim raw response for a query. A cache write
// failure is not fatal to the run; the caller decides whether to log it.
func writeCache(dir string, q Query, raw string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, CacheName(q)), []byte(raw), 0o644)
}
