package csvutil

import (
	"encoding/csv"
	"strings"
	"time"
)

// Write joins an ordered header list and row maps into CSV text. Values are
// looked up by header name; a missing key serializes as an empty string.
// Quoting and escaping follow RFC 4180 via encoding/csv.
func Write(headers []string, rows []map[string]string) (string, error) {
	var sb strings.Builder
	w := csv.NewWriter(&sb)

	if err := w.Write(headers); err != nil {
		return "", err
	}

	record := make([]string, len(headers))
	for _, row := range rows {
		for i, header := range headers {
			record[i] = row[header]
		}
		if err := w.Write(record); err != nil {
			return "", err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}

	return sb.String(), nil
}

// Filename builds "<prefix>-<timestamp>.csv" with the colons and periods of
// the RFC 3339 timestamp replaced by hyphens, so the name is safe on every
// filesystem the marketplaces' import tooling runs on.
func Filename(prefix string, t time.Time) string {
	ts := t.UTC().Format("2006-01-02T15:04:05.000Z")
	ts = strings.ReplaceAll(ts, ":", "-")
	ts = strings.ReplaceAll(ts, ".", "-")
	return prefix + "-" + ts + ".csv"
}
