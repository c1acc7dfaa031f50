package services

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// Row is one CSV record keyed by its normalized header.
type Row map[string]string

// headerScanWindow bounds how far into the file the header row may sit.
// Exports commonly carry a title or date preamble above the real header.
const headerScanWindow = 5

// NormalizeHeader lowercases a header cell and collapses runs of
// whitespace so "Roll  No", "roll no" and "ROLL NO" all map to "roll no".
func NormalizeHeader(h string) string {
	return strings.Join(strings.Fields(strings.ToLower(h)), " ")
}

func looksLikeHeader(fields []string) bool {
	hasPRN, hasName := false, false
	for _, f := range fields {
		n := NormalizeHeader(f)
		if strings.Contains(n, "prn") {
			hasPRN = true
		}
		if strings.Contains(n, "name") {
			hasName = true
		}
	}
	return hasPRN && hasName
}

// ParseRows reads raw CSV text into field maps. The header is located
// within the first few lines (tolerating a preamble), normalized, and
// used to key every subsequent row. Row values are trimmed.
func ParseRows(raw []byte) ([]Row, error) {
	// Strip UTF-8 BOM
	raw = bytes.TrimPrefix(raw, []byte{0xEF, 0xBB, 0xBF})
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, fmt.Errorf("file is empty")
	}

	reader := csv.NewReader(bytes.NewReader(raw))
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1 // Allow variable number of fields

	// Locate the header row
	var headers []string
	for i := 0; i < headerScanWindow; i++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read line %d: %w", i+1, err)
		}
		if looksLikeHeader(record) {
			headers = make([]string, len(record))
			for j, h := range record {
				headers[j] = NormalizeHeader(h)
			}
			break
		}
	}
	if headers == nil {
		return nil, fmt.Errorf("no header row with PRN and name columns found in the first %d lines", headerScanWindow)
	}

	var out []Row
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row: %w", err)
		}

		row := Row{}
		empty := true
		for j, value := range record {
			if j >= len(headers) || headers[j] == "" {
				continue
			}
			v := strings.TrimSpace(value)
			if v != "" {
				empty = false
			}
			row[headers[j]] = v
		}
		if !empty {
			out = append(out, row)
		}
	}
	return out, nil
}

// Get returns the first non-empty value among the given keys.
func (r Row) Get(keys ...string) string {
	for _, k := range keys {
		if v := r[k]; v != "" {
			return v
		}
	}
	return ""
}
