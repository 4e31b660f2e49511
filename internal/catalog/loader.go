// Filmscout - Content-Based Film Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmscout

package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// Format identifies a catalog file encoding.
type Format string

const (
	FormatAuto Format = "auto"
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

// Table is a raw catalog file: the header in file order and one Record per
// data row. Enrichment and conversion work on tables so unknown columns
// survive a read/write cycle.
type Table struct {
	Header []string
	Rows   []Record
}

// HasColumn reports whether the header contains name.
func (t *Table) HasColumn(name string) bool {
	return slices.Contains(t.Header, name)
}

// AddColumn appends name to the header if it is not present yet.
func (t *Table) AddColumn(name string) {
	if !t.HasColumn(name) {
		t.Header = append(t.Header, name)
	}
}

// ReadCSV reads a CSV table with a header row.
func ReadCSV(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, &ConfigError{Reason: "empty file, no header row"}
	}
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(strings.TrimPrefix(header[i], "\ufeff"))
	}

	t := &Table{Header: header}
	for {
		fields, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row %d: %w", len(t.Rows)+1, err)
		}
		rec := make(Record, len(header))
		for i, col := range header {
			if i < len(fields) {
				rec[col] = fields[i]
			}
		}
		t.Rows = append(t.Rows, rec)
	}
	return t, nil
}

// WriteCSV writes the table with its header in header order.
func WriteCSV(w io.Writer, t *Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	fields := make([]string, len(t.Header))
	for i, rec := range t.Rows {
		for j, col := range t.Header {
			fields[j] = rec[col]
		}
		if err := cw.Write(fields); err != nil {
			return fmt.Errorf("write csv row %d: %w", i+1, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadJSON reads a JSON array of flat objects. Scalar values are rendered as
// strings so the same normalization applies as for CSV.
func ReadJSON(r io.Reader) (*Table, error) {
	var raw []map[string]any
	dec := json.NewDecoder(r)
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return nil, &ConfigError{Reason: "invalid JSON catalog", Err: err}
	}

	t := &Table{}
	for _, obj := range raw {
		rec := make(Record, len(obj))
		keys := make([]string, 0, len(obj))
		for k := range obj {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		for _, k := range keys {
			t.AddColumn(k)
			rec[k] = stringify(obj[k])
		}
		t.Rows = append(t.Rows, rec)
	}
	return t, nil
}

func stringify(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case json.Number:
		return x.String()
	case bool:
		return FormatBool(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	default:
		return fmt.Sprint(x)
	}
}

// Corpus builds a corpus from the table, failing with a ConfigError when a
// required column is missing.
func (t *Table) Corpus() (*Corpus, error) {
	var missing []string
	for _, group := range requiredColumns {
		if !slices.ContainsFunc(group, t.HasColumn) {
			missing = append(missing, strings.Join(group, " or "))
		}
	}
	if len(missing) > 0 {
		return nil, &ConfigError{Reason: "missing required columns: " + strings.Join(missing, ", ")}
	}

	items := make([]Item, 0, len(t.Rows))
	for i, rec := range t.Rows {
		it, err := ItemFromRecord(rec, i+1)
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return NewCorpus(items)
}

// Load reads a catalog in the given format from r.
func Load(r io.Reader, format Format) (*Corpus, error) {
	var (
		t   *Table
		err error
	)
	switch format {
	case FormatCSV:
		t, err = ReadCSV(r)
	case FormatJSON:
		t, err = ReadJSON(r)
	default:
		return nil, fmt.Errorf("unsupported catalog format %q", format)
	}
	if err != nil {
		return nil, err
	}
	return t.Corpus()
}

// DetectFormat maps a file extension to a format, defaulting to CSV.
func DetectFormat(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}
	return FormatCSV
}

// LoadFile opens path and loads it. FormatAuto picks the format from the
// extension.
func LoadFile(path string, format Format) (*Corpus, error) {
	if format == "" || format == FormatAuto {
		format = DetectFormat(path)
	}
	f, err := os.Open(path) //nolint:gosec // path comes from operator configuration
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer func() { _ = f.Close() }()

	c, err := Load(f, format)
	if err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", path, err)
	}
	return c, nil
}

// ReadTableFile reads a CSV or JSON table from path.
func ReadTableFile(path string) (*Table, error) {
	f, err := os.Open(path) //nolint:gosec // path comes from operator configuration
	if err != nil {
		return nil, fmt.Errorf("open table: %w", err)
	}
	defer func() { _ = f.Close() }()

	if DetectFormat(path) == FormatJSON {
		return ReadJSON(f)
	}
	return ReadCSV(f)
}

// WriteCSVFile writes t to path, replacing any existing file.
func WriteCSVFile(path string, t *Table) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	f, err := os.Create(path) //nolint:gosec // path comes from operator input
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteCSV(f, t); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// TableFromItems renders items in the plain layout plus enrichment columns.
func TableFromItems(items []Item) *Table {
	header := []string{ColID, ColTitle, ColGenres, ColDirector, ColActors, ColPlot}
	t := &Table{Header: append(header, enrichmentColumns...)}
	for _, it := range items {
		t.Rows = append(t.Rows, RecordFromItem(it))
	}
	return t
}

// enrichmentColumns is the column order RecordFromItem writes.
var enrichmentColumns = []string{
	"omdb_imdb_rating", "omdb_runtime", "omdb_year", "omdb_metascore",
	"omdb_awards", "omdb_language", "omdb_country", "omdb_imdb_id", "omdb_enriched",
}
