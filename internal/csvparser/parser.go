// =============================================================================
// Customs Describer - CSV Table Module
// =============================================================================
//
// This module loads product catalogs from CSV and writes the augmented
// catalog back out. Every cell is kept as the exact string found in the
// file: no trimming, no numeric or date coercion. HS codes such as
// "0101.21.00" must survive the round trip byte for byte.
//
// FEATURES:
//   - Header row required; column order is preserved on write
//   - Rows are stored by position, so repeated header names keep their
//     own cells
//   - Short records are padded with empty cells; records wider than the
//     header row are rejected
//   - Reads and writes go through an afero.Fs so callers can swap the
//     real filesystem for an in-memory one
//
// =============================================================================

package csvparser

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"

	"github.com/spf13/afero"
)

// =============================================================================
// TABLE STRUCTURE
// =============================================================================

// Table represents a parsed CSV file.
type Table struct {
	// Headers contains the column headers in file order.
	Headers []string

	// Rows contains the data rows, one cell per header in header order.
	Rows [][]string

	// SourceFile is the path the table was read from (empty for tables built
	// in memory).
	SourceFile string
}

// RowCount returns the number of data rows.
func (t *Table) RowCount() int {
	return len(t.Rows)
}

// HasColumn reports whether the table has a column with exactly this name.
func (t *Table) HasColumn(name string) bool {
	return t.Index(name) >= 0
}

// Index returns the position of the first column with exactly this name,
// or -1 if there is none.
func (t *Table) Index(name string) int {
	for i, h := range t.Headers {
		if h == name {
			return i
		}
	}
	return -1
}

// Value returns the cell of the named column in row i. Missing columns and
// cells read as "".
func (t *Table) Value(i int, name string) string {
	col := t.Index(name)
	if col < 0 || col >= len(t.Rows[i]) {
		return ""
	}
	return t.Rows[i][col]
}

// Record returns row i as a header -> value map. When a header name
// repeats, the first column with that name wins.
func (t *Table) Record(i int) map[string]string {
	record := make(map[string]string, len(t.Headers))
	for col := len(t.Headers) - 1; col >= 0; col-- {
		value := ""
		if col < len(t.Rows[i]) {
			value = t.Rows[i][col]
		}
		record[t.Headers[col]] = value
	}
	return record
}

// SetColumn sets one value per row for the named column. A new column is
// appended to the headers; the first existing one with that name is
// overwritten in place.
func (t *Table) SetColumn(name string, values []string) error {
	if len(values) != len(t.Rows) {
		return fmt.Errorf("column %q has %d values for %d rows", name, len(values), len(t.Rows))
	}

	col := t.Index(name)
	if col < 0 {
		t.Headers = append(t.Headers, name)
		col = len(t.Headers) - 1
	}
	for i, row := range t.Rows {
		for len(row) <= col {
			row = append(row, "")
		}
		row[col] = values[i]
		t.Rows[i] = row
	}
	return nil
}

// Column returns all values for a specific column, in row order.
func (t *Table) Column(name string) []string {
	values := make([]string, len(t.Rows))
	for i := range t.Rows {
		values[i] = t.Value(i, name)
	}
	return values
}

// =============================================================================
// READING
// =============================================================================

// Read loads a CSV file from fs.
//
// PARAMETERS:
//   - fs: The filesystem to read from.
//   - filePath: The path to the CSV file.
//
// RETURNS:
//   - The parsed table.
//   - An error if the file cannot be opened or is not valid CSV.
func Read(fs afero.Fs, filePath string) (*Table, error) {
	file, err := fs.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	table, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filePath, err)
	}
	table.SourceFile = filePath
	return table, nil
}

// Parse reads a CSV document from r. The first record is the header row.
func Parse(r io.Reader) (*Table, error) {
	csvReader := csv.NewReader(bufio.NewReader(r))
	configureReader(csvReader)

	allRows, err := csvReader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}

	if len(allRows) == 0 {
		return nil, fmt.Errorf("CSV file is empty")
	}

	headers := stripBOM(allRows[0])

	rows, err := extractDataRows(allRows[1:], len(headers))
	if err != nil {
		return nil, err
	}

	return &Table{
		Headers: headers,
		Rows:    rows,
	}, nil
}

// configureReader applies the reader settings used for catalog files.
func configureReader(reader *csv.Reader) {
	// Allow variable number of fields per row; short rows are padded.
	reader.FieldsPerRecord = -1

	// Allow lazy quotes (quotes that don't follow strict CSV rules).
	reader.LazyQuotes = true

	// Leading spaces are data.
	reader.TrimLeadingSpace = false
}

// stripBOM removes a UTF-8 byte order mark from the first header, which
// spreadsheet exports commonly prepend.
func stripBOM(headers []string) []string {
	if len(headers) > 0 && len(headers[0]) >= 3 && headers[0][:3] == "\xef\xbb\xbf" {
		headers[0] = headers[0][3:]
	}
	return headers
}

// extractDataRows pads every record to width cells. A record with more
// cells than the header row is an error; its extra cells have no column.
func extractDataRows(records [][]string, width int) ([][]string, error) {
	dataRows := make([][]string, 0, len(records))

	for i, record := range records {
		if len(record) > width {
			return nil, fmt.Errorf("row %d: expected %d fields, saw %d", i+1, width, len(record))
		}
		row := make([]string, width)
		copy(row, record)
		dataRows = append(dataRows, row)
	}

	return dataRows, nil
}

// =============================================================================
// WRITING
// =============================================================================

// Write writes the table to filePath, creating or truncating the file.
// The write is not atomic: a failure part way through leaves a partial file.
func Write(fs afero.Fs, filePath string, table *Table) error {
	file, err := fs.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	if err := Render(file, table); err != nil {
		file.Close()
		return fmt.Errorf("failed to write %s: %w", filePath, err)
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", filePath, err)
	}
	return nil
}

// Render writes the table as CSV to w: the header row followed by one record
// per row, columns in header order.
func Render(w io.Writer, table *Table) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(table.Headers); err != nil {
		return err
	}

	record := make([]string, len(table.Headers))
	for _, row := range table.Rows {
		for i := range record {
			record[i] = ""
			if i < len(row) {
				record[i] = row[i]
			}
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
