package table

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// naToken reports whether a CSV cell marks a missing value.
func naToken(cell string) bool {
	switch strings.TrimSpace(cell) {
	case "", "NA", "na", "NaN", "nan", "null":
		return true
	}
	return false
}

// ReadCSV parses a numeric CSV with a header row. Missing cells become
// NaN; any other non-numeric cell is an error.
func ReadCSV(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("read csv: missing header row")
	}
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	t := &Table{Columns: make([]Column, len(header))}
	for i, name := range header {
		t.Columns[i].Name = strings.TrimSpace(name)
	}

	for row := 1; ; row++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row %d: %w", row, err)
		}

		for i, cell := range record {
			if naToken(cell) {
				t.Columns[i].Values = append(t.Columns[i].Values, math.NaN())
				continue
			}

			v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if err != nil {
				return nil, fmt.Errorf("read csv row %d, column %q: %w", row, t.Columns[i].Name, err)
			}
			t.Columns[i].Values = append(t.Columns[i].Values, v)
		}
	}

	return t, nil
}

// ReadFile reads a CSV file, transparently decompressing .gz and .zst.
func ReadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	switch filepath.Ext(path) {
	case ".zst":
		zr, err := zstd.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("zstd reader for %s: %w", path, err)
		}
		defer zr.Close()
		return ReadCSV(zr)
	case ".gz":
		gr, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("gzip reader for %s: %w", path, err)
		}
		defer gr.Close()
		return ReadCSV(gr)
	default:
		return ReadCSV(f)
	}
}

// WriteCSV writes the table with a header row, emitting "NA" for NaN.
func WriteCSV(w io.Writer, t *Table) error {
	writer := csv.NewWriter(w)

	header := make([]string, t.NumCols())
	for i := range t.Columns {
		header[i] = t.Columns[i].Name
	}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	record := make([]string, t.NumCols())
	for row, numRows := 0, t.NumRows(); row < numRows; row++ {
		for i := range t.Columns {
			v := t.Columns[i].Values[row]
			if math.IsNaN(v) {
				record[i] = "NA"
			} else {
				record[i] = strconv.FormatFloat(v, 'g', -1, 64)
			}
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("write csv row %d: %w", row+1, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// WriteFile writes a CSV file, compressing by extension like ReadFile.
func WriteFile(path string, t *Table) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	switch filepath.Ext(path) {
	case ".zst":
		zw, err := zstd.NewWriter(f)
		if err != nil {
			return fmt.Errorf("zstd writer for %s: %w", path, err)
		}
		if err := WriteCSV(zw, t); err != nil {
			zw.Close()
			return err
		}
		if err := zw.Close(); err != nil {
			return fmt.Errorf("close zstd writer for %s: %w", path, err)
		}
	case ".gz":
		gw := gzip.NewWriter(f)
		if err := WriteCSV(gw, t); err != nil {
			gw.Close()
			return err
		}
		if err := gw.Close(); err != nil {
			return fmt.Errorf("close gzip writer for %s: %w", path, err)
		}
	default:
		if err := WriteCSV(f, t); err != nil {
			return err
		}
	}

	return nil
}
