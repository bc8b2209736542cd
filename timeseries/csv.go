package timeseries

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
)

// CSVOptions holds options for CSV loading and saving.
type CSVOptions struct {
	DateColumn string   // Column name for dates (optional, auto-detected)
	DateFormat string   // Date format (default: "2006-01-02")
	Columns    []string // Value columns to load (default: all numeric columns)
	HasHeader  bool     // Whether CSV has header row (default: true)
	Delimiter  rune     // Field delimiter (default: ',')
	SkipRows   int      // Number of rows to skip at start
}

// DefaultCSVOptions returns default options for CSV loading.
func DefaultCSVOptions() *CSVOptions {
	return &CSVOptions{
		DateFormat: "2006-01-02",
		HasHeader:  true,
		Delimiter:  ',',
	}
}

// LoadCSV loads a multi-column dataset from a CSV file. Every column except
// the date column becomes one series.
func LoadCSV(filename string, opts *CSVOptions) (*Dataset, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return LoadCSVFromReader(file, opts)
}

// LoadCSVFromReader loads a dataset from an io.Reader.
func LoadCSVFromReader(r io.Reader, opts *CSVOptions) (*Dataset, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	reader := csv.NewReader(r)
	reader.Comma = opts.Delimiter
	reader.TrimLeadingSpace = true

	for i := 0; i < opts.SkipRows; i++ {
		if _, err := reader.Read(); err != nil {
			return nil, err
		}
	}

	var headers []string
	dateIdx := -1

	if opts.HasHeader {
		header, err := reader.Read()
		if err != nil {
			return nil, err
		}
		headers = make([]string, len(header))
		for i, h := range header {
			headers[i] = strings.TrimSpace(strings.Trim(h, "\""))
		}

		for i, h := range headers {
			if opts.DateColumn != "" && h == opts.DateColumn {
				dateIdx = i
				break
			}
			if opts.DateColumn == "" && (h == "ds" || h == "date" || h == "Date" || h == "Month" || h == "Year") {
				dateIdx = i
				break
			}
		}
	}

	var valueIdx []int
	var names []string
	var columns [][]float64
	var timestamps []time.Time

	row := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		// Column layout comes from the header, or from the first data row.
		if valueIdx == nil {
			if headers == nil {
				headers = make([]string, len(record))
				for i := range record {
					headers[i] = fmt.Sprintf("col%d", i)
				}
			}
			for i, h := range headers {
				if i == dateIdx {
					continue
				}
				if len(opts.Columns) > 0 && !containsString(opts.Columns, h) {
					continue
				}
				valueIdx = append(valueIdx, i)
				names = append(names, h)
			}
			if len(valueIdx) == 0 {
				return nil, fmt.Errorf("timeseries: no value columns in CSV")
			}
			columns = make([][]float64, len(valueIdx))
		}

		for j, idx := range valueIdx {
			if idx >= len(record) {
				return nil, fmt.Errorf("timeseries: row %d has %d fields, expected at least %d",
					row, len(record), idx+1)
			}
			valStr := strings.TrimSpace(strings.Trim(record[idx], "\""))
			val, err := strconv.ParseFloat(valStr, 64)
			if err != nil {
				return nil, fmt.Errorf("timeseries: row %d column %q: %w", row, names[j], err)
			}
			columns[j] = append(columns[j], val)
		}

		if dateIdx >= 0 && dateIdx < len(record) {
			dateStr := strings.TrimSpace(strings.Trim(record[dateIdx], "\""))
			ts, err := time.Parse(opts.DateFormat, dateStr)
			if err != nil {
				// Fall back to common formats.
				for _, format := range []string{"2006-01-02", "2006-01-02T15:04:05", "2006/01/02", "2006"} {
					if ts, err = time.Parse(format, dateStr); err == nil {
						break
					}
				}
			}
			if err != nil {
				return nil, fmt.Errorf("timeseries: row %d: unparseable date %q", row, dateStr)
			}
			timestamps = append(timestamps, ts)
		}
		row++
	}

	if len(columns) == 0 || len(columns[0]) == 0 {
		return nil, fmt.Errorf("timeseries: no data rows in CSV")
	}

	series := make([]*Series, len(columns))
	for j, values := range columns {
		s := &Series{Values: values, Name: names[j]}
		if len(timestamps) == len(values) {
			s.Timestamps = append(timestamps[:0:0], timestamps...)
		} else {
			s.Timestamps = make([]time.Time, len(values))
			base := time.Now()
			for i := range s.Timestamps {
				s.Timestamps[i] = base.Add(time.Duration(i) * time.Hour)
			}
		}
		series[j] = s
	}

	return NewDataset(series...)
}

// WriteCSV writes a dataset to a writer, one column per series plus an
// optional date column.
func WriteCSV(w io.Writer, d *Dataset, opts *CSVOptions) error {
	if opts == nil {
		opts = DefaultCSVOptions()
	}
	if err := d.Validate(); err != nil {
		return err
	}

	writer := csv.NewWriter(w)
	writer.Comma = opts.Delimiter

	withDates := opts.DateColumn != "" && len(d.Series[0].Timestamps) == d.Rows()

	if opts.HasHeader {
		header := make([]string, 0, d.Cols()+1)
		if withDates {
			header = append(header, opts.DateColumn)
		}
		for j, name := range d.Names() {
			if name == "" {
				name = fmt.Sprintf("col%d", j)
			}
			header = append(header, name)
		}
		if err := writer.Write(header); err != nil {
			return err
		}
	}

	record := make([]string, 0, d.Cols()+1)
	for i := 0; i < d.Rows(); i++ {
		record = record[:0]
		if withDates {
			record = append(record, d.Series[0].Timestamps[i].Format(opts.DateFormat))
		}
		for _, s := range d.Series {
			record = append(record, strconv.FormatFloat(s.Values[i], 'g', -1, 64))
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// SaveCSV writes a dataset to a CSV file.
func SaveCSV(filename string, d *Dataset, opts *CSVOptions) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	return WriteCSV(file, d, opts)
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
