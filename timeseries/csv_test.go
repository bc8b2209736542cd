package timeseries

import (
	"bytes"
	"strings"
	"testing"
)

func TestLoadCSVFromReader(t *testing.T) {
	// Test basic multi-column loading
	csvData := `ds,gdp,consumption
2020-01-01,100,80
2020-01-02,101,81
2020-01-03,102,82
2020-01-04,103,83
2020-01-05,104,84`

	reader := strings.NewReader(csvData)
	opts := DefaultCSVOptions()

	data, err := LoadCSVFromReader(reader, opts)
	if err != nil {
		t.Fatalf("Failed to load CSV: %v", err)
	}

	if data.Cols() != 2 {
		t.Fatalf("Expected 2 columns, got %d", data.Cols())
	}
	if data.Rows() != 5 {
		t.Errorf("Expected 5 observations, got %d", data.Rows())
	}

	expected := []float64{100, 101, 102, 103, 104}
	gdp := data.ColumnByName("gdp")
	if gdp == nil {
		t.Fatal("gdp column not found")
	}
	for i, v := range expected {
		if gdp.Values[i] != v {
			t.Errorf("Value at index %d: expected %f, got %f", i, v, gdp.Values[i])
		}
	}

	t.Logf("Loaded %d columns with %d rows", data.Cols(), data.Rows())
}

func TestLoadCSVColumnSubset(t *testing.T) {
	csvData := `ds,Beer,Cement,Gas
2020-01-01,100,200,50
2020-01-02,110,210,55
2020-01-03,120,220,60`

	reader := strings.NewReader(csvData)
	opts := DefaultCSVOptions()
	opts.Columns = []string{"Cement"}

	data, err := LoadCSVFromReader(reader, opts)
	if err != nil {
		t.Fatalf("Failed to load CSV: %v", err)
	}

	if data.Cols() != 1 {
		t.Fatalf("Expected 1 column, got %d", data.Cols())
	}

	expected := []float64{200, 210, 220}
	for i, v := range expected {
		if data.Series[0].Values[i] != v {
			t.Errorf("Value at index %d: expected %f, got %f", i, v, data.Series[0].Values[i])
		}
	}
}

func TestLoadCSVRejectsNonNumeric(t *testing.T) {
	csvData := `ds,y
2020-01-01,100
2020-01-02,NA
2020-01-03,102`

	reader := strings.NewReader(csvData)

	_, err := LoadCSVFromReader(reader, DefaultCSVOptions())
	if err == nil {
		t.Error("Expected error for non-numeric value, got nil")
	}
}

func TestLoadCSVRejectsBadDate(t *testing.T) {
	csvData := `ds,y
2020-01-01,100
not-a-date,101
2020-01-03,102`

	reader := strings.NewReader(csvData)

	_, err := LoadCSVFromReader(reader, DefaultCSVOptions())
	if err == nil {
		t.Error("Expected error for unparseable date, got nil")
	}
}

func TestLoadCSVQuotedFields(t *testing.T) {
	csvData := `"ds","y"
"2020-01-01","1000000"
"2020-01-02","1000100"
"2020-01-03","1000200"`

	reader := strings.NewReader(csvData)

	data, err := LoadCSVFromReader(reader, DefaultCSVOptions())
	if err != nil {
		t.Fatalf("Failed to load CSV: %v", err)
	}

	if data.Rows() != 3 {
		t.Errorf("Expected 3 observations, got %d", data.Rows())
	}
}

func TestLoadCSVNoHeader(t *testing.T) {
	csvData := `1.5,2.5
2.5,3.5
3.5,4.5`

	reader := strings.NewReader(csvData)
	opts := DefaultCSVOptions()
	opts.HasHeader = false

	data, err := LoadCSVFromReader(reader, opts)
	if err != nil {
		t.Fatalf("Failed to load CSV: %v", err)
	}

	if data.Cols() != 2 || data.Rows() != 3 {
		t.Errorf("Expected 2x3, got %dx%d", data.Cols(), data.Rows())
	}
	if data.Series[0].Name != "col0" {
		t.Errorf("Expected generated name col0, got %q", data.Series[0].Name)
	}
}

func TestWriteCSVRoundTrip(t *testing.T) {
	a := New([]float64{1, 2, 3, 4})
	a.Name = "a"
	b := New([]float64{10, 20, 30, 40})
	b.Name = "b"

	data, err := NewDataset(a, b)
	if err != nil {
		t.Fatalf("Failed to build dataset: %v", err)
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, data, nil); err != nil {
		t.Fatalf("Failed to write CSV: %v", err)
	}

	loaded, err := LoadCSVFromReader(&buf, nil)
	if err != nil {
		t.Fatalf("Failed to reload CSV: %v", err)
	}

	if loaded.Cols() != 2 || loaded.Rows() != 4 {
		t.Fatalf("Expected 2x4 after round trip, got %dx%d", loaded.Cols(), loaded.Rows())
	}
	for j := range data.Series {
		for i, v := range data.Series[j].Values {
			if loaded.Series[j].Values[i] != v {
				t.Errorf("Column %d index %d: expected %f, got %f", j, i, v, loaded.Series[j].Values[i])
			}
		}
	}
}

func TestDefaultCSVOptions(t *testing.T) {
	opts := DefaultCSVOptions()

	if opts.DateFormat != "2006-01-02" {
		t.Errorf("Expected default date format '2006-01-02', got '%s'", opts.DateFormat)
	}

	if !opts.HasHeader {
		t.Error("Expected HasHeader to be true by default")
	}

	if opts.Delimiter != ',' {
		t.Errorf("Expected default delimiter ',', got '%c'", opts.Delimiter)
	}
}
