// Package timeseries provides time series data structures and utilities.
//
// This package includes the Series type for a single variable and the Dataset
// type for an ordered collection of series sharing a time index, along with
// CSV loading and saving.
//
// # Creating a Series
//
// Create a time series from a slice:
//
//	values := []float64{100, 102, 105, 103, 108, 110}
//	series := timeseries.New(values)
//
// # Building a Dataset
//
// A dataset bundles multiple series of equal length:
//
//	data, err := timeseries.NewDataset(gdp, consumption, investment)
//
// # Loading from CSV
//
// Each numeric column of a CSV file becomes one series:
//
//	data, err := timeseries.LoadCSV("macro.csv", nil)
//
//	// Load only specific columns
//	opts := timeseries.DefaultCSVOptions()
//	opts.Columns = []string{"gdp", "cpi"}
//	data, err := timeseries.LoadCSV("macro.csv", opts)
//
// # Basic Statistics
//
// Calculate summary statistics per series:
//
//	mean := series.Mean()
//	std := series.Std()
//	min := series.Min()
//	max := series.Max()
//
// # Slicing and Manipulation
//
// Work with subsets of the data:
//
//	subset := series.Slice(10, 50)
//	diff := series.Diff()
//	copy := series.Copy()
package timeseries
