// Package main provides the gohp command line interface.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/sartorproj/gohpfilter/onesided"
	"github.com/sartorproj/gohpfilter/timeseries"
	"github.com/sartorproj/gohpfilter/twosided"
)

// fileConfig mirrors the YAML config file. Explicit flags override it.
type fileConfig struct {
	Lambda  float64 `yaml:"lambda"`
	Discard int     `yaml:"discard"`
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "gohp",
		Short: "gohp - Hodrick-Prescott trend filtering for CSV time series",
		Long: `gohp decomposes time series into trend and cycle with the
Hodrick-Prescott filter. Every numeric column of the input CSV is filtered
independently with a shared smoothing parameter.

The two-sided filter uses the full sample; the one-sided filter uses only
current and past observations and can drop an initial warm-up period.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newTwoSidedCmd(), newOneSidedCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newTwoSidedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "twosided",
		Short: "Apply the two-sided (full-sample) HP filter",
		RunE: func(cmd *cobra.Command, args []string) error {
			lambda, _, err := resolveParams(cmd)
			if err != nil {
				return err
			}

			data, dateCol, err := loadInput(cmd)
			if err != nil {
				return err
			}

			dec, err := twosided.Decompose(data, &twosided.Config{Lambda: lambda})
			if err != nil {
				return err
			}

			return writeOutput(cmd, pickComponent(cmd, dec.Trend, dec.Cycle), dateCol)
		},
	}
	addCommonFlags(cmd)
	return cmd
}

func newOneSidedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "onesided",
		Short: "Apply the one-sided (causal) HP filter",
		RunE: func(cmd *cobra.Command, args []string) error {
			lambda, discard, err := resolveParams(cmd)
			if err != nil {
				return err
			}

			data, dateCol, err := loadInput(cmd)
			if err != nil {
				return err
			}

			dec, err := onesided.Decompose(data, &onesided.Config{Lambda: lambda, Discard: discard})
			if err != nil {
				return err
			}

			return writeOutput(cmd, pickComponent(cmd, dec.Trend, dec.Cycle), dateCol)
		},
	}
	addCommonFlags(cmd)
	cmd.Flags().Int("discard", 0, "Number of leading warm-up rows to drop from the output")
	return cmd
}

func addCommonFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("input", "i", "", "Input CSV file (required)")
	cmd.Flags().StringP("output", "o", "", "Output CSV file (default: stdout)")
	cmd.Flags().Float64("lambda", twosided.DefaultLambda, "Smoothing parameter")
	cmd.Flags().String("config", "", "YAML config file with lambda/discard")
	cmd.Flags().String("date-column", "", "Name of the date column to pass through")
	cmd.Flags().Bool("cycle", false, "Emit the cyclical component instead of the trend")
	_ = cmd.MarkFlagRequired("input")
}

// resolveParams resolves lambda and discard: defaults, then the config file,
// then explicit flags.
func resolveParams(cmd *cobra.Command) (float64, int, error) {
	lambda, _ := cmd.Flags().GetFloat64("lambda")
	discard := 0
	if f := cmd.Flags().Lookup("discard"); f != nil {
		discard, _ = cmd.Flags().GetInt("discard")
	}

	path, _ := cmd.Flags().GetString("config")
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return 0, 0, fmt.Errorf("reading config: %w", err)
		}
		fc := fileConfig{Lambda: twosided.DefaultLambda}
		if err := yaml.Unmarshal(raw, &fc); err != nil {
			return 0, 0, fmt.Errorf("parsing config: %w", err)
		}
		if !cmd.Flags().Changed("lambda") {
			lambda = fc.Lambda
		}
		if f := cmd.Flags().Lookup("discard"); f != nil && !cmd.Flags().Changed("discard") {
			discard = fc.Discard
		}
	}

	return lambda, discard, nil
}

func loadInput(cmd *cobra.Command) (*timeseries.Dataset, string, error) {
	input, _ := cmd.Flags().GetString("input")
	dateCol, _ := cmd.Flags().GetString("date-column")

	opts := timeseries.DefaultCSVOptions()
	opts.DateColumn = dateCol

	data, err := timeseries.LoadCSV(input, opts)
	if err != nil {
		return nil, "", fmt.Errorf("loading %s: %w", input, err)
	}
	if data.HasNaN() {
		return nil, "", fmt.Errorf("loading %s: data contains NaN or infinite values", input)
	}
	return data, dateCol, nil
}

func pickComponent(cmd *cobra.Command, trend, cycle *timeseries.Dataset) *timeseries.Dataset {
	if wantCycle, _ := cmd.Flags().GetBool("cycle"); wantCycle {
		return cycle
	}
	return trend
}

func writeOutput(cmd *cobra.Command, result *timeseries.Dataset, dateCol string) error {
	output, _ := cmd.Flags().GetString("output")

	opts := timeseries.DefaultCSVOptions()
	opts.DateColumn = dateCol

	var w io.Writer = os.Stdout
	if output != "" {
		file, err := os.Create(output)
		if err != nil {
			return err
		}
		defer file.Close()
		w = file
	}

	return timeseries.WriteCSV(w, result, opts)
}
