package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/datalytic/dataprof/internal/render"
)

var (
	profileFile   string
	profileColumn string
	profileFormat string
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Profile a single column of a dataset",
	Long: `Profile one column of a CSV or JSON dataset: inferred type,
counts, descriptive statistics, a 10-bin histogram for numeric columns,
and a top-5 value table for categorical ones.

Examples:
  dataprof profile --file data.csv --column age
  dataprof profile --file rows.json --column city`,
	Run: func(cmd *cobra.Command, args []string) {
		ds, err := loadDataset(profileFile, profileFormat)
		if err != nil {
			log.WithError(err).Fatalf("failed to load %s", profileFile)
		}

		p := newProfiler()
		prof, err := p.ProfileColumn(ds, profileColumn)
		if err != nil {
			log.WithError(err).Fatal("profiling failed")
		}

		render.WriteProfile(os.Stdout, prof, settings.HistogramWidth)
	},
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.Flags().StringVarP(&profileFile, "file", "f", "",
		"Dataset file to profile (required)")
	profileCmd.Flags().StringVarP(&profileColumn, "column", "c", "",
		"Target column name (required)")
	profileCmd.Flags().StringVar(&profileFormat, "format", "",
		"File format: csv or json (default: by extension)")

	profileCmd.MarkFlagRequired("file")
	profileCmd.MarkFlagRequired("column")
}
