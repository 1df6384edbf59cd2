package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/datalytic/dataprof/internal/render"
)

var (
	qualityFile   string
	qualityFormat string
	qualityJSON   bool
)

var qualityCmd = &cobra.Command{
	Use:   "quality",
	Short: "Compute a whole-dataset quality report",
	Long: `Assess a CSV or JSON dataset: completeness, duplicate rows,
type distribution, outliers, a 0-100 quality score, and a list of
detected issues.

Examples:
  dataprof quality --file data.csv
  dataprof quality --file data.csv --json > report.json`,
	Run: func(cmd *cobra.Command, args []string) {
		ds, err := loadDataset(qualityFile, qualityFormat)
		if err != nil {
			log.WithError(err).Fatalf("failed to load %s", qualityFile)
		}

		p := newProfiler()
		report, err := p.Assess(ds)
		if err != nil {
			log.WithError(err).Fatal("assessment failed")
		}

		if qualityJSON {
			out, err := json.MarshalIndent(report, "", "  ")
			if err != nil {
				log.WithError(err).Fatal("failed to encode report")
			}
			fmt.Println(string(out))
			return
		}

		render.WriteReport(os.Stdout, report)
	},
}

func init() {
	rootCmd.AddCommand(qualityCmd)
	qualityCmd.Flags().StringVarP(&qualityFile, "file", "f", "",
		"Dataset file to assess (required)")
	qualityCmd.Flags().StringVar(&qualityFormat, "format", "",
		"File format: csv or json (default: by extension)")
	qualityCmd.Flags().BoolVar(&qualityJSON, "json", false,
		"Emit the report as JSON")

	qualityCmd.MarkFlagRequired("file")
}
