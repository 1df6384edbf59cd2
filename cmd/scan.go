package cmd

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/datalytic/dataprof/internal/connectors"
)

var (
	scanDir       string
	scanFormat    string
	scanRecursive bool
	scanVerbose   bool
	scanMinSize   int64
	scanMaxSize   int64
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan a directory and score every data file",
	Long: `Scan a directory for data files and print a quality summary
line for each one`,
	Run: func(cmd *cobra.Command, args []string) {
		options := connectors.Options{
			Recursive: scanRecursive,
			MinSize:   scanMinSize,
			MaxSize:   scanMaxSize,
		}

		files, err := connectors.Discover(scanDir, scanFormat, options)
		if err != nil {
			log.WithError(err).Fatal("scan failed")
		}
		if len(files) == 0 {
			fmt.Printf("No %s files found in %s\n", scanFormat, scanDir)
			return
		}

		bar := progressbar.NewOptions(len(files),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionSetDescription("Profiling files..."),
			progressbar.OptionShowCount(),
			progressbar.OptionOnCompletion(func() {
				fmt.Fprintln(os.Stderr)
			}),
		)

		p := newProfiler()
		for _, file := range files {
			bar.Add(1)

			ds, err := loadDataset(file.Path, scanFormat)
			if err != nil {
				log.WithError(err).Errorf("failed to load %s", file.Path)
				continue
			}
			report, err := p.Assess(ds)
			if err != nil {
				log.WithError(err).Errorf("failed to assess %s", file.Path)
				continue
			}

			if report.RowCount == 0 {
				fmt.Printf("\n%s (%s): empty, not scored\n",
					file.Path, humanize.Bytes(uint64(file.Size)))
				continue
			}

			fmt.Printf("\n%s (%s): score %d/100, %s rows, %d duplicate(s), %d issue(s)\n",
				file.Path, humanize.Bytes(uint64(file.Size)), report.Score,
				humanize.Comma(int64(report.RowCount)), report.DuplicateRows,
				len(report.Issues))

			if scanVerbose {
				for _, issue := range report.Issues {
					fmt.Printf("  - %s\n", issue)
				}
			}
		}

		bar.Finish()
	},
}

func init() {
	rootCmd.AddCommand(scanCmd)
	scanCmd.Flags().StringVarP(&scanDir, "dir", "d", "",
		"Directory to scan (required)")
	scanCmd.Flags().StringVarP(&scanFormat, "format", "f", "csv",
		"File format to analyze (csv, json)")
	scanCmd.Flags().BoolVarP(&scanRecursive, "recursive", "r", false,
		"Search directories recursively")
	scanCmd.Flags().BoolVarP(&scanVerbose, "verbose", "v", false,
		"Print each file's issue list")
	scanCmd.Flags().Int64Var(&scanMinSize, "min-size", 0,
		"Minimum file size in bytes")
	scanCmd.Flags().Int64Var(&scanMaxSize, "max-size", 0,
		"Maximum file size in bytes")

	scanCmd.MarkFlagRequired("dir")
}
