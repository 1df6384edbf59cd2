package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/datalytic/dataprof/internal/config"
	"github.com/datalytic/dataprof/internal/dataset"
	"github.com/datalytic/dataprof/internal/profiler"
)

var (
	cfgFile  string
	settings config.Settings
	log      = logrus.New()
)

var rootCmd = &cobra.Command{
	Use:   "dataprof",
	Short: "Tabular data profiler",
	Long: `Profile in-memory tabular datasets: per-column types and
statistics, histograms, outliers, duplicates, and an overall
data-quality score`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		var err error
		settings, err = config.Load(cfgFile)
		if err != nil {
			log.WithError(err).Warn("falling back to default settings")
			settings = config.Default()
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default is $HOME/.dataprof.yaml)")
}

// newProfiler honors the configured worker limit; 0 means auto-detect.
func newProfiler() *profiler.Profiler {
	if settings.Workers > 0 {
		return profiler.NewWithWorkers(settings.Workers)
	}
	return profiler.New()
}

// loadDataset reads a dataset from path, choosing the loader by the
// format flag or, when format is empty, by the file extension.
func loadDataset(path, format string) (*dataset.Dataset, error) {
	if format == "" {
		format = strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	}
	switch format {
	case "csv":
		return dataset.ReadCSVFile(path)
	case "json":
		return dataset.ReadJSONFile(path)
	default:
		return nil, fmt.Errorf("unsupported format %q (expected csv or json)", format)
	}
}
