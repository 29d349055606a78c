package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/inference-sim/full-page-recommender/fpr"
	"github.com/inference-sim/full-page-recommender/fpr/config"
)

var (
	recommendFixturePath string
	recommendConfigPath  string
	recommendMaskCSV     string
	recommendNumRows     int
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Build a page with the basic (hard-exclusion) recommender",
	Run: func(cmd *cobra.Command, args []string) {
		collections, err := loadRecommendFixture(recommendFixturePath)
		if err != nil {
			logrus.Fatalf("Failed to load fixture: %v", err)
		}

		mask, numRows, err := resolveMaskAndRows(recommendConfigPath, recommendMaskCSV, recommendNumRows)
		if err != nil {
			logrus.Fatalf("Failed to resolve tuning: %v", err)
		}

		page, err := fpr.Recommend(collections, mask, numRows)
		if err != nil {
			logrus.Fatalf("recommend failed: %v", err)
		}
		if len(page) < numRows {
			logrus.Warnf("requested %d rows but only %d collections were available; emitted %d rows", numRows, len(collections), len(page))
		}
		printPage(page)
	},
}

// resolveMaskAndRows merges an optional YAML tuning bundle with
// CLI-provided overrides: --mask and --rows win over the config file when
// set, mirroring the teacher CLI's flag-over-config precedence.
func resolveMaskAndRows(configPath, maskCSV string, numRows int) (fpr.PositionMask, int, error) {
	var mask fpr.PositionMask
	if configPath != "" {
		bundle, err := config.LoadTuningBundle(configPath)
		if err != nil {
			return nil, 0, err
		}
		if err := bundle.Validate(); err != nil {
			return nil, 0, err
		}
		mask = bundle.Mask()
		if numRows == 0 {
			numRows = bundle.NumRows
		}
	}
	if maskCSV != "" {
		parsed, err := parseMask(maskCSV)
		if err != nil {
			return nil, 0, err
		}
		mask = parsed
	}
	return mask, numRows, nil
}

func init() {
	recommendCmd.Flags().StringVar(&recommendFixturePath, "fixture", "", "Path to a JSON recommend fixture")
	recommendCmd.Flags().StringVar(&recommendConfigPath, "config", "", "Path to a YAML tuning bundle (position_mask, num_rows)")
	recommendCmd.Flags().StringVar(&recommendMaskCSV, "mask", "", "Comma-separated position mask, overrides --config")
	recommendCmd.Flags().IntVar(&recommendNumRows, "rows", 0, "Number of rows to build, overrides --config")
	_ = recommendCmd.MarkFlagRequired("fixture")

	rootCmd.AddCommand(recommendCmd)
}
