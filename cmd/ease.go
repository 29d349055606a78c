package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/inference-sim/full-page-recommender/fpr"
	"github.com/inference-sim/full-page-recommender/fpr/config"
)

var (
	easeFixturePath   string
	easeConfigPath    string
	easeMaskCSV       string
	easeNumRows       int
	easeTempPenalty   float64
	easeCoolingFactor float64
)

var easeCmd = &cobra.Command{
	Use:   "ease",
	Short: "Build a page with the EASE (decaying-penalty) recommender",
	Run: func(cmd *cobra.Command, args []string) {
		fixture, err := loadEaseFixture(easeFixturePath)
		if err != nil {
			logrus.Fatalf("Failed to load fixture: %v", err)
		}

		matrix, err := fpr.NewEaseMatrix(fixture.EaseMatrix, fixture.ItemUniverseSize)
		if err != nil {
			logrus.Fatalf("Invalid EASE matrix: %v", err)
		}

		mask, numRows, tempPenalty, coolingFactor, err := resolveEaseTuning(
			easeConfigPath, easeMaskCSV, easeNumRows,
			easeTempPenalty, cmd.Flags().Changed("temp-penalty"),
			easeCoolingFactor, cmd.Flags().Changed("cooling"),
		)
		if err != nil {
			logrus.Fatalf("Failed to resolve tuning: %v", err)
		}

		recommender, err := fpr.NewEaseFPR(matrix, fixture.ItemsInCollections, mask, numRows, tempPenalty, coolingFactor)
		if err != nil {
			logrus.Fatalf("Failed to construct EaseFPR: %v", err)
		}

		page, err := recommender.Recommend(fixture.History)
		if err != nil {
			logrus.Fatalf("ease recommend failed: %v", err)
		}
		if len(page) < numRows {
			logrus.Warnf("requested %d rows but only %d collections were available; emitted %d rows", numRows, len(fixture.ItemsInCollections), len(page))
		}
		printPage(page)
	},
}

// resolveEaseTuning merges an optional YAML tuning bundle with CLI-provided
// overrides. --mask and a nonzero --rows always win over the config file;
// --temp-penalty and --cooling win only when tempPenaltySet/coolingSet
// report the flag was explicitly passed, since both have non-zero defaults
// and so can't use a zero-value sentinel the way --rows does.
func resolveEaseTuning(configPath, maskCSV string, numRows int, tempPenalty float64, tempPenaltySet bool, coolingFactor float64, coolingSet bool) (fpr.PositionMask, int, float64, float64, error) {
	var mask fpr.PositionMask

	if configPath != "" {
		bundle, err := config.LoadTuningBundle(configPath)
		if err != nil {
			return nil, 0, 0, 0, err
		}
		if err := bundle.Validate(); err != nil {
			return nil, 0, 0, 0, err
		}
		mask = bundle.Mask()
		if numRows == 0 {
			numRows = bundle.NumRows
		}
		if !tempPenaltySet {
			tempPenalty = bundle.TempPenalty
		}
		if !coolingSet {
			coolingFactor = bundle.CoolingFactor
		}
	}
	if maskCSV != "" {
		parsed, err := parseMask(maskCSV)
		if err != nil {
			return nil, 0, 0, 0, err
		}
		mask = parsed
	}
	return mask, numRows, tempPenalty, coolingFactor, nil
}

func init() {
	easeCmd.Flags().StringVar(&easeFixturePath, "fixture", "", "Path to a JSON ease fixture")
	easeCmd.Flags().StringVar(&easeConfigPath, "config", "", "Path to a YAML tuning bundle")
	easeCmd.Flags().StringVar(&easeMaskCSV, "mask", "", "Comma-separated position mask, overrides --config")
	easeCmd.Flags().IntVar(&easeNumRows, "rows", 0, "Number of rows to build, overrides --config")
	easeCmd.Flags().Float64Var(&easeTempPenalty, "temp-penalty", 1.0, "Penalty added to an item's suppression when shown, overrides --config")
	easeCmd.Flags().Float64Var(&easeCoolingFactor, "cooling", 0.7, "Per-row multiplicative decay of the penalty vector, overrides --config")
	_ = easeCmd.MarkFlagRequired("fixture")

	rootCmd.AddCommand(easeCmd)
}
