package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/inference-sim/full-page-recommender/fpr/config"
)

var validateConfigCmd = &cobra.Command{
	Use:   "validate-config FILE",
	Short: "Validate a YAML tuning bundle without running a page build",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		bundle, err := config.LoadTuningBundle(args[0])
		if err != nil {
			logrus.Fatalf("Failed to load config: %v", err)
		}
		if err := bundle.Validate(); err != nil {
			logrus.Fatalf("Config is invalid: %v", err)
		}
		fmt.Printf("OK: num_rows=%d mask_len=%d temp_penalty=%v cooling_factor=%v\n",
			bundle.NumRows, len(bundle.PositionMask), bundle.TempPenalty, bundle.CoolingFactor)
	},
}

func init() {
	rootCmd.AddCommand(validateConfigCmd)
}
