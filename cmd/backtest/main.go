package main

import (
	"fmt"
	"log"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/yourusername/draw-value/internal/config"
	applogger "github.com/yourusername/draw-value/internal/logger"
	"github.com/yourusername/draw-value/internal/metrics"
	"github.com/yourusername/draw-value/internal/models"
	"github.com/yourusername/draw-value/internal/service"
)

// Build information - set via ldflags
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var (
	configFile string
	outDir     string
	stake      float64
	logger     *logrus.Logger
	cfg        *config.Config
	backtester *service.BacktestService
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "./config/config.yaml", "Path to configuration file")
	rootCmd.PersistentFlags().StringVarP(&outDir, "outdir", "o", "", "Override report output directory")
	rootCmd.PersistentFlags().Float64VarP(&stake, "stake", "s", 0, "Override flat stake per pick")
}

var rootCmd = &cobra.Command{
	Use:   "backtest [files...]",
	Short: "Backtest flat-stake draw picks",
	Long:  `Backtest flat-stake draw betting over historical match files filtered by an odds range.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := loadConfig(); err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		setupDependencies()
		return nil
	},
}

var thresholdsCmd = &cobra.Command{
	Use:   "thresholds [files...]",
	Short: "Sweep minimum draw-odds thresholds",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		picks, err := backtester.LoadPicks(args)
		if err != nil {
			return err
		}
		results, err := backtester.Thresholds(picks)
		if err != nil {
			return err
		}
		fmt.Printf("Swept %d thresholds over %d picks\n", len(results), len(picks))
		return nil
	},
}

var chunksCmd = &cobra.Command{
	Use:   "chunks [files...]",
	Short: "Yield distribution over consecutive blocks",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withPicks(args, backtester.Chunks)
	},
}

var rollingCmd = &cobra.Command{
	Use:   "rolling [files...]",
	Short: "Yield distribution over rolling windows",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withPicks(args, backtester.Rolling)
	},
}

var bankCmd = &cobra.Command{
	Use:   "bank [files...]",
	Short: "Simulate a sequential flat-stake bank",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		picks, err := backtester.LoadPicks(args)
		if err != nil {
			return err
		}
		result, err := backtester.Bank(picks)
		if err != nil {
			return err
		}
		fmt.Printf("Final bank: %.2f (max drawdown %.2f, worst losing streak %d)\n",
			result.FinalBank, result.MaxDrawdown, result.WorstLosingStreak)
		return nil
	},
}

var exportCmd = &cobra.Command{
	Use:   "export [files...]",
	Short: "Export value-bet picks, 1X2 patterns and correlations",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withPicks(args, backtester.Export)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("backtest %s (commit %s, built %s)\n", Version, GitCommit, BuildDate)
	},
}

func main() {
	rootCmd.AddCommand(thresholdsCmd, chunksCmd, rollingCmd, bankCmd, exportCmd, versionCmd)

	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func loadConfig() error {
	var err error
	cfg, err = config.LoadWithDefaults(configFile)
	if err != nil {
		return err
	}
	if outDir != "" {
		cfg.Reports.OutputDir = outDir
	}
	if stake > 0 {
		cfg.Backtest.Stake = stake
	}
	return config.Validate(cfg)
}

func setupDependencies() {
	logger = applogger.NewLogger(cfg.App.LogLevel, cfg.App.Environment)
	metrics.InitRegistry()
	backtester = service.NewBacktestService(cfg, logger)
}

func withPicks(files []string, run func([]models.MatchRecord) error) error {
	picks, err := backtester.LoadPicks(files)
	if err != nil {
		return err
	}
	return run(picks)
}
