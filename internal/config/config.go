// Package config provides configuration management for the draw value analyzer.
package config

// Config represents the complete application configuration
type Config struct {
	App      AppConfig      `mapstructure:"app" validate:"required"`
	Analysis AnalysisConfig `mapstructure:"analysis" validate:"required"`
	Backtest BacktestConfig `mapstructure:"backtest" validate:"required"`
	Reports  ReportConfig   `mapstructure:"reports" validate:"required"`
}

// AppConfig represents application-level configuration
type AppConfig struct {
	Name        string `mapstructure:"name" validate:"required"`
	Environment string `mapstructure:"environment" validate:"required,environment"`
	LogLevel    string `mapstructure:"log_level" validate:"required,loglevel"`
}

// AnalysisConfig represents binning and reliability parameters
type AnalysisConfig struct {
	DrawEdges  string `mapstructure:"draw_edges"`
	HomeEdges  string `mapstructure:"home_edges"`
	MinSamples int    `mapstructure:"min_samples" validate:"required,gt=0"`
	TopN       int    `mapstructure:"top_n" validate:"required,gt=0"`
}

// BacktestConfig represents flat-stake backtesting configuration
type BacktestConfig struct {
	Stake       float64         `mapstructure:"stake" validate:"required,gt=0"`
	InitialBank float64         `mapstructure:"initial_bank" validate:"required,gt=0"`
	BlockSizes  []int           `mapstructure:"block_sizes" validate:"omitempty,dive,gt=0"`
	WindowSizes []int           `mapstructure:"window_sizes" validate:"omitempty,dive,gt=0"`
	Threshold   ThresholdConfig `mapstructure:"threshold" validate:"required"`
	Filter      FilterConfig    `mapstructure:"filter" validate:"required"`
}

// ThresholdConfig represents the draw-odds threshold sweep grid
type ThresholdConfig struct {
	Start float64 `mapstructure:"start" validate:"required,gt=1"`
	Stop  float64 `mapstructure:"stop" validate:"required,gt=1"`
	Step  float64 `mapstructure:"step" validate:"required,gt=0"`
}

// FilterConfig represents the odds-range pick filter
type FilterConfig struct {
	HomeMin float64 `mapstructure:"home_min" validate:"required,gt=1"`
	HomeMax float64 `mapstructure:"home_max" validate:"required,gt=1"`
	DrawMin float64 `mapstructure:"draw_min" validate:"required,gt=1"`
}

// ReportConfig represents report output configuration
type ReportConfig struct {
	OutputDir string `mapstructure:"output_dir" validate:"required"`
}

// IsDevelopment checks if the application is running in development mode
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

// IsProduction checks if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}
