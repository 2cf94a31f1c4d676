package commands

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/perchworks/restock/pkg/config"
	"github.com/perchworks/restock/pkg/version"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	verbose bool
	plan    = config.DefaultPlanConfig()
)

var rootCmd = &cobra.Command{
	Use:   "restock",
	Short: "Replenishment Order Optimizer",
	Long: `restock - Bayesian Replenishment Planning

Simulate. Compare. Order.`,
	Version: version.Current,
	// Run: nil (Forces help output).
	Run: nil,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default ~/.restock.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(PlanCmd)
	rootCmd.AddCommand(ManifestCmd)
	rootCmd.AddCommand(completionCmd)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.SetConfigFile(filepath.Join(home, ".restock.yaml"))
			viper.SetConfigType("yaml")
		}
	}
	viper.SetEnvPrefix("RESTOCK")
	viper.AutomaticEnv()
	if err := viper.ReadInConfig(); err == nil {
		_ = viper.Unmarshal(&plan)
	}
}

// newLogger builds the CLI logger; debug runs log everything as text to
// stderr so the rendered order stays clean on stdout.
func newLogger() *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
