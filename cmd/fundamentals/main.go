// Command fundamentals fetches SEC XBRL filings, standardizes their facts
// onto the shared concept registry, and renders stitched multi-period
// statements.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"xbrl_fundamentals/pkg/core/concepts"
)

var (
	cfgFile   string
	configDir string
	cacheDir  string
	verbose   bool
)

var rootCmd = &cobra.Command{
	Use:   "fundamentals",
	Short: "Standardized financial statements from SEC XBRL filings",
	Long: `fundamentals maps company-reported XBRL tags onto a standard concept
registry, rebuilds each statement's presentation hierarchy, and stitches
the same statement across filings into one multi-period table.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("fundamentals v0.3.0")
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./fundamentals.yaml)")
	rootCmd.PersistentFlags().StringVar(&configDir, "concepts", "configs", "directory with concept mapping overrides")
	rootCmd.PersistentFlags().StringVar(&cacheDir, "cache", "", "EDGAR document cache directory")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	_ = viper.BindPFlag("concepts", rootCmd.PersistentFlags().Lookup("concepts"))
	_ = viper.BindPFlag("cache", rootCmd.PersistentFlags().Lookup("cache"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	rootCmd.AddCommand(versionCmd)
}

// initConfig reads the config file and FUNDAMENTALS_* environment variables.
func initConfig() {
	if err := godotenv.Load(); err == nil && verbose {
		fmt.Fprintln(os.Stderr, "Loaded environment from .env")
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName("fundamentals")
	}

	viper.SetEnvPrefix("FUNDAMENTALS")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}

// conceptStore loads the registry plus any file overrides from the
// configured directory.
func conceptStore() (*concepts.Store, error) {
	dir := viper.GetString("concepts")
	if dir == "" {
		return concepts.DefaultStore(), nil
	}
	store, err := concepts.Load(dir)
	if err != nil {
		return nil, fmt.Errorf("load concept mappings from %s: %w", dir, err)
	}
	return store, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Printf("[FUNDAMENTALS] %v", err)
		os.Exit(1)
	}
}
