// Package cmd implements the command-line interface for lexicrawl.
// It provides the root command and subcommands for crawling news sources
// and inspecting their vocabulary output.
package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jonesrussell/lexicrawl/cmd/analyze"
	"github.com/jonesrussell/lexicrawl/cmd/crawl"
	cmdschedule "github.com/jonesrussell/lexicrawl/cmd/schedule"
	cmdsources "github.com/jonesrussell/lexicrawl/cmd/sources"
	"github.com/jonesrussell/lexicrawl/internal/config"
)

var (
	// cfgFile holds the path to the configuration file.
	cfgFile string

	// Debug enables debug mode for all commands
	Debug bool

	// rootCmd represents the root command for the lexicrawl CLI.
	rootCmd = &cobra.Command{
		Use:   "lexicrawl",
		Short: "A French news vocabulary crawler",
		Long: `lexicrawl crawls configured French news sites, extracts article text,
and records word frequencies with context sentences in daily CSV files.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
)

// Execute runs the root command
func Execute() error {
	// Load .env file early so environment variables are available
	_ = godotenv.Load()

	// Parse flags early to get debug flag before creating logger
	_ = rootCmd.ParseFlags(os.Args[1:])

	// Initialize configuration
	if err := initConfig(); err != nil {
		return fmt.Errorf("failed to initialize configuration: %w", err)
	}

	// Execute the root command with a fresh context
	return rootCmd.ExecuteContext(context.Background())
}

// init initializes the root command and its subcommands.
func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"",
		"config file (default is ./config.yaml or ./config/config.yaml)",
	)
	rootCmd.PersistentFlags().BoolVar(&Debug, "debug", false, "enable debug mode")

	// Add version command
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("lexicrawl version %s\n", "1.0.0")
		},
	})

	// Add subcommands
	rootCmd.AddCommand(crawl.Command())
	rootCmd.AddCommand(cmdsources.Command())
	rootCmd.AddCommand(analyze.Command())
	rootCmd.AddCommand(cmdschedule.Command())
}

// initConfig reads in config file and ENV variables if set.
func initConfig() error {
	// Set config file
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("./config")
	}

	// Enable automatic environment variable reading BEFORE setting defaults
	// so environment variables take precedence over defaults
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Set defaults (only used if environment variables or config file don't provide values)
	config.SetDefaults()

	// Read config file
	// Config file is optional: values can come from the file, environment
	// variables, or defaults
	if err := viper.ReadInConfig(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Config file not found: %v (using defaults and environment variables)\n", err)
	}

	// Bind command-line flags to Viper
	if err := viper.BindPFlag("app.debug", rootCmd.PersistentFlags().Lookup("debug")); err != nil {
		return fmt.Errorf("failed to bind debug flag: %w", err)
	}

	// Map environment variables to config keys
	if err := bindAppEnvVars(); err != nil {
		return err
	}

	// Set development logging settings
	setupDevelopmentLogging()

	return nil
}

// bindAppEnvVars binds application and logger environment variables to config keys.
func bindAppEnvVars() error {
	if err := viper.BindEnv("app.environment", "APP_ENV"); err != nil {
		return fmt.Errorf("failed to bind APP_ENV: %w", err)
	}
	if err := viper.BindEnv("app.debug", "APP_DEBUG"); err != nil {
		return fmt.Errorf("failed to bind APP_DEBUG: %w", err)
	}
	if err := viper.BindEnv("logger.level", "LOG_LEVEL"); err != nil {
		return fmt.Errorf("failed to bind LOG_LEVEL: %w", err)
	}
	if err := viper.BindEnv("logger.encoding", "LOG_FORMAT"); err != nil {
		return fmt.Errorf("failed to bind LOG_FORMAT: %w", err)
	}
	if err := viper.BindEnv("sources_file", "SOURCES_FILE"); err != nil {
		return fmt.Errorf("failed to bind SOURCES_FILE: %w", err)
	}
	return nil
}

// setupDevelopmentLogging configures development logging settings based on
// environment and debug flag.
func setupDevelopmentLogging() {
	debugFlag := Debug || viper.GetBool("app.debug")
	isDev := viper.GetString("app.environment") == "development"

	if debugFlag {
		viper.Set("logger.level", "debug")
	}

	// Development gets console encoding; log level only changes when debug
	// is explicitly requested
	if isDev {
		viper.Set("logger.development", true)
		viper.Set("logger.encoding", "console")
	}

	Debug = debugFlag
}
