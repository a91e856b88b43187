// Package cmd implements the command-line interface for the fashion news
// harvester.
package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fashionbook/harvester/cmd/brands"
	"github.com/fashionbook/harvester/cmd/harvest"
	"github.com/fashionbook/harvester/internal/config"
)

// version is set at build time via -ldflags.
var version = "dev"

var (
	// cfgFile holds the path to the configuration file.
	cfgFile string

	// debug enables debug logging for all commands.
	debug bool

	rootCmd = &cobra.Command{
		Use:   "harvester",
		Short: "Fashion-brand news harvester",
		Long:  "Harvests fashion-brand news from the search feed into the JSON dataset.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
)

// Execute runs the root command.
func Execute() error {
	// Parse flags early so --config and --debug influence configuration.
	_ = rootCmd.ParseFlags(os.Args[1:])

	if err := initConfig(); err != nil {
		return fmt.Errorf("initialize configuration: %w", err)
	}

	return rootCmd.ExecuteContext(context.Background())
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("harvester version %s\n", version)
		},
	})

	rootCmd.AddCommand(harvest.Command())
	rootCmd.AddCommand(brands.Command())
}

// initConfig reads the optional .env file, config file, and environment.
// Both the config file and .env are optional; defaults cover everything.
func initConfig() error {
	_ = godotenv.Load()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Register every config key and its environment binding; Unmarshal only
	// decodes keys viper knows about.
	if err := config.Init(); err != nil {
		return fmt.Errorf("bind environment: %w", err)
	}

	// Config file is optional; environment variables and defaults suffice.
	_ = viper.ReadInConfig()

	if debug {
		viper.Set("logging.level", "debug")
	}

	return nil
}
