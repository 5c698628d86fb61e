// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the kicker-to-pick CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/qubone/kicker-to-pick/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the kicker-to-pick CLI.
var rootCmd = &cobra.Command{
	Use:   "kicker-to-pick",
	Short: "Sleeper kicker-to-rookie-pick converter",
	Long: `kicker-to-pick maps kicker roster slots in a Sleeper fantasy league to
rookie draft pick ownership and prints a pick tracker report.

Use "report" for the roster-based tracker (who holds each pick right now,
trades resolved), "scan" for the classic kicker-draft tracker, and
"catalog" to manage the local NFL player cache.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./kicker-to-pick.yaml or ~/.config/kicker-to-pick/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("kicker-to-pick")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "kicker-to-pick"))
		}
	}

	viper.SetEnvPrefix("KICKER_TO_PICK")
	viper.AutomaticEnv()

	viper.SetDefault("sleeper.timeout", "30s")
	viper.SetDefault("sleeper.user_agent", "kicker-to-pick/"+version)
	viper.SetDefault("sleeper.max_retries", 5)
	viper.SetDefault("catalog.dir", "catalog")
	viper.SetDefault("catalog.max_age", "24h")
	viper.SetDefault("report.rounds", 0) // 0: take the league's draft_rounds
	viper.SetDefault("scan.teams", 12)
	viper.SetDefault("scan.rounds", 4)
	viper.SetDefault("scan.low_remaining", 5)
	viper.SetDefault("logbook.dir", "logs")

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig hydrates the tool configuration from viper.
func loadConfig() types.AppConfig {
	return types.AppConfig{
		Sleeper: types.SleeperConfig{
			HTTPConfig: types.HTTPConfig{
				Timeout:   viper.GetDuration("sleeper.timeout"),
				UserAgent: viper.GetString("sleeper.user_agent"),
			},
			MaxRetries: viper.GetInt("sleeper.max_retries"),
		},
		Catalog: types.CatalogConfig{
			Dir:    viper.GetString("catalog.dir"),
			MaxAge: viper.GetDuration("catalog.max_age"),
		},
		Report: types.ReportConfig{
			Rounds: viper.GetInt("report.rounds"),
		},
		Scan: types.ScanConfig{
			Teams:        viper.GetInt("scan.teams"),
			Rounds:       viper.GetInt("scan.rounds"),
			LowRemaining: viper.GetInt("scan.low_remaining"),
		},
		Logbook: types.LogbookConfig{
			Dir: viper.GetString("logbook.dir"),
		},
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
