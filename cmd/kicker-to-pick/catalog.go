// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/qubone/kicker-to-pick/internal/catalog"
	"github.com/qubone/kicker-to-pick/internal/sleeper"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Manage the local NFL player catalog",
	Long: `Catalog manages the local SQLite copy of Sleeper's NFL player set.
The full payload is several megabytes, so it is cached and refreshed at
most once per staleness window (default 24h).`,
}

var catalogRefreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Force a refresh of the player catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		ctx := cmd.Context()

		store, err := catalog.NewStore(cfg.Catalog)
		if err != nil {
			return err
		}
		defer store.Close()

		client := sleeper.NewClient(cfg.Sleeper)
		fmt.Fprintln(os.Stderr, "Fetching fresh player data from Sleeper (this may take a moment)...")
		players, err := client.AllPlayers(ctx)
		if err != nil {
			return err
		}
		if err := store.Replace(ctx, players); err != nil {
			return err
		}
		fmt.Printf("Player catalog refreshed: %d players.\n", len(players))
		return nil
	},
}

var catalogStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the player catalog's size and freshness",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		ctx := cmd.Context()

		store, err := catalog.NewStore(cfg.Catalog)
		if err != nil {
			return err
		}
		defer store.Close()

		count, err := store.Count(ctx)
		if err != nil {
			return err
		}
		fetched, err := store.LastFetched(ctx)
		if err != nil {
			return err
		}
		stale, err := store.Stale(ctx)
		if err != nil {
			return err
		}

		fmt.Printf("Players:      %d\n", count)
		if fetched.IsZero() {
			fmt.Println("Last fetched: never")
		} else {
			fmt.Printf("Last fetched: %s\n", fetched.Local().Format("2006-01-02 15:04:05"))
		}
		fmt.Printf("Stale:        %v\n", stale)
		return nil
	},
}

func init() {
	catalogCmd.AddCommand(catalogRefreshCmd)
	catalogCmd.AddCommand(catalogStatusCmd)

	rootCmd.AddCommand(catalogCmd)
}
