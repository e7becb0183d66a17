package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"emotetop/internal/config"
	"emotetop/internal/query"
)

func main() {
	// The TUI owns the terminal; logs only surface when debugging.
	if os.Getenv("EMOTETOP_DEBUG") != "" {
		log.SetOutput(os.Stderr)
	} else {
		log.SetOutput(io.Discard)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		fmt.Fprintf(os.Stderr, "Config path: %s\n", config.ConfigPath())
		os.Exit(1)
	}

	var seed query.Seed
	var providers []string
	var apiURL string

	root := cobra.Command{
		Use:   "emotetop <channel>",
		Short: "emotetop is a terminal leaderboard of chat emote usage per channel.",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			channel := args[0]
			if !cfg.ChannelAllowed(channel) {
				return fmt.Errorf("unknown channel %q, available: %s", channel, strings.Join(cfg.Channels, ", "))
			}
			if apiURL != "" {
				cfg.APIURL = apiURL
			}
			seed.Channel = channel
			seed.Providers = providers
			runDashboard(cfg, seed)
			return nil
		},
	}

	root.Flags().IntVar(&seed.Page, "page", 1, "initial page")
	root.Flags().StringSliceVar(&providers, "providers", nil, "provider filter (twitch, bttv, ffz, 7tv)")
	root.Flags().StringVar(&seed.From, "from", "", "range start (YYYY-MM-DD)")
	root.Flags().StringVar(&seed.To, "to", "", "range end (YYYY-MM-DD)")
	root.Flags().BoolVar(&seed.OnlyCurrent, "only-current", false, "only emotes currently active in the channel")
	root.Flags().StringVar(&apiURL, "api-url", "", "override the upstream API base URL")

	root.AddCommand(newVersionCommand())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
