package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"emotetop/internal/appupdate"
	"emotetop/internal/version"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the build version and check for a newer release.",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Println("emotetop " + version.String())

			ctx, cancel := context.WithTimeout(cmd.Context(), 3*time.Second)
			defer cancel()

			result, err := appupdate.Check(ctx, appupdate.CheckOptions{
				CurrentVersion: version.Version,
			})
			if err != nil {
				return
			}
			if result.UpdateAvailable {
				fmt.Printf("Update available: %s → %s\n", result.CurrentVersion, result.LatestVersion)
				fmt.Println("  " + result.UpgradeHint)
			}
		},
	}
}
