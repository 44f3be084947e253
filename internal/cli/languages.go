// Tracklist - Curated Playlists from a Static Track Catalog
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tracklist

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tomtom215/tracklist/internal/recommend/langdetect"
)

func languagesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List the accepted --language codes",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			for _, o := range langdetect.Options() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-4s %s\n", o.Code, o.Label)
			}
		},
	}
}

func versionCommand(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "tracklist version %s\n", version)
		},
	}
}
