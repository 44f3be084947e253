// Tracklist - Curated Playlists from a Static Track Catalog
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tracklist

package cli

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/tomtom215/tracklist/internal/catalog"
)

func (a *app) catalogCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "catalog",
		Short:   "Load the catalog and print a summary",
		Args:    cobra.NoArgs,
		PreRunE: a.setup,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store := a.newStore()
			start := time.Now()
			cat, err := store.Refresh(cmd.Context())
			if errors.Is(err, catalog.ErrMissingCatalog) {
				return errors.New(missingMessage(store.Source()))
			}
			if err != nil {
				return err
			}

			info := cat.Info()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Location:   %s\n", store.Source().Location())
			fmt.Fprintf(out, "Version:    %s\n", info.Version[:12])
			fmt.Fprintf(out, "Size:       %s\n", humanize.IBytes(uint64(info.Bytes))) //nolint:gosec // sizes are never negative
			fmt.Fprintf(out, "Tracks:     %s\n", humanize.Comma(int64(info.Tracks)))
			fmt.Fprintf(out, "Duplicates: %s\n", humanize.Comma(int64(info.DuplicateRows)))
			fmt.Fprintf(out, "Skipped:    %s\n", humanize.Comma(int64(info.SkippedRows)))
			fmt.Fprintf(out, "Load time:  %s\n", time.Since(start).Round(time.Millisecond))
			return nil
		},
	}
}

func missingMessage(src catalog.Source) string {
	return fmt.Sprintf("Missing '%s'!", filepath.Base(src.Location()))
}
