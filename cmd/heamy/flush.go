package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/YuminosukeSato/goheamy/cache"
	"github.com/YuminosukeSato/goheamy/pkg/log"
)

func newFlushCommand(c *cli) *cobra.Command {
	var dir string
	cmd := &cobra.Command{
		Use:   "flush",
		Short: "Remove the prediction cache directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("dir") {
				dir = c.cfg.CacheDir
			}
			if err := cache.NewFlusher(dir, log.GetLogger()).Flush(); err != nil {
				return err
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "Cache flushed: %s\n", dir)
			return err
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "", "cache directory (overrides cache_dir)")
	return cmd
}
