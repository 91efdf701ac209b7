package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"xbrl_fundamentals/pkg/core/store"
)

var (
	renderCIK  string
	renderRole string
	renderOut  string
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a previously cached stitched snapshot as markdown",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		if renderCIK == "" {
			return fmt.Errorf("--cik is required")
		}
		role, err := parseRole(renderRole)
		if err != nil {
			return err
		}

		cache := store.NewSnapshotCache(store.GetPool(), "")
		st, err := cache.Get(ctx, renderCIK, role)
		if err != nil {
			return err
		}
		if st == nil {
			return fmt.Errorf("no cached snapshot for CIK %s %s; run stitch --cache-snapshot first", renderCIK, role)
		}
		return writeMarkdown(st, renderOut)
	},
}

func init() {
	renderCmd.Flags().StringVar(&renderCIK, "cik", "", "SEC CIK number")
	renderCmd.Flags().StringVar(&renderRole, "role", "balance_sheet", "statement role")
	renderCmd.Flags().StringVar(&renderOut, "out", "", "write markdown to file instead of stdout")

	rootCmd.AddCommand(renderCmd)
}
