package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"xbrl_fundamentals/pkg/core/facts"
	"xbrl_fundamentals/pkg/core/filing"
	"xbrl_fundamentals/pkg/core/presentation"
	"xbrl_fundamentals/pkg/core/render"
	"xbrl_fundamentals/pkg/core/stitch"
	"xbrl_fundamentals/pkg/core/store"
	"xbrl_fundamentals/pkg/models"
)

var (
	stitchTicker  string
	stitchCIK     string
	stitchRole    string
	stitchForms   []string
	stitchFilings int
	stitchPeriods int
	stitchView    string
	stitchMode    string
	stitchOut     string
	stitchCache   bool
)

var stitchCmd = &cobra.Command{
	Use:   "stitch",
	Short: "Stitch one statement across filings into a multi-period table",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		client := newEdgarClient()

		cik, name, err := resolveRegistrant(ctx, client, stitchTicker, stitchCIK)
		if err != nil {
			return err
		}
		role, err := parseRole(stitchRole)
		if err != nil {
			return err
		}
		opts, err := parseStatementOptions(stitchView, stitchMode, stitchPeriods)
		if err != nil {
			return err
		}
		conceptsStore, err := conceptStore()
		if err != nil {
			return err
		}

		refs, err := client.Filings(ctx, cik, stitchForms...)
		if err != nil {
			return err
		}
		if stitchFilings > 0 && len(refs) > stitchFilings {
			refs = refs[:stitchFilings]
		}
		if len(refs) == 0 {
			return fmt.Errorf("no %v filings found for %s", stitchForms, name)
		}

		var inputs []filing.Input
		for _, ref := range refs {
			input, err := client.FilingInput(ctx, ref)
			if err != nil {
				log.Printf("[STITCH] skip %s: %v", ref.AccessionNumber, err)
				continue
			}
			inputs = append(inputs, input)
		}

		var instances []*filing.Instance
		for _, result := range filing.BuildAll(inputs, conceptsStore) {
			if result.Err != nil {
				continue
			}
			instances = append(instances, result.Instance)
		}
		if len(instances) == 0 {
			return fmt.Errorf("no usable filings for %s", name)
		}

		st, err := stitch.NewStitcher(opts).Stitch(instances, role)
		if err != nil {
			return err
		}

		if stitchCache {
			cache := store.NewSnapshotCache(store.GetPool(), "")
			if err := cache.Save(ctx, st); err != nil {
				log.Printf("[STITCH] snapshot not cached: %v", err)
			}
		}

		return writeMarkdown(st, stitchOut)
	},
}

func init() {
	stitchCmd.Flags().StringVar(&stitchTicker, "ticker", "", "ticker symbol")
	stitchCmd.Flags().StringVar(&stitchCIK, "cik", "", "SEC CIK number")
	stitchCmd.Flags().StringVar(&stitchRole, "role", models.RoleBalanceSheet, "statement role (balance_sheet, income_statement, cash_flow, comprehensive_income, equity)")
	stitchCmd.Flags().StringSliceVar(&stitchForms, "forms", []string{"10-K"}, "form types to stitch")
	stitchCmd.Flags().IntVar(&stitchFilings, "filings", 3, "maximum filings to stitch")
	stitchCmd.Flags().IntVar(&stitchPeriods, "periods", 0, "maximum period columns (0 = all)")
	stitchCmd.Flags().StringVar(&stitchView, "view", "standard", "presentation view: standard, detailed, summary")
	stitchCmd.Flags().StringVar(&stitchMode, "mode", "raw", "value mode: raw or presentation")
	stitchCmd.Flags().StringVar(&stitchOut, "out", "", "write markdown to file instead of stdout")
	stitchCmd.Flags().BoolVar(&stitchCache, "cache-snapshot", false, "save the stitched snapshot to the local cache")

	rootCmd.AddCommand(stitchCmd)
}

func parseRole(s string) (string, error) {
	switch s {
	case models.RoleBalanceSheet, models.RoleIncomeStatement, models.RoleCashFlow,
		models.RoleComprehensive, models.RoleEquity:
		return s, nil
	}
	return "", fmt.Errorf("unknown statement role %q", s)
}

func parseStatementOptions(view, mode string, maxPeriods int) (stitch.Options, error) {
	opts := stitch.Options{MaxPeriods: maxPeriods}

	switch view {
	case "standard":
		opts.View = presentation.ViewStandard
	case "detailed":
		opts.View = presentation.ViewDetailed
	case "summary":
		opts.View = presentation.ViewSummary
	default:
		return opts, fmt.Errorf("unknown view %q", view)
	}

	switch mode {
	case "raw":
		opts.Mode = facts.ModeRaw
	case "presentation":
		opts.Mode = facts.ModePresentation
	default:
		return opts, fmt.Errorf("unknown value mode %q", mode)
	}
	return opts, nil
}

func writeMarkdown(st *stitch.Statement, out string) error {
	md := render.Markdown(st)
	if !render.Validate(md) {
		return fmt.Errorf("rendered statement is not valid markdown")
	}
	if out == "" {
		fmt.Print(md)
		return nil
	}
	if err := os.WriteFile(out, []byte(md), 0644); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}
	fmt.Printf("Wrote %s\n", out)
	return nil
}
