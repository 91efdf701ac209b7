package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"xbrl_fundamentals/pkg/core/edgar"
)

var (
	fetchTicker string
	fetchCIK    string
	fetchForms  []string
	fetchLimit  int
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "List a registrant's recent XBRL filings",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		client := newEdgarClient()

		cik, name, err := resolveRegistrant(ctx, client, fetchTicker, fetchCIK)
		if err != nil {
			return err
		}

		refs, err := client.Filings(ctx, cik, fetchForms...)
		if err != nil {
			return err
		}
		if fetchLimit > 0 && len(refs) > fetchLimit {
			refs = refs[:fetchLimit]
		}

		fmt.Printf("%s (CIK %s): %d filings\n", name, cik, len(refs))
		for _, ref := range refs {
			fmt.Printf("  %-22s %-8s filed %s  period %s\n",
				ref.AccessionNumber, ref.Form,
				ref.FilingDate.Format("2006-01-02"),
				ref.ReportDate.Format("2006-01-02"))
		}
		return nil
	},
}

func init() {
	fetchCmd.Flags().StringVar(&fetchTicker, "ticker", "", "ticker symbol")
	fetchCmd.Flags().StringVar(&fetchCIK, "cik", "", "SEC CIK number")
	fetchCmd.Flags().StringSliceVar(&fetchForms, "forms", []string{"10-K", "10-Q"}, "form types to include")
	fetchCmd.Flags().IntVar(&fetchLimit, "limit", 10, "maximum filings to list")

	rootCmd.AddCommand(fetchCmd)
}

func newEdgarClient() *edgar.Client {
	if dir := viper.GetString("cache"); dir != "" {
		return edgar.NewClientWithCacheDir(dir)
	}
	return edgar.NewClient()
}

// resolveRegistrant turns --ticker or --cik into a padded CIK and a
// display name.
func resolveRegistrant(ctx context.Context, client *edgar.Client, ticker, cik string) (string, string, error) {
	if ticker == "" && cik == "" {
		return "", "", fmt.Errorf("one of --ticker or --cik is required")
	}
	if cik == "" {
		resolved, err := client.ResolveTicker(ctx, ticker)
		if err != nil {
			return "", "", err
		}
		cik = resolved
	}
	sub, err := client.Submissions(ctx, cik)
	if err != nil {
		return "", "", err
	}
	return cik, sub.Name, nil
}
