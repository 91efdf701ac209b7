package main

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"xbrl_fundamentals/pkg/core/filing"
	"xbrl_fundamentals/pkg/core/store"
	"xbrl_fundamentals/pkg/core/validate"
	"xbrl_fundamentals/pkg/models"
)

var (
	stdTicker  string
	stdCIK     string
	stdForms   []string
	stdLimit   int
	stdSave    bool
	stdRollups bool
)

var standardizeCmd = &cobra.Command{
	Use:   "standardize",
	Short: "Fetch filings and map their facts onto standard concepts",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		client := newEdgarClient()

		cik, name, err := resolveRegistrant(ctx, client, stdTicker, stdCIK)
		if err != nil {
			return err
		}
		conceptsStore, err := conceptStore()
		if err != nil {
			return err
		}

		refs, err := client.Filings(ctx, cik, stdForms...)
		if err != nil {
			return err
		}
		if stdLimit > 0 && len(refs) > stdLimit {
			refs = refs[:stdLimit]
		}
		if len(refs) == 0 {
			return fmt.Errorf("no %v filings found for %s", stdForms, name)
		}

		var inputs []filing.Input
		for _, ref := range refs {
			input, err := client.FilingInput(ctx, ref)
			if err != nil {
				log.Printf("[STANDARDIZE] skip %s: %v", ref.AccessionNumber, err)
				continue
			}
			inputs = append(inputs, input)
		}

		var repo *store.FilingsRepo
		if stdSave {
			if err := store.InitDB(ctx); err != nil {
				return err
			}
			defer store.Close()
			repo = store.NewFilingsRepo(store.GetPool())
		}

		fmt.Printf("%s (CIK %s)\n", name, cik)
		for _, result := range filing.BuildAll(inputs, conceptsStore) {
			if result.Err != nil {
				fmt.Printf("  %-22s ERROR %v\n", result.Accession, result.Err)
				continue
			}
			inst := result.Instance
			printSummary(inst)
			if stdRollups {
				printRollups(inst)
			}
			if repo != nil {
				if err := repo.Save(ctx, inst); err != nil {
					return err
				}
			}
		}
		return nil
	},
}

func init() {
	standardizeCmd.Flags().StringVar(&stdTicker, "ticker", "", "ticker symbol")
	standardizeCmd.Flags().StringVar(&stdCIK, "cik", "", "SEC CIK number")
	standardizeCmd.Flags().StringSliceVar(&stdForms, "forms", []string{"10-K"}, "form types to process")
	standardizeCmd.Flags().IntVar(&stdLimit, "limit", 1, "maximum filings to process")
	standardizeCmd.Flags().BoolVar(&stdSave, "save", false, "persist standardized filings to the database")
	standardizeCmd.Flags().BoolVar(&stdRollups, "rollups", false, "check calculation rollups against reported totals")

	rootCmd.AddCommand(standardizeCmd)
}

func printSummary(inst *filing.Instance) {
	var resolved, ambiguous, unmapped int
	all := inst.Facts().All()
	for i := range all {
		switch all[i].Resolution {
		case models.ResolutionResolved:
			resolved++
		case models.ResolutionAmbiguous:
			ambiguous++
		case models.ResolutionUnmapped:
			unmapped++
		}
	}
	fmt.Printf("  %-22s %-8s facts=%d resolved=%d ambiguous=%d unmapped=%d excluded=%d roles=%d\n",
		inst.Meta.AccessionNumber, inst.Meta.Form,
		len(all), resolved, ambiguous, unmapped,
		inst.ExcludedFacts(), len(inst.Roles()))
}

func printRollups(inst *filing.Instance) {
	for _, role := range inst.Roles() {
		report := validate.CheckRollups(inst, role)
		for _, r := range report.Results {
			if r.Match {
				continue
			}
			fmt.Printf("    rollup mismatch %s %s [%s]: reported %.0f calculated %.0f (%+.2f%%)\n",
				role, r.Parent, r.Period, r.Reported, r.Calculated, r.PercentDiff)
		}
	}
}
