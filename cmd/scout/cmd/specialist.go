package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"seller-scout/internal/export"
	"seller-scout/internal/research"
)

func newSpecialistCmd() *cobra.Command {
	var (
		keywords        []string
		pages           int
		minSold         int64
		minItems        int
		maxCategories   int
		japanOnly       bool
		preferredOnly   bool
		requireSourcing bool
		outPath         string
	)

	specialistCmd := &cobra.Command{
		Use:           "specialist",
		Short:         "Classify specialist shops for one or more keywords",
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(c *cobra.Command, args []string) error {
			kws := cleanKeywords(keywords)
			if len(kws) == 0 {
				_ = c.Help()
				return errUsage
			}

			svc, cleanup, err := newService()
			if err != nil {
				return err
			}
			defer cleanup()

			res := svc.SpecialistResearch(c.Context(), research.SpecialistParams{
				Keywords:      kws,
				Pages:         pages,
				JapanOnly:     japanOnly,
				PreferredOnly: preferredOnly,
				MinSold:       minSold,
				Filters: research.SpecialistFilters{
					MaxCategories:   maxCategories,
					RequireSourcing: requireSourcing,
					MinItemCount:    minItems,
				},
			})

			if err := writeCSV(outPath, export.SpecialistTable(res.Candidates)); err != nil {
				return err
			}

			fmt.Fprintf(c.OutOrStdout(), "%s\t(%d specialists of %d shops checked)\n", outPath, len(res.Candidates), res.Checked)
			return nil
		},
	}

	specialistCmd.Flags().StringSliceVar(&keywords, "keyword", nil, "Search keyword (repeatable)")
	specialistCmd.Flags().IntVar(&pages, "pages", 3, "Search page count per keyword")
	specialistCmd.Flags().Int64Var(&minSold, "min-sold", 1, "Minimum historical sold per item")
	specialistCmd.Flags().IntVar(&minItems, "min-items", 0, "Minimum reported catalog size (0 = no floor)")
	specialistCmd.Flags().IntVar(&maxCategories, "max-categories", 1, "Category-diversity ceiling")
	specialistCmd.Flags().BoolVar(&japanOnly, "japan-only", true, "Keep Japan-located sellers only")
	specialistCmd.Flags().BoolVar(&preferredOnly, "preferred-only", false, "Keep preferred sellers only")
	specialistCmd.Flags().BoolVar(&requireSourcing, "require-sourcing", true, "Require the Amazon-sourcing signal")
	specialistCmd.Flags().StringVar(&outPath, "out", "shopee_specialist_shops.csv", "Output CSV path")

	return specialistCmd
}

func cleanKeywords(raw []string) []string {
	var out []string
	for _, k := range raw {
		if k = strings.TrimSpace(k); k != "" {
			out = append(out, k)
		}
	}
	return out
}
