// Command scout runs one research pass from the terminal and writes the
// result table as a BOM-prefixed UTF-8 CSV, the same bytes the HTTP API
// serves with ?format=csv. Configuration comes from the environment,
// like the server.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"seller-scout/cache"
	"seller-scout/config"
	"seller-scout/internal/amazon"
	"seller-scout/internal/export"
	"seller-scout/internal/logs"
	"seller-scout/internal/research"
	"seller-scout/internal/shopee"
)

func newRootCmd() *cobra.Command {
	var (
		keyword       string
		pages         int
		minSold       int64
		minItems      int
		japanOnly     bool
		preferredOnly bool
		outPath       string
	)

	rootCmd := &cobra.Command{
		Use:           "scout",
		Short:         "Run one keyword research and write a CSV result file",
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(c *cobra.Command, args []string) error {
			if strings.TrimSpace(keyword) == "" {
				_ = c.Help()
				return errUsage
			}

			svc, cleanup, err := newService()
			if err != nil {
				return err
			}
			defer cleanup()

			res := svc.KeywordResearch(c.Context(), research.KeywordParams{
				Keyword:       keyword,
				Pages:         pages,
				JapanOnly:     japanOnly,
				PreferredOnly: preferredOnly,
				MinSold:       minSold,
				MinItemCount:  minItems,
			})

			if outPath == "" {
				outPath = fmt.Sprintf("shopee_keyword_%s.csv", keyword)
			}
			if err := writeCSV(outPath, export.ShopSummaryTable(res.Shops)); err != nil {
				return err
			}

			fmt.Fprintf(c.OutOrStdout(), "%s\t(%d shops, %d items)\n", outPath, len(res.Shops), len(res.Items))
			return nil
		},
	}

	rootCmd.Flags().StringVar(&keyword, "keyword", "", "Search keyword")
	rootCmd.Flags().IntVar(&pages, "pages", 3, "Search page count (60 items per page)")
	rootCmd.Flags().Int64Var(&minSold, "min-sold", 1, "Minimum historical sold per item")
	rootCmd.Flags().IntVar(&minItems, "min-items", 0, "Minimum item count per shop (0 = no floor)")
	rootCmd.Flags().BoolVar(&japanOnly, "japan-only", true, "Keep Japan-located sellers only")
	rootCmd.Flags().BoolVar(&preferredOnly, "preferred-only", false, "Keep preferred sellers only")
	rootCmd.Flags().StringVar(&outPath, "out", "", "Output CSV path (derived from the keyword when empty)")

	if err := rootCmd.MarkFlagRequired("keyword"); err != nil {
		// Cobra's required-flag implementation is pflag-based; failure here indicates programmer error.
		panic(errors.New("failed to mark required flag: keyword"))
	}

	rootCmd.AddCommand(newSpecialistCmd())

	return rootCmd
}

// newService wires the pipeline without fx: env config, zap logger, no
// redis (CLI runs are one-shot).
func newService() (*research.Service, func(), error) {
	cfg, err := config.NewConfig(config.NewViper())
	if err != nil {
		return nil, nil, err
	}

	logger, err := logs.NewLogger(cfg)
	if err != nil {
		return nil, nil, err
	}
	log := logger.Sugar()

	market := shopee.NewClient(cfg, cache.NewProfileCache(nil, log), log)
	resolver := amazon.NewResolver(cfg, log)

	return research.NewService(cfg, market, resolver, log), func() { _ = logger.Sync() }, nil
}

func writeCSV(path string, table export.Table) error {
	data, err := export.CSV(table)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %q: %w", path, err)
	}
	return nil
}
