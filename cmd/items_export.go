package cmd

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"kyuna.GO/backend"
	"kyuna.GO/config"
	itemsRepo "kyuna.GO/model/repository/items"
)

var exportOut string

var itemsExportCmd = &cobra.Command{
	Use:   "items:export",
	Short: "Export the item catalog as CSV",
	Run: func(cmd *cobra.Command, args []string) {
		config.LoadAppConfig()
		api := backend.NewClient(config.AppConfig.BackendURL, nil, backend.NoToken)
		repo := itemsRepo.NewItemsRepository(api)

		out := os.Stdout
		if exportOut != "" {
			f, err := os.Create(exportOut)
			if err != nil {
				fmt.Printf("items:export: %v\n", err)
				os.Exit(1)
			}
			defer f.Close()
			out = f
		}

		w := csv.NewWriter(out)
		_ = w.Write([]string{"id", "name", "category", "price", "discountPrice", "availability", "images"})

		ctx := context.Background()
		total := 0
		for page := 1; ; page++ {
			items, pg, err := repo.List(ctx, page, "")
			if err != nil {
				fmt.Printf("items:export: page %d: %v\n", page, err)
				os.Exit(1)
			}
			for _, it := range items {
				_ = w.Write([]string{
					it.ID,
					it.Name,
					it.Category,
					strconv.FormatFloat(it.Price, 'f', 2, 64),
					strconv.FormatFloat(it.DiscountPrice, 'f', 2, 64),
					it.Availability,
					strconv.Itoa(len(it.Images)),
				})
			}
			total += len(items)
			if !pg.HasNextPage || len(items) == 0 {
				break
			}
		}
		w.Flush()
		if err := w.Error(); err != nil {
			fmt.Printf("items:export: %v\n", err)
			os.Exit(1)
		}
		if exportOut != "" {
			fmt.Printf("Exported %d items to %s\n", total, exportOut)
		}
	},
}

func init() {
	itemsExportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Write CSV to a file instead of stdout")
	rootCmd.AddCommand(itemsExportCmd)
}
