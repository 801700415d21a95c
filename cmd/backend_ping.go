package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"kyuna.GO/backend"
	"kyuna.GO/config"
	itemsRepo "kyuna.GO/model/repository/items"
)

var backendPingCmd = &cobra.Command{
	Use:   "backend:ping",
	Short: "Check the backend API is reachable",
	Run: func(cmd *cobra.Command, args []string) {
		config.LoadAppConfig()
		api := backend.NewClient(config.AppConfig.BackendURL, nil, backend.NoToken)

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		start := time.Now()
		if err := pingBackend(ctx, api); err != nil {
			fmt.Printf("backend %s: NOT OK: %v\n", config.AppConfig.BackendURL, err)
			os.Exit(1)
		}
		fmt.Printf("backend %s: OK (%d ms)\n", config.AppConfig.BackendURL, time.Since(start).Milliseconds())
	},
}

// pingBackend hits the unauthenticated items listing, so reachability can
// be checked without a service token.
func pingBackend(ctx context.Context, api *backend.Client) error {
	_, _, err := itemsRepo.NewItemsRepository(api).List(ctx, 1, "")
	return err
}

func init() {
	rootCmd.AddCommand(backendPingCmd)
}
