// Package jobs holds the scheduled job functions wired up in config.CronJobs.
package jobs

import (
	"context"
	"log"
	"os"
	"time"

	"kyuna.GO/backend"
	"kyuna.GO/core/cache"
	ordersRepo "kyuna.GO/model/repository/orders"
	queriesRepo "kyuna.GO/model/repository/queries"
)

// statsTTLSeconds matches the dashboard's cache window.
const statsTTLSeconds = 5 * 60

// StatsRefreshJob warms the dashboard stat caches with a service token so
// the first operator of the morning gets a hot dashboard. Skipped when no
// SERVICE_TOKEN is configured.
//
// Reads BACKEND_URL directly: this package is imported by config, so it
// cannot use config.AppConfig.
func StatsRefreshJob(args ...string) {
	token := os.Getenv("SERVICE_TOKEN")
	if token == "" {
		return
	}
	base := os.Getenv("BACKEND_URL")
	if base == "" {
		base = "http://localhost:5000/api"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	api := backend.NewClient(base, nil, backend.StaticToken(token))
	ch := cache.GetInstance()

	if ov, err := ordersRepo.NewOrdersRepository(api).Overview(ctx); err != nil {
		log.Println("statsrefresh: orders overview:", err)
	} else {
		ch.Set("stats|orders", ov, statsTTLSeconds, []string{"stats"})
	}

	if qs, err := queriesRepo.NewQueriesRepository(api).Stats(ctx); err != nil {
		log.Println("statsrefresh: query stats:", err)
	} else {
		ch.Set("stats|queries", qs, statsTTLSeconds, []string{"stats"})
	}
}
