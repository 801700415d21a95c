package config

import (
	"kyuna.GO/cron/jobs"
)

// Map of job names to job functions
type CronJob struct {
	Schedule string
	Job      func(...string)
}

var CronJobs = map[string]CronJob{
	"statsrefresh": {Schedule: "@every 5m", Job: jobs.StatsRefreshJob},
	// Add more jobs here
}
