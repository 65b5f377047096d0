// Package schedule implements the schedule command for running crawls on a
// recurring cron schedule.
package schedule

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"

	"github.com/jonesrussell/lexicrawl/cmd/common"
	"github.com/jonesrussell/lexicrawl/cmd/crawl"
)

// defaultCronSpec runs one crawl every morning.
const defaultCronSpec = "0 6 * * *"

// Command returns the schedule command for use in the root command.
func Command() *cobra.Command {
	var spec string

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Run crawls on a recurring schedule",
		Long: `This command keeps the process running and executes a full crawl on the
given cron schedule. Each run appends to that day's CSV file, so a crawl
per day grows one file per day.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := common.NewCommandDeps()
			if err != nil {
				return fmt.Errorf("failed to initialize dependencies: %w", err)
			}
			return runScheduler(cmd, deps, spec)
		},
	}

	cmd.Flags().StringVar(&spec, "cron", defaultCronSpec,
		"Cron expression for crawl runs")

	return cmd
}

// runScheduler blocks until interrupted, crawling on the given schedule.
func runScheduler(cmd *cobra.Command, deps *common.CommandDeps, spec string) error {
	log := deps.Logger.WithComponent("scheduler")

	scheduler := cron.New()
	if _, err := scheduler.AddFunc(spec, func() {
		log.Info("Scheduled crawl starting")
		if err := crawl.Run(cmd.Context(), deps); err != nil {
			log.Error("Scheduled crawl failed", "error", err)
		}
	}); err != nil {
		return fmt.Errorf("invalid cron expression %q: %w", spec, err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("Scheduler started", "cron", spec)
	scheduler.Start()

	<-ctx.Done()

	// Let an in-flight crawl finish before exiting
	log.Info("Shutdown signal received, waiting for running crawl")
	<-scheduler.Stop().Done()
	log.Info("Scheduler stopped")

	return nil
}
