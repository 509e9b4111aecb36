// Command check-conflicts audits active bookings for double-booked rooms and
// prints a report. It exits 0 when the schedule is clean and 1 when conflicts
// are found or the audit could not run.
package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/Shivanand-hulikatti/resort-backoffice/internal/config"
	"github.com/Shivanand-hulikatti/resort-backoffice/internal/conflict"
	"github.com/Shivanand-hulikatti/resort-backoffice/internal/database"
	"github.com/Shivanand-hulikatti/resort-backoffice/internal/logger"
	"github.com/Shivanand-hulikatti/resort-backoffice/internal/repository"
)

// detector is the part of conflict.Detector the job needs.
type detector interface {
	Detect(ctx context.Context) ([]conflict.Conflict, error)
}

func main() {
	os.Exit(setup())
}

// setup loads configuration, connects to the database and runs the audit.
func setup() int {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		logger.New(logger.Config{Output: os.Stderr, Service: "check-conflicts"}).Error("invalid configuration", "error", err)
		return 1
	}
	// Logs go to stderr so stdout carries only the report.
	log := logger.New(logger.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Output:  os.Stderr,
		Service: "check-conflicts",
	})

	pool, err := database.NewPool(ctx, cfg.Database, log.Logger)
	if err != nil {
		log.Error("database unavailable", "error", err)
		return 1
	}
	defer pool.Close()

	d := conflict.NewDetector(repository.NewBookingRepository(pool), repository.NewRoomRepository(pool))
	return run(ctx, d, os.Stdout, log)
}

// run performs one audit and maps the outcome to an exit status. Nothing is
// written to stdout when detection fails.
func run(ctx context.Context, d detector, stdout io.Writer, log *logger.Logger) int {
	conflicts, err := d.Detect(ctx)
	if err != nil {
		log.Error("conflict check failed", "error", err)
		return 1
	}

	if err := conflict.WriteReport(stdout, conflicts); err != nil {
		log.Error("write report", "error", err)
		return 1
	}
	log.Info("conflict check finished", "conflicts", len(conflicts))

	if len(conflicts) > 0 {
		return 1
	}
	return 0
}
