package services

import (
	"database/sql"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/SaifulSk/tuition-plus-connect/app/database"
)

// StartScheduler runs the nightly fee sweep on the configured cron
// expression. The returned cron can be stopped on shutdown.
func StartScheduler(db *sql.DB, spec string, overdueAfterDays int) (*cron.Cron, error) {
	c := cron.New()
	_, err := c.AddFunc(spec, func() {
		if err := SweepOverdueFees(db, overdueAfterDays); err != nil {
			log.Printf("Overdue fee sweep failed: %v", err)
		}
	})
	if err != nil {
		return nil, err
	}
	c.Start()
	log.Printf("Scheduler started, overdue fee sweep on %q", spec)
	return c, nil
}

// SweepOverdueFees flips pending fees older than the cutoff to overdue.
func SweepOverdueFees(db *sql.DB, overdueAfterDays int) error {
	cutoff := time.Now().AddDate(0, 0, -overdueAfterDays)
	n, err := database.MarkOverdueFees(db, cutoff)
	if err != nil {
		return err
	}
	if n > 0 {
		log.Printf("Marked %d fee record(s) overdue (pending since before %s)", n, cutoff.Format("2006-01-02"))
	}
	return nil
}
