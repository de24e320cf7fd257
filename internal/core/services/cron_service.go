package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// Reporter produces roster head counts
type Reporter interface {
	Report(ctx context.Context) (*RosterReport, error)
}

// CronService runs the scheduled roster report
type CronService struct {
	reporter Reporter
	spec     string
	cron     *cron.Cron
	timeout  time.Duration
}

// NewCronService creates a cron service for the given 5-field schedule
func NewCronService(reporter Reporter, spec string) *CronService {
	return &CronService{
		reporter: reporter,
		spec:     spec,
		cron:     cron.New(),
		timeout:  30 * time.Second,
	}
}

// Start registers the report job and starts the scheduler
func (s *CronService) Start() error {
	if _, err := s.cron.AddFunc(s.spec, func() { s.RunReport() }); err != nil {
		return fmt.Errorf("invalid report schedule %q: %w", s.spec, err)
	}
	s.cron.Start()
	log.Printf("⏰ Roster report scheduled [%s]", s.spec)
	return nil
}

// Stop stops the scheduler and waits for a running report to finish
func (s *CronService) Stop() {
	<-s.cron.Stop().Done()
	log.Println("🛑 Roster report scheduler stopped")
}

// RunReport logs the current roster head counts once
func (s *CronService) RunReport() *RosterReport {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	report, err := s.reporter.Report(ctx)
	if err != nil {
		log.Printf("❌ Roster report failed: %v", err)
		return nil
	}

	log.Printf("📊 Roster report: %d employed, %d retired", report.Employed, report.Retired)
	return report
}
