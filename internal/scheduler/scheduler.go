package scheduler

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"store-ledger/internal/export"
	"store-ledger/internal/models"
	"store-ledger/internal/report"
	"store-ledger/internal/statement"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// CompanyLister lists the companies the monthly export runs for.
type CompanyLister interface {
	ListCompanies(ctx context.Context) ([]models.Company, error)
}

// Scheduler writes last month's statements for every company to disk on a cron schedule.
type Scheduler struct {
	cron      *cron.Cron
	spec      string
	dir       string
	loc       *time.Location
	companies CompanyLister
	reports   *report.Service
	logger    *zap.Logger
}

// NewScheduler creates a new scheduler instance. spec is a standard 5-field cron expression
// evaluated in loc.
func NewScheduler(spec, dir string, loc *time.Location, companies CompanyLister, reports *report.Service, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if loc == nil {
		loc = time.UTC
	}
	return &Scheduler{
		cron:      cron.New(cron.WithLocation(loc)),
		spec:      spec,
		dir:       dir,
		loc:       loc,
		companies: companies,
		reports:   reports,
		logger:    logger,
	}
}

// Start registers the export job and starts the cron loop.
func (s *Scheduler) Start() error {
	s.logger.Info("starting scheduler", zap.String("schedule", s.spec))
	if _, err := s.cron.AddFunc(s.spec, s.monthlyExport); err != nil {
		return fmt.Errorf("schedule monthly export: %w", err)
	}
	s.cron.Start()
	return nil
}

// Stop stops the scheduler and waits for a running job to finish.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	<-s.cron.Stop().Done()
}

func (s *Scheduler) monthlyExport() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	files, err := s.RunOnce(ctx, time.Now())
	if err != nil {
		s.logger.Error("monthly export finished with errors", zap.Int("files", len(files)), zap.Error(err))
		return
	}
	s.logger.Info("monthly export finished", zap.Int("files", len(files)))
}

// PreviousMonth returns the first and last day of the month before now, in loc.
func PreviousMonth(now time.Time, loc *time.Location) (statement.Date, statement.Date) {
	end := statement.DateOf(now.In(loc)).MonthStart().AddDays(-1)
	return end.MonthStart(), end
}

// RunOnce exports the previous month's consolidated cash-flow and P&L workbooks for every
// company. A failing company does not stop the others; all failures are joined.
func (s *Scheduler) RunOnce(ctx context.Context, now time.Time) ([]string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return nil, fmt.Errorf("create export dir: %w", err)
	}

	companies, err := s.companies.ListCompanies(ctx)
	if err != nil {
		return nil, err
	}

	start, end := PreviousMonth(now, s.loc)
	q := report.Query{Start: start, End: end}

	var (
		files []string
		errs  []error
	)
	for _, co := range companies {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		written, err := s.exportCompany(ctx, co.ID, q)
		files = append(files, written...)
		if err != nil {
			s.logger.Warn("export company failed", zap.Uint("company_id", co.ID), zap.Error(err))
			errs = append(errs, fmt.Errorf("company %d: %w", co.ID, err))
		}
	}
	return files, errors.Join(errs...)
}

func (s *Scheduler) exportCompany(ctx context.Context, companyID uint, q report.Query) ([]string, error) {
	cf, err := s.reports.CashFlow(ctx, companyID, q)
	if err != nil {
		return nil, err
	}
	pl, err := s.reports.ProfitLoss(ctx, companyID, q)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, job := range []struct {
		name  string
		build func() (*excelize.File, error)
	}{
		{"cash_flow", func() (*excelize.File, error) { return export.CashFlowWorkbook(cf.ConsolidatedCashFlow) }},
		{"profit_loss", func() (*excelize.File, error) { return export.ProfitLossWorkbook(pl.ProfitLossStatement) }},
	} {
		path, err := s.save(companyID, q.Start.MonthKey(), job.name, job.build)
		if err != nil {
			return files, err
		}
		files = append(files, path)
	}
	return files, nil
}

func (s *Scheduler) save(companyID uint, month, name string, build func() (*excelize.File, error)) (string, error) {
	f, err := build()
	if err != nil {
		return "", fmt.Errorf("build %s: %w", name, err)
	}
	defer f.Close()

	// 文件名加 uuid 后缀，重复执行不会覆盖
	path := filepath.Join(s.dir, fmt.Sprintf("company%d_%s_%s_%s.xlsx", companyID, month, name, uuid.NewString()[:8]))
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("save %s: %w", path, err)
	}
	return path, nil
}
