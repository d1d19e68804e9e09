package internal

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hashicorp/go-multierror"
)

type ArchiveStorage interface {
	UpsertDailyRates(ctx context.Context, date Date, rates DailyRates) error
}

// Archiver stores the most recent days of rates.
type Archiver struct {
	aggregator *Aggregator
	storage    ArchiveStorage
	days       int
	now        func() time.Time
	logger     *slog.Logger
}

func NewArchiver(aggregator *Aggregator, storage ArchiveStorage, days int, now func() time.Time, logger *slog.Logger) (*Archiver, error) {
	if err := ValidateDays(days); err != nil {
		return nil, err
	}
	if now == nil {
		now = time.Now
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Archiver{
		aggregator: aggregator,
		storage:    storage,
		days:       days,
		now:        now,
		logger:     logger,
	}, nil
}

// Archive returns the full report together with every failed date and storage error.
func (a *Archiver) Archive(ctx context.Context) (Report, error) {
	dates, err := DateRange(a.now(), a.days)
	if err != nil {
		return nil, fmt.Errorf("date range: %w", err)
	}

	report := a.aggregator.Collect(ctx, dates)

	var merr *multierror.Error
	stored := 0
	for _, daily := range report {
		if daily.Failed() {
			merr = multierror.Append(merr, fmt.Errorf("fetch %s: %w", daily.Date, daily.Err))
			continue
		}

		if err := a.storage.UpsertDailyRates(ctx, daily.Date, daily.Rates); err != nil {
			merr = multierror.Append(merr, fmt.Errorf("save %s: %w", daily.Date, err))
			continue
		}
		stored++
	}

	a.logger.InfoContext(ctx, "archive run finished", "requested", len(dates), "stored", stored)

	return report, merr.ErrorOrNil()
}
