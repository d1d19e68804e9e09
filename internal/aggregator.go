package internal

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"
)

type DailyFetcher interface {
	FetchDaily(ctx context.Context, date Date) (DailyRates, error)
}

type Aggregator struct {
	fetcher DailyFetcher
	logger  *slog.Logger
}

func NewAggregator(fetcher DailyFetcher, logger *slog.Logger) *Aggregator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Aggregator{fetcher: fetcher, logger: logger}
}

// Collect fetches every date concurrently and waits for all of them.
// A failed date becomes an error entry; it never cancels the others.
// The result is in the order of dates, not completion order.
func (a *Aggregator) Collect(ctx context.Context, dates []Date) Report {
	out := make(Report, len(dates))

	var g errgroup.Group
	for i, date := range dates {
		g.Go(func() error {
			rates, err := a.fetcher.FetchDaily(ctx, date)
			if err != nil {
				a.logger.WarnContext(ctx, "fetch daily rates failed", "date", date.String(), "err", err)
				out[i] = DailyReport{Date: date, Err: err}
				return nil
			}

			a.logger.DebugContext(ctx, "fetched daily rates", "date", date.String(), "currencies", len(rates))
			out[i] = DailyReport{Date: date, Rates: rates}
			return nil
		})
	}
	_ = g.Wait()

	return out
}
