package internal_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	testifymock "github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"privat-rates/internal"
	"privat-rates/internal/mock"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestAggregator_Collect_PreservesDateOrder(t *testing.T) {
	today := time.Date(2024, 1, 4, 9, 0, 0, 0, time.UTC)
	dates, err := internal.DateRange(today, 3)
	require.NoError(t, err)

	// Newest date answers last.
	latency := map[string]time.Duration{
		dates[0].String(): 60 * time.Millisecond,
		dates[1].String(): 30 * time.Millisecond,
		dates[2].String(): 0,
	}

	fetcher := mock.NewMockDailyFetcher(t)
	fetcher.EXPECT().
		FetchDaily(testifymock.Anything, testifymock.Anything).
		RunAndReturn(func(_ context.Context, d internal.Date) (internal.DailyRates, error) {
			time.Sleep(latency[d.String()])
			return internal.DailyRates{internal.USD: internal.NewRateEntry(rate("27.5"), rate("27.0"))}, nil
		}).
		Times(3)

	report := internal.NewAggregator(fetcher, discardLogger()).Collect(context.Background(), dates)

	require.Len(t, report, 3)
	for i, daily := range report {
		assert.Equal(t, dates[i].String(), daily.Date.String())
		assert.False(t, daily.Failed())
	}
}

func TestAggregator_Collect_PartialFailure(t *testing.T) {
	dates, err := internal.DateRange(time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC), 5)
	require.NoError(t, err)
	failing := dates[2]

	fetcher := mock.NewMockDailyFetcher(t)
	fetcher.EXPECT().
		FetchDaily(testifymock.Anything, testifymock.Anything).
		RunAndReturn(func(_ context.Context, d internal.Date) (internal.DailyRates, error) {
			if d.Equal(failing.Time) {
				return nil, errors.New("do request: dial tcp: connection refused")
			}
			return internal.DailyRates{internal.EUR: internal.NewRateEntry(rate("29.0"), rate("28.5"))}, nil
		}).
		Times(5)

	report := internal.NewAggregator(fetcher, discardLogger()).Collect(context.Background(), dates)

	require.Len(t, report, 5)
	for i, daily := range report {
		if i == 2 {
			require.True(t, daily.Failed())
			b, err := daily.MarshalJSON()
			require.NoError(t, err)
			assert.Contains(t, string(b), "Error fetching data: do request: dial tcp: connection refused")
			continue
		}
		assert.False(t, daily.Failed())
		assert.Contains(t, daily.Rates, internal.EUR)
	}
}

func TestAggregator_Collect_Idempotent(t *testing.T) {
	today := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	fetcher := mock.NewMockDailyFetcher(t)
	fetcher.EXPECT().
		FetchDaily(testifymock.Anything, testifymock.Anything).
		RunAndReturn(func(_ context.Context, d internal.Date) (internal.DailyRates, error) {
			if d.Day()%2 == 0 {
				return nil, errors.New("privatbank http 503")
			}
			return internal.DailyRates{
				internal.USD: internal.NewRateEntry(rate("38.1"), rate("37.6")),
				internal.EUR: internal.NewRateEntry(nil, rate("40.2")),
			}, nil
		})

	aggregator := internal.NewAggregator(fetcher, discardLogger())

	encode := func() []byte {
		dates, err := internal.DateRange(today, 4)
		require.NoError(t, err)
		b, err := aggregator.Collect(context.Background(), dates).Encode()
		require.NoError(t, err)
		return b
	}

	assert.Equal(t, encode(), encode())
}

func TestAggregator_Collect_NoDates(t *testing.T) {
	fetcher := mock.NewMockDailyFetcher(t)

	report := internal.NewAggregator(fetcher, nil).Collect(context.Background(), nil)

	assert.Empty(t, report)
	fetcher.AssertNotCalled(t, "FetchDaily", testifymock.Anything, testifymock.Anything)
}
