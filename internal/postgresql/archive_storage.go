package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"privat-rates/internal"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

var _ internal.ArchiveStorage = (*ArchiveStorage)(nil)

type ArchiveStorage struct {
	pgpool *pgxpool.Pool
}

func NewArchiveStorage(pgpool *pgxpool.Pool) *ArchiveStorage {
	return &ArchiveStorage{pgpool: pgpool}
}

func (s *ArchiveStorage) UpsertDailyRates(ctx context.Context, date internal.Date, rates internal.DailyRates) error {
	if date.IsZero() {
		return fmt.Errorf("rate_date is empty")
	}
	day := rateDay(date)

	tx, err := s.pgpool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	for ccy, entry := range rates {
		ccyStr := strings.ToUpper(strings.TrimSpace(ccy.String()))
		if ccyStr == "" {
			continue
		}

		_, err := tx.Exec(ctx, `
insert into exchange_rate_archive (rate_date, currency, sale, purchase, fetched_at)
values ($1::date, $2, $3::numeric, $4::numeric, now())
on conflict (rate_date, currency)
do update set
  sale = excluded.sale,
  purchase = excluded.purchase,
  fetched_at = now();
`, day, ccyStr, numericText(entry.Sale), numericText(entry.Purchase))
		if err != nil {
			return fmt.Errorf("upsert %s @%s: %w", ccyStr, date, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// GetDailyRates returns an empty map when nothing is archived for the date.
func (s *ArchiveStorage) GetDailyRates(ctx context.Context, date internal.Date) (internal.DailyRates, error) {
	if date.IsZero() {
		return nil, fmt.Errorf("rate_date is empty")
	}

	rows, err := s.pgpool.Query(ctx, `
select
  currency,
  sale::text,
  purchase::text
from exchange_rate_archive
where rate_date = $1::date
order by currency;
`, rateDay(date))
	if err != nil {
		return nil, fmt.Errorf("query archived rates: %w", err)
	}
	defer rows.Close()

	out := internal.DailyRates{}
	for rows.Next() {
		var ccyRaw string
		var saleText, purchaseText *string

		if err := rows.Scan(&ccyRaw, &saleText, &purchaseText); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}

		ccy, err := internal.NewCurrencyCode(ccyRaw)
		if err != nil {
			return nil, fmt.Errorf("bad currency from db %q: %w", ccyRaw, err)
		}

		sale, err := parseNumeric(saleText)
		if err != nil {
			return nil, fmt.Errorf("parse sale %s=%q: %w", ccy, *saleText, err)
		}
		purchase, err := parseNumeric(purchaseText)
		if err != nil {
			return nil, fmt.Errorf("parse purchase %s=%q: %w", ccy, *purchaseText, err)
		}

		out[ccy] = internal.RateEntry{Sale: sale, Purchase: purchase}
	}
	return out, rows.Err()
}

func rateDay(date internal.Date) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
}

func numericText(d decimal.NullDecimal) *string {
	if !d.Valid {
		return nil
	}
	s := d.Decimal.String()
	return &s
}

func parseNumeric(s *string) (decimal.NullDecimal, error) {
	if s == nil {
		return decimal.NullDecimal{}, nil
	}
	d, err := decimal.NewFromString(strings.TrimSpace(*s))
	if err != nil {
		return decimal.NullDecimal{}, err
	}
	return decimal.NewNullDecimal(d), nil
}
