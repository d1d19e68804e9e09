package migrations

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Migrations struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Migrations {
	return &Migrations{pool: pool}
}

func (m *Migrations) Setup(ctx context.Context) error {
	if err := m.setupArchiveTable(ctx); err != nil {
		return fmt.Errorf("setup exchange_rate_archive: %w", err)
	}
	return nil
}

func (m *Migrations) setupArchiveTable(ctx context.Context) error {
	_, err := m.pool.Exec(ctx, `
create table if not exists exchange_rate_archive (
  rate_date  date not null,
  currency   char(3) not null,
  sale       numeric(20, 10),
  purchase   numeric(20, 10),
  fetched_at timestamptz not null default now(),
  primary key (rate_date, currency)
);

create index if not exists idx_exchange_rate_archive_fetched_at
  on exchange_rate_archive (fetched_at desc);
`)
	if err != nil {
		return fmt.Errorf("ensure table exchange_rate_archive: %w", err)
	}
	return nil
}
