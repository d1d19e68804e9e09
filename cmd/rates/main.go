package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"privat-rates/internal"
	"privat-rates/internal/logging"
	"privat-rates/internal/privatbank"

	"github.com/spf13/cobra"
)

const (
	usageMessage       = "Usage: rates <number_of_days>"
	invalidDaysMessage = "Please enter a valid number of days."
	daysRangeMessage   = "Please enter a number of days between 1 and 10."
)

var errBadInput = errors.New("bad input")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	r := &runner{
		now:    time.Now,
		logger: logging.New(os.Stderr, cfg.LogLevel),
		newClient: func() *privatbank.Client {
			return privatbank.New(cfg.HTTPTimeout)
		},
	}

	if err := newRootCommand(r).ExecuteContext(ctx); err != nil {
		if !errors.Is(err, errBadInput) {
			r.logger.Error("rates failed", "err", err)
		}
		os.Exit(1)
	}
}

type runner struct {
	now       func() time.Time
	logger    *slog.Logger
	newClient func() *privatbank.Client
}

func newRootCommand(r *runner) *cobra.Command {
	return &cobra.Command{
		Use:   "rates <number_of_days>",
		Short: "Print PrivatBank EUR and USD exchange rates for the last 1-10 days",
		// Negative day counts must reach validation instead of being read as flags.
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 && (args[0] == "-h" || args[0] == "--help") {
				return cmd.Help()
			}
			return r.run(cmd.Context(), cmd.OutOrStdout(), args)
		},
	}
}

func (r *runner) run(ctx context.Context, out io.Writer, args []string) error {
	if len(args) != 1 {
		fmt.Fprintln(out, usageMessage)
		return fmt.Errorf("%w: want 1 argument, got %d", errBadInput, len(args))
	}

	days, err := internal.ParseDays(args[0])
	if err != nil {
		if errors.Is(err, internal.ErrDaysOutOfRange) {
			fmt.Fprintln(out, daysRangeMessage)
		} else {
			fmt.Fprintln(out, invalidDaysMessage)
		}
		return fmt.Errorf("%w: %w", errBadInput, err)
	}

	dates, err := internal.DateRange(r.now(), days)
	if err != nil {
		return fmt.Errorf("date range: %w", err)
	}

	client := r.newClient()
	defer client.Close()

	report := internal.NewAggregator(client, r.logger).Collect(ctx, dates)

	b, err := report.Encode()
	if err != nil {
		return err
	}
	if _, err := out.Write(b); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
