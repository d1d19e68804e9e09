package privatbank

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"privat-rates/internal"

	"github.com/shopspring/decimal"
)

const (
	DefaultBaseURL = "https://api.privatbank.ua/p24api/exchange_rates?json&date="

	maxBodyBytes = 256 << 10
)

var ErrStatusCode = errors.New("unexpected http status")

var _ internal.DailyFetcher = (*Client)(nil)

type Client struct {
	// BaseURL is concatenated with the DD.MM.YYYY date to form the request URL.
	BaseURL    string
	httpClient *http.Client
}

func New(timeout time.Duration) *Client {
	return &Client{
		BaseURL: DefaultBaseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Close releases pooled connections once a batch is done.
func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

func (c *Client) FetchDaily(ctx context.Context, date internal.Date) (internal.DailyRates, error) {
	if date.IsZero() {
		return nil, fmt.Errorf("date is empty")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+date.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("privatbank http %d: %w", resp.StatusCode, ErrStatusCode)
	}

	rates, err := ParseExchangeRates(body)
	if err != nil {
		return nil, err
	}
	return rates, nil
}

type exchangeRatesResponse struct {
	ExchangeRate []exchangeRate `json:"exchangeRate"`
}

type exchangeRate struct {
	Currency       string       `json:"currency"`
	SaleRate       optionalRate `json:"saleRate"`
	SaleRateNB     optionalRate `json:"saleRateNB"`
	PurchaseRate   optionalRate `json:"purchaseRate"`
	PurchaseRateNB optionalRate `json:"purchaseRateNB"`
}

// optionalRate tells an absent field apart from an explicit null.
type optionalRate struct {
	present bool
	value   decimal.NullDecimal
}

func (o *optionalRate) UnmarshalJSON(b []byte) error {
	o.present = true
	return o.value.UnmarshalJSON(b)
}

func pick(primary, fallback optionalRate) decimal.NullDecimal {
	if primary.present {
		return primary.value
	}
	return fallback.value
}

// ParseExchangeRates keeps the EUR and USD entries of an archive response.
// The retail rate wins over the NBU rate when the field is present.
func ParseExchangeRates(body []byte) (internal.DailyRates, error) {
	var out exchangeRatesResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}

	rates := make(internal.DailyRates, 2)
	for _, r := range out.ExchangeRate {
		ccy := internal.CurrencyCode(r.Currency)
		if !ccy.IsSupported() {
			continue
		}

		rates[ccy] = internal.RateEntry{
			Sale:     pick(r.SaleRate, r.SaleRateNB),
			Purchase: pick(r.PurchaseRate, r.PurchaseRateNB),
		}
	}
	return rates, nil
}
