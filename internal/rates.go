package internal

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

const fetchErrorPrefix = "Error fetching data: "

// RateEntry is the sale/purchase pair of one currency on one date. Either side may be null.
type RateEntry struct {
	Sale     decimal.NullDecimal
	Purchase decimal.NullDecimal
}

func NewRateEntry(sale, purchase *decimal.Decimal) RateEntry {
	var e RateEntry
	if sale != nil {
		e.Sale = decimal.NewNullDecimal(*sale)
	}
	if purchase != nil {
		e.Purchase = decimal.NewNullDecimal(*purchase)
	}
	return e
}

// MarshalJSON writes rates as JSON numbers, not the quoted strings decimal emits by default.
func (e RateEntry) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Sale     json.RawMessage `json:"sale"`
		Purchase json.RawMessage `json:"purchase"`
	}{
		Sale:     rawRate(e.Sale),
		Purchase: rawRate(e.Purchase),
	})
}

func (e *RateEntry) UnmarshalJSON(b []byte) error {
	var raw struct {
		Sale     decimal.NullDecimal `json:"sale"`
		Purchase decimal.NullDecimal `json:"purchase"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("unmarshal rate entry: %w", err)
	}
	e.Sale, e.Purchase = raw.Sale, raw.Purchase
	return nil
}

func rawRate(d decimal.NullDecimal) json.RawMessage {
	if !d.Valid {
		return json.RawMessage("null")
	}
	return json.RawMessage(d.Decimal.String())
}

type DailyRates map[CurrencyCode]RateEntry

// DailyReport is the outcome for one date: Rates on success, Err otherwise.
type DailyReport struct {
	Date  Date
	Rates DailyRates
	Err   error
}

func (r DailyReport) Failed() bool { return r.Err != nil }

// MarshalJSON keeps the single-key shape {"DD.MM.YYYY": rates} or {"DD.MM.YYYY": "Error fetching data: ..."}.
func (r DailyReport) MarshalJSON() ([]byte, error) {
	var value any
	if r.Err != nil {
		value = fetchErrorPrefix + r.Err.Error()
	} else {
		rates := r.Rates
		if rates == nil {
			rates = DailyRates{}
		}
		value = rates
	}

	return json.Marshal(map[string]any{r.Date.String(): value})
}

// Report holds one DailyReport per requested date in generator order.
type Report []DailyReport

// Encode writes the report as JSON indented by two spaces, followed by a newline.
func (r Report) Encode() ([]byte, error) {
	if r == nil {
		r = Report{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return nil, fmt.Errorf("encode report: %w", err)
	}
	return buf.Bytes(), nil
}
