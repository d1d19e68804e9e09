package internal

import (
	"fmt"
	"strings"
)

type CurrencyCode string

func NewCurrencyCode(s string) (CurrencyCode, error) {
	ccy := CurrencyCode(strings.ToUpper(strings.TrimSpace(s)))
	if !ccy.IsSupported() {
		return "", fmt.Errorf("unsupported currency %q", s)
	}
	return ccy, nil
}

const (
	EUR CurrencyCode = "EUR"
	USD CurrencyCode = "USD"
)

// Only these two are kept from the daily archive.
var supportedSet = map[CurrencyCode]struct{}{
	EUR: {}, USD: {},
}

func (c CurrencyCode) IsSupported() bool {
	_, ok := supportedSet[c]
	return ok
}

func (c CurrencyCode) String() string { return string(c) }
