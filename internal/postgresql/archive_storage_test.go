package postgresql

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"privat-rates/internal"
)

func TestNumericText(t *testing.T) {
	assert.Nil(t, numericText(decimal.NullDecimal{}))

	s := numericText(decimal.NewNullDecimal(decimal.RequireFromString("27.50")))
	require.NotNil(t, s)
	assert.Equal(t, "27.5", *s)
}

func TestParseNumeric(t *testing.T) {
	d, err := parseNumeric(nil)
	require.NoError(t, err)
	assert.False(t, d.Valid)

	text := " 41.2000000000 "
	d, err = parseNumeric(&text)
	require.NoError(t, err)
	require.True(t, d.Valid)
	assert.Equal(t, "41.2", d.Decimal.String())

	bad := "n/a"
	_, err = parseNumeric(&bad)
	require.Error(t, err)
}

func TestRateDay_DropsClockAndZone(t *testing.T) {
	kyiv := time.FixedZone("EET", 2*60*60)
	date := internal.NewDate(time.Date(2024, 1, 1, 23, 30, 0, 0, kyiv))

	day := rateDay(date)

	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), day)
}
