package main

import (
	"testing"
	"time"

	"github.com/jinzhu/now"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	currencyapi "github.com/shiftcontrol-dan/currencyapi-go"
)

func Test_OnPeriodWeek_ShouldStartAtBeginningOfWeek(t *testing.T) {
	start, end, err := rangeBounds("", "", "week")
	require.NoError(t, err)
	assert.True(t, start.Equal(now.BeginningOfWeek()))
	assert.WithinDuration(t, time.Now(), end, time.Minute)
}

func Test_OnUnknownPeriod_ShouldFail(t *testing.T) {
	_, _, err := rangeBounds("", "", "quarter")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not supported")
}

func Test_OnExplicitBounds_ShouldParseRFC3339(t *testing.T) {
	start, end, err := rangeBounds("2024-01-01T00:00:00Z", "2024-01-05T00:00:00Z", "")
	require.NoError(t, err)
	assert.True(t, start.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, end.Equal(time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)))
}

func Test_OnMissingBounds_ShouldFail(t *testing.T) {
	_, _, err := rangeBounds("2024-01-01T00:00:00Z", "", "")
	assert.Error(t, err)
}

func Test_OnFormatRates_ShouldSortCodes(t *testing.T) {
	meta := currencyapi.Meta{LastUpdatedAt: time.Date(2024, 1, 15, 23, 59, 59, 0, time.UTC)}
	rates := map[string]currencyapi.Rate{
		"USD": {Code: "USD", Value: 1.088154},
		"GBP": {Code: "GBP", Value: 0.786829},
	}

	out := formatRates(meta, rates)
	assert.Equal(t, "GBP: 0.786829\nUSD: 1.088154\n\nUpdated at 2024-01-15T23:59:59Z", out)
}

func Test_OnSplitSymbols_ShouldFallBackToDefaults(t *testing.T) {
	assert.Equal(t, []string{"EUR", "GBP"}, splitSymbols("", []string{"EUR", "GBP"}))
	assert.Equal(t, []string{"USD", "JPY"}, splitSymbols("USD,JPY", []string{"EUR"}))
}

func Test_OnSplitSymbols_ShouldTrimSpaces(t *testing.T) {
	assert.Equal(t, []string{"USD", "GBP"}, splitSymbols("USD, GBP", []string{"EUR"}))
	assert.Equal(t, []string{"USD"}, splitSymbols(" USD ,", nil))
}
