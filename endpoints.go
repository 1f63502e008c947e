package currencyapi

import (
	"context"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	statusEndpoint     = "status"
	currenciesEndpoint = "currencies"
	latestEndpoint     = "latest"
	historicalEndpoint = "historical"
	convertEndpoint    = "convert"
	rangeEndpoint      = "range"
)

const (
	baseCurrencyParam  = "base_currency"
	currenciesParam    = "currencies"
	dateParam          = "date"
	valueParam         = "value"
	datetimeStartParam = "datetime_start"
	datetimeEndParam   = "datetime_end"
	accuracyParam      = "accuracy"
)

const (
	dateLayout     = "2006-01-02"
	datetimeLayout = time.RFC3339
)

// Accuracy selects the granularity of Range datapoints.
type Accuracy string

// Accuracy levels accepted by the range endpoint.
const (
	AccuracyDay         Accuracy = "day"
	AccuracyHour        Accuracy = "hour"
	AccuracyQuarterHour Accuracy = "quarter_hour"
	AccuracyMinute      Accuracy = "minute"
)

// Status reports the account the api key belongs to and its usage quotas.
func (c *Client) Status(ctx context.Context) (*StatusResponse, error) {
	var resp StatusResponse
	if err := c.getJSON(ctx, statusEndpoint, url.Values{}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Currencies returns metadata for the given currency codes, or for every
// currency the service knows when currencies is empty.
func (c *Client) Currencies(ctx context.Context, currencies []string) (*CurrenciesResponse, error) {
	params := url.Values{}
	addCurrencies(params, currencies)

	var resp CurrenciesResponse
	if err := c.getJSON(ctx, currenciesEndpoint, params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Latest returns the current exchange rates of baseCurrency against the
// given currencies. Empty arguments are omitted from the request so the
// remote defaults apply (USD base, all currencies).
func (c *Client) Latest(ctx context.Context, baseCurrency string, currencies []string) (*RatesResponse, error) {
	params := url.Values{}
	addBaseCurrency(params, baseCurrency)
	addCurrencies(params, currencies)

	var resp RatesResponse
	if err := c.getJSON(ctx, latestEndpoint, params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Historical returns the exchange rates of one past day. The date is
// required; a zero date fails with ErrMissingDate before anything is sent.
func (c *Client) Historical(ctx context.Context, baseCurrency string, date time.Time, currencies []string) (*RatesResponse, error) {
	if date.IsZero() {
		return nil, ErrMissingDate
	}

	params := url.Values{}
	addBaseCurrency(params, baseCurrency)
	params.Add(dateParam, date.Format(dateLayout))
	addCurrencies(params, currencies)

	var resp RatesResponse
	if err := c.getJSON(ctx, historicalEndpoint, params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Convert asks the service to convert value from baseCurrency into the given
// currencies. The converted amounts arrive in the Value field of each rate.
// A zero date means conversion at the latest rates.
func (c *Client) Convert(ctx context.Context, baseCurrency string, date time.Time, value float64, currencies []string) (*RatesResponse, error) {
	params := url.Values{}
	addBaseCurrency(params, baseCurrency)
	if !date.IsZero() {
		params.Add(dateParam, date.Format(dateLayout))
	}
	params.Add(valueParam, strconv.FormatFloat(value, 'f', -1, 64))
	addCurrencies(params, currencies)

	var resp RatesResponse
	if err := c.getJSON(ctx, convertEndpoint, params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Range returns rate datapoints between start and end at the given accuracy.
// Both bounds are required and are sent in UTC; an empty accuracy leaves the
// choice to the remote default (day).
func (c *Client) Range(ctx context.Context, baseCurrency string, start, end time.Time, accuracy Accuracy, currencies []string) (*RangeResponse, error) {
	if start.IsZero() || end.IsZero() {
		return nil, ErrMissingDate
	}

	params := url.Values{}
	addBaseCurrency(params, baseCurrency)
	params.Add(datetimeStartParam, start.UTC().Format(datetimeLayout))
	params.Add(datetimeEndParam, end.UTC().Format(datetimeLayout))
	if accuracy != "" {
		params.Add(accuracyParam, string(accuracy))
	}
	addCurrencies(params, currencies)

	var resp RangeResponse
	if err := c.getJSON(ctx, rangeEndpoint, params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func addBaseCurrency(params url.Values, baseCurrency string) {
	if baseCurrency != "" {
		params.Add(baseCurrencyParam, baseCurrency)
	}
}

func addCurrencies(params url.Values, currencies []string) {
	if len(currencies) > 0 {
		params.Add(currenciesParam, strings.Join(currencies, ","))
	}
}
