package currencyapi

import "time"

// Meta carries the metadata block shared by the rate endpoints.
type Meta struct {
	LastUpdatedAt time.Time `json:"last_updated_at"`
}

// Rate is one currency quotation relative to the requested base currency.
type Rate struct {
	Code  string  `json:"code"`
	Value float64 `json:"value"`
}

// RatesResponse is the payload of the latest, historical and convert
// endpoints, which share one shape. For convert, Value holds the converted
// amount rather than the plain rate.
type RatesResponse struct {
	Meta Meta            `json:"meta"`
	Data map[string]Rate `json:"data"`
}

// CurrencyInfo describes one currency known to the service.
type CurrencyInfo struct {
	Symbol        string   `json:"symbol"`
	Name          string   `json:"name"`
	SymbolNative  string   `json:"symbol_native"`
	DecimalDigits int      `json:"decimal_digits"`
	Rounding      int      `json:"rounding"`
	Code          string   `json:"code"`
	NamePlural    string   `json:"name_plural"`
	Type          string   `json:"type"`
	Countries     []string `json:"countries"`
}

// CurrenciesResponse is the payload of the currencies endpoint, keyed by
// currency code.
type CurrenciesResponse struct {
	Data map[string]CurrencyInfo `json:"data"`
}

// Quota is one usage counter of the account.
type Quota struct {
	Total     int `json:"total"`
	Used      int `json:"used"`
	Remaining int `json:"remaining"`
}

// Quotas groups the usage counters of the account.
type Quotas struct {
	Month Quota `json:"month"`
	Grace Quota `json:"grace"`
}

// StatusResponse is the payload of the status endpoint.
type StatusResponse struct {
	AccountID int64  `json:"account_id"`
	Quotas    Quotas `json:"quotas"`
}

// RangeRates is one datapoint of a range response.
type RangeRates struct {
	Datetime   time.Time       `json:"datetime"`
	Currencies map[string]Rate `json:"currencies"`
}

// RangeResponse is the payload of the range endpoint, ordered by datetime.
type RangeResponse struct {
	Data []RangeRates `json:"data"`
}
