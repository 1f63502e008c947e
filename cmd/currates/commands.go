package main

import (
	"context"
	"flag"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/jinzhu/now"
	"github.com/pkg/errors"

	currencyapi "github.com/shiftcontrol-dan/currencyapi-go"
	"github.com/shiftcontrol-dan/currencyapi-go/internal/config"
)

const (
	dateLayout     = "2006-01-02"
	datetimeLayout = time.RFC3339
)

var rangePeriods = map[string]func() time.Time{
	"week":  now.BeginningOfWeek,
	"month": now.BeginningOfMonth,
	"year":  now.BeginningOfYear,
}

type command func(ctx context.Context, client *currencyapi.Client, app *config.AppConfig, args []string) (string, error)

var commands = map[string]command{
	"status":     runStatus,
	"currencies": runCurrencies,
	"latest":     runLatest,
	"historical": runHistorical,
	"convert":    runConvert,
	"range":      runRange,
}

func runCommand(ctx context.Context, client *currencyapi.Client, app *config.AppConfig, name string, args []string) (string, error) {
	cmd, ok := commands[name]
	if !ok {
		return "", fmt.Errorf("unknown command %s", name)
	}
	return cmd(ctx, client, app, args)
}

func runStatus(ctx context.Context, client *currencyapi.Client, _ *config.AppConfig, args []string) (string, error) {
	fs := flag.NewFlagSet("status", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return "", err
	}

	resp, err := client.Status(ctx)
	if err != nil {
		return "", err
	}
	return formatStatus(resp), nil
}

func runCurrencies(ctx context.Context, client *currencyapi.Client, app *config.AppConfig, args []string) (string, error) {
	fs := flag.NewFlagSet("currencies", flag.ContinueOnError)
	symbols := fs.String("currencies", "", "comma-separated currency codes")
	if err := fs.Parse(args); err != nil {
		return "", err
	}

	resp, err := client.Currencies(ctx, splitSymbols(*symbols, app.Symbols()))
	if err != nil {
		return "", err
	}
	return formatCurrencies(resp), nil
}

func runLatest(ctx context.Context, client *currencyapi.Client, app *config.AppConfig, args []string) (string, error) {
	fs := flag.NewFlagSet("latest", flag.ContinueOnError)
	base := fs.String("base", app.BaseCurrency(), "base currency code")
	symbols := fs.String("currencies", "", "comma-separated currency codes")
	if err := fs.Parse(args); err != nil {
		return "", err
	}

	resp, err := client.Latest(ctx, *base, splitSymbols(*symbols, app.Symbols()))
	if err != nil {
		return "", err
	}
	return formatRates(resp.Meta, resp.Data), nil
}

func runHistorical(ctx context.Context, client *currencyapi.Client, app *config.AppConfig, args []string) (string, error) {
	fs := flag.NewFlagSet("historical", flag.ContinueOnError)
	base := fs.String("base", app.BaseCurrency(), "base currency code")
	symbols := fs.String("currencies", "", "comma-separated currency codes")
	dateArg := fs.String("date", "", "day to report, "+dateLayout)
	if err := fs.Parse(args); err != nil {
		return "", err
	}

	if *dateArg == "" {
		return "", errors.New("-date is required")
	}
	date, err := time.Parse(dateLayout, *dateArg)
	if err != nil {
		return "", errors.Wrap(err, "parsing -date")
	}

	resp, err := client.Historical(ctx, *base, date, splitSymbols(*symbols, app.Symbols()))
	if err != nil {
		return "", err
	}
	return formatRates(resp.Meta, resp.Data), nil
}

func runConvert(ctx context.Context, client *currencyapi.Client, app *config.AppConfig, args []string) (string, error) {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	base := fs.String("base", app.BaseCurrency(), "base currency code")
	symbols := fs.String("currencies", "", "comma-separated currency codes")
	dateArg := fs.String("date", "", "conversion day, "+dateLayout+" (latest when empty)")
	value := fs.Float64("value", 0, "amount to convert")
	if err := fs.Parse(args); err != nil {
		return "", err
	}

	if *value <= 0 {
		return "", errors.New("-value must be positive")
	}

	var date time.Time
	if *dateArg != "" {
		var err error
		date, err = time.Parse(dateLayout, *dateArg)
		if err != nil {
			return "", errors.Wrap(err, "parsing -date")
		}
	}

	resp, err := client.Convert(ctx, *base, date, *value, splitSymbols(*symbols, app.Symbols()))
	if err != nil {
		return "", err
	}
	return formatRates(resp.Meta, resp.Data), nil
}

func runRange(ctx context.Context, client *currencyapi.Client, app *config.AppConfig, args []string) (string, error) {
	fs := flag.NewFlagSet("range", flag.ContinueOnError)
	base := fs.String("base", app.BaseCurrency(), "base currency code")
	symbols := fs.String("currencies", "", "comma-separated currency codes")
	startArg := fs.String("start", "", "range start, "+datetimeLayout)
	endArg := fs.String("end", "", "range end, "+datetimeLayout)
	period := fs.String("period", "", "shortcut for -start and -end: week, month or year")
	accuracy := fs.String("accuracy", "", "datapoint granularity: day, hour, quarter_hour or minute")
	if err := fs.Parse(args); err != nil {
		return "", err
	}

	start, end, err := rangeBounds(*startArg, *endArg, *period)
	if err != nil {
		return "", err
	}

	resp, err := client.Range(ctx, *base, start, end, currencyapi.Accuracy(*accuracy), splitSymbols(*symbols, app.Symbols()))
	if err != nil {
		return "", err
	}
	return formatRange(resp), nil
}

func rangeBounds(startArg, endArg, period string) (start, end time.Time, err error) {
	if period != "" {
		boundary, ok := rangePeriods[period]
		if !ok {
			return start, end, fmt.Errorf("range period %s is not supported", period)
		}
		return boundary(), time.Now(), nil
	}

	if startArg == "" || endArg == "" {
		return start, end, errors.New("either -period or both -start and -end are required")
	}

	start, err = time.Parse(datetimeLayout, startArg)
	if err != nil {
		return start, end, errors.Wrap(err, "parsing -start")
	}
	end, err = time.Parse(datetimeLayout, endArg)
	if err != nil {
		return start, end, errors.Wrap(err, "parsing -end")
	}
	return start, end, nil
}

func splitSymbols(flagValue string, defaults []string) []string {
	if flagValue == "" {
		return defaults
	}

	parts := strings.Split(flagValue, ",")
	symbols := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			symbols = append(symbols, part)
		}
	}
	return symbols
}

func formatStatus(resp *currencyapi.StatusResponse) string {
	res := []string{
		fmt.Sprintf("Account: %d", resp.AccountID),
		fmt.Sprintf("Month quota: %d/%d used, %d remaining",
			resp.Quotas.Month.Used, resp.Quotas.Month.Total, resp.Quotas.Month.Remaining),
		fmt.Sprintf("Grace quota: %d/%d used, %d remaining",
			resp.Quotas.Grace.Used, resp.Quotas.Grace.Total, resp.Quotas.Grace.Remaining),
	}
	return strings.Join(res, "\n")
}

func formatCurrencies(resp *currencyapi.CurrenciesResponse) string {
	codes := make([]string, 0, len(resp.Data))
	for code := range resp.Data {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	res := make([]string, 0, len(codes))
	for _, code := range codes {
		info := resp.Data[code]
		res = append(res, fmt.Sprintf("%s: %s (%s)", code, info.Name, info.Symbol))
	}
	return strings.Join(res, "\n")
}

func formatRates(meta currencyapi.Meta, rates map[string]currencyapi.Rate) string {
	res := make([]string, 0, len(rates)+2)
	for _, code := range sortedRateCodes(rates) {
		res = append(res, fmt.Sprintf("%s: %.6f", code, rates[code].Value))
	}
	res = append(res, "", "Updated at "+meta.LastUpdatedAt.Format(datetimeLayout))
	return strings.Join(res, "\n")
}

func formatRange(resp *currencyapi.RangeResponse) string {
	res := make([]string, 0, len(resp.Data)*2)
	for _, point := range resp.Data {
		res = append(res, point.Datetime.Format(datetimeLayout)+":")
		for _, code := range sortedRateCodes(point.Currencies) {
			res = append(res, fmt.Sprintf("  %s: %.6f", code, point.Currencies[code].Value))
		}
	}
	return strings.Join(res, "\n")
}

func sortedRateCodes(rates map[string]currencyapi.Rate) []string {
	codes := make([]string, 0, len(rates))
	for code := range rates {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
