package marketdata

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"time"

	"StockCast/internal/domain/models"
	drepo "StockCast/internal/domain/repository"
	xhttp "StockCast/pkg/http"
)

// IntervalDaily is the only granularity this system fetches.
const IntervalDaily = "1d"

// YahooClient implements HistoryProvider against the Yahoo Finance chart API.
type YahooClient struct {
	baseURL   string
	client    *xhttp.Client
	symbolMap map[string]string
}

// NewYahooClient creates a Yahoo Finance history provider. symbolMap
// translates internal symbols to Yahoo tickers (e.g. SPX500 -> ^GSPC).
func NewYahooClient(baseURL string, timeout time.Duration, userAgent string, symbolMap map[string]string) drepo.HistoryProvider {
	if userAgent == "" {
		userAgent = "Mozilla/5.0"
	}
	return &YahooClient{
		baseURL:   baseURL,
		client:    xhttp.NewClient(xhttp.WithTimeout(timeout), xhttp.WithUserAgent(userAgent)),
		symbolMap: symbolMap,
	}
}

func (y *YahooClient) yahooSymbol(symbol string) string {
	if mapped, ok := y.symbolMap[symbol]; ok {
		return mapped
	}
	return symbol
}

// yahooChart is the response structure of the Yahoo chart API. Close values
// are pointers because holidays and halts come back as nulls.
type yahooChart struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Close []*float64 `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// FetchHistory returns daily closes for [from, to], ascending by date.
// Any upstream failure or empty result is reported as ErrDataUnavailable;
// no retries happen here.
func (y *YahooClient) FetchHistory(ctx context.Context, symbol string, from, to time.Time, interval string) (models.PriceSeries, error) {
	if interval == "" {
		interval = IntervalDaily
	}

	params := url.Values{}
	params.Set("period1", strconv.FormatInt(from.Unix(), 10))
	params.Set("period2", strconv.FormatInt(to.Unix(), 10))
	params.Set("interval", interval)

	var chart yahooChart
	err := y.client.SendAndParse(ctx, &xhttp.RequestOptions{
		Method:      xhttp.MethodGet,
		URL:         fmt.Sprintf("%s/v8/finance/chart/%s", y.baseURL, url.PathEscape(y.yahooSymbol(symbol))),
		QueryParams: params,
	}, &chart)
	if err != nil {
		return nil, fmt.Errorf("yahoo fetch %s: %v: %w", symbol, err, models.ErrDataUnavailable)
	}

	if chart.Chart.Error != nil {
		return nil, fmt.Errorf("yahoo api error for %s: %s: %w", symbol, chart.Chart.Error.Description, models.ErrDataUnavailable)
	}
	if len(chart.Chart.Result) == 0 || len(chart.Chart.Result[0].Timestamp) == 0 {
		return nil, fmt.Errorf("yahoo: no data for %s: %w", symbol, models.ErrDataUnavailable)
	}

	result := chart.Chart.Result[0]
	if len(result.Indicators.Quote) == 0 {
		return nil, fmt.Errorf("yahoo: no quote data for %s: %w", symbol, models.ErrDataUnavailable)
	}
	quote := result.Indicators.Quote[0]

	series := make(models.PriceSeries, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		if i >= len(quote.Close) || quote.Close[i] == nil {
			continue // null bars: holidays, halts
		}
		series = append(series, models.PricePoint{
			Date:  time.Unix(ts, 0).UTC(),
			Close: *quote.Close[i],
		})
	}
	if len(series) == 0 {
		return nil, fmt.Errorf("yahoo: only null bars for %s: %w", symbol, models.ErrDataUnavailable)
	}

	sort.Slice(series, func(i, j int) bool { return series[i].Date.Before(series[j].Date) })
	return series, nil
}

// FetchLatestClose returns the most recent daily close for the symbol.
func (y *YahooClient) FetchLatestClose(ctx context.Context, symbol string) (float64, error) {
	now := time.Now()
	series, err := y.FetchHistory(ctx, symbol, now.AddDate(0, 0, -5), now, IntervalDaily)
	if err != nil {
		return 0, err
	}
	return series.Last().Close, nil
}
