package marketdata

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"StockCast/internal/domain/models"
)

func chartJSON(timestamps []int64, closes []string) string {
	ts := ""
	for i, t := range timestamps {
		if i > 0 {
			ts += ","
		}
		ts += fmt.Sprintf("%d", t)
	}
	cl := ""
	for i, c := range closes {
		if i > 0 {
			cl += ","
		}
		cl += c
	}
	return fmt.Sprintf(`{"chart": {"result": [{"timestamp": [%s], "indicators": {"quote": [{"close": [%s]}]}}], "error": null}}`, ts, cl)
}

func TestFetchHistoryParsesChart(t *testing.T) {
	day := int64(86400)
	base := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC).Unix()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v8/finance/chart/AAPL" {
			t.Errorf("path = %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("interval") != "1d" || q.Get("period1") == "" || q.Get("period2") == "" {
			t.Errorf("query = %v", q)
		}
		fmt.Fprint(w, chartJSON([]int64{base, base + day, base + 2*day}, []string{"101.5", "102.25", "103"}))
	}))
	defer srv.Close()

	client := NewYahooClient(srv.URL, 5*time.Second, "", nil)
	series, err := client.FetchHistory(context.Background(), "AAPL", time.Unix(base, 0), time.Unix(base+2*day, 0), "1d")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(series) != 3 {
		t.Fatalf("len = %d, want 3", len(series))
	}
	if series.First().Close != 101.5 || series.Last().Close != 103 {
		t.Errorf("closes = %v", series.Closes())
	}
	if !series[0].Date.Equal(time.Unix(base, 0).UTC()) {
		t.Errorf("first date = %v", series[0].Date)
	}
}

func TestFetchHistorySkipsNullBars(t *testing.T) {
	day := int64(86400)
	base := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC).Unix()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, chartJSON([]int64{base, base + day, base + 2*day}, []string{"101.5", "null", "103"}))
	}))
	defer srv.Close()

	client := NewYahooClient(srv.URL, 5*time.Second, "", nil)
	series, err := client.FetchHistory(context.Background(), "AAPL", time.Unix(base, 0), time.Unix(base+2*day, 0), "1d")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(series) != 2 {
		t.Fatalf("len = %d, want null bar dropped", len(series))
	}
	if series.Closes()[0] != 101.5 || series.Closes()[1] != 103 {
		t.Errorf("closes = %v", series.Closes())
	}
}

func TestFetchHistoryAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"chart": {"result": null, "error": {"code": "Not Found", "description": "No data found, symbol may be delisted"}}}`)
	}))
	defer srv.Close()

	client := NewYahooClient(srv.URL, 5*time.Second, "", nil)
	_, err := client.FetchHistory(context.Background(), "GONE", time.Now().AddDate(0, 0, -30), time.Now(), "1d")
	if !errors.Is(err, models.ErrDataUnavailable) {
		t.Fatalf("got %v, want ErrDataUnavailable", err)
	}
}

func TestFetchHistoryHTTPFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "too many requests", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := NewYahooClient(srv.URL, 5*time.Second, "", nil)
	_, err := client.FetchHistory(context.Background(), "AAPL", time.Now().AddDate(0, 0, -30), time.Now(), "1d")
	if !errors.Is(err, models.ErrDataUnavailable) {
		t.Fatalf("got %v, want ErrDataUnavailable", err)
	}
}

func TestFetchHistorySymbolMapping(t *testing.T) {
	base := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC).Unix()
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		fmt.Fprint(w, chartJSON([]int64{base}, []string{"5000"}))
	}))
	defer srv.Close()

	client := NewYahooClient(srv.URL, 5*time.Second, "", map[string]string{"SPX500": "^GSPC"})
	_, err := client.FetchHistory(context.Background(), "SPX500", time.Unix(base, 0), time.Unix(base, 0), "1d")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if gotPath != "/v8/finance/chart/^GSPC" {
		t.Errorf("path = %s, want mapped symbol", gotPath)
	}
}

func TestFetchLatestClose(t *testing.T) {
	day := int64(86400)
	base := time.Now().AddDate(0, 0, -3).Unix()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, chartJSON([]int64{base, base + day, base + 2*day}, []string{"200", "201", "202.5"}))
	}))
	defer srv.Close()

	client := NewYahooClient(srv.URL, 5*time.Second, "", nil)
	price, err := client.FetchLatestClose(context.Background(), "AAPL")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if price != 202.5 {
		t.Errorf("price = %v, want 202.5", price)
	}
}
