package marketdata

import (
	"context"
	"fmt"
	"time"

	"StockCast/internal/domain/models"
	xhttp "StockCast/pkg/http"
)

// chartResponse mirrors the Yahoo Finance v8 chart API payload.
type chartResponse struct {
	Chart struct {
		Result []chartResult `json:"result"`
		Error  interface{}   `json:"error"`
	} `json:"chart"`
}

type chartResult struct {
	Timestamp  []int64 `json:"timestamp"`
	Indicators struct {
		Quote []chartQuote `json:"quote"`
	} `json:"indicators"`
}

type chartQuote struct {
	Open   []float64 `json:"open"`
	High   []float64 `json:"high"`
	Low    []float64 `json:"low"`
	Close  []float64 `json:"close"`
	Volume []float64 `json:"volume"`
}

// YahooClient fetches daily OHLCV history from a Yahoo-compatible chart API.
type YahooClient struct {
	baseURL string
	rng     string
	client  *xhttp.Client
}

// NewYahooClient creates a chart API client with an explicit request timeout.
func NewYahooClient(baseURL, rng string, timeout time.Duration) *YahooClient {
	return &YahooClient{
		baseURL: baseURL,
		rng:     rng,
		client:  xhttp.NewClient(xhttp.WithTimeout(timeout)),
	}
}

// FetchDaily returns the daily bars for a symbol, ascending by date.
// Rows with a missing close are skipped.
func (y *YahooClient) FetchDaily(ctx context.Context, symbol string) ([]models.Bar, error) {
	var resp chartResponse
	err := y.client.SendAndParse(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodGet,
		URL:    fmt.Sprintf("%s/%s", y.baseURL, symbol),
		QueryParams: map[string][]string{
			"range":    {y.rng},
			"interval": {"1d"},
		},
		Headers: map[string]string{
			"User-Agent": "StockCast/1.0",
		},
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("chart fetch %s: %w", symbol, err)
	}

	if len(resp.Chart.Result) == 0 || len(resp.Chart.Result[0].Indicators.Quote) == 0 {
		return nil, fmt.Errorf("chart fetch %s: empty result", symbol)
	}

	res := resp.Chart.Result[0]
	quote := res.Indicators.Quote[0]

	bars := make([]models.Bar, 0, len(res.Timestamp))
	for i, ts := range res.Timestamp {
		if i >= len(quote.Close) || quote.Close[i] <= 0 {
			continue
		}
		bars = append(bars, models.Bar{
			Date:   time.Unix(ts, 0).UTC(),
			Open:   at(quote.Open, i),
			High:   at(quote.High, i),
			Low:    at(quote.Low, i),
			Close:  quote.Close[i],
			Volume: at(quote.Volume, i),
		})
	}
	return bars, nil
}

func at(xs []float64, i int) float64 {
	if i < len(xs) {
		return xs[i]
	}
	return 0
}
