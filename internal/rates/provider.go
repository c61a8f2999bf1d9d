package rates

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
)

// DefaultURL is the Central Bank daily quote feed.
const DefaultURL = "https://www.cbr-xml-daily.ru/daily_json.js"

type Provider struct {
	url string
	hc  *http.Client
}

func New(url string, timeout time.Duration) *Provider {
	if url == "" {
		url = DefaultURL
	}
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	return &Provider{
		url: url,
		hc:  &http.Client{Timeout: timeout},
	}
}

// daily_json.js shape: {"Valute": {"USD": {"Value": 90.5}, ...}}
type dailyFeed struct {
	Valute map[string]struct {
		Value float64 `json:"Value"`
	} `json:"Valute"`
}

// Fetch performs one request to the quote feed and builds a rate table.
// On any failure it returns the fallback table together with the error,
// so the caller can log the degradation and continue. The returned
// table always maps the reference currency to 1.
func (p *Provider) Fetch(ctx context.Context) (Table, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url, nil)
	if err != nil {
		return Fallback(), fmt.Errorf("rates request: %w", err)
	}
	req.Header.Set("User-Agent", "VacMetrics/1.0 (+local)")

	res, err := p.hc.Do(req)
	if err != nil {
		return Fallback(), fmt.Errorf("rates get: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode >= 400 {
		return Fallback(), fmt.Errorf("rates status %d", res.StatusCode)
	}

	var feed dailyFeed
	if err := json.NewDecoder(res.Body).Decode(&feed); err != nil {
		return Fallback(), fmt.Errorf("rates decode: %w", err)
	}

	t := Table{Reference: decimal.NewFromInt(1)}
	for _, code := range []string{"USD", "EUR", "KZT"} {
		q, ok := feed.Valute[code]
		if !ok {
			return Fallback(), fmt.Errorf("rates feed missing %s", code)
		}
		v := decimal.NewFromFloat(q.Value)
		if code == "KZT" {
			// the feed quotes tenge per 100 units
			v = v.Div(decimal.NewFromInt(100))
		}
		t[code] = v
	}
	return t, nil
}
