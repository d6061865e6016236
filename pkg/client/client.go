// Package client is a small REST client for the tidescale service.
package client

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-resty/resty/v2"
)

const DefaultTimeout = 30 * time.Second

type Config struct {
	BaseURL string
	Timeout time.Duration
}

type Client struct {
	http *resty.Client
}

// Summary mirrors the service's summary response with NaN standing in
// for fields the service reported as null.
type Summary struct {
	Count   int
	Missing int
	Min     float64
	Max     float64
	Mean    float64
	Median  float64
	StdDev  float64
}

type valuesRequest struct {
	Values []*float64 `json:"values"`
}

type rescaleResponse struct {
	Values []*float64 `json:"values"`
}

type summaryResponse struct {
	Count   int      `json:"count"`
	Missing int      `json:"missing"`
	Min     *float64 `json:"min"`
	Max     *float64 `json:"max"`
	Mean    *float64 `json:"mean"`
	Median  *float64 `json:"median"`
	StdDev  *float64 `json:"std_dev"`
}

func New(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("client base URL cannot be empty")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	http := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetJSONMarshaler(sonic.Marshal).
		SetJSONUnmarshaler(sonic.Unmarshal).
		SetTimeout(cfg.Timeout)

	return &Client{http: http}, nil
}

// Rescale maps values onto [0, 1] via the service. NaN marks a missing
// value on both sides; it travels as JSON null.
func (c *Client) Rescale(ctx context.Context, values []float64) ([]float64, error) {
	var out rescaleResponse

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(valuesRequest{Values: toWire(values)}).
		SetResult(&out).
		Post("/v1/rescale")
	if err != nil {
		return nil, fmt.Errorf("rescale: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("rescale returned status %d: %s", resp.StatusCode(), resp.String())
	}

	return fromWire(out.Values), nil
}

// Summarize computes summary statistics via the service.
func (c *Client) Summarize(ctx context.Context, values []float64) (Summary, error) {
	var out summaryResponse

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(valuesRequest{Values: toWire(values)}).
		SetResult(&out).
		Post("/v1/summary")
	if err != nil {
		return Summary{}, fmt.Errorf("summarize: %w", err)
	}
	if resp.IsError() {
		return Summary{}, fmt.Errorf("summarize returned status %d: %s", resp.StatusCode(), resp.String())
	}

	return Summary{
		Count:   out.Count,
		Missing: out.Missing,
		Min:     deref(out.Min),
		Max:     deref(out.Max),
		Mean:    deref(out.Mean),
		Median:  deref(out.Median),
		StdDev:  deref(out.StdDev),
	}, nil
}

// Health checks service liveness.
func (c *Client) Health(ctx context.Context) error {
	resp, err := c.http.R().SetContext(ctx).Get("/health")
	if err != nil {
		return fmt.Errorf("health: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("health returned status %d", resp.StatusCode())
	}
	return nil
}

func toWire(values []float64) []*float64 {
	out := make([]*float64, len(values))
	for i, v := range values {
		if math.IsNaN(v) {
			continue
		}
		val := v
		out[i] = &val
	}
	return out
}

func fromWire(values []*float64) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		if v == nil {
			out[i] = math.NaN()
		} else {
			out[i] = *v
		}
	}
	return out
}

func deref(v *float64) float64 {
	if v == nil {
		return math.NaN()
	}
	return *v
}
