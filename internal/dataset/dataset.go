// Package dataset downloads remote datasets over HTTP with retries.
package dataset

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/rs/zerolog/log"

	"github.com/datakit-labs/tidescale/internal/config"
	"github.com/datakit-labs/tidescale/internal/table"
)

type Fetcher struct {
	client *retryablehttp.Client
}

func NewFetcher(cfg *config.FetchEnvConfig) *Fetcher {
	client := retryablehttp.NewClient()
	client.RetryMax = cfg.FetchRetryMax
	client.HTTPClient.Timeout = cfg.FetchTimeout
	client.RetryWaitMin = cfg.FetchRetryWaitMin
	client.RetryWaitMax = cfg.FetchRetryWaitMax
	client.Logger = nil

	log.Debug().
		Int("retry_max", client.RetryMax).
		Str("timeout", client.HTTPClient.Timeout.String()).
		Msg("dataset fetcher initialized")

	return &Fetcher{client: client}
}

// Fetch downloads url and returns the body. zstd and gzip
// Content-Encoding are decompressed transparently.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("fetch %s: bad status %d", url, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: read body: %w", url, err)
	}

	encoding := strings.ToLower(resp.Header.Get("Content-Encoding"))
	switch {
	case strings.Contains(encoding, "zstd"):
		r, err := zstd.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("fetch %s: zstd reader: %w", url, err)
		}
		defer r.Close()

		data, err = io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("fetch %s: zstd decompress: %w", url, err)
		}
	case strings.Contains(encoding, "gzip"):
		r, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("fetch %s: gzip reader: %w", url, err)
		}
		defer r.Close()

		data, err = io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("fetch %s: gzip decompress: %w", url, err)
		}
	}

	log.Debug().Str("url", url).Int("bytes", len(data)).Msg("dataset downloaded")
	return data, nil
}

// FetchTable downloads url and parses the body as numeric CSV.
func (f *Fetcher) FetchTable(ctx context.Context, url string) (*table.Table, error) {
	data, err := f.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}
	return table.ReadCSV(bytes.NewReader(data))
}
