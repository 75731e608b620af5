// Package statsclient talks to the statistics service over HTTP.
package statsclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/stpnv0/ExploreWithMe/internal/domain"
	"github.com/wb-go/wbf/retry"
)

// errClient marks responses that retrying cannot fix.
var errClient = errors.New("stats request rejected")

type Client struct {
	baseURL  string
	http     *http.Client
	strategy retry.Strategy
}

func New(baseURL string, timeout time.Duration, strategy retry.Strategy) *Client {
	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		http:     &http.Client{Timeout: timeout},
		strategy: strategy,
	}
}

type hitRequest struct {
	App       string `json:"app"`
	URI       string `json:"uri"`
	IP        string `json:"ip"`
	Timestamp string `json:"timestamp"`
}

func (c *Client) Hit(ctx context.Context, hit domain.Hit) error {
	body, err := json.Marshal(hitRequest{
		App:       hit.App,
		URI:       hit.URI,
		IP:        hit.IP,
		Timestamp: hit.Timestamp.Format(domain.DateTimeLayout),
	})
	if err != nil {
		return fmt.Errorf("marshal hit: %w", err)
	}

	return c.do(ctx, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/hit", bytes.NewReader(body))
		if err != nil {
			return err
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.http.Do(req)
		if err != nil {
			return err
		}
		defer drain(resp)

		return checkStatus(resp, http.StatusCreated)
	})
}

func (c *Client) Stats(ctx context.Context, q domain.StatsQuery) ([]domain.ViewStats, error) {
	params := url.Values{}
	params.Set("start", q.Start.Format(domain.DateTimeLayout))
	params.Set("end", q.End.Format(domain.DateTimeLayout))
	params.Set("unique", strconv.FormatBool(q.Unique))
	for _, u := range q.URIs {
		params.Add("uris", u)
	}
	endpoint := c.baseURL + "/stats?" + params.Encode()

	var stats []domain.ViewStats
	err := c.do(ctx, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return err
		}

		resp, err := c.http.Do(req)
		if err != nil {
			return err
		}
		defer drain(resp)

		if err = checkStatus(resp, http.StatusOK); err != nil {
			return err
		}

		stats = stats[:0]
		return json.NewDecoder(resp.Body).Decode(&stats)
	})
	if err != nil {
		return nil, err
	}

	return stats, nil
}

// do retries fn with the client's strategy; client errors and a done ctx stop it.
func (c *Client) do(ctx context.Context, fn func() error) error {
	var final error
	err := retry.Do(func() error {
		if err := ctx.Err(); err != nil {
			final = err
			return nil
		}
		if err := fn(); err != nil {
			if errors.Is(err, errClient) {
				final = err
				return nil
			}
			return err
		}
		return nil
	}, c.strategy)
	if err != nil {
		return fmt.Errorf("stats service: %w", err)
	}
	if final != nil {
		return fmt.Errorf("stats service: %w", final)
	}
	return nil
}

func checkStatus(resp *http.Response, want int) error {
	if resp.StatusCode == want {
		return nil
	}

	msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	if resp.StatusCode >= 400 && resp.StatusCode < 500 {
		return fmt.Errorf("%w: %d %s", errClient, resp.StatusCode, bytes.TrimSpace(msg))
	}
	return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, bytes.TrimSpace(msg))
}

func drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}
