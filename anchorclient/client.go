// Copyright (c) 2026 The HeatChain developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package anchorclient provides an HTTP client for the anchor-chain
// collaborator. It exposes the small read surface merge-mining and the
// bridge monitor need: the current tip and fee estimates.
package anchorclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/heatchain/heat/heat"
)

const requestTimeout = 10 * time.Second

// Tip describes the anchor chain's best block.
type Tip struct {
	Height    uint64       `json:"height"`
	Hash      heat.Bytes32 `json:"hash"`
	Timestamp uint64       `json:"timestamp"`
}

// FeeEstimate the anchor chain's current fee level.
type FeeEstimate struct {
	GasPrice uint64 `json:"gasPrice"`
}

// Client a client for the anchor-chain HTTP API. Concurrent tip polls
// are deduplicated; callers arriving during an in-flight request share
// its result.
type Client struct {
	url    string
	c      *http.Client
	single singleflight.Group
}

// New creates a new Client with the provided URL.
func New(url string) *Client {
	return NewWithHTTP(url, &http.Client{Timeout: requestTimeout})
}

func NewWithHTTP(url string, c *http.Client) *Client {
	return &Client{
		url: url,
		c:   c,
	}
}

// URL returns the endpoint the client talks to.
func (c *Client) URL() string {
	return c.url
}

// Tip retrieves the anchor chain's best block.
func (c *Client) Tip(ctx context.Context) (*Tip, error) {
	v, err, _ := c.single.Do("tip", func() (interface{}, error) {
		body, err := c.httpGET(ctx, c.url+"/blocks/tip")
		if err != nil {
			return nil, fmt.Errorf("unable to retrieve tip - %w", err)
		}
		var tip Tip
		if err := json.Unmarshal(body, &tip); err != nil {
			return nil, fmt.Errorf("unable to unmarshal tip - %w", err)
		}
		return &tip, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Tip), nil
}

// EstimateFee retrieves the anchor chain's current fee level.
func (c *Client) EstimateFee(ctx context.Context) (*FeeEstimate, error) {
	body, err := c.httpGET(ctx, c.url+"/fees/estimate")
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve fee estimate - %w", err)
	}
	var fee FeeEstimate
	if err := json.Unmarshal(body, &fee); err != nil {
		return nil, fmt.Errorf("unable to unmarshal fee estimate - %w", err)
	}
	return &fee, nil
}

func (c *Client) httpGET(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.c.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("http error - %s", resp.Status)
	}
	return io.ReadAll(resp.Body)
}
