// Copyright (c) 2026 The HeatChain developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package anchorclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTip(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/blocks/tip", r.URL.Path)
		w.Write([]byte(`{"height": 42, "timestamp": 1700000000}`))
	}))
	defer srv.Close()

	tip, err := New(srv.URL).Tip(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(42), tip.Height)
	assert.Equal(t, uint64(1700000000), tip.Timestamp)
}

func TestEstimateFee(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/fees/estimate", r.URL.Path)
		w.Write([]byte(`{"gasPrice": 1234}`))
	}))
	defer srv.Close()

	fee, err := New(srv.URL).EstimateFee(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(1234), fee.GasPrice)
}

func TestUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.Tip(context.Background())
	assert.Error(t, err)
	_, err = c.EstimateFee(context.Background())
	assert.Error(t, err)
}

func TestBadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	_, err := New(srv.URL).Tip(context.Background())
	assert.Error(t, err)
}

func TestUnreachable(t *testing.T) {
	c := New("http://127.0.0.1:1")
	_, err := c.Tip(context.Background())
	assert.Error(t, err)
}
