// Copyright (c) 2026 The HeatChain developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package node

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heatchain/heat/genesis"
	"github.com/heatchain/heat/heat"
	"github.com/heatchain/heat/ledger"
	"github.com/heatchain/heat/lvldb"
	"github.com/heatchain/heat/node"
)

type fakeStatus struct {
	state node.State
}

func (f *fakeStatus) State() node.State { return f.state }

func newTestServer(t *testing.T, status Status) (*httptest.Server, *ledger.Ledger) {
	db, err := lvldb.NewMem()
	require.NoError(t, err)
	chain, err := ledger.New(db, genesis.Devnet.Build())
	require.NoError(t, err)

	router := mux.NewRouter()
	New(status, chain).Mount(router, "/node")
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv, chain
}

func TestGetStatus(t *testing.T) {
	status := &fakeStatus{state: node.State{
		Height:         7,
		BestBlockHash:  heat.Blake2b([]byte("best")),
		RemoteHeight:   9,
		PendingTxCount: 3,
		BlocksMined:    5,
		SettlementMode: "fraud-proof",
	}}

	srv, _ := newTestServer(t, status)

	res, err := http.Get(srv.URL + "/node/status")
	require.NoError(t, err)
	body, err := io.ReadAll(res.Body)
	res.Body.Close()
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var got node.State
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, status.state, got)
}

func TestPostRemoteHeight(t *testing.T) {
	srv, chain := newTestServer(t, &fakeStatus{})

	post := func(payload string) (map[string]uint64, int) {
		res, err := http.Post(srv.URL+"/node/remote-height", "application/json",
			bytes.NewBufferString(payload))
		require.NoError(t, err)
		defer res.Body.Close()
		var body map[string]uint64
		if res.StatusCode == http.StatusOK {
			require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
		}
		return body, res.StatusCode
	}

	body, status := post(`{"height": 42}`)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, uint64(42), body["remoteHeight"])
	assert.Equal(t, uint64(42), chain.RemoteHeight())

	// the pointer never decreases
	body, status = post(`{"height": 7}`)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, uint64(42), body["remoteHeight"])

	_, status = post(`{"height": "nope"}`)
	assert.Equal(t, http.StatusBadRequest, status)
}
