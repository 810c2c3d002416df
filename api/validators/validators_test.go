// Copyright (c) 2026 The HeatChain developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package validators

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

	"github.com/heatchain/heat/heat"
	"github.com/heatchain/heat/staker"
)

const testMinStake = 1000

func newTestServer(t *testing.T) (*httptest.Server, *staker.Registry) {
	registry := staker.NewRegistry(testMinStake, 3)
	router := mux.NewRouter()
	New(registry, 10).Mount(router, "/validators")
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv, registry
}

func postJSON(t *testing.T, url string, payload any) ([]byte, int) {
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	res, err := http.Post(url, "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer res.Body.Close()
	data, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return data, res.StatusCode
}

func TestStakeAndList(t *testing.T) {
	srv, _ := newTestServer(t)
	addr := heat.BytesToAddress([]byte("v1"))

	body, status := postJSON(t, srv.URL+"/validators/"+addr.String()+"/stake", StakeRequest{Amount: testMinStake * 2})
	require.Equal(t, http.StatusOK, status)

	var v staker.Validator
	require.NoError(t, json.Unmarshal(body, &v))
	assert.Equal(t, addr, v.Address)
	assert.Equal(t, uint64(testMinStake*2), v.Stake)
	assert.True(t, v.Active)

	body, status = httpGet(t, srv.URL+"/validators")
	require.Equal(t, http.StatusOK, status)
	var reg JSONRegistry
	require.NoError(t, json.Unmarshal(body, &reg))
	assert.Equal(t, uint64(testMinStake*2), reg.TotalStaked)
	assert.Equal(t, 1, reg.ActiveCount)
	assert.Equal(t, uint64(testMinStake), reg.MinStake)
	require.Len(t, reg.Validators, 1)
}

func TestStakeBelowMinimum(t *testing.T) {
	srv, _ := newTestServer(t)
	addr := heat.BytesToAddress([]byte("v1"))

	_, status := postJSON(t, srv.URL+"/validators/"+addr.String()+"/stake", StakeRequest{Amount: testMinStake - 1})
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestUnstake(t *testing.T) {
	srv, registry := newTestServer(t)
	addr := heat.BytesToAddress([]byte("v1"))
	require.NoError(t, registry.Stake(addr, testMinStake*2))

	body, status := postJSON(t, srv.URL+"/validators/"+addr.String()+"/unstake", StakeRequest{Amount: testMinStake + 1})
	require.Equal(t, http.StatusOK, status)

	var v staker.Validator
	require.NoError(t, json.Unmarshal(body, &v))
	assert.Equal(t, uint64(testMinStake-1), v.Stake)
	assert.False(t, v.Active)

	// more than staked
	_, status = postJSON(t, srv.URL+"/validators/"+addr.String()+"/unstake", StakeRequest{Amount: testMinStake})
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestSlash(t *testing.T) {
	srv, registry := newTestServer(t)
	addr := heat.BytesToAddress([]byte("v1"))
	require.NoError(t, registry.Stake(addr, testMinStake*2))

	body, status := postJSON(t, srv.URL+"/validators/"+addr.String()+"/slash", SlashRequest{Percent: 50})
	require.Equal(t, http.StatusOK, status)

	var got struct {
		Slashed uint64 `json:"slashed"`
	}
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, uint64(testMinStake), got.Slashed)

	v, err := registry.Get(addr)
	require.NoError(t, err)
	assert.Equal(t, uint64(testMinStake), v.Stake)
	assert.True(t, v.Active)

	// zero percent falls back to the configured default (10%)
	body, status = postJSON(t, srv.URL+"/validators/"+addr.String()+"/slash", SlashRequest{})
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, uint64(testMinStake/10), got.Slashed)

	_, status = postJSON(t, srv.URL+"/validators/"+heat.BytesToAddress([]byte("nobody")).String()+"/slash", SlashRequest{Percent: 10})
	assert.Equal(t, http.StatusNotFound, status)
}

func TestGetValidatorErrors(t *testing.T) {
	srv, _ := newTestServer(t)

	_, status := httpGet(t, srv.URL+"/validators/"+heat.BytesToAddress([]byte("nobody")).String())
	assert.Equal(t, http.StatusNotFound, status)

	_, status = httpGet(t, srv.URL+"/validators/garbage")
	assert.Equal(t, http.StatusBadRequest, status)

	_, status = postJSON(t, srv.URL+"/validators/"+heat.BytesToAddress([]byte("nobody")).String()+"/unstake", StakeRequest{Amount: 1})
	assert.Equal(t, http.StatusNotFound, status)
}

func httpGet(t *testing.T, url string) ([]byte, int) {
	res, err := http.Get(url)
	require.NoError(t, err)
	defer res.Body.Close()
	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return body, res.StatusCode
}
