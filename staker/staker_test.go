// Copyright (c) 2026 The HeatChain developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package staker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heatchain/heat/heat"
)

const minStake = 1000

func addr(b byte) heat.Address {
	return heat.BytesToAddress([]byte{b})
}

func newRegistry() *Registry {
	return NewRegistry(minStake, 3)
}

func TestStakeActivates(t *testing.T) {
	r := newRegistry()

	require.NoError(t, r.Stake(addr(1), minStake))

	v, err := r.Get(addr(1))
	require.NoError(t, err)
	assert.True(t, v.Active)
	assert.Equal(t, uint64(minStake), v.Stake)
	assert.Equal(t, uint64(minStake), r.TotalStaked())
	assert.Equal(t, 1, r.ActiveCount())
}

func TestStakeBelowMinimum(t *testing.T) {
	r := newRegistry()

	err := r.Stake(addr(1), minStake-1)
	assert.ErrorIs(t, err, ErrBelowMinimum)
	assert.Equal(t, uint64(0), r.TotalStaked())
	assert.Equal(t, 0, r.ActiveCount())

	_, err = r.Get(addr(1))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStakeSetFull(t *testing.T) {
	r := newRegistry()

	for b := byte(1); b <= 3; b++ {
		require.NoError(t, r.Stake(addr(b), minStake))
	}
	assert.ErrorIs(t, r.Stake(addr(4), minStake), ErrSetFull)

	// topping up an already-active validator is fine even when full
	require.NoError(t, r.Stake(addr(1), minStake))
	assert.Equal(t, 3, r.ActiveCount())
	assert.Equal(t, uint64(4*minStake), r.TotalStaked())
}

func TestUnstake(t *testing.T) {
	r := newRegistry()
	require.NoError(t, r.Stake(addr(1), minStake))

	assert.ErrorIs(t, r.Unstake(addr(9), 1), ErrNotFound)
	assert.ErrorIs(t, r.Unstake(addr(1), minStake+1), ErrInsufficientStake)

	// dropping 1 unit below the minimum deactivates
	require.NoError(t, r.Unstake(addr(1), 1))
	v, err := r.Get(addr(1))
	require.NoError(t, err)
	assert.False(t, v.Active)
	assert.Equal(t, 0, r.ActiveCount())
	assert.Equal(t, uint64(minStake-1), r.TotalStaked())

	// record survives at stake zero
	require.NoError(t, r.Unstake(addr(1), minStake-1))
	v, err = r.Get(addr(1))
	require.NoError(t, err)
	assert.Equal(t, uint64(0), v.Stake)
}

func TestSlash(t *testing.T) {
	r := newRegistry()
	require.NoError(t, r.Stake(addr(1), minStake))

	slashed, err := r.Slash(addr(1), 10)
	require.NoError(t, err)
	assert.Equal(t, uint64(minStake/10), slashed)
	assert.Equal(t, uint64(minStake-minStake/10), r.TotalStaked())

	v, err := r.Get(addr(1))
	require.NoError(t, err)
	assert.False(t, v.Active, "slash below minimum deactivates")

	_, err = r.Slash(addr(9), 10)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSlashFull(t *testing.T) {
	r := newRegistry()
	require.NoError(t, r.Stake(addr(1), minStake))

	slashed, err := r.Slash(addr(1), 100)
	require.NoError(t, err)
	assert.Equal(t, uint64(minStake), slashed)

	v, err := r.Get(addr(1))
	require.NoError(t, err)
	assert.Equal(t, uint64(0), v.Stake)
	assert.False(t, v.Active)
	assert.Equal(t, 0, r.ActiveCount())
	assert.Equal(t, uint64(0), r.TotalStaked())

	// slashing the empty record again stays at zero
	slashed, err = r.Slash(addr(1), 100)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), slashed)
}

func TestSlashRoundsDown(t *testing.T) {
	r := NewRegistry(1, 3)
	require.NoError(t, r.Stake(addr(1), 99))

	slashed, err := r.Slash(addr(1), 50)
	require.NoError(t, err)
	assert.Equal(t, uint64(49), slashed)
}

func TestDistributeRewards(t *testing.T) {
	r := newRegistry()
	require.NoError(t, r.Stake(addr(1), minStake))
	require.NoError(t, r.Stake(addr(2), minStake))
	require.NoError(t, r.Stake(addr(3), minStake))

	r.DistributeRewards(100)

	var sum uint64
	for _, v := range r.List() {
		assert.Equal(t, uint64(100/3), v.TotalRewards)
		sum += v.TotalRewards
	}
	assert.LessOrEqual(t, sum, uint64(100))

	// the remainder is carried into the next round: 1 + 2 = 3, 1 each
	r.DistributeRewards(2)
	for _, v := range r.List() {
		assert.Equal(t, uint64(100/3+1), v.TotalRewards)
	}
}

func TestDistributeRewardsNoActive(t *testing.T) {
	r := newRegistry()
	r.DistributeRewards(100) // no-op, carried

	require.NoError(t, r.Stake(addr(1), minStake))
	r.DistributeRewards(0)

	v, err := r.Get(addr(1))
	require.NoError(t, err)
	assert.Equal(t, uint64(100), v.TotalRewards)
}

func TestRecordProduction(t *testing.T) {
	r := newRegistry()
	require.NoError(t, r.Stake(addr(1), minStake))

	require.NoError(t, r.RecordProduction(addr(1), 7))
	v, err := r.Get(addr(1))
	require.NoError(t, err)
	assert.Equal(t, uint64(1), v.BlocksProduced)
	assert.Equal(t, uint64(7), v.LastActiveHeight)

	assert.ErrorIs(t, r.RecordProduction(addr(9), 7), ErrNotFound)
}

func TestListOrdered(t *testing.T) {
	r := newRegistry()
	require.NoError(t, r.Stake(addr(3), minStake))
	require.NoError(t, r.Stake(addr(1), minStake))
	require.NoError(t, r.Stake(addr(2), minStake))

	list := r.List()
	require.Len(t, list, 3)
	assert.Equal(t, addr(1), list[0].Address)
	assert.Equal(t, addr(2), list[1].Address)
	assert.Equal(t, addr(3), list[2].Address)
}

func TestGetReturnsCopy(t *testing.T) {
	r := newRegistry()
	require.NoError(t, r.Stake(addr(1), minStake))

	v, err := r.Get(addr(1))
	require.NoError(t, err)
	v.Stake = 0

	again, err := r.Get(addr(1))
	require.NoError(t, err)
	assert.Equal(t, uint64(minStake), again.Stake)
}
