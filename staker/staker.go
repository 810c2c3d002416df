// Copyright (c) 2026 The HeatChain developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package staker maintains the bounded validator set and its stake ledger.
package staker

import (
	"sort"
	"sync"

	"github.com/heatchain/heat/heat"
	"github.com/heatchain/heat/metrics"
)

var (
	metricTotalStaked = metrics.Gauge("staker_total_staked")
	metricActiveCount = metrics.Gauge("staker_active_count")
	metricSlashed     = metrics.Counter("staker_slashed_total")
)

// Registry the stake ledger over a bounded, addressable validator set.
//
// total staked and active count are updated in the same critical section as
// the validator map, so no reader can observe them out of sync.
type Registry struct {
	lock        sync.RWMutex
	validators  map[heat.Address]*Validator
	totalStaked uint64
	activeCount int
	rewardCarry uint64 // integer-division remainder carried into the next distribution

	minStake      uint64
	maxValidators int
}

// NewRegistry creates an empty registry.
func NewRegistry(minStake uint64, maxValidators int) *Registry {
	return &Registry{
		validators:    make(map[heat.Address]*Validator),
		minStake:      minStake,
		maxValidators: maxValidators,
	}
}

// MinStake returns the configured activation threshold.
func (r *Registry) MinStake() uint64 {
	return r.minStake
}

// Stake adds stake for the validator, creating the record on first stake.
// The full amount of every single call must reach the minimum.
func (r *Registry) Stake(addr heat.Address, amount uint64) error {
	if amount < r.minStake {
		return ErrBelowMinimum
	}

	r.lock.Lock()
	defer r.lock.Unlock()

	v, ok := r.validators[addr]
	if !ok {
		v = &Validator{Address: addr}
	}
	// only reject when the call would grow the active set
	if !v.Active && r.activeCount >= r.maxValidators {
		return ErrSetFull
	}
	if !ok {
		r.validators[addr] = v
	}

	v.Stake += amount
	r.totalStaked += amount
	r.refreshActive(v)
	return nil
}

// Unstake deducts stake. The validator deactivates when its stake drops
// below the minimum; the record survives at stake 0.
func (r *Registry) Unstake(addr heat.Address, amount uint64) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	v, ok := r.validators[addr]
	if !ok {
		return ErrNotFound
	}
	if amount > v.Stake {
		return ErrInsufficientStake
	}

	v.Stake -= amount
	r.totalStaked -= amount
	r.refreshActive(v)
	return nil
}

// Slash deducts stake*penaltyPercent/100 (rounded down, saturating) and
// returns the slashed amount.
func (r *Registry) Slash(addr heat.Address, penaltyPercent uint64) (uint64, error) {
	if penaltyPercent > 100 {
		penaltyPercent = 100
	}

	r.lock.Lock()
	defer r.lock.Unlock()

	v, ok := r.validators[addr]
	if !ok {
		return 0, ErrNotFound
	}

	// equals stake*percent/100 rounded down, without overflowing uint64
	slashed := v.Stake/100*penaltyPercent + v.Stake%100*penaltyPercent/100
	if slashed > v.Stake {
		slashed = v.Stake
	}

	v.Stake -= slashed
	r.totalStaked -= slashed
	r.refreshActive(v)

	metricSlashed.Add(int64(slashed))
	return slashed, nil
}

// DistributeRewards splits the total evenly across active validators.
// The integer-division remainder is carried forward into the next call
// instead of being burned. No-op while the active set is empty.
func (r *Registry) DistributeRewards(total uint64) {
	r.lock.Lock()
	defer r.lock.Unlock()

	if r.activeCount == 0 {
		r.rewardCarry += total
		return
	}

	payable := total + r.rewardCarry
	perValidator := payable / uint64(r.activeCount)
	r.rewardCarry = payable % uint64(r.activeCount)
	if perValidator == 0 {
		return
	}

	for _, v := range r.validators {
		if v.Active {
			v.TotalRewards += perValidator
		}
	}
}

// RecordProduction credits a produced block to the validator.
func (r *Registry) RecordProduction(addr heat.Address, height uint64) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	v, ok := r.validators[addr]
	if !ok {
		return ErrNotFound
	}
	v.BlocksProduced++
	v.LastActiveHeight = height
	return nil
}

// Get returns a copy of the validator record.
func (r *Registry) Get(addr heat.Address) (*Validator, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	v, ok := r.validators[addr]
	if !ok {
		return nil, ErrNotFound
	}
	return v.copy(), nil
}

// List returns copies of all validator records, ordered by address.
func (r *Registry) List() []*Validator {
	r.lock.RLock()
	defer r.lock.RUnlock()

	list := make([]*Validator, 0, len(r.validators))
	for _, v := range r.validators {
		list = append(list, v.copy())
	}
	sort.Slice(list, func(i, j int) bool {
		return string(list[i].Address.Bytes()) < string(list[j].Address.Bytes())
	})
	return list
}

// TotalStaked returns the sum of all validator stakes.
func (r *Registry) TotalStaked() uint64 {
	r.lock.RLock()
	defer r.lock.RUnlock()
	return r.totalStaked
}

// ActiveCount returns the number of active validators.
func (r *Registry) ActiveCount() int {
	r.lock.RLock()
	defer r.lock.RUnlock()
	return r.activeCount
}

// refreshActive recomputes the active flag from current stake and keeps the
// active count in step. Callers must hold the write lock.
func (r *Registry) refreshActive(v *Validator) {
	active := v.Stake >= r.minStake
	if active != v.Active {
		if active {
			r.activeCount++
		} else {
			r.activeCount--
		}
		v.Active = active
	}

	metricTotalStaked.Set(int64(r.totalStaked))
	metricActiveCount.Set(int64(r.activeCount))
}
