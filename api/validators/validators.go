// Copyright (c) 2026 The HeatChain developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package validators

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"github.com/heatchain/heat/api/utils"
	"github.com/heatchain/heat/heat"
	"github.com/heatchain/heat/staker"
)

type Validators struct {
	registry            *staker.Registry
	defaultSlashPercent uint64
}

func New(registry *staker.Registry, defaultSlashPercent uint64) *Validators {
	return &Validators{registry, defaultSlashPercent}
}

// StakeRequest the body of stake and unstake calls.
type StakeRequest struct {
	Amount uint64 `json:"amount"`
}

// SlashRequest the body of slash calls.
type SlashRequest struct {
	Percent uint64 `json:"percent"`
}

// JSONRegistry the registry-level summary.
type JSONRegistry struct {
	TotalStaked uint64              `json:"totalStaked"`
	ActiveCount int                 `json:"activeCount"`
	MinStake    uint64              `json:"minStake"`
	Validators  []*staker.Validator `json:"validators"`
}

func (v *Validators) handleList(w http.ResponseWriter, _ *http.Request) error {
	return utils.WriteJSON(w, &JSONRegistry{
		TotalStaked: v.registry.TotalStaked(),
		ActiveCount: v.registry.ActiveCount(),
		MinStake:    v.registry.MinStake(),
		Validators:  v.registry.List(),
	})
}

func (v *Validators) handleGet(w http.ResponseWriter, req *http.Request) error {
	addr, err := heat.ParseAddress(mux.Vars(req)["address"])
	if err != nil {
		return utils.BadRequest(errors.WithMessage(err, "address"))
	}
	validator, err := v.registry.Get(addr)
	if err != nil {
		if errors.Is(err, staker.ErrNotFound) {
			return utils.NotFound(err)
		}
		return err
	}
	return utils.WriteJSON(w, validator)
}

func (v *Validators) handleStake(w http.ResponseWriter, req *http.Request) error {
	addr, err := heat.ParseAddress(mux.Vars(req)["address"])
	if err != nil {
		return utils.BadRequest(errors.WithMessage(err, "address"))
	}
	var body StakeRequest
	if err := utils.ParseJSON(req.Body, &body); err != nil {
		return utils.BadRequest(errors.WithMessage(err, "body"))
	}
	if err := v.registry.Stake(addr, body.Amount); err != nil {
		return utils.BadRequest(err)
	}
	validator, err := v.registry.Get(addr)
	if err != nil {
		return err
	}
	return utils.WriteJSON(w, validator)
}

func (v *Validators) handleUnstake(w http.ResponseWriter, req *http.Request) error {
	addr, err := heat.ParseAddress(mux.Vars(req)["address"])
	if err != nil {
		return utils.BadRequest(errors.WithMessage(err, "address"))
	}
	var body StakeRequest
	if err := utils.ParseJSON(req.Body, &body); err != nil {
		return utils.BadRequest(errors.WithMessage(err, "body"))
	}
	if err := v.registry.Unstake(addr, body.Amount); err != nil {
		if errors.Is(err, staker.ErrNotFound) {
			return utils.NotFound(err)
		}
		return utils.BadRequest(err)
	}
	validator, err := v.registry.Get(addr)
	if err != nil {
		return err
	}
	return utils.WriteJSON(w, validator)
}

func (v *Validators) handleSlash(w http.ResponseWriter, req *http.Request) error {
	addr, err := heat.ParseAddress(mux.Vars(req)["address"])
	if err != nil {
		return utils.BadRequest(errors.WithMessage(err, "address"))
	}
	var body SlashRequest
	if err := utils.ParseJSON(req.Body, &body); err != nil {
		return utils.BadRequest(errors.WithMessage(err, "body"))
	}
	percent := body.Percent
	if percent == 0 {
		percent = v.defaultSlashPercent
	}
	slashed, err := v.registry.Slash(addr, percent)
	if err != nil {
		if errors.Is(err, staker.ErrNotFound) {
			return utils.NotFound(err)
		}
		return utils.BadRequest(err)
	}
	return utils.WriteJSON(w, &utils.M{"slashed": slashed})
}

func (v *Validators) Mount(root *mux.Router, pathPrefix string) {
	sub := root.PathPrefix(pathPrefix).Subrouter()
	sub.Path("").
		Methods(http.MethodGet).
		Name("validators_list").
		HandlerFunc(utils.WrapHandlerFunc(v.handleList))
	sub.Path("/{address}").
		Methods(http.MethodGet).
		Name("validators_get").
		HandlerFunc(utils.WrapHandlerFunc(v.handleGet))
	sub.Path("/{address}/stake").
		Methods(http.MethodPost).
		Name("validators_stake").
		HandlerFunc(utils.WrapHandlerFunc(v.handleStake))
	sub.Path("/{address}/unstake").
		Methods(http.MethodPost).
		Name("validators_unstake").
		HandlerFunc(utils.WrapHandlerFunc(v.handleUnstake))
	sub.Path("/{address}/slash").
		Methods(http.MethodPost).
		Name("validators_slash").
		HandlerFunc(utils.WrapHandlerFunc(v.handleSlash))
}
