// Copyright (c) 2026 The HeatChain developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package bridge

import (
	"encoding/hex"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"github.com/heatchain/heat/api/utils"
	"github.com/heatchain/heat/bridge"
	"github.com/heatchain/heat/heat"
	"github.com/heatchain/heat/ledger"
)

type Bridge struct {
	ledger *bridge.Ledger
	chain  *ledger.Ledger
}

func New(bridgeLedger *bridge.Ledger, chain *ledger.Ledger) *Bridge {
	return &Bridge{bridgeLedger, chain}
}

// TransferRequest the body of deposit and withdrawal calls.
type TransferRequest struct {
	Sender    heat.Address `json:"sender"`
	Recipient heat.Address `json:"recipient"`
	Amount    uint64       `json:"amount"`
	L1Height  uint64       `json:"l1Height"`
}

// FraudProofRequest challenges a native block.
type FraudProofRequest struct {
	BlockHeight uint64 `json:"blockHeight"`
	Proof       string `json:"proof"` // 0x hex
}

// handleList returns pending transactions unless the status query
// selects another lifecycle stage ("all" lists everything).
func (b *Bridge) handleList(w http.ResponseWriter, req *http.Request) error {
	switch status := req.URL.Query().Get("status"); status {
	case "", "pending":
		return utils.WriteJSON(w, b.ledger.ListByStatus(bridge.Pending))
	case "all":
		return utils.WriteJSON(w, b.ledger.List())
	default:
		parsed, err := bridge.ParseStatus(status)
		if err != nil {
			return utils.BadRequest(errors.WithMessage(err, "status"))
		}
		return utils.WriteJSON(w, b.ledger.ListByStatus(parsed))
	}
}

func (b *Bridge) handleGet(w http.ResponseWriter, req *http.Request) error {
	id, err := heat.ParseBytes32(mux.Vars(req)["id"])
	if err != nil {
		return utils.BadRequest(errors.WithMessage(err, "id"))
	}
	trx := b.ledger.Get(id)
	if trx == nil {
		return utils.NotFound(errors.New("bridge tx not found"))
	}
	return utils.WriteJSON(w, trx)
}

func (b *Bridge) handleDeposit(w http.ResponseWriter, req *http.Request) error {
	body, err := parseTransfer(req)
	if err != nil {
		return err
	}
	trx := b.ledger.RecordDeposit(body.Sender, body.Recipient, body.Amount, body.L1Height)
	w.Header().Set("Content-Type", utils.JSONContentType)
	w.WriteHeader(http.StatusCreated)
	return utils.WriteJSON(w, trx)
}

func (b *Bridge) handleWithdraw(w http.ResponseWriter, req *http.Request) error {
	body, err := parseTransfer(req)
	if err != nil {
		return err
	}
	trx := b.ledger.RecordWithdrawal(body.Sender, body.Recipient, body.Amount, body.L1Height)
	w.Header().Set("Content-Type", utils.JSONContentType)
	w.WriteHeader(http.StatusCreated)
	return utils.WriteJSON(w, trx)
}

// FailRequest carries the reason a settlement is abandoned.
type FailRequest struct {
	Reason string `json:"reason"`
}

func (b *Bridge) handleComplete(w http.ResponseWriter, req *http.Request) error {
	id, err := heat.ParseBytes32(mux.Vars(req)["id"])
	if err != nil {
		return utils.BadRequest(errors.WithMessage(err, "id"))
	}
	if err := b.ledger.Complete(id); err != nil {
		if errors.Is(err, bridge.ErrNotFound) {
			return utils.NotFound(err)
		}
		return utils.BadRequest(err)
	}
	return utils.WriteJSON(w, b.ledger.Get(id))
}

func (b *Bridge) handleFail(w http.ResponseWriter, req *http.Request) error {
	id, err := heat.ParseBytes32(mux.Vars(req)["id"])
	if err != nil {
		return utils.BadRequest(errors.WithMessage(err, "id"))
	}
	var body FailRequest
	if err := utils.ParseJSON(req.Body, &body); err != nil {
		return utils.BadRequest(errors.WithMessage(err, "body"))
	}
	if err := b.ledger.Fail(id, body.Reason); err != nil {
		if errors.Is(err, bridge.ErrNotFound) {
			return utils.NotFound(err)
		}
		return utils.BadRequest(err)
	}
	return utils.WriteJSON(w, b.ledger.Get(id))
}

func (b *Bridge) handleSubmitFraudProof(w http.ResponseWriter, req *http.Request) error {
	var body FraudProofRequest
	if err := utils.ParseJSON(req.Body, &body); err != nil {
		return utils.BadRequest(errors.WithMessage(err, "body"))
	}
	proof, err := hex.DecodeString(strings.TrimPrefix(body.Proof, "0x"))
	if err != nil {
		return utils.BadRequest(errors.WithMessage(err, "proof"))
	}

	blk, err := b.chain.BlockByHeight(body.BlockHeight)
	if err != nil {
		if errors.Is(err, ledger.ErrNotFound) {
			return utils.NotFound(errors.New("block not found"))
		}
		return err
	}
	if err := b.ledger.SubmitFraudProof(body.BlockHeight, blk.Header().Timestamp(), proof); err != nil {
		if errors.Is(err, bridge.ErrChallengeElapsed) {
			return utils.Forbidden(err)
		}
		return utils.BadRequest(err)
	}
	return utils.WriteJSON(w, &utils.M{
		"blockHeight": body.BlockHeight,
		"disputes":    b.ledger.DisputeCount(body.BlockHeight),
	})
}

func parseTransfer(req *http.Request) (*TransferRequest, error) {
	var body TransferRequest
	if err := utils.ParseJSON(req.Body, &body); err != nil {
		return nil, utils.BadRequest(errors.WithMessage(err, "body"))
	}
	if body.Amount == 0 {
		return nil, utils.BadRequest(errors.New("amount: zero"))
	}
	return &body, nil
}

func (b *Bridge) Mount(root *mux.Router, pathPrefix string) {
	sub := root.PathPrefix(pathPrefix).Subrouter()
	sub.Path("/transactions").
		Methods(http.MethodGet).
		Name("bridge_list_txs").
		HandlerFunc(utils.WrapHandlerFunc(b.handleList))
	sub.Path("/transactions/{id}").
		Methods(http.MethodGet).
		Name("bridge_get_tx").
		HandlerFunc(utils.WrapHandlerFunc(b.handleGet))
	sub.Path("/deposit").
		Methods(http.MethodPost).
		Name("bridge_deposit").
		HandlerFunc(utils.WrapHandlerFunc(b.handleDeposit))
	sub.Path("/withdraw").
		Methods(http.MethodPost).
		Name("bridge_withdraw").
		HandlerFunc(utils.WrapHandlerFunc(b.handleWithdraw))
	sub.Path("/transactions/{id}/complete").
		Methods(http.MethodPost).
		Name("bridge_complete_tx").
		HandlerFunc(utils.WrapHandlerFunc(b.handleComplete))
	sub.Path("/transactions/{id}/fail").
		Methods(http.MethodPost).
		Name("bridge_fail_tx").
		HandlerFunc(utils.WrapHandlerFunc(b.handleFail))
	sub.Path("/fraud-proofs").
		Methods(http.MethodPost).
		Name("bridge_submit_fraud_proof").
		HandlerFunc(utils.WrapHandlerFunc(b.handleSubmitFraudProof))
}
