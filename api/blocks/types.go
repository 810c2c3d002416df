// Copyright (c) 2026 The HeatChain developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package blocks

import (
	"encoding/hex"

	"github.com/heatchain/heat/block"
	"github.com/heatchain/heat/heat"
)

// JSONBlock the API representation of a block.
type JSONBlock struct {
	Height          uint64         `json:"height"`
	Hash            heat.Bytes32   `json:"hash"`
	ParentHash      heat.Bytes32   `json:"parentHash"`
	Timestamp       uint64         `json:"timestamp"`
	MerkleRoot      heat.Bytes32   `json:"merkleRoot"`
	Producer        heat.Address   `json:"producer"`
	GasUsed         uint64         `json:"gasUsed"`
	GasLimit        uint64         `json:"gasLimit"`
	Nonce           uint64         `json:"nonce"`
	Difficulty      uint64         `json:"difficulty"`
	AnchorHeight    uint64         `json:"anchorHeight"`
	Transactions    []heat.Bytes32 `json:"transactions"`
	SettlementProof string         `json:"settlementProof,omitempty"`
}

// ConvertBlock builds the API representation of a block.
func ConvertBlock(blk *block.Block) *JSONBlock {
	header := blk.Header()
	txHashes := make([]heat.Bytes32, 0, len(blk.Transactions()))
	for _, trx := range blk.Transactions() {
		txHashes = append(txHashes, trx.Hash())
	}
	var proofHex string
	if proof := blk.SettlementProof(); len(proof) > 0 {
		proofHex = "0x" + hex.EncodeToString(proof)
	}
	return &JSONBlock{
		Height:          header.Height(),
		Hash:            header.Hash(),
		ParentHash:      header.ParentHash(),
		Timestamp:       header.Timestamp(),
		MerkleRoot:      header.MerkleRoot(),
		Producer:        header.Producer(),
		GasUsed:         header.GasUsed(),
		GasLimit:        header.GasLimit(),
		Nonce:           header.Nonce(),
		Difficulty:      header.Difficulty(),
		AnchorHeight:    header.AnchorHeight(),
		Transactions:    txHashes,
		SettlementProof: proofHex,
	}
}
