// Copyright (c) 2026 The HeatChain developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package block

import (
	"encoding/binary"
	"fmt"
	"io"
	"sync/atomic"

	"github.com/ethereum/go-ethereum/rlp"

	"github.com/heatchain/heat/heat"
)

// Header contains almost all information about a block, except block body.
// It's immutable.
type Header struct {
	body headerBody

	cache struct {
		signingHash atomic.Value
		hash        atomic.Value
	}
}

// headerBody body of header.
type headerBody struct {
	Height       uint64
	ParentHash   heat.Bytes32
	Timestamp    uint64
	MerkleRoot   heat.Bytes32
	Producer     heat.Address
	GasUsed      uint64
	GasLimit     uint64
	Nonce        uint64
	Difficulty   uint64
	AnchorHeight uint64
}

// Height returns sequential number of this block.
func (h *Header) Height() uint64 { return h.body.Height }

// ParentHash returns hash of parent block.
func (h *Header) ParentHash() heat.Bytes32 { return h.body.ParentHash }

// Timestamp returns timestamp of this block.
func (h *Header) Timestamp() uint64 { return h.body.Timestamp }

// MerkleRoot returns merkle root of txs contained in this block.
func (h *Header) MerkleRoot() heat.Bytes32 { return h.body.MerkleRoot }

// Producer returns address of the validator that produced this block.
func (h *Header) Producer() heat.Address { return h.body.Producer }

// GasUsed returns gas used by txs.
func (h *Header) GasUsed() uint64 { return h.body.GasUsed }

// GasLimit returns gas limit of this block.
func (h *Header) GasLimit() uint64 { return h.body.GasLimit }

// Nonce returns the proof-of-work nonce.
func (h *Header) Nonce() uint64 { return h.body.Nonce }

// Difficulty returns the number of leading zero bytes the block hash must carry.
func (h *Header) Difficulty() uint64 { return h.body.Difficulty }

// AnchorHeight returns the anchor-chain height observed when the block was built.
func (h *Header) AnchorHeight() uint64 { return h.body.AnchorHeight }

// SigningHash computes hash of all header fields excluding nonce and difficulty.
// It's the immutable part of the proof-of-work search input.
func (h *Header) SigningHash() (hash heat.Bytes32) {
	if cached := h.cache.signingHash.Load(); cached != nil {
		return cached.(heat.Bytes32)
	}
	defer func() { h.cache.signingHash.Store(hash) }()

	return heat.Blake2bFn(func(w io.Writer) {
		rlp.Encode(w, []any{
			h.body.Height,
			h.body.ParentHash,
			h.body.Timestamp,
			h.body.MerkleRoot,
			h.body.Producer,
			h.body.GasUsed,
			h.body.GasLimit,
			h.body.AnchorHeight,
		})
	})
}

// HashWithNonce computes the block hash the header would have if sealed with
// the given nonce. It never touches the header's own nonce, so the search
// worker can probe candidates from an immutable snapshot.
func (h *Header) HashWithNonce(nonce uint64) heat.Bytes32 {
	var nb [8]byte
	binary.BigEndian.PutUint64(nb[:], nonce)
	signingHash := h.SigningHash()
	return heat.Blake2b(signingHash.Bytes(), nb[:])
}

// Hash computes hash of the sealed header.
func (h *Header) Hash() (hash heat.Bytes32) {
	if cached := h.cache.hash.Load(); cached != nil {
		return cached.(heat.Bytes32)
	}
	defer func() { h.cache.hash.Store(hash) }()

	return h.HashWithNonce(h.body.Nonce)
}

// WithSeal returns a copy of the header sealed with the found nonce and the
// difficulty it was searched at.
func (h *Header) WithSeal(nonce, difficulty uint64) *Header {
	body := h.body
	body.Nonce = nonce
	body.Difficulty = difficulty
	return &Header{body: body}
}

// EncodeRLP implements rlp.Encoder.
func (h *Header) EncodeRLP(w io.Writer) error {
	return rlp.Encode(w, &h.body)
}

// DecodeRLP implements rlp.Decoder.
func (h *Header) DecodeRLP(s *rlp.Stream) error {
	var body headerBody
	if err := s.Decode(&body); err != nil {
		return err
	}
	*h = Header{body: body}
	return nil
}

func (h *Header) String() string {
	return fmt.Sprintf(`Header(%v)
	Height:        %v
	ParentHash:    %v
	Timestamp:     %v
	MerkleRoot:    %v
	Producer:      %v
	GasUsed:       %v
	GasLimit:      %v
	Nonce:         %v
	Difficulty:    %v
	AnchorHeight:  %v`,
		h.Hash(), h.body.Height, h.body.ParentHash, h.body.Timestamp,
		h.body.MerkleRoot, h.body.Producer, h.body.GasUsed, h.body.GasLimit,
		h.body.Nonce, h.body.Difficulty, h.body.AnchorHeight)
}
