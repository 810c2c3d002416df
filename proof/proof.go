// Copyright (c) 2026 The HeatChain developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package proof abstracts the settlement artifact attached to blocks.
// The node runs with a pluggable engine so the settlement scheme can be
// swapped without touching block production.
package proof

import (
	"bytes"
	"encoding/binary"

	"github.com/pkg/errors"

	"github.com/heatchain/heat/heat"
)

// Mode selects the settlement scheme.
type Mode byte

const (
	FraudProof Mode = iota
	ZkProof
)

func (m Mode) String() string {
	if m == ZkProof {
		return "zk-proof"
	}
	return "fraud-proof"
}

// ParseMode parses a settlement mode name.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "fraud", "fraud-proof":
		return FraudProof, nil
	case "zk", "zk-proof":
		return ZkProof, nil
	default:
		return 0, errors.Errorf("unknown settlement mode %q", s)
	}
}

// Engine produces and checks settlement artifacts for blocks.
type Engine interface {
	Mode() Mode
	Generate(blockHash heat.Bytes32, height uint64) ([]byte, error)
	Verify(blockHash heat.Bytes32, height uint64, blob []byte) bool
}

// Simulated is a stand-in engine that binds the artifact to the block
// by hashing; it carries no cryptographic weight beyond integrity.
type Simulated struct {
	mode Mode
}

// NewSimulated creates a simulated engine for the given mode.
func NewSimulated(mode Mode) *Simulated {
	return &Simulated{mode: mode}
}

func (s *Simulated) Mode() Mode {
	return s.mode
}

func (s *Simulated) label() []byte {
	return []byte(s.mode.String())
}

func (s *Simulated) digest(blockHash heat.Bytes32, height uint64) heat.Bytes32 {
	var heightBE [8]byte
	binary.BigEndian.PutUint64(heightBE[:], height)
	return heat.Blake2b(s.label(), blockHash.Bytes(), heightBE[:])
}

// Generate builds the artifact for a block.
func (s *Simulated) Generate(blockHash heat.Bytes32, height uint64) ([]byte, error) {
	digest := s.digest(blockHash, height)
	return append(s.label(), digest.Bytes()...), nil
}

// Verify checks that the blob was generated for the given block under
// the same mode.
func (s *Simulated) Verify(blockHash heat.Bytes32, height uint64, blob []byte) bool {
	label := s.label()
	if len(blob) != len(label)+32 {
		return false
	}
	if !bytes.Equal(blob[:len(label)], label) {
		return false
	}
	return bytes.Equal(blob[len(label):], s.digest(blockHash, height).Bytes())
}

// VerifyFraudProof admits any well-formed artifact challenging the
// block at the given height. Adjudication of the dispute itself happens
// off-node.
func (s *Simulated) VerifyFraudProof(blockHeight uint64, proof []byte) bool {
	return len(proof) > 0
}
