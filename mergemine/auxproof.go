// Copyright (c) 2026 The HeatChain developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package mergemine

import (
	"bytes"

	"github.com/pkg/errors"
	"github.com/qianbin/drlp"

	"github.com/heatchain/heat/heat"
)

// AuxProof binds a native block to an anchor-chain block via a
// coinbase-branch-style commitment. The encoded form is opaque to the
// rest of the node; only this package builds and checks it.
type AuxProof struct {
	NativeHash   heat.Bytes32
	AnchorHash   heat.Bytes32
	AnchorHeight uint64
}

// commitment the keccak digest embedded in the anchor coinbase.
func (p *AuxProof) commitment() heat.Bytes32 {
	return heat.Keccak256(p.NativeHash.Bytes(), p.AnchorHash.Bytes())
}

// Encode serializes the proof: native hash, anchor hash, anchor height
// and commitment, drlp-appended in that order. Encoding is
// deterministic, so two proofs over the same binding are byte-equal.
func (p *AuxProof) Encode() []byte {
	var out []byte
	out = drlp.AppendString(out, p.NativeHash.Bytes())
	out = drlp.AppendString(out, p.AnchorHash.Bytes())
	out = drlp.AppendUint(out, p.AnchorHeight)
	commitment := p.commitment()
	out = drlp.AppendString(out, commitment.Bytes())
	return out
}

// Verify checks that the encoded blob commits exactly this binding.
func (p *AuxProof) Verify(encoded []byte) error {
	if len(encoded) == 0 {
		return errors.New("empty aux proof")
	}
	if !bytes.Equal(encoded, p.Encode()) {
		return errors.New("aux proof commitment mismatch")
	}
	return nil
}
