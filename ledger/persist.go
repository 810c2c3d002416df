// Copyright (c) 2026 The HeatChain developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package ledger

import (
	"encoding/binary"

	"github.com/ethereum/go-ethereum/rlp"
	"github.com/pkg/errors"

	"github.com/heatchain/heat/block"
	"github.com/heatchain/heat/heat"
	"github.com/heatchain/heat/kv"
)

var (
	bestHeightKey   = []byte("best-height")
	blockPrefix     = []byte("b") // (height be8) -> rlp(block)
	hashIndexPrefix = []byte("h") // (block hash) -> height be8
)

func blockKey(height uint64) []byte {
	var b [9]byte
	b[0] = blockPrefix[0]
	binary.BigEndian.PutUint64(b[1:], height)
	return b[:]
}

func hashIndexKey(hash heat.Bytes32) []byte {
	return append(hashIndexPrefix, hash.Bytes()...)
}

func saveBlock(w kv.Putter, b *block.Block) error {
	data, err := rlp.EncodeToBytes(b)
	if err != nil {
		return errors.Wrap(err, "encode block")
	}
	batch := w.NewBatch()
	if err := batch.Put(blockKey(b.Header().Height()), data); err != nil {
		return err
	}
	var heightBE [8]byte
	binary.BigEndian.PutUint64(heightBE[:], b.Header().Height())
	if err := batch.Put(hashIndexKey(b.Header().Hash()), heightBE[:]); err != nil {
		return err
	}
	if err := batch.Put(bestHeightKey, heightBE[:]); err != nil {
		return err
	}
	return batch.Write()
}

func loadBlock(r kv.Getter, height uint64) (*block.Block, error) {
	data, err := r.Get(blockKey(height))
	if err != nil {
		return nil, err
	}
	var b block.Block
	if err := rlp.DecodeBytes(data, &b); err != nil {
		return nil, errors.Wrap(err, "decode block")
	}
	return &b, nil
}

func loadBestHeight(r kv.Getter) (uint64, error) {
	data, err := r.Get(bestHeightKey)
	if err != nil {
		return 0, err
	}
	if len(data) != 8 {
		return 0, errors.New("corrupted best height record")
	}
	return binary.BigEndian.Uint64(data), nil
}

func loadHeightByHash(r kv.Getter, hash heat.Bytes32) (uint64, error) {
	data, err := r.Get(hashIndexKey(hash))
	if err != nil {
		return 0, err
	}
	if len(data) != 8 {
		return 0, errors.New("corrupted hash index record")
	}
	return binary.BigEndian.Uint64(data), nil
}
