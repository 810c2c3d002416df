// Copyright (c) 2026 The HeatChain developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package block

import (
	"testing"

	"github.com/ethereum/go-ethereum/rlp"
	fuzz "github.com/google/gofuzz"
	"github.com/stretchr/testify/require"
)

// randomized round-trip: the header codec must be stable for any field values.
func TestHeaderEncodingFuzz(t *testing.T) {
	f := fuzz.New().NilChance(0)

	for range 100 {
		var body headerBody
		f.Fuzz(&body)
		header := &Header{body: body}

		enc, err := rlp.EncodeToBytes(header)
		require.NoError(t, err)

		var decoded Header
		require.NoError(t, rlp.DecodeBytes(enc, &decoded))

		require.Equal(t, header.Hash(), decoded.Hash())
		require.Equal(t, header.SigningHash(), decoded.SigningHash())
		require.Equal(t, header.Nonce(), decoded.Nonce())
		require.Equal(t, header.Difficulty(), decoded.Difficulty())
	}
}
