// Copyright (c) 2026 The HeatChain developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package tx

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// Status the execution status of a transaction, tracked by the ledger.
type Status byte

const (
	StatusPending Status = iota
	StatusConfirmed
	StatusFailed
	StatusReverted
)

func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusConfirmed:
		return "confirmed"
	case StatusFailed:
		return "failed"
	case StatusReverted:
		return "reverted"
	default:
		return "unknown"
	}
}

// MarshalJSON implements json.Marshaler.
func (s Status) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *Status) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	switch str {
	case "pending":
		*s = StatusPending
	case "confirmed":
		*s = StatusConfirmed
	case "failed":
		*s = StatusFailed
	case "reverted":
		*s = StatusReverted
	default:
		return errors.New("unknown tx status: " + str)
	}
	return nil
}
