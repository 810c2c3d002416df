// Copyright (c) 2026 The HeatChain developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package bridge

import (
	"encoding/binary"
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/heatchain/heat/heat"
)

// Direction of value flow across the bridge.
type Direction byte

const (
	Deposit Direction = iota
	Withdrawal
)

func (d Direction) String() string {
	if d == Deposit {
		return "deposit"
	}
	return "withdrawal"
}

// MarshalJSON implements json.Marshaler.
func (d Direction) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Direction) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	switch str {
	case "deposit":
		*d = Deposit
	case "withdrawal":
		*d = Withdrawal
	default:
		return errors.New("unknown direction: " + str)
	}
	return nil
}

// Status the settlement lifecycle stage. Transitions are monotonic:
// pending to confirmed to completed, or failed from either non-terminal
// stage.
type Status byte

const (
	Pending Status = iota
	Confirmed
	Completed
	Failed
)

func (s Status) String() string {
	switch s {
	case Pending:
		return "pending"
	case Confirmed:
		return "confirmed"
	case Completed:
		return "completed"
	case Failed:
		return "failed"
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
	parsed, err := ParseStatus(str)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// ParseStatus parses the textual form of a status.
func ParseStatus(str string) (Status, error) {
	switch str {
	case "pending":
		return Pending, nil
	case "confirmed":
		return Confirmed, nil
	case "completed":
		return Completed, nil
	case "failed":
		return Failed, nil
	default:
		return 0, errors.New("unknown status: " + str)
	}
}

// terminal reports whether no transition may leave the status.
func (s Status) terminal() bool {
	return s == Completed || s == Failed
}

// Transaction a deposit or withdrawal tracked through its settlement
// lifecycle against the L1 bridge contract.
type Transaction struct {
	TxID       heat.Bytes32 `json:"txID"`
	Direction  Direction    `json:"direction"`
	Sender     heat.Address `json:"sender"`
	Recipient  heat.Address `json:"recipient"`
	Amount     uint64       `json:"amount"`
	Status     Status       `json:"status"`
	FailReason string       `json:"failReason,omitempty"`
	L1Height   uint64       `json:"l1Height"` // originating L1 height
	CreatedAt  uint64       `json:"createdAt"`
}

func (t *Transaction) copy() *Transaction {
	cpy := *t
	return &cpy
}

// txID derives a unique id from the transaction content and a sequence
// number local to the ledger.
func txID(dir Direction, sender, recipient heat.Address, amount, createdAt, seq uint64) heat.Bytes32 {
	var buf [24]byte
	binary.BigEndian.PutUint64(buf[0:], amount)
	binary.BigEndian.PutUint64(buf[8:], createdAt)
	binary.BigEndian.PutUint64(buf[16:], seq)
	return heat.Blake2b([]byte{byte(dir)}, sender.Bytes(), recipient.Bytes(), buf[:])
}
