// Copyright (c) 2026 The HeatChain developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package ledger

// RewardAccumulator collects mining income between reward distributions.
// Anchor rewards are credited by the merge-mining coordinator, gas fees
// by block acceptance. Half of the gas fees are earmarked for the
// validator set; the other half is burned.
type RewardAccumulator struct {
	AnchorRewards     uint64 `json:"anchorRewards"`
	NativeGasFees     uint64 `json:"nativeGasFees"`
	ValidatorFeeShare uint64 `json:"validatorFeeShare"`
	Total             uint64 `json:"total"`
}

func (r *RewardAccumulator) addAnchorReward(amount uint64) {
	r.AnchorRewards += amount
	r.Total += amount
}

func (r *RewardAccumulator) addGasFees(amount uint64) {
	r.NativeGasFees += amount
	r.ValidatorFeeShare += amount / 2
	r.Total += amount
}

// distributable returns the amount a reward distribution may pay out.
func (r *RewardAccumulator) distributable() uint64 {
	return r.AnchorRewards + r.ValidatorFeeShare
}

func (r *RewardAccumulator) reset() {
	*r = RewardAccumulator{}
}
