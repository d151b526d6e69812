package events

import (
	"math/big"

	"medallion/core/types"
	"medallion/crypto"
)

const (
	// TypeRewardPaid is emitted whenever accrued rewards are minted out.
	TypeRewardPaid = "reward.paid"

	// RewardReasonClaim identifies a stand-alone reward settlement.
	RewardReasonClaim = "claim"
	// RewardReasonWithdraw identifies a payout bundled with a unit withdrawal.
	RewardReasonWithdraw = "withdraw"
)

// RewardPaid captures a reward token mint to a custodian.
type RewardPaid struct {
	Custodian [20]byte
	Amount    *big.Int
	Reason    string
}

// EventType satisfies the Event interface.
func (RewardPaid) EventType() string { return TypeRewardPaid }

// Event converts the structured payload into a broadcastable event.
func (e RewardPaid) Event() *types.Event {
	amount := big.NewInt(0)
	if e.Amount != nil {
		amount = new(big.Int).Set(e.Amount)
	}
	attrs := map[string]string{
		"addr":   crypto.MustNewAddress(crypto.MDLPrefix, e.Custodian[:]).String(),
		"amount": amount.String(),
	}
	if e.Reason != "" {
		attrs["reason"] = e.Reason
	}
	return &types.Event{Type: TypeRewardPaid, Attributes: attrs}
}
