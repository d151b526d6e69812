package events

import (
	"strconv"
	"strings"

	"medallion/core/types"
	"medallion/crypto"
)

const (
	// TypeMintIssued is emitted once per successfully minted unit.
	TypeMintIssued = "mint.issued"

	// MintTierBase identifies the full-price acquisition path.
	MintTierBase = "base"
	// MintTierAllowlist identifies the discounted, proof-gated path.
	MintTierAllowlist = "allowlist"
)

// MintIssued captures the issuance of a new unit to a recipient.
type MintIssued struct {
	Recipient [20]byte
	UnitID    uint64
	Tier      string
}

// EventType satisfies the Event interface.
func (MintIssued) EventType() string { return TypeMintIssued }

// Event converts the structured payload into a broadcastable event.
func (e MintIssued) Event() *types.Event {
	attrs := map[string]string{
		"addr":   crypto.MustNewAddress(crypto.MDLPrefix, e.Recipient[:]).String(),
		"unitId": strconv.FormatUint(e.UnitID, 10),
	}
	if tier := strings.TrimSpace(e.Tier); tier != "" {
		attrs["tier"] = tier
	}
	return &types.Event{Type: TypeMintIssued, Attributes: attrs}
}
