package events

import (
	"strconv"

	"medallion/core/types"
	"medallion/crypto"
)

const (
	// TypeVaultStaked is emitted exactly once per successful deposit.
	TypeVaultStaked = "vault.staked"
	// TypeVaultUnstaked is emitted exactly once per full withdrawal. Reward
	// only settlements do not emit it.
	TypeVaultUnstaked = "vault.unstaked"
)

// VaultStaked captures a unit entering vault custody.
type VaultStaked struct {
	Custodian [20]byte
	UnitID    uint64
}

// EventType satisfies the Event interface.
func (VaultStaked) EventType() string { return TypeVaultStaked }

// Event converts the structured payload into a broadcastable event.
func (e VaultStaked) Event() *types.Event {
	return &types.Event{Type: TypeVaultStaked, Attributes: map[string]string{
		"addr":   crypto.MustNewAddress(crypto.MDLPrefix, e.Custodian[:]).String(),
		"unitId": strconv.FormatUint(e.UnitID, 10),
	}}
}

// VaultUnstaked captures a unit leaving vault custody.
type VaultUnstaked struct {
	Custodian [20]byte
	UnitID    uint64
}

// EventType satisfies the Event interface.
func (VaultUnstaked) EventType() string { return TypeVaultUnstaked }

// Event converts the structured payload into a broadcastable event.
func (e VaultUnstaked) Event() *types.Event {
	return &types.Event{Type: TypeVaultUnstaked, Attributes: map[string]string{
		"addr":   crypto.MustNewAddress(crypto.MDLPrefix, e.Custodian[:]).String(),
		"unitId": strconv.FormatUint(e.UnitID, 10),
	}}
}
