package state

import "encoding/binary"

// InitializeSupply seeds the remaining-supply counter. It is a no-op when the
// counter is already present so a node restart never resets issuance.
func (m *Manager) InitializeSupply(cap uint64) error {
	key := kvKey(supplyRemainingKeyBytes, nil)
	_, ok, err := m.get(key)
	if err != nil {
		return err
	}
	if ok {
		return nil
	}
	return m.put(key, uint64Suffix(cap))
}

// SupplyRemaining returns the number of units still available for issuance.
func (m *Manager) SupplyRemaining() (uint64, error) {
	raw, ok, err := m.get(kvKey(supplyRemainingKeyBytes, nil))
	if err != nil {
		return 0, err
	}
	if !ok || len(raw) != 8 {
		return 0, nil
	}
	return binary.BigEndian.Uint64(raw), nil
}

// SetSupplyRemaining overwrites the remaining-supply counter.
func (m *Manager) SetSupplyRemaining(remaining uint64) error {
	return m.put(kvKey(supplyRemainingKeyBytes, nil), uint64Suffix(remaining))
}
