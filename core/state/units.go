package state

import "encoding/binary"

func unitOwnerKey(unitID uint64) []byte {
	return kvKey(unitOwnerPrefix, uint64Suffix(unitID))
}

func unitBalanceKey(owner [20]byte) []byte {
	return kvKey(unitBalancePrefix, owner[:])
}

// UnitOwner returns the current owner of a unit, if any.
func (m *Manager) UnitOwner(unitID uint64) ([20]byte, bool, error) {
	var owner [20]byte
	raw, ok, err := m.get(unitOwnerKey(unitID))
	if err != nil || !ok {
		return owner, false, err
	}
	if len(raw) != 20 {
		return owner, false, nil
	}
	copy(owner[:], raw)
	return owner, true, nil
}

// SetUnitOwner records the owner of a unit.
func (m *Manager) SetUnitOwner(unitID uint64, owner [20]byte) error {
	return m.put(unitOwnerKey(unitID), owner[:])
}

// UnitBalance returns the number of units held by an owner.
func (m *Manager) UnitBalance(owner [20]byte) (uint64, error) {
	raw, ok, err := m.get(unitBalanceKey(owner))
	if err != nil {
		return 0, err
	}
	if !ok || len(raw) != 8 {
		return 0, nil
	}
	return binary.BigEndian.Uint64(raw), nil
}

// SetUnitBalance overwrites the unit count held by an owner.
func (m *Manager) SetUnitBalance(owner [20]byte, balance uint64) error {
	return m.put(unitBalanceKey(owner), uint64Suffix(balance))
}
