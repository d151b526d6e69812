package state

func stakeRecordKey(unitID uint64) []byte {
	return kvKey(stakeRecordPrefix, uint64Suffix(unitID))
}

// StakeRecordWord returns the packed custody word for a unit. The second
// return value reports whether a record exists; an all-zero stored word is
// treated as absent.
func (m *Manager) StakeRecordWord(unitID uint64) ([32]byte, bool, error) {
	var word [32]byte
	raw, ok, err := m.get(stakeRecordKey(unitID))
	if err != nil || !ok {
		return word, false, err
	}
	if len(raw) != 32 {
		return word, false, nil
	}
	copy(word[:], raw)
	if word == [32]byte{} {
		return word, false, nil
	}
	return word, true, nil
}

// PutStakeRecordWord stores the packed custody word for a unit.
func (m *Manager) PutStakeRecordWord(unitID uint64, word [32]byte) error {
	return m.put(stakeRecordKey(unitID), word[:])
}

// DeleteStakeRecord removes the custody word for a unit entirely.
func (m *Manager) DeleteStakeRecord(unitID uint64) error {
	return m.delete(stakeRecordKey(unitID))
}
