package state

import "math/big"

func claimWordKey(wordIndex *big.Int) []byte {
	return kvKey(claimWordPrefix, wordIndex.Bytes())
}

// ClaimWord loads one 256-bit word of the discount claim bitmap. Missing
// words read as all zeroes.
func (m *Manager) ClaimWord(wordIndex *big.Int) ([32]byte, error) {
	var word [32]byte
	raw, ok, err := m.get(claimWordKey(wordIndex))
	if err != nil || !ok {
		return word, err
	}
	if len(raw) == 32 {
		copy(word[:], raw)
	}
	return word, nil
}

// PutClaimWord stores one word of the discount claim bitmap. Bits in stored
// words are only ever set, never cleared; the engine relies on that to keep
// discounted mints single-use.
func (m *Manager) PutClaimWord(wordIndex *big.Int, word [32]byte) error {
	return m.put(claimWordKey(wordIndex), word[:])
}
