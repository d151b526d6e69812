package allowlist

import "math/big"

// wordWidth is the number of claim bits packed into one stored word.
const wordWidth = 256

// BitmapState is the narrow view of ledger state the claim bitmap needs.
type BitmapState interface {
	ClaimWord(wordIndex *big.Int) ([32]byte, error)
	PutClaimWord(wordIndex *big.Int, word [32]byte) error
}

// Bitmap tracks which identities have consumed their one-time discount. Bits
// are only ever set, never cleared: a cleared bit would reopen the discount
// to replay.
type Bitmap struct {
	state BitmapState
}

// NewBitmap creates a bitmap backed by the provided state.
func NewBitmap(state BitmapState) *Bitmap {
	return &Bitmap{state: state}
}

// claimPosition maps an identity to its word index and bit offset. The
// identity's 160-bit big-endian integer value is the bit index.
func claimPosition(identity [20]byte) (wordIndex *big.Int, bitOffset uint) {
	n := new(big.Int).SetBytes(identity[:])
	wordIndex, rem := new(big.Int).DivMod(n, big.NewInt(wordWidth), new(big.Int))
	return wordIndex, uint(rem.Uint64())
}

// Claimed reports whether the identity has already used its discount.
func (b *Bitmap) Claimed(identity [20]byte) (bool, error) {
	wordIndex, bit := claimPosition(identity)
	word, err := b.state.ClaimWord(wordIndex)
	if err != nil {
		return false, err
	}
	mask := byte(1 << (bit % 8))
	return word[31-bit/8]&mask != 0, nil
}

// TryClaim sets the identity's claim bit, failing when it is already set.
func (b *Bitmap) TryClaim(identity [20]byte) error {
	wordIndex, bit := claimPosition(identity)
	word, err := b.state.ClaimWord(wordIndex)
	if err != nil {
		return err
	}
	byteIndex := 31 - bit/8
	mask := byte(1 << (bit % 8))
	if word[byteIndex]&mask != 0 {
		return ErrAlreadyClaimed
	}
	word[byteIndex] |= mask
	return b.state.PutClaimWord(wordIndex, word)
}
