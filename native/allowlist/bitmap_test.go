package allowlist

import (
	"errors"
	"math/big"
	"testing"
)

type mapBitmapState struct {
	words map[string][32]byte
}

func newMapBitmapState() *mapBitmapState {
	return &mapBitmapState{words: make(map[string][32]byte)}
}

func (m *mapBitmapState) ClaimWord(wordIndex *big.Int) ([32]byte, error) {
	return m.words[wordIndex.String()], nil
}

func (m *mapBitmapState) PutClaimWord(wordIndex *big.Int, word [32]byte) error {
	m.words[wordIndex.String()] = word
	return nil
}

func TestTryClaimOncePerIdentity(t *testing.T) {
	bitmap := NewBitmap(newMapBitmapState())
	id := testIdentity(0x11)

	claimed, err := bitmap.Claimed(id)
	if err != nil || claimed {
		t.Fatalf("fresh identity: claimed=%v err=%v", claimed, err)
	}
	if err := bitmap.TryClaim(id); err != nil {
		t.Fatalf("first claim: %v", err)
	}
	if err := bitmap.TryClaim(id); !errors.Is(err, ErrAlreadyClaimed) {
		t.Fatalf("second claim: got %v want %v", err, ErrAlreadyClaimed)
	}
	claimed, err = bitmap.Claimed(id)
	if err != nil || !claimed {
		t.Fatalf("after claim: claimed=%v err=%v", claimed, err)
	}
}

func TestClaimsAreIndependent(t *testing.T) {
	bitmap := NewBitmap(newMapBitmapState())

	// Adjacent identities land on adjacent bits of the same word.
	a := testIdentity(0x22)
	b := a
	b[19]++

	if err := bitmap.TryClaim(a); err != nil {
		t.Fatalf("claim a: %v", err)
	}
	if claimed, _ := bitmap.Claimed(b); claimed {
		t.Fatalf("claiming a must not mark b")
	}
	if err := bitmap.TryClaim(b); err != nil {
		t.Fatalf("claim b: %v", err)
	}
	if err := bitmap.TryClaim(a); !errors.Is(err, ErrAlreadyClaimed) {
		t.Fatalf("a must stay claimed: got %v", err)
	}
}
