package allowlist

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func testIdentity(fill byte) [20]byte {
	var addr [20]byte
	for i := range addr {
		addr[i] = fill
	}
	return addr
}

func testSet(n int) [][20]byte {
	identities := make([][20]byte, 0, n)
	for i := 0; i < n; i++ {
		identities = append(identities, testIdentity(byte(i+1)))
	}
	return identities
}

func TestVerifyAllMembers(t *testing.T) {
	identities := testSet(9)
	tree := BuildTree(identities)
	verifier := NewVerifier(tree.Root())

	for _, id := range identities {
		proof, err := tree.ProofFor(id)
		require.NoError(t, err)
		require.NoError(t, verifier.Verify(id, proof))
	}
}

func TestVerifyRejectsEmptyProof(t *testing.T) {
	tree := BuildTree(testSet(4))
	verifier := NewVerifier(tree.Root())
	err := verifier.Verify(testIdentity(1), nil)
	require.ErrorIs(t, err, ErrEmptyProof)
}

func TestVerifyRejectsNonMember(t *testing.T) {
	identities := testSet(4)
	tree := BuildTree(identities)
	verifier := NewVerifier(tree.Root())

	proof, err := tree.ProofFor(identities[0])
	require.NoError(t, err)
	err = verifier.Verify(testIdentity(0xEE), proof)
	require.ErrorIs(t, err, ErrInvalidProof)
}

func TestVerifyRejectsTamperedProof(t *testing.T) {
	identities := testSet(8)
	tree := BuildTree(identities)
	verifier := NewVerifier(tree.Root())

	proof, err := tree.ProofFor(identities[3])
	require.NoError(t, err)
	proof[0][0] ^= 0xFF
	err = verifier.Verify(identities[3], proof)
	require.ErrorIs(t, err, ErrInvalidProof)
}

func TestHashPairIsOrderInsensitive(t *testing.T) {
	a := Leaf(testIdentity(1))
	b := Leaf(testIdentity(2))
	require.Equal(t, hashPair(a, b), hashPair(b, a))
}

func TestProofForUnknownIdentity(t *testing.T) {
	tree := BuildTree(testSet(4))
	if _, err := tree.ProofFor(testIdentity(0xEE)); !errors.Is(err, errUnknownIdentity) {
		t.Fatalf("unknown identity: got %v", err)
	}
}

func TestBuildTreeDeterministic(t *testing.T) {
	identities := testSet(7)
	reversed := make([][20]byte, len(identities))
	for i, id := range identities {
		reversed[len(identities)-1-i] = id
	}
	require.Equal(t, BuildTree(identities).Root(), BuildTree(reversed).Root())
}
