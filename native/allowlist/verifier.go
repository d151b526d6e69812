package allowlist

import (
	"bytes"

	ethcrypto "github.com/ethereum/go-ethereum/crypto"
)

// Verifier checks membership proofs against a fixed Merkle commitment over
// the set of discount-eligible identities. The commitment never changes after
// construction.
type Verifier struct {
	root [32]byte
}

// NewVerifier creates a verifier bound to the given commitment root.
func NewVerifier(root [32]byte) *Verifier {
	return &Verifier{root: root}
}

// Root returns the committed root.
func (v *Verifier) Root() [32]byte { return v.root }

// Leaf derives the commitment leaf for an identity. The leaf depends on the
// identity bytes alone so proofs can be generated off-node from the address
// list.
func Leaf(identity [20]byte) [32]byte {
	var leaf [32]byte
	copy(leaf[:], ethcrypto.Keccak256(identity[:]))
	return leaf
}

// hashPair combines two nodes in canonical order. Sorting the inputs makes
// verification independent of which side the sibling was stored on.
func hashPair(a, b [32]byte) [32]byte {
	var out [32]byte
	if bytes.Compare(a[:], b[:]) > 0 {
		a, b = b, a
	}
	copy(out[:], ethcrypto.Keccak256(a[:], b[:]))
	return out
}

// Verify recomputes the root from the identity's leaf and the supplied
// sibling path. It is a pure function of its inputs and the fixed commitment.
func (v *Verifier) Verify(identity [20]byte, proof [][32]byte) error {
	if len(proof) == 0 {
		return ErrEmptyProof
	}
	node := Leaf(identity)
	for _, sibling := range proof {
		node = hashPair(node, sibling)
	}
	if node != v.root {
		return ErrInvalidProof
	}
	return nil
}
