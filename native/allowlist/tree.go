package allowlist

import (
	"bytes"
	"errors"
	"sort"
)

// Tree is a full Merkle tree over a set of identities, used to derive the
// commitment root at genesis and to generate proofs off-node.
type Tree struct {
	levels [][][32]byte
}

var errUnknownIdentity = errors.New("allowlist: identity not in tree")

// BuildTree constructs the commitment tree for the given identities.
// Duplicate identities are collapsed and the leaf order is canonicalised so
// the same set always yields the same root.
func BuildTree(identities [][20]byte) *Tree {
	seen := make(map[[20]byte]struct{}, len(identities))
	leaves := make([][32]byte, 0, len(identities))
	for _, id := range identities {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		leaves = append(leaves, Leaf(id))
	}
	sort.Slice(leaves, func(i, j int) bool {
		return bytes.Compare(leaves[i][:], leaves[j][:]) < 0
	})

	levels := [][][32]byte{leaves}
	for len(levels[len(levels)-1]) > 1 {
		prev := levels[len(levels)-1]
		next := make([][32]byte, 0, (len(prev)+1)/2)
		for i := 0; i < len(prev); i += 2 {
			if i+1 == len(prev) {
				// Odd node is promoted unchanged.
				next = append(next, prev[i])
				continue
			}
			next = append(next, hashPair(prev[i], prev[i+1]))
		}
		levels = append(levels, next)
	}
	return &Tree{levels: levels}
}

// Root returns the commitment root, or the zero hash for an empty tree.
func (t *Tree) Root() [32]byte {
	top := t.levels[len(t.levels)-1]
	if len(top) == 0 {
		return [32]byte{}
	}
	return top[0]
}

// ProofFor returns the sibling path proving membership of the identity.
func (t *Tree) ProofFor(identity [20]byte) ([][32]byte, error) {
	leaf := Leaf(identity)
	index := -1
	for i, l := range t.levels[0] {
		if l == leaf {
			index = i
			break
		}
	}
	if index < 0 {
		return nil, errUnknownIdentity
	}

	proof := make([][32]byte, 0, len(t.levels)-1)
	for _, level := range t.levels[:len(t.levels)-1] {
		sibling := index ^ 1
		if sibling < len(level) {
			proof = append(proof, level[sibling])
		}
		index /= 2
	}
	return proof, nil
}
