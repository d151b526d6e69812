package allowlist

import "errors"

var (
	// ErrEmptyProof rejects zero-length proofs outright. Even a single-leaf
	// commitment must present at least one sibling; accepting empty proofs
	// would let the bare leaf double as its own root.
	ErrEmptyProof = errors.New("allowlist: empty proof")
	// ErrInvalidProof indicates the recomputed root does not match the
	// committed root.
	ErrInvalidProof = errors.New("allowlist: proof does not match commitment")
	// ErrAlreadyClaimed indicates the identity has already consumed its
	// one-time discount.
	ErrAlreadyClaimed = errors.New("allowlist: discount already claimed")
)
