package mint

import (
	"errors"
	"fmt"
	"math/big"

	"medallion/core/events"
	"medallion/native/allowlist"
)

var (
	errNilState  = errors.New("mint engine: state not configured")
	errNilIssuer = errors.New("mint engine: unit issuer not configured")
)

// engineState is the slice of ledger state the mint engine touches.
type engineState interface {
	SupplyRemaining() (uint64, error)
	SetSupplyRemaining(remaining uint64) error
}

// UnitIssuer creates brand-new units in the unit registry.
type UnitIssuer interface {
	Issue(to [20]byte, unitID uint64) error
}

// Engine gates issuance of new units. Identifiers are handed out in
// descending order from the cap down to 1; off-chain indexers rely on that
// mapping between identifier and issuance order, so it must not change.
type Engine struct {
	state         engineState
	issuer        UnitIssuer
	verifier      *allowlist.Verifier
	claims        *allowlist.Bitmap
	emitter       events.Emitter
	basePrice     *big.Int
	discountPrice *big.Int
}

// NewEngine creates a mint engine with a no-op emitter.
func NewEngine(basePrice, discountPrice *big.Int) *Engine {
	return &Engine{
		emitter:       events.NoopEmitter{},
		basePrice:     cloneBig(basePrice),
		discountPrice: cloneBig(discountPrice),
	}
}

// SetState configures the state backend used by the engine.
func (e *Engine) SetState(state engineState) { e.state = state }

// SetIssuer configures the unit registry the engine issues into.
func (e *Engine) SetIssuer(issuer UnitIssuer) { e.issuer = issuer }

// SetAllowlist configures the proof verifier and claim bitmap used by the
// discounted path.
func (e *Engine) SetAllowlist(verifier *allowlist.Verifier, claims *allowlist.Bitmap) {
	e.verifier = verifier
	e.claims = claims
}

// SetEmitter configures the event emitter. Passing nil resets to a no-op.
func (e *Engine) SetEmitter(emitter events.Emitter) {
	if emitter == nil {
		e.emitter = events.NoopEmitter{}
		return
	}
	e.emitter = emitter
}

// BasePrice returns the full acquisition price.
func (e *Engine) BasePrice() *big.Int { return cloneBig(e.basePrice) }

// DiscountPrice returns the allowlisted acquisition price.
func (e *Engine) DiscountPrice() *big.Int { return cloneBig(e.discountPrice) }

// validate runs the acquisition preconditions in their fixed order. Callers
// depend on the first failing check determining the returned error.
func (e *Engine) validate(recipient [20]byte, paid, price *big.Int) error {
	if recipient == [20]byte{} {
		return ErrInvalidRecipient
	}
	remaining, err := e.state.SupplyRemaining()
	if err != nil {
		return err
	}
	if remaining == 0 {
		return ErrSupplyExhausted
	}
	if paid == nil || paid.Cmp(price) < 0 {
		return ErrInsufficientPayment
	}
	return nil
}

// nextUnitID assigns the next identifier and decrements the counter.
func (e *Engine) nextUnitID() (uint64, error) {
	remaining, err := e.state.SupplyRemaining()
	if err != nil {
		return 0, err
	}
	if remaining == 0 {
		return 0, ErrSupplyExhausted
	}
	if err := e.state.SetSupplyRemaining(remaining - 1); err != nil {
		return 0, err
	}
	return remaining, nil
}

// MintBase issues a unit at the full price.
func (e *Engine) MintBase(recipient [20]byte, paid *big.Int) (uint64, error) {
	if e == nil || e.state == nil {
		return 0, errNilState
	}
	if e.issuer == nil {
		return 0, errNilIssuer
	}
	if err := e.validate(recipient, paid, e.basePrice); err != nil {
		return 0, err
	}
	return e.issue(recipient, events.MintTierBase)
}

// MintAllowlisted issues a unit at the discounted price. The proof is checked
// after the gate and the claim bit is consumed before issuance; everything
// after the bit-set is infallible, so a consumed bit always corresponds to a
// minted unit.
func (e *Engine) MintAllowlisted(recipient [20]byte, paid *big.Int, proof [][32]byte) (uint64, error) {
	if e == nil || e.state == nil {
		return 0, errNilState
	}
	if e.issuer == nil {
		return 0, errNilIssuer
	}
	if e.verifier == nil || e.claims == nil {
		return 0, fmt.Errorf("mint engine: allowlist not configured")
	}
	if err := e.validate(recipient, paid, e.discountPrice); err != nil {
		return 0, err
	}
	if err := e.verifier.Verify(recipient, proof); err != nil {
		return 0, err
	}
	if err := e.claims.TryClaim(recipient); err != nil {
		return 0, err
	}
	return e.issue(recipient, events.MintTierAllowlist)
}

func (e *Engine) issue(recipient [20]byte, tier string) (uint64, error) {
	unitID, err := e.nextUnitID()
	if err != nil {
		return 0, err
	}
	if err := e.issuer.Issue(recipient, unitID); err != nil {
		return 0, err
	}
	e.emitter.Emit(events.MintIssued{Recipient: recipient, UnitID: unitID, Tier: tier})
	return unitID, nil
}

func cloneBig(v *big.Int) *big.Int {
	if v == nil {
		return big.NewInt(0)
	}
	return new(big.Int).Set(v)
}
