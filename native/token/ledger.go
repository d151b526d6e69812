package token

import (
	"bytes"
	"errors"
	"math/big"
)

var errNilState = errors.New("token: state not configured")

// ledgerState is the slice of ledger state the reward token touches.
type ledgerState interface {
	TokenBalance(addr [20]byte) (*big.Int, error)
	SetTokenBalance(addr [20]byte, balance *big.Int) error
	TokenController() (controller, pending []byte, err error)
	SetTokenController(controller, pending []byte) error
}

// Ledger is the fungible reward-token ledger. Minting is restricted to the
// single controller identity; control moves only through a two-step
// nominate-and-accept handshake so it can never be sent to a dead address by
// a typo.
type Ledger struct {
	state ledgerState
}

// NewLedger creates a reward token ledger.
func NewLedger() *Ledger {
	return &Ledger{}
}

// SetState configures the state backend used by the ledger.
func (l *Ledger) SetState(state ledgerState) { l.state = state }

// InitializeController seeds the controller identity at genesis. It fails if
// a controller is already recorded.
func (l *Ledger) InitializeController(controller [20]byte) error {
	if l == nil || l.state == nil {
		return errNilState
	}
	if controller == [20]byte{} {
		return ErrInvalidController
	}
	current, _, err := l.state.TokenController()
	if err != nil {
		return err
	}
	if len(current) != 0 {
		return ErrControllerSet
	}
	return l.state.SetTokenController(controller[:], nil)
}

// Controller returns the current controller identity, if any.
func (l *Ledger) Controller() ([20]byte, bool, error) {
	var out [20]byte
	if l == nil || l.state == nil {
		return out, false, errNilState
	}
	current, _, err := l.state.TokenController()
	if err != nil || len(current) != 20 {
		return out, false, err
	}
	copy(out[:], current)
	return out, true, nil
}

// TransferControl nominates the next controller. Only the current controller
// may nominate; the nomination takes effect once accepted.
func (l *Ledger) TransferControl(caller, next [20]byte) error {
	if l == nil || l.state == nil {
		return errNilState
	}
	if next == [20]byte{} {
		return ErrInvalidController
	}
	current, _, err := l.state.TokenController()
	if err != nil {
		return err
	}
	if !bytes.Equal(current, caller[:]) {
		return ErrNotController
	}
	return l.state.SetTokenController(current, next[:])
}

// AcceptControl completes the handshake. The caller must be the nominated
// identity; on success it becomes the controller and the nomination clears.
func (l *Ledger) AcceptControl(caller [20]byte) error {
	if l == nil || l.state == nil {
		return errNilState
	}
	_, pending, err := l.state.TokenController()
	if err != nil {
		return err
	}
	if !bytes.Equal(pending, caller[:]) {
		return ErrNotPending
	}
	return l.state.SetTokenController(caller[:], nil)
}

// Mint credits freshly issued reward tokens to an address. Only the current
// controller may mint.
func (l *Ledger) Mint(caller, to [20]byte, amount *big.Int) error {
	if l == nil || l.state == nil {
		return errNilState
	}
	if amount == nil || amount.Sign() <= 0 {
		return ErrInvalidAmount
	}
	current, _, err := l.state.TokenController()
	if err != nil {
		return err
	}
	if !bytes.Equal(current, caller[:]) {
		return ErrNotController
	}
	balance, err := l.state.TokenBalance(to)
	if err != nil {
		return err
	}
	return l.state.SetTokenBalance(to, new(big.Int).Add(balance, amount))
}

// BalanceOf returns the reward token balance for an address.
func (l *Ledger) BalanceOf(addr [20]byte) (*big.Int, error) {
	if l == nil || l.state == nil {
		return nil, errNilState
	}
	return l.state.TokenBalance(addr)
}
