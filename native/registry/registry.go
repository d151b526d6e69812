package registry

import (
	"errors"
	"math/big"
)

var errNilState = errors.New("registry: state not configured")

// registryState is the slice of ledger state the registry touches.
type registryState interface {
	UnitOwner(unitID uint64) ([20]byte, bool, error)
	SetUnitOwner(unitID uint64, owner [20]byte) error
	UnitBalance(owner [20]byte) (uint64, error)
	SetUnitBalance(owner [20]byte, balance uint64) error
}

// Receiver is notified when a unit lands on its address via SafeTransfer.
// Returning an error aborts the whole transfer.
type Receiver interface {
	OnUnitReceived(from [20]byte, unitID uint64) error
}

// ReceiverFunc adapts a plain function to the Receiver interface.
type ReceiverFunc func(from [20]byte, unitID uint64) error

// OnUnitReceived implements the Receiver interface.
func (f ReceiverFunc) OnUnitReceived(from [20]byte, unitID uint64) error {
	return f(from, unitID)
}

// Registry is the unique-item ownership ledger. Each unit has exactly one
// owner; units are created once and never destroyed.
type Registry struct {
	state            registryState
	receivers        map[[20]byte]Receiver
	royaltyBps       uint32
	royaltyRecipient [20]byte
}

// NewRegistry creates a registry with no registered receivers.
func NewRegistry() *Registry {
	return &Registry{receivers: make(map[[20]byte]Receiver)}
}

// SetState configures the state backend used by the registry.
func (r *Registry) SetState(state registryState) { r.state = state }

// SetRoyalty configures the static royalty schedule surfaced by RoyaltyInfo.
func (r *Registry) SetRoyalty(recipient [20]byte, bps uint32) {
	r.royaltyRecipient = recipient
	r.royaltyBps = bps
}

// RegisterReceiver registers a receive hook for an address. Transfers to that
// address via SafeTransfer invoke the hook.
func (r *Registry) RegisterReceiver(addr [20]byte, receiver Receiver) {
	if receiver == nil {
		delete(r.receivers, addr)
		return
	}
	r.receivers[addr] = receiver
}

// Issue creates a new unit owned by to.
func (r *Registry) Issue(to [20]byte, unitID uint64) error {
	if r == nil || r.state == nil {
		return errNilState
	}
	if to == [20]byte{} {
		return ErrZeroRecipient
	}
	if _, exists, err := r.state.UnitOwner(unitID); err != nil {
		return err
	} else if exists {
		return ErrUnitExists
	}
	if err := r.state.SetUnitOwner(unitID, to); err != nil {
		return err
	}
	balance, err := r.state.UnitBalance(to)
	if err != nil {
		return err
	}
	return r.state.SetUnitBalance(to, balance+1)
}

// OwnerOf returns the current owner of a unit.
func (r *Registry) OwnerOf(unitID uint64) ([20]byte, error) {
	if r == nil || r.state == nil {
		return [20]byte{}, errNilState
	}
	owner, exists, err := r.state.UnitOwner(unitID)
	if err != nil {
		return [20]byte{}, err
	}
	if !exists {
		return [20]byte{}, ErrUnitNotFound
	}
	return owner, nil
}

// BalanceOf returns the number of units held by an owner.
func (r *Registry) BalanceOf(owner [20]byte) (uint64, error) {
	if r == nil || r.state == nil {
		return 0, errNilState
	}
	return r.state.UnitBalance(owner)
}

// Transfer moves a unit without invoking receive hooks. The caller must be
// the current owner.
func (r *Registry) Transfer(caller, from, to [20]byte, unitID uint64) error {
	if r == nil || r.state == nil {
		return errNilState
	}
	if to == [20]byte{} {
		return ErrZeroRecipient
	}
	owner, exists, err := r.state.UnitOwner(unitID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrUnitNotFound
	}
	if owner != from {
		return ErrNotOwner
	}
	if caller != from {
		return ErrUnauthorized
	}
	return r.move(from, to, unitID)
}

// SafeTransfer moves a unit and, when the recipient has a registered receive
// hook, notifies it. A hook failure rolls the ownership change back so the
// transfer is all-or-nothing.
func (r *Registry) SafeTransfer(caller, from, to [20]byte, unitID uint64) error {
	if err := r.Transfer(caller, from, to, unitID); err != nil {
		return err
	}
	receiver, ok := r.receivers[to]
	if !ok {
		return nil
	}
	if err := receiver.OnUnitReceived(from, unitID); err != nil {
		if undoErr := r.move(to, from, unitID); undoErr != nil {
			return errors.Join(err, undoErr)
		}
		return err
	}
	return nil
}

// RoyaltyInfo returns the static royalty recipient and the royalty owed on a
// sale price.
func (r *Registry) RoyaltyInfo(salePrice *big.Int) ([20]byte, *big.Int) {
	if salePrice == nil || r.royaltyBps == 0 {
		return r.royaltyRecipient, big.NewInt(0)
	}
	amount := new(big.Int).Mul(salePrice, big.NewInt(int64(r.royaltyBps)))
	amount.Quo(amount, big.NewInt(10_000))
	return r.royaltyRecipient, amount
}

func (r *Registry) move(from, to [20]byte, unitID uint64) error {
	if err := r.state.SetUnitOwner(unitID, to); err != nil {
		return err
	}
	fromBalance, err := r.state.UnitBalance(from)
	if err != nil {
		return err
	}
	if fromBalance > 0 {
		if err := r.state.SetUnitBalance(from, fromBalance-1); err != nil {
			return err
		}
	}
	toBalance, err := r.state.UnitBalance(to)
	if err != nil {
		return err
	}
	return r.state.SetUnitBalance(to, toBalance+1)
}
