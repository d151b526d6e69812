package registry

import (
	"errors"
	"math/big"
	"testing"

	"medallion/core/state"
	"medallion/storage"
)

func testAddr(fill byte) [20]byte {
	var addr [20]byte
	for i := range addr {
		addr[i] = fill
	}
	return addr
}

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	db := storage.NewMemDB()
	t.Cleanup(db.Close)
	reg := NewRegistry()
	reg.SetState(state.NewManager(db))
	return reg
}

func TestIssueAndOwnership(t *testing.T) {
	reg := newTestRegistry(t)
	alice := testAddr(0xA1)

	if err := reg.Issue(alice, 42); err != nil {
		t.Fatalf("issue: %v", err)
	}
	owner, err := reg.OwnerOf(42)
	if err != nil || owner != alice {
		t.Fatalf("owner: got %x err=%v", owner, err)
	}
	balance, err := reg.BalanceOf(alice)
	if err != nil || balance != 1 {
		t.Fatalf("balance: got %d err=%v", balance, err)
	}

	if err := reg.Issue(alice, 42); !errors.Is(err, ErrUnitExists) {
		t.Fatalf("duplicate issue: got %v want %v", err, ErrUnitExists)
	}
	if err := reg.Issue([20]byte{}, 43); !errors.Is(err, ErrZeroRecipient) {
		t.Fatalf("zero recipient: got %v want %v", err, ErrZeroRecipient)
	}
	if _, err := reg.OwnerOf(99); !errors.Is(err, ErrUnitNotFound) {
		t.Fatalf("missing unit: got %v want %v", err, ErrUnitNotFound)
	}
}

func TestTransferAuthorization(t *testing.T) {
	reg := newTestRegistry(t)
	alice := testAddr(0xA1)
	bob := testAddr(0xB2)
	mallory := testAddr(0xC3)

	if err := reg.Issue(alice, 1); err != nil {
		t.Fatalf("issue: %v", err)
	}
	if err := reg.Transfer(mallory, alice, bob, 1); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("foreign transfer: got %v want %v", err, ErrUnauthorized)
	}
	if err := reg.Transfer(bob, bob, mallory, 1); !errors.Is(err, ErrNotOwner) {
		t.Fatalf("non-owner from: got %v want %v", err, ErrNotOwner)
	}
	if err := reg.Transfer(alice, alice, bob, 1); err != nil {
		t.Fatalf("transfer: %v", err)
	}
	owner, _ := reg.OwnerOf(1)
	if owner != bob {
		t.Fatalf("owner after transfer: got %x want %x", owner, bob)
	}
	aliceBalance, _ := reg.BalanceOf(alice)
	bobBalance, _ := reg.BalanceOf(bob)
	if aliceBalance != 0 || bobBalance != 1 {
		t.Fatalf("balances after transfer: alice=%d bob=%d", aliceBalance, bobBalance)
	}
}

func TestSafeTransferInvokesHook(t *testing.T) {
	reg := newTestRegistry(t)
	alice := testAddr(0xA1)
	vaultAddr := testAddr(0xEE)

	var gotFrom [20]byte
	var gotUnit uint64
	reg.RegisterReceiver(vaultAddr, ReceiverFunc(func(from [20]byte, unitID uint64) error {
		gotFrom, gotUnit = from, unitID
		return nil
	}))

	if err := reg.Issue(alice, 7); err != nil {
		t.Fatalf("issue: %v", err)
	}
	if err := reg.SafeTransfer(alice, alice, vaultAddr, 7); err != nil {
		t.Fatalf("safe transfer: %v", err)
	}
	if gotFrom != alice || gotUnit != 7 {
		t.Fatalf("hook payload: from=%x unit=%d", gotFrom, gotUnit)
	}
}

func TestSafeTransferRollsBackOnHookFailure(t *testing.T) {
	reg := newTestRegistry(t)
	alice := testAddr(0xA1)
	vaultAddr := testAddr(0xEE)
	hookErr := errors.New("receiver: rejected")

	reg.RegisterReceiver(vaultAddr, ReceiverFunc(func(from [20]byte, unitID uint64) error {
		return hookErr
	}))

	if err := reg.Issue(alice, 7); err != nil {
		t.Fatalf("issue: %v", err)
	}
	if err := reg.SafeTransfer(alice, alice, vaultAddr, 7); !errors.Is(err, hookErr) {
		t.Fatalf("safe transfer: got %v want %v", err, hookErr)
	}
	owner, err := reg.OwnerOf(7)
	if err != nil || owner != alice {
		t.Fatalf("ownership must roll back: owner=%x err=%v", owner, err)
	}
	balance, _ := reg.BalanceOf(alice)
	if balance != 1 {
		t.Fatalf("balance must roll back: got %d want 1", balance)
	}
}

func TestRoyaltyInfo(t *testing.T) {
	reg := newTestRegistry(t)
	treasury := testAddr(0xD4)
	reg.SetRoyalty(treasury, 500)

	recipient, amount := reg.RoyaltyInfo(big.NewInt(10_000))
	if recipient != treasury {
		t.Fatalf("royalty recipient: got %x want %x", recipient, treasury)
	}
	if amount.Cmp(big.NewInt(500)) != 0 {
		t.Fatalf("royalty amount: got %s want 500", amount)
	}
}
