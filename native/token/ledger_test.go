package token

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

func newTestLedger(t *testing.T) *Ledger {
	t.Helper()
	db := storage.NewMemDB()
	t.Cleanup(db.Close)
	ledger := NewLedger()
	ledger.SetState(state.NewManager(db))
	return ledger
}

func TestControllerHandshake(t *testing.T) {
	ledger := newTestLedger(t)
	admin := testAddr(0x01)
	vaultAddr := testAddr(0xEE)
	mallory := testAddr(0x66)

	if err := ledger.InitializeController(admin); err != nil {
		t.Fatalf("init: %v", err)
	}
	if err := ledger.InitializeController(admin); !errors.Is(err, ErrControllerSet) {
		t.Fatalf("re-init: got %v want %v", err, ErrControllerSet)
	}

	// Nomination requires the current controller.
	if err := ledger.TransferControl(mallory, vaultAddr); !errors.Is(err, ErrNotController) {
		t.Fatalf("foreign nomination: got %v want %v", err, ErrNotController)
	}
	if err := ledger.TransferControl(admin, vaultAddr); err != nil {
		t.Fatalf("nominate: %v", err)
	}

	// Nomination alone does not move control.
	if err := ledger.Mint(vaultAddr, testAddr(0xA1), big.NewInt(5)); !errors.Is(err, ErrNotController) {
		t.Fatalf("mint before acceptance: got %v want %v", err, ErrNotController)
	}
	if err := ledger.AcceptControl(mallory); !errors.Is(err, ErrNotPending) {
		t.Fatalf("foreign acceptance: got %v want %v", err, ErrNotPending)
	}
	if err := ledger.AcceptControl(vaultAddr); err != nil {
		t.Fatalf("accept: %v", err)
	}

	controller, ok, err := ledger.Controller()
	if err != nil || !ok || controller != vaultAddr {
		t.Fatalf("controller after handshake: %x ok=%v err=%v", controller, ok, err)
	}
	// The old controller is out.
	if err := ledger.Mint(admin, testAddr(0xA1), big.NewInt(5)); !errors.Is(err, ErrNotController) {
		t.Fatalf("old controller mint: got %v want %v", err, ErrNotController)
	}
}

func TestMintCreditsBalance(t *testing.T) {
	ledger := newTestLedger(t)
	admin := testAddr(0x01)
	alice := testAddr(0xA1)

	if err := ledger.InitializeController(admin); err != nil {
		t.Fatalf("init: %v", err)
	}
	if err := ledger.Mint(admin, alice, big.NewInt(30)); err != nil {
		t.Fatalf("mint: %v", err)
	}
	if err := ledger.Mint(admin, alice, big.NewInt(12)); err != nil {
		t.Fatalf("mint: %v", err)
	}
	balance, err := ledger.BalanceOf(alice)
	if err != nil {
		t.Fatalf("balance: %v", err)
	}
	if balance.Cmp(big.NewInt(42)) != 0 {
		t.Fatalf("balance: got %s want 42", balance)
	}

	if err := ledger.Mint(admin, alice, big.NewInt(0)); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("zero mint: got %v want %v", err, ErrInvalidAmount)
	}
	if err := ledger.Mint(admin, alice, nil); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("nil mint: got %v want %v", err, ErrInvalidAmount)
	}
}
