package core

import (
	"errors"
	"math/big"
	"sync"

	"medallion/core/events"
	"medallion/core/state"
	"medallion/native/allowlist"
	"medallion/native/mint"
	"medallion/native/registry"
	"medallion/native/token"
	"medallion/native/vault"
	"medallion/observability"
	"medallion/storage"
)

// Params fixes the ledger's issuance and accrual parameters at construction.
type Params struct {
	SupplyCap        uint64
	BasePrice        *big.Int
	DiscountPrice    *big.Int
	RewardRatePerDay *big.Int
	AllowlistRoot    [32]byte
	VaultAddress     [20]byte
	IssuerAdmin      [20]byte
	RoyaltyRecipient [20]byte
	RoyaltyBps       uint32
}

var (
	errZeroVaultAddress = errors.New("core: vault address required")
	errZeroIssuerAdmin  = errors.New("core: issuer admin required")
)

// Node owns all mutable ledger state and serialises every public operation
// behind a single mutex. The claim bitmap, supply counter and custody records
// are not safe under interleaving, so nothing touches them except through
// these methods.
type Node struct {
	mu sync.Mutex

	state       *state.Manager
	mintEngine  *mint.Engine
	vaultEngine *vault.Engine
	registry    *registry.Registry
	token       *token.Ledger
	metrics     *observability.LedgerMetrics
}

// NewNode wires the engines over the given database and seeds genesis state
// (supply counter, token controller) when absent.
func NewNode(db storage.Database, params Params) (*Node, error) {
	if params.VaultAddress == [20]byte{} {
		return nil, errZeroVaultAddress
	}
	if params.IssuerAdmin == [20]byte{} {
		return nil, errZeroIssuerAdmin
	}

	mgr := state.NewManager(db)
	if err := mgr.InitializeSupply(params.SupplyCap); err != nil {
		return nil, err
	}

	reg := registry.NewRegistry()
	reg.SetState(mgr)
	reg.SetRoyalty(params.RoyaltyRecipient, params.RoyaltyBps)

	ledger := token.NewLedger()
	ledger.SetState(mgr)
	if err := ledger.InitializeController(params.IssuerAdmin); err != nil && !errors.Is(err, token.ErrControllerSet) {
		return nil, err
	}

	mintEngine := mint.NewEngine(params.BasePrice, params.DiscountPrice)
	mintEngine.SetState(mgr)
	mintEngine.SetIssuer(reg)
	mintEngine.SetAllowlist(allowlist.NewVerifier(params.AllowlistRoot), allowlist.NewBitmap(mgr))

	vaultEngine := vault.NewEngine(params.RewardRatePerDay)
	vaultEngine.SetState(mgr)
	vaultEngine.SetCustody(reg)
	vaultEngine.SetRewardIssuer(ledger)
	vaultEngine.SetVaultAddress(params.VaultAddress)

	// Direct transfers into the vault address stake the unit exactly as an
	// explicit deposit would.
	reg.RegisterReceiver(params.VaultAddress, registry.ReceiverFunc(vaultEngine.NoteReceived))

	return &Node{
		state:       mgr,
		mintEngine:  mintEngine,
		vaultEngine: vaultEngine,
		registry:    reg,
		token:       ledger,
		metrics:     observability.Metrics(),
	}, nil
}

// SetEmitter routes engine events to the given emitter.
func (n *Node) SetEmitter(emitter events.Emitter) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.mintEngine.SetEmitter(emitter)
	n.vaultEngine.SetEmitter(emitter)
}

// SetNowFunc overrides the vault clock; intended for tests.
func (n *Node) SetNowFunc(now func() int64) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.vaultEngine.SetNowFunc(now)
}

// MintUnit issues a unit at the base price.
func (n *Node) MintUnit(recipient [20]byte, paid *big.Int) (uint64, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	unitID, err := n.mintEngine.MintBase(recipient, paid)
	if err != nil {
		n.metrics.Failures.WithLabelValues("mint").Inc()
		return 0, err
	}
	n.metrics.Mints.WithLabelValues(events.MintTierBase).Inc()
	return unitID, nil
}

// MintAllowlisted issues a unit at the discounted price against a membership
// proof. Each allowlisted identity can use the discount once.
func (n *Node) MintAllowlisted(recipient [20]byte, paid *big.Int, proof [][32]byte) (uint64, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	unitID, err := n.mintEngine.MintAllowlisted(recipient, paid, proof)
	if err != nil {
		n.metrics.Failures.WithLabelValues("mintAllowlisted").Inc()
		return 0, err
	}
	n.metrics.Mints.WithLabelValues(events.MintTierAllowlist).Inc()
	return unitID, nil
}

// Deposit places the caller's unit into vault custody.
func (n *Node) Deposit(caller [20]byte, unitID uint64) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if err := n.vaultEngine.Deposit(caller, unitID); err != nil {
		n.metrics.Failures.WithLabelValues("deposit").Inc()
		return err
	}
	n.metrics.Stakes.Inc()
	return nil
}

// Transfer moves a unit between owners without invoking receive hooks.
func (n *Node) Transfer(caller, from, to [20]byte, unitID uint64) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.registry.Transfer(caller, from, to, unitID)
}

// SafeTransfer moves a unit and notifies the recipient's receive hook.
// Transferring to the vault address stakes the unit.
func (n *Node) SafeTransfer(caller, from, to [20]byte, unitID uint64) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	err := n.registry.SafeTransfer(caller, from, to, unitID)
	if err != nil {
		n.metrics.Failures.WithLabelValues("safeTransfer").Inc()
		return err
	}
	if to == n.vaultEngine.VaultAddress() {
		n.metrics.Stakes.Inc()
	}
	return nil
}

// CheckReward returns the reward accrued for a unit. Read-only.
func (n *Node) CheckReward(unitID uint64) (*big.Int, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.vaultEngine.CheckReward(unitID)
}

// WithdrawReward settles at least one full day of accrued rewards to the
// custodian and resets the accrual clock. Custody is untouched.
func (n *Node) WithdrawReward(caller [20]byte, unitID uint64) (*big.Int, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	paid, err := n.vaultEngine.WithdrawReward(caller, unitID)
	if err != nil {
		n.metrics.Failures.WithLabelValues("withdrawReward").Inc()
		return nil, err
	}
	n.metrics.Rewards.Inc()
	return paid, nil
}

// WithdrawUnit returns a unit to its custodian along with any accrued
// reward, clearing the custody record.
func (n *Node) WithdrawUnit(caller [20]byte, unitID uint64) (*big.Int, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	paid, err := n.vaultEngine.WithdrawUnit(caller, unitID)
	if err != nil {
		n.metrics.Failures.WithLabelValues("withdrawUnit").Inc()
		return nil, err
	}
	if paid.Sign() > 0 {
		n.metrics.Rewards.Inc()
	}
	n.metrics.Unstakes.Inc()
	return paid, nil
}

// NominateVaultController lets the current token controller nominate the
// vault as the next controller. First half of the handshake.
func (n *Node) NominateVaultController(caller [20]byte) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.token.TransferControl(caller, n.vaultEngine.VaultAddress())
}

// AcceptVaultControl completes the handshake: the vault accepts the pending
// nomination and becomes the reward token controller. This is the single
// administrative operation that makes reward payouts possible.
func (n *Node) AcceptVaultControl() error {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.token.AcceptControl(n.vaultEngine.VaultAddress())
}

// SupplyRemaining returns the number of units still mintable.
func (n *Node) SupplyRemaining() (uint64, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.state.SupplyRemaining()
}

// OwnerOf returns the current owner of a unit.
func (n *Node) OwnerOf(unitID uint64) ([20]byte, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.registry.OwnerOf(unitID)
}

// UnitBalance returns the number of units held by an owner.
func (n *Node) UnitBalance(owner [20]byte) (uint64, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.registry.BalanceOf(owner)
}

// RewardBalance returns the reward token balance for an address.
func (n *Node) RewardBalance(addr [20]byte) (*big.Int, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.token.BalanceOf(addr)
}

// RoyaltyInfo surfaces the static royalty schedule.
func (n *Node) RoyaltyInfo(salePrice *big.Int) ([20]byte, *big.Int) {
	return n.registry.RoyaltyInfo(salePrice)
}
