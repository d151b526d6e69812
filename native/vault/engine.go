package vault

import (
	"errors"
	"math/big"
	"time"

	"medallion/core/events"
)

var (
	errNilState   = errors.New("vault engine: state not configured")
	errNilCustody = errors.New("vault engine: unit custody not configured")
	errNilIssuer  = errors.New("vault engine: reward issuer not configured")
)

// engineState is the slice of ledger state the vault engine touches.
type engineState interface {
	StakeRecordWord(unitID uint64) ([32]byte, bool, error)
	PutStakeRecordWord(unitID uint64, word [32]byte) error
	DeleteStakeRecord(unitID uint64) error
}

// UnitCustody moves units between owners. Transfers never invoke receive
// hooks; the hook-driven path goes through the registry's safe transfer and
// lands in NoteReceived.
type UnitCustody interface {
	Transfer(caller, from, to [20]byte, unitID uint64) error
}

// RewardIssuer mints reward tokens. The vault address must hold the token
// controller role for payouts to succeed.
type RewardIssuer interface {
	Mint(caller, to [20]byte, amount *big.Int) error
}

// Engine is the custody and settlement state machine. Per unit:
//
//	Unstaked -> Deposit -> Staked -> WithdrawReward -> Staked (clock reset)
//	Staked -> WithdrawUnit -> Unstaked (record cleared)
//
// No other transitions exist.
type Engine struct {
	state      engineState
	custody    UnitCustody
	issuer     RewardIssuer
	emitter    events.Emitter
	nowFn      func() int64
	vaultAddr  [20]byte
	ratePerDay *big.Int
}

// NewEngine creates a vault engine with a no-op emitter and the wall clock.
func NewEngine(ratePerDay *big.Int) *Engine {
	rate := big.NewInt(0)
	if ratePerDay != nil {
		rate = new(big.Int).Set(ratePerDay)
	}
	return &Engine{
		emitter:    events.NoopEmitter{},
		nowFn:      func() int64 { return time.Now().Unix() },
		ratePerDay: rate,
	}
}

// SetState configures the state backend used by the engine.
func (e *Engine) SetState(state engineState) { e.state = state }

// SetCustody configures the unit registry used for custody transfers.
func (e *Engine) SetCustody(custody UnitCustody) { e.custody = custody }

// SetRewardIssuer configures the reward token issuer.
func (e *Engine) SetRewardIssuer(issuer RewardIssuer) { e.issuer = issuer }

// SetVaultAddress configures the identity units are held under while staked.
func (e *Engine) SetVaultAddress(addr [20]byte) { e.vaultAddr = addr }

// VaultAddress returns the custody identity.
func (e *Engine) VaultAddress() [20]byte { return e.vaultAddr }

// RatePerDay returns the fixed accrual rate.
func (e *Engine) RatePerDay() *big.Int { return new(big.Int).Set(e.ratePerDay) }

// SetNowFunc overrides the time source used by the engine. Primarily intended
// for tests to provide deterministic timestamps.
func (e *Engine) SetNowFunc(now func() int64) {
	if now == nil {
		e.nowFn = func() int64 { return time.Now().Unix() }
		return
	}
	e.nowFn = now
}

// SetEmitter configures the event emitter. Passing nil resets to a no-op.
func (e *Engine) SetEmitter(emitter events.Emitter) {
	if emitter == nil {
		e.emitter = events.NoopEmitter{}
		return
	}
	e.emitter = emitter
}

func (e *Engine) now() int64 {
	if e == nil || e.nowFn == nil {
		return time.Now().Unix()
	}
	return e.nowFn()
}

func (e *Engine) ready() error {
	if e == nil || e.state == nil {
		return errNilState
	}
	if e.custody == nil {
		return errNilCustody
	}
	if e.issuer == nil {
		return errNilIssuer
	}
	return nil
}

// createRecord writes the custody record for a freshly received unit. Both
// the explicit deposit path and the safe-transfer hook converge here, so a
// double-stake is rejected regardless of how the unit arrived.
func (e *Engine) createRecord(custodian [20]byte, unitID uint64) error {
	_, staked, err := e.state.StakeRecordWord(unitID)
	if err != nil {
		return err
	}
	if staked {
		return ErrAlreadyStaked
	}
	word, err := StakeRecord{Custodian: custodian, StakedAt: e.now()}.Pack()
	if err != nil {
		return err
	}
	if err := e.state.PutStakeRecordWord(unitID, word); err != nil {
		return err
	}
	e.emitter.Emit(events.VaultStaked{Custodian: custodian, UnitID: unitID})
	return nil
}

// Deposit pulls the caller's unit into vault custody and starts the accrual
// clock. The custody transfer and the record write are one operation: if the
// transfer fails, no record is created.
func (e *Engine) Deposit(caller [20]byte, unitID uint64) error {
	if err := e.ready(); err != nil {
		return err
	}
	_, staked, err := e.state.StakeRecordWord(unitID)
	if err != nil {
		return err
	}
	if staked {
		return ErrAlreadyStaked
	}
	if err := e.custody.Transfer(caller, caller, e.vaultAddr, unitID); err != nil {
		return err
	}
	return e.createRecord(caller, unitID)
}

// NoteReceived records custody for a unit that was transferred directly into
// the vault via the registry's safe transfer. The registry aborts the
// transfer when this returns an error.
func (e *Engine) NoteReceived(from [20]byte, unitID uint64) error {
	if e == nil || e.state == nil {
		return errNilState
	}
	return e.createRecord(from, unitID)
}

// CheckReward returns the reward accrued for a unit since its reference
// timestamp. Units with no record yield zero. Read-only.
func (e *Engine) CheckReward(unitID uint64) (*big.Int, error) {
	if e == nil || e.state == nil {
		return nil, errNilState
	}
	word, staked, err := e.state.StakeRecordWord(unitID)
	if err != nil {
		return nil, err
	}
	if !staked {
		return big.NewInt(0), nil
	}
	record, ok := UnpackRecord(word)
	if !ok {
		return big.NewInt(0), nil
	}
	return Accrued(record.StakedAt, e.now(), e.ratePerDay), nil
}

// loadFor returns the record for a unit provided the caller is its recorded
// custodian. A missing record fails the same custodian check: nobody is the
// custodian of an unstaked unit.
func (e *Engine) loadFor(caller [20]byte, unitID uint64) (StakeRecord, error) {
	word, staked, err := e.state.StakeRecordWord(unitID)
	if err != nil {
		return StakeRecord{}, err
	}
	if !staked {
		return StakeRecord{}, ErrNotCustodian
	}
	record, ok := UnpackRecord(word)
	if !ok || record.Custodian != caller {
		return StakeRecord{}, ErrNotCustodian
	}
	return record, nil
}

// WithdrawReward settles accrued rewards without touching custody. At least
// one full day must have accrued; the record is rewritten with the same
// custodian and the current time, resetting the clock.
func (e *Engine) WithdrawReward(caller [20]byte, unitID uint64) (*big.Int, error) {
	if err := e.ready(); err != nil {
		return nil, err
	}
	record, err := e.loadFor(caller, unitID)
	if err != nil {
		return nil, err
	}
	now := e.now()
	accrued := Accrued(record.StakedAt, now, e.ratePerDay)
	if accrued.Cmp(e.ratePerDay) < 0 {
		return nil, ErrNoReward
	}
	word, err := StakeRecord{Custodian: record.Custodian, StakedAt: now}.Pack()
	if err != nil {
		return nil, err
	}
	if err := e.issuer.Mint(e.vaultAddr, record.Custodian, accrued); err != nil {
		return nil, err
	}
	if err := e.state.PutStakeRecordWord(unitID, word); err != nil {
		return nil, err
	}
	e.emitter.Emit(events.RewardPaid{Custodian: record.Custodian, Amount: accrued, Reason: events.RewardReasonClaim})
	return accrued, nil
}

// WithdrawUnit returns the unit to its custodian, paying out whatever has
// accrued. Unlike WithdrawReward there is no one-day minimum: sub-day dust
// rides along with the unit rather than being forfeited.
func (e *Engine) WithdrawUnit(caller [20]byte, unitID uint64) (*big.Int, error) {
	if err := e.ready(); err != nil {
		return nil, err
	}
	record, err := e.loadFor(caller, unitID)
	if err != nil {
		return nil, err
	}
	accrued := Accrued(record.StakedAt, e.now(), e.ratePerDay)
	if accrued.Sign() > 0 {
		if err := e.issuer.Mint(e.vaultAddr, record.Custodian, accrued); err != nil {
			return nil, err
		}
	}
	if err := e.custody.Transfer(e.vaultAddr, e.vaultAddr, record.Custodian, unitID); err != nil {
		return nil, err
	}
	if err := e.state.DeleteStakeRecord(unitID); err != nil {
		return nil, err
	}
	if accrued.Sign() > 0 {
		e.emitter.Emit(events.RewardPaid{Custodian: record.Custodian, Amount: accrued, Reason: events.RewardReasonWithdraw})
	}
	e.emitter.Emit(events.VaultUnstaked{Custodian: record.Custodian, UnitID: unitID})
	return accrued, nil
}
