package vault

import "errors"

var (
	// ErrAlreadyStaked rejects a deposit for a unit that already has a
	// custody record.
	ErrAlreadyStaked = errors.New("vault: unit already staked")
	// ErrNotCustodian rejects settlement attempts by anyone other than the
	// recorded custodian. It also covers units with no record at all, where
	// the recorded custodian is nobody.
	ErrNotCustodian = errors.New("vault: caller is not the custodian")
	// ErrNoReward rejects stand-alone reward claims below one full day of
	// accrual. Sub-day dust is only paid out together with a unit
	// withdrawal.
	ErrNoReward = errors.New("vault: no reward accrued")
	// ErrTimestampOverflow indicates a deposit timestamp that does not fit
	// the packed record's timestamp field.
	ErrTimestampOverflow = errors.New("vault: timestamp outside packed range")
	// ErrEmptyCustodian indicates an attempt to pack a record without a
	// custodian identity.
	ErrEmptyCustodian = errors.New("vault: custodian required")
)
