package state

var (
	supplyRemainingKeyBytes = []byte("mint/supply/remaining")
	stakeRecordPrefix       = []byte("vault/record/")
	claimWordPrefix         = []byte("allowlist/claimed/")
	unitOwnerPrefix         = []byte("unit/owner/")
	unitBalancePrefix       = []byte("unit/balance/")
	tokenBalancePrefix      = []byte("token/balance/")
	tokenControlKeyBytes    = []byte("token/control")
)
