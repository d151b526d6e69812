package vault

import "math/big"

// secondsPerDay is the accrual period. Rewards step up only on full 24-hour
// boundaries since the reference timestamp.
const secondsPerDay int64 = 86_400

// Accrued computes the reward earned between stakedAt and now at the given
// per-day rate. A zero reference timestamp (never staked) and elapsed time
// under one full day both yield zero; the result is a step function, not a
// continuous accrual.
func Accrued(stakedAt, now int64, ratePerDay *big.Int) *big.Int {
	if stakedAt <= 0 || now <= stakedAt || ratePerDay == nil {
		return big.NewInt(0)
	}
	days := (now - stakedAt) / secondsPerDay
	if days == 0 {
		return big.NewInt(0)
	}
	return new(big.Int).Mul(big.NewInt(days), ratePerDay)
}
