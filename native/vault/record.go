package vault

import (
	"encoding/binary"
	"math"
)

// StakeRecord is the logical custody record for one unit. It is persisted as
// a single 32-byte word: the high 160 bits hold the custodian identity and
// the low 96 bits hold the deposit timestamp (unix seconds, big-endian).
// An all-zero word means no record; a stored record always has both fields
// populated.
type StakeRecord struct {
	Custodian [20]byte
	StakedAt  int64
}

// custodianBytes and timestampBytes describe the packed word layout.
const (
	custodianBytes = 20
	timestampBytes = 12
)

// Pack encodes the record into its storage word. Field ranges are validated
// explicitly; out-of-range values fail rather than truncate. An int64
// timestamp always fits the 96-bit field from above, so only the sign and
// the zero sentinel need guarding.
func (r StakeRecord) Pack() ([32]byte, error) {
	var word [32]byte
	if r.Custodian == [20]byte{} {
		return word, ErrEmptyCustodian
	}
	if r.StakedAt <= 0 {
		return word, ErrTimestampOverflow
	}
	copy(word[:custodianBytes], r.Custodian[:])
	binary.BigEndian.PutUint64(word[24:], uint64(r.StakedAt))
	return word, nil
}

// UnpackRecord decodes a storage word. The second return value is false for
// the all-zero word, which denotes an absent record, and for words whose
// timestamp field exceeds the range Pack can produce.
func UnpackRecord(word [32]byte) (StakeRecord, bool) {
	if word == [32]byte{} {
		return StakeRecord{}, false
	}
	var r StakeRecord
	copy(r.Custodian[:], word[:custodianBytes])
	for _, b := range word[custodianBytes:24] {
		if b != 0 {
			return StakeRecord{}, false
		}
	}
	ts := binary.BigEndian.Uint64(word[24:])
	if ts > math.MaxInt64 {
		return StakeRecord{}, false
	}
	r.StakedAt = int64(ts)
	return r, true
}
