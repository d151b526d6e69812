package vault

import (
	"errors"
	"testing"
)

func testCustodian(fill byte) [20]byte {
	var addr [20]byte
	for i := range addr {
		addr[i] = fill
	}
	return addr
}

func TestRecordRoundTrip(t *testing.T) {
	cases := []StakeRecord{
		{Custodian: testCustodian(0x01), StakedAt: 1},
		{Custodian: testCustodian(0xAB), StakedAt: 1_700_000_000},
		{Custodian: testCustodian(0xFF), StakedAt: 1<<62 + 12345},
	}
	for _, want := range cases {
		word, err := want.Pack()
		if err != nil {
			t.Fatalf("pack %+v: %v", want, err)
		}
		got, ok := UnpackRecord(word)
		if !ok {
			t.Fatalf("unpack %+v: record reported absent", want)
		}
		if got != want {
			t.Fatalf("round trip mismatch: got %+v want %+v", got, want)
		}
	}
}

func TestRecordPackRejectsBadFields(t *testing.T) {
	if _, err := (StakeRecord{StakedAt: 100}).Pack(); !errors.Is(err, ErrEmptyCustodian) {
		t.Fatalf("empty custodian: got %v want %v", err, ErrEmptyCustodian)
	}
	if _, err := (StakeRecord{Custodian: testCustodian(0x01)}).Pack(); !errors.Is(err, ErrTimestampOverflow) {
		t.Fatalf("zero timestamp: got %v want %v", err, ErrTimestampOverflow)
	}
	if _, err := (StakeRecord{Custodian: testCustodian(0x01), StakedAt: -5}).Pack(); !errors.Is(err, ErrTimestampOverflow) {
		t.Fatalf("negative timestamp: got %v want %v", err, ErrTimestampOverflow)
	}
}

func TestUnpackZeroWordIsAbsent(t *testing.T) {
	if _, ok := UnpackRecord([32]byte{}); ok {
		t.Fatalf("zero word should unpack as absent")
	}
}

func TestUnpackRejectsOverflowedTimestamp(t *testing.T) {
	word, err := StakeRecord{Custodian: testCustodian(0x02), StakedAt: 42}.Pack()
	if err != nil {
		t.Fatalf("pack: %v", err)
	}
	// Corrupt a high timestamp byte Pack can never write.
	word[21] = 0x01
	if _, ok := UnpackRecord(word); ok {
		t.Fatalf("timestamp beyond packable range should unpack as invalid")
	}
}
