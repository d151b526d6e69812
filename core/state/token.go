package state

import (
	"math/big"

	"github.com/ethereum/go-ethereum/rlp"
)

// TokenControl records who may mint the reward token and who has been
// nominated to take over. Stored RLP-encoded under a single key.
type TokenControl struct {
	Controller []byte
	Pending    []byte
}

func tokenBalanceKey(addr [20]byte) []byte {
	return kvKey(tokenBalancePrefix, addr[:])
}

// TokenBalance returns the reward-token balance for an address.
func (m *Manager) TokenBalance(addr [20]byte) (*big.Int, error) {
	return m.getBig(tokenBalanceKey(addr))
}

// SetTokenBalance overwrites the reward-token balance for an address.
func (m *Manager) SetTokenBalance(addr [20]byte, balance *big.Int) error {
	return m.putBig(tokenBalanceKey(addr), balance)
}

// TokenControlRecord loads the controller record, or an empty record when the
// token control has never been configured.
func (m *Manager) TokenControlRecord() (*TokenControl, error) {
	raw, ok, err := m.get(kvKey(tokenControlKeyBytes, nil))
	if err != nil {
		return nil, err
	}
	if !ok || len(raw) == 0 {
		return &TokenControl{}, nil
	}
	record := new(TokenControl)
	if err := rlp.DecodeBytes(raw, record); err != nil {
		return nil, err
	}
	return record, nil
}

// TokenController returns the current and pending controller identities as
// raw byte slices; either may be empty when unset.
func (m *Manager) TokenController() (controller, pending []byte, err error) {
	record, err := m.TokenControlRecord()
	if err != nil {
		return nil, nil, err
	}
	return record.Controller, record.Pending, nil
}

// SetTokenController overwrites the controller record.
func (m *Manager) SetTokenController(controller, pending []byte) error {
	return m.PutTokenControlRecord(&TokenControl{Controller: controller, Pending: pending})
}

// PutTokenControlRecord stores the controller record.
func (m *Manager) PutTokenControlRecord(record *TokenControl) error {
	if record == nil {
		record = &TokenControl{}
	}
	encoded, err := rlp.EncodeToBytes(record)
	if err != nil {
		return err
	}
	return m.put(kvKey(tokenControlKeyBytes, nil), encoded)
}
