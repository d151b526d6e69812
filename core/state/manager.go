package state

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math/big"

	ethcrypto "github.com/ethereum/go-ethereum/crypto"

	"medallion/storage"
)

// Manager provides a minimal interface for reading and writing ledger state.
// All keys are hashed before hitting the backing store so key layout changes
// never collide with raw user-supplied data.
type Manager struct {
	db storage.Database
}

// NewManager creates a state manager operating on the provided database.
func NewManager(db storage.Database) *Manager {
	return &Manager{db: db}
}

var errNilManager = errors.New("state: manager not configured")

func kvKey(prefix []byte, suffix []byte) []byte {
	buf := make([]byte, len(prefix)+len(suffix))
	copy(buf, prefix)
	copy(buf[len(prefix):], suffix)
	return ethcrypto.Keccak256(buf)
}

func uint64Suffix(v uint64) []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, v)
	return buf
}

func (m *Manager) get(key []byte) ([]byte, bool, error) {
	if m == nil || m.db == nil {
		return nil, false, errNilManager
	}
	value, err := m.db.Get(key)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return value, true, nil
}

func (m *Manager) put(key, value []byte) error {
	if m == nil || m.db == nil {
		return errNilManager
	}
	return m.db.Put(key, value)
}

func (m *Manager) delete(key []byte) error {
	if m == nil || m.db == nil {
		return errNilManager
	}
	return m.db.Delete(key)
}

func (m *Manager) getBig(key []byte) (*big.Int, error) {
	raw, ok, err := m.get(key)
	if err != nil {
		return nil, err
	}
	if !ok || len(raw) == 0 {
		return big.NewInt(0), nil
	}
	return new(big.Int).SetBytes(raw), nil
}

func (m *Manager) putBig(key []byte, value *big.Int) error {
	if value == nil || value.Sign() < 0 {
		return fmt.Errorf("state: refusing to store negative or nil amount")
	}
	return m.put(key, value.Bytes())
}
