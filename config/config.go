package config

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"medallion/core"
	"medallion/crypto"
)

// Config is the on-disk node configuration.
type Config struct {
	ListenAddress    string `toml:"ListenAddress"`
	DataDir          string `toml:"DataDir"`
	SupplyCap        uint64 `toml:"SupplyCap"`
	BasePrice        string `toml:"BasePrice"`
	DiscountPrice    string `toml:"DiscountPrice"`
	RewardRatePerDay string `toml:"RewardRatePerDay"`
	AllowlistRoot    string `toml:"AllowlistRoot"`
	VaultAddress     string `toml:"VaultAddress"`
	IssuerAdmin      string `toml:"IssuerAdmin"`
	RoyaltyRecipient string `toml:"RoyaltyRecipient"`
	RoyaltyBps       uint32 `toml:"RoyaltyBps"`
}

const defaultSupplyCap = 1000

func defaultConfig() *Config {
	return &Config{
		ListenAddress:    ":8681",
		DataDir:          "./medallion-data",
		SupplyCap:        defaultSupplyCap,
		BasePrice:        "100000000000000000",
		DiscountPrice:    "50000000000000000",
		RewardRatePerDay: "10",
		RoyaltyBps:       500,
	}
}

// Load loads the configuration from the given path, writing a default file
// when none exists.
func Load(path string) (*Config, error) {
	cfg := defaultConfig()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return createDefault(path)
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func createDefault(path string) (*Config, error) {
	cfg := defaultConfig()
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Params validates the configuration and converts it into ledger parameters.
func (c *Config) Params() (core.Params, error) {
	var params core.Params
	if c.SupplyCap == 0 {
		return params, fmt.Errorf("config: SupplyCap must be positive")
	}
	params.SupplyCap = c.SupplyCap
	params.RoyaltyBps = c.RoyaltyBps

	var err error
	if params.BasePrice, err = parseAmount("BasePrice", c.BasePrice); err != nil {
		return params, err
	}
	if params.DiscountPrice, err = parseAmount("DiscountPrice", c.DiscountPrice); err != nil {
		return params, err
	}
	if params.RewardRatePerDay, err = parseAmount("RewardRatePerDay", c.RewardRatePerDay); err != nil {
		return params, err
	}
	if params.AllowlistRoot, err = parseRoot(c.AllowlistRoot); err != nil {
		return params, err
	}
	if params.VaultAddress, err = parseAddress("VaultAddress", c.VaultAddress); err != nil {
		return params, err
	}
	if params.IssuerAdmin, err = parseAddress("IssuerAdmin", c.IssuerAdmin); err != nil {
		return params, err
	}
	if strings.TrimSpace(c.RoyaltyRecipient) != "" {
		if params.RoyaltyRecipient, err = parseAddress("RoyaltyRecipient", c.RoyaltyRecipient); err != nil {
			return params, err
		}
	}
	return params, nil
}

func parseAmount(field, value string) (*big.Int, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil, fmt.Errorf("config: %s required", field)
	}
	amount, ok := new(big.Int).SetString(trimmed, 10)
	if !ok || amount.Sign() < 0 {
		return nil, fmt.Errorf("config: invalid %s: %q", field, value)
	}
	return amount, nil
}

func parseRoot(value string) ([32]byte, error) {
	var root [32]byte
	trimmed := strings.TrimPrefix(strings.TrimSpace(value), "0x")
	if trimmed == "" {
		return root, fmt.Errorf("config: AllowlistRoot required")
	}
	raw, err := hex.DecodeString(trimmed)
	if err != nil || len(raw) != 32 {
		return root, fmt.Errorf("config: AllowlistRoot must be 32 hex bytes")
	}
	copy(root[:], raw)
	return root, nil
}

func parseAddress(field, value string) ([20]byte, error) {
	var out [20]byte
	addr, err := crypto.DecodeAddress(strings.TrimSpace(value))
	if err != nil {
		return out, fmt.Errorf("config: invalid %s: %w", field, err)
	}
	copy(out[:], addr.Bytes())
	return out, nil
}
