package config

import (
	"os"
	"path/filepath"
	"testing"

	"medallion/crypto"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func testBech32(t *testing.T, fill byte) string {
	t.Helper()
	raw := make([]byte, 20)
	for i := range raw {
		raw[i] = fill
	}
	addr, err := crypto.NewAddress(crypto.MDLPrefix, raw)
	if err != nil {
		t.Fatalf("address: %v", err)
	}
	return addr.String()
}

func TestLoadCreatesDefaultFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.SupplyCap != defaultSupplyCap {
		t.Fatalf("default cap: got %d want %d", cfg.SupplyCap, defaultSupplyCap)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("default file not written: %v", err)
	}
}

func TestParamsValidation(t *testing.T) {
	vaultAddr := testBech32(t, 0xEE)
	admin := testBech32(t, 0x01)
	path := writeConfig(t, `
ListenAddress = ":8681"
DataDir = "./data"
SupplyCap = 1000
BasePrice = "100"
DiscountPrice = "40"
RewardRatePerDay = "10"
AllowlistRoot = "0x1111111111111111111111111111111111111111111111111111111111111111"
VaultAddress = "`+vaultAddr+`"
IssuerAdmin = "`+admin+`"
RoyaltyBps = 500
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	params, err := cfg.Params()
	if err != nil {
		t.Fatalf("params: %v", err)
	}
	if params.SupplyCap != 1000 || params.RoyaltyBps != 500 {
		t.Fatalf("unexpected params: %+v", params)
	}
	if params.BasePrice.String() != "100" || params.DiscountPrice.String() != "40" {
		t.Fatalf("prices: %s / %s", params.BasePrice, params.DiscountPrice)
	}
	if params.AllowlistRoot[0] != 0x11 {
		t.Fatalf("root not decoded")
	}
	if params.VaultAddress == [20]byte{} || params.IssuerAdmin == [20]byte{} {
		t.Fatalf("addresses not decoded")
	}
}

func TestParamsRejectsBadValues(t *testing.T) {
	goodRoot := "0x1111111111111111111111111111111111111111111111111111111111111111"
	build := func(cap, price, root, vaultAddr string) string {
		return `
SupplyCap = ` + cap + `
BasePrice = "` + price + `"
DiscountPrice = "40"
RewardRatePerDay = "10"
AllowlistRoot = "` + root + `"
VaultAddress = "` + vaultAddr + `"
IssuerAdmin = "` + testBech32(t, 0x01) + `"
`
	}

	cases := []struct {
		name string
		body string
	}{
		{"bad price", build("10", "abc", goodRoot, testBech32(t, 0xEE))},
		{"short root", build("10", "100", "0x1234", testBech32(t, 0xEE))},
		{"bad address", build("10", "100", goodRoot, "not-bech32")},
		{"zero cap", build("0", "100", goodRoot, testBech32(t, 0xEE))},
	}
	for _, tc := range cases {
		cfg, err := Load(writeConfig(t, tc.body))
		if err != nil {
			t.Fatalf("%s: load: %v", tc.name, err)
		}
		if _, err := cfg.Params(); err == nil {
			t.Fatalf("%s: expected validation error", tc.name)
		}
	}
}
