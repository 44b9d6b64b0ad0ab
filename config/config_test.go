package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

const sample = `
sheet: "GROWERS' PAGE"
bucket: f2f-documents
region: eu-west-2
upload_timeout_seconds: 10
letterhead: assets/letterhead.pdf
supplier:
  name: Norfolk Veg Hub
  address:
    - The Barn
    - Dereham
    - NR19 1AA
  contact: orders@norfolkveg.example - 01362 000000
  email: orders@norfolkveg.example
  vat_number: GB123456789
bank:
  account_name: Norfolk Veg Hub
  sort_code: 00-11-22
  account_number: "12345678"
`

func load(t *testing.T, content string) (*Config, error) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "f2f.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return Load(path)
}

func TestLoad(t *testing.T) {
	cfg, err := load(t, sample)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Bucket != "f2f-documents" || cfg.Region != "eu-west-2" {
		t.Errorf("bucket/region = %q/%q", cfg.Bucket, cfg.Region)
	}
	if got := cfg.UploadTimeout(); got != 10*time.Second {
		t.Errorf("timeout = %v", got)
	}
	st := cfg.Stationery()
	if st.Name != "Norfolk Veg Hub" || len(st.Address) != 3 {
		t.Errorf("stationery = %+v", st)
	}
	if st.Bank.SortCode != "00-11-22" || st.Bank.AccountNumber != "12345678" {
		t.Errorf("bank = %+v", st.Bank)
	}
}

func TestLoadKeepsDefaults(t *testing.T) {
	cfg, err := load(t, "supplier:\n  name: Norfolk Veg Hub\n")
	if err != nil {
		t.Fatal(err)
	}
	def := Default()
	if cfg.Sheet != def.Sheet {
		t.Errorf("sheet = %q, want default %q", cfg.Sheet, def.Sheet)
	}
	if cfg.UploadTimeout() != def.UploadTimeout() {
		t.Errorf("timeout = %v", cfg.UploadTimeout())
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"empty sheet", func(c *Config) { c.Sheet = "" }, "sheet"},
		{"bucket without region", func(c *Config) { c.Bucket = "b"; c.Region = "" }, "region"},
		{"zero timeout", func(c *Config) { c.UploadTimeoutSeconds = 0 }, "upload_timeout"},
		{"contact without email", func(c *Config) { c.Supplier.Contact = "x"; c.Supplier.Email = "" }, "email"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %v, want mention of %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("want error for missing file")
	}
}
