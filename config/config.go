// Package config loads the application configuration: which worksheet to
// read, where documents go, and the supplier identity printed on them.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dougbrierley/F2F/document"
)

// Config is the YAML application configuration.
type Config struct {
	// Sheet is the worksheet name orders are extracted from.
	Sheet string `yaml:"sheet"`

	// Bucket and Region select the S3 destination for --upload runs.
	Bucket string `yaml:"bucket"`
	Region string `yaml:"region"`

	// UploadTimeoutSeconds bounds a single document upload.
	UploadTimeoutSeconds int `yaml:"upload_timeout_seconds"`

	// Letterhead is an optional PDF stamped behind the first page.
	Letterhead string `yaml:"letterhead"`

	Supplier Supplier `yaml:"supplier"`
	Bank     Bank     `yaml:"bank"`
}

// Supplier is the identity block printed on every document.
type Supplier struct {
	Name      string   `yaml:"name"`
	Address   []string `yaml:"address"`
	Contact   string   `yaml:"contact"`
	Email     string   `yaml:"email"`
	VATNumber string   `yaml:"vat_number"`
}

// Bank is the payment destination printed on invoices.
type Bank struct {
	AccountName   string `yaml:"account_name"`
	SortCode      string `yaml:"sort_code"`
	AccountNumber string `yaml:"account_number"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Sheet:                "GROWERS' PAGE",
		Region:               "eu-west-2",
		UploadTimeoutSeconds: 30,
	}
}

// Load reads the YAML file at path on top of the defaults and validates the
// result.
func Load(path string) (*Config, error) {
	cfg := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports the first configuration mistake found.
func (c *Config) Validate() error {
	if c.Sheet == "" {
		return errors.New("config: sheet name is required")
	}
	if c.Bucket != "" && c.Region == "" {
		return errors.New("config: region is required when a bucket is set")
	}
	if c.UploadTimeoutSeconds <= 0 {
		return errors.New("config: upload_timeout_seconds must be positive")
	}
	if c.Supplier.Contact != "" && c.Supplier.Email == "" {
		return errors.New("config: supplier email is required with a contact line")
	}
	return nil
}

// UploadTimeout is the per-document upload bound as a duration.
func (c *Config) UploadTimeout() time.Duration {
	return time.Duration(c.UploadTimeoutSeconds) * time.Second
}

// Stationery converts the configured identity into the form the document
// assemblers take.
func (c *Config) Stationery() document.Stationery {
	return document.Stationery{
		Name:      c.Supplier.Name,
		Address:   c.Supplier.Address,
		Contact:   c.Supplier.Contact,
		Email:     c.Supplier.Email,
		VATNumber: c.Supplier.VATNumber,
		Bank: document.Bank{
			AccountName:   c.Bank.AccountName,
			SortCode:      c.Bank.SortCode,
			AccountNumber: c.Bank.AccountNumber,
		},
		Letterhead: c.Letterhead,
	}
}
