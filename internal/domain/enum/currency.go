package enum

import (
	"database/sql/driver"
	"fmt"
)

// Currency represents the currency an invoice is issued in
type Currency string

const (
	CurrencyINR Currency = "INR"
	CurrencyUSD Currency = "USD"
)

// Valid reports whether the currency is one of the supported codes
func (c Currency) Valid() bool {
	return c == CurrencyINR || c == CurrencyUSD
}

// Symbol returns the display symbol for the currency
func (c Currency) Symbol() string {
	switch c {
	case CurrencyUSD:
		return "$"
	default:
		return "₹"
	}
}

func (c Currency) String() string {
	return string(c)
}

// ParseCurrency converts a string into a Currency, rejecting unknown codes
func ParseCurrency(s string) (Currency, error) {
	c := Currency(s)
	if !c.Valid() {
		return "", fmt.Errorf("unsupported currency: %q", s)
	}
	return c, nil
}

func (c Currency) Value() (driver.Value, error) {
	return string(c), nil
}

func (c *Currency) Scan(value interface{}) error {
	if value == nil {
		*c = CurrencyINR
		return nil
	}
	switch v := value.(type) {
	case string:
		*c = Currency(v)
	case []byte:
		*c = Currency(v)
	}
	return nil
}
