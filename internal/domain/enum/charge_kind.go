package enum

import (
	"database/sql/driver"
	"fmt"
)

// ChargeKind determines how an extra charge's value is interpreted:
// as a percentage of the line-item subtotal or as a flat amount.
type ChargeKind string

const (
	ChargePercentage ChargeKind = "percentage"
	ChargeFixed      ChargeKind = "fixed"
)

// Valid reports whether the kind is a known discriminator
func (k ChargeKind) Valid() bool {
	return k == ChargePercentage || k == ChargeFixed
}

func (k ChargeKind) String() string {
	return string(k)
}

// ParseChargeKind converts a string into a ChargeKind, rejecting unknown values
func ParseChargeKind(s string) (ChargeKind, error) {
	k := ChargeKind(s)
	if !k.Valid() {
		return "", fmt.Errorf("unsupported charge kind: %q", s)
	}
	return k, nil
}

func (k ChargeKind) Value() (driver.Value, error) {
	return string(k), nil
}

func (k *ChargeKind) Scan(value interface{}) error {
	if value == nil {
		*k = ChargeFixed
		return nil
	}
	switch v := value.(type) {
	case string:
		*k = ChargeKind(v)
	case []byte:
		*k = ChargeKind(v)
	}
	return nil
}
