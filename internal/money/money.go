// Package money implements fixed-point monetary amounts in minor units
// (piasters). Calculator snapshots arrive as loosely typed JSON numbers;
// everything past the deserialization edge is integer arithmetic.
package money

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Amount is a monetary value in minor units (1/100 of the major unit).
type Amount int64

// Zero is the additive identity.
const Zero Amount = 0

// FromFloat converts a major-unit float to an Amount, rounding half away
// from zero at two decimals.
func FromFloat(v float64) Amount {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return Amount(math.Round(v * 100))
}

// FromMinor wraps an already-scaled minor-unit integer.
func FromMinor(v int64) Amount {
	return Amount(v)
}

// Float returns the major-unit value. Only for display and spelling; never
// feed the result back into arithmetic.
func (a Amount) Float() float64 {
	return float64(a) / 100
}

// Units splits the amount into whole major units and remaining minor units.
// The minor part is always non-negative.
func (a Amount) Units() (major int64, minor int64) {
	major = int64(a) / 100
	minor = int64(a) % 100
	if minor < 0 {
		minor = -minor
	}
	return major, minor
}

// IsZero reports whether the amount equals zero.
func (a Amount) IsZero() bool { return a == 0 }

// IsPositive reports whether the amount is strictly greater than zero.
func (a Amount) IsPositive() bool { return a > 0 }

// ClampNonNegative returns the amount floored at zero.
func (a Amount) ClampNonNegative() Amount {
	if a < 0 {
		return 0
	}
	return a
}

// SubFloor returns max(0, a-b).
func (a Amount) SubFloor(b Amount) Amount {
	return (a - b).ClampNonNegative()
}

// String renders the amount with a fixed two-decimal fraction, unlocalized.
func (a Amount) String() string {
	major, minor := a.Units()
	sign := ""
	if a < 0 && major == 0 {
		sign = "-"
	}
	return fmt.Sprintf("%s%d.%02d", sign, major, minor)
}

// UnmarshalJSON accepts numbers, numeric strings, and null. Anything that
// does not parse coerces to zero, matching the snapshot's loose typing.
func (a *Amount) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "" || s == "null" {
		*a = 0
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			*a = 0
			return nil
		}
		s = strings.TrimSpace(str)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*a = 0
		return nil
	}
	*a = FromFloat(v)
	return nil
}

// MarshalJSON emits the major-unit value as a JSON number.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.String()), nil
}

// ParseLoose coerces an arbitrary decoded JSON value to an Amount. Missing
// and malformed values become zero.
func ParseLoose(v any) Amount {
	switch t := v.(type) {
	case nil:
		return 0
	case float64:
		return FromFloat(t)
	case int64:
		return FromMinor(t * 100)
	case int:
		return FromMinor(int64(t) * 100)
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return 0
		}
		return FromFloat(f)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0
		}
		return FromFloat(f)
	default:
		return 0
	}
}
