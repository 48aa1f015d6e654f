package money

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Cents is a monetary amount in integer cents. Amounts are stored as
// DECIMAL(10,2) and serialized as a two-decimal JSON string, so sums never
// pick up binary floating point drift.
type Cents int64

// Parse converts a decimal string like "15.99", "10" or "5.5" into Cents.
// At most two fractional digits are accepted.
func Parse(s string) (Cents, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("money: empty amount")
	}

	negative := false
	if strings.HasPrefix(s, "-") {
		negative = true
		s = s[1:]
	} else if strings.HasPrefix(s, "+") {
		s = s[1:]
	}

	whole := s
	frac := ""
	if idx := strings.IndexByte(s, '.'); idx >= 0 {
		whole = s[:idx]
		frac = s[idx+1:]
	}
	if whole == "" && frac == "" {
		return 0, fmt.Errorf("money: invalid amount %q", s)
	}
	if len(frac) > 2 {
		return 0, fmt.Errorf("money: amount %q has more than two decimal places", s)
	}
	// Both parts must be bare digit runs; ParseInt alone would let a sign
	// through ("1.-5").
	if !digitsOnly(whole) || !digitsOnly(frac) {
		return 0, fmt.Errorf("money: invalid amount %q", s)
	}
	if whole == "" {
		whole = "0"
	}
	for len(frac) < 2 {
		frac += "0"
	}

	w, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("money: invalid amount %q", s)
	}
	f, err := strconv.ParseInt(frac, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("money: invalid amount %q", s)
	}

	c := Cents(w*100 + f)
	if negative {
		c = -c
	}
	return c, nil
}

// String formats the amount with exactly two decimal places.
func (c Cents) String() string {
	v := int64(c)
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

// Mul multiplies the amount by an integer factor.
func (c Cents) Mul(n int64) Cents {
	return Cents(int64(c) * n)
}

// DivRound divides the amount by n, rounding half away from zero to a cent.
// Division by zero yields zero.
func (c Cents) DivRound(n int64) Cents {
	if n == 0 {
		return 0
	}
	v := int64(c)
	q := v / n
	r := v % n
	if r != 0 && abs(r)*2 >= abs(n) {
		if (v < 0) != (n < 0) {
			q--
		} else {
			q++
		}
	}
	return Cents(q)
}

func digitsOnly(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func abs(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

// MarshalJSON encodes the amount as a decimal string.
func (c Cents) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// UnmarshalJSON accepts both string and numeric literals for compatibility
// with clients that submit raw JSON numbers.
func (c *Cents) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(string(data), `"`)
	parsed, err := Parse(raw)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Value implements driver.Valuer; amounts travel to MySQL as decimal strings.
func (c Cents) Value() (driver.Value, error) {
	return c.String(), nil
}

// Scan implements sql.Scanner for DECIMAL columns.
func (c *Cents) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*c = 0
		return nil
	case []byte:
		parsed, err := Parse(string(v))
		if err != nil {
			return err
		}
		*c = parsed
		return nil
	case string:
		parsed, err := Parse(v)
		if err != nil {
			return err
		}
		*c = parsed
		return nil
	case int64:
		*c = Cents(v * 100)
		return nil
	case float64:
		// Some drivers scan DECIMAL as float; round once to a cent.
		if v >= 0 {
			*c = Cents(v*100 + 0.5)
		} else {
			*c = Cents(v*100 - 0.5)
		}
		return nil
	default:
		return fmt.Errorf("money: cannot scan %T into Cents", src)
	}
}
