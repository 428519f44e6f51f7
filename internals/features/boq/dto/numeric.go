// file: internals/features/boq/dto/numeric.go
package dto

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Numeric accepts a JSON number or a numeric string ("10" -> 10). The
// frontend sends quantities both ways. Non-numeric input is rejected at
// parse time instead of flowing a NaN amount into the table.
type Numeric float64

func (n *Numeric) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		*n = 0
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return err
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(str), 64)
		if err != nil {
			return fmt.Errorf("invalid numeric value %q", str)
		}
		*n = Numeric(v)
		return nil
	}
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return fmt.Errorf("invalid numeric value %s", s)
	}
	*n = Numeric(v)
	return nil
}

func (n Numeric) Float64() float64 {
	return float64(n)
}
