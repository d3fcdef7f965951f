package weatherapi

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
)

// FlexInt is an integer field the upstream sometimes sends as a number, a
// quoted number or a fractional number. Anything it cannot read as a number
// decodes to zero instead of failing the whole response.
type FlexInt int

func (n FlexInt) Int() int { return int(n) }

func (n *FlexInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			*n = 0
			return nil
		}
		data = bytes.TrimSpace([]byte(s))
	}

	f, err := strconv.ParseFloat(string(data), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		*n = 0
		return nil
	}
	*n = FlexInt(math.Round(f))
	return nil
}
