package entities

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Amount is a money/quantity value loaded from loosely-typed inspection blobs.
//
// Older revisions of the system persisted numeric fields as JSON strings
// ("120", "$120", "") and sometimes omitted them entirely. Anything that is
// not a usable non-negative number decodes to 0 instead of failing: malformed
// persisted data is a normal input here, not an error condition.

type Amount float64

func (a *Amount) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "" || s == "null" {
		*a = 0
		return nil
	}

	if v, err := strconv.ParseFloat(s, 64); err == nil {
		*a = Amount(sanitizeNumber(v))
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		str = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(str), "$"))
		if v, err := strconv.ParseFloat(str, 64); err == nil {
			*a = Amount(sanitizeNumber(v))
			return nil
		}
	}

	*a = 0
	return nil
}

func (a Amount) Float64() float64 {
	return sanitizeNumber(float64(a))
}

// sanitizeNumber maps NaN, infinities and negatives to 0. Applied on every
// numeric write so bad values never reach the total computations.
func sanitizeNumber(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

// NewAmount sanitizes a caller-supplied value into an Amount.
func NewAmount(v float64) Amount {
	return Amount(sanitizeNumber(v))
}
