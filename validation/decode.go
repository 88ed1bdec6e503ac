// decode.go - Decodes raw JSON values by field kind

package validation

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// decodeKind converts a raw JSON value into the Go type for kind: string,
// float64, int64 or bool. Numeric strings are accepted for numbers and
// integers; 0/1 and "0"/"1" are accepted for booleans.
func decodeKind(kind Kind, raw json.RawMessage) (any, bool) {
	switch kind {
	case String:
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, false
		}
		return s, true

	case Number:
		f, ok := decodeFloat(raw)
		if !ok || math.IsInf(f, 0) || math.IsNaN(f) {
			return nil, false
		}
		return f, true

	case Integer:
		f, ok := decodeFloat(raw)
		if !ok || f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
			return nil, false
		}
		return int64(f), true

	case Boolean:
		var b bool
		if err := json.Unmarshal(raw, &b); err == nil {
			return b, true
		}
		f, ok := decodeFloat(raw)
		if ok && (f == 0 || f == 1) {
			return f == 1, true
		}
		return nil, false
	}
	return nil, false
}

func decodeFloat(raw json.RawMessage) (float64, bool) {
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return f, true
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return 0, false
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
