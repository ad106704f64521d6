package wire

import (
	"encoding/json"
	"math"
	"strconv"
)

// normalize copies a value tree, turning every number into int64, uint64
// (only above math.MaxInt64) or float64. Integers stay exact whichever codec
// produced them.
func normalize(v any) any {
	switch v := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, val := range v {
			out[k] = normalize(val)
		}

		return out
	case []any:
		out := make([]any, len(v))
		for i, val := range v {
			out[i] = normalize(val)
		}

		return out
	case Object:
		out := make(Object, len(v))
		for i, m := range v {
			out[i] = Member{Key: m.Key, Value: normalize(m.Value)}
		}

		return out
	case json.Number:
		return number(v)
	case int:
		return int64(v)
	case int8:
		return int64(v)
	case int16:
		return int64(v)
	case int32:
		return int64(v)
	case uint:
		return unsigned(uint64(v))
	case uint8:
		return int64(v)
	case uint16:
		return int64(v)
	case uint32:
		return int64(v)
	case uint64:
		return unsigned(v)
	case float32:
		return float64(v)
	default:
		return v
	}
}

func number(n json.Number) any {
	if i, err := n.Int64(); err == nil {
		return i
	}

	if u, err := strconv.ParseUint(n.String(), 10, 64); err == nil {
		return u
	}

	if f, err := n.Float64(); err == nil {
		return f
	}

	return n.String()
}

func unsigned(u uint64) any {
	if u <= math.MaxInt64 {
		return int64(u)
	}

	return u
}
