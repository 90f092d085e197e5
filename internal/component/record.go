package component

import (
	"encoding/json"
	"sort"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Record is one loosely-typed component as decoded from storage.
type Record = map[string]any

// ParseList decodes a stored component collection. Lists pass through, JSON text is decoded,
// everything else (including broken JSON) becomes an empty list.
func ParseList(raw any) []any {
	switch v := raw.(type) {
	case []any:
		return v
	case []Record:
		out := make([]any, len(v))
		for i, r := range v {
			out[i] = r
		}
		return out
	case string:
		return decodeList([]byte(v))
	case []byte:
		return decodeList(v)
	case json.RawMessage:
		return decodeList(v)
	default:
		return []any{}
	}
}

func decodeList(data []byte) []any {
	if len(strings.TrimSpace(string(data))) == 0 {
		return []any{}
	}
	var list []any
	if err := json.Unmarshal(data, &list); err != nil || list == nil {
		return []any{}
	}
	return list
}

// ParseRecord decodes a JSON object, returning an empty record on any failure.
func ParseRecord(raw string) Record {
	var rec Record
	if err := json.Unmarshal([]byte(raw), &rec); err != nil || rec == nil {
		return Record{}
	}
	return rec
}

func asRecord(v any) (Record, bool) {
	rec, ok := v.(map[string]any)
	return rec, ok
}

// Str returns the first non-empty scalar found under keys, formatted as text.
func Str(rec Record, keys ...string) string {
	for _, key := range keys {
		if s := scalarString(rec[key]); s != "" {
			return s
		}
	}
	return ""
}

func scalarString(v any) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case json.Number:
		return t.String()
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}

// List returns the first list value found under keys.
func List(rec Record, keys ...string) []any {
	for _, key := range keys {
		if l, ok := rec[key].([]any); ok {
			return l
		}
	}
	return nil
}

// Records returns the map entries of the first list found under keys.
func Records(rec Record, keys ...string) []Record {
	var out []Record
	for _, item := range List(rec, keys...) {
		if r, ok := asRecord(item); ok {
			out = append(out, r)
		}
	}
	return out
}

// Strings flattens a list of scalars into text, skipping anything that is not a scalar.
func Strings(rec Record, keys ...string) []string {
	var out []string
	for _, item := range List(rec, keys...) {
		if s := scalarString(item); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Number reads the first numeric value under keys. Numeric strings are accepted.
func Number(rec Record, keys ...string) (decimal.Decimal, bool) {
	for _, key := range keys {
		if d, ok := toDecimal(rec[key]); ok {
			return d, true
		}
	}
	return decimal.Zero, false
}

func toDecimal(v any) (decimal.Decimal, bool) {
	switch t := v.(type) {
	case float64:
		return decimal.NewFromFloat(t), true
	case float32:
		return decimal.NewFromFloat32(t), true
	case int:
		return decimal.NewFromInt(int64(t)), true
	case int64:
		return decimal.NewFromInt(t), true
	case json.Number:
		d, err := decimal.NewFromString(t.String())
		return d, err == nil
	case string:
		clean := strings.ReplaceAll(strings.TrimSpace(t), ",", "")
		if clean == "" {
			return decimal.Zero, false
		}
		d, err := decimal.NewFromString(clean)
		return d, err == nil
	default:
		return decimal.Zero, false
	}
}

// Bool reads a boolean flag, accepting "true"/"false" strings.
func Bool(rec Record, key string) bool {
	switch t := rec[key].(type) {
	case bool:
		return t
	case string:
		b, _ := strconv.ParseBool(strings.TrimSpace(t))
		return b
	default:
		return false
	}
}

// URLOf extracts a URL from either a plain string or an object carrying a url field.
func URLOf(v any) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case map[string]any:
		return Str(t, "url", "imageUrl", "image_url", "src")
	default:
		return ""
	}
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
