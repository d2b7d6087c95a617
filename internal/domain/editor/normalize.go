package editor

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// normalizeValue coerces a raw form value into the field's canonical
// type. Strings are trimmed first, so "10" and 10 normalize to the
// same integer and " x " equals "x". An empty value normalizes to nil
// regardless of type; required-ness is checked separately.
func normalizeValue(f Field, raw any) (any, string) {
	if raw == nil {
		return nil, ""
	}

	if s, ok := raw.(string); ok {
		s = strings.TrimSpace(s)
		if s == "" {
			return nil, ""
		}
		raw = s
	}

	switch f.Type {
	case FieldString, FieldText:
		s, ok := raw.(string)
		if !ok {
			s = fmt.Sprintf("%v", raw)
		}
		if f.MaxLen > 0 && len(s) > f.MaxLen {
			return nil, fmt.Sprintf("must be at most %d characters", f.MaxLen)
		}
		return s, ""

	case FieldInteger:
		switch v := raw.(type) {
		case int:
			return int64(v), ""
		case int64:
			return v, ""
		case float64:
			if v != float64(int64(v)) {
				return nil, "must be a whole number"
			}
			return int64(v), ""
		case string:
			n, err := strconv.ParseInt(v, 10, 64)
			if err != nil {
				return nil, "must be a valid number"
			}
			return n, ""
		}
		return nil, "must be a valid number"

	case FieldDecimal:
		switch v := raw.(type) {
		case decimal.Decimal:
			return v, ""
		case int:
			return decimal.NewFromInt(int64(v)), ""
		case int64:
			return decimal.NewFromInt(v), ""
		case float64:
			return decimal.NewFromFloat(v), ""
		case string:
			d, err := decimal.NewFromString(v)
			if err != nil {
				return nil, "must be a valid number"
			}
			return d, ""
		}
		return nil, "must be a valid number"

	case FieldURL:
		s, ok := raw.(string)
		if !ok {
			return nil, "must be a valid URL"
		}
		u, err := url.Parse(s)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return nil, "must be a valid URL"
		}
		return s, ""

	case FieldBool:
		switch v := raw.(type) {
		case bool:
			return v, ""
		case string:
			b, err := strconv.ParseBool(v)
			if err != nil {
				return nil, "must be true or false"
			}
			return b, ""
		}
		return nil, "must be true or false"
	}

	return raw, ""
}

// valuesEqual compares two normalized values. Decimals compare by
// numeric value so 10, "10" and 10.0 are all equal.
func valuesEqual(a, b any) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if da, ok := a.(decimal.Decimal); ok {
		if db, ok := b.(decimal.Decimal); ok {
			return da.Equal(db)
		}
		return false
	}
	return a == b
}
