package validation

import (
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// DateLayout is the only accepted calendar date format.
const DateLayout = "2006-01-02"

// Violation codes recorded per field.
const (
	CodeRequired       = "required"
	CodeTooShort       = "too_short"
	CodeInvalidNumber  = "invalid_number"
	CodeInvalidInteger = "invalid_integer"
	CodeInvalidDate    = "invalid_date"
	CodeMustBePositive = "must_be_positive"
	CodeNegative       = "must_not_be_negative"
	CodeOutOfRange     = "out_of_range"
)

// Category separates values that could not be read at all from values that were
// read but fall outside the accepted bounds.
type Category int

const (
	Shape Category = iota
	Range
)

// CategoryOf reports which category a violation code belongs to.
func CategoryOf(code string) Category {
	switch code {
	case CodeMustBePositive, CodeNegative, CodeOutOfRange:
		return Range
	default:
		return Shape
	}
}

type Violations map[string]string

func (v Violations) Empty() bool { return len(v) == 0 }

// Add records code for field unless the field already has a violation.
func (v Violations) Add(field, code string) {
	if _, ok := v[field]; !ok {
		v[field] = code
	}
}

// Has reports whether any violation of the given category was recorded.
func (v Violations) Has(c Category) bool {
	for _, code := range v {
		if CategoryOf(code) == c {
			return true
		}
	}
	return false
}

// Error rejects a whole payload. Code is a message key understood by the i18n
// catalog; Violations carries the per-field detail.
type Error struct {
	Code       string
	Violations Violations
}

func (e *Error) Error() string { return "validation failed: " + e.Code }

// Fail builds an *Error for the given message key.
func Fail(code string, v Violations) *Error {
	return &Error{Code: code, Violations: v}
}

var (
	errNotNumber   = errors.New("not a number")
	errNotInteger  = errors.New("not an integer")
	errOutOfBounds = errors.New("number out of bounds")
)

// Text returns the trimmed string held by raw, or "" when raw is not a string.
func Text(raw any) string {
	s, ok := raw.(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(s)
}

// OptionalText is Text, mapping an empty result to nil.
func OptionalText(raw any) *string {
	s := Text(raw)
	if s == "" {
		return nil
	}
	return &s
}

// Basic validators
func Required(field, value string, v Violations) {
	if strings.TrimSpace(value) == "" {
		v.Add(field, CodeRequired)
	}
}

// MinLength expects an already trimmed value and counts runes, not bytes.
func MinLength(field, value string, n int, v Violations) {
	if utf8.RuneCountInString(value) < n {
		v.Add(field, CodeTooShort)
	}
}

// Numeric inputs are bounded so that every stored amount and every computed
// total stays representable as a finite float64 and in a NUMERIC column.
const (
	MaxMagnitude = 1_000_000_000_000 // exclusive bound on |value|
	MaxScale     = 20                // fractional digits
)

var (
	maxMagnitude = decimal.NewFromInt(MaxMagnitude)
	maxInt64     = decimal.NewFromInt(math.MaxInt64)
)

// ParseDecimal reads a JSON number or a numeric string. Booleans, null, NaN,
// infinities and values beyond MaxMagnitude or MaxScale are rejected.
func ParseDecimal(raw any) (decimal.Decimal, error) {
	d, err := parseDecimal(raw)
	if err != nil {
		return decimal.Zero, err
	}
	if d.Abs().GreaterThanOrEqual(maxMagnitude) || d.Exponent() < -MaxScale {
		return decimal.Zero, errOutOfBounds
	}
	return d, nil
}

func parseDecimal(raw any) (decimal.Decimal, error) {
	switch x := raw.(type) {
	case json.Number:
		return decimal.NewFromString(x.String())
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return decimal.Zero, errNotNumber
		}
		return decimal.NewFromFloat(x), nil
	case int:
		return decimal.NewFromInt(int64(x)), nil
	case int64:
		return decimal.NewFromInt(x), nil
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return decimal.Zero, errNotNumber
		}
		return decimal.NewFromString(s)
	default:
		return decimal.Zero, errNotNumber
	}
}

// ParseInt reads an integral JSON number or an integer string.
func ParseInt(raw any) (int64, error) {
	switch x := raw.(type) {
	case json.Number:
		if n, err := x.Int64(); err == nil {
			return n, nil
		}
		d, err := decimal.NewFromString(x.String())
		if err != nil || !d.IsInteger() || d.Abs().GreaterThan(maxInt64) {
			return 0, errNotInteger
		}
		return d.IntPart(), nil
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) || x != math.Trunc(x) || math.Abs(x) >= math.MaxInt64 {
			return 0, errNotInteger
		}
		return int64(x), nil
	case int:
		return int64(x), nil
	case int64:
		return x, nil
	case string:
		return strconv.ParseInt(strings.TrimSpace(x), 10, 64)
	default:
		return 0, errNotInteger
	}
}

// Decimal parses raw into a decimal, recording CodeInvalidNumber on failure.
func Decimal(field string, raw any, v Violations) (decimal.Decimal, bool) {
	d, err := ParseDecimal(raw)
	if err != nil {
		v.Add(field, CodeInvalidNumber)
		return decimal.Zero, false
	}
	return d, true
}

// Integer parses raw into an int64, recording CodeInvalidInteger on failure.
func Integer(field string, raw any, v Violations) (int64, bool) {
	n, err := ParseInt(raw)
	if err != nil {
		v.Add(field, CodeInvalidInteger)
		return 0, false
	}
	return n, true
}

// Date parses raw with DateLayout, recording CodeInvalidDate on failure.
func Date(field string, raw any, v Violations) (time.Time, bool) {
	s, ok := raw.(string)
	if !ok {
		v.Add(field, CodeInvalidDate)
		return time.Time{}, false
	}
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		v.Add(field, CodeInvalidDate)
		return time.Time{}, false
	}
	return t, true
}

func Positive(field string, val decimal.Decimal, v Violations) {
	if !val.IsPositive() {
		v.Add(field, CodeMustBePositive)
	}
}

func NonNegative(field string, val decimal.Decimal, v Violations) {
	if val.IsNegative() {
		v.Add(field, CodeNegative)
	}
}

func Between(field string, val, minVal, maxVal decimal.Decimal, v Violations) {
	if val.LessThan(minVal) || val.GreaterThan(maxVal) {
		v.Add(field, CodeOutOfRange)
	}
}
