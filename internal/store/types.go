package store

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// FlexInt is an integer argument taken from a query string, a path segment
// or a JSON body. Only the leading integer of the input counts; the rest is
// ignored. Input without a leading integer is kept as invalid and binds the
// text 'NaN', so Postgres rejects it when it meets an integer column.
type FlexInt struct {
	n     int64
	valid bool
}

var leadingInt = regexp.MustCompile(`^[+-]?\d+`)

// ParseFlexInt parses s. An empty string is invalid.
func ParseFlexInt(s string) FlexInt {
	var f FlexInt

	m := leadingInt.FindString(strings.TrimSpace(s))
	if m == "" {
		return f
	}
	n, err := strconv.ParseInt(m, 10, 64)
	if err != nil {
		return f
	}
	f.n = n
	f.valid = true
	return f
}

// IntOf returns a valid FlexInt holding n.
func IntOf(n int64) FlexInt {
	return FlexInt{n: n, valid: true}
}

// Int returns the parsed value and whether parsing succeeded.
func (f FlexInt) Int() (int64, bool) {
	return f.n, f.valid
}

func (f FlexInt) Value() (driver.Value, error) {
	if !f.valid {
		return "NaN", nil
	}
	return f.n, nil
}

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = ParseFlexInt(s)
		return nil
	}

	*f = FlexInt{}
	num, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		// null, booleans, objects: present but not a number
		return nil
	}
	if math.IsInf(num, 0) || math.Abs(num) >= 1e21 {
		// exponent notation keeps only the digits before the e
		*f = ParseFlexInt(strconv.FormatFloat(num, 'g', -1, 64))
		return nil
	}
	if math.Abs(num) > math.MaxInt64 {
		return nil
	}
	f.n = int64(math.Trunc(num))
	f.valid = true
	return nil
}

func (f FlexInt) MarshalJSON() ([]byte, error) {
	if !f.valid {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatInt(f.n, 10)), nil
}

func (f FlexInt) String() string {
	if !f.valid {
		return "NaN"
	}
	return strconv.FormatInt(f.n, 10)
}

// Text is a free-text body field. Numbers and booleans are kept as their
// text form and objects as compact JSON, the way the driver would store
// them. Truthy is false for "", 0, false and null.
type Text struct {
	s      string
	truthy bool
}

// TextOf returns a Text holding s.
func TextOf(s string) Text {
	return Text{s: s, truthy: s != ""}
}

func (t Text) String() string {
	return t.s
}

func (t Text) Truthy() bool {
	return t.truthy
}

// OrEmpty returns the text, or "" when the value is falsy.
func (t Text) OrEmpty() string {
	if !t.truthy {
		return ""
	}
	return t.s
}

func (t *Text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return fmt.Errorf("empty text value")
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = TextOf(s)
	case 'n':
		*t = Text{}
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(data, &b); err != nil {
			return err
		}
		*t = Text{s: strconv.FormatBool(b), truthy: b}
	case '{':
		var buf bytes.Buffer
		if err := json.Compact(&buf, data); err != nil {
			return err
		}
		*t = Text{s: buf.String(), truthy: true}
	case '[':
		return fmt.Errorf("arrays are not accepted as text")
	default:
		num, err := strconv.ParseFloat(string(data), 64)
		if err != nil {
			return err
		}
		*t = Text{s: formatNumber(num), truthy: num != 0}
	}
	return nil
}

func formatNumber(f float64) string {
	if abs := math.Abs(f); abs >= 1e21 || (abs != 0 && abs < 1e-6) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Amount is a currency value with two fractional digits. It decodes from a
// JSON number or numeric string like parseFloat does; anything else is 0.
type Amount struct {
	decimal.Decimal
}

var leadingFloat = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// ParseAmount converts s to an Amount, falling back to zero.
func ParseAmount(s string) Amount {
	m := leadingFloat.FindString(strings.TrimSpace(s))
	if m == "" {
		return Amount{}
	}
	d, err := decimal.NewFromString(m)
	if err != nil {
		return Amount{}
	}
	return Amount{d}
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = ParseAmount(s)
		return nil
	}

	if d, err := decimal.NewFromString(string(data)); err == nil {
		*a = Amount{d}
		return nil
	}

	*a = Amount{}
	return nil
}

// Value rounds half away from zero to the column scale.
func (a Amount) Value() (driver.Value, error) {
	return a.Round(2).StringFixed(2), nil
}

// JSON is a free-form JSONB document. Empty or falsy input stores '{}'.
type JSON []byte

var emptyObject = []byte("{}")

func isFalsyJSON(b []byte) bool {
	switch string(bytes.TrimSpace(b)) {
	case "", "null", "false", "0", `""`:
		return true
	}
	return false
}

func (j JSON) Value() (driver.Value, error) {
	if isFalsyJSON(j) {
		return string(emptyObject), nil
	}
	if !json.Valid(j) {
		return nil, fmt.Errorf("data is not valid JSON")
	}
	return string(j), nil
}

func (j *JSON) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*j = append((*j)[:0], emptyObject...)
	case []byte:
		*j = append((*j)[:0], v...)
	case string:
		*j = append((*j)[:0], v...)
	default:
		return fmt.Errorf("cannot scan %T into JSON", src)
	}
	return nil
}

func (j JSON) MarshalJSON() ([]byte, error) {
	if len(bytes.TrimSpace(j)) == 0 {
		return emptyObject, nil
	}
	return j, nil
}

func (j *JSON) UnmarshalJSON(data []byte) error {
	*j = append((*j)[:0], data...)
	return nil
}
