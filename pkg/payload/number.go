package payload

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
)

var null = []byte("null")

// Int is an integer field that may hold an unparseable value. Invalid values
// serialize as JSON null and are forwarded to the server as-is.
type Int struct {
	Value int
	Valid bool
}

// IntOf returns a valid Int.
func IntOf(v int) Int {
	return Int{Value: v, Valid: true}
}

// MarshalJSON implements json.Marshaler.
func (i Int) MarshalJSON() ([]byte, error) {
	if !i.Valid {
		return null, nil
	}
	return strconv.AppendInt(nil, int64(i.Value), 10), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (i *Int) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), null) {
		*i = Int{}
		return nil
	}
	var v int
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*i = IntOf(v)
	return nil
}

// String renders the value, or "NaN" when invalid.
func (i Int) String() string {
	if !i.Valid {
		return "NaN"
	}
	return strconv.Itoa(i.Value)
}

// Float is the floating point counterpart of Int. Infinite and NaN values
// are never valid.
type Float struct {
	Value float64
	Valid bool
}

// FloatOf returns a Float, valid only for finite values.
func FloatOf(v float64) Float {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Float{}
	}
	return Float{Value: v, Valid: true}
}

// MarshalJSON implements json.Marshaler.
func (f Float) MarshalJSON() ([]byte, error) {
	if !f.Valid {
		return null, nil
	}
	return json.Marshal(f.Value)
}

// UnmarshalJSON implements json.Unmarshaler.
func (f *Float) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), null) {
		*f = Float{}
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*f = FloatOf(v)
	return nil
}

// String renders the value, or "NaN" when invalid.
func (f Float) String() string {
	if !f.Valid {
		return "NaN"
	}
	return strconv.FormatFloat(f.Value, 'f', -1, 64)
}
